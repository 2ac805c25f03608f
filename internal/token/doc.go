// Package token defines lexical token kinds and trivia for the JavaScript front end.
// Invariants:
//   - Token.Text is exactly the source bytes covered by Token.Span.
//   - Token.Span matches Text exactly (Start..End).
//   - Only EOF tokens may have an empty span.
//   - Comments and whitespace never appear in the main token stream; they are
//     recorded as leading Trivia when the lexer is asked to keep them.
//   - Contextual words (of, get, set, static, async) are keywords here; the
//     parser accepts them wherever an identifier is expected.
package token
