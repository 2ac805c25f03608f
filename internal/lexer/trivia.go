package lexer

import (
	"jsfront/internal/diag"
	"jsfront/internal/token"
)

// collectLeadingTrivia skips whitespace and comments before a significant
// token, recording whether a line terminator was crossed.
//   - runs of spaces/tabs/other blanks coalesce into one TriviaSpace
//   - runs of line terminators coalesce into one TriviaNewline
//   - //... up to the line end -> TriviaLineComment
//   - /* ... */ -> TriviaBlockComment (no nesting; unterminated is reported)
//   - #! at offset 0 -> TriviaHashbang
func (lx *Lexer) collectLeadingTrivia() {
	lx.hold = lx.hold[:0]
	lx.newline = false
	if lx.cursor.Off == 0 {
		if b0, b1, ok := lx.cursor.Peek2(); ok && b0 == '#' && b1 == '!' {
			start := lx.cursor.Mark()
			lx.skipToLineEnd()
			lx.keep(token.TriviaHashbang, start)
		}
	}
	for !lx.cursor.EOF() {
		start := lx.cursor.Mark()
		b := lx.cursor.Peek()

		switch {
		case isBlankByte(b):
			for isBlankByte(lx.cursor.Peek()) {
				lx.cursor.Bump()
			}
			lx.keep(token.TriviaSpace, start)
			continue

		case b == '\n' || b == '\r':
			for lx.cursor.Peek() == '\n' || lx.cursor.Peek() == '\r' {
				lx.cursor.Bump()
			}
			lx.newline = true
			lx.keep(token.TriviaNewline, start)
			continue

		case b >= utf8RuneSelf:
			r, _ := lx.peekRune()
			if isLineTerminatorRune(r) {
				lx.bumpRune()
				lx.newline = true
				lx.keep(token.TriviaNewline, start)
				continue
			}
			if isBlankRune(r) {
				lx.bumpRune()
				lx.keep(token.TriviaSpace, start)
				continue
			}

		case b == '/':
			if lx.scanCommentIntoHold() {
				continue
			}
		}

		// нет больше trivia
		break
	}
}

func (lx *Lexer) keep(kind token.TriviaKind, start Mark) {
	if !lx.opts.KeepTrivia {
		return
	}
	sp := lx.cursor.SpanFrom(start)
	lx.hold = append(lx.hold, token.Trivia{Kind: kind, Span: sp, Text: lx.text(sp)})
}

func (lx *Lexer) skipToLineEnd() {
	for !lx.cursor.EOF() {
		b := lx.cursor.Peek()
		if b == '\n' || b == '\r' {
			return
		}
		if b >= utf8RuneSelf {
			if r, _ := lx.peekRune(); isLineTerminatorRune(r) {
				return
			}
			lx.bumpRune()
			continue
		}
		lx.cursor.Bump()
	}
}

// scanCommentIntoHold handles "//..." and "/*...*/". It returns false and
// leaves the cursor untouched when the '/' is an operator.
func (lx *Lexer) scanCommentIntoHold() bool {
	start := lx.cursor.Mark()
	b0, b1, ok := lx.cursor.Peek2()
	if !ok || b0 != '/' {
		return false
	}
	switch b1 {
	case '/':
		lx.cursor.Bump()
		lx.cursor.Bump()
		lx.skipToLineEnd()
		lx.keep(token.TriviaLineComment, start)
		return true

	case '*':
		lx.cursor.Bump()
		lx.cursor.Bump()
		closed := false
		for !lx.cursor.EOF() {
			if lx.try2('*', '/') {
				closed = true
				break
			}
			b := lx.cursor.Peek()
			switch {
			case b == '\n' || b == '\r':
				lx.newline = true
				lx.cursor.Bump()
			case b >= utf8RuneSelf:
				if r, _ := lx.peekRune(); isLineTerminatorRune(r) {
					lx.newline = true
				}
				lx.bumpRune()
			default:
				lx.cursor.Bump()
			}
		}
		if !closed {
			lx.errLex(diag.LexUnterminatedComment, lx.cursor.SpanFrom(start), "unterminated block comment")
		}
		lx.keep(token.TriviaBlockComment, start)
		return true
	}
	return false
}
