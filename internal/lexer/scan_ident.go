package lexer

import (
	"fmt"

	"jsfront/internal/diag"
	"jsfront/internal/token"
)

// scanIdentOrKeyword scans an identifier and checks it against the keyword
// table. Keywords are case-sensitive. Non-ASCII input that cannot start an
// identifier is reported as an unexpected character.
func (lx *Lexer) scanIdentOrKeyword() token.Token {
	start := lx.cursor.Mark()

	r, sz := lx.peekRune()
	if sz == 0 {
		return lx.invalid(lx.cursor.SpanFrom(start), "unexpected end of input")
	}
	if r < utf8RuneSelf {
		if !isIdentStartByte(byte(r)) {
			return lx.scanOperatorOrPunct()
		}
		lx.cursor.Bump()
	} else {
		if !isIdentStartRune(r) {
			return lx.unexpectedRune(start)
		}
		lx.bumpRune()
	}

	for {
		b := lx.cursor.Peek()
		if b < utf8RuneSelf {
			if lx.cursor.EOF() || !isIdentContinueByte(b) {
				break
			}
			lx.cursor.Bump()
			continue
		}
		r2, sz2 := lx.peekRune()
		if sz2 == 0 || !isIdentContinueRune(r2) {
			break
		}
		lx.bumpRune()
	}

	sp := lx.cursor.SpanFrom(start)
	text := lx.text(sp)

	if k, ok := token.LookupKeyword(text); ok {
		return token.Token{Kind: k, Span: sp, Text: text}
	}
	return token.Token{Kind: token.Ident, Span: sp, Text: text}
}

// unexpectedRune consumes one whole rune and reports it.
func (lx *Lexer) unexpectedRune(start Mark) token.Token {
	r, _ := lx.peekRune()
	lx.bumpRune()
	if lx.cursor.Off == uint32(start) {
		lx.cursor.Bump()
	}
	sp := lx.cursor.SpanFrom(start)
	msg := fmt.Sprintf("unexpected character %q", r)
	lx.errLex(diag.LexUnexpectedChar, sp, msg)
	return lx.invalid(sp, msg)
}
