package lexer

import (
	"strings"
	"unicode/utf8"

	"jsfront/internal/diag"
	"jsfront/internal/token"
)

// scanString scans a '...' or "..." literal and decodes it into Token.Value.
// Recognised escapes: \n \r \t \b \f \v \0 \\ \' \" \xHH \uHHHH \u{H...}
// and line continuations. Any other escaped character stands for itself.
// A raw line break or EOF before the closing quote yields an Invalid token.
func (lx *Lexer) scanString() token.Token {
	start := lx.cursor.Mark()
	quote := lx.cursor.Bump()

	var sb strings.Builder
	plainFrom := lx.cursor.Off
	escaped := false

	for !lx.cursor.EOF() {
		b := lx.cursor.Peek()
		switch {
		case b == quote:
			end := lx.cursor.Off
			lx.cursor.Bump()
			sp := lx.cursor.SpanFrom(start)
			value := lx.file.Text[plainFrom:end]
			if escaped {
				sb.WriteString(value)
				value = sb.String()
			}
			return token.Token{Kind: token.String, Span: sp, Text: lx.text(sp), Value: value}

		case b == '\n' || b == '\r':
			return lx.unterminatedString(start)

		case b == '\\':
			if !escaped {
				escaped = true
				sb.Grow(int(lx.cursor.Off-plainFrom) + 16)
			}
			sb.WriteString(lx.file.Text[plainFrom:lx.cursor.Off])
			if !lx.scanEscape(&sb) {
				return lx.unterminatedString(start)
			}
			plainFrom = lx.cursor.Off

		default:
			lx.cursor.Bump()
		}
	}
	return lx.unterminatedString(start)
}

func (lx *Lexer) unterminatedString(start Mark) token.Token {
	sp := lx.cursor.SpanFrom(start)
	msg := "unterminated string literal"
	lx.errLex(diag.LexUnterminatedString, sp, msg)
	return lx.invalid(sp, msg)
}

// scanEscape consumes one escape sequence (cursor at '\') and appends its
// value. It returns false when EOF cuts the sequence.
func (lx *Lexer) scanEscape(sb *strings.Builder) bool {
	escStart := lx.cursor.Mark()
	lx.cursor.Bump() // '\'
	if lx.cursor.EOF() {
		return false
	}
	b := lx.cursor.Peek()
	switch b {
	case 'n':
		sb.WriteByte('\n')
	case 'r':
		sb.WriteByte('\r')
	case 't':
		sb.WriteByte('\t')
	case 'b':
		sb.WriteByte('\b')
	case 'f':
		sb.WriteByte('\f')
	case 'v':
		sb.WriteByte('\v')
	case '0':
		sb.WriteByte(0)
	case '\n':
		// line continuation
	case '\r':
		lx.cursor.Bump()
		lx.cursor.Eat('\n')
		return true
	case 'x':
		lx.cursor.Bump()
		h0, h1 := lx.cursor.PeekAt(0), lx.cursor.PeekAt(1)
		if !isHex(h0) || !isHex(h1) {
			lx.badEscape(escStart, "invalid hexadecimal escape sequence")
			sb.WriteByte('x')
			return true
		}
		lx.cursor.Bump()
		lx.cursor.Bump()
		sb.WriteRune(hexVal(h0)<<4 | hexVal(h1))
		return true
	case 'u':
		lx.cursor.Bump()
		r, ok := lx.scanUnicodeEscape()
		if !ok {
			lx.badEscape(escStart, "invalid unicode escape sequence")
			sb.WriteByte('u')
			return true
		}
		if utf8.ValidRune(r) {
			sb.WriteRune(r)
		} else {
			sb.WriteRune(utf8.RuneError)
		}
		return true
	default:
		if b >= utf8RuneSelf {
			r, _ := lx.peekRune()
			lx.bumpRune()
			if !isLineTerminatorRune(r) {
				sb.WriteRune(r)
			}
			return true
		}
		// unknown escape: the character stands for itself
		sb.WriteByte(b)
	}
	lx.cursor.Bump()
	return true
}

// scanUnicodeEscape reads the part after "\u": either four hex digits or
// {hex...}. A high surrogate followed by an escaped low surrogate is
// combined into one code point.
func (lx *Lexer) scanUnicodeEscape() (rune, bool) {
	if lx.cursor.Peek() == '{' {
		save := lx.cursor.Mark()
		lx.cursor.Bump()
		var r rune
		n := 0
		for isHex(lx.cursor.Peek()) && !lx.cursor.EOF() {
			r = r<<4 | hexVal(lx.cursor.Bump())
			n++
			if r > utf8.MaxRune {
				lx.cursor.Reset(save)
				return 0, false
			}
		}
		if n == 0 || !lx.cursor.Eat('}') {
			lx.cursor.Reset(save)
			return 0, false
		}
		return r, true
	}

	r, ok := lx.scan4Hex()
	if !ok {
		return 0, false
	}
	if r >= 0xD800 && r <= 0xDBFF {
		save := lx.cursor.Mark()
		if lx.try2('\\', 'u') {
			if lo, ok := lx.scan4Hex(); ok && lo >= 0xDC00 && lo <= 0xDFFF {
				return (r-0xD800)<<10 + (lo - 0xDC00) + 0x10000, true
			}
		}
		lx.cursor.Reset(save)
	}
	return r, true
}

func (lx *Lexer) scan4Hex() (rune, bool) {
	var r rune
	for i := uint32(0); i < 4; i++ {
		b := lx.cursor.PeekAt(i)
		if !isHex(b) {
			return 0, false
		}
		r = r<<4 | hexVal(b)
	}
	lx.cursor.Off += 4
	return r, true
}

func (lx *Lexer) badEscape(start Mark, msg string) {
	lx.errLex(diag.LexInvalidEscape, lx.cursor.SpanFrom(start), msg)
}
