package lexer

import (
	"math"
	"math/big"
	"strconv"
	"strings"

	"jsfront/internal/diag"
	"jsfront/internal/token"
)

// scanNumber handles:
//   - 0x[0-9a-fA-F_]+, 0o[0-7_]+, 0b[01_]+ (case-insensitive prefix)
//   - decimal [0-9][0-9_]* (.[0-9_]+)? ([eE][+-]?[0-9_]+)?
//   - .[0-9_]+ with optional exponent (called after isNumberAfterDot)
//
// A '.' is part of the number only when a digit follows, so "1.toString"
// lexes as Number, Dot, Ident. '_' is accepted only between two digits.
// The value is computed eagerly into Token.Number.
func (lx *Lexer) scanNumber() token.Token {
	start := lx.cursor.Mark()

	if lx.cursor.Peek() == '0' {
		var base int
		var digit func(byte) bool
		switch lx.cursor.PeekAt(1) {
		case 'x', 'X':
			base, digit = 16, isHex
		case 'o', 'O':
			base, digit = 8, isOct
		case 'b', 'B':
			base, digit = 2, isBin
		}
		if base != 0 {
			lx.cursor.Bump()
			lx.cursor.Bump()
			n, badSep := lx.scanDigits(digit)
			if n == 0 {
				return lx.badNumber(start, "missing digits after radix prefix")
			}
			if badSep {
				return lx.badNumber(start, "numeric separator must appear between digits")
			}
			if lx.identAfterNumber() {
				return lx.badNumber(start, "identifier starts immediately after numeric literal")
			}
			sp := lx.cursor.SpanFrom(start)
			text := lx.text(sp)
			return token.Token{Kind: token.Number, Span: sp, Text: text, Number: radixValue(text[2:], base)}
		}
	}

	badSep := false
	if lx.cursor.Peek() != '.' {
		_, bad := lx.scanDigits(isDec)
		badSep = badSep || bad
	}

	if lx.isNumberAfterDot() {
		lx.cursor.Bump() // '.'
		_, bad := lx.scanDigits(isDec)
		badSep = badSep || bad
	}

	if b := lx.cursor.Peek(); b == 'e' || b == 'E' {
		lx.cursor.Bump()
		if s := lx.cursor.Peek(); s == '+' || s == '-' {
			lx.cursor.Bump()
		}
		n, bad := lx.scanDigits(isDec)
		if n == 0 {
			return lx.badNumber(start, "missing digits in exponent")
		}
		badSep = badSep || bad
	}

	if badSep {
		return lx.badNumber(start, "numeric separator must appear between digits")
	}
	if lx.identAfterNumber() {
		return lx.badNumber(start, "identifier starts immediately after numeric literal")
	}

	sp := lx.cursor.SpanFrom(start)
	text := lx.text(sp)
	return token.Token{Kind: token.Number, Span: sp, Text: text, Number: decimalValue(text)}
}

// scanDigits consumes digits and separators. It returns the number of
// digits seen and whether a separator was misplaced.
func (lx *Lexer) scanDigits(digit func(byte) bool) (n int, badSep bool) {
	prevDigit := false
	for {
		b := lx.cursor.Peek()
		switch {
		case !lx.cursor.EOF() && digit(b):
			n++
			prevDigit = true
		case b == '_':
			if !prevDigit || !digit(lx.cursor.PeekAt(1)) {
				badSep = true
			}
			prevDigit = false
		default:
			return n, badSep
		}
		lx.cursor.Bump()
	}
}

// identAfterNumber reports whether an identifier character directly follows.
func (lx *Lexer) identAfterNumber() bool {
	if lx.cursor.EOF() {
		return false
	}
	r, _ := lx.peekRune()
	return isIdentStartRune(r) || (r < utf8RuneSelf && isDec(byte(r)))
}

// badNumber swallows the rest of the word and returns an Invalid token.
func (lx *Lexer) badNumber(start Mark, msg string) token.Token {
	for !lx.cursor.EOF() {
		r, _ := lx.peekRune()
		if !isIdentContinueRune(r) {
			break
		}
		lx.bumpRune()
	}
	sp := lx.cursor.SpanFrom(start)
	lx.errLex(diag.LexInvalidNumber, sp, msg)
	return lx.invalid(sp, msg)
}

func decimalValue(text string) float64 {
	// ErrRange still yields ±Inf or 0, which is what the literal denotes
	v, _ := strconv.ParseFloat(strings.ReplaceAll(text, "_", ""), 64)
	return v
}

func radixValue(digits string, base int) float64 {
	digits = strings.ReplaceAll(digits, "_", "")
	if u, err := strconv.ParseUint(digits, base, 64); err == nil {
		return float64(u)
	}
	n, ok := new(big.Int).SetString(digits, base)
	if !ok {
		return math.NaN()
	}
	f, _ := new(big.Float).SetInt(n).Float64()
	return f
}
