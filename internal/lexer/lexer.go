package lexer

import (
	"jsfront/internal/diag"
	"jsfront/internal/source"
	"jsfront/internal/token"
)

type Lexer struct {
	file    *source.File
	cursor  Cursor
	opts    Options
	look    *token.Token   // 1 элементный буфер для токена
	hold    []token.Trivia // leading trivia of the token being scanned
	newline bool           // a line terminator was skipped before the current token
	errors  int
	bag     *diag.Bag // own bag when Options.Reporter was nil
}

// New creates a lexer over file.
func New(file *source.File, opts Options) *Lexer {
	lx := &Lexer{
		file:   file,
		cursor: NewCursor(file),
		opts:   opts,
	}
	if opts.Reporter == nil {
		lx.bag = diag.NewBag(0)
		lx.opts.Reporter = diag.BagReporter{Bag: lx.bag}
	}
	return lx
}

// NewFromText registers text as a virtual file in a fresh FileSet and
// returns a lexer over it.
func NewFromText(text, filename string, opts Options) (*Lexer, *source.FileSet) {
	fs := source.NewFileSet()
	id := fs.AddVirtual(filename, []byte(text))
	return New(fs.Get(id), opts), fs
}

// File returns the file being scanned.
func (lx *Lexer) File() *source.File {
	return lx.file
}

// HasErrors reports whether any lexical error was produced so far.
func (lx *Lexer) HasErrors() bool {
	return lx.errors > 0
}

// Diagnostics returns the lexer-owned bag, or nil when diagnostics go to
// an external Reporter.
func (lx *Lexer) Diagnostics() *diag.Bag {
	return lx.bag
}

// Next returns the next significant token. After EOF it keeps returning EOF.
func (lx *Lexer) Next() token.Token {
	if lx.look != nil {
		tok := *lx.look
		lx.look = nil
		return tok
	}

	lx.collectLeadingTrivia()

	if lx.cursor.EOF() {
		return token.Token{
			Kind:          token.EOF,
			Span:          lx.emptySpan(),
			NewlineBefore: lx.newline,
			Leading:       lx.takeHold(),
		}
	}

	start := lx.cursor.Mark()
	ch := lx.cursor.Peek()
	var tok token.Token

	switch {
	case isIdentStartByte(ch):
		tok = lx.scanIdentOrKeyword()

	case ch >= utf8RuneSelf:
		// Unicode identifier or a stray character; scanIdentOrKeyword decides
		tok = lx.scanIdentOrKeyword()

	case isDec(ch):
		tok = lx.scanNumber()

	case ch == '.' && lx.isNumberAfterDot():
		tok = lx.scanNumber()

	case ch == '"' || ch == '\'':
		tok = lx.scanString()

	default:
		tok = lx.scanOperatorOrPunct()
	}

	if sp := lx.cursor.SpanFrom(start); sp.Len() > maxTokenLength {
		lx.errLex(diag.LexTokenTooLong, sp, "token is too long")
		lx.cursor.ToEnd()
		tok = lx.invalid(sp, "token is too long")
	}

	tok.NewlineBefore = lx.newline
	tok.Leading = lx.takeHold()
	return tok
}

// Peek returns the next token without consuming it. Calling Peek any number
// of times before Next does not change what Next returns, and diagnostics
// of the peeked token are reported once.
func (lx *Lexer) Peek() token.Token {
	if lx.look != nil {
		return *lx.look
	}
	t := lx.Next()
	lx.look = &t
	return t
}

// Snapshot captures the scanning position.
type Snapshot struct {
	off    uint32
	look   *token.Token
	errors int
}

// Snapshot saves the current state for a later Restore. Diagnostics reported
// in between are not withdrawn; speculate on a Clone when that matters.
func (lx *Lexer) Snapshot() Snapshot {
	s := Snapshot{off: lx.cursor.Off, errors: lx.errors}
	if lx.look != nil {
		t := *lx.look
		s.look = &t
	}
	return s
}

// Restore rewinds the lexer to a Snapshot.
func (lx *Lexer) Restore(s Snapshot) {
	lx.cursor.Off = s.off
	lx.look = s.look
	lx.errors = s.errors
	lx.hold = nil
	lx.newline = false
}

// Clone returns an independent lexer at the same position that reports
// nothing. The parser uses it for lookahead.
func (lx *Lexer) Clone() *Lexer {
	c := &Lexer{
		file:   lx.file,
		cursor: lx.cursor,
		opts:   Options{Reporter: diag.NopReporter{}},
	}
	if lx.look != nil {
		t := *lx.look
		c.look = &t
	}
	return c
}

func (lx *Lexer) takeHold() []token.Trivia {
	if len(lx.hold) == 0 {
		return nil
	}
	h := lx.hold
	lx.hold = nil
	return h
}

func (lx *Lexer) emptySpan() source.Span {
	return source.Span{File: lx.file.ID, Start: lx.cursor.Off, End: lx.cursor.Off}
}

func (lx *Lexer) text(sp source.Span) string {
	return lx.file.Text[sp.Start:sp.End]
}

// invalid builds an Invalid token carrying msg.
func (lx *Lexer) invalid(sp source.Span, msg string) token.Token {
	return token.Token{Kind: token.Invalid, Span: sp, Text: lx.text(sp), Value: msg}
}
