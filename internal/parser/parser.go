package parser

import (
	"context"
	"slices"

	"jsfront/internal/ast"
	"jsfront/internal/diag"
	"jsfront/internal/lexer"
	"jsfront/internal/source"
	"jsfront/internal/token"
)

type Options struct {
	MaxErrors     uint
	CurrentErrors uint
	Reporter      diag.Reporter
}

// Enough - проверить, достигли ли мы максимального количества ошибок
func (o *Options) Enough() bool {
	if o.MaxErrors == 0 {
		return false
	}
	return o.CurrentErrors >= o.MaxErrors
}

type Result struct {
	Program *ast.Program
	Bag     *diag.Bag
}

// Parser — состояние парсера на один файл
type Parser struct {
	lx       *lexer.Lexer
	fs       *source.FileSet
	opts     Options
	lastSpan source.Span // span последнего съеденного токена для лучшей диагностики
	fn       funcScope
	noIn     bool // inside a for-loop head: 'in' is not a binary operator
	bag      *diag.Bag // own bag when built by New
	program  *ast.Program

	// arrowParens: offset of '(' -> its group is followed by '=>'.
	// Filled for every nested group in one scan.
	arrowParens map[uint32]bool
}

// funcScope tracks what the current function body allows.
type funcScope struct {
	inFunction bool
	async      bool
	generator  bool
	loops      int
	switches   int
	labels     []label
}

type label struct {
	name   string
	isLoop bool
}

// New lexes and parses text as a standalone virtual file. Lexical and
// syntax diagnostics share one bag, in the order they were found.
func New(text, filename string) *Parser {
	bag := diag.NewBag(0)
	rep := diag.BagReporter{Bag: bag}
	lx, fs := lexer.NewFromText(text, filename, lexer.Options{Reporter: rep})
	p := newParser(fs, lx, Options{Reporter: rep})
	p.bag = bag
	return p
}

func newParser(fs *source.FileSet, lx *lexer.Lexer, opts Options) *Parser {
	return &Parser{
		lx:       lx,
		fs:       fs,
		opts:     opts,
		lastSpan: emptySpanAt(lx.File(), 0),
	}
}

// ParseFile — входная точка для разбора одного файла.
// Parsing stops early when ctx is cancelled; the partial Program is returned.
func ParseFile(ctx context.Context, fs *source.FileSet, lx *lexer.Lexer, opts Options) Result {
	p := newParser(fs, lx, opts)
	prog := p.parseProgram(ctx)

	var bag *diag.Bag
	if br, ok := opts.Reporter.(diag.BagReporter); ok {
		bag = br.Bag
	}
	return Result{Program: prog, Bag: bag}
}

// Parse consumes the whole input and returns the Program, even when errors
// were reported. Repeated calls return the same tree.
func (p *Parser) Parse() *ast.Program {
	if p.program == nil {
		p.program = p.parseProgram(context.Background())
	}
	return p.program
}

// HasErrors reports whether a lexical or syntax error was recorded.
func (p *Parser) HasErrors() bool {
	return p.opts.CurrentErrors > 0 || p.lx.HasErrors()
}

// Diagnostics returns the parser-owned bag; nil for parsers created by
// ParseFile, whose diagnostics go to Options.Reporter.
func (p *Parser) Diagnostics() *diag.Bag {
	return p.bag
}

// File returns the source file being parsed.
func (p *Parser) File() *source.File {
	return p.lx.File()
}

// FileSet returns the set that owns File.
func (p *Parser) FileSet() *source.FileSet {
	return p.fs
}

func (p *Parser) at(k token.Kind) bool {
	return p.lx.Peek().Kind == k
}

func (p *Parser) atOr(kinds ...token.Kind) bool {
	return slices.Contains(kinds, p.lx.Peek().Kind)
}

// parseProgram — основной цикл верхнего уровня: пока не EOF — parseStatement.
func (p *Parser) parseProgram(ctx context.Context) *ast.Program {
	prog := &ast.Program{Loc: emptySpanAt(p.lx.File(), 0)}
	for !p.at(token.EOF) {
		if ctx.Err() != nil {
			break
		}
		if stmt, ok := p.parseStatementRecover(); ok {
			prog.Body = append(prog.Body, stmt)
		}
	}
	if eof := p.lx.Peek(); eof.Span.End > prog.Loc.End {
		prog.Loc.End = eof.Span.End
	}
	return prog
}

// parseStatementList parses statements until one of the stop kinds or EOF.
func (p *Parser) parseStatementList(stop ...token.Kind) []ast.Stmt {
	var out []ast.Stmt
	for !p.at(token.EOF) && !p.atOr(stop...) {
		if stmt, ok := p.parseStatementRecover(); ok {
			out = append(out, stmt)
		}
	}
	return out
}

// parseStatementRecover parses one statement; on failure it resynchronizes
// and guarantees that at least one token was consumed.
func (p *Parser) parseStatementRecover() (ast.Stmt, bool) {
	before := p.lx.Peek().Span
	stmt, ok := p.parseStatement()
	if ok {
		return stmt, true
	}
	p.resyncStatement()
	if after := p.lx.Peek(); after.Span == before && after.Kind != token.EOF {
		p.advance()
	}
	return nil, false
}

func emptySpanAt(f *source.File, off uint32) source.Span {
	return source.Span{File: f.ID, Start: off, End: off}
}
