package driver

import (
	"context"
	"fmt"
	"strconv"

	"fortio.org/safecast"

	"jsfront/internal/ast"
	"jsfront/internal/diag"
	"jsfront/internal/lexer"
	"jsfront/internal/parser"
	"jsfront/internal/source"
	"jsfront/internal/trace"
)

type ParseResult struct {
	FileSet *source.FileSet
	File    *source.File
	Program *ast.Program
	Bag     *diag.Bag
}

// Parse loads path and parses it into a Program. Lexical and syntax
// diagnostics are collected into one bag capped at maxDiagnostics
// (0 means unlimited). A returned error is an I/O or argument problem,
// never a syntax error.
func Parse(ctx context.Context, filePath string, maxDiagnostics int) (*ParseResult, error) {
	fs := source.NewFileSet()
	file, err := loadFile(ctx, fs, filePath)
	if err != nil {
		return nil, err
	}
	prog, bag, err := parseLoaded(ctx, fs, file, maxDiagnostics)
	if err != nil {
		return nil, err
	}
	return &ParseResult{FileSet: fs, File: file, Program: prog, Bag: bag}, nil
}

// ParseSource parses in-memory text (stdin, REPL) as a virtual file.
func ParseSource(ctx context.Context, name, text string, maxDiagnostics int) (*ParseResult, error) {
	fs := source.NewFileSet()
	file := fs.Get(fs.AddVirtual(name, []byte(text)))
	prog, bag, err := parseLoaded(ctx, fs, file, maxDiagnostics)
	if err != nil {
		return nil, err
	}
	return &ParseResult{FileSet: fs, File: file, Program: prog, Bag: bag}, nil
}

func parseLoaded(ctx context.Context, fs *source.FileSet, file *source.File, maxDiagnostics int) (*ast.Program, *diag.Bag, error) {
	maxErrors, err := safecast.Conv[uint](maxDiagnostics)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid max diagnostics %d: %w", maxDiagnostics, err)
	}

	span, ctx := trace.Start(ctx, trace.ScopeFile, "parse")
	span.WithExtra("file", file.Path)

	bag := diag.NewBag(maxDiagnostics)
	reporter := diag.NewDedupReporter(diag.BagReporter{Bag: bag})
	lx := lexer.New(file, lexer.Options{Reporter: reporter})
	result := parser.ParseFile(ctx, fs, lx, parser.Options{
		Reporter:  reporter,
		MaxErrors: maxErrors,
	})

	// прерванный разбор неполон: не отдаём его наружу
	if err := ctx.Err(); err != nil {
		span.End("cancelled")
		return nil, nil, err
	}

	span.WithExtra("statements", itoa(len(result.Program.Body)))
	span.WithExtra("errors", itoa(bag.ErrorCount()))
	if n := reporter.Suppressed(); n > 0 {
		span.WithExtra("duplicates", itoa(n))
	}
	span.End("")
	return result.Program, bag, nil
}

func itoa(n int) string { return strconv.Itoa(n) }
