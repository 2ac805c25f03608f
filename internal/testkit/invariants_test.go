package testkit

import (
	"os"
	"path/filepath"
	"testing"

	"jsfront/internal/ast"
	"jsfront/internal/parser"
	"jsfront/internal/source"
)

func TestSpanInvariantsOnTestdata(t *testing.T) {
	for _, dir := range []string{"ok", "errors"} {
		paths, err := filepath.Glob(filepath.Join("..", "..", "testdata", dir, "*.js"))
		if err != nil {
			t.Fatalf("glob: %v", err)
		}
		for _, path := range paths {
			t.Run(filepath.Base(path), func(t *testing.T) {
				// #nosec G304 -- test reads repository testdata
				src, err := os.ReadFile(path)
				if err != nil {
					t.Fatalf("read: %v", err)
				}
				p := parser.New(string(src), path)
				prog := p.Parse()
				if dir == "ok" && p.HasErrors() {
					t.Fatalf("unexpected errors in %s", path)
				}
				if err := CheckSpanInvariants(prog, p.File()); err != nil {
					t.Fatalf("%s: %v", path, err)
				}
			})
		}
	}
}

func TestSpanInvariantsDetectEscape(t *testing.T) {
	p := parser.New("a + b;", "t.js")
	prog := p.Parse()
	stmt := prog.Body[0].(*ast.ExprStmt)
	stmt.X.(*ast.Binary).Loc.End = 100
	if err := CheckSpanInvariants(prog, p.File()); err == nil {
		t.Fatalf("expected containment violation")
	}
}

func TestSpanInvariantsNil(t *testing.T) {
	if err := CheckSpanInvariants(nil, &source.File{}); err == nil {
		t.Fatalf("nil program must be rejected")
	}
}
