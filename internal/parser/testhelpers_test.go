package parser

import (
	"fmt"
	"strings"
	"testing"

	"jsfront/internal/ast"
	"jsfront/internal/diag"
)

func diagnosticsSummary(bag *diag.Bag) string {
	if bag == nil {
		return "<nil bag>"
	}
	diags := bag.Items()
	if len(diags) == 0 {
		return "<none>"
	}
	lines := make([]string, len(diags))
	for i, d := range diags {
		lines[i] = fmt.Sprintf("[%s] %s", d.Code.ID(), d.Message)
	}
	return strings.Join(lines, "; ")
}

// parseOK parses src and fails the test on any error-level diagnostic.
func parseOK(t *testing.T, src string) *ast.Program {
	t.Helper()
	p := New(src, "test.js")
	prog := p.Parse()
	if p.HasErrors() {
		t.Fatalf("unexpected diagnostics for %q: %s", src, diagnosticsSummary(p.Diagnostics()))
	}
	return prog
}

// firstExpr returns the expression of the first statement, which must be
// an expression statement.
func firstExpr(t *testing.T, prog *ast.Program) ast.Expr {
	t.Helper()
	if len(prog.Body) == 0 {
		t.Fatalf("empty program")
	}
	stmt, ok := prog.Body[0].(*ast.ExprStmt)
	if !ok {
		t.Fatalf("expected ExprStmt, got %T", prog.Body[0])
	}
	return stmt.X
}
