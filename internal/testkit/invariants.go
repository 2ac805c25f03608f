package testkit

import (
	"fmt"

	"fortio.org/safecast"

	"jsfront/internal/ast"
	"jsfront/internal/source"
)

// CheckSpanInvariants runs a minimal set of span invariants on a parsed program:
// 1) program span lies within file content bounds
// 2) every node span belongs to the file and is non-empty (holes excepted)
// 3) every node span is contained in the span of its parent
func CheckSpanInvariants(prog *ast.Program, sf *source.File) error {
	if prog == nil || sf == nil {
		return fmt.Errorf("nil program or file")
	}

	lenContent, err := safecast.Conv[uint32](len(sf.Content))
	if err != nil {
		return fmt.Errorf("len content overflow: %w", err)
	}
	if prog.Loc.File != sf.ID {
		return fmt.Errorf("program span points to different file id: got=%d want=%d", prog.Loc.File, sf.ID)
	}
	if prog.Loc.Start > prog.Loc.End || prog.Loc.End > lenContent {
		return fmt.Errorf("program span %v outside content of %d bytes", prog.Loc, lenContent)
	}

	var firstErr error
	var stack []ast.Node
	ast.Inspect(prog, func(n ast.Node) bool {
		if n == nil {
			stack = stack[:len(stack)-1]
			return true
		}
		if firstErr == nil {
			firstErr = checkNode(n, stack, sf.ID)
		}
		stack = append(stack, n)
		return true
	})
	return firstErr
}

func checkNode(n ast.Node, stack []ast.Node, file source.FileID) error {
	sp := n.Span()
	if sp.File != file {
		return fmt.Errorf("%s span file mismatch: got=%d want=%d", n.Kind(), sp.File, file)
	}
	if sp.End < sp.Start {
		return fmt.Errorf("%s span is inverted: %v", n.Kind(), sp)
	}
	if _, hole := n.(*ast.Hole); !hole && len(stack) > 0 && sp.Empty() {
		return fmt.Errorf("empty %s span: %v", n.Kind(), sp)
	}
	if len(stack) == 0 {
		return nil
	}
	parent := stack[len(stack)-1]
	if ps := parent.Span(); sp.Start < ps.Start || sp.End > ps.End {
		return fmt.Errorf("%s span %v is outside parent %s span %v", n.Kind(), sp, parent.Kind(), ps)
	}
	return nil
}
