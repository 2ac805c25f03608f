package ast_test

import (
	"strings"
	"testing"

	"jsfront/internal/ast"
	"jsfront/internal/token"
)

func ident(name string) *ast.Ident { return &ast.Ident{Name: name} }

// x = a + b * 2;
func sampleProgram() *ast.Program {
	return &ast.Program{Body: []ast.Stmt{
		&ast.ExprStmt{X: &ast.Assign{
			Op:     token.Assign,
			Target: ident("x"),
			Value: &ast.Binary{
				Op:   token.Plus,
				Left: ident("a"),
				Right: &ast.Binary{
					Op:    token.Star,
					Left:  ident("b"),
					Right: &ast.NumberLit{Value: 2, Raw: "2"},
				},
			},
		}},
	}}
}

func TestInspectSourceOrder(t *testing.T) {
	var kinds []string
	ast.Inspect(sampleProgram(), func(n ast.Node) bool {
		if n != nil {
			kinds = append(kinds, n.Kind().String())
		}
		return true
	})
	want := "Program ExpressionStatement AssignmentExpression Identifier BinaryExpression Identifier BinaryExpression Identifier NumberLiteral"
	if got := strings.Join(kinds, " "); got != want {
		t.Fatalf("visit order:\n got %s\nwant %s", got, want)
	}
}

func TestInspectPrune(t *testing.T) {
	count := 0
	ast.Inspect(sampleProgram(), func(n ast.Node) bool {
		if n == nil {
			return false
		}
		count++
		_, isBin := n.(*ast.Binary)
		return !isBin
	})
	// Program, ExprStmt, Assign, x, outer Binary
	if count != 5 {
		t.Fatalf("expected 5 visited nodes, got %d", count)
	}
}

func TestChildren(t *testing.T) {
	stmt := &ast.If{
		Test: ident("c"),
		Cons: &ast.Block{},
		Alt:  &ast.Empty{},
	}
	kids := ast.Children(stmt)
	if len(kids) != 3 {
		t.Fatalf("expected 3 children, got %d", len(kids))
	}
	if kids[0].Kind() != ast.KindIdent || kids[1].Kind() != ast.KindBlock || kids[2].Kind() != ast.KindEmpty {
		t.Fatalf("unexpected children: %v %v %v", kids[0].Kind(), kids[1].Kind(), kids[2].Kind())
	}
}

func TestWalkOptionalChildren(t *testing.T) {
	nodes := []ast.Node{
		&ast.Return{},
		&ast.Break{},
		&ast.For{Body: &ast.Empty{}},
		&ast.Try{Block: &ast.Block{}, Finalizer: &ast.Block{}},
		&ast.SwitchCase{},
		&ast.CatchClause{Body: &ast.Block{}},
		&ast.FuncExpr{Func: ast.Function{Body: &ast.Block{}}},
		&ast.ArrowFunc{ExprBody: ident("x")},
		&ast.Property{Key: ident("a"), Value: ident("a"), Shorthand: true},
	}
	for _, n := range nodes {
		ast.Inspect(n, func(ast.Node) bool { return true })
	}
}

func TestShorthandPropertyVisitedOnce(t *testing.T) {
	key := ident("a")
	obj := &ast.ObjectLit{Properties: []ast.ObjectMember{
		&ast.Property{Key: key, Value: key, Shorthand: true},
		&ast.Spread{Arg: ident("rest")},
	}}
	seen := 0
	ast.Inspect(obj, func(n ast.Node) bool {
		if n == ast.Node(key) {
			seen++
		}
		return true
	})
	if seen != 1 {
		t.Fatalf("shorthand key visited %d times", seen)
	}
}

func TestKindNames(t *testing.T) {
	tests := []struct {
		k    ast.NodeKind
		want string
	}{
		{ast.KindProgram, "Program"},
		{ast.KindArrowFunc, "ArrowFunctionExpression"},
		{ast.KindParam, "Parameter"},
		{ast.KindDebugger, "DebuggerStatement"},
		{ast.NodeKind(250), "Node?"},
	}
	for _, tt := range tests {
		if got := tt.k.String(); got != tt.want {
			t.Fatalf("%d: got %q, want %q", tt.k, got, tt.want)
		}
	}
}
