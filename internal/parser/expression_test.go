package parser

import (
	"strings"
	"testing"

	"jsfront/internal/ast"
	"jsfront/internal/token"
)

func TestBinaryPrecedence(t *testing.T) {
	prog := parseOK(t, "2 + 3 * 4")
	add, ok := firstExpr(t, prog).(*ast.Binary)
	if !ok || add.Op != token.Plus {
		t.Fatalf("expected '+' at the root, got %#v", firstExpr(t, prog))
	}
	if lit, ok := add.Left.(*ast.NumberLit); !ok || lit.Value != 2 {
		t.Fatalf("left operand: %#v", add.Left)
	}
	mul, ok := add.Right.(*ast.Binary)
	if !ok || mul.Op != token.Star {
		t.Fatalf("expected '*' on the right, got %#v", add.Right)
	}
	if add.Loc.Start != 0 || add.Loc.End != 9 {
		t.Fatalf("binary span = %d..%d, want 0..9", add.Loc.Start, add.Loc.End)
	}
}

func TestOperatorLevels(t *testing.T) {
	tests := []struct {
		src     string
		rootOp  token.Kind
		logical bool
	}{
		{"a || b && c", token.OrOr, true},
		{"a ?? b || c", token.QuestionQuestion, true},
		{"a | b ^ c & d", token.Pipe, false},
		{"a == b < c", token.EqEq, false},
		{"a < b << c", token.Lt, false},
		{"a << b + c", token.Shl, false},
		{"a - b % c", token.Minus, false},
		{"a * b ** c", token.Star, false},
		{"a in b", token.KwIn, false},
		{"a instanceof B", token.KwInstanceof, false},
		{"a - b - c", token.Minus, false},
	}
	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			x := firstExpr(t, parseOK(t, tt.src))
			switch n := x.(type) {
			case *ast.Binary:
				if tt.logical || n.Op != tt.rootOp {
					t.Fatalf("root = Binary %s, want %s (logical=%v)", n.Op, tt.rootOp, tt.logical)
				}
			case *ast.Logical:
				if !tt.logical || n.Op != tt.rootOp {
					t.Fatalf("root = Logical %s, want %s", n.Op, tt.rootOp)
				}
			default:
				t.Fatalf("unexpected root %T", x)
			}
		})
	}
}

func TestLeftAssociativity(t *testing.T) {
	bin := firstExpr(t, parseOK(t, "a - b - c")).(*ast.Binary)
	if _, ok := bin.Left.(*ast.Binary); !ok {
		t.Fatalf("a - b - c must group as (a - b) - c")
	}
}

func TestRightAssociativity(t *testing.T) {
	pow := firstExpr(t, parseOK(t, "2 ** 3 ** 2")).(*ast.Binary)
	if _, ok := pow.Right.(*ast.Binary); !ok {
		t.Fatalf("** must be right-associative")
	}

	assign := firstExpr(t, parseOK(t, "a = b += c")).(*ast.Assign)
	inner, ok := assign.Value.(*ast.Assign)
	if !ok || inner.Op != token.PlusAssign {
		t.Fatalf("assignment must be right-associative, got %#v", assign.Value)
	}
}

func TestExponentOperands(t *testing.T) {
	for _, src := range []string{"(-2) ** 2", "++x ** 2", "2 ** -1", "-(2 ** 2)"} {
		parseOK(t, src)
	}
	pow, ok := firstExpr(t, parseOK(t, "(-2) ** 2")).(*ast.Binary)
	if !ok || pow.Op != token.StarStar {
		t.Fatalf("expected ** at the top")
	}
	if _, ok := pow.Left.(*ast.Unary); !ok {
		t.Fatalf("left operand = %T, want Unary", pow.Left)
	}
}

func TestSequenceAndConditional(t *testing.T) {
	seq, ok := firstExpr(t, parseOK(t, "a = b ? c : d, e")).(*ast.Sequence)
	if !ok || len(seq.Exprs) != 2 {
		t.Fatalf("expected 2-element sequence")
	}
	assign := seq.Exprs[0].(*ast.Assign)
	if _, ok := assign.Value.(*ast.Conditional); !ok {
		t.Fatalf("conditional must bind tighter than assignment")
	}
}

func TestMemberCallChain(t *testing.T) {
	// a.b.c()[d]
	x := firstExpr(t, parseOK(t, "a.b.c()[d]"))
	idx, ok := x.(*ast.Member)
	if !ok || !idx.Computed {
		t.Fatalf("root must be a computed member, got %T", x)
	}
	call, ok := idx.Object.(*ast.Call)
	if !ok {
		t.Fatalf("expected call under index, got %T", idx.Object)
	}
	callee, ok := call.Callee.(*ast.Member)
	if !ok || callee.Property.(*ast.Ident).Name != "c" {
		t.Fatalf("unexpected callee %#v", call.Callee)
	}
	if inner := callee.Object.(*ast.Member); inner.Property.(*ast.Ident).Name != "b" {
		t.Fatalf("expected a.b at the bottom of the chain")
	}
	if idx.Loc.Start != 0 || idx.Loc.End != 10 {
		t.Fatalf("chain span = %d..%d, want 0..10", idx.Loc.Start, idx.Loc.End)
	}
}

func TestOptionalChain(t *testing.T) {
	x := firstExpr(t, parseOK(t, "a?.b?.(1)"))
	call, ok := x.(*ast.Call)
	if !ok || !call.Optional {
		t.Fatalf("expected optional call, got %#v", x)
	}
	m, ok := call.Callee.(*ast.Member)
	if !ok || !m.Optional {
		t.Fatalf("expected optional member, got %#v", call.Callee)
	}
}

func TestNewExpression(t *testing.T) {
	x := firstExpr(t, parseOK(t, "new Foo.Bar(1, 2).baz"))
	m, ok := x.(*ast.Member)
	if !ok {
		t.Fatalf("expected member at root, got %T", x)
	}
	n, ok := m.Object.(*ast.New)
	if !ok || len(n.Args) != 2 {
		t.Fatalf("expected new with 2 args, got %#v", m.Object)
	}
	if _, ok := n.Callee.(*ast.Member); !ok {
		t.Fatalf("new callee should be Foo.Bar, got %T", n.Callee)
	}

	nested := firstExpr(t, parseOK(t, "new new X()()")).(*ast.New)
	if _, ok := nested.Callee.(*ast.New); !ok {
		t.Fatalf("expected nested new")
	}
}

func TestUnaryAndUpdate(t *testing.T) {
	x := firstExpr(t, parseOK(t, "!-x++"))
	not := x.(*ast.Unary)
	neg := not.Arg.(*ast.Unary)
	upd, ok := neg.Arg.(*ast.Update)
	if not.Op != token.Bang || neg.Op != token.Minus || !ok || upd.Prefix {
		t.Fatalf("unexpected unary tree %#v", x)
	}

	pre := firstExpr(t, parseOK(t, "--y")).(*ast.Update)
	if !pre.Prefix || pre.Op != token.MinusMinus {
		t.Fatalf("expected prefix decrement")
	}
}

func TestPostfixAfterNewlineStartsNewStatement(t *testing.T) {
	prog := parseOK(t, "a\n++b")
	if len(prog.Body) != 2 {
		t.Fatalf("expected 2 statements, got %d", len(prog.Body))
	}
	if upd := firstExpr(t, &ast.Program{Body: prog.Body[1:]}).(*ast.Update); !upd.Prefix {
		t.Fatalf("second statement must be a prefix update")
	}
}

func TestArrowFunctions(t *testing.T) {
	tests := []struct {
		src    string
		params int
		async  bool
		block  bool
	}{
		{"x => x * 2", 1, false, false},
		{"(a, b) => a + b", 2, false, false},
		{"() => {}", 0, false, true},
		{"(a, ...rest) => { return rest; }", 2, false, true},
		{"async x => await x", 1, true, false},
		{"async (a = 1) => { await a; }", 1, true, true},
	}
	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			arrow, ok := firstExpr(t, parseOK(t, tt.src)).(*ast.ArrowFunc)
			if !ok {
				t.Fatalf("expected arrow function")
			}
			if len(arrow.Params) != tt.params || arrow.Async != tt.async || (arrow.BlockBody != nil) != tt.block {
				t.Fatalf("arrow = %d params async=%v block=%v", len(arrow.Params), arrow.Async, arrow.BlockBody != nil)
			}
			if arrow.Loc.Start != 0 || int(arrow.Loc.End) != len(tt.src) {
				t.Fatalf("arrow span = %d..%d, want 0..%d", arrow.Loc.Start, arrow.Loc.End, len(tt.src))
			}
		})
	}
}

func TestNestedParensScannedOnce(t *testing.T) {
	const depth = 3000
	src := strings.Repeat("(", depth) + "x" + strings.Repeat(")", depth)
	p := New(src, "test.js")
	prog := p.Parse()
	if p.HasErrors() {
		t.Fatalf("unexpected diagnostics: %s", diagnosticsSummary(p.Diagnostics()))
	}
	if _, ok := firstExpr(t, prog).(*ast.Ident); !ok {
		t.Fatalf("parentheses must not produce nodes, got %T", firstExpr(t, prog))
	}
	if len(p.arrowParens) != depth {
		t.Fatalf("expected one arrow lookahead entry per group, got %d", len(p.arrowParens))
	}
	for off, arrow := range p.arrowParens {
		if arrow {
			t.Fatalf("group at %d marked as arrow parameters", off)
		}
	}

	p = New("((x) => x)(1)", "test.js")
	call, ok := firstExpr(t, p.Parse()).(*ast.Call)
	if !ok || p.HasErrors() {
		t.Fatalf("expected call without errors: %s", diagnosticsSummary(p.Diagnostics()))
	}
	if _, ok := call.Callee.(*ast.ArrowFunc); !ok {
		t.Fatalf("callee should be an arrow, got %T", call.Callee)
	}
	if !p.arrowParens[1] || p.arrowParens[0] {
		t.Fatalf("lookahead cache = %v", p.arrowParens)
	}
}

func TestParenthesizedIsNotArrow(t *testing.T) {
	call, ok := firstExpr(t, parseOK(t, "(a, b)(c)")).(*ast.Call)
	if !ok {
		t.Fatalf("expected call")
	}
	if _, ok := call.Callee.(*ast.Sequence); !ok {
		t.Fatalf("callee should be a sequence, got %T", call.Callee)
	}
}

func TestArrayLiteral(t *testing.T) {
	arr := firstExpr(t, parseOK(t, "[1, , ...xs, 2,]")).(*ast.ArrayLit)
	if len(arr.Elements) != 4 {
		t.Fatalf("expected 4 elements, got %d", len(arr.Elements))
	}
	if _, ok := arr.Elements[1].(*ast.Hole); !ok {
		t.Fatalf("element 1 should be a hole, got %T", arr.Elements[1])
	}
	if _, ok := arr.Elements[2].(*ast.Spread); !ok {
		t.Fatalf("element 2 should be a spread, got %T", arr.Elements[2])
	}
}

func TestObjectLiteral(t *testing.T) {
	src := "x = { a, b: 2, [k]: 3, m() { return this; }, get v() { return 1; }, set v(x) {}, ...rest, 'str': 1, 10: 2, if: 0, get: 1 }"
	assign := firstExpr(t, parseOK(t, src)).(*ast.Assign)
	obj := assign.Value.(*ast.ObjectLit)
	if len(obj.Properties) != 11 {
		t.Fatalf("expected 11 members, got %d", len(obj.Properties))
	}

	prop := func(i int) *ast.Property {
		p, ok := obj.Properties[i].(*ast.Property)
		if !ok {
			t.Fatalf("member %d: expected property, got %T", i, obj.Properties[i])
		}
		return p
	}
	if !prop(0).Shorthand {
		t.Fatalf("member 0 should be shorthand")
	}
	if !prop(2).Computed {
		t.Fatalf("member 2 should be computed")
	}
	if prop(3).PropKind != ast.PropMethod {
		t.Fatalf("member 3 kind = %s", prop(3).PropKind)
	}
	if prop(4).PropKind != ast.PropGet || prop(5).PropKind != ast.PropSet {
		t.Fatalf("accessor kinds = %s, %s", prop(4).PropKind, prop(5).PropKind)
	}
	if _, ok := obj.Properties[6].(*ast.Spread); !ok {
		t.Fatalf("member 6 should be spread")
	}
	if key, ok := prop(9).Key.(*ast.Ident); !ok || key.Name != "if" {
		t.Fatalf("keyword keys must be allowed")
	}
	if prop(10).PropKind != ast.PropInit {
		t.Fatalf("'get: 1' is a plain property")
	}
}

func TestLiterals(t *testing.T) {
	arr := firstExpr(t, parseOK(t, `[0x1F, "a\tb", true, null, undefined, this]`)).(*ast.ArrayLit)
	if n := arr.Elements[0].(*ast.NumberLit); n.Value != 31 || n.Raw != "0x1F" {
		t.Fatalf("number literal = %v (%s)", n.Value, n.Raw)
	}
	if s := arr.Elements[1].(*ast.StringLit); s.Value != "a\tb" {
		t.Fatalf("string literal = %q", s.Value)
	}
	kinds := []ast.NodeKind{ast.KindBoolLit, ast.KindNullLit, ast.KindUndefinedLit, ast.KindThis}
	for i, k := range kinds {
		if got := arr.Elements[i+2].Kind(); got != k {
			t.Fatalf("element %d kind = %s, want %s", i+2, got, k)
		}
	}
}
