package ast

import (
	"jsfront/internal/source"
	"jsfront/internal/token"
)

// NumberLit is a numeric literal; Raw keeps the source spelling.
type NumberLit struct {
	Loc   source.Span
	Value float64
	Raw   string
}

// StringLit holds the decoded value of a string literal.
type StringLit struct {
	Loc   source.Span
	Value string
	Raw   string
}

type BoolLit struct {
	Loc   source.Span
	Value bool
}

type NullLit struct {
	Loc source.Span
}

type UndefinedLit struct {
	Loc source.Span
}

type Ident struct {
	Loc  source.Span
	Name string
}

type This struct {
	Loc source.Span
}

// ArrayLit elements may be *Hole (elision) or *Spread.
type ArrayLit struct {
	Loc      source.Span
	Elements []Expr
}

type ObjectLit struct {
	Loc        source.Span
	Properties []ObjectMember
}

type FuncExpr struct {
	Loc  source.Span
	Func Function
}

// ArrowFunc has exactly one of BlockBody and ExprBody set.
type ArrowFunc struct {
	Loc       source.Span
	Params    []*Param
	BlockBody *Block
	ExprBody  Expr
	Async     bool
}

// Unary covers ! ~ + - typeof void delete await, and yield inside
// generators. A bare yield has a nil Arg.
type Unary struct {
	Loc      source.Span
	Op       token.Kind
	Arg      Expr
	Delegate bool // yield*
}

type Update struct {
	Loc    source.Span
	Op     token.Kind // ++ or --
	Prefix bool
	Arg    Expr
}

type Binary struct {
	Loc   source.Span
	Op    token.Kind
	Left  Expr
	Right Expr
}

// Logical is a short-circuit operator: &&, || or ??.
type Logical struct {
	Loc   source.Span
	Op    token.Kind
	Left  Expr
	Right Expr
}

// Assign targets are *Ident or *Member.
type Assign struct {
	Loc    source.Span
	Op     token.Kind
	Target Expr
	Value  Expr
}

type Conditional struct {
	Loc  source.Span
	Test Expr
	Cons Expr
	Alt  Expr
}

type Call struct {
	Loc      source.Span
	Callee   Expr
	Args     []Expr
	Optional bool // callee?.()
}

type New struct {
	Loc    source.Span
	Callee Expr
	Args   []Expr
}

// Member is obj.prop, obj[prop] (Computed) or obj?.prop (Optional).
// For the dotted forms Property is an *Ident.
type Member struct {
	Loc      source.Span
	Object   Expr
	Property Expr
	Computed bool
	Optional bool
}

type Sequence struct {
	Loc   source.Span
	Exprs []Expr
}

// Spread is ...arg in array literals, calls and object literals.
type Spread struct {
	Loc source.Span
	Arg Expr
}

// Hole is an elided array element: the gap in [a, , b].
type Hole struct {
	Loc source.Span
}

func (n *NumberLit) Kind() NodeKind { return KindNumberLit }
func (n *NumberLit) Span() source.Span { return n.Loc }
func (*NumberLit) node() {}
func (*NumberLit) exprNode() {}

func (n *StringLit) Kind() NodeKind { return KindStringLit }
func (n *StringLit) Span() source.Span { return n.Loc }
func (*StringLit) node() {}
func (*StringLit) exprNode() {}

func (n *BoolLit) Kind() NodeKind { return KindBoolLit }
func (n *BoolLit) Span() source.Span { return n.Loc }
func (*BoolLit) node() {}
func (*BoolLit) exprNode() {}

func (n *NullLit) Kind() NodeKind { return KindNullLit }
func (n *NullLit) Span() source.Span { return n.Loc }
func (*NullLit) node() {}
func (*NullLit) exprNode() {}

func (n *UndefinedLit) Kind() NodeKind { return KindUndefinedLit }
func (n *UndefinedLit) Span() source.Span { return n.Loc }
func (*UndefinedLit) node() {}
func (*UndefinedLit) exprNode() {}

func (n *Ident) Kind() NodeKind { return KindIdent }
func (n *Ident) Span() source.Span { return n.Loc }
func (*Ident) node() {}
func (*Ident) exprNode() {}

func (n *This) Kind() NodeKind { return KindThis }
func (n *This) Span() source.Span { return n.Loc }
func (*This) node() {}
func (*This) exprNode() {}

func (n *ArrayLit) Kind() NodeKind { return KindArrayLit }
func (n *ArrayLit) Span() source.Span { return n.Loc }
func (*ArrayLit) node() {}
func (*ArrayLit) exprNode() {}

func (n *ObjectLit) Kind() NodeKind { return KindObjectLit }
func (n *ObjectLit) Span() source.Span { return n.Loc }
func (*ObjectLit) node() {}
func (*ObjectLit) exprNode() {}

func (n *FuncExpr) Kind() NodeKind { return KindFuncExpr }
func (n *FuncExpr) Span() source.Span { return n.Loc }
func (*FuncExpr) node() {}
func (*FuncExpr) exprNode() {}

func (n *ArrowFunc) Kind() NodeKind { return KindArrowFunc }
func (n *ArrowFunc) Span() source.Span { return n.Loc }
func (*ArrowFunc) node() {}
func (*ArrowFunc) exprNode() {}

func (n *Unary) Kind() NodeKind { return KindUnary }
func (n *Unary) Span() source.Span { return n.Loc }
func (*Unary) node() {}
func (*Unary) exprNode() {}

func (n *Update) Kind() NodeKind { return KindUpdate }
func (n *Update) Span() source.Span { return n.Loc }
func (*Update) node() {}
func (*Update) exprNode() {}

func (n *Binary) Kind() NodeKind { return KindBinary }
func (n *Binary) Span() source.Span { return n.Loc }
func (*Binary) node() {}
func (*Binary) exprNode() {}

func (n *Logical) Kind() NodeKind { return KindLogical }
func (n *Logical) Span() source.Span { return n.Loc }
func (*Logical) node() {}
func (*Logical) exprNode() {}

func (n *Assign) Kind() NodeKind { return KindAssign }
func (n *Assign) Span() source.Span { return n.Loc }
func (*Assign) node() {}
func (*Assign) exprNode() {}

func (n *Conditional) Kind() NodeKind { return KindConditional }
func (n *Conditional) Span() source.Span { return n.Loc }
func (*Conditional) node() {}
func (*Conditional) exprNode() {}

func (n *Call) Kind() NodeKind { return KindCall }
func (n *Call) Span() source.Span { return n.Loc }
func (*Call) node() {}
func (*Call) exprNode() {}

func (n *New) Kind() NodeKind { return KindNew }
func (n *New) Span() source.Span { return n.Loc }
func (*New) node() {}
func (*New) exprNode() {}

func (n *Member) Kind() NodeKind { return KindMember }
func (n *Member) Span() source.Span { return n.Loc }
func (*Member) node() {}
func (*Member) exprNode() {}

func (n *Sequence) Kind() NodeKind { return KindSequence }
func (n *Sequence) Span() source.Span { return n.Loc }
func (*Sequence) node() {}
func (*Sequence) exprNode() {}

func (n *Spread) Kind() NodeKind { return KindSpread }
func (n *Spread) Span() source.Span { return n.Loc }
func (*Spread) node() {}
func (*Spread) exprNode() {}

func (n *Hole) Kind() NodeKind { return KindHole }
func (n *Hole) Span() source.Span { return n.Loc }
func (*Hole) node() {}
func (*Hole) exprNode() {}
