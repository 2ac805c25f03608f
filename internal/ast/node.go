package ast

import "jsfront/internal/source"

// Node is implemented by every tree node. The unexported marker methods
// close the set: only types in this package satisfy Node, Expr and Stmt.
type Node interface {
	Kind() NodeKind
	Span() source.Span
	node()
}

// Expr is a Node that produces a value.
type Expr interface {
	Node
	exprNode()
}

// Stmt is a Node that appears in a statement list.
type Stmt interface {
	Node
	stmtNode()
}

// ObjectMember is an entry of an object literal: *Property or *Spread.
type ObjectMember interface {
	Node
	objectMember()
}

func (*Property) objectMember() {}
func (*Spread) objectMember()   {}

// PropKind distinguishes plain, method and accessor properties.
type PropKind uint8

const (
	PropInit PropKind = iota
	PropMethod
	PropGet
	PropSet
)

func (k PropKind) String() string {
	switch k {
	case PropMethod:
		return "method"
	case PropGet:
		return "get"
	case PropSet:
		return "set"
	default:
		return "init"
	}
}

// Function is shared by FuncDecl and FuncExpr. Name is nil for anonymous
// function expressions.
type Function struct {
	Name      *Ident
	Params    []*Param
	Body      *Block
	Async     bool
	Generator bool
}
