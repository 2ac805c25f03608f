package ast

import (
	"jsfront/internal/source"
)

// Program is the root; Body keeps statements in source order.
type Program struct {
	Loc  source.Span
	Body []Stmt
}

// Property is one key/value entry of an object literal.
type Property struct {
	Loc       source.Span
	Key       Expr // *Ident, *StringLit, *NumberLit, or any Expr when Computed
	Value     Expr
	PropKind  PropKind
	Computed  bool
	Shorthand bool
}

// Param is a function parameter with an optional default or rest marker.
type Param struct {
	Loc     source.Span
	Name    *Ident
	Default Expr
	Rest    bool
}

type VarDeclarator struct {
	Loc  source.Span
	Name *Ident
	Init Expr
}

// SwitchCase with a nil Test is the default clause.
type SwitchCase struct {
	Loc  source.Span
	Test Expr
	Body []Stmt
}

type CatchClause struct {
	Loc   source.Span
	Param *Ident // nil for catch without binding
	Body  *Block
}

func (n *Program) Kind() NodeKind { return KindProgram }
func (n *Program) Span() source.Span { return n.Loc }
func (*Program) node() {}

func (n *Property) Kind() NodeKind { return KindProperty }
func (n *Property) Span() source.Span { return n.Loc }
func (*Property) node() {}

func (n *Param) Kind() NodeKind { return KindParam }
func (n *Param) Span() source.Span { return n.Loc }
func (*Param) node() {}

func (n *VarDeclarator) Kind() NodeKind { return KindVarDeclarator }
func (n *VarDeclarator) Span() source.Span { return n.Loc }
func (*VarDeclarator) node() {}

func (n *SwitchCase) Kind() NodeKind { return KindSwitchCase }
func (n *SwitchCase) Span() source.Span { return n.Loc }
func (*SwitchCase) node() {}

func (n *CatchClause) Kind() NodeKind { return KindCatchClause }
func (n *CatchClause) Span() source.Span { return n.Loc }
func (*CatchClause) node() {}
