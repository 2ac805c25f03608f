package ast

import (
	"jsfront/internal/source"
	"jsfront/internal/token"
)

// VarDecl is a var, let or const declaration.
type VarDecl struct {
	Loc      source.Span
	DeclKind token.Kind
	Decls    []*VarDeclarator
}

type FuncDecl struct {
	Loc  source.Span
	Func Function
}

type Return struct {
	Loc source.Span
	Arg Expr // nil for a bare return
}

type If struct {
	Loc  source.Span
	Test Expr
	Cons Stmt
	Alt  Stmt // nil without else
}

type While struct {
	Loc  source.Span
	Test Expr
	Body Stmt
}

type DoWhile struct {
	Loc  source.Span
	Body Stmt
	Test Expr
}

// For is the classic three-clause loop. Init is nil, *VarDecl or an Expr.
type For struct {
	Loc    source.Span
	Init   Node
	Test   Expr
	Update Expr
	Body   Stmt
}

// ForIn iterates keys; Left is a *VarDecl with one declarator or an assignable Expr.
type ForIn struct {
	Loc   source.Span
	Left  Node
	Right Expr
	Body  Stmt
}

type ForOf struct {
	Loc   source.Span
	Left  Node
	Right Expr
	Body  Stmt
}

type Break struct {
	Loc   source.Span
	Label *Ident
}

type Continue struct {
	Loc   source.Span
	Label *Ident
}

type Throw struct {
	Loc source.Span
	Arg Expr
}

// Try has a Handler, a Finalizer, or both.
type Try struct {
	Loc       source.Span
	Block     *Block
	Handler   *CatchClause
	Finalizer *Block
}

type Switch struct {
	Loc   source.Span
	Disc  Expr
	Cases []*SwitchCase
}

type Block struct {
	Loc  source.Span
	Body []Stmt
}

type ExprStmt struct {
	Loc source.Span
	X   Expr
}

type Empty struct {
	Loc source.Span
}

type Labeled struct {
	Loc   source.Span
	Label *Ident
	Body  Stmt
}

type Debugger struct {
	Loc source.Span
}

func (n *VarDecl) Kind() NodeKind { return KindVarDecl }
func (n *VarDecl) Span() source.Span { return n.Loc }
func (*VarDecl) node() {}
func (*VarDecl) stmtNode() {}

func (n *FuncDecl) Kind() NodeKind { return KindFuncDecl }
func (n *FuncDecl) Span() source.Span { return n.Loc }
func (*FuncDecl) node() {}
func (*FuncDecl) stmtNode() {}

func (n *Return) Kind() NodeKind { return KindReturn }
func (n *Return) Span() source.Span { return n.Loc }
func (*Return) node() {}
func (*Return) stmtNode() {}

func (n *If) Kind() NodeKind { return KindIf }
func (n *If) Span() source.Span { return n.Loc }
func (*If) node() {}
func (*If) stmtNode() {}

func (n *While) Kind() NodeKind { return KindWhile }
func (n *While) Span() source.Span { return n.Loc }
func (*While) node() {}
func (*While) stmtNode() {}

func (n *DoWhile) Kind() NodeKind { return KindDoWhile }
func (n *DoWhile) Span() source.Span { return n.Loc }
func (*DoWhile) node() {}
func (*DoWhile) stmtNode() {}

func (n *For) Kind() NodeKind { return KindFor }
func (n *For) Span() source.Span { return n.Loc }
func (*For) node() {}
func (*For) stmtNode() {}

func (n *ForIn) Kind() NodeKind { return KindForIn }
func (n *ForIn) Span() source.Span { return n.Loc }
func (*ForIn) node() {}
func (*ForIn) stmtNode() {}

func (n *ForOf) Kind() NodeKind { return KindForOf }
func (n *ForOf) Span() source.Span { return n.Loc }
func (*ForOf) node() {}
func (*ForOf) stmtNode() {}

func (n *Break) Kind() NodeKind { return KindBreak }
func (n *Break) Span() source.Span { return n.Loc }
func (*Break) node() {}
func (*Break) stmtNode() {}

func (n *Continue) Kind() NodeKind { return KindContinue }
func (n *Continue) Span() source.Span { return n.Loc }
func (*Continue) node() {}
func (*Continue) stmtNode() {}

func (n *Throw) Kind() NodeKind { return KindThrow }
func (n *Throw) Span() source.Span { return n.Loc }
func (*Throw) node() {}
func (*Throw) stmtNode() {}

func (n *Try) Kind() NodeKind { return KindTry }
func (n *Try) Span() source.Span { return n.Loc }
func (*Try) node() {}
func (*Try) stmtNode() {}

func (n *Switch) Kind() NodeKind { return KindSwitch }
func (n *Switch) Span() source.Span { return n.Loc }
func (*Switch) node() {}
func (*Switch) stmtNode() {}

func (n *Block) Kind() NodeKind { return KindBlock }
func (n *Block) Span() source.Span { return n.Loc }
func (*Block) node() {}
func (*Block) stmtNode() {}

func (n *ExprStmt) Kind() NodeKind { return KindExprStmt }
func (n *ExprStmt) Span() source.Span { return n.Loc }
func (*ExprStmt) node() {}
func (*ExprStmt) stmtNode() {}

func (n *Empty) Kind() NodeKind { return KindEmpty }
func (n *Empty) Span() source.Span { return n.Loc }
func (*Empty) node() {}
func (*Empty) stmtNode() {}

func (n *Labeled) Kind() NodeKind { return KindLabeled }
func (n *Labeled) Span() source.Span { return n.Loc }
func (*Labeled) node() {}
func (*Labeled) stmtNode() {}

func (n *Debugger) Kind() NodeKind { return KindDebugger }
func (n *Debugger) Span() source.Span { return n.Loc }
func (*Debugger) node() {}
func (*Debugger) stmtNode() {}
