package ast

import "fmt"

// Visitor is called for each node reached by Walk. If Visit returns a nil
// Visitor the children of n are skipped; otherwise Walk descends with the
// returned visitor and calls Visit(nil) once the children are done.
type Visitor interface {
	Visit(n Node) (w Visitor)
}

// Walk traverses the tree rooted at n depth-first, children in source order.
func Walk(v Visitor, n Node) {
	if v = v.Visit(n); v == nil {
		return
	}

	switch n := n.(type) {
	case *Program:
		walkStmts(v, n.Body)

	case *NumberLit, *StringLit, *BoolLit, *NullLit, *UndefinedLit,
		*Ident, *This, *Hole, *Empty, *Debugger:
		// leaves

	case *ArrayLit:
		walkExprs(v, n.Elements)
	case *ObjectLit:
		for _, p := range n.Properties {
			Walk(v, p)
		}
	case *Property:
		Walk(v, n.Key)
		// shorthand {a} repeats the key as its value
		if n.Value != nil && !n.Shorthand {
			Walk(v, n.Value)
		}
	case *Spread:
		Walk(v, n.Arg)
	case *FuncExpr:
		walkFunction(v, &n.Func)
	case *ArrowFunc:
		for _, p := range n.Params {
			Walk(v, p)
		}
		if n.BlockBody != nil {
			Walk(v, n.BlockBody)
		} else if n.ExprBody != nil {
			Walk(v, n.ExprBody)
		}
	case *Param:
		Walk(v, n.Name)
		if n.Default != nil {
			Walk(v, n.Default)
		}
	case *Unary:
		if n.Arg != nil {
			Walk(v, n.Arg)
		}
	case *Update:
		Walk(v, n.Arg)
	case *Binary:
		Walk(v, n.Left)
		Walk(v, n.Right)
	case *Logical:
		Walk(v, n.Left)
		Walk(v, n.Right)
	case *Assign:
		Walk(v, n.Target)
		Walk(v, n.Value)
	case *Conditional:
		Walk(v, n.Test)
		Walk(v, n.Cons)
		Walk(v, n.Alt)
	case *Call:
		Walk(v, n.Callee)
		walkExprs(v, n.Args)
	case *New:
		Walk(v, n.Callee)
		walkExprs(v, n.Args)
	case *Member:
		Walk(v, n.Object)
		Walk(v, n.Property)
	case *Sequence:
		walkExprs(v, n.Exprs)

	case *VarDecl:
		for _, d := range n.Decls {
			Walk(v, d)
		}
	case *VarDeclarator:
		Walk(v, n.Name)
		if n.Init != nil {
			Walk(v, n.Init)
		}
	case *FuncDecl:
		walkFunction(v, &n.Func)
	case *Return:
		if n.Arg != nil {
			Walk(v, n.Arg)
		}
	case *If:
		Walk(v, n.Test)
		Walk(v, n.Cons)
		if n.Alt != nil {
			Walk(v, n.Alt)
		}
	case *While:
		Walk(v, n.Test)
		Walk(v, n.Body)
	case *DoWhile:
		Walk(v, n.Body)
		Walk(v, n.Test)
	case *For:
		if n.Init != nil {
			Walk(v, n.Init)
		}
		if n.Test != nil {
			Walk(v, n.Test)
		}
		if n.Update != nil {
			Walk(v, n.Update)
		}
		Walk(v, n.Body)
	case *ForIn:
		Walk(v, n.Left)
		Walk(v, n.Right)
		Walk(v, n.Body)
	case *ForOf:
		Walk(v, n.Left)
		Walk(v, n.Right)
		Walk(v, n.Body)
	case *Break:
		if n.Label != nil {
			Walk(v, n.Label)
		}
	case *Continue:
		if n.Label != nil {
			Walk(v, n.Label)
		}
	case *Throw:
		Walk(v, n.Arg)
	case *Try:
		Walk(v, n.Block)
		if n.Handler != nil {
			Walk(v, n.Handler)
		}
		if n.Finalizer != nil {
			Walk(v, n.Finalizer)
		}
	case *CatchClause:
		if n.Param != nil {
			Walk(v, n.Param)
		}
		Walk(v, n.Body)
	case *Switch:
		Walk(v, n.Disc)
		for _, c := range n.Cases {
			Walk(v, c)
		}
	case *SwitchCase:
		if n.Test != nil {
			Walk(v, n.Test)
		}
		walkStmts(v, n.Body)
	case *Block:
		walkStmts(v, n.Body)
	case *ExprStmt:
		Walk(v, n.X)
	case *Labeled:
		Walk(v, n.Label)
		Walk(v, n.Body)

	default:
		panic(fmt.Sprintf("ast.Walk: unexpected node type %T", n))
	}

	v.Visit(nil)
}

func walkExprs(v Visitor, list []Expr) {
	for _, x := range list {
		Walk(v, x)
	}
}

func walkStmts(v Visitor, list []Stmt) {
	for _, s := range list {
		Walk(v, s)
	}
}

func walkFunction(v Visitor, fn *Function) {
	if fn.Name != nil {
		Walk(v, fn.Name)
	}
	for _, p := range fn.Params {
		Walk(v, p)
	}
	if fn.Body != nil {
		Walk(v, fn.Body)
	}
}

type inspector func(Node) bool

func (f inspector) Visit(n Node) Visitor {
	if f(n) {
		return f
	}
	return nil
}

// Inspect calls f for every node in source order; returning false prunes
// the subtree. After the children of a node, f(nil) is called.
func Inspect(n Node, f func(Node) bool) {
	Walk(inspector(f), n)
}

// Children returns the direct children of n in source order.
func Children(n Node) []Node {
	var out []Node
	Inspect(n, func(c Node) bool {
		if c == nil || c == n {
			return c == n
		}
		out = append(out, c)
		return false
	})
	return out
}
