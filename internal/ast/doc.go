// Package ast defines the syntax tree produced by the parser.
//
// The tree is a closed sum type: Node, Expr and Stmt are interfaces with
// unexported marker methods, so only this package can add variants. Every
// consumer dispatches with a type switch; Walk is the reference switch and
// panics on an unknown node, so adding a variant without updating Walk
// fails loudly in tests.
//
// Each node owns its children (no sharing) and carries a source.Span that
// covers its full lexical extent, from the first to the last consumed token.
package ast
