package diagfmt

import (
	"fmt"
	"strconv"
	"strings"

	"jsfront/internal/ast"
	"jsfront/internal/source"
)

type treeNode struct {
	label    string
	children []*treeNode
}

type nodeAttr struct {
	key   string
	value any
}

// buildTreeNode строит дерево для печати: метка узла содержит вид узла,
// его атрибуты и span, дети идут в порядке исходного текста.
func buildTreeNode(n ast.Node, fs *source.FileSet) *treeNode {
	var sb strings.Builder
	sb.WriteString(n.Kind().String())
	for _, a := range nodeAttrs(n) {
		fmt.Fprintf(&sb, " %s=%s", a.key, formatAttr(a.value))
	}
	fmt.Fprintf(&sb, " (span: %s)", formatSpan(n.Span(), fs))

	node := &treeNode{label: sb.String()}
	for _, child := range ast.Children(n) {
		node.children = append(node.children, buildTreeNode(child, fs))
	}
	return node
}

func formatAttr(v any) string {
	switch x := v.(type) {
	case string:
		return strconv.Quote(x)
	case float64:
		return strconv.FormatFloat(x, 'g', -1, 64)
	default:
		return fmt.Sprint(x)
	}
}

// nodeAttrs возвращает скалярные поля узла. Булевы флаги попадают в
// список только когда выставлены.
func nodeAttrs(n ast.Node) []nodeAttr {
	var attrs []nodeAttr
	flag := func(key string, on bool) {
		if on {
			attrs = append(attrs, nodeAttr{key, true})
		}
	}
	fn := func(f *ast.Function) {
		flag("async", f.Async)
		flag("generator", f.Generator)
	}

	switch x := n.(type) {
	case *ast.NumberLit:
		attrs = append(attrs, nodeAttr{"value", x.Value}, nodeAttr{"raw", x.Raw})
	case *ast.StringLit:
		attrs = append(attrs, nodeAttr{"value", x.Value})
	case *ast.BoolLit:
		attrs = append(attrs, nodeAttr{"value", x.Value})
	case *ast.Ident:
		attrs = append(attrs, nodeAttr{"name", x.Name})
	case *ast.FuncExpr:
		fn(&x.Func)
	case *ast.FuncDecl:
		fn(&x.Func)
	case *ast.ArrowFunc:
		flag("async", x.Async)
		flag("expression", x.ExprBody != nil)
	case *ast.Unary:
		attrs = append(attrs, nodeAttr{"op", x.Op.String()})
		flag("delegate", x.Delegate)
	case *ast.Update:
		attrs = append(attrs, nodeAttr{"op", x.Op.String()})
		flag("prefix", x.Prefix)
	case *ast.Binary:
		attrs = append(attrs, nodeAttr{"op", x.Op.String()})
	case *ast.Logical:
		attrs = append(attrs, nodeAttr{"op", x.Op.String()})
	case *ast.Assign:
		attrs = append(attrs, nodeAttr{"op", x.Op.String()})
	case *ast.Call:
		flag("optional", x.Optional)
	case *ast.Member:
		flag("computed", x.Computed)
		flag("optional", x.Optional)
	case *ast.Property:
		attrs = append(attrs, nodeAttr{"kind", x.PropKind.String()})
		flag("computed", x.Computed)
		flag("shorthand", x.Shorthand)
	case *ast.Param:
		flag("rest", x.Rest)
	case *ast.VarDecl:
		attrs = append(attrs, nodeAttr{"kind", x.DeclKind.String()})
	case *ast.SwitchCase:
		flag("default", x.Test == nil)
	}
	return attrs
}

// renderBox печатает дерево с рамочными отступами:
//
//	Program
//	├─ VarDecl
//	│  └─ VarDeclarator
//	└─ ExprStmt
func renderBox(sb *strings.Builder, node *treeNode, prefix string) {
	for i, child := range node.children {
		last := i == len(node.children)-1
		branch, next := "├─ ", "│  "
		if last {
			branch, next = "└─ ", "   "
		}
		sb.WriteString(prefix)
		sb.WriteString(branch)
		sb.WriteString(child.label)
		sb.WriteByte('\n')
		renderBox(sb, child, prefix+next)
	}
}
