package diagfmt

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"strings"

	"jsfront/internal/ast"
	"jsfront/internal/source"
)

type ASTNodeOutput struct {
	Type     string          `json:"type"`
	Span     source.Span     `json:"span"`
	Fields   map[string]any  `json:"fields,omitempty"`
	Children []ASTNodeOutput `json:"children,omitempty"`
}

// FormatASTTree печатает программу деревом. Корень подписан путём файла,
// если fs известен.
func FormatASTTree(w io.Writer, prog *ast.Program, fs *source.FileSet) error {
	if prog == nil {
		return fmt.Errorf("nil program")
	}
	root := buildTreeNode(prog, fs)
	if fs != nil {
		if f := fs.Get(prog.Loc.File); f != nil {
			root.label = f.FormatPath("auto", fs.BaseDir()) + ": " + root.label
		}
	}

	var sb strings.Builder
	sb.WriteString(root.label)
	sb.WriteByte('\n')
	renderBox(&sb, root, "")
	_, err := io.WriteString(w, sb.String())
	return err
}

// FormatASTJSON выводит программу в JSON: тип узла, span, скалярные поля и дети.
func FormatASTJSON(w io.Writer, prog *ast.Program) error {
	if prog == nil {
		return fmt.Errorf("nil program")
	}
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(buildJSONNode(prog))
}

func buildJSONNode(n ast.Node) ASTNodeOutput {
	out := ASTNodeOutput{
		Type: n.Kind().String(),
		Span: n.Span(),
	}
	if attrs := nodeAttrs(n); len(attrs) > 0 {
		out.Fields = make(map[string]any, len(attrs))
		for _, a := range attrs {
			if f, ok := a.value.(float64); ok && (math.IsInf(f, 0) || math.IsNaN(f)) {
				a.value = formatAttr(f)
			}
			out.Fields[a.key] = a.value
		}
	}
	for _, child := range ast.Children(n) {
		out.Children = append(out.Children, buildJSONNode(child))
	}
	return out
}
