package diagfmt

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"jsfront/internal/parser"
)

func TestFormatASTTree(t *testing.T) {
	p := parser.New("let x = 2 + 3 * 4;\nf(x);", "test.js")
	prog := p.Parse()

	var buf bytes.Buffer
	if err := FormatASTTree(&buf, prog, p.FileSet()); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	for _, want := range []string{
		"test.js: Program (span: 1:1-2:6)",
		"├─ VariableDeclaration kind=\"let\"",
		"│  └─ VariableDeclarator",
		`Identifier name="x"`,
		`BinaryExpression op="+"`,
		`NumberLiteral value=2 raw="2"`,
		"└─ ExpressionStatement",
		"   └─ CallExpression",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in:\n%s", want, out)
		}
	}
}

func TestFormatASTJSON(t *testing.T) {
	p := parser.New("a?.b;", "test.js")
	prog := p.Parse()

	var buf bytes.Buffer
	if err := FormatASTJSON(&buf, prog); err != nil {
		t.Fatal(err)
	}
	var root ASTNodeOutput
	if err := json.Unmarshal(buf.Bytes(), &root); err != nil {
		t.Fatalf("invalid JSON: %v\n%s", err, buf.String())
	}
	if root.Type != "Program" || len(root.Children) != 1 {
		t.Fatalf("unexpected root %+v", root)
	}
	member := root.Children[0].Children[0]
	if member.Type != "MemberExpression" || member.Fields["optional"] != true {
		t.Fatalf("unexpected member node %+v", member)
	}
	if len(member.Children) != 2 {
		t.Fatalf("member must have object and property children")
	}
}

func TestFormatASTNil(t *testing.T) {
	var buf bytes.Buffer
	if err := FormatASTTree(&buf, nil, nil); err == nil {
		t.Fatalf("nil program must fail")
	}
}
