package diagfmt

import (
	"bytes"
	"os"
	"regexp"
	"strings"
	"testing"

	"jsfront/internal/diag"
	"jsfront/internal/source"
)

var ansiRe = regexp.MustCompile(`\x1b\[[0-9;]*m`)

func singleDiag(content string, sev diag.Severity, code diag.Code, start, end uint32, msg string) (*diag.Bag, *source.FileSet, *diag.Diagnostic) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.js", []byte(content))
	bag := diag.NewBag(10)
	d := diag.New(sev, code, source.Span{File: id, Start: start, End: end}, msg)
	bag.Add(d)
	return bag, fs, d
}

func render(bag *diag.Bag, fs *source.FileSet, opts PrettyOpts) string {
	var buf bytes.Buffer
	Pretty(&buf, bag, fs, opts)
	return buf.String()
}

// caretContent возвращает часть строки с '^' после "| ".
func caretContent(t *testing.T, out string) string {
	t.Helper()
	for _, line := range strings.Split(out, "\n") {
		if strings.Contains(line, "^") {
			idx := strings.Index(line, "| ")
			if idx < 0 {
				t.Fatalf("caret line without gutter: %q", line)
			}
			return line[idx+2:]
		}
	}
	t.Fatalf("no caret line in:\n%s", out)
	return ""
}

func TestCaretAtColumnFive(t *testing.T) {
	bag, fs, _ := singleDiag("abcd;efgh\n", diag.SevError, diag.LexUnexpectedChar, 4, 5, "unexpected character ';'")
	out := render(bag, fs, PrettyOpts{})
	if got := caretContent(t, out); got != "    ^" {
		t.Fatalf("caret line = %q, want %q\n%s", got, "    ^", out)
	}
}

func TestPrettyLayout(t *testing.T) {
	bag, fs, _ := singleDiag("let s = 'abc\n", diag.SevError, diag.LexUnterminatedString, 8, 12, "unterminated string literal")
	out := render(bag, fs, PrettyOpts{})
	want := strings.Join([]string{
		"error[E0002]: unterminated string literal",
		"  --> test.js:1:9",
		"   |",
		" 1 | let s = 'abc",
		"   |         ^^^^",
		"",
	}, "\n")
	if out != want {
		t.Fatalf("unexpected layout:\n%s\nwant:\n%s", out, want)
	}
}

func TestCaretsAreCapped(t *testing.T) {
	line := "x = " + strings.Repeat("a", 80) + ";"
	bag, fs, _ := singleDiag(line, diag.SevError, diag.SynUnexpectedToken, 4, 84, "too long")
	got := caretContent(t, render(bag, fs, PrettyOpts{}))
	if n := strings.Count(got, "^"); n != maxCarets {
		t.Fatalf("expected %d carets, got %d", maxCarets, n)
	}
}

func TestZeroWidthSpanGetsOneCaret(t *testing.T) {
	bag, fs, _ := singleDiag("foo(", diag.SevError, diag.SynUnexpectedEOF, 4, 4, "unexpected end of input")
	if got := caretContent(t, render(bag, fs, PrettyOpts{})); got != "    ^" {
		t.Fatalf("caret line = %q", got)
	}
}

func TestCaretAlignment(t *testing.T) {
	tests := []struct {
		name    string
		content string
		start   uint32
		want    string
	}{
		{"tab preserved", "\tx = ;", 5, "\t    ^"},
		{"wide runes", "日本 = ;", 7, "     ^"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bag, fs, _ := singleDiag(tt.content, diag.SevError, diag.SynExpectExpression, tt.start, tt.start+1, "expected expression")
			if got := caretContent(t, render(bag, fs, PrettyOpts{})); got != tt.want {
				t.Fatalf("caret line = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestContextLines(t *testing.T) {
	bag, fs, _ := singleDiag("a();\nb();\nc(;\n", diag.SevError, diag.SynExpectExpression, 12, 13, "expected expression")
	out := render(bag, fs, PrettyOpts{Context: 2})
	for _, want := range []string{" 1 | a();", " 2 | b();", " 3 | c(;"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in output:\n%s", want, out)
		}
	}
	if strings.Index(out, " 1 | ") > strings.Index(out, " 3 | ") {
		t.Fatalf("context must precede the primary line:\n%s", out)
	}

	out = render(bag, fs, PrettyOpts{Context: 0})
	if strings.Contains(out, " 1 | ") {
		t.Fatalf("no context requested, got:\n%s", out)
	}
}

func TestMultiLineSpan(t *testing.T) {
	bag, fs, _ := singleDiag("{\n  a;\n}", diag.SevError, diag.SynUnexpectedToken, 0, 8, "block")
	out := render(bag, fs, PrettyOpts{})
	if got := strings.Count(out, "^"); got < 3 {
		t.Fatalf("each spanned line gets carets:\n%s", out)
	}
	if !strings.Contains(out, " 3 | }") {
		t.Fatalf("last spanned line missing:\n%s", out)
	}
}

func TestPrettyHelpAndRelated(t *testing.T) {
	bag, fs, d := singleDiag("function f(a, a) {}", diag.SevError, diag.SynDuplicateParameter, 14, 15, "duplicate parameter name 'a'")
	d.WithSuggestion("rename the parameter")
	d.WithNote(source.Span{File: d.Primary.File, Start: 11, End: 12}, "'a' first declared here")

	out := render(bag, fs, PrettyOpts{})
	for _, want := range []string{
		"  = help: rename the parameter",
		"\n  note[E0106]: 'a' first declared here",
		"\n    --> test.js:1:12",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in output:\n%s", want, out)
		}
	}
	if strings.Index(out, "help:") > strings.Index(out, "note[") {
		t.Fatalf("help must come before related entries:\n%s", out)
	}
}

func TestMissingFileOmitsLocation(t *testing.T) {
	bag, _, _ := singleDiag("x", diag.SevWarning, diag.SynIllegalReturn, 0, 1, "no file")
	out := render(bag, nil, PrettyOpts{})
	if strings.Contains(out, "-->") || strings.Contains(out, "|") {
		t.Fatalf("location block must be omitted:\n%s", out)
	}
	if !strings.HasPrefix(out, "warning[E0109]: no file") {
		t.Fatalf("header missing:\n%s", out)
	}
}

func TestColorOnlyAddsEscapes(t *testing.T) {
	bag, fs, d := singleDiag("let x = ;\n", diag.SevError, diag.SynExpectExpression, 8, 9, "expected expression")
	d.WithSuggestion("add a value")
	plain := render(bag, fs, PrettyOpts{Color: false, Context: 1})
	colored := render(bag, fs, PrettyOpts{Color: true, Context: 1})

	if strings.Contains(plain, "\x1b[") {
		t.Fatalf("plain output contains escapes: %q", plain)
	}
	if !strings.Contains(colored, "\x1b[") {
		t.Fatalf("colored output has no escapes: %q", colored)
	}
	if stripped := ansiRe.ReplaceAllString(colored, ""); stripped != plain {
		t.Fatalf("color changed layout:\n%q\nvs\n%q", stripped, plain)
	}
}

func TestPrettyPreservesOrderAndInput(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.js", []byte("a b c"))
	bag := diag.NewBag(10)
	bag.Add(diag.NewError(diag.SynUnexpectedToken, source.Span{File: id, Start: 4, End: 5}, "third"))
	bag.Add(diag.NewError(diag.SynUnexpectedToken, source.Span{File: id, Start: 0, End: 1}, "first"))

	out := render(bag, fs, PrettyOpts{})
	if strings.Index(out, "third") > strings.Index(out, "first") {
		t.Fatalf("diagnostics must be rendered in encounter order:\n%s", out)
	}
	if bag.Items()[0].Message != "third" || bag.Len() != 2 {
		t.Fatalf("Pretty must not mutate the bag")
	}
}

func TestPathModes(t *testing.T) {
	fs := source.NewFileSet()
	fs.SetBaseDir("/home/user/project")
	id := fs.Add("/home/user/project/src/test.js", []byte("let x = 'oops\n"), 0)
	bag := diag.NewBag(10)
	bag.Add(diag.NewError(diag.LexUnterminatedString, source.Span{File: id, Start: 8, End: 13}, "unterminated string literal"))

	tests := []struct {
		name string
		mode PathMode
		want string
	}{
		{"absolute", PathModeAbsolute, "--> /home/user/project/src/test.js:1:9"},
		{"relative", PathModeRelative, "--> src/test.js:1:9"},
		{"basename", PathModeBasename, "--> test.js:1:9"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if out := render(bag, fs, PrettyOpts{PathMode: tt.mode}); !strings.Contains(out, tt.want) {
				t.Fatalf("expected %q in:\n%s", tt.want, out)
			}
		})
	}
}

func TestRenderSummary(t *testing.T) {
	tests := []struct {
		errors, warnings int
		want             string
	}{
		{2, 1, "error: 2 errors and 1 warning emitted\n"},
		{1, 0, "error: 1 error emitted\n"},
		{0, 3, "warning: 3 warnings emitted\n"},
		{0, 0, ""},
	}
	for _, tt := range tests {
		bag := diag.NewBag(0)
		for i := 0; i < tt.errors; i++ {
			bag.Add(diag.NewError(diag.SynUnexpectedToken, source.Span{}, "e"))
		}
		for i := 0; i < tt.warnings; i++ {
			bag.Add(diag.NewWarning(diag.SynIllegalReturn, source.Span{}, "w"))
		}
		bag.Add(diag.NewNote(diag.SynUnexpectedToken, source.Span{}, "notes do not count"))

		var buf bytes.Buffer
		RenderSummary(&buf, bag, PrettyOpts{})
		if buf.String() != tt.want {
			t.Fatalf("summary = %q, want %q", buf.String(), tt.want)
		}
	}
}

func TestShort(t *testing.T) {
	bag, fs, _ := singleDiag("let x = ;", diag.SevError, diag.SynExpectExpression, 8, 9, "expected expression")
	var buf bytes.Buffer
	Short(&buf, bag, fs)
	if got := buf.String(); got != "error E0101 test.js:1:9 expected expression\n" {
		t.Fatalf("short = %q", got)
	}
}

func TestDetectColor(t *testing.T) {
	t.Setenv("FORCE_COLOR", "")
	t.Setenv("CLICOLOR_FORCE", "")
	t.Setenv("NO_COLOR", "")
	t.Setenv("TERM", "xterm")

	if on, err := DetectColor("on", nil); err != nil || !on {
		t.Fatalf("on: %v %v", on, err)
	}
	if on, err := DetectColor("off", nil); err != nil || on {
		t.Fatalf("off: %v %v", on, err)
	}
	if _, err := DetectColor("sometimes", nil); err == nil {
		t.Fatalf("invalid mode must fail")
	}

	// NO_COLOR задан (даже пустым) — цвет выключен
	if on, _ := DetectColor("auto", os.Stdout); on {
		t.Fatalf("NO_COLOR must disable color")
	}

	t.Setenv("FORCE_COLOR", "1")
	if on, _ := DetectColor("auto", nil); !on {
		t.Fatalf("FORCE_COLOR must enable color")
	}

	t.Setenv("FORCE_COLOR", "0")
	if err := os.Unsetenv("NO_COLOR"); err != nil {
		t.Fatal(err)
	}
	t.Setenv("TERM", "dumb")
	if on, _ := DetectColor("auto", os.Stdout); on {
		t.Fatalf("TERM=dumb must disable color")
	}
}
