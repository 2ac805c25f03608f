package diag

import (
	"testing"

	"jsfront/internal/source"
)

func TestFormatShortDiagnostics(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("main.js", []byte("let x = ;\nfoo(\n"))
	diags := []*Diagnostic{
		NewError(SynUnexpectedToken, source.Span{File: id, Start: 14, End: 15}, "unexpected end"),
		NewError(SynExpectExpression, source.Span{File: id, Start: 8, End: 9}, "expected expression,\nfound ';'").
			WithNote(source.Span{File: id, Start: 0, End: 3}, "in this declaration"),
	}

	short := FormatShortDiagnostics(diags, fs, true)
	want := "error E0100 main.js:2:5 unexpected end\n" +
		"error E0101 main.js:1:9 expected expression, found ';'\n" +
		"note E0101 main.js:1:1 in this declaration"
	if short != want {
		t.Fatalf("short =\n%s\nwant\n%s", short, want)
	}

	golden := FormatGoldenDiagnostics(diags, fs, false)
	wantGolden := "error E0101 main.js:1:9 expected expression, found ';'\n" +
		"error E0100 main.js:2:5 unexpected end"
	if golden != wantGolden {
		t.Fatalf("golden =\n%s\nwant\n%s", golden, wantGolden)
	}
}

func TestFormatShortDiagnosticsEmpty(t *testing.T) {
	if got := FormatShortDiagnostics(nil, source.NewFileSet(), true); got != "" {
		t.Fatalf("got %q", got)
	}
}
