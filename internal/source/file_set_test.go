package source

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestFileSetVersioning(t *testing.T) {
	fs := NewFileSet()

	id1 := fs.Add("test.js", []byte("hello world"), 0)
	if id1 != 0 {
		t.Errorf("Expected first FileID to be 0, got %d", id1)
	}
	id2 := fs.Add("test.js", []byte("hello universe"), 0)
	if id2 != 1 {
		t.Errorf("Expected second FileID to be 1, got %d", id2)
	}

	latest, ok := fs.GetLatest("test.js")
	if !ok || latest != id2 {
		t.Fatalf("GetLatest = %d,%v, want %d,true", latest, ok, id2)
	}
	if got := string(fs.Get(id1).Content); got != "hello world" {
		t.Errorf("old version content = %q", got)
	}
	if fs.Get(99) != nil {
		t.Errorf("Get of unknown id should be nil")
	}
}

func TestLineIndexIncludesTrailingLine(t *testing.T) {
	fs := NewFileSet()
	f := fs.Get(fs.AddVirtual("a.js", []byte("a\nb\n")))

	want := []uint32{0, 2, 4}
	if len(f.LineIdx) != len(want) {
		t.Fatalf("LineIdx = %v, want %v", f.LineIdx, want)
	}
	for i := range want {
		if f.LineIdx[i] != want[i] {
			t.Fatalf("LineIdx = %v, want %v", f.LineIdx, want)
		}
	}
	if f.LineCount() != 3 {
		t.Errorf("LineCount = %d, want 3", f.LineCount())
	}
	if f.Flags&FileVirtual == 0 {
		t.Error("Expected FileVirtual flag to be set")
	}
}

func TestPosFromOffset(t *testing.T) {
	fs := NewFileSet()
	text := "let a = 1;\n\nfoo(a)\n"
	f := fs.Get(fs.AddVirtual("p.js", []byte(text)))

	tests := []struct {
		off  uint32
		want Pos
	}{
		{0, Pos{Line: 1, Col: 1, Offset: 0}},
		{4, Pos{Line: 1, Col: 5, Offset: 4}},
		{10, Pos{Line: 1, Col: 11, Offset: 10}}, // the '\n' itself
		{11, Pos{Line: 2, Col: 1, Offset: 11}},
		{12, Pos{Line: 3, Col: 1, Offset: 12}},
		{15, Pos{Line: 3, Col: 4, Offset: 15}},
		{uint32(len(text)), Pos{Line: 4, Col: 1, Offset: uint32(len(text))}},
		{1000, Pos{Line: 4, Col: 1, Offset: uint32(len(text))}},
	}
	for _, tt := range tests {
		if got := f.PosFromOffset(tt.off); got != tt.want {
			t.Errorf("PosFromOffset(%d) = %+v, want %+v", tt.off, got, tt.want)
		}
	}
}

func TestPosFromOffsetEmptyFile(t *testing.T) {
	fs := NewFileSet()
	f := fs.Get(fs.AddVirtual("empty.js", nil))
	if got := f.PosFromOffset(0); got != (Pos{Line: 1, Col: 1}) {
		t.Fatalf("PosFromOffset(0) = %+v", got)
	}
	line, ok := f.Line(1)
	if !ok || line != "" {
		t.Fatalf("Line(1) = %q,%v", line, ok)
	}
}

func TestLineRoundTrip(t *testing.T) {
	inputs := []string{
		"",
		"one",
		"one\n",
		"one\ntwo\nthree",
		"a\r\nb\r\n\r\nc",
		"\n\n\n",
	}
	for _, in := range inputs {
		fs := NewFileSet()
		f := fs.Get(fs.AddVirtual("r.js", []byte(in)))
		lines := make([]string, 0, f.LineCount())
		for n := uint32(1); n <= f.LineCount(); n++ {
			l, ok := f.Line(n)
			if !ok {
				t.Fatalf("%q: Line(%d) not ok", in, n)
			}
			lines = append(lines, l)
		}
		want := strings.ReplaceAll(in, "\r\n", "\n")
		if got := strings.Join(lines, "\n"); got != want {
			t.Errorf("round trip of %q = %q, want %q", in, got, want)
		}
	}
}

func TestLineOutOfRange(t *testing.T) {
	fs := NewFileSet()
	f := fs.Get(fs.AddVirtual("x.js", []byte("a\nb")))
	if _, ok := f.Line(0); ok {
		t.Error("Line(0) should not be ok")
	}
	if _, ok := f.Line(3); ok {
		t.Error("Line(3) should not be ok")
	}
	if f.GetLine(2) != "b" {
		t.Errorf("GetLine(2) = %q", f.GetLine(2))
	}
}

func TestResolve(t *testing.T) {
	fs := NewFileSet()
	id := fs.AddVirtual("r.js", []byte("ab\ncd"))
	start, end := fs.Resolve(Span{File: id, Start: 1, End: 4})
	if start != (LineCol{Line: 1, Col: 2}) || end != (LineCol{Line: 2, Col: 2}) {
		t.Fatalf("Resolve = %+v %+v", start, end)
	}
	r := fs.ResolveRange(Span{File: 7, Start: 0, End: 1})
	if !r.IsEmpty() {
		t.Fatalf("unknown file must resolve to NoRange, got %v", r)
	}
}

func TestLoadStripsBOMAndKeepsCRLF(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bom.js")
	data := append([]byte{0xEF, 0xBB, 0xBF}, []byte("x;\r\ny;")...)
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	fs := NewFileSet()
	id, err := fs.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	f := fs.Get(id)
	if string(f.Content) != "x;\r\ny;" {
		t.Fatalf("content = %q", f.Content)
	}
	if f.Flags&FileHadBOM == 0 || f.Flags&FileHasCRLF == 0 {
		t.Fatalf("flags = %b", f.Flags)
	}
	if got := f.GetLine(1); got != "x;" {
		t.Fatalf("GetLine(1) = %q", got)
	}
}

func TestLoadTranscodesUTF16(t *testing.T) {
	// "a=1" in UTF-16LE with BOM
	raw := []byte{0xFF, 0xFE, 'a', 0, '=', 0, '1', 0}
	fs := NewFileSet()
	id, err := fs.AddBytes("u16.js", raw)
	if err != nil {
		t.Fatalf("AddBytes: %v", err)
	}
	f := fs.Get(id)
	if string(f.Content) != "a=1" {
		t.Fatalf("content = %q", f.Content)
	}
	if f.Flags&FileTranscoded == 0 {
		t.Fatalf("expected FileTranscoded flag")
	}
}

func TestLoadMissingFile(t *testing.T) {
	fs := NewFileSet()
	if _, err := fs.Load(filepath.Join(t.TempDir(), "nope.js")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestFormatPath(t *testing.T) {
	tmp := t.TempDir()
	target := filepath.Join(tmp, "src", "main.js")
	f := &File{Path: normalizePath(target)}

	if got := f.FormatPath("basename", ""); got != "main.js" {
		t.Errorf("basename = %q", got)
	}
	if got := f.FormatPath("relative", tmp); got != "src/main.js" {
		t.Errorf("relative = %q", got)
	}
	virt := &File{Path: "<repl>", Flags: FileVirtual}
	if got := virt.FormatPath("absolute", ""); got != "<repl>" {
		t.Errorf("virtual path = %q", got)
	}
}
