package driver

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"slices"
	"sync"
	"sync/atomic"
	"testing"

	"jsfront/internal/diag"
	"jsfront/internal/source"
	"jsfront/internal/token"
)

func writeFiles(t *testing.T, dir string, files map[string]string) {
	t.Helper()
	for name, content := range files {
		path := filepath.Join(dir, name)
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
			t.Fatal(err)
		}
	}
}

func TestTokenizeFile(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, map[string]string{"a.js": "let x = 1; // done\n"})

	res, err := Tokenize(context.Background(), filepath.Join(dir, "a.js"), 0)
	if err != nil {
		t.Fatalf("Tokenize: %v", err)
	}
	if res.Bag.Len() != 0 {
		t.Fatalf("unexpected diagnostics: %d", res.Bag.Len())
	}
	kinds := make([]token.Kind, 0, len(res.Tokens))
	for _, tok := range res.Tokens {
		kinds = append(kinds, tok.Kind)
	}
	want := []token.Kind{token.KwLet, token.Ident, token.Assign, token.Number, token.Semicolon, token.EOF}
	if !slices.Equal(kinds, want) {
		t.Fatalf("kinds = %v, want %v", kinds, want)
	}
	if len(res.Tokens[len(res.Tokens)-1].Leading) == 0 {
		t.Fatalf("EOF must carry the trailing comment as trivia")
	}
}

func TestTokenizeMissingFile(t *testing.T) {
	if _, err := Tokenize(context.Background(), filepath.Join(t.TempDir(), "nope.js"), 0); err == nil {
		t.Fatalf("expected an error for a missing file")
	}
}

func TestParseSource(t *testing.T) {
	res, err := ParseSource(context.Background(), "<stdin>", "let x = 1;\nfoo(x);\n", 0)
	if err != nil {
		t.Fatalf("ParseSource: %v", err)
	}
	if res.Bag.HasErrors() {
		t.Fatalf("unexpected errors: %d", res.Bag.ErrorCount())
	}
	if got := len(res.Program.Body); got != 2 {
		t.Fatalf("statements = %d, want 2", got)
	}
}

func TestParseReportsSyntaxErrorsInBag(t *testing.T) {
	res, err := ParseSource(context.Background(), "bad.js", "let = ;\nlet s = 'x\n", 0)
	if err != nil {
		t.Fatalf("syntax errors must not be Go errors: %v", err)
	}
	codes := make(map[diag.Code]bool)
	for _, d := range res.Bag.Items() {
		codes[d.Code] = true
	}
	if !codes[diag.LexUnterminatedString] {
		t.Fatalf("expected lexer diagnostic in the shared bag")
	}
	if res.Bag.ErrorCount() < 2 {
		t.Fatalf("expected lexical and syntax errors, got %d", res.Bag.ErrorCount())
	}
}

func TestParseMaxDiagnostics(t *testing.T) {
	res, err := ParseSource(context.Background(), "bad.js", "@\n#\n@\n#\n@\n", 2)
	if err != nil {
		t.Fatal(err)
	}
	if res.Bag.Len() > 2 {
		t.Fatalf("bag exceeds limit: %d", res.Bag.Len())
	}
	if _, err := ParseSource(context.Background(), "x.js", "", -1); err == nil {
		t.Fatalf("negative limit must fail")
	}
}

func TestListFiles(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, map[string]string{
		"b.js":                  "",
		"a.mjs":                 "",
		"sub/c.cjs":             "",
		"readme.md":             "",
		"node_modules/dep/x.js": "",
		".git/hook.js":          "",
	})
	files, err := ListFiles(dir, nil)
	if err != nil {
		t.Fatal(err)
	}
	want := []string{
		filepath.Join(dir, "a.mjs"),
		filepath.Join(dir, "b.js"),
		filepath.Join(dir, "sub", "c.cjs"),
	}
	if !slices.Equal(files, want) {
		t.Fatalf("files = %v, want %v", files, want)
	}

	only, err := ListFiles(dir, []string{".mjs"})
	if err != nil || len(only) != 1 {
		t.Fatalf("extension filter: %v %v", only, err)
	}
}

func TestCheckDirOrderAndProgress(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, map[string]string{
		"a.js": "let a = 1;",
		"b.js": "let = ;",
		"c.js": "function f() { return 1 }\nf();",
	})

	var mu sync.Mutex
	done := make(map[string]ProgressEvent)
	res, err := CheckDir(context.Background(), dir, CheckOptions{
		Jobs: 2,
		Progress: func(ev ProgressEvent) {
			mu.Lock()
			defer mu.Unlock()
			if ev.Status == ProgressDone {
				done[filepath.Base(ev.Path)] = ev
			}
		},
	})
	if err != nil {
		t.Fatalf("CheckDir: %v", err)
	}
	if len(res.Files) != 3 {
		t.Fatalf("results = %d", len(res.Files))
	}
	for i, name := range []string{"a.js", "b.js", "c.js"} {
		if filepath.Base(res.Files[i].Path) != name {
			t.Fatalf("result %d = %s, want %s", i, res.Files[i].Path, name)
		}
	}
	if res.Files[0].Bag.HasErrors() || !res.Files[1].Bag.HasErrors() {
		t.Fatalf("only b.js has errors")
	}
	if res.Files[2].Statements != 2 || res.Files[2].Program == nil {
		t.Fatalf("c.js: statements=%d", res.Files[2].Statements)
	}
	if len(done) != 3 || done["b.js"].Errors == 0 {
		t.Fatalf("progress events: %+v", done)
	}
	if errs, _ := res.Totals(); errs != res.Files[1].Bag.ErrorCount() {
		t.Fatalf("totals = %d", errs)
	}
	if res.Merged().Len() != res.Files[1].Bag.Len() {
		t.Fatalf("merged bag size mismatch")
	}
}

func TestCheckFilesLoadError(t *testing.T) {
	dir := t.TempDir()
	missing := filepath.Join(dir, "gone.js")
	res, err := CheckFiles(context.Background(), dir, []string{missing}, CheckOptions{})
	if err != nil {
		t.Fatalf("load failures are diagnostics, got %v", err)
	}
	items := res.Files[0].Bag.Items()
	if len(items) != 1 || items[0].Code != diag.IOLoadFileError {
		t.Fatalf("expected IOLoadFileError, got %+v", items)
	}
	if items[0].Primary.File != res.Files[0].FileID {
		t.Fatalf("diagnostic must point at the placeholder file")
	}
}

func TestCheckDirEmpty(t *testing.T) {
	res, err := CheckDir(context.Background(), t.TempDir(), CheckOptions{})
	if err != nil || len(res.Files) != 0 {
		t.Fatalf("empty dir: %v %v", res, err)
	}
}

// cancelAfterCtx reports cancellation once Err has been asked more than
// n times, so a parse stops midway through the file.
type cancelAfterCtx struct {
	context.Context
	n     int32
	calls atomic.Int32
}

func (c *cancelAfterCtx) Err() error {
	if c.calls.Add(1) > c.n {
		return context.Canceled
	}
	return nil
}

func TestCancelledParseIsNotCached(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, map[string]string{"a.js": "let a = 1;\nlet b = 2;\nlet c = 3;\nlet d = ;"})
	cache, err := NewDiskCache(filepath.Join(t.TempDir(), "cache"))
	if err != nil {
		t.Fatal(err)
	}

	fs := source.NewFileSet()
	id, err := fs.Load(filepath.Join(dir, "a.js"))
	if err != nil {
		t.Fatal(err)
	}
	res := &FileResult{Path: filepath.Join(dir, "a.js"), FileID: id}
	ctx := &cancelAfterCtx{Context: context.Background(), n: 1}
	if err := checkOne(ctx, fs, res, CheckOptions{Cache: cache}); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}

	var payload DiskPayload
	hit, err := cache.Get(cacheKey(fs.Get(id), 0), &payload)
	if err != nil || hit {
		t.Fatalf("cancelled parse must not be cached: hit=%t err=%v", hit, err)
	}

	fresh, err := CheckDir(context.Background(), dir, CheckOptions{Cache: cache})
	if err != nil {
		t.Fatal(err)
	}
	f := fresh.Files[0]
	if f.Cached || f.Statements < 3 || f.Bag.ErrorCount() == 0 {
		t.Fatalf("fresh run: cached=%t statements=%d errors=%d", f.Cached, f.Statements, f.Bag.ErrorCount())
	}
}

func TestCheckDirReplaysCache(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, map[string]string{
		"ok.js":  "let a = 1;\nlet b = 2;",
		"bad.js": "function f(a, a) {}\nlet = ;",
	})
	cache, err := NewDiskCache(filepath.Join(t.TempDir(), "cache"))
	if err != nil {
		t.Fatal(err)
	}
	opts := CheckOptions{Cache: cache}

	first, err := CheckDir(context.Background(), dir, opts)
	if err != nil {
		t.Fatal(err)
	}
	second, err := CheckDir(context.Background(), dir, opts)
	if err != nil {
		t.Fatal(err)
	}
	for i := range first.Files {
		a, b := first.Files[i], second.Files[i]
		if a.Cached || !b.Cached {
			t.Fatalf("%s: cached first=%t second=%t", a.Path, a.Cached, b.Cached)
		}
		if b.Program != nil {
			t.Fatalf("replayed result must not carry an AST")
		}
		if a.Statements != b.Statements {
			t.Fatalf("%s: statements %d vs %d", a.Path, a.Statements, b.Statements)
		}
		got := diag.FormatShortDiagnostics(b.Bag.Items(), second.FileSet, true)
		want := diag.FormatShortDiagnostics(a.Bag.Items(), first.FileSet, true)
		if got != want {
			t.Fatalf("%s: replay differs:\n%s\nvs\n%s", a.Path, got, want)
		}
	}

	// изменённый файл парсится заново
	writeFiles(t, dir, map[string]string{"ok.js": "let a = 1;"})
	third, err := CheckDir(context.Background(), dir, opts)
	if err != nil {
		t.Fatal(err)
	}
	for _, f := range third.Files {
		if filepath.Base(f.Path) == "ok.js" && (f.Cached || f.Statements != 1) {
			t.Fatalf("changed file must be re-parsed: %+v", f)
		}
	}
}

func TestDiskCacheRoundTripAndDrop(t *testing.T) {
	cache, err := NewDiskCache(filepath.Join(t.TempDir(), "c"))
	if err != nil {
		t.Fatal(err)
	}
	var key [32]byte
	key[0] = 7
	in := &DiskPayload{Statements: 3, Diagnostics: []CachedDiagnostic{{
		Severity: uint8(diag.SevError), Code: uint16(diag.SynUnexpectedToken), Message: "m", Start: 1, End: 2,
		Related: []CachedDiagnostic{{Severity: uint8(diag.SevNote), Message: "n"}},
	}}}
	if err := cache.Put(key, in); err != nil {
		t.Fatalf("Put: %v", err)
	}
	var out DiskPayload
	ok, err := cache.Get(key, &out)
	if err != nil || !ok {
		t.Fatalf("Get: %v %v", ok, err)
	}
	if out.Statements != 3 || len(out.Diagnostics) != 1 || len(out.Diagnostics[0].Related) != 1 {
		t.Fatalf("payload mismatch: %+v", out)
	}

	if err := cache.DropAll(); err != nil {
		t.Fatalf("DropAll: %v", err)
	}
	if ok, _ := cache.Get(key, &out); ok {
		t.Fatalf("entry survived DropAll")
	}

	var nilCache *DiskCache
	if ok, err := nilCache.Get(key, &out); ok || err != nil {
		t.Fatalf("nil cache must miss")
	}
}
