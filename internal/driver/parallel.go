package driver

import (
	"context"
	"fmt"
	"io/fs"
	"path/filepath"
	"runtime"
	"slices"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"

	"jsfront/internal/ast"
	"jsfront/internal/diag"
	"jsfront/internal/source"
	"jsfront/internal/trace"
)

// DefaultExtensions are checked when CheckOptions.Extensions is empty.
var DefaultExtensions = []string{".js", ".mjs", ".cjs"}

type CheckOptions struct {
	Extensions     []string
	MaxDiagnostics int
	// Jobs bounds parallelism; <= 0 means GOMAXPROCS.
	Jobs int
	// Cache is optional; nil disables replay of unchanged files.
	Cache *DiskCache
	// Progress is called from worker goroutines and must be safe for
	// concurrent use.
	Progress func(ProgressEvent)
}

type ProgressStatus uint8

const (
	ProgressQueued ProgressStatus = iota
	ProgressStarted
	ProgressDone
)

func (s ProgressStatus) String() string {
	switch s {
	case ProgressQueued:
		return "queued"
	case ProgressStarted:
		return "checking"
	case ProgressDone:
		return "done"
	default:
		return fmt.Sprintf("ProgressStatus(%d)", s)
	}
}

// ProgressEvent reports a state change of one file during CheckFiles.
type ProgressEvent struct {
	Index    int
	Total    int
	Path     string
	Status   ProgressStatus
	Errors   int
	Warnings int
	Cached   bool
}

// FileResult содержит результат проверки одного файла
type FileResult struct {
	Path   string        // путь к файлу как он был найден
	FileID source.FileID // ID файла в общем FileSet
	// Program is nil when the result was replayed from cache or the file
	// failed to load.
	Program    *ast.Program
	Bag        *diag.Bag
	Statements int
	Cached     bool
}

type CheckResult struct {
	FileSet *source.FileSet
	Files   []FileResult
}

// Totals sums errors and warnings over all files.
func (r *CheckResult) Totals() (errors, warnings int) {
	if r == nil {
		return 0, 0
	}
	for i := range r.Files {
		if bag := r.Files[i].Bag; bag != nil {
			errors += bag.ErrorCount()
			warnings += bag.WarningCount()
		}
	}
	return errors, warnings
}

// Merged returns every diagnostic in one bag, files in path order.
func (r *CheckResult) Merged() *diag.Bag {
	out := diag.NewBag(0)
	if r == nil {
		return out
	}
	for i := range r.Files {
		out.Merge(r.Files[i].Bag)
	}
	return out
}

// ListFiles возвращает отсортированный список файлов с нужными расширениями.
// Hidden directories and node_modules are skipped.
func ListFiles(dir string, extensions []string) ([]string, error) {
	if len(extensions) == 0 {
		extensions = DefaultExtensions
	}
	var files []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			name := d.Name()
			if path != dir && (name == "node_modules" || (strings.HasPrefix(name, ".") && name != ".")) {
				return filepath.SkipDir
			}
			return nil
		}
		if slices.Contains(extensions, filepath.Ext(path)) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("list %s: %w", dir, err)
	}

	// Сортируем для детерминированного порядка
	sort.Strings(files)
	return files, nil
}

// CheckDir parses every matching file under dir in parallel.
func CheckDir(ctx context.Context, dir string, opts CheckOptions) (*CheckResult, error) {
	span, ctx := trace.Start(ctx, trace.ScopeDriver, "check_dir")
	defer span.End(dir)

	files, err := ListFiles(dir, opts.Extensions)
	if err != nil {
		return nil, err
	}
	span.WithExtra("files", itoa(len(files)))
	return CheckFiles(ctx, dir, files, opts)
}

// CheckFiles parses files in parallel against one FileSet rooted at
// baseDir. Results come back in the order of files. A file that fails to
// load yields an IOLoadFileError diagnostic instead of an error.
func CheckFiles(ctx context.Context, baseDir string, files []string, opts CheckOptions) (*CheckResult, error) {
	fileSet := source.NewFileSetWithBase(baseDir)
	results := make([]FileResult, len(files))
	if len(files) == 0 {
		return &CheckResult{FileSet: fileSet, Files: results}, nil
	}

	// Предзагружаем файлы последовательно, чтобы FileID шли в порядке путей
	loadSpan, _ := trace.Start(ctx, trace.ScopePass, "load")
	loadErrors := make(map[int]error)
	for i, path := range files {
		results[i].Path = path
		id, err := fileSet.Load(path)
		if err != nil {
			// пустой файл-заглушка, чтобы у диагностики был свой span
			id = fileSet.Add(path, nil, 0)
			loadErrors[i] = err
		}
		results[i].FileID = id
		emitProgress(opts, ProgressEvent{Index: i, Total: len(files), Path: path, Status: ProgressQueued})
	}
	loadSpan.End(fmt.Sprintf("%d files, %d failed", len(files), len(loadErrors)))

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	parseSpan, pctx := trace.Start(ctx, trace.ScopePass, "parse_all")
	defer parseSpan.End("")

	g, gctx := errgroup.WithContext(pctx)
	g.SetLimit(min(jobs, len(files)))

	for i := range files {
		i := i
		g.Go(func() error {
			// Проверка отмены
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}
			res := &results[i]
			emitProgress(opts, ProgressEvent{Index: i, Total: len(files), Path: res.Path, Status: ProgressStarted})

			if loadErr, failed := loadErrors[i]; failed {
				res.Bag = diag.NewBag(opts.MaxDiagnostics)
				res.Bag.Add(diag.NewError(diag.IOLoadFileError,
					source.Span{File: res.FileID},
					"failed to load file: "+loadErr.Error()))
			} else if err := checkOne(gctx, fileSet, res, opts); err != nil {
				return fmt.Errorf("%s: %w", res.Path, err)
			}

			emitProgress(opts, ProgressEvent{
				Index:    i,
				Total:    len(files),
				Path:     res.Path,
				Status:   ProgressDone,
				Errors:   res.Bag.ErrorCount(),
				Warnings: res.Bag.WarningCount(),
				Cached:   res.Cached,
			})
			return nil
		})
	}

	// Ждём завершения всех горутин (индекс i уникален, мьютекс не нужен)
	if err := g.Wait(); err != nil {
		return &CheckResult{FileSet: fileSet, Files: results}, err
	}
	return &CheckResult{FileSet: fileSet, Files: results}, nil
}

func checkOne(ctx context.Context, fileSet *source.FileSet, res *FileResult, opts CheckOptions) error {
	file := fileSet.Get(res.FileID)

	if opts.Cache != nil {
		key := cacheKey(file, opts.MaxDiagnostics)
		span, _ := trace.Start(ctx, trace.ScopeFile, "cache")
		var payload DiskPayload
		hit, err := opts.Cache.Get(key, &payload)
		span.End(fmt.Sprintf("hit=%t", hit))
		if err == nil && hit {
			res.Bag = diag.NewBag(opts.MaxDiagnostics)
			for _, d := range fromCached(payload.Diagnostics, res.FileID) {
				res.Bag.Add(d)
			}
			res.Statements = payload.Statements
			res.Cached = true
			return nil
		}
		// битая запись кэша не фатальна, просто парсим заново
		trace.Point(ctx, trace.ScopeFile, "cache_miss", res.Path)

		defer func() {
			if res.Bag == nil || ctx.Err() != nil {
				return
			}
			if err := opts.Cache.Put(key, &DiskPayload{
				ContentHash: file.Hash,
				Statements:  res.Statements,
				Diagnostics: toCached(res.Bag.Items()),
			}); err != nil {
				trace.Point(ctx, trace.ScopeFile, "cache_put_failed", err.Error())
			}
		}()
	}

	prog, bag, err := parseLoaded(ctx, fileSet, file, opts.MaxDiagnostics)
	if err != nil {
		return err
	}
	res.Program = prog
	res.Bag = bag
	res.Statements = len(prog.Body)
	return nil
}

func emitProgress(opts CheckOptions, ev ProgressEvent) {
	if opts.Progress != nil {
		opts.Progress(ev)
	}
}
