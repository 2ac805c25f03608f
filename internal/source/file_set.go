package source

import (
	"crypto/sha256"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"fortio.org/safecast"
)

// FileSet manages a collection of source files and resolves spans to positions.
// Add/Load may be called from several goroutines; resolving reads only
// immutable File values.
type FileSet struct {
	mu      sync.RWMutex
	files   []*File
	index   map[string]FileID // path -> latest id
	baseDir string
}

// NewFileSet creates a new empty FileSet.
func NewFileSet() *FileSet {
	return &FileSet{
		files: make([]*File, 0),
		index: make(map[string]FileID),
	}
}

// NewFileSetWithBase creates a FileSet that renders relative paths against baseDir.
func NewFileSetWithBase(baseDir string) *FileSet {
	fs := NewFileSet()
	fs.baseDir = baseDir
	return fs
}

// SetBaseDir sets the directory used for relative path display.
func (fileSet *FileSet) SetBaseDir(dir string) {
	fileSet.mu.Lock()
	fileSet.baseDir = dir
	fileSet.mu.Unlock()
}

// BaseDir returns the base directory, defaulting to the working directory.
func (fileSet *FileSet) BaseDir() string {
	fileSet.mu.RLock()
	base := fileSet.baseDir
	fileSet.mu.RUnlock()
	if base == "" {
		if wd, err := os.Getwd(); err == nil {
			return wd
		}
	}
	return base
}

// Add stores content, computes LineIdx and Hash, and returns a new FileID.
// It always creates a new FileID even if a file with the same path exists.
func (fileSet *FileSet) Add(path string, content []byte, flags FileFlags) FileID {
	if _, err := safecast.Conv[uint32](len(content)); err != nil {
		panic(fmt.Errorf("content length overflow: %w", err))
	}
	if hasCRLF(content) {
		flags |= FileHasCRLF
	}
	f := &File{
		Path:    normalizePath(path),
		Content: content,
		Text:    string(content),
		LineIdx: buildLineIndex(content),
		Hash:    sha256.Sum256(content),
		Flags:   flags,
	}

	fileSet.mu.Lock()
	defer fileSet.mu.Unlock()
	n, err := safecast.Conv[uint32](len(fileSet.files))
	if err != nil {
		panic(fmt.Errorf("len files overflow: %w", err))
	}
	f.ID = FileID(n)
	fileSet.files = append(fileSet.files, f)
	fileSet.index[f.Path] = f.ID
	return f.ID
}

// Load reads a file from disk, strips a UTF-8 BOM, transcodes UTF-16 input
// and calls Add. CRLF line endings are kept so byte offsets match the disk.
func (fileSet *FileSet) Load(path string) (FileID, error) {
	// #nosec G304 -- path is provided by the caller
	content, err := os.ReadFile(path)
	if err != nil {
		return 0, err
	}
	return fileSet.AddBytes(path, content)
}

// AddBytes runs the load-time normalization on raw bytes and registers them.
func (fileSet *FileSet) AddBytes(path string, raw []byte) (FileID, error) {
	flags := FileFlags(0)
	content, transcoded, err := decodeUTF16(raw)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", path, err)
	}
	if transcoded {
		flags |= FileTranscoded
	}
	content, hadBOM := removeBOM(content)
	if hadBOM {
		flags |= FileHadBOM
	}
	return fileSet.Add(path, content, flags), nil
}

// AddVirtual adds an in-memory file (stdin, test, REPL) with the FileVirtual flag.
func (fileSet *FileSet) AddVirtual(name string, content []byte) FileID {
	return fileSet.Add(name, content, FileVirtual)
}

// Get returns the file for id, or nil when id is unknown.
func (fileSet *FileSet) Get(id FileID) *File {
	fileSet.mu.RLock()
	defer fileSet.mu.RUnlock()
	if int(id) >= len(fileSet.files) {
		return nil
	}
	return fileSet.files[id]
}

// Len returns the number of registered files.
func (fileSet *FileSet) Len() int {
	fileSet.mu.RLock()
	defer fileSet.mu.RUnlock()
	return len(fileSet.files)
}

// GetLatest returns the latest file ID for the given path, if it exists.
func (fileSet *FileSet) GetLatest(path string) (FileID, bool) {
	fileSet.mu.RLock()
	defer fileSet.mu.RUnlock()
	id, ok := fileSet.index[normalizePath(path)]
	return id, ok
}

// Resolve converts a span into line and column positions.
func (fileSet *FileSet) Resolve(span Span) (start, end LineCol) {
	f := fileSet.Get(span.File)
	if f == nil {
		return LineCol{}, LineCol{}
	}
	return toLineCol(f.LineIdx, f.clamp(span.Start)), toLineCol(f.LineIdx, f.clamp(span.End))
}

// ResolveRange converts a span into a Range; unknown files yield NoRange.
func (fileSet *FileSet) ResolveRange(span Span) Range {
	f := fileSet.Get(span.File)
	if f == nil {
		return NoRange
	}
	return f.Resolve(span)
}

// Resolve converts a span of this file into a Range.
func (f *File) Resolve(span Span) Range {
	return Range{Start: f.PosFromOffset(span.Start), End: f.PosFromOffset(span.End)}
}

// PosFromOffset maps a byte offset to a position. len(Content) is a valid
// EOF offset; larger offsets are clamped to it.
func (f *File) PosFromOffset(off uint32) Pos {
	off = f.clamp(off)
	lc := toLineCol(f.LineIdx, off)
	return Pos{Line: lc.Line, Col: lc.Col, Offset: off}
}

// LineCount returns the number of lines, counting an empty trailing line.
func (f *File) LineCount() uint32 {
	n, err := safecast.Conv[uint32](len(f.LineIdx))
	if err != nil {
		panic(fmt.Errorf("line index length overflow: %w", err))
	}
	return n
}

// Line returns the text of line n (1-based) without its terminator.
// A trailing '\r' is stripped. ok is false when n is out of range.
func (f *File) Line(n uint32) (string, bool) {
	if n == 0 || n > f.LineCount() {
		return "", false
	}
	start := f.LineIdx[n-1]
	end := f.contentLen()
	if n < f.LineCount() {
		end = f.LineIdx[n] - 1
	}
	if end > start && f.Content[end-1] == '\r' {
		end--
	}
	return f.Text[start:end], true
}

// GetLine is Line without the ok flag; out-of-range lines are "".
func (f *File) GetLine(n uint32) string {
	s, _ := f.Line(n)
	return s
}

func (f *File) contentLen() uint32 {
	n, err := safecast.Conv[uint32](len(f.Content))
	if err != nil {
		panic(fmt.Errorf("content length overflow: %w", err))
	}
	return n
}

func (f *File) clamp(off uint32) uint32 {
	if n := f.contentLen(); off > n {
		return n
	}
	return off
}

// FormatPath renders the path according to mode:
// "absolute", "relative", "basename" or "auto".
// baseDir is only used by "relative".
func (f *File) FormatPath(mode, baseDir string) string {
	if f.Flags&FileVirtual != 0 {
		return f.Path
	}
	switch mode {
	case "absolute":
		if abs, err := AbsolutePath(f.Path); err == nil {
			return abs
		}
		return f.Path

	case "relative":
		if baseDir == "" {
			if wd, err := os.Getwd(); err == nil {
				baseDir = wd
			}
		}
		if rel, err := RelativePath(f.Path, baseDir); err == nil {
			return rel
		}
		return f.Path

	case "basename":
		return BaseName(f.Path)

	case "auto":
		// короткие и относительные пути оставляем как есть
		if len(f.Path) < 40 || !filepath.IsAbs(f.Path) {
			return f.Path
		}
		return BaseName(f.Path)

	default:
		return f.Path
	}
}
