package driver

import (
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/vmihailenco/msgpack/v5"

	"jsfront/internal/diag"
	"jsfront/internal/project"
	"jsfront/internal/source"
)

// Current schema version - increment when DiskPayload format changes
const diskCacheSchemaVersion uint16 = 1

// DiskCache хранит результаты проверки файлов на диске, ключ - хеш содержимого.
// Thread-safe for concurrent access.
type DiskCache struct {
	mu  sync.RWMutex
	dir string
}

// DiskPayload is the cached outcome of checking one file.
type DiskPayload struct {
	// Schema version for safe invalidation when format changes
	Schema uint16

	ContentHash project.Digest
	Statements  int
	Diagnostics []CachedDiagnostic
}

// CachedDiagnostic is a diagnostic with spans relative to its file; the
// file ID is restored on replay.
type CachedDiagnostic struct {
	Severity   uint8
	Code       uint16
	Message    string
	Start      uint32
	End        uint32
	Suggestion string
	Related    []CachedDiagnostic
}

// OpenDiskCache initializes and returns a disk cache at the standard location.
func OpenDiskCache(app string) (*DiskCache, error) {
	base := os.Getenv("XDG_CACHE_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		base = filepath.Join(home, ".cache")
	}
	return NewDiskCache(filepath.Join(base, app))
}

// NewDiskCache opens a cache rooted at dir, creating it if needed.
func NewDiskCache(dir string) (*DiskCache, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create cache dir: %w", err)
	}
	return &DiskCache{dir: dir}, nil
}

// Dir returns the cache root.
func (c *DiskCache) Dir() string {
	if c == nil {
		return ""
	}
	return c.dir
}

func (c *DiskCache) pathFor(key project.Digest) string {
	hexKey := hex.EncodeToString(key[:])
	return filepath.Join(c.dir, "files", hexKey[:2], hexKey+".mp")
}

// Put serializes and writes a payload to the disk cache.
func (c *DiskCache) Put(key project.Digest, payload *DiskPayload) error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	p := c.pathFor(key)
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return err
	}
	f, err := os.CreateTemp(filepath.Dir(p), "tmp-*")
	if err != nil {
		return err
	}
	tmp := f.Name()

	payload.Schema = diskCacheSchemaVersion
	if err := msgpack.NewEncoder(f).Encode(payload); err != nil {
		_ = f.Close()
		_ = os.Remove(tmp)
		return fmt.Errorf("encode cache entry: %w", err)
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(tmp)
		return err
	}
	// Атомарная замена
	if err := os.Rename(tmp, p); err != nil {
		_ = os.Remove(tmp)
		return err
	}
	return nil
}

// Get reads and deserializes a payload from the disk cache. Entries written
// with another schema version count as a miss.
func (c *DiskCache) Get(key project.Digest, out *DiskPayload) (bool, error) {
	if c == nil {
		return false, nil
	}
	c.mu.RLock()
	defer c.mu.RUnlock()

	f, err := os.Open(c.pathFor(key))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return false, nil
		}
		return false, err
	}
	defer f.Close()

	var payload DiskPayload
	if err := msgpack.NewDecoder(f).Decode(&payload); err != nil {
		return false, fmt.Errorf("decode cache entry: %w", err)
	}
	if payload.Schema != diskCacheSchemaVersion {
		return false, nil
	}
	*out = payload
	return true, nil
}

// DropAll invalidates the cache, useful after format changes.
func (c *DiskCache) DropAll() error {
	if c == nil {
		return nil
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	// переименуем каталог и удалим
	old := c.dir + ".old-" + time.Now().Format("20060102150405")
	if err := os.Rename(c.dir, old); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return err
	}
	return os.RemoveAll(old)
}

// cacheKey binds the file content to the settings that shape its diagnostics.
func cacheKey(file *source.File, maxDiagnostics int) project.Digest {
	settings := project.HashString(fmt.Sprintf("schema=%d;max=%d", diskCacheSchemaVersion, maxDiagnostics))
	return project.Combine(project.Digest(file.Hash), settings)
}

func toCached(items []*diag.Diagnostic) []CachedDiagnostic {
	if len(items) == 0 {
		return nil
	}
	out := make([]CachedDiagnostic, 0, len(items))
	for _, d := range items {
		if d == nil {
			continue
		}
		out = append(out, CachedDiagnostic{
			Severity:   uint8(d.Severity),
			Code:       uint16(d.Code),
			Message:    d.Message,
			Start:      d.Primary.Start,
			End:        d.Primary.End,
			Suggestion: d.Suggestion,
			Related:    toCached(d.Related),
		})
	}
	return out
}

func fromCached(items []CachedDiagnostic, file source.FileID) []*diag.Diagnostic {
	if len(items) == 0 {
		return nil
	}
	out := make([]*diag.Diagnostic, 0, len(items))
	for _, c := range items {
		out = append(out, &diag.Diagnostic{
			Severity:   diag.Severity(c.Severity),
			Code:       diag.Code(c.Code),
			Message:    c.Message,
			Primary:    source.Span{File: file, Start: c.Start, End: c.End},
			Suggestion: c.Suggestion,
			Related:    fromCached(c.Related, file),
		})
	}
	return out
}
