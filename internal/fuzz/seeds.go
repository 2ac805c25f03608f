package fuzztests

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"
)

const (
	maxSeedBytes = 64 << 10 // 64 KiB — ограничение для тестового корпуса
)

var jsExtensions = map[string]bool{".js": true, ".mjs": true, ".cjs": true}

func addCorpusSeeds(f *testing.F) {
	addTestdataSeeds(f)
	addSnippetSeeds(f)
}

func addTestdataSeeds(f *testing.F) {
	root := filepath.Join("..", "..", "testdata")
	if _, err := os.Stat(root); err != nil {
		return
	}
	// проходим по дереву testdata, добавляем все *.js файлы
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return nil
		}
		if d.IsDir() || !jsExtensions[filepath.Ext(path)] {
			return nil
		}
		// #nosec G304 -- path comes from repository testdata walk
		src, err := os.ReadFile(path)
		if err != nil {
			return nil
		}
		f.Add(clampSeed(src))
		return nil
	})
	if err != nil {
		return
	}
}

func addSnippetSeeds(f *testing.F) {
	// добавляем хотя бы минимальные примеры на случай пустого testdata
	for _, s := range []string{
		"",
		"let x = 1;\n",
		"function f(a, b = 2, ...c) { return a + b * c; }",
		"const o = { a, [k]: v, get x() { return 1; }, ...rest };",
		"for (const k in o) { if (k) continue; else break; }",
		"'unterminated",
		"/* open comment",
		"0x 1e 0b2 1__0",
		"a?.b?.(c)[d] ?? e",
		"x => y => z",
		"\xef\xbb\xbfvar bom;",
	} {
		f.Add([]byte(s))
	}
}

func clampSeed(src []byte) []byte {
	if len(src) <= maxSeedBytes {
		return append([]byte(nil), src...)
	}
	return append([]byte(nil), src[:maxSeedBytes]...)
}
