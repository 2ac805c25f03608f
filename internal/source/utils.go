package source

import (
	"bytes"
	"fmt"
	"path/filepath"

	"fortio.org/safecast"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

var (
	bomUTF8    = []byte{0xEF, 0xBB, 0xBF}
	bomUTF16LE = []byte{0xFF, 0xFE}
	bomUTF16BE = []byte{0xFE, 0xFF}
)

func removeBOM(content []byte) ([]byte, bool) {
	if bytes.HasPrefix(content, bomUTF8) {
		return content[len(bomUTF8):], true
	}
	return content, false
}

// decodeUTF16 transcodes content carrying a UTF-16 byte order mark into UTF-8.
// Content without such a mark is returned unchanged.
func decodeUTF16(content []byte) ([]byte, bool, error) {
	var endian unicode.Endianness
	switch {
	case bytes.HasPrefix(content, bomUTF16LE):
		endian = unicode.LittleEndian
	case bytes.HasPrefix(content, bomUTF16BE):
		endian = unicode.BigEndian
	default:
		return content, false, nil
	}
	dec := unicode.UTF16(endian, unicode.ExpectBOM).NewDecoder()
	out, _, err := transform.Bytes(dec, content)
	if err != nil {
		return nil, false, fmt.Errorf("decode utf-16: %w", err)
	}
	return out, true, nil
}

func hasCRLF(content []byte) bool {
	return bytes.Contains(content, []byte("\r\n"))
}

// buildLineIndex returns line start offsets; entry 0 is 0 and each '\n'
// opens a new line, including an empty trailing one.
func buildLineIndex(content []byte) []uint32 {
	out := make([]uint32, 1, 1+bytes.Count(content, []byte{'\n'}))
	for i, b := range content {
		if b == '\n' {
			next, err := safecast.Conv[uint32](i + 1)
			if err != nil {
				panic(fmt.Errorf("line offset overflow: %w", err))
			}
			out = append(out, next)
		}
	}
	return out
}

// lineForOffset finds the 0-based index of the greatest line start <= off.
func lineForOffset(lineIdx []uint32, off uint32) int {
	lo, hi := 0, len(lineIdx)-1
	for lo <= hi {
		mid := (lo + hi) >> 1
		if lineIdx[mid] <= off {
			lo = mid + 1
		} else {
			hi = mid - 1
		}
	}
	if hi < 0 {
		return 0
	}
	return hi
}

func toLineCol(lineIdx []uint32, off uint32) LineCol {
	if len(lineIdx) == 0 {
		return LineCol{Line: 1, Col: off + 1}
	}
	line := lineForOffset(lineIdx, off)
	lineNo, err := safecast.Conv[uint32](line + 1)
	if err != nil {
		panic(fmt.Errorf("line number overflow: %w", err))
	}
	return LineCol{Line: lineNo, Col: off - lineIdx[line] + 1}
}

func normalizePath(p string) string {
	// единый вид в кроссплатформенных дифах
	return filepath.ToSlash(filepath.Clean(p))
}
