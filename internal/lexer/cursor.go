package lexer

import (
	"fmt"

	"fortio.org/safecast"

	"jsfront/internal/source"
)

// Cursor - байтовая позиция в файле. Все чтения за пределами Limit дают 0.
type Cursor struct {
	File *source.File
	Off  uint32
	// Limit is the exclusive upper bound for Off; defaults to len(File.Content).
	Limit uint32
}

// NewCursor creates a new cursor for the provided file.
func NewCursor(f *source.File) Cursor {
	n, err := safecast.Conv[uint32](len(f.Content))
	if err != nil {
		panic(fmt.Errorf("len file content overflow: %w", err))
	}
	return Cursor{File: f, Limit: n}
}

func (c *Cursor) limit() uint32 { return c.Limit }

// has reports whether n more bytes are available from the cursor.
func (c *Cursor) has(n uint32) bool {
	return c.Off+n <= c.limit()
}

// EOF - курсор дошёл до Limit
func (c *Cursor) EOF() bool { return !c.has(1) }

// PeekAt reads the byte n positions ahead of the cursor, or 0 past the limit.
func (c *Cursor) PeekAt(n uint32) byte {
	if !c.has(n + 1) {
		return 0
	}
	return c.File.Content[c.Off+n]
}

// Peek - текущий байт или 0
func (c *Cursor) Peek() byte { return c.PeekAt(0) }

// Peek2 returns the next two bytes; ok is false when fewer remain.
func (c *Cursor) Peek2() (b0, b1 byte, ok bool) {
	if !c.has(2) {
		return 0, 0, false
	}
	return c.PeekAt(0), c.PeekAt(1), true
}

// Peek3 returns the next three bytes; ok is false when fewer remain.
func (c *Cursor) Peek3() (b0, b1, b2 byte, ok bool) {
	if !c.has(3) {
		return 0, 0, 0, false
	}
	return c.PeekAt(0), c.PeekAt(1), c.PeekAt(2), true
}

// Peek4 returns the next four bytes; used for '>>>=' only.
func (c *Cursor) Peek4() (b0, b1, b2, b3 byte, ok bool) {
	if !c.has(4) {
		return 0, 0, 0, 0, false
	}
	return c.PeekAt(0), c.PeekAt(1), c.PeekAt(2), c.PeekAt(3), true
}

// Bump consumes one byte and returns it; at EOF it returns 0 and stays put.
func (c *Cursor) Bump() byte {
	b := c.Peek()
	if c.has(1) {
		c.Off++
	}
	return b
}

// Eat consumes the next byte if it equals b.
func (c *Cursor) Eat(b byte) bool {
	if c.has(1) && c.File.Content[c.Off] == b {
		c.Off++
		return true
	}
	return false
}

// ToEnd moves the cursor to its limit.
func (c *Cursor) ToEnd() { c.Off = c.limit() }

// Mark - сохранённая позиция, от которой строится Span токена
type Mark uint32

func (c *Cursor) Mark() Mark { return Mark(c.Off) }

// Reset rewinds the cursor to m.
func (c *Cursor) Reset(m Mark) { c.Off = uint32(m) }

// SpanFrom returns the span [m, Off).
func (c *Cursor) SpanFrom(m Mark) source.Span {
	return source.Span{File: c.File.ID, Start: uint32(m), End: c.Off}
}
