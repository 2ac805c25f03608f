package source

import "fmt"

// Pos is a resolved location: 1-based line and column plus the 0-based byte offset.
type Pos struct {
	Line   uint32
	Col    uint32
	Offset uint32
}

func (p Pos) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Col)
}

// IsValid reports whether p was produced by a resolver (Line is never 0 there).
func (p Pos) IsValid() bool {
	return p.Line > 0
}

// Range is a resolved span. The zero Range (Start.Line == 0) is the
// "no location" sentinel.
type Range struct {
	Start Pos
	End   Pos
}

// NoRange is the empty sentinel range.
var NoRange = Range{}

func (r Range) IsEmpty() bool {
	return r.Start.Line == 0
}

// Merge returns the range spanning both r and other. The empty sentinel
// is the identity element.
func (r Range) Merge(other Range) Range {
	if r.IsEmpty() {
		return other
	}
	if other.IsEmpty() {
		return r
	}
	out := r
	if other.Start.Offset < out.Start.Offset {
		out.Start = other.Start
	}
	if other.End.Offset > out.End.Offset {
		out.End = other.End
	}
	return out
}

func (r Range) String() string {
	if r.IsEmpty() {
		return "<no location>"
	}
	return fmt.Sprintf("%s-%s", r.Start, r.End)
}
