package diag

// Bag is an ordered diagnostic list. Error and warning totals are kept
// incrementally so HasErrors is O(1).
type Bag struct {
	items        []*Diagnostic
	max          int // 0 = no limit
	errorCount   int
	warningCount int
	dropped      int
}

// NewBag creates a bag holding at most max diagnostics (max <= 0: unlimited).
func NewBag(max int) *Bag {
	if max < 0 {
		max = 0
	}
	return &Bag{
		items: make([]*Diagnostic, 0, min(max, 64)),
		max:   max,
	}
}

// Add appends a diagnostic, respecting the limit.
// Returns false if the diagnostic was not added.
func (b *Bag) Add(d *Diagnostic) bool {
	if d == nil {
		return false
	}
	if b.max > 0 && len(b.items) >= b.max {
		b.dropped++
		return false
	}
	b.items = append(b.items, d)
	b.count(d)
	return true
}

func (b *Bag) count(d *Diagnostic) {
	switch d.Severity {
	case SevError:
		b.errorCount++
	case SevWarning:
		b.warningCount++
	}
}

// HasErrors reports whether at least one error was added.
func (b *Bag) HasErrors() bool {
	return b.errorCount > 0
}

// HasWarnings reports whether at least one warning was added.
func (b *Bag) HasWarnings() bool {
	return b.warningCount > 0
}

func (b *Bag) ErrorCount() int   { return b.errorCount }
func (b *Bag) WarningCount() int { return b.warningCount }

// Dropped is the number of diagnostics rejected by the limit.
func (b *Bag) Dropped() int { return b.dropped }

func (b *Bag) Len() int {
	return len(b.items)
}

// Items returns diagnostics in insertion order.
// Не модифицируйте возвращаемый срез: он указывает на внутренний массив Bag.
func (b *Bag) Items() []*Diagnostic {
	return b.items
}

// Merge appends all diagnostics of other, growing the limit if needed.
func (b *Bag) Merge(other *Bag) {
	if other == nil {
		return
	}
	if b.max > 0 && len(b.items)+len(other.items) > b.max {
		b.max = len(b.items) + len(other.items)
	}
	for _, d := range other.items {
		b.items = append(b.items, d)
		b.count(d)
	}
	b.dropped += other.dropped
}
