package diag

import "jsfront/internal/source"

// dedupKey identifies a diagnostic for duplicate suppression.
type dedupKey struct {
	code  Code
	sev   Severity
	file  source.FileID
	start uint32
	end   uint32
	msg   string
}

func keyOf(code Code, sev Severity, sp source.Span, msg string) dedupKey {
	return dedupKey{code: code, sev: sev, file: sp.File, start: sp.Start, end: sp.End, msg: msg}
}

// DedupReporter forwards only the first of several identical reports.
// Error recovery may revisit the same token, so the driver puts one in
// front of every per-file bag. Not safe for concurrent use.
type DedupReporter struct {
	next       Reporter
	seen       map[dedupKey]struct{}
	suppressed int
}

func NewDedupReporter(next Reporter) *DedupReporter {
	return &DedupReporter{next: next, seen: make(map[dedupKey]struct{})}
}

func (r *DedupReporter) Report(code Code, sev Severity, primary source.Span, msg, suggestion string, related []*Diagnostic) {
	if r == nil {
		return
	}
	k := keyOf(code, sev, primary, msg)
	if _, dup := r.seen[k]; dup {
		r.suppressed++
		return
	}
	r.seen[k] = struct{}{}
	if r.next != nil {
		r.next.Report(code, sev, primary, msg, suggestion, related)
	}
}

// Suppressed returns how many reports were dropped as duplicates.
func (r *DedupReporter) Suppressed() int {
	if r == nil {
		return 0
	}
	return r.suppressed
}
