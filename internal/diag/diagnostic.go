package diag

import (
	"jsfront/internal/source"
)

type Diagnostic struct {
	Severity Severity
	Code     Code
	Message  string
	Primary  source.Span
	// Suggestion is an optional "help:" line.
	Suggestion string
	// Related diagnostics are rendered after this one, in order.
	Related []*Diagnostic
}

// IsError reports whether the diagnostic has error severity.
func (d *Diagnostic) IsError() bool {
	return d != nil && d.Severity == SevError
}
