package diag

import "jsfront/internal/source"

func New(sev Severity, code Code, primary source.Span, msg string) *Diagnostic {
	return &Diagnostic{
		Severity: sev,
		Code:     code,
		Primary:  primary,
		Message:  msg,
	}
}

func NewError(code Code, primary source.Span, msg string) *Diagnostic {
	return New(SevError, code, primary, msg)
}

func NewWarning(code Code, primary source.Span, msg string) *Diagnostic {
	return New(SevWarning, code, primary, msg)
}

// NewNote builds a note-level diagnostic; the code is inherited from the parent.
func NewNote(code Code, sp source.Span, msg string) *Diagnostic {
	return New(SevNote, code, sp, msg)
}

// WithSuggestion sets the help text.
func (d *Diagnostic) WithSuggestion(s string) *Diagnostic {
	d.Suggestion = s
	return d
}

// WithNote appends a note-level related diagnostic after existing ones.
func (d *Diagnostic) WithNote(sp source.Span, msg string) *Diagnostic {
	d.Related = append(d.Related, NewNote(d.Code, sp, msg))
	return d
}

// WithRelated appends arbitrary related diagnostics.
func (d *Diagnostic) WithRelated(rel ...*Diagnostic) *Diagnostic {
	for _, r := range rel {
		if r != nil {
			d.Related = append(d.Related, r)
		}
	}
	return d
}
