package diag

// Severity defines the importance of a diagnostic. Values are ordered:
// SevHint < SevNote < SevWarning < SevError.
type Severity uint8

const (
	// SevHint is for low-priority suggestions.
	SevHint Severity = iota
	// SevNote is for supplementary context, usually attached as related.
	SevNote
	// SevWarning is for warning diagnostics.
	SevWarning
	SevError
)

func (s Severity) String() string {
	switch s {
	case SevHint:
		return "hint"
	case SevNote:
		return "note"
	case SevWarning:
		return "warning"
	case SevError:
		return "error"
	}
	return "unknown"
}

// ParseSeverity is the inverse of String.
func ParseSeverity(s string) (Severity, bool) {
	switch s {
	case "hint":
		return SevHint, true
	case "note":
		return SevNote, true
	case "warning":
		return SevWarning, true
	case "error":
		return SevError, true
	}
	return SevHint, false
}
