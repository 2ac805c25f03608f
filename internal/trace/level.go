package trace

import (
	"fmt"
	"strings"
)

// Level controls tracing verbosity.
type Level uint8

const (
	LevelOff   Level = iota // no tracing
	LevelError              // only ring dumps after a failure
	LevelPhase              // driver + pass boundaries
	LevelFile               // one span per source file
	LevelDebug              // everything
)

var levelNames = [...]string{
	LevelOff:   "off",
	LevelError: "error",
	LevelPhase: "phase",
	LevelFile:  "file",
	LevelDebug: "debug",
}

func (l Level) String() string {
	if int(l) < len(levelNames) {
		return levelNames[l]
	}
	return "unknown"
}

// ParseLevel converts a flag value to a Level.
func ParseLevel(s string) (Level, error) {
	want := strings.ToLower(s)
	for i, name := range levelNames {
		if name == want {
			return Level(i), nil
		}
	}
	return LevelOff, fmt.Errorf("invalid trace level: %q (expected: off|error|phase|file|debug)", s)
}

// ShouldEmit reports whether events of scope pass at this level.
func (l Level) ShouldEmit(scope Scope) bool {
	switch l {
	case LevelPhase:
		return scope <= ScopePass
	case LevelFile:
		return scope <= ScopeFile
	case LevelDebug:
		return true
	default:
		// error-уровень пишет только через дамп кольца
		return false
	}
}

// records reports whether events of scope are kept at all: at LevelError
// everything goes to the ring.
func (l Level) records(scope Scope) bool {
	return l == LevelError || l.ShouldEmit(scope)
}
