package diagfmt

import (
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"golang.org/x/term"

	"jsfront/internal/diag"
)

// DetectColor resolves a --color value ("auto", "on", "off") into a decision
// for the given output file. It is meant to be called once per command; the
// result travels in PrettyOpts.Color.
func DetectColor(mode string, out *os.File) (bool, error) {
	switch strings.ToLower(mode) {
	case "on", "always", "true":
		return true, nil
	case "off", "never", "false":
		return false, nil
	case "", "auto":
	default:
		return false, fmt.Errorf("invalid color mode %q (want auto|on|off)", mode)
	}

	if envForced("FORCE_COLOR") || envForced("CLICOLOR_FORCE") {
		return true, nil
	}
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false, nil
	}
	if os.Getenv("TERM") == "dumb" {
		return false, nil
	}
	if out == nil {
		return false, nil
	}
	return term.IsTerminal(int(out.Fd())), nil // #nosec G115 -- file descriptors fit in int
}

func envForced(name string) bool {
	v, ok := os.LookupEnv(name)
	return ok && v != "" && v != "0" && v != "false"
}

// palette holds per-render color instances; disabled instances print
// their input unchanged.
type palette struct {
	err, warn, note, hint *color.Color
	bold                  *color.Color
	gutter                *color.Color
	help                  *color.Color
}

func newPalette(enabled bool) palette {
	p := palette{
		err:    color.New(color.FgRed, color.Bold),
		warn:   color.New(color.FgYellow, color.Bold),
		note:   color.New(color.FgCyan, color.Bold),
		hint:   color.New(color.FgGreen, color.Bold),
		bold:   color.New(color.Bold),
		gutter: color.New(color.FgBlue, color.Bold),
		help:   color.New(color.FgCyan),
	}
	for _, c := range []*color.Color{p.err, p.warn, p.note, p.hint, p.bold, p.gutter, p.help} {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return p
}

func (p palette) severity(sev diag.Severity) *color.Color {
	switch sev {
	case diag.SevError:
		return p.err
	case diag.SevWarning:
		return p.warn
	case diag.SevNote:
		return p.note
	default:
		return p.hint
	}
}
