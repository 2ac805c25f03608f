package main

import (
	"fmt"
	"os"
	"strings"
)

// checkView describes how check reports progress while files are parsed.
type checkView struct {
	format string // pretty|short|json
	ui     string // auto|on|off
	quiet  bool
	files  int
}

func (v checkView) validate() error {
	switch v.format {
	case "pretty", "short", "json":
	default:
		return fmt.Errorf("unknown format: %s", v.format)
	}
	switch v.ui {
	case "auto", "on", "off":
		return nil
	default:
		return fmt.Errorf("invalid --ui value %q (expected auto|on|off)", v.ui)
	}
}

// progress reports whether the Bubble Tea view should run on out.
// Only the pretty format has a place for it; machine formats never do.
// In auto mode a single file, --quiet, CI and dumb terminals all fall
// back to plain output.
func (v checkView) progress(out *os.File) bool {
	if v.format != "pretty" || v.files == 0 {
		return false
	}
	switch v.ui {
	case "on":
		return true
	case "off":
		return false
	}
	if v.files < 2 || v.quiet {
		return false
	}
	if os.Getenv("TERM") == "dumb" || os.Getenv("CI") != "" {
		return false
	}
	return out != nil && isTerminal(out)
}

func newCheckView(format, ui string, files int) checkView {
	return checkView{
		format: strings.ToLower(strings.TrimSpace(format)),
		ui:     strings.ToLower(strings.TrimSpace(ui)),
		quiet:  current.quiet,
		files:  files,
	}
}
