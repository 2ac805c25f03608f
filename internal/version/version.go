package version

import (
	"strings"

	"github.com/fatih/color"
)

// Version information for the jsfront CLI.
// These variables can be overridden at build time via -ldflags.
var (
	// Version is the semantic version of the CLI.
	Version = "0.1.0-dev"

	// GitCommit is an optional git commit hash.
	GitCommit = ""

	// BuildDate is an optional build date in ISO-8601.
	BuildDate = ""
)

// Banner renders "jsfront 0.1.0-dev (commit abc123, built ...)". With
// colored set, major/minor/patch get their own colors.
func Banner(colored bool) string {
	var sb strings.Builder
	sb.WriteString("jsfront ")
	sb.WriteString(paint(Version, colored))
	var extra []string
	if GitCommit != "" {
		extra = append(extra, "commit "+GitCommit)
	}
	if BuildDate != "" {
		extra = append(extra, "built "+BuildDate)
	}
	if len(extra) > 0 {
		sb.WriteString(" (")
		sb.WriteString(strings.Join(extra, ", "))
		sb.WriteString(")")
	}
	return sb.String()
}

func paint(v string, colored bool) string {
	if !colored {
		return v
	}
	core, suffix, _ := strings.Cut(v, "-")
	parts := strings.SplitN(core, ".", 3)
	if len(parts) != 3 {
		return v
	}
	palette := []*color.Color{
		color.New(color.FgYellow, color.Bold),
		color.New(color.FgGreen, color.Bold),
		color.New(color.FgBlue, color.Bold),
	}
	for i, p := range parts {
		palette[i].EnableColor()
		parts[i] = palette[i].Sprint(p)
	}
	out := strings.Join(parts, ".")
	if suffix != "" {
		out += "-" + suffix
	}
	return out
}
