package version

import (
	"regexp"
	"strings"
	"testing"
)

var ansiRe = regexp.MustCompile(`\x1b\[[0-9;]*m`)

func TestBannerPlain(t *testing.T) {
	origVersion, origCommit, origDate := Version, GitCommit, BuildDate
	t.Cleanup(func() { Version, GitCommit, BuildDate = origVersion, origCommit, origDate })

	tests := []struct {
		version, commit, date string
		want                  string
	}{
		{"0.1.0-dev", "", "", "jsfront 0.1.0-dev"},
		{"1.2.3", "abc123", "", "jsfront 1.2.3 (commit abc123)"},
		{"1.2.3", "abc123", "2024-01-15", "jsfront 1.2.3 (commit abc123, built 2024-01-15)"},
	}
	for _, tt := range tests {
		Version, GitCommit, BuildDate = tt.version, tt.commit, tt.date
		if got := Banner(false); got != tt.want {
			t.Fatalf("Banner = %q, want %q", got, tt.want)
		}
	}
}

func TestBannerColored(t *testing.T) {
	origVersion := Version
	t.Cleanup(func() { Version = origVersion })

	Version = "1.2.3-rc1"
	got := Banner(true)
	if !strings.Contains(got, "\x1b[") {
		t.Fatalf("expected ANSI escapes in %q", got)
	}
	if plain := ansiRe.ReplaceAllString(got, ""); plain != Banner(false) {
		t.Fatalf("stripped banner %q != plain %q", plain, Banner(false))
	}

	// нестандартная версия остаётся как есть
	Version = "nightly"
	if got := Banner(true); got != "jsfront nightly" {
		t.Fatalf("Banner = %q", got)
	}
}
