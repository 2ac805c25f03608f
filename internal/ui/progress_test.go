package ui

import (
	"strings"
	"testing"

	"github.com/mattn/go-runewidth"

	"jsfront/internal/driver"
)

func TestProgressModelTracksEvents(t *testing.T) {
	events := make(chan driver.ProgressEvent)
	m := NewProgressModel("check", []string{"a.js", "b.js", "c.js"}, events).(*progressModel)

	for _, ev := range []driver.ProgressEvent{
		{Path: "a.js", Status: driver.ProgressStarted},
		{Path: "a.js", Status: driver.ProgressDone},
		{Path: "b.js", Status: driver.ProgressDone, Errors: 2},
		{Path: "c.js", Status: driver.ProgressDone, Cached: true},
		{Path: "c.js", Status: driver.ProgressDone, Cached: true},
		{Path: "unknown.js", Status: driver.ProgressDone},
	} {
		m.Update(eventMsg(ev))
	}

	if m.finished != 3 {
		t.Fatalf("finished = %d, want 3", m.finished)
	}
	want := []string{"ok", "error", "cached"}
	for i, item := range m.items {
		if item.status != want[i] {
			t.Fatalf("item %d status = %q, want %q", i, item.status, want[i])
		}
	}

	m.Update(doneMsg{})
	view := m.View()
	if !strings.Contains(view, "done: check (3/3)") {
		t.Fatalf("unexpected header:\n%s", view)
	}
	for _, name := range []string{"a.js", "b.js", "c.js"} {
		if !strings.Contains(view, name) {
			t.Fatalf("%s missing from view:\n%s", name, view)
		}
	}
}

func TestStatusLabel(t *testing.T) {
	tests := []struct {
		ev   driver.ProgressEvent
		want string
	}{
		{driver.ProgressEvent{Status: driver.ProgressQueued}, "queued"},
		{driver.ProgressEvent{Status: driver.ProgressStarted}, "checking"},
		{driver.ProgressEvent{Status: driver.ProgressDone}, "ok"},
		{driver.ProgressEvent{Status: driver.ProgressDone, Warnings: 1}, "warning"},
		{driver.ProgressEvent{Status: driver.ProgressDone, Errors: 1, Warnings: 1}, "error"},
	}
	for _, tt := range tests {
		if got := statusLabel(tt.ev); got != tt.want {
			t.Fatalf("statusLabel(%+v) = %q, want %q", tt.ev, got, tt.want)
		}
	}
}

func TestTruncate(t *testing.T) {
	if got := truncate("short.js", 20); got != "short.js" {
		t.Fatalf("truncate = %q", got)
	}
	long := strings.Repeat("дир/", 10) + "file.js"
	got := truncate(long, 20)
	if w := runewidth.StringWidth(got); w > 20 {
		t.Fatalf("width %d exceeds 20: %q", w, got)
	}
	if !strings.HasSuffix(got, "...") {
		t.Fatalf("expected ellipsis: %q", got)
	}
}

func TestEmptyModelRendersNothing(t *testing.T) {
	m := NewProgressModel("check", nil, nil)
	if m.View() != "" {
		t.Fatalf("empty model must render nothing")
	}
}
