package trace

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"
	"time"
)

func TestParseLevel(t *testing.T) {
	for _, name := range []string{"off", "error", "phase", "file", "debug"} {
		lvl, err := ParseLevel(strings.ToUpper(name))
		if err != nil || lvl.String() != name {
			t.Fatalf("ParseLevel(%q) = %v, %v", name, lvl, err)
		}
	}
	if _, err := ParseLevel("verbose"); err == nil {
		t.Fatalf("expected error for unknown level")
	}
}

func TestShouldEmit(t *testing.T) {
	tests := []struct {
		level Level
		scope Scope
		want  bool
	}{
		{LevelOff, ScopeDriver, false},
		{LevelError, ScopeDriver, false},
		{LevelPhase, ScopePass, true},
		{LevelPhase, ScopeFile, false},
		{LevelFile, ScopeFile, true},
		{LevelFile, ScopeDetail, false},
		{LevelDebug, ScopeDetail, true},
	}
	for _, tt := range tests {
		if got := tt.level.ShouldEmit(tt.scope); got != tt.want {
			t.Errorf("%s.ShouldEmit(%s) = %v, want %v", tt.level, tt.scope, got, tt.want)
		}
	}
}

func TestStreamTextNesting(t *testing.T) {
	var buf bytes.Buffer
	tr := NewStreamTracer(&buf, LevelFile, FormatText)
	ctx := WithTracer(context.Background(), tr)

	outer, ctx := Start(ctx, ScopeDriver, "check")
	inner, _ := Start(ctx, ScopeFile, "file:a.js")
	inner.WithExtra("stmts", "3").End("")
	skipped, _ := Start(ctx, ScopeDetail, "too-fine")
	skipped.End("")
	outer.End("ok")

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 4 {
		t.Fatalf("expected 4 lines, got %d:\n%s", len(lines), buf.String())
	}
	if lines[0] != "→ check" || lines[1] != "  → file:a.js" {
		t.Fatalf("unexpected begin lines: %q", lines[:2])
	}
	if !strings.HasPrefix(lines[2], "  ← file:a.js") || !strings.HasSuffix(lines[2], "{stmts=3}") {
		t.Fatalf("unexpected end line: %q", lines[2])
	}
	if !strings.HasPrefix(lines[3], "← check (ok)") {
		t.Fatalf("unexpected root end: %q", lines[3])
	}
}

func TestStreamNDJSON(t *testing.T) {
	var buf bytes.Buffer
	tr, err := New(Config{Level: LevelPhase, Format: FormatNDJSON, Output: &buf})
	if err != nil {
		t.Fatal(err)
	}
	span := Begin(tr, ScopePass, "parse", 0)
	span.End("")

	dec := json.NewDecoder(&buf)
	var kinds []string
	for dec.More() {
		var ev jsonEvent
		if err := dec.Decode(&ev); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if ev.Name != "parse" || ev.Scope != "pass" {
			t.Fatalf("unexpected event %+v", ev)
		}
		kinds = append(kinds, ev.Kind)
	}
	if strings.Join(kinds, ",") != "begin,end" {
		t.Fatalf("kinds = %v", kinds)
	}
}

func TestNopAndInertSpans(t *testing.T) {
	tr, err := New(Config{Level: LevelOff})
	if err != nil || tr.Enabled() {
		t.Fatalf("LevelOff must produce a disabled tracer")
	}
	span, ctx := Start(context.Background(), ScopeDriver, "x")
	if span.ID() != 0 || CurrentSpan(ctx) != 0 {
		t.Fatalf("spans without a tracer must be inert")
	}
	if d := span.End(""); d != 0 {
		t.Fatalf("inert span duration = %v", d)
	}
}

func TestRingKeepsLastEvents(t *testing.T) {
	ring := NewRingTracer(3, LevelError)
	for _, name := range []string{"a", "b", "c", "d"} {
		Begin(ring, ScopeDetail, name, 0)
	}
	snap := ring.Snapshot()
	if len(snap) != 3 || snap[0].Name != "b" || snap[2].Name != "d" {
		t.Fatalf("unexpected snapshot %+v", snap)
	}

	var buf bytes.Buffer
	if err := ring.Dump(&buf, FormatText); err != nil {
		t.Fatal(err)
	}
	if strings.Count(buf.String(), "→ ") != 3 {
		t.Fatalf("dump:\n%s", buf.String())
	}
}

func TestMultiTracerFansOut(t *testing.T) {
	var buf bytes.Buffer
	tr, err := New(Config{Level: LevelPhase, Format: FormatText, Output: &buf, RingSize: 8})
	if err != nil {
		t.Fatal(err)
	}
	multi, ok := tr.(*MultiTracer)
	if !ok {
		t.Fatalf("RingSize > 0 must produce a MultiTracer, got %T", tr)
	}
	Begin(tr, ScopeDriver, "check", 0).End("")
	if got := len(multi.Ring().Snapshot()); got != 2 {
		t.Fatalf("ring holds %d events, want 2", got)
	}
	if !strings.Contains(buf.String(), "← check") {
		t.Fatalf("stream missed events:\n%s", buf.String())
	}
}

func TestHeartbeat(t *testing.T) {
	ring := NewRingTracer(16, LevelPhase)
	h := StartHeartbeat(ring, time.Millisecond)
	deadline := time.Now().Add(2 * time.Second)
	for len(ring.Snapshot()) == 0 && time.Now().Before(deadline) {
		time.Sleep(time.Millisecond)
	}
	h.Stop()
	h.Stop()
	if len(ring.Snapshot()) == 0 {
		t.Fatalf("no heartbeat recorded")
	}
	if StartHeartbeat(Nop, time.Millisecond) != nil {
		t.Fatalf("disabled tracer must not start a heartbeat")
	}
}
