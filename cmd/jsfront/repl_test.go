package main

import (
	"bytes"
	"context"
	"os"
	"strings"
	"testing"

	"jsfront/internal/driver"
)

func TestNeedsMoreInput(t *testing.T) {
	tests := []struct {
		src  string
		want bool
	}{
		{"let x = 1;", false},
		{"function f() {", true},
		{"foo(1,", true},
		{"let = ;", false},
		{"if (x) {\n  y();", true},
		{"", false},
	}
	for _, tt := range tests {
		res, err := driver.ParseSource(context.Background(), "<repl>", tt.src, 0)
		if err != nil {
			t.Fatal(err)
		}
		if got := needsMoreInput(res.Bag); got != tt.want {
			t.Fatalf("needsMoreInput(%q) = %t, want %t", tt.src, got, tt.want)
		}
	}
}

func TestHandleReplCommand(t *testing.T) {
	var buf bytes.Buffer
	if !handleReplCommand(&buf, ".exit") || !handleReplCommand(&buf, ".QUIT") {
		t.Fatalf("exit commands must stop the repl")
	}
	if handleReplCommand(&buf, ".help") {
		t.Fatalf(".help must not exit")
	}
	if !strings.Contains(buf.String(), ".exit") {
		t.Fatalf("help text missing: %q", buf.String())
	}
	buf.Reset()
	handleReplCommand(&buf, ".nope")
	if !strings.Contains(buf.String(), "unknown command .nope") {
		t.Fatalf("unexpected output %q", buf.String())
	}
}

func TestCheckViewValidate(t *testing.T) {
	tests := []struct {
		format, ui string
		ok         bool
	}{
		{"pretty", "auto", true},
		{" JSON ", "OFF", true},
		{"short", "on", true},
		{"pretty", "maybe", false},
		{"xml", "auto", false},
	}
	for _, tt := range tests {
		err := newCheckView(tt.format, tt.ui, 1).validate()
		if (err == nil) != tt.ok {
			t.Fatalf("validate(%q, %q) = %v", tt.format, tt.ui, err)
		}
	}
}

func TestCheckViewProgress(t *testing.T) {
	t.Setenv("CI", "")
	t.Setenv("TERM", "xterm")

	tests := []struct {
		name string
		view checkView
		want bool
	}{
		{"forced on", checkView{format: "pretty", ui: "on", files: 1}, true},
		{"forced off", checkView{format: "pretty", ui: "off", files: 5}, false},
		{"machine format", checkView{format: "json", ui: "on", files: 5}, false},
		{"no files", checkView{format: "pretty", ui: "on"}, false},
		{"auto single file", checkView{format: "pretty", ui: "auto", files: 1}, false},
		{"auto quiet", checkView{format: "pretty", ui: "auto", files: 3, quiet: true}, false},
		{"auto without terminal", checkView{format: "pretty", ui: "auto", files: 3}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.view.progress(nil); got != tt.want {
				t.Fatalf("progress() = %t, want %t", got, tt.want)
			}
		})
	}

	t.Setenv("TERM", "dumb")
	if (checkView{format: "pretty", ui: "auto", files: 3}).progress(os.Stdout) {
		t.Fatalf("dumb terminal must not get the progress view")
	}
}
