package diagfmt

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"jsfront/internal/diag"
	"jsfront/internal/source"
)

const (
	maxCarets       = 50
	maxPrimaryLines = 4
)

// Pretty форматирует диагностики в человекочитаемый вид.
// Идёт по bag.Items() в порядке добавления. Для каждой диагностики печатает:
//
//	error[E0002]: unterminated string literal
//	  --> path:line:col
//	   |
//	 1 | let s = 'abc
//	   |         ^^^^
//	  = help: ...
//
// затем связанные диагностики (notes) с отступом в два пробела на уровень.
// Входные данные не изменяются.
func Pretty(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts PrettyOpts) {
	if bag == nil {
		return
	}
	r := prettyRenderer{w: w, fs: fs, opts: opts, pal: newPalette(opts.Color)}
	for i, d := range bag.Items() {
		if i > 0 {
			fmt.Fprintln(w)
		}
		r.render(d, 0)
	}
}

type prettyRenderer struct {
	w    io.Writer
	fs   *source.FileSet
	opts PrettyOpts
	pal  palette
}

func (r *prettyRenderer) render(d *diag.Diagnostic, depth int) {
	if d == nil {
		return
	}
	indent := strings.Repeat("  ", depth)
	sevColor := r.pal.severity(d.Severity)

	// заголовок
	head := fmt.Sprintf("%s[%s]", d.Severity, d.Code.ID())
	fmt.Fprintf(r.w, "%s%s%s\n", indent, sevColor.Sprint(head), r.pal.bold.Sprint(": "+d.Message))

	if f := r.file(d.Primary); f != nil {
		r.renderSnippet(f, d.Primary, sevColor, indent)
	}

	if d.Suggestion != "" {
		fmt.Fprintf(r.w, "%s  %s %s\n", indent, r.pal.gutter.Sprint("="), r.pal.help.Sprint("help: "+d.Suggestion))
	}

	for _, rel := range d.Related {
		r.render(rel, depth+1)
	}
}

func (r *prettyRenderer) file(sp source.Span) *source.File {
	if r.fs == nil {
		return nil
	}
	return r.fs.Get(sp.File)
}

func (r *prettyRenderer) renderSnippet(f *source.File, sp source.Span, sevColor *color.Color, indent string) {
	rng := f.Resolve(sp)
	startLine, endLine := rng.Start.Line, rng.End.Line
	if rng.End.Offset > rng.Start.Offset && rng.End.Col == 1 && endLine > startLine {
		// span заканчивается сразу после '\n'
		endLine--
	}
	lastShown := endLine
	if lastShown-startLine+1 > maxPrimaryLines {
		lastShown = startLine + maxPrimaryLines - 1
	}

	firstCtx := startLine
	if ctx := uint32(max(r.opts.Context, 0)); ctx > 0 {
		if ctx >= startLine {
			firstCtx = 1
		} else {
			firstCtx = startLine - ctx
		}
	}
	width := len(strconv.FormatUint(uint64(lastShown), 10))
	pad := strings.Repeat(" ", width)
	bar := r.pal.gutter.Sprint("|")

	path := formatPath(f, r.fs, r.opts.PathMode)
	fmt.Fprintf(r.w, "%s %s%s %s:%d:%d\n", indent, pad, r.pal.gutter.Sprint("-->"), path, rng.Start.Line, rng.Start.Col)
	fmt.Fprintf(r.w, "%s %s %s\n", indent, pad, bar)

	for n := firstCtx; n < startLine; n++ {
		line, _ := f.Line(n)
		r.sourceLine(indent, width, n, line)
	}

	for n := startLine; n <= lastShown; n++ {
		line, ok := f.Line(n)
		if !ok {
			break
		}
		r.sourceLine(indent, width, n, line)

		lineStart := f.LineIdx[n-1]
		from := 0
		if n == startLine {
			from = clampInt(int(sp.Start)-int(lineStart), len(line))
		}
		to := len(line)
		if n == endLine {
			to = clampInt(int(sp.End)-int(lineStart), len(line))
		}
		carets := caretCount(line, from, to)
		fmt.Fprintf(r.w, "%s %s %s %s%s\n", indent, pad, bar, caretPrefix(line[:from]), sevColor.Sprint(strings.Repeat("^", carets)))
	}
	if lastShown < endLine {
		fmt.Fprintf(r.w, "%s %s %s ...\n", indent, pad, bar)
	}
}

func (r *prettyRenderer) sourceLine(indent string, width int, n uint32, text string) {
	num := fmt.Sprintf("%*d", width, n)
	fmt.Fprintf(r.w, "%s %s %s %s\n", indent, r.pal.gutter.Sprint(num), r.pal.gutter.Sprint("|"), text)
}

// caretPrefix повторяет отступ строки: табы сохраняются, широкие руны
// занимают столько же колонок, сколько в терминале.
func caretPrefix(before string) string {
	var sb strings.Builder
	for _, ch := range before {
		if ch == '\t' {
			sb.WriteByte('\t')
			continue
		}
		sb.WriteString(strings.Repeat(" ", runewidth.RuneWidth(ch)))
	}
	return sb.String()
}

func caretCount(line string, from, to int) int {
	n := 0
	if to > from {
		n = runewidth.StringWidth(strings.ReplaceAll(line[from:to], "\t", " "))
	}
	return min(max(n, 1), maxCarets)
}

func clampInt(v, hi int) int {
	if v < 0 {
		return 0
	}
	if v > hi {
		return hi
	}
	return v
}

// RenderSummary печатает итоговую строку вида
// "error: 2 errors and 1 warning emitted". Для чистого bag ничего не печатает.
func RenderSummary(w io.Writer, bag *diag.Bag, opts PrettyOpts) {
	if bag == nil {
		return
	}
	errs, warns := bag.ErrorCount(), bag.WarningCount()
	if errs == 0 && warns == 0 {
		return
	}
	pal := newPalette(opts.Color)
	switch {
	case errs > 0 && warns > 0:
		fmt.Fprintf(w, "%s: %s and %s emitted\n", pal.err.Sprint("error"), plural(errs, "error"), plural(warns, "warning"))
	case errs > 0:
		fmt.Fprintf(w, "%s: %s emitted\n", pal.err.Sprint("error"), plural(errs, "error"))
	default:
		fmt.Fprintf(w, "%s: %s emitted\n", pal.warn.Sprint("warning"), plural(warns, "warning"))
	}
}

func plural(n int, word string) string {
	if n == 1 {
		return "1 " + word
	}
	return fmt.Sprintf("%d %ss", n, word)
}

// Short печатает по одной строке на диагностику:
// "error E0002 path:line:col message".
func Short(w io.Writer, bag *diag.Bag, fs *source.FileSet) {
	if bag == nil {
		return
	}
	if out := diag.FormatShortDiagnostics(bag.Items(), fs, false); out != "" {
		fmt.Fprintln(w, out)
	}
}
