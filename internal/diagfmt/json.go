package diagfmt

import (
	"encoding/json"
	"io"

	"jsfront/internal/diag"
	"jsfront/internal/source"
)

// LocationJSON представляет местоположение в файле для JSON
type LocationJSON struct {
	File      string `json:"file"`
	StartByte uint32 `json:"start_byte"`
	EndByte   uint32 `json:"end_byte"`
	StartLine uint32 `json:"start_line,omitempty"`
	StartCol  uint32 `json:"start_col,omitempty"`
	EndLine   uint32 `json:"end_line,omitempty"`
	EndCol    uint32 `json:"end_col,omitempty"`
}

// DiagnosticJSON представляет диагностику в JSON формате
type DiagnosticJSON struct {
	Severity   string           `json:"severity"`
	Code       string           `json:"code"`
	Title      string           `json:"title"`
	Message    string           `json:"message"`
	Location   LocationJSON     `json:"location"`
	Suggestion string           `json:"suggestion,omitempty"`
	Related    []DiagnosticJSON `json:"related,omitempty"`
}

// DiagnosticsOutput представляет корневую структуру JSON вывода
type DiagnosticsOutput struct {
	Diagnostics []DiagnosticJSON `json:"diagnostics"`
	Count       int              `json:"count"`
	Errors      int              `json:"errors"`
	Warnings    int              `json:"warnings"`
}

// makeLocation создаёт LocationJSON из Span
func makeLocation(span source.Span, fs *source.FileSet, pathMode PathMode, includePositions bool) LocationJSON {
	loc := LocationJSON{
		File:      "<unknown>",
		StartByte: span.Start,
		EndByte:   span.End,
	}
	if fs == nil {
		return loc
	}
	f := fs.Get(span.File)
	if f == nil {
		return loc
	}
	loc.File = formatPath(f, fs, pathMode)

	// Добавляем позиции строк/колонок если требуется
	if includePositions {
		rng := f.Resolve(span)
		loc.StartLine = rng.Start.Line
		loc.StartCol = rng.Start.Col
		loc.EndLine = rng.End.Line
		loc.EndCol = rng.End.Col
	}
	return loc
}

func makeDiagnostic(d *diag.Diagnostic, fs *source.FileSet, opts JSONOpts) DiagnosticJSON {
	out := DiagnosticJSON{
		Severity:   d.Severity.String(),
		Code:       d.Code.ID(),
		Title:      d.Code.Title(),
		Message:    d.Message,
		Location:   makeLocation(d.Primary, fs, opts.PathMode, opts.IncludePositions),
		Suggestion: d.Suggestion,
	}
	if opts.IncludeNotes && len(d.Related) > 0 {
		out.Related = make([]DiagnosticJSON, 0, len(d.Related))
		for _, rel := range d.Related {
			if rel != nil {
				out.Related = append(out.Related, makeDiagnostic(rel, fs, opts))
			}
		}
	}
	return out
}

// BuildDiagnosticsOutput формирует структуру JSON-вывода без сериализации.
func BuildDiagnosticsOutput(bag *diag.Bag, fs *source.FileSet, opts JSONOpts) DiagnosticsOutput {
	if bag == nil {
		return DiagnosticsOutput{Diagnostics: []DiagnosticJSON{}}
	}
	items := bag.Items()
	maxItems := len(items)
	if opts.Max > 0 && opts.Max < maxItems {
		maxItems = opts.Max
	}

	diagnostics := make([]DiagnosticJSON, 0, maxItems)
	for _, d := range items[:maxItems] {
		diagnostics = append(diagnostics, makeDiagnostic(d, fs, opts))
	}
	return DiagnosticsOutput{
		Diagnostics: diagnostics,
		Count:       len(diagnostics),
		Errors:      bag.ErrorCount(),
		Warnings:    bag.WarningCount(),
	}
}

// JSON форматирует диагностики в JSON формат.
func JSON(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts JSONOpts) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(BuildDiagnosticsOutput(bag, fs, opts))
}
