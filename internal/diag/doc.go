// Package diag defines the diagnostic model shared by the lexer and parser.
//
// # Data model
//
// Diagnostic is the central record:
//
//   - Severity – Hint, Note, Warning or Error (ordered in that sequence).
//   - Code – numeric identifier grouped by producer: 1..99 lexer,
//     100..199 parser, 200..299 runtime, 300..399 sandbox. Code.ID renders
//     the stable "E0001" form, Code.Title a fixed description.
//   - Message – human oriented text; keep it short and actionable.
//   - Primary – the source.Span pointing at the issue (may be empty).
//   - Suggestion – optional "help:" text.
//   - Related – further diagnostics rendered after the primary one. Notes
//     are Related entries with SevNote severity.
//
// # Emitting diagnostics
//
// Producers use a Reporter so they are not coupled to storage. The parser
// builds diagnostics through ReportBuilder (ReportError / ReportWarning) and
// chains WithNote / WithSuggestion before calling Emit. BagReporter stores
// into a Bag; DedupReporter filters repeats; NopReporter discards, which the
// lexer uses while scanning speculatively.
//
// # Bag
//
// Bag keeps insertion order, which is the order in which the pipeline
// encountered problems. Error and warning totals are maintained on Add, so
// HasErrors does not walk the list. Notes and hints are never counted.
//
// Package diag performs no IO and no formatting beyond the one-line form in
// golden.go; terminal rendering lives in internal/diagfmt.
package diag
