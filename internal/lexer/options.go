package lexer

import (
	"jsfront/internal/diag"
	"jsfront/internal/source"
)

// maxTokenLength bounds a single token; longer input is treated as garbage
// and the rest of the file is skipped.
const maxTokenLength = 1 << 20

type Options struct {
	// Reporter receives lexical diagnostics. When nil the lexer collects
	// them into its own Bag (see Lexer.Diagnostics).
	Reporter diag.Reporter
	// KeepTrivia fills Token.Leading with skipped whitespace and comments.
	KeepTrivia bool
}

func (lx *Lexer) errLex(code diag.Code, sp source.Span, msg string) {
	lx.errors++
	if lx.opts.Reporter != nil {
		lx.opts.Reporter.Report(code, diag.SevError, sp, msg, "", nil)
	}
}
