package fuzztests

import (
	"testing"

	"jsfront/internal/diag"
	"jsfront/internal/lexer"
	"jsfront/internal/source"
	"jsfront/internal/token"
)

const maxFuzzInput = 1 << 16 // 64 KiB

func clampInput(input []byte) []byte {
	if len(input) > maxFuzzInput {
		return append([]byte(nil), input[:maxFuzzInput]...)
	}
	return append([]byte(nil), input...)
}

func FuzzLexerTokens(f *testing.F) {
	addCorpusSeeds(f)
	f.Fuzz(func(t *testing.T, input []byte) {
		input = clampInput(input)

		fs := source.NewFileSet()
		fileID := fs.AddVirtual("fuzz.js", input)
		file := fs.Get(fileID)

		bag := diag.NewBag(64)
		reporter := diag.BagReporter{Bag: bag}
		lx := lexer.New(file, lexer.Options{Reporter: reporter})

		var prevEnd uint32
		for {
			tok := lx.Next()
			if tok.Kind == token.EOF {
				break
			}
			// токены идут по порядку и никогда не бывают пустыми
			if tok.Span.Empty() {
				t.Fatalf("empty %s token at %d", tok.Kind, tok.Span.Start)
			}
			if tok.Span.Start < prevEnd {
				t.Fatalf("token %s at %d overlaps previous end %d", tok.Kind, tok.Span.Start, prevEnd)
			}
			prevEnd = tok.Span.End
		}
	})
}
