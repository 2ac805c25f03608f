package diagfmt

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"strings"

	"jsfront/internal/source"
	"jsfront/internal/token"
)

type TokenOutput struct {
	Kind    string      `json:"kind"`
	Text    string      `json:"text,omitempty"`
	Value   string      `json:"value,omitempty"`
	Number  *float64    `json:"number,omitempty"`
	Span    source.Span `json:"span"`
	Newline bool        `json:"newline_before,omitempty"`
	Leading []string    `json:"leading,omitempty"`
}

// FormatTokensPretty выводит токены в человекочитаемом формате
func FormatTokensPretty(w io.Writer, tokens []token.Token, fs *source.FileSet) error {
	for i, tok := range tokens {
		startPos, endPos := fs.Resolve(tok.Span)

		if _, err := fmt.Fprintf(w, "%3d: %-15s", i+1, tok.Kind.String()); err != nil {
			return err
		}
		if tok.Text != "" {
			fmt.Fprintf(w, " %q", tok.Text)
		}
		switch tok.Kind {
		case token.Number:
			fmt.Fprintf(w, " = %v", tok.Number)
		case token.String:
			fmt.Fprintf(w, " = %q", tok.Value)
		case token.Invalid:
			fmt.Fprintf(w, " (%s)", tok.Value)
		}

		fmt.Fprintf(w, " at %d:%d-%d:%d",
			startPos.Line, startPos.Col,
			endPos.Line, endPos.Col)

		if leading := triviaNames(tok.Leading); len(leading) > 0 {
			fmt.Fprintf(w, " (leading: %s)", strings.Join(leading, ", "))
		}
		fmt.Fprintln(w)

		if tok.Kind == token.EOF {
			break
		}
	}
	return nil
}

// FormatTokensJSON выводит токены в JSON формате
func FormatTokensJSON(w io.Writer, tokens []token.Token) error {
	output := make([]TokenOutput, 0, len(tokens))
	for _, tok := range tokens {
		out := TokenOutput{
			Kind:    tok.Kind.String(),
			Text:    tok.Text,
			Span:    tok.Span,
			Newline: tok.NewlineBefore,
			Leading: triviaNames(tok.Leading),
		}
		switch tok.Kind {
		case token.Number:
			// JSON не умеет Inf/NaN, такие значения видны только в Text
			if n := tok.Number; !math.IsInf(n, 0) && !math.IsNaN(n) {
				out.Number = &n
			}
		case token.String, token.Invalid:
			out.Value = tok.Value
		}
		output = append(output, out)

		if tok.Kind == token.EOF {
			break
		}
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(output)
}

func triviaNames(trivia []token.Trivia) []string {
	if len(trivia) == 0 {
		return nil // Убираем пустые массивы из JSON
	}
	names := make([]string, len(trivia))
	for i, tr := range trivia {
		names[i] = tr.Kind.String()
	}
	return names
}
