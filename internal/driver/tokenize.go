package driver

import (
	"context"

	"jsfront/internal/diag"
	"jsfront/internal/lexer"
	"jsfront/internal/source"
	"jsfront/internal/token"
	"jsfront/internal/trace"
)

type TokenizeResult struct {
	FileSet *source.FileSet
	File    *source.File
	Tokens  []token.Token
	Bag     *diag.Bag
}

// Tokenize loads path and lexes it to EOF. Leading trivia is kept on every
// token. The returned slice always ends with the EOF token.
func Tokenize(ctx context.Context, path string, maxDiagnostics int) (*TokenizeResult, error) {
	fs := source.NewFileSet()
	file, err := loadFile(ctx, fs, path)
	if err != nil {
		return nil, err
	}
	return tokenizeFile(ctx, fs, file, maxDiagnostics), nil
}

// TokenizeSource lexes in-memory text registered as a virtual file.
func TokenizeSource(ctx context.Context, name, text string, maxDiagnostics int) *TokenizeResult {
	fs := source.NewFileSet()
	file := fs.Get(fs.AddVirtual(name, []byte(text)))
	return tokenizeFile(ctx, fs, file, maxDiagnostics)
}

func tokenizeFile(ctx context.Context, fs *source.FileSet, file *source.File, maxDiagnostics int) *TokenizeResult {
	span, _ := trace.Start(ctx, trace.ScopeFile, "lex")
	span.WithExtra("file", file.Path)

	bag := diag.NewBag(maxDiagnostics)
	lx := lexer.New(file, lexer.Options{
		Reporter:   diag.BagReporter{Bag: bag},
		KeepTrivia: true,
	})

	// Токенизация: собираем все токены до EOF
	var tokens []token.Token
	for {
		tok := lx.Next()
		tokens = append(tokens, tok)
		if tok.Kind == token.EOF {
			break
		}
	}
	span.WithExtra("tokens", itoa(len(tokens)))
	span.End("")

	return &TokenizeResult{
		FileSet: fs,
		File:    file,
		Tokens:  tokens,
		Bag:     bag,
	}
}

func loadFile(ctx context.Context, fs *source.FileSet, path string) (*source.File, error) {
	span, _ := trace.Start(ctx, trace.ScopeFile, "load")
	defer span.End(path)

	fileID, err := fs.Load(path)
	if err != nil {
		return nil, err
	}
	return fs.Get(fileID), nil
}
