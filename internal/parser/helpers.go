package parser

import (
	"fmt"

	"jsfront/internal/diag"
	"jsfront/internal/source"
	"jsfront/internal/token"
)

// advance — съедает следующий токен и обновляет lastSpan
func (p *Parser) advance() token.Token {
	tok := p.lx.Next()
	if tok.Kind != token.EOF {
		p.lastSpan = tok.Span
	}
	return tok
}

// peekAt looks n tokens past the current one on a silent clone.
func (p *Parser) peekAt(n int) token.Token {
	c := p.lx.Clone()
	var tok token.Token
	for i := 0; i < n+1; i++ {
		tok = c.Next()
	}
	return tok
}

// getDiagnosticSpan — возвращает лучший span для диагностики.
// At EOF the span points just past the last consumed token.
func (p *Parser) getDiagnosticSpan() source.Span {
	peek := p.lx.Peek()
	if peek.Kind == token.EOF && p.lastSpan.End > 0 {
		return p.lastSpan.ZeroideToEnd()
	}
	return peek.Span
}

// expect — ожидаем конкретный токен. Если нет — репортим и возвращаем (invalid,false).
// Optional hooks may decorate the diagnostic before it is emitted.
func (p *Parser) expect(k token.Kind, code diag.Code, msg string, hooks ...func(*diag.ReportBuilder)) (token.Token, bool) {
	if p.at(k) {
		return p.advance(), true
	}
	diagSpan := p.getDiagnosticSpan()
	p.emit(code, diag.SevError, diagSpan, msg, hooks...)
	return token.Token{Kind: token.Invalid, Span: diagSpan, Text: p.lx.Peek().Text}, false
}

// expectTok is expect with the standard "expected 'x'" message.
func (p *Parser) expectTok(k token.Kind, context string) (token.Token, bool) {
	if p.at(k) {
		return p.advance(), true
	}
	if p.at(token.EOF) {
		return p.expect(k, diag.SynUnexpectedEOF, fmt.Sprintf("expected '%s' %s, found end of input", k, context))
	}
	return p.expect(k, diag.SynExpectToken, fmt.Sprintf("expected '%s' %s, found %s", k, context, describe(p.lx.Peek())))
}

// errUnexpected reports the current token as unexpected; at EOF it uses
// SynUnexpectedEOF instead of code. Lexer error tokens are already reported.
func (p *Parser) errUnexpected(code diag.Code, msg string) bool {
	tok := p.lx.Peek()
	switch tok.Kind {
	case token.Invalid:
		return false
	case token.EOF:
		return p.report(diag.SynUnexpectedEOF, diag.SevError, p.getDiagnosticSpan(), msg+", found end of input")
	}
	return p.report(code, diag.SevError, tok.Span, fmt.Sprintf("%s, found %s", msg, describe(tok)))
}

func (p *Parser) report(code diag.Code, sev diag.Severity, sp source.Span, msg string) bool {
	return p.emit(code, sev, sp, msg)
}

// emit honours MaxErrors: once the limit is hit further diagnostics are
// dropped but parsing goes on.
func (p *Parser) emit(code diag.Code, sev diag.Severity, sp source.Span, msg string, hooks ...func(*diag.ReportBuilder)) bool {
	if p.opts.Reporter == nil {
		return false
	}
	if sev == diag.SevError {
		enough := p.opts.Enough()
		p.opts.CurrentErrors++
		if enough {
			return false
		}
	}
	b := diag.NewReportBuilder(p.opts.Reporter, sev, code, sp, msg)
	for _, h := range hooks {
		h(b)
	}
	b.Emit()
	return true
}

// resyncStatement — восстановление после ошибки: прокручиваем до ';'
// (съедаем), стартера инструкции, '}' или EOF.
func (p *Parser) resyncStatement() {
	for {
		tok := p.lx.Peek()
		switch {
		case tok.Kind == token.EOF, tok.Kind == token.RBrace:
			return
		case tok.Kind == token.Semicolon:
			p.advance()
			return
		case isStatementStarter(tok.Kind):
			return
		}
		p.advance()
	}
}

// isStatementStarter — токены, с которых начинается инструкция.
func isStatementStarter(k token.Kind) bool {
	switch k {
	case token.KwVar, token.KwLet, token.KwConst, token.KwFunction,
		token.KwReturn, token.KwIf, token.KwWhile, token.KwDo, token.KwFor,
		token.KwBreak, token.KwContinue, token.KwThrow, token.KwTry,
		token.KwSwitch, token.KwDebugger:
		return true
	default:
		return false
	}
}

// consumeSemicolon handles the statement terminator with automatic
// semicolon insertion: ';' is optional before '}', EOF or a line break.
func (p *Parser) consumeSemicolon(what string) (source.Span, bool) {
	tok := p.lx.Peek()
	switch {
	case tok.Kind == token.Semicolon:
		return p.advance().Span, true
	case tok.Kind == token.RBrace, tok.Kind == token.EOF, tok.NewlineBefore:
		return p.lastSpan, true
	}
	insert := p.lastSpan.ZeroideToEnd()
	p.expect(token.Semicolon, diag.SynExpectToken,
		fmt.Sprintf("expected ';' after %s, found %s", what, describe(tok)),
		func(b *diag.ReportBuilder) {
			b.WithNote(insert, "insert ';' here")
		})
	return p.lastSpan, false
}

// describe renders a token for messages: keywords and punctuation quoted,
// identifiers and literals with their text.
func describe(tok token.Token) string {
	switch tok.Kind {
	case token.EOF:
		return "end of input"
	case token.Ident:
		return fmt.Sprintf("identifier '%s'", tok.Text)
	case token.Number:
		return fmt.Sprintf("number '%s'", tok.Text)
	case token.String:
		return fmt.Sprintf("string %s", tok.Text)
	case token.Invalid:
		return "invalid token"
	}
	if tok.Kind.IsKeyword() {
		return fmt.Sprintf("keyword '%s'", tok.Text)
	}
	return fmt.Sprintf("'%s'", tok.Text)
}
