package parser

import (
	"fmt"

	"jsfront/internal/ast"
	"jsfront/internal/diag"
	"jsfront/internal/token"
)

// parseStatement выбирает по первому токену нужный распознаватель инструкции.
func (p *Parser) parseStatement() (ast.Stmt, bool) {
	tok := p.lx.Peek()
	switch tok.Kind {
	case token.LBrace:
		return p.parseBlock()
	case token.Semicolon:
		p.advance()
		return &ast.Empty{Loc: tok.Span}, true
	case token.KwVar, token.KwLet, token.KwConst:
		return p.parseVarStatement()
	case token.KwFunction:
		return p.parseFunctionDecl()
	case token.KwAsync:
		if next := p.peekAt(1); next.Kind == token.KwFunction && !next.NewlineBefore {
			return p.parseFunctionDecl()
		}
		return p.parseExprStmt()
	case token.KwReturn:
		return p.parseReturnStmt()
	case token.KwIf:
		return p.parseIfStmt()
	case token.KwWhile:
		return p.parseWhileStmt()
	case token.KwDo:
		return p.parseDoWhileStmt()
	case token.KwFor:
		return p.parseForStmt()
	case token.KwBreak, token.KwContinue:
		return p.parseJumpStmt()
	case token.KwThrow:
		return p.parseThrowStmt()
	case token.KwTry:
		return p.parseTryStmt()
	case token.KwSwitch:
		return p.parseSwitchStmt()
	case token.KwDebugger:
		p.advance()
		end, ok := p.consumeSemicolon("'debugger'")
		if !ok {
			return nil, false
		}
		return &ast.Debugger{Loc: tok.Span.Cover(end)}, true
	case token.KwClass, token.KwImport, token.KwExport:
		p.report(diag.SynUnexpectedToken, diag.SevError, tok.Span,
			fmt.Sprintf("'%s' declarations are not supported", tok.Text))
		return nil, false
	}

	if isBindingIdent(tok.Kind) && p.peekAt(1).Kind == token.Colon {
		return p.parseLabeledStmt()
	}
	if !canStartExpression(tok.Kind) {
		p.errUnexpected(diag.SynExpectStatement, "expected statement")
		return nil, false
	}
	return p.parseExprStmt()
}

// parseBlock — '{' statements '}'
func (p *Parser) parseBlock() (*ast.Block, bool) {
	openTok, ok := p.expectTok(token.LBrace, "to open block")
	if !ok {
		return nil, false
	}

	body := p.parseStatementList(token.RBrace)

	code, msg := diag.SynExpectToken, "expected '}' to close block"
	if p.at(token.EOF) {
		code, msg = diag.SynUnexpectedEOF, "unexpected end of input: expected '}' to close block"
	}
	closeTok, ok := p.expect(token.RBrace, code, msg,
		func(b *diag.ReportBuilder) {
			b.WithNote(openTok.Span, "block opened here")
		})
	if !ok {
		return nil, false
	}
	return &ast.Block{Loc: openTok.Span.Cover(closeTok.Span), Body: body}, true
}

func (p *Parser) parseExprStmt() (ast.Stmt, bool) {
	expr, ok := p.parseExpr()
	if !ok {
		return nil, false
	}
	end, ok := p.consumeSemicolon("expression")
	if !ok {
		return nil, false
	}
	return &ast.ExprStmt{Loc: expr.Span().Cover(end), X: expr}, true
}

func (p *Parser) parseVarStatement() (ast.Stmt, bool) {
	decl, ok := p.parseVarDecl()
	if !ok {
		return nil, false
	}
	p.checkConstInit(decl)
	end, ok := p.consumeSemicolon(fmt.Sprintf("'%s' declaration", decl.DeclKind))
	if !ok {
		return nil, false
	}
	decl.Loc = decl.Loc.Cover(end)
	return decl, true
}

// parseVarDecl разбирает `var|let|const a [= init] {, b [= init]}` без ';'.
func (p *Parser) parseVarDecl() (*ast.VarDecl, bool) {
	kwTok := p.advance()
	decl := &ast.VarDecl{Loc: kwTok.Span, DeclKind: kwTok.Kind}

	for {
		name, ok := p.parseBindingIdent(fmt.Sprintf("after '%s'", kwTok.Text))
		if !ok {
			return nil, false
		}
		d := &ast.VarDeclarator{Loc: name.Loc, Name: name}
		if p.at(token.Assign) {
			p.advance()
			init, ok := p.parseAssignExpr()
			if !ok {
				return nil, false
			}
			d.Init = init
			d.Loc = d.Loc.Cover(init.Span())
		}
		decl.Decls = append(decl.Decls, d)
		decl.Loc = decl.Loc.Cover(d.Loc)

		if !p.at(token.Comma) {
			return decl, true
		}
		p.advance()
	}
}

// checkConstInit reports const declarators without an initializer. The
// declaration is kept.
func (p *Parser) checkConstInit(decl *ast.VarDecl) {
	if decl.DeclKind != token.KwConst {
		return
	}
	for _, d := range decl.Decls {
		if d.Init == nil {
			p.emit(diag.SynMissingInitializer, diag.SevError, d.Name.Loc,
				fmt.Sprintf("missing initializer in const declaration of '%s'", d.Name.Name),
				func(b *diag.ReportBuilder) {
					b.WithSuggestion(fmt.Sprintf("const %s = <value>;", d.Name.Name))
				})
		}
	}
}

func (p *Parser) parseLabeledStmt() (ast.Stmt, bool) {
	nameTok := p.advance()
	p.advance() // ':'
	name := &ast.Ident{Loc: nameTok.Span, Name: nameTok.Text}

	for _, l := range p.fn.labels {
		if l.name == name.Name {
			p.report(diag.SynUnexpectedToken, diag.SevError, name.Loc,
				fmt.Sprintf("label '%s' has already been declared", name.Name))
			break
		}
	}

	isLoop := p.atOr(token.KwWhile, token.KwDo, token.KwFor)
	p.fn.labels = append(p.fn.labels, label{name: name.Name, isLoop: isLoop})
	body, ok := p.parseStatement()
	p.fn.labels = p.fn.labels[:len(p.fn.labels)-1]
	if !ok {
		return nil, false
	}
	return &ast.Labeled{Loc: nameTok.Span.Cover(body.Span()), Label: name, Body: body}, true
}
