package parser

import (
	"fmt"

	"jsfront/internal/ast"
	"jsfront/internal/diag"
	"jsfront/internal/source"
	"jsfront/internal/token"
)

func (p *Parser) parseReturnStmt() (ast.Stmt, bool) {
	retTok := p.advance()
	if !p.fn.inFunction {
		p.report(diag.SynIllegalReturn, diag.SevWarning, retTok.Span, "'return' outside of a function")
	}

	ret := &ast.Return{Loc: retTok.Span}
	next := p.lx.Peek()
	if next.Kind != token.Semicolon && next.Kind != token.RBrace && next.Kind != token.EOF && !next.NewlineBefore {
		arg, ok := p.parseExpr()
		if !ok {
			return nil, false
		}
		ret.Arg = arg
	}
	end, ok := p.consumeSemicolon("'return'")
	if !ok {
		return nil, false
	}
	ret.Loc = ret.Loc.Cover(end)
	return ret, true
}

// parseCondition — '(' expr ')' после if/while.
func (p *Parser) parseCondition(what string) (ast.Expr, bool) {
	if _, ok := p.expectTok(token.LParen, "after '"+what+"'"); !ok {
		return nil, false
	}
	restore := p.allowIn()
	test, ok := p.parseExpr()
	restore()
	if !ok {
		return nil, false
	}
	if _, ok := p.expectTok(token.RParen, "to close '"+what+"' condition"); !ok {
		return nil, false
	}
	return test, true
}

func (p *Parser) parseIfStmt() (ast.Stmt, bool) {
	ifTok := p.advance()
	test, ok := p.parseCondition("if")
	if !ok {
		return nil, false
	}
	cons, ok := p.parseStatement()
	if !ok {
		return nil, false
	}
	stmt := &ast.If{Loc: ifTok.Span.Cover(cons.Span()), Test: test, Cons: cons}
	if p.at(token.KwElse) {
		p.advance()
		alt, ok := p.parseStatement()
		if !ok {
			return nil, false
		}
		stmt.Alt = alt
		stmt.Loc = stmt.Loc.Cover(alt.Span())
	}
	return stmt, true
}

// parseLoopBody parses a loop body with break/continue enabled.
func (p *Parser) parseLoopBody() (ast.Stmt, bool) {
	p.fn.loops++
	defer func() { p.fn.loops-- }()
	return p.parseStatement()
}

func (p *Parser) parseWhileStmt() (ast.Stmt, bool) {
	whileTok := p.advance()
	test, ok := p.parseCondition("while")
	if !ok {
		return nil, false
	}
	body, ok := p.parseLoopBody()
	if !ok {
		return nil, false
	}
	return &ast.While{Loc: whileTok.Span.Cover(body.Span()), Test: test, Body: body}, true
}

func (p *Parser) parseDoWhileStmt() (ast.Stmt, bool) {
	doTok := p.advance()
	body, ok := p.parseLoopBody()
	if !ok {
		return nil, false
	}
	if _, ok := p.expectTok(token.KwWhile, "after do-while body"); !ok {
		return nil, false
	}
	test, ok := p.parseCondition("while")
	if !ok {
		return nil, false
	}
	sp := doTok.Span.Cover(p.lastSpan)
	// ';' after do-while is always optional
	if p.at(token.Semicolon) {
		sp = sp.Cover(p.advance().Span)
	}
	return &ast.DoWhile{Loc: sp, Body: body, Test: test}, true
}

// parseForStmt разбирает три формы: for(;;), for (x in o), for (x of it).
func (p *Parser) parseForStmt() (ast.Stmt, bool) {
	forTok := p.advance()
	if _, ok := p.expectTok(token.LParen, "after 'for'"); !ok {
		return nil, false
	}

	var init ast.Node
	if !p.at(token.Semicolon) {
		saved := p.noIn
		p.noIn = true
		if p.atOr(token.KwVar, token.KwLet, token.KwConst) {
			decl, ok := p.parseVarDecl()
			p.noIn = saved
			if !ok {
				return nil, false
			}
			init = decl
		} else {
			expr, ok := p.parseExpr()
			p.noIn = saved
			if !ok {
				return nil, false
			}
			init = expr
		}
	}

	if init != nil && p.atOr(token.KwIn, token.KwOf) {
		return p.parseForInOf(forTok.Span, init)
	}
	if decl, ok := init.(*ast.VarDecl); ok {
		p.checkConstInit(decl)
	}

	stmt := &ast.For{Init: init}
	if _, ok := p.expectTok(token.Semicolon, "after for-loop initializer"); !ok {
		return nil, false
	}
	if !p.at(token.Semicolon) {
		test, ok := p.parseExpr()
		if !ok {
			return nil, false
		}
		stmt.Test = test
	}
	if _, ok := p.expectTok(token.Semicolon, "after for-loop condition"); !ok {
		return nil, false
	}
	if !p.at(token.RParen) {
		update, ok := p.parseExpr()
		if !ok {
			return nil, false
		}
		stmt.Update = update
	}
	if _, ok := p.expectTok(token.RParen, "to close for-loop header"); !ok {
		return nil, false
	}

	body, ok := p.parseLoopBody()
	if !ok {
		return nil, false
	}
	stmt.Body = body
	stmt.Loc = forTok.Span.Cover(body.Span())
	return stmt, true
}

func (p *Parser) parseForInOf(start source.Span, left ast.Node) (ast.Stmt, bool) {
	opTok := p.advance() // in | of
	switch l := left.(type) {
	case *ast.VarDecl:
		if len(l.Decls) != 1 {
			p.report(diag.SynUnexpectedToken, diag.SevError, l.Loc,
				fmt.Sprintf("only one variable may be declared in a for-%s loop", opTok.Text))
		} else if l.Decls[0].Init != nil {
			p.report(diag.SynUnexpectedToken, diag.SevError, l.Decls[0].Init.Span(),
				fmt.Sprintf("for-%s loop variable cannot have an initializer", opTok.Text))
		}
	case ast.Expr:
		p.checkAssignTarget(l, "for-"+opTok.Text)
	}

	var right ast.Expr
	var ok bool
	if opTok.Kind == token.KwOf {
		right, ok = p.parseAssignExpr()
	} else {
		right, ok = p.parseExpr()
	}
	if !ok {
		return nil, false
	}
	if _, ok := p.expectTok(token.RParen, "to close for-"+opTok.Text+" header"); !ok {
		return nil, false
	}
	body, ok := p.parseLoopBody()
	if !ok {
		return nil, false
	}

	sp := start.Cover(body.Span())
	if opTok.Kind == token.KwOf {
		return &ast.ForOf{Loc: sp, Left: left, Right: right, Body: body}, true
	}
	return &ast.ForIn{Loc: sp, Left: left, Right: right, Body: body}, true
}

// parseJumpStmt — break/continue с необязательной меткой.
func (p *Parser) parseJumpStmt() (ast.Stmt, bool) {
	kwTok := p.advance()
	isBreak := kwTok.Kind == token.KwBreak

	var lbl *ast.Ident
	if next := p.lx.Peek(); isBindingIdent(next.Kind) && !next.NewlineBefore {
		p.advance()
		lbl = &ast.Ident{Loc: next.Span, Name: next.Text}
	}

	switch {
	case lbl != nil:
		target, found := p.findLabel(lbl.Name)
		switch {
		case !found:
			p.report(diag.SynIllegalBreak, diag.SevError, lbl.Loc, fmt.Sprintf("undefined label '%s'", lbl.Name))
		case !isBreak && !target.isLoop:
			p.report(diag.SynIllegalBreak, diag.SevError, lbl.Loc,
				fmt.Sprintf("continue target '%s' is not a loop", lbl.Name))
		}
	case isBreak && p.fn.loops == 0 && p.fn.switches == 0:
		p.report(diag.SynIllegalBreak, diag.SevError, kwTok.Span, "illegal 'break': not inside a loop or switch")
	case !isBreak && p.fn.loops == 0:
		p.report(diag.SynIllegalBreak, diag.SevError, kwTok.Span, "illegal 'continue': not inside a loop")
	}

	end, ok := p.consumeSemicolon("'" + kwTok.Text + "'")
	if !ok {
		return nil, false
	}
	sp := kwTok.Span.Cover(end)
	if isBreak {
		return &ast.Break{Loc: sp, Label: lbl}, true
	}
	return &ast.Continue{Loc: sp, Label: lbl}, true
}

func (p *Parser) findLabel(name string) (label, bool) {
	for i := len(p.fn.labels) - 1; i >= 0; i-- {
		if p.fn.labels[i].name == name {
			return p.fn.labels[i], true
		}
	}
	return label{}, false
}

func (p *Parser) parseThrowStmt() (ast.Stmt, bool) {
	throwTok := p.advance()
	if p.lx.Peek().NewlineBefore {
		p.report(diag.SynExpectExpression, diag.SevError, throwTok.Span.ZeroideToEnd(),
			"line break is not allowed between 'throw' and its expression")
		return nil, false
	}
	arg, ok := p.parseExpr()
	if !ok {
		return nil, false
	}
	end, ok := p.consumeSemicolon("'throw'")
	if !ok {
		return nil, false
	}
	return &ast.Throw{Loc: throwTok.Span.Cover(end), Arg: arg}, true
}

func (p *Parser) parseTryStmt() (ast.Stmt, bool) {
	tryTok := p.advance()
	block, ok := p.parseBlock()
	if !ok {
		return nil, false
	}
	stmt := &ast.Try{Loc: tryTok.Span.Cover(block.Loc), Block: block}

	if p.at(token.KwCatch) {
		catchTok := p.advance()
		clause := &ast.CatchClause{}
		if p.at(token.LParen) {
			p.advance()
			param, ok := p.parseBindingIdent("in catch clause")
			if !ok {
				return nil, false
			}
			clause.Param = param
			if _, ok := p.expectTok(token.RParen, "to close catch parameter"); !ok {
				return nil, false
			}
		}
		body, ok := p.parseBlock()
		if !ok {
			return nil, false
		}
		clause.Body = body
		clause.Loc = catchTok.Span.Cover(body.Loc)
		stmt.Handler = clause
		stmt.Loc = stmt.Loc.Cover(clause.Loc)
	}

	if p.at(token.KwFinally) {
		p.advance()
		fin, ok := p.parseBlock()
		if !ok {
			return nil, false
		}
		stmt.Finalizer = fin
		stmt.Loc = stmt.Loc.Cover(fin.Loc)
	}

	if stmt.Handler == nil && stmt.Finalizer == nil {
		p.errUnexpected(diag.SynExpectToken, "expected 'catch' or 'finally' after try block")
		return nil, false
	}
	return stmt, true
}

func (p *Parser) parseSwitchStmt() (ast.Stmt, bool) {
	switchTok := p.advance()
	disc, ok := p.parseCondition("switch")
	if !ok {
		return nil, false
	}
	if _, ok := p.expectTok(token.LBrace, "to open switch body"); !ok {
		return nil, false
	}

	p.fn.switches++
	defer func() { p.fn.switches-- }()

	stmt := &ast.Switch{Disc: disc}
	var defaultSpan source.Span
	hasDefault := false
	for !p.at(token.RBrace) && !p.at(token.EOF) {
		caseTok := p.lx.Peek()
		clause := &ast.SwitchCase{Loc: caseTok.Span}
		switch caseTok.Kind {
		case token.KwCase:
			p.advance()
			test, ok := p.parseExpr()
			if !ok {
				return nil, false
			}
			clause.Test = test
		case token.KwDefault:
			p.advance()
			if hasDefault {
				p.emit(diag.SynUnexpectedToken, diag.SevError, caseTok.Span,
					"more than one default clause in switch statement",
					func(b *diag.ReportBuilder) {
						b.WithNote(defaultSpan, "first default clause here")
					})
			}
			hasDefault, defaultSpan = true, caseTok.Span
		default:
			p.errUnexpected(diag.SynExpectToken, "expected 'case' or 'default'")
			return nil, false
		}
		colon, ok := p.expectTok(token.Colon, "after switch case")
		if !ok {
			return nil, false
		}
		clause.Loc = clause.Loc.Cover(colon.Span)
		clause.Body = p.parseStatementList(token.KwCase, token.KwDefault, token.RBrace)
		if n := len(clause.Body); n > 0 {
			clause.Loc = clause.Loc.Cover(clause.Body[n-1].Span())
		}
		stmt.Cases = append(stmt.Cases, clause)
	}

	closeTok, ok := p.expectTok(token.RBrace, "to close switch body")
	if !ok {
		return nil, false
	}
	stmt.Loc = switchTok.Span.Cover(closeTok.Span)
	return stmt, true
}
