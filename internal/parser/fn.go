package parser

import (
	"fmt"

	"jsfront/internal/ast"
	"jsfront/internal/diag"
	"jsfront/internal/source"
	"jsfront/internal/token"
)

// parseFunction разбирает `function [*] [name] (params) { body }`.
// The caller has consumed 'async' if present; start is the span of the
// first token of the construct.
func (p *Parser) parseFunction(start source.Span, async, requireName bool) (ast.Function, source.Span, bool) {
	fn := ast.Function{Async: async}
	if _, ok := p.expectTok(token.KwFunction, "to start a function"); !ok {
		return fn, start, false
	}
	if p.at(token.Star) {
		p.advance()
		fn.Generator = true
	}

	switch {
	case isBindingIdent(p.lx.Peek().Kind):
		tok := p.advance()
		fn.Name = &ast.Ident{Loc: tok.Span, Name: tok.Text}
	case requireName:
		p.errUnexpected(diag.SynExpectIdentifier, "expected function name")
		return fn, start, false
	}

	params, ok := p.parseParams()
	if !ok {
		return fn, start, false
	}
	fn.Params = params

	body, ok := p.parseFunctionBody(async, fn.Generator)
	if !ok {
		return fn, start, false
	}
	fn.Body = body
	return fn, start.Cover(body.Loc), true
}

func (p *Parser) parseFunctionExpr(start source.Span, async bool) (ast.Expr, bool) {
	fn, sp, ok := p.parseFunction(start, async, false)
	if !ok {
		return nil, false
	}
	return &ast.FuncExpr{Loc: sp, Func: fn}, true
}

func (p *Parser) parseFunctionDecl() (ast.Stmt, bool) {
	start := p.lx.Peek().Span
	async := false
	if p.at(token.KwAsync) {
		p.advance()
		async = true
	}
	fn, sp, ok := p.parseFunction(start, async, true)
	if !ok {
		return nil, false
	}
	return &ast.FuncDecl{Loc: sp, Func: fn}, true
}

// parseMethod разбирает параметры и тело метода объекта; the key is
// already consumed.
func (p *Parser) parseMethod(keySpan source.Span, async, generator bool) (*ast.FuncExpr, bool) {
	params, ok := p.parseParams()
	if !ok {
		return nil, false
	}
	body, ok := p.parseFunctionBody(async, generator)
	if !ok {
		return nil, false
	}
	return &ast.FuncExpr{
		Loc:  keySpan.Cover(body.Loc),
		Func: ast.Function{Params: params, Body: body, Async: async, Generator: generator},
	}, true
}

// parseParams — '(' [param {, param}] [,] ')'. A rest parameter must be last.
func (p *Parser) parseParams() ([]*ast.Param, bool) {
	if _, ok := p.expectTok(token.LParen, "to start parameter list"); !ok {
		return nil, false
	}
	restore := p.allowIn()
	defer restore()

	var params []*ast.Param
	for !p.at(token.RParen) && !p.at(token.EOF) {
		param, ok := p.parseParam()
		if !ok {
			return nil, false
		}
		params = append(params, param)
		if param.Rest && !p.at(token.RParen) {
			p.errUnexpected(diag.SynExpectToken, "rest parameter must be last")
			return nil, false
		}
		if !p.at(token.RParen) {
			if _, ok := p.expectTok(token.Comma, "between parameters"); !ok {
				return nil, false
			}
		}
	}
	if _, ok := p.expectTok(token.RParen, "to close parameter list"); !ok {
		return nil, false
	}
	p.checkDuplicateParams(params)
	return params, true
}

func (p *Parser) parseParam() (*ast.Param, bool) {
	start := p.lx.Peek().Span
	rest := false
	if p.at(token.DotDotDot) {
		p.advance()
		rest = true
	}
	name, ok := p.parseBindingIdent("in parameter list")
	if !ok {
		return nil, false
	}
	param := &ast.Param{Loc: start.Cover(name.Loc), Name: name, Rest: rest}
	if !rest && p.at(token.Assign) {
		p.advance()
		def, ok := p.parseAssignExpr()
		if !ok {
			return nil, false
		}
		param.Default = def
		param.Loc = param.Loc.Cover(def.Span())
	}
	return param, true
}

// checkDuplicateParams reports every repeated name with a note pointing at
// the first declaration.
func (p *Parser) checkDuplicateParams(params []*ast.Param) {
	if len(params) < 2 {
		return
	}
	seen := make(map[string]*ast.Ident, len(params))
	for _, param := range params {
		first, dup := seen[param.Name.Name]
		if !dup {
			seen[param.Name.Name] = param.Name
			continue
		}
		p.emit(diag.SynDuplicateParameter, diag.SevError, param.Name.Loc,
			fmt.Sprintf("duplicate parameter name '%s'", param.Name.Name),
			func(b *diag.ReportBuilder) {
				b.WithNote(first.Loc, fmt.Sprintf("'%s' first declared here", first.Name))
			})
	}
}

// parseFunctionBody parses a block in a fresh function scope: loops and
// labels of the enclosing code are not visible inside.
func (p *Parser) parseFunctionBody(async, generator bool) (*ast.Block, bool) {
	saved := p.fn
	p.fn = funcScope{inFunction: true, async: async, generator: generator}
	defer func() { p.fn = saved }()
	defer p.allowIn()()
	return p.parseBlock()
}

func (p *Parser) parseBindingIdent(context string) (*ast.Ident, bool) {
	tok := p.lx.Peek()
	if isBindingIdent(tok.Kind) {
		p.advance()
		return &ast.Ident{Loc: tok.Span, Name: tok.Text}, true
	}
	p.errUnexpected(diag.SynExpectIdentifier, "expected identifier "+context)
	return nil, false
}
