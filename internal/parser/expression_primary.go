package parser

import (
	"jsfront/internal/ast"
	"jsfront/internal/diag"
	"jsfront/internal/token"
)

// parsePrimaryExpr — литералы, идентификаторы, скобки, массивы, объекты, function.
func (p *Parser) parsePrimaryExpr() (ast.Expr, bool) {
	tok := p.lx.Peek()
	switch tok.Kind {
	case token.Number:
		p.advance()
		return &ast.NumberLit{Loc: tok.Span, Value: tok.Number, Raw: tok.Text}, true
	case token.String:
		p.advance()
		return &ast.StringLit{Loc: tok.Span, Value: tok.Value, Raw: tok.Text}, true
	case token.KwTrue, token.KwFalse:
		p.advance()
		return &ast.BoolLit{Loc: tok.Span, Value: tok.Kind == token.KwTrue}, true
	case token.KwNull:
		p.advance()
		return &ast.NullLit{Loc: tok.Span}, true
	case token.KwUndefined:
		p.advance()
		return &ast.UndefinedLit{Loc: tok.Span}, true
	case token.KwThis:
		p.advance()
		return &ast.This{Loc: tok.Span}, true

	case token.KwAsync:
		if next := p.peekAt(1); next.Kind == token.KwFunction && !next.NewlineBefore {
			asyncTok := p.advance()
			return p.parseFunctionExpr(asyncTok.Span, true)
		}
		p.advance()
		return &ast.Ident{Loc: tok.Span, Name: tok.Text}, true

	case token.Ident, token.KwOf, token.KwGet, token.KwSet, token.KwStatic:
		p.advance()
		return &ast.Ident{Loc: tok.Span, Name: tok.Text}, true

	case token.KwFunction:
		return p.parseFunctionExpr(tok.Span, false)

	case token.LParen:
		return p.parseParenExpr()
	case token.LBracket:
		return p.parseArrayLiteral()
	case token.LBrace:
		return p.parseObjectLiteral()

	case token.Invalid:
		// лексер уже сообщил об ошибке
		p.advance()
		return nil, false

	case token.KwClass, token.KwSuper, token.KwImport:
		p.report(diag.SynUnexpectedToken, diag.SevError, tok.Span, "'"+tok.Text+"' is not supported")
		return nil, false

	default:
		p.errUnexpected(diag.SynExpectExpression, "expected expression")
		return nil, false
	}
}

// parseParenExpr — ( expr ). The parentheses do not produce a node; the
// inner expression keeps its own span.
func (p *Parser) parseParenExpr() (ast.Expr, bool) {
	p.advance() // '('
	defer p.allowIn()()
	if p.at(token.RParen) {
		p.errUnexpected(diag.SynExpectExpression, "expected expression inside parentheses")
		return nil, false
	}
	expr, ok := p.parseExpr()
	if !ok {
		return nil, false
	}
	if _, ok := p.expectTok(token.RParen, "to close parenthesized expression"); !ok {
		return nil, false
	}
	return expr, true
}

// parseArrayLiteral — [a, , ...b]; elisions become *ast.Hole.
func (p *Parser) parseArrayLiteral() (ast.Expr, bool) {
	openTok := p.advance()
	defer p.allowIn()()

	arr := &ast.ArrayLit{}
	for !p.at(token.RBracket) && !p.at(token.EOF) {
		if p.at(token.Comma) {
			comma := p.advance()
			arr.Elements = append(arr.Elements, &ast.Hole{Loc: comma.Span.ZeroideToStart()})
			continue
		}
		el, ok := p.parseSpreadOrAssign()
		if !ok {
			return nil, false
		}
		arr.Elements = append(arr.Elements, el)
		if !p.at(token.RBracket) {
			if _, ok := p.expectTok(token.Comma, "between array elements"); !ok {
				return nil, false
			}
		}
	}
	closeTok, ok := p.expectTok(token.RBracket, "to close array literal")
	if !ok {
		return nil, false
	}
	arr.Loc = openTok.Span.Cover(closeTok.Span)
	return arr, true
}

// parseObjectLiteral — { key: v, short, [k]: v, m() {}, get x() {}, ...o }
func (p *Parser) parseObjectLiteral() (ast.Expr, bool) {
	openTok := p.advance()
	defer p.allowIn()()

	obj := &ast.ObjectLit{}
	for !p.at(token.RBrace) && !p.at(token.EOF) {
		member, ok := p.parseObjectMember()
		if !ok {
			return nil, false
		}
		obj.Properties = append(obj.Properties, member)
		if !p.at(token.RBrace) {
			if _, ok := p.expectTok(token.Comma, "between object properties"); !ok {
				return nil, false
			}
		}
	}
	closeTok, ok := p.expectTok(token.RBrace, "to close object literal")
	if !ok {
		return nil, false
	}
	obj.Loc = openTok.Span.Cover(closeTok.Span)
	return obj, true
}

func (p *Parser) parseObjectMember() (ast.ObjectMember, bool) {
	start := p.lx.Peek()
	if start.Kind == token.DotDotDot {
		p.advance()
		arg, ok := p.parseAssignExpr()
		if !ok {
			return nil, false
		}
		return &ast.Spread{Loc: start.Span.Cover(arg.Span()), Arg: arg}, true
	}

	prop := &ast.Property{Loc: start.Span}
	async, generator := false, false

	// get/set/async are modifiers only when a key follows
	next := p.peekAt(1)
	switch {
	case (start.Kind == token.KwGet || start.Kind == token.KwSet) && isPropertyKeyStart(next.Kind):
		p.advance()
		prop.PropKind = ast.PropGet
		if start.Kind == token.KwSet {
			prop.PropKind = ast.PropSet
		}
	case start.Kind == token.KwAsync && !next.NewlineBefore && (isPropertyKeyStart(next.Kind) || next.Kind == token.Star):
		p.advance()
		async = true
		prop.PropKind = ast.PropMethod
	}
	if p.at(token.Star) {
		p.advance()
		generator = true
		prop.PropKind = ast.PropMethod
	}

	keyTok := p.lx.Peek()
	key, computed, ok := p.parsePropertyKey()
	if !ok {
		return nil, false
	}
	prop.Key = key
	prop.Computed = computed

	switch {
	case prop.PropKind != ast.PropInit || p.at(token.LParen):
		if prop.PropKind == ast.PropInit {
			prop.PropKind = ast.PropMethod
		}
		fn, ok := p.parseMethod(key.Span(), async, generator)
		if !ok {
			return nil, false
		}
		prop.Value = fn
		prop.Loc = prop.Loc.Cover(fn.Loc)

	case p.at(token.Colon):
		p.advance()
		value, ok := p.parseAssignExpr()
		if !ok {
			return nil, false
		}
		prop.Value = value
		prop.Loc = prop.Loc.Cover(value.Span())

	case !computed && isBindingIdent(keyTok.Kind):
		prop.Shorthand = true
		prop.Value = &ast.Ident{Loc: keyTok.Span, Name: keyTok.Text}

	default:
		p.expectTok(token.Colon, "after property key")
		return nil, false
	}
	return prop, true
}

// parsePropertyKey — identifier name, string, number or [computed].
func (p *Parser) parsePropertyKey() (ast.Expr, bool, bool) {
	tok := p.lx.Peek()
	switch {
	case tok.Kind == token.String:
		p.advance()
		return &ast.StringLit{Loc: tok.Span, Value: tok.Value, Raw: tok.Text}, false, true
	case tok.Kind == token.Number:
		p.advance()
		return &ast.NumberLit{Loc: tok.Span, Value: tok.Number, Raw: tok.Text}, false, true
	case tok.Kind == token.LBracket:
		p.advance()
		key, ok := p.parseAssignExpr()
		if !ok {
			return nil, false, false
		}
		if _, ok := p.expectTok(token.RBracket, "to close computed property key"); !ok {
			return nil, false, false
		}
		return key, true, true
	case tok.IsIdentName():
		p.advance()
		return &ast.Ident{Loc: tok.Span, Name: tok.Text}, false, true
	default:
		p.errUnexpected(diag.SynExpectIdentifier, "expected property key")
		return nil, false, false
	}
}

func isPropertyKeyStart(k token.Kind) bool {
	switch k {
	case token.Ident, token.String, token.Number, token.LBracket:
		return true
	default:
		return k.IsKeyword()
	}
}
