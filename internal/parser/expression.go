package parser

import (
	"fmt"

	"jsfront/internal/ast"
	"jsfront/internal/diag"
	"jsfront/internal/source"
	"jsfront/internal/token"
)

// parseExpr - главная точка входа для парсинга выражений: a, b, c
func (p *Parser) parseExpr() (ast.Expr, bool) {
	first, ok := p.parseAssignExpr()
	if !ok {
		return nil, false
	}
	if !p.at(token.Comma) {
		return first, true
	}

	exprs := []ast.Expr{first}
	for p.at(token.Comma) {
		p.advance()
		next, ok := p.parseAssignExpr()
		if !ok {
			return nil, false
		}
		exprs = append(exprs, next)
	}
	return &ast.Sequence{Loc: first.Span().Cover(exprs[len(exprs)-1].Span()), Exprs: exprs}, true
}

// parseAssignExpr handles arrows, yield and right-associative assignment.
func (p *Parser) parseAssignExpr() (ast.Expr, bool) {
	if arrow, matched, ok := p.tryArrowFunction(); matched {
		return arrow, ok
	}
	if p.at(token.KwYield) && p.fn.generator {
		return p.parseYieldExpr()
	}

	left, ok := p.parseConditionalExpr()
	if !ok {
		return nil, false
	}
	if !p.lx.Peek().IsAssignOp() {
		return left, true
	}

	opTok := p.advance()
	p.checkAssignTarget(left, "assignment")
	right, ok := p.parseAssignExpr()
	if !ok {
		return nil, false
	}
	return &ast.Assign{
		Loc:    left.Span().Cover(right.Span()),
		Op:     opTok.Kind,
		Target: left,
		Value:  right,
	}, true
}

// checkAssignTarget reports targets other than identifiers and member
// expressions. Parsing continues with the node as written.
func (p *Parser) checkAssignTarget(target ast.Expr, what string) {
	switch target.(type) {
	case *ast.Ident, *ast.Member:
		return
	}
	p.report(diag.SynInvalidAssignTarget, diag.SevError, target.Span(),
		fmt.Sprintf("invalid %s target: %s", what, target.Kind()))
}

func (p *Parser) parseYieldExpr() (ast.Expr, bool) {
	yieldTok := p.advance()
	y := &ast.Unary{Loc: yieldTok.Span, Op: token.KwYield}
	next := p.lx.Peek()
	if next.NewlineBefore {
		return y, true
	}
	if next.Kind == token.Star {
		p.advance()
		y.Delegate = true
	} else if !canStartExpression(next.Kind) {
		return y, true
	}
	arg, ok := p.parseAssignExpr()
	if !ok {
		return nil, false
	}
	y.Arg = arg
	y.Loc = y.Loc.Cover(arg.Span())
	return y, true
}

// parseConditionalExpr — test ? cons : alt
func (p *Parser) parseConditionalExpr() (ast.Expr, bool) {
	test, ok := p.parseBinaryExpr(1)
	if !ok {
		return nil, false
	}
	if !p.at(token.Question) {
		return test, true
	}
	p.advance()

	restore := p.allowIn()
	cons, ok := p.parseAssignExpr()
	restore()
	if !ok {
		return nil, false
	}
	if _, ok := p.expectTok(token.Colon, "in conditional expression"); !ok {
		return nil, false
	}
	alt, ok := p.parseAssignExpr()
	if !ok {
		return nil, false
	}
	return &ast.Conditional{Loc: test.Span().Cover(alt.Span()), Test: test, Cons: cons, Alt: alt}, true
}

// parseBinaryExpr реализует Pratt parsing для бинарных операторов
// minPrec - минимальный приоритет для текущего уровня
func (p *Parser) parseBinaryExpr(minPrec int) (ast.Expr, bool) {
	// -x ** 2 is ambiguous; ++x ** 2 and (-x) ** 2 are fine
	first := p.lx.Peek().Kind
	unaryLeft := isUnaryPrefix(first) && first != token.PlusPlus && first != token.MinusMinus

	left, ok := p.parseUnaryExpr()
	if !ok {
		return nil, false
	}

	for {
		tok := p.lx.Peek()
		prec, isRightAssoc := getBinaryOperatorPrec(tok.Kind)
		if prec < minPrec {
			break // приоритет слишком низкий
		}
		if tok.Kind == token.KwIn && p.noIn {
			break // for (x in y)
		}

		opTok := p.advance()
		if opTok.Kind == token.StarStar && unaryLeft {
			p.emit(diag.SynUnexpectedToken, diag.SevError, left.Span().Cover(opTok.Span),
				"unary operator used immediately before '**'",
				func(b *diag.ReportBuilder) { b.WithSuggestion("wrap the left operand in parentheses") })
		}
		unaryLeft = false
		nextMinPrec := prec + 1
		if isRightAssoc {
			nextMinPrec = prec
		}

		right, ok := p.parseBinaryExpr(nextMinPrec)
		if !ok {
			return nil, false
		}

		sp := left.Span().Cover(right.Span())
		if isLogicalOp(opTok.Kind) {
			left = &ast.Logical{Loc: sp, Op: opTok.Kind, Left: left, Right: right}
		} else {
			left = &ast.Binary{Loc: sp, Op: opTok.Kind, Left: left, Right: right}
		}
	}

	return left, true
}

// parseUnaryExpr обрабатывает унарные операторы (префиксы)
func (p *Parser) parseUnaryExpr() (ast.Expr, bool) {
	type prefixOp struct {
		op   token.Kind
		span source.Span
	}

	var prefixes []prefixOp
	for isUnaryPrefix(p.lx.Peek().Kind) {
		opTok := p.advance()
		prefixes = append(prefixes, prefixOp{op: opTok.Kind, span: opTok.Span})
	}

	expr, ok := p.parsePostfixExpr()
	if !ok {
		return nil, false
	}

	// Применяем префиксы справа налево
	for i := len(prefixes) - 1; i >= 0; i-- {
		sp := prefixes[i].span.Cover(expr.Span())
		switch prefixes[i].op {
		case token.PlusPlus, token.MinusMinus:
			p.checkAssignTarget(expr, "prefix operation")
			expr = &ast.Update{Loc: sp, Op: prefixes[i].op, Prefix: true, Arg: expr}
		default:
			expr = &ast.Unary{Loc: sp, Op: prefixes[i].op, Arg: expr}
		}
	}
	return expr, true
}

// parsePostfixExpr — x++ / x--; a line break before the operator ends the
// expression instead.
func (p *Parser) parsePostfixExpr() (ast.Expr, bool) {
	expr, ok := p.parseCallExpr()
	if !ok {
		return nil, false
	}
	tok := p.lx.Peek()
	if (tok.Kind == token.PlusPlus || tok.Kind == token.MinusMinus) && !tok.NewlineBefore {
		opTok := p.advance()
		p.checkAssignTarget(expr, "postfix operation")
		expr = &ast.Update{Loc: expr.Span().Cover(opTok.Span), Op: opTok.Kind, Arg: expr}
	}
	return expr, true
}

// parseCallExpr — primary или new, затем цепочка a.b, a?.b, a[b], a(b).
func (p *Parser) parseCallExpr() (ast.Expr, bool) {
	var expr ast.Expr
	var ok bool
	if p.at(token.KwNew) {
		expr, ok = p.parseNewExpr()
	} else {
		expr, ok = p.parsePrimaryExpr()
	}
	if !ok {
		return nil, false
	}
	return p.parseSuffixes(expr, true)
}

// parseNewExpr — new Callee(args); arguments are optional.
func (p *Parser) parseNewExpr() (ast.Expr, bool) {
	newTok := p.advance()

	var callee ast.Expr
	var ok bool
	if p.at(token.KwNew) {
		callee, ok = p.parseNewExpr()
	} else {
		callee, ok = p.parsePrimaryExpr()
		if ok {
			callee, ok = p.parseSuffixes(callee, false)
		}
	}
	if !ok {
		return nil, false
	}

	n := &ast.New{Loc: newTok.Span.Cover(callee.Span()), Callee: callee}
	if p.at(token.LParen) {
		args, closeSpan, ok := p.parseArguments()
		if !ok {
			return nil, false
		}
		n.Args = args
		n.Loc = n.Loc.Cover(closeSpan)
	}
	return n, true
}

// parseSuffixes обрабатывает постфиксные операторы доступа и вызова.
// allowCall=false stops before '(' so that new Foo.bar() binds the
// arguments to new.
func (p *Parser) parseSuffixes(expr ast.Expr, allowCall bool) (ast.Expr, bool) {
	for {
		switch p.lx.Peek().Kind {
		case token.Dot:
			p.advance()
			prop, ok := p.parsePropertyName()
			if !ok {
				return nil, false
			}
			expr = &ast.Member{Loc: expr.Span().Cover(prop.Loc), Object: expr, Property: prop}

		case token.QuestionDot:
			if !allowCall {
				return expr, true
			}
			p.advance()
			switch p.lx.Peek().Kind {
			case token.LParen:
				args, closeSpan, ok := p.parseArguments()
				if !ok {
					return nil, false
				}
				expr = &ast.Call{Loc: expr.Span().Cover(closeSpan), Callee: expr, Args: args, Optional: true}
			case token.LBracket:
				m, ok := p.parseComputedMember(expr)
				if !ok {
					return nil, false
				}
				m.Optional = true
				expr = m
			default:
				prop, ok := p.parsePropertyName()
				if !ok {
					return nil, false
				}
				expr = &ast.Member{Loc: expr.Span().Cover(prop.Loc), Object: expr, Property: prop, Optional: true}
			}

		case token.LBracket:
			m, ok := p.parseComputedMember(expr)
			if !ok {
				return nil, false
			}
			expr = m

		case token.LParen:
			if !allowCall {
				return expr, true
			}
			args, closeSpan, ok := p.parseArguments()
			if !ok {
				return nil, false
			}
			expr = &ast.Call{Loc: expr.Span().Cover(closeSpan), Callee: expr, Args: args}

		default:
			return expr, true
		}
	}
}

// parsePropertyName — имя после '.'; ключевые слова допустимы.
func (p *Parser) parsePropertyName() (*ast.Ident, bool) {
	tok := p.lx.Peek()
	if !tok.IsIdentName() {
		p.errUnexpected(diag.SynExpectIdentifier, "expected property name after '.'")
		return nil, false
	}
	p.advance()
	return &ast.Ident{Loc: tok.Span, Name: tok.Text}, true
}

func (p *Parser) parseComputedMember(object ast.Expr) (*ast.Member, bool) {
	p.advance() // '['
	defer p.allowIn()()
	prop, ok := p.parseExpr()
	if !ok {
		return nil, false
	}
	closeTok, ok := p.expectTok(token.RBracket, "to close computed member access")
	if !ok {
		return nil, false
	}
	return &ast.Member{
		Loc:      object.Span().Cover(closeTok.Span),
		Object:   object,
		Property: prop,
		Computed: true,
	}, true
}

// parseArguments — '(' [arg {, arg}] [,] ')'; returns the span of ')'.
func (p *Parser) parseArguments() ([]ast.Expr, source.Span, bool) {
	p.advance() // '('
	defer p.allowIn()()

	var args []ast.Expr
	for !p.at(token.RParen) && !p.at(token.EOF) {
		arg, ok := p.parseSpreadOrAssign()
		if !ok {
			return nil, source.Span{}, false
		}
		args = append(args, arg)
		if !p.at(token.RParen) {
			if _, ok := p.expectTok(token.Comma, "between arguments"); !ok {
				return nil, source.Span{}, false
			}
		}
	}
	closeTok, ok := p.expectTok(token.RParen, "to close argument list")
	if !ok {
		return nil, source.Span{}, false
	}
	return args, closeTok.Span, true
}

// parseSpreadOrAssign — ...expr или обычное выражение присваивания.
func (p *Parser) parseSpreadOrAssign() (ast.Expr, bool) {
	if !p.at(token.DotDotDot) {
		return p.parseAssignExpr()
	}
	dots := p.advance()
	arg, ok := p.parseAssignExpr()
	if !ok {
		return nil, false
	}
	return &ast.Spread{Loc: dots.Span.Cover(arg.Span()), Arg: arg}, true
}

// allowIn lifts the for-head restriction on 'in' until the returned func runs.
func (p *Parser) allowIn() func() {
	saved := p.noIn
	p.noIn = false
	return func() { p.noIn = saved }
}
