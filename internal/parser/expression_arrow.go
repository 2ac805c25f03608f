package parser

import (
	"jsfront/internal/ast"
	"jsfront/internal/source"
	"jsfront/internal/token"
)

// tryArrowFunction recognises the arrow forms x => …, (a, b) => …,
// async x => … and async (a) => …. matched is false when the input is not
// an arrow; nothing is consumed in that case.
func (p *Parser) tryArrowFunction() (expr ast.Expr, matched, ok bool) {
	tok := p.lx.Peek()
	async := false
	skip := 0

	if tok.Kind == token.KwAsync {
		next := p.peekAt(1)
		if next.NewlineBefore {
			return nil, false, false
		}
		switch {
		case isBindingIdent(next.Kind) && p.peekAt(2).Kind == token.FatArrow:
			async, skip = true, 1
		case next.Kind == token.LParen && p.parenArrowAhead(1):
			async, skip = true, 1
		default:
			return nil, false, false
		}
	} else {
		switch {
		case isBindingIdent(tok.Kind):
			if arrow := p.peekAt(1); arrow.Kind != token.FatArrow || arrow.NewlineBefore {
				return nil, false, false
			}
		case tok.Kind == token.LParen:
			if !p.parenArrowAhead(0) {
				return nil, false, false
			}
		default:
			return nil, false, false
		}
	}

	start := tok.Span
	if skip > 0 {
		p.advance() // async
	}

	var params []*ast.Param
	if p.at(token.LParen) {
		params, ok = p.parseParams()
		if !ok {
			return nil, true, false
		}
	} else {
		name := p.advance()
		id := &ast.Ident{Loc: name.Span, Name: name.Text}
		params = []*ast.Param{{Loc: name.Span, Name: id}}
	}

	if _, ok := p.expectTok(token.FatArrow, "in arrow function"); !ok {
		return nil, true, false
	}

	arrow, ok := p.parseArrowBody(start, params, async)
	return arrow, true, ok
}

func (p *Parser) parseArrowBody(start source.Span, params []*ast.Param, async bool) (ast.Expr, bool) {
	arrow := &ast.ArrowFunc{Params: params, Async: async}
	if p.at(token.LBrace) {
		body, ok := p.parseFunctionBody(async, false)
		if !ok {
			return nil, false
		}
		arrow.BlockBody = body
		arrow.Loc = start.Cover(body.Loc)
		return arrow, true
	}

	saved := p.fn
	p.fn = funcScope{inFunction: true, async: async}
	body, ok := p.parseAssignExpr()
	p.fn = saved
	if !ok {
		return nil, false
	}
	arrow.ExprBody = body
	arrow.Loc = start.Cover(body.Span())
	return arrow, true
}

// parenArrowAhead reports whether the '(' skip tokens ahead opens a
// balanced group directly followed by '=>' on the same line. The scan runs
// on a silent lexer clone and records the answer for every nested '(' too,
// so each group is scanned once per file.
func (p *Parser) parenArrowAhead(skip int) bool {
	open := p.peekAt(skip)
	if open.Kind != token.LParen {
		return false
	}
	if v, ok := p.arrowParens[open.Span.Start]; ok {
		return v
	}
	if p.arrowParens == nil {
		p.arrowParens = make(map[uint32]bool)
	}

	c := p.lx.Clone()
	for i := 0; i < skip+1; i++ {
		c.Next()
	}

	type frame struct {
		start uint32
		paren bool
	}
	stack := []frame{{start: open.Span.Start, paren: true}}
	closed, hasClosed := uint32(0), false
	for {
		tok := c.Next()
		if hasClosed {
			p.arrowParens[closed] = tok.Kind == token.FatArrow && !tok.NewlineBefore
			hasClosed = false
		}
		if len(stack) == 0 || tok.Kind == token.EOF {
			break
		}
		switch tok.Kind {
		case token.LParen:
			stack = append(stack, frame{start: tok.Span.Start, paren: true})
		case token.LBracket, token.LBrace:
			stack = append(stack, frame{})
		case token.RParen, token.RBracket, token.RBrace:
			top := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if top.paren {
				closed, hasClosed = top.start, true
			}
		}
	}
	// незакрытые группы
	for _, fr := range stack {
		if fr.paren {
			p.arrowParens[fr.start] = false
		}
	}
	return p.arrowParens[open.Span.Start]
}
