package parser

import (
	"github.com/ecmago/ecmaparse/internal/perrors"
	"github.com/ecmago/ecmaparse/pkg/ast"
	"github.com/ecmago/ecmaparse/pkg/token"
)

// tokenAfterParenthesis scans forward from Current to the closing `)`
// matching the first `(` it encounters (Current itself, or a later
// token such as the "async" identifier preceding it), rewinds the
// reader back to where it started, and returns the token immediately
// following that `)` without consuming anything. This is the bounded
// lookahead the parenthesized/arrow and call/async-arrow-head cover
// grammars both resolve on, in a single reusable place.
func (p *Parser) tokenAfterParenthesis() (token.Token, *perrors.Error) {
	mark := p.r.MarkPosition()
	defer p.r.RewindTo(mark)

	depth := 0
	seenOpen := false
	for {
		tok := p.r.Consume()
		switch tok.Type {
		case token.LPAREN:
			depth++
			seenOpen = true
		case token.RPAREN:
			depth--
			if seenOpen && depth == 0 {
				return p.r.Current(), nil
			}
		case token.EOF:
			return token.Token{}, perrors.NewEndOfStream(tok.Span)
		}
	}
}

// parseCoverParenthesizedAndArrowParameters resolves the
// CoverParenthesizedExpressionAndArrowParameterList production: a `(`
// either opens an arrow function's parameter list or a parenthesized
// expression, decided by what token follows its matching `)`.
func (p *Parser) parseCoverParenthesizedAndArrowParameters(ctx Context) (ast.Expr, *perrors.Error) {
	after, err := p.tokenAfterParenthesis()
	if err != nil {
		return nil, err
	}
	if after.Is(token.ARROW) && !after.FirstOnLine {
		start := p.r.Current().Span
		params, err := p.parseFormalParameters(ctx.WithAwait(false).WithYield(false))
		if err != nil {
			return nil, err
		}
		if _, err := p.expectPunct(token.ARROW, "=>"); err != nil {
			return nil, err
		}
		return p.parseArrowFunctionBody(ctx, start, params, false)
	}
	return p.parseParenthesizedExpr(ctx)
}

func (p *Parser) parseParenthesizedExpr(ctx Context) (ast.Expr, *perrors.Error) {
	start := p.r.Current().Span
	p.r.Advance() // (
	inner, err := p.parseExpression(ctx.WithIn(true))
	if err != nil {
		return nil, err
	}
	if _, err := p.expectPunct(token.RPAREN, ")"); err != nil {
		return nil, err
	}
	return ast.NewParenthesizedExpr(p.spanFrom(start), inner), nil
}
