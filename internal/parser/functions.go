package parser

import (
	"github.com/ecmago/ecmaparse/internal/perrors"
	"github.com/ecmago/ecmaparse/pkg/ast"
	"github.com/ecmago/ecmaparse/pkg/token"
)

// parseFormalParameters parses `( FormalParameterList )`. ctx already
// carries the Await/Yield the parameter defaults must see.
func (p *Parser) parseFormalParameters(ctx Context) ([]*ast.Param, *perrors.Error) {
	if _, err := p.expectPunct(token.LPAREN, "("); err != nil {
		return nil, err
	}
	var params []*ast.Param
	for !p.at(token.RPAREN) {
		start := p.r.Current().Span
		if p.at(token.ELLIPSIS) {
			p.r.Advance()
			target, err := p.parseBindingTarget(ctx)
			if err != nil {
				return nil, err
			}
			params = append(params, ast.NewParam(p.spanFrom(start), target, nil, true))
			break
		}
		target, err := p.parseBindingTarget(ctx)
		if err != nil {
			return nil, err
		}
		var def ast.Expr
		if p.at(token.ASSIGN) {
			p.r.Advance()
			def, err = p.parseAssignmentExpr(ctx.WithIn(true))
			if err != nil {
				return nil, err
			}
		}
		params = append(params, ast.NewParam(p.spanFrom(start), target, def, false))
		if p.at(token.COMMA) {
			p.r.Advance()
		} else {
			break
		}
	}
	if _, err := p.expectPunct(token.RPAREN, ")"); err != nil {
		return nil, err
	}
	return params, nil
}

// parseFunctionBody parses `{ StatementList }`, deriving Strict from its
// own directive prologue combined with the enclosing ctx.
func (p *Parser) parseFunctionBody(ctx Context) (ast.FunctionBody, *perrors.Error) {
	if _, err := p.expectPunct(token.LBRACE, "{"); err != nil {
		return ast.FunctionBody{}, err
	}
	stmts, err := p.parseStmtListUntil(ctx.WithIn(true), token.RBRACE)
	if err != nil {
		return ast.FunctionBody{}, err
	}
	if _, err := p.expectPunct(token.RBRACE, "}"); err != nil {
		return ast.FunctionBody{}, err
	}
	return ast.FunctionBody{Stmts: stmts}, nil
}

// parseFunctionDecl parses a function/function*/async function/async
// function* declaration; Current is "function" on entry (async already
// consumed by the caller when async is true).
func (p *Parser) parseFunctionDecl(outerCtx Context, start token.Span, async bool) (*ast.FunctionDecl, *perrors.Error) {
	p.r.Advance() // function
	generator := false
	if p.at(token.STAR) {
		generator = true
		p.r.Advance()
	}
	id, err := p.parseBindingIdentifier(outerCtx)
	if err != nil {
		return nil, err
	}
	innerCtx := outerCtx.WithAwait(async).WithYield(generator).WithDefault(false)
	params, err := p.parseFormalParameters(innerCtx)
	if err != nil {
		return nil, err
	}
	body, err := p.parseFunctionBody(innerCtx)
	if err != nil {
		return nil, err
	}
	strict := innerCtx.Strict || body.Stmts.IsStrict()
	if err := validateParamList(params, strict || !isSimpleParameterList(params)); err != nil {
		return nil, err
	}
	return ast.NewFunctionDecl(p.spanFrom(start), id, params, body, generator, async), nil
}

// parseFunctionExpr parses a function expression; Current is "function"
// on entry. start covers any already-consumed leading "async" keyword.
func (p *Parser) parseFunctionExpr(outerCtx Context, start token.Span, async bool) (*ast.FunctionExpr, *perrors.Error) {
	p.r.Advance() // function
	generator := false
	if p.at(token.STAR) {
		generator = true
		p.r.Advance()
	}
	innerCtx := outerCtx.WithAwait(async).WithYield(generator).WithDefault(false)
	var id *ast.Ident
	if !p.at(token.LPAREN) {
		var err *perrors.Error
		id, err = p.parseBindingIdentifier(innerCtx)
		if err != nil {
			return nil, err
		}
	}
	params, err := p.parseFormalParameters(innerCtx)
	if err != nil {
		return nil, err
	}
	body, err := p.parseFunctionBody(innerCtx)
	if err != nil {
		return nil, err
	}
	strict := innerCtx.Strict || body.Stmts.IsStrict()
	if err := validateParamList(params, strict || !isSimpleParameterList(params)); err != nil {
		return nil, err
	}
	return ast.NewFunctionExpr(p.spanFrom(start), id, params, body, generator, async), nil
}

// parseCoverCallOrAsyncArrowHead resolves whether an `async (` head is a
// CallExpression on the identifier "async" or the parameter list of an
// async arrow function, per the bounded-lookahead cover grammar.
// asyncSpan covers the already-consumed "async" token.
func (p *Parser) parseCoverCallOrAsyncArrowHead(ctx Context, asyncSpan token.Span) (ast.Expr, *perrors.Error) {
	after, err := p.tokenAfterParenthesis()
	if err != nil {
		return nil, err
	}
	if after.Is(token.ARROW) && !after.FirstOnLine {
		params, err := p.parseFormalParameters(ctx.WithAwait(true).WithYield(false))
		if err != nil {
			return nil, err
		}
		if _, err := p.expectPunct(token.ARROW, "=>"); err != nil {
			return nil, err
		}
		return p.parseArrowFunctionBody(ctx.WithAwait(true).WithYield(false), asyncSpan, params, true)
	}
	asyncIdent := ast.NewIdent(asyncSpan, "async")
	return p.parseCallTail(ctx, asyncSpan, asyncIdent)
}
