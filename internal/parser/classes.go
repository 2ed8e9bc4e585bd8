package parser

import (
	"github.com/ecmago/ecmaparse/internal/perrors"
	"github.com/ecmago/ecmaparse/pkg/ast"
	"github.com/ecmago/ecmaparse/pkg/token"
)

// parseClassDecl parses a class declaration; Current is "class".
func (p *Parser) parseClassDecl(ctx Context) (*ast.ClassDecl, *perrors.Error) {
	start := p.r.Current().Span
	p.r.Advance() // class
	id, err := p.parseBindingIdentifier(ctx.WithStrict(true))
	if err != nil {
		return nil, err
	}
	super, body, err := p.parseClassTail(ctx)
	if err != nil {
		return nil, err
	}
	return ast.NewClassDecl(p.spanFrom(start), id, super, body), nil
}

// parseClassExpr parses a class expression; the class name is optional.
func (p *Parser) parseClassExpr(ctx Context) (*ast.ClassExpr, *perrors.Error) {
	start := p.r.Current().Span
	p.r.Advance() // class
	classCtx := ctx.WithStrict(true)
	var id *ast.Ident
	if !p.at(token.EXTENDS) && !p.at(token.LBRACE) {
		var err *perrors.Error
		id, err = p.parseBindingIdentifier(classCtx)
		if err != nil {
			return nil, err
		}
	}
	super, body, err := p.parseClassTail(ctx)
	if err != nil {
		return nil, err
	}
	return ast.NewClassExpr(p.spanFrom(start), id, super, body), nil
}

func (p *Parser) parseClassTail(ctx Context) (ast.Expr, []*ast.ClassMember, *perrors.Error) {
	classCtx := ctx.WithStrict(true)
	var super ast.Expr
	if p.at(token.EXTENDS) {
		p.r.Advance()
		var err *perrors.Error
		super, err = p.parseLeftHandSideExpr(classCtx)
		if err != nil {
			return nil, nil, err
		}
	}
	body, err := p.parseClassBody(classCtx)
	if err != nil {
		return nil, nil, err
	}
	return super, body, nil
}

func (p *Parser) parseClassBody(ctx Context) ([]*ast.ClassMember, *perrors.Error) {
	if _, err := p.expectPunct(token.LBRACE, "{"); err != nil {
		return nil, err
	}
	var members []*ast.ClassMember
	for !p.at(token.RBRACE) {
		if p.at(token.SEMICOLON) {
			p.r.Advance()
			continue
		}
		member, err := p.parseClassMember(ctx)
		if err != nil {
			return nil, err
		}
		members = append(members, member)
	}
	if _, err := p.expectPunct(token.RBRACE, "}"); err != nil {
		return nil, err
	}
	return members, nil
}

func (p *Parser) parseClassMember(ctx Context) (*ast.ClassMember, *perrors.Error) {
	start := p.r.Current().Span

	static := false
	if p.at(token.STATIC) {
		next := p.r.Peek(1)
		if next.Is(token.LBRACE) {
			p.r.Advance()
			body, err := p.parseStaticBlockBody(ctx)
			if err != nil {
				return nil, err
			}
			m := ast.NewClassMember(p.spanFrom(start))
			m.Form = ast.MemberStaticBlock
			m.Static = true
			m.Body = body
			return m, nil
		}
		if !next.Is(token.LPAREN) && !next.Is(token.ASSIGN) && !next.Is(token.SEMICOLON) {
			static = true
			p.r.Advance()
		}
	}

	generator := false
	if p.at(token.STAR) {
		generator = true
		p.r.Advance()
	}
	async := false
	if p.at(token.ASYNC) {
		next := p.r.Peek(1)
		if !next.FirstOnLine && !next.Is(token.LPAREN) && !next.Is(token.ASSIGN) && !next.Is(token.SEMICOLON) {
			async = true
			p.r.Advance()
			if p.at(token.STAR) {
				generator = true
				p.r.Advance()
			}
		}
	}

	kind := ast.MethodOrdinary
	if !generator && !async && (p.at(token.GET) || p.at(token.SET)) {
		next := p.r.Peek(1)
		if !next.Is(token.LPAREN) && !next.Is(token.ASSIGN) && !next.Is(token.SEMICOLON) {
			if p.at(token.GET) {
				kind = ast.MethodGet
			} else {
				kind = ast.MethodSet
			}
			p.r.Advance()
		}
	}

	key, computed, err := p.parsePropertyKey(ctx)
	if err != nil {
		return nil, err
	}

	if p.at(token.LPAREN) {
		if !computed && !static && kind == ast.MethodOrdinary && isConstructorKey(key) {
			kind = ast.MethodConstructor
		}
		fn, err := p.parseMethodTail(ctx, start, generator, async)
		if err != nil {
			return nil, err
		}
		if kind == ast.MethodGet {
			if err := validateGetterArity(fn.Params); err != nil {
				return nil, err
			}
		} else if kind == ast.MethodSet {
			if err := validateSetterArity(fn.Params, fn.Span()); err != nil {
				return nil, err
			}
		}
		m := ast.NewClassMember(p.spanFrom(start))
		m.Key = key
		m.Computed = computed
		m.Static = static
		m.Form = ast.MemberMethod
		m.MethodKind = kind
		m.Function = fn
		return m, nil
	}

	// Field definition.
	var value ast.Expr
	if p.at(token.ASSIGN) {
		p.r.Advance()
		value, err = p.parseAssignmentExpr(ctx.WithIn(true))
		if err != nil {
			return nil, err
		}
	}
	if err := p.consumeSemicolon(); err != nil {
		return nil, err
	}
	m := ast.NewClassMember(p.spanFrom(start))
	m.Key = key
	m.Computed = computed
	m.Static = static
	m.Form = ast.MemberField
	m.Value = value
	return m, nil
}

func isConstructorKey(key ast.Expr) bool {
	id, ok := key.(*ast.Ident)
	return ok && id.Name == "constructor"
}

func (p *Parser) parseStaticBlockBody(ctx Context) (ast.StmtList, *perrors.Error) {
	blockCtx := ctx.WithAwait(false).WithYield(false).WithIn(true)
	if _, err := p.expectPunct(token.LBRACE, "{"); err != nil {
		return ast.StmtList{}, err
	}
	body, err := p.parseStmtListUntil(blockCtx, token.RBRACE)
	if err != nil {
		return ast.StmtList{}, err
	}
	if _, err := p.expectPunct(token.RBRACE, "}"); err != nil {
		return ast.StmtList{}, err
	}
	return body, nil
}
