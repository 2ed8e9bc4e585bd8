package parser

import (
	"github.com/ecmago/ecmaparse/internal/perrors"
	"github.com/ecmago/ecmaparse/pkg/ast"
	"github.com/ecmago/ecmaparse/pkg/token"
)

// parseBindingIdentifier parses an IdentifierReference-shaped token in
// binding position, rejecting reserved words and the contextually
// forbidden "yield"/"await" per ctx.
func (p *Parser) parseBindingIdentifier(ctx Context) (*ast.Ident, *perrors.Error) {
	cur := p.r.Current()
	if !isBindingIdentifierToken(cur.Type) {
		return nil, perrors.NewExpectedIdentifier(cur.Span, cur.Type.String())
	}
	if err := p.checkBindingName(ctx, cur); err != nil {
		return nil, err
	}
	p.r.Advance()
	return ast.NewIdent(cur.Span, identifierName(cur)), nil
}

func isBindingIdentifierToken(t token.Type) bool {
	return t == token.IDENT || t.IsContextualKeyword()
}

func identifierName(tok token.Token) string {
	if tok.Type == token.IDENT {
		return tok.Literal
	}
	return tok.Type.String()
}

// checkBindingName rejects names forbidden as bindings under ctx: the
// contextual keywords "yield" inside a generator, "await" inside an
// async function, and any strict-reserved word once Strict is set.
func (p *Parser) checkBindingName(ctx Context, tok token.Token) *perrors.Error {
	name := identifierName(tok)
	if tok.Type == token.YIELD && ctx.Yield {
		return perrors.NewForbiddenIdentifier(tok.Span, name)
	}
	if tok.Type == token.AWAIT && ctx.Await {
		return perrors.NewForbiddenIdentifier(tok.Span, name)
	}
	if ctx.Strict {
		switch tok.Type {
		case token.YIELD, token.LET, token.STATIC, token.IMPLEMENTS, token.INTERFACE,
			token.PACKAGE, token.PRIVATE, token.PROTECTED, token.PUBLIC:
			return perrors.NewForbiddenIdentifier(tok.Span, name)
		}
		if name == "eval" || name == "arguments" {
			return perrors.NewForbiddenIdentifier(tok.Span, name)
		}
	}
	return nil
}

// parseBindingTarget parses a BindingIdentifier, ArrayBindingPattern, or
// ObjectBindingPattern.
func (p *Parser) parseBindingTarget(ctx Context) (ast.Pattern, *perrors.Error) {
	switch {
	case p.at(token.LBRACKET):
		return p.parseArrayBindingPattern(ctx)
	case p.at(token.LBRACE):
		return p.parseObjectBindingPattern(ctx)
	default:
		return p.parseBindingIdentifier(ctx)
	}
}

// parseBindingTargetWithDefault wraps parseBindingTarget with an
// optional `= Initializer`, yielding an *ast.AssignmentPattern when
// present.
func (p *Parser) parseBindingTargetWithDefault(ctx Context) (ast.Pattern, *perrors.Error) {
	start := p.r.Current().Span
	target, err := p.parseBindingTarget(ctx)
	if err != nil {
		return nil, err
	}
	if !p.at(token.ASSIGN) {
		return target, nil
	}
	p.r.Advance()
	def, err := p.parseAssignmentExpr(ctx.WithIn(true))
	if err != nil {
		return nil, err
	}
	return ast.NewAssignmentPattern(p.spanFrom(start), target, def), nil
}

func (p *Parser) parseArrayBindingPattern(ctx Context) (*ast.ArrayPattern, *perrors.Error) {
	start := p.r.Current().Span
	p.r.Advance() // [
	var elements []ast.Pattern
	for !p.at(token.RBRACKET) {
		if p.at(token.COMMA) {
			elements = append(elements, nil)
			p.r.Advance()
			continue
		}
		if p.at(token.ELLIPSIS) {
			restStart := p.r.Current().Span
			p.r.Advance()
			arg, err := p.parseBindingTarget(ctx)
			if err != nil {
				return nil, err
			}
			elements = append(elements, ast.NewRestElement(p.spanFrom(restStart), arg))
			break
		}
		el, err := p.parseBindingTargetWithDefault(ctx)
		if err != nil {
			return nil, err
		}
		elements = append(elements, el)
		if p.at(token.COMMA) {
			p.r.Advance()
		} else {
			break
		}
	}
	if _, err := p.expectPunct(token.RBRACKET, "]"); err != nil {
		return nil, err
	}
	return ast.NewArrayPattern(p.spanFrom(start), elements), nil
}

func (p *Parser) parseObjectBindingPattern(ctx Context) (*ast.ObjectPattern, *perrors.Error) {
	start := p.r.Current().Span
	p.r.Advance() // {
	var props []ast.ObjectPatternProperty
	var rest *ast.Ident
	for !p.at(token.RBRACE) {
		if p.at(token.ELLIPSIS) {
			p.r.Advance()
			id, err := p.parseBindingIdentifier(ctx)
			if err != nil {
				return nil, err
			}
			rest = id
			break
		}
		prop, err := p.parseObjectBindingProperty(ctx)
		if err != nil {
			return nil, err
		}
		props = append(props, prop)
		if p.at(token.COMMA) {
			p.r.Advance()
		} else {
			break
		}
	}
	if _, err := p.expectPunct(token.RBRACE, "}"); err != nil {
		return nil, err
	}
	return ast.NewObjectPattern(p.spanFrom(start), props, rest), nil
}

func (p *Parser) parseObjectBindingProperty(ctx Context) (ast.ObjectPatternProperty, *perrors.Error) {
	key, computed, err := p.parsePropertyKey(ctx)
	if err != nil {
		return ast.ObjectPatternProperty{}, err
	}
	if p.at(token.COLON) {
		p.r.Advance()
		value, err := p.parseBindingTargetWithDefault(ctx)
		if err != nil {
			return ast.ObjectPatternProperty{}, err
		}
		return ast.ObjectPatternProperty{Key: key, Computed: computed, Value: value}, nil
	}
	// Shorthand: key must itself be a usable binding identifier.
	id, ok := key.(*ast.Ident)
	if !ok {
		return ast.ObjectPatternProperty{}, perrors.NewExpectedIdentifier(key.Span(), "")
	}
	var value ast.Pattern = id
	if p.at(token.ASSIGN) {
		p.r.Advance()
		def, err := p.parseAssignmentExpr(ctx.WithIn(true))
		if err != nil {
			return ast.ObjectPatternProperty{}, err
		}
		value = ast.NewAssignmentPattern(id.Span(), id, def)
	}
	return ast.ObjectPatternProperty{Key: id, Computed: false, Value: value, Shorthand: true}, nil
}

// parsePropertyKey parses a PropertyName: an identifier name, a string
// or numeric literal, or a computed `[Expr]` key.
func (p *Parser) parsePropertyKey(ctx Context) (ast.Expr, bool, *perrors.Error) {
	switch {
	case p.at(token.LBRACKET):
		p.r.Advance()
		expr, err := p.parseAssignmentExpr(ctx.WithIn(true))
		if err != nil {
			return nil, false, err
		}
		if _, err := p.expectPunct(token.RBRACKET, "]"); err != nil {
			return nil, false, err
		}
		return expr, true, nil
	case p.at(token.STRING), p.at(token.NUMBER):
		return p.parsePrimaryLiteral()
	case p.at(token.HASH):
		return p.parsePrivateName()
	default:
		cur := p.r.Current()
		if cur.Type != token.IDENT && !cur.Type.IsKeyword() && !cur.Type.IsContextualKeyword() && !cur.Type.IsStrictReserved() {
			return nil, false, perrors.NewExpectedIdentifier(cur.Span, cur.Type.String())
		}
		p.r.Advance()
		return ast.NewIdent(cur.Span, identifierName(cur)), false, nil
	}
}

func (p *Parser) parsePrivateName() (ast.Expr, bool, *perrors.Error) {
	start := p.r.Current().Span
	p.r.Advance() // #
	name, err := p.expect(token.IDENT)
	if err != nil {
		return nil, false, err
	}
	return ast.NewPrivateName(p.spanFrom(start), name.Literal), false, nil
}
