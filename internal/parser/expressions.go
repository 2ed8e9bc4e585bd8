package parser

import (
	"github.com/ecmago/ecmaparse/internal/lexer"
	"github.com/ecmago/ecmaparse/internal/perrors"
	"github.com/ecmago/ecmaparse/pkg/ast"
	"github.com/ecmago/ecmaparse/pkg/token"
)

// parseExpression parses an Expression: one AssignmentExpression, or a
// comma-separated SequenceExpr of several.
func (p *Parser) parseExpression(ctx Context) (ast.Expr, *perrors.Error) {
	start := p.r.Current().Span
	first, err := p.parseAssignmentExpr(ctx)
	if err != nil {
		return nil, err
	}
	if !p.at(token.COMMA) {
		return first, nil
	}
	exprs := []ast.Expr{first}
	for p.at(token.COMMA) {
		p.r.Advance()
		next, err := p.parseAssignmentExpr(ctx)
		if err != nil {
			return nil, err
		}
		exprs = append(exprs, next)
	}
	return ast.NewSequenceExpr(p.spanFrom(start), exprs), nil
}

func (p *Parser) parseAssignmentExpr(ctx Context) (ast.Expr, *perrors.Error) {
	if ctx.Yield && p.at(token.YIELD) {
		return p.parseYieldExpr(ctx)
	}

	start := p.r.Current().Span
	left, err := p.parseConditionalExpr(ctx)
	if err != nil {
		return nil, err
	}
	if op, ok := assignmentOpFor(p.r.Current().Type); ok {
		p.r.Advance()
		right, err := p.parseAssignmentExpr(ctx)
		if err != nil {
			return nil, err
		}
		target, err := p.toAssignmentTarget(ctx, left, op)
		if err != nil {
			return nil, err
		}
		return ast.NewAssignmentExpr(p.spanFrom(start), op, target, right), nil
	}
	return left, nil
}

func assignmentOpFor(t token.Type) (ast.AssignmentOp, bool) {
	switch t {
	case token.ASSIGN:
		return ast.AssignOp, true
	case token.PLUS_ASSIGN:
		return ast.AssignAddOp, true
	case token.MINUS_ASSIGN:
		return ast.AssignSubOp, true
	case token.STAR_ASSIGN:
		return ast.AssignMulOp, true
	case token.SLASH_ASSIGN:
		return ast.AssignDivOp, true
	case token.PERCENT_ASSIGN:
		return ast.AssignModOp, true
	case token.STAR_STAR_ASSIGN:
		return ast.AssignExpOp, true
	case token.SHL_ASSIGN:
		return ast.AssignShlOp, true
	case token.SHR_ASSIGN:
		return ast.AssignShrOp, true
	case token.USHR_ASSIGN:
		return ast.AssignUShrOp, true
	case token.AMP_ASSIGN:
		return ast.AssignBitAndOp, true
	case token.PIPE_ASSIGN:
		return ast.AssignBitOrOp, true
	case token.CARET_ASSIGN:
		return ast.AssignBitXorOp, true
	case token.AMP_AMP_ASSIGN:
		return ast.AssignAndOp, true
	case token.PIPE_PIPE_ASSIGN:
		return ast.AssignOrOp, true
	case token.QUESTION_QUESTION_ASSIGN:
		return ast.AssignNullishOp, true
	default:
		return "", false
	}
}

// toAssignmentTarget checks an already-parsed expression as the left side
// of an assignment with operator op and returns it unchanged: compound
// operators need a simple target, while `=` also accepts an ArrayExpr or
// ObjectExpr. Array and object literals are not converted to pattern
// nodes, and their elements are not checked as assignment targets.
func (p *Parser) toAssignmentTarget(ctx Context, expr ast.Expr, op ast.AssignmentOp) (ast.Expr, *perrors.Error) {
	if op != ast.AssignOp {
		if err := validateSimpleAssignmentTarget(expr); err != nil {
			return nil, err
		}
		if err := validateStrictRestrictedTarget(ctx, expr); err != nil {
			return nil, err
		}
		return expr, nil
	}
	if err := validateAssignmentTarget(expr); err != nil {
		return nil, err
	}
	if err := validateStrictRestrictedTarget(ctx, expr); err != nil {
		return nil, err
	}
	return expr, nil
}

// validateSimpleAssignmentTarget is stricter than validateAssignmentTarget:
// compound assignment operators (`+=` and friends) never accept a
// destructuring pattern, only a simple reference.
func validateSimpleAssignmentTarget(expr ast.Expr) *perrors.Error {
	switch expr.(type) {
	case *ast.Ident, *ast.MemberExpr:
		return nil
	default:
		return perrors.NewSyntaxError(expr.Span(), "invalid assignment target")
	}
}

func (p *Parser) parseYieldExpr(ctx Context) (ast.Expr, *perrors.Error) {
	start := p.r.Current().Span
	p.r.Advance() // yield
	delegate := false
	if p.at(token.STAR) {
		delegate = true
		p.r.Advance()
	}
	cur := p.r.Current()
	var arg ast.Expr
	if !delegate && (cur.FirstOnLine || cur.Is(token.SEMICOLON) || cur.Is(token.RPAREN) ||
		cur.Is(token.RBRACE) || cur.Is(token.RBRACKET) || cur.Is(token.COMMA) || cur.Is(token.COLON) || cur.Is(token.EOF)) {
		return ast.NewYieldExpr(p.spanFrom(start), delegate, nil), nil
	}
	arg, err := p.parseAssignmentExpr(ctx)
	if err != nil {
		return nil, err
	}
	return ast.NewYieldExpr(p.spanFrom(start), delegate, arg), nil
}

func (p *Parser) parseConditionalExpr(ctx Context) (ast.Expr, *perrors.Error) {
	start := p.r.Current().Span
	test, err := p.parseNullishExpr(ctx)
	if err != nil {
		return nil, err
	}
	if !p.at(token.QUESTION) {
		return test, nil
	}
	p.r.Advance()
	cons, err := p.parseAssignmentExpr(ctx.WithIn(true))
	if err != nil {
		return nil, err
	}
	if _, err := p.expectPunct(token.COLON, ":"); err != nil {
		return nil, err
	}
	alt, err := p.parseAssignmentExpr(ctx)
	if err != nil {
		return nil, err
	}
	return ast.NewConditionalExpr(p.spanFrom(start), test, cons, alt), nil
}

func (p *Parser) parseNullishExpr(ctx Context) (ast.Expr, *perrors.Error) {
	return p.parseLogicalBinary(ctx, token.QUESTION_QUESTION, ast.LogicalNullish, p.parseLogicalOrExpr)
}

func (p *Parser) parseLogicalOrExpr(ctx Context) (ast.Expr, *perrors.Error) {
	return p.parseLogicalBinary(ctx, token.PIPE_PIPE, ast.LogicalOr, p.parseLogicalAndExpr)
}

func (p *Parser) parseLogicalAndExpr(ctx Context) (ast.Expr, *perrors.Error) {
	return p.parseLogicalBinary(ctx, token.AMP_AMP, ast.LogicalAnd, p.parseBitOrExpr)
}

func (p *Parser) parseLogicalBinary(ctx Context, tt token.Type, op ast.LogicalOp, next func(Context) (ast.Expr, *perrors.Error)) (ast.Expr, *perrors.Error) {
	start := p.r.Current().Span
	left, err := next(ctx)
	if err != nil {
		return nil, err
	}
	for p.at(tt) {
		p.r.Advance()
		right, err := next(ctx)
		if err != nil {
			return nil, err
		}
		left = ast.NewLogicalExpr(p.spanFrom(start), op, left, right)
	}
	return left, nil
}

func (p *Parser) parseBitOrExpr(ctx Context) (ast.Expr, *perrors.Error) {
	return p.parseBinary(ctx, []token.Type{token.PIPE}, p.parseBitXorExpr)
}

func (p *Parser) parseBitXorExpr(ctx Context) (ast.Expr, *perrors.Error) {
	return p.parseBinary(ctx, []token.Type{token.CARET}, p.parseBitAndExpr)
}

func (p *Parser) parseBitAndExpr(ctx Context) (ast.Expr, *perrors.Error) {
	return p.parseBinary(ctx, []token.Type{token.AMP}, p.parseEqualityExpr)
}

func (p *Parser) parseEqualityExpr(ctx Context) (ast.Expr, *perrors.Error) {
	return p.parseBinary(ctx, []token.Type{token.EQ, token.NOT_EQ, token.EQ_STRICT, token.NOT_EQ_STRICT}, p.parseRelationalExpr)
}

func (p *Parser) parseRelationalExpr(ctx Context) (ast.Expr, *perrors.Error) {
	types := []token.Type{token.LT, token.LT_EQ, token.GT, token.GT_EQ, token.INSTANCEOF}
	if ctx.In {
		types = append(types, token.IN)
	}
	return p.parseBinary(ctx, types, p.parseShiftExpr)
}

func (p *Parser) parseShiftExpr(ctx Context) (ast.Expr, *perrors.Error) {
	return p.parseBinary(ctx, []token.Type{token.SHL, token.SHR, token.USHR}, p.parseAdditiveExpr)
}

func (p *Parser) parseAdditiveExpr(ctx Context) (ast.Expr, *perrors.Error) {
	return p.parseBinary(ctx, []token.Type{token.PLUS, token.MINUS}, p.parseMultiplicativeExpr)
}

func (p *Parser) parseMultiplicativeExpr(ctx Context) (ast.Expr, *perrors.Error) {
	return p.parseBinary(ctx, []token.Type{token.STAR, token.SLASH, token.PERCENT}, p.parseExponentExpr)
}

// parseExponentExpr is right-associative and forbids an unparenthesized
// unary expression as its left operand (`-a ** b` is a syntax error), so
// it is layered directly on parseUnaryExpr rather than through
// parseBinary's left-associative loop.
func (p *Parser) parseExponentExpr(ctx Context) (ast.Expr, *perrors.Error) {
	start := p.r.Current().Span
	left, err := p.parseUnaryExpr(ctx)
	if err != nil {
		return nil, err
	}
	if !p.at(token.STAR_STAR) {
		return left, nil
	}
	if _, isUnary := left.(*ast.UnaryExpr); isUnary {
		return nil, perrors.NewSyntaxError(left.Span(), "unary expression cannot be the left operand of '**'")
	}
	p.r.Advance()
	right, err := p.parseExponentExpr(ctx)
	if err != nil {
		return nil, err
	}
	return ast.NewBinaryExpr(p.spanFrom(start), ast.OpExp, left, right), nil
}

func (p *Parser) parseBinary(ctx Context, types []token.Type, next func(Context) (ast.Expr, *perrors.Error)) (ast.Expr, *perrors.Error) {
	start := p.r.Current().Span
	left, err := next(ctx)
	if err != nil {
		return nil, err
	}
	for {
		op, ok := binaryOpFor(p.r.Current().Type, types)
		if !ok {
			return left, nil
		}
		p.r.Advance()
		right, err := next(ctx)
		if err != nil {
			return nil, err
		}
		left = ast.NewBinaryExpr(p.spanFrom(start), op, left, right)
	}
}

func binaryOpFor(t token.Type, allowed []token.Type) (ast.BinaryOp, bool) {
	found := false
	for _, a := range allowed {
		if a == t {
			found = true
			break
		}
	}
	if !found {
		return "", false
	}
	switch t {
	case token.PIPE:
		return ast.OpBitOr, true
	case token.CARET:
		return ast.OpBitXor, true
	case token.AMP:
		return ast.OpBitAnd, true
	case token.EQ:
		return ast.OpEq, true
	case token.NOT_EQ:
		return ast.OpNotEq, true
	case token.EQ_STRICT:
		return ast.OpStrictEq, true
	case token.NOT_EQ_STRICT:
		return ast.OpStrictNeq, true
	case token.LT:
		return ast.OpLt, true
	case token.LT_EQ:
		return ast.OpLtEq, true
	case token.GT:
		return ast.OpGt, true
	case token.GT_EQ:
		return ast.OpGtEq, true
	case token.INSTANCEOF:
		return ast.OpInstanceof, true
	case token.IN:
		return ast.OpIn, true
	case token.SHL:
		return ast.OpShl, true
	case token.SHR:
		return ast.OpShr, true
	case token.USHR:
		return ast.OpUShr, true
	case token.PLUS:
		return ast.OpAdd, true
	case token.MINUS:
		return ast.OpSub, true
	case token.STAR:
		return ast.OpMul, true
	case token.SLASH:
		return ast.OpDiv, true
	case token.PERCENT:
		return ast.OpMod, true
	default:
		return "", false
	}
}

func (p *Parser) parseUnaryExpr(ctx Context) (ast.Expr, *perrors.Error) {
	start := p.r.Current().Span
	if ctx.Await && p.at(token.AWAIT) {
		p.r.Advance()
		arg, err := p.parseUnaryExpr(ctx)
		if err != nil {
			return nil, err
		}
		return ast.NewAwaitExpr(p.spanFrom(start), arg), nil
	}
	if op, ok := unaryOpFor(p.r.Current().Type); ok {
		p.r.Advance()
		arg, err := p.parseUnaryExpr(ctx)
		if err != nil {
			return nil, err
		}
		if op == ast.UnaryDelete {
			if derr := validateStrictDelete(ctx, arg); derr != nil {
				return nil, derr
			}
		}
		return ast.NewUnaryExpr(p.spanFrom(start), op, arg), nil
	}
	if p.at(token.PLUS_PLUS) || p.at(token.MINUS_MINUS) {
		inc := p.at(token.PLUS_PLUS)
		p.r.Advance()
		arg, err := p.parseUnaryExpr(ctx)
		if err != nil {
			return nil, err
		}
		if rerr := validateStrictRestrictedTarget(ctx, arg); rerr != nil {
			return nil, rerr
		}
		return ast.NewUpdateExpr(p.spanFrom(start), inc, true, arg), nil
	}
	return p.parsePostfixExpr(ctx)
}

func unaryOpFor(t token.Type) (ast.UnaryOp, bool) {
	switch t {
	case token.PLUS:
		return ast.UnaryPlus, true
	case token.MINUS:
		return ast.UnaryMinus, true
	case token.BANG:
		return ast.UnaryNot, true
	case token.TILDE:
		return ast.UnaryBitNot, true
	case token.TYPEOF:
		return ast.UnaryTypeof, true
	case token.VOID:
		return ast.UnaryVoid, true
	case token.DELETE:
		return ast.UnaryDelete, true
	default:
		return "", false
	}
}

func (p *Parser) parsePostfixExpr(ctx Context) (ast.Expr, *perrors.Error) {
	start := p.r.Current().Span
	expr, err := p.parseLeftHandSideExpr(ctx)
	if err != nil {
		return nil, err
	}
	cur := p.r.Current()
	if !cur.FirstOnLine && (cur.Is(token.PLUS_PLUS) || cur.Is(token.MINUS_MINUS)) {
		inc := cur.Is(token.PLUS_PLUS)
		if rerr := validateStrictRestrictedTarget(ctx, expr); rerr != nil {
			return nil, rerr
		}
		p.r.Advance()
		return ast.NewUpdateExpr(p.spanFrom(start), inc, false, expr), nil
	}
	return expr, nil
}

// parseLeftHandSideExpr parses NewExpression/CallExpression/
// OptionalExpression: a primary expression followed by any run of
// member accesses, calls, tagged templates, and optional-chain links.
func (p *Parser) parseLeftHandSideExpr(ctx Context) (ast.Expr, *perrors.Error) {
	start := p.r.Current().Span
	var expr ast.Expr
	var err *perrors.Error
	if p.at(token.NEW) {
		expr, err = p.parseNewExpr(ctx)
	} else {
		expr, err = p.parsePrimaryExpr(ctx)
	}
	if err != nil {
		return nil, err
	}
	return p.parseCallTail(ctx, start, expr)
}

func (p *Parser) parseNewExpr(ctx Context) (ast.Expr, *perrors.Error) {
	start := p.r.Current().Span
	p.r.Advance() // new
	if p.at(token.DOT) {
		p.r.Advance()
		prop, err := p.expect(token.TARGET)
		if err != nil {
			return nil, err
		}
		return ast.NewMetaProperty(p.spanFrom(start), "new", identifierName(prop)), nil
	}
	var callee ast.Expr
	var err *perrors.Error
	if p.at(token.NEW) {
		callee, err = p.parseNewExpr(ctx)
	} else {
		callee, err = p.parsePrimaryExpr(ctx)
	}
	if err != nil {
		return nil, err
	}
	callee, err = p.parseMemberTail(ctx, start, callee)
	if err != nil {
		return nil, err
	}
	var args []ast.Expr
	if p.at(token.LPAREN) {
		args, err = p.parseArguments(ctx)
		if err != nil {
			return nil, err
		}
	}
	return ast.NewNewExpr(p.spanFrom(start), callee, args), nil
}

// parseMemberTail consumes `.`/`[` / tagged-template links only (no
// calls), used while re-descending into a `new` callee.
func (p *Parser) parseMemberTail(ctx Context, start token.Span, expr ast.Expr) (ast.Expr, *perrors.Error) {
	for {
		switch {
		case p.at(token.DOT):
			p.r.Advance()
			prop, err := p.parsePropertyName()
			if err != nil {
				return nil, err
			}
			expr = ast.NewMemberExpr(p.spanFrom(start), expr, prop, false, false)
		case p.at(token.LBRACKET):
			p.r.Advance()
			idx, err := p.parseExpression(ctx.WithIn(true))
			if err != nil {
				return nil, err
			}
			if _, err := p.expectPunct(token.RBRACKET, "]"); err != nil {
				return nil, err
			}
			expr = ast.NewMemberExpr(p.spanFrom(start), expr, idx, true, false)
		case p.at(token.TEMPLATE) || p.at(token.TEMPLATE_HEAD):
			tmpl, err := p.parseTemplateLiteral(ctx)
			if err != nil {
				return nil, err
			}
			expr = ast.NewTaggedTemplate(p.spanFrom(start), expr, tmpl)
		default:
			return expr, nil
		}
	}
}

func (p *Parser) parseCallTail(ctx Context, start token.Span, expr ast.Expr) (ast.Expr, *perrors.Error) {
	for {
		cur := p.r.Current()
		switch {
		case cur.Is(token.DOT):
			p.r.Advance()
			prop, err := p.parsePropertyName()
			if err != nil {
				return nil, err
			}
			expr = ast.NewMemberExpr(p.spanFrom(start), expr, prop, false, false)
		case cur.Is(token.QUESTION_DOT):
			p.r.Advance()
			if p.at(token.LPAREN) {
				args, err := p.parseArguments(ctx)
				if err != nil {
					return nil, err
				}
				expr = ast.NewCallExpr(p.spanFrom(start), expr, args, true)
				continue
			}
			if p.at(token.LBRACKET) {
				p.r.Advance()
				idx, err := p.parseExpression(ctx.WithIn(true))
				if err != nil {
					return nil, err
				}
				if _, err := p.expectPunct(token.RBRACKET, "]"); err != nil {
					return nil, err
				}
				expr = ast.NewMemberExpr(p.spanFrom(start), expr, idx, true, true)
				continue
			}
			prop, err := p.parsePropertyName()
			if err != nil {
				return nil, err
			}
			expr = ast.NewMemberExpr(p.spanFrom(start), expr, prop, false, true)
		case cur.Is(token.LBRACKET):
			p.r.Advance()
			idx, err := p.parseExpression(ctx.WithIn(true))
			if err != nil {
				return nil, err
			}
			if _, err := p.expectPunct(token.RBRACKET, "]"); err != nil {
				return nil, err
			}
			expr = ast.NewMemberExpr(p.spanFrom(start), expr, idx, true, false)
		case cur.Is(token.LPAREN):
			args, err := p.parseArguments(ctx)
			if err != nil {
				return nil, err
			}
			expr = ast.NewCallExpr(p.spanFrom(start), expr, args, false)
		case cur.Is(token.TEMPLATE) || cur.Is(token.TEMPLATE_HEAD):
			tmpl, err := p.parseTemplateLiteral(ctx)
			if err != nil {
				return nil, err
			}
			expr = ast.NewTaggedTemplate(p.spanFrom(start), expr, tmpl)
		default:
			return expr, nil
		}
	}
}

// parsePropertyName parses the identifier or private name following `.`.
func (p *Parser) parsePropertyName() (ast.Expr, *perrors.Error) {
	if p.at(token.HASH) {
		expr, _, err := p.parsePrivateName()
		return expr, err
	}
	cur := p.r.Current()
	if cur.Type != token.IDENT && !cur.Type.IsKeyword() && !cur.Type.IsContextualKeyword() && !cur.Type.IsStrictReserved() {
		return nil, perrors.NewExpectedIdentifier(cur.Span, cur.Type.String())
	}
	p.r.Advance()
	return ast.NewIdent(cur.Span, identifierName(cur)), nil
}

func (p *Parser) parseArguments(ctx Context) ([]ast.Expr, *perrors.Error) {
	p.r.Advance() // (
	var args []ast.Expr
	for !p.at(token.RPAREN) {
		if p.at(token.ELLIPSIS) {
			start := p.r.Current().Span
			p.r.Advance()
			arg, err := p.parseAssignmentExpr(ctx.WithIn(true))
			if err != nil {
				return nil, err
			}
			args = append(args, ast.NewSpreadElement(p.spanFrom(start), arg))
		} else {
			arg, err := p.parseAssignmentExpr(ctx.WithIn(true))
			if err != nil {
				return nil, err
			}
			args = append(args, arg)
		}
		if p.at(token.COMMA) {
			p.r.Advance()
		} else {
			break
		}
	}
	if _, err := p.expectPunct(token.RPAREN, ")"); err != nil {
		return nil, err
	}
	return args, nil
}

func (p *Parser) parsePrimaryExpr(ctx Context) (ast.Expr, *perrors.Error) {
	cur := p.r.Current()
	if cur.Is(token.SLASH) || cur.Is(token.SLASH_ASSIGN) {
		// A primary expression can never start with a division operator,
		// so a `/` or `/=` reaching here is the start of a regex literal
		// (ECMA-262 12.9.1): re-lex the same position under
		// ModeRegexAllowed instead of leaving it tokenized as SLASH.
		if rerr := p.r.ReReadWithState(lexer.ModeRegexAllowed); rerr != nil {
			return nil, rerr
		}
		cur = p.r.Current()
	}
	switch {
	case cur.Is(token.THIS):
		p.r.Advance()
		return ast.NewThisExpr(cur.Span), nil
	case cur.Is(token.SUPER):
		p.r.Advance()
		return ast.NewSuperExpr(cur.Span), nil
	case cur.Is(token.NUMBER), cur.Is(token.STRING), cur.Is(token.TRUE), cur.Is(token.FALSE), cur.Is(token.NULL):
		if ctx.Strict && cur.LegacyOctal {
			return nil, perrors.NewSyntaxError(cur.Span, "legacy octal literals are not allowed in strict mode")
		}
		expr, _, err := p.parsePrimaryLiteral()
		return expr, err
	case cur.Is(token.REGEXP):
		p.r.Advance()
		lit := ast.NewLiteral(cur.Span)
		lit.Kind = ast.LiteralRegExp
		lit.RegexBody = cur.Literal
		lit.RegexFlags = cur.RegexFlags
		return lit, nil
	case cur.Is(token.TEMPLATE), cur.Is(token.TEMPLATE_HEAD):
		return p.parseTemplateLiteral(ctx)
	case cur.Is(token.LBRACKET):
		return p.parseArrayLiteral(ctx)
	case cur.Is(token.LBRACE):
		return p.parseObjectLiteral(ctx)
	case cur.Is(token.FUNCTION):
		return p.parseFunctionExpr(ctx, cur.Span, false)
	case cur.Is(token.CLASS):
		return p.parseClassExpr(ctx)
	case cur.Is(token.LPAREN):
		return p.parseCoverParenthesizedAndArrowParameters(ctx)
	case cur.Is(token.ASYNC):
		return p.parsePrimaryAsync(ctx)
	case cur.Is(token.IMPORT):
		return p.parseImportCallOrMeta(ctx)
	case isBindingIdentifierToken(cur.Type) && !cur.Is(token.ASYNC):
		next := p.r.Peek(1)
		if next.Type == token.ARROW && !next.FirstOnLine {
			return p.parseArrowFunctionSingleParam(ctx, false)
		}
		p.r.Advance()
		return ast.NewIdent(cur.Span, identifierName(cur)), nil
	default:
		return nil, perrors.NewUnexpectedToken(cur.Span, cur.Literal)
	}
}

func (p *Parser) parsePrimaryLiteral() (ast.Expr, bool, *perrors.Error) {
	cur := p.r.Current()
	lit := ast.NewLiteral(cur.Span)
	switch cur.Type {
	case token.NUMBER:
		lit.Kind = ast.LiteralNumber
		lit.Raw = cur.Literal
		lit.NumberBase = cur.NumberBase
		lit.LegacyOctal = cur.LegacyOctal
		lit.BigInt = cur.BigInt
	case token.STRING:
		lit.Kind = ast.LiteralString
		lit.StringValue = cur.StringValue
		lit.Delimiter = cur.Literal[0]
	case token.TRUE:
		lit.Kind = ast.LiteralBoolean
		lit.BoolValue = true
	case token.FALSE:
		lit.Kind = ast.LiteralBoolean
		lit.BoolValue = false
	case token.NULL:
		lit.Kind = ast.LiteralNull
	default:
		return nil, false, perrors.NewUnexpectedToken(cur.Span, cur.Literal)
	}
	p.r.Advance()
	return lit, false, nil
}

// parsePrimaryAsync disambiguates the four ways "async" can start a
// PrimaryExpression: a plain identifier reference, an async function
// expression, a single-parameter async arrow (`async x => x`), or the
// parenthesized-head async arrow resolved through the cover grammar.
func (p *Parser) parsePrimaryAsync(ctx Context) (ast.Expr, *perrors.Error) {
	cur := p.r.Current()
	next := p.r.Peek(1)
	if next.FirstOnLine {
		p.r.Advance()
		return ast.NewIdent(cur.Span, identifierName(cur)), nil
	}
	if next.Is(token.FUNCTION) {
		p.r.Advance()
		return p.parseFunctionExpr(ctx, cur.Span, true)
	}
	if isBindingIdentifierToken(next.Type) && p.r.Peek(2).Is(token.ARROW) && !p.r.Peek(2).FirstOnLine {
		p.r.Advance() // async
		return p.parseArrowFunctionSingleParam(ctx, true)
	}
	if next.Is(token.LPAREN) {
		p.r.Advance() // async
		return p.parseCoverCallOrAsyncArrowHead(ctx, cur.Span)
	}
	p.r.Advance()
	return ast.NewIdent(cur.Span, identifierName(cur)), nil
}

func (p *Parser) parseImportCallOrMeta(ctx Context) (ast.Expr, *perrors.Error) {
	start := p.r.Current().Span
	p.r.Advance() // import
	if p.at(token.DOT) {
		p.r.Advance()
		prop, err := p.expect(token.IDENT)
		if err != nil {
			return nil, err
		}
		return ast.NewMetaProperty(p.spanFrom(start), "import", prop.Literal), nil
	}
	args, err := p.parseArguments(ctx)
	if err != nil {
		return nil, err
	}
	return ast.NewCallExpr(p.spanFrom(start), ast.NewIdent(start, "import"), args, false), nil
}

func (p *Parser) parseArrayLiteral(ctx Context) (ast.Expr, *perrors.Error) {
	start := p.r.Current().Span
	p.r.Advance() // [
	var elements []ast.Expr
	for !p.at(token.RBRACKET) {
		if p.at(token.COMMA) {
			elements = append(elements, nil)
			p.r.Advance()
			continue
		}
		if p.at(token.ELLIPSIS) {
			elStart := p.r.Current().Span
			p.r.Advance()
			arg, err := p.parseAssignmentExpr(ctx.WithIn(true))
			if err != nil {
				return nil, err
			}
			elements = append(elements, ast.NewSpreadElement(p.spanFrom(elStart), arg))
		} else {
			el, err := p.parseAssignmentExpr(ctx.WithIn(true))
			if err != nil {
				return nil, err
			}
			elements = append(elements, el)
		}
		if p.at(token.COMMA) {
			p.r.Advance()
		} else {
			break
		}
	}
	if _, err := p.expectPunct(token.RBRACKET, "]"); err != nil {
		return nil, err
	}
	return ast.NewArrayExpr(p.spanFrom(start), elements), nil
}

func (p *Parser) parseObjectLiteral(ctx Context) (ast.Expr, *perrors.Error) {
	start := p.r.Current().Span
	p.r.Advance() // {
	var props []*ast.Property
	for !p.at(token.RBRACE) {
		prop, err := p.parseObjectLiteralProperty(ctx)
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
	return ast.NewObjectExpr(p.spanFrom(start), props), nil
}

func (p *Parser) parseObjectLiteralProperty(ctx Context) (*ast.Property, *perrors.Error) {
	start := p.r.Current().Span
	if p.at(token.ELLIPSIS) {
		p.r.Advance()
		arg, err := p.parseAssignmentExpr(ctx.WithIn(true))
		if err != nil {
			return nil, err
		}
		prop := ast.NewProperty(p.spanFrom(start))
		prop.Kind = ast.PropertySpread
		prop.Key = arg
		return prop, nil
	}

	generator := false
	if p.at(token.STAR) {
		generator = true
		p.r.Advance()
	}
	async := false
	if p.at(token.ASYNC) && !p.r.Peek(1).FirstOnLine && !p.r.Peek(1).Is(token.COLON) && !p.r.Peek(1).Is(token.LPAREN) && !p.r.Peek(1).Is(token.COMMA) && !p.r.Peek(1).Is(token.RBRACE) {
		async = true
		p.r.Advance()
		if p.at(token.STAR) {
			generator = true
			p.r.Advance()
		}
	}
	accessor := ast.PropertyInit
	if !generator && !async && (p.at(token.GET) || p.at(token.SET)) {
		next := p.r.Peek(1)
		if !next.Is(token.COLON) && !next.Is(token.LPAREN) && !next.Is(token.COMMA) && !next.Is(token.RBRACE) {
			if p.at(token.GET) {
				accessor = ast.PropertyGet
			} else {
				accessor = ast.PropertySet
			}
			p.r.Advance()
		}
	}

	key, computed, err := p.parsePropertyKey(ctx)
	if err != nil {
		return nil, err
	}

	prop := ast.NewProperty(p.spanFrom(start))
	prop.Key = key
	prop.Computed = computed

	if accessor != ast.PropertyInit {
		fn, err := p.parseMethodTail(ctx, start, false, false)
		if err != nil {
			return nil, err
		}
		if accessor == ast.PropertyGet {
			if err := validateGetterArity(fn.Params); err != nil {
				return nil, err
			}
		} else if err := validateSetterArity(fn.Params, fn.Span()); err != nil {
			return nil, err
		}
		prop.Kind = accessor
		prop.Value = fn
		return prop, nil
	}
	if p.at(token.LPAREN) {
		fn, err := p.parseMethodTail(ctx, start, generator, async)
		if err != nil {
			return nil, err
		}
		prop.Kind = ast.PropertyMethod
		prop.Value = fn
		return prop, nil
	}
	if p.at(token.COLON) {
		p.r.Advance()
		value, err := p.parseAssignmentExpr(ctx.WithIn(true))
		if err != nil {
			return nil, err
		}
		prop.Kind = ast.PropertyInit
		prop.Value = value
		return prop, nil
	}
	// Shorthand property, optionally with a CoverInitializedName default
	// (only legal inside a destructuring-assignment target).
	id, ok := key.(*ast.Ident)
	if !ok {
		return nil, perrors.NewExpectedIdentifier(key.Span(), "")
	}
	prop.Kind = ast.PropertyInit
	prop.Shorthand = true
	if p.at(token.ASSIGN) {
		p.r.Advance()
		def, err := p.parseAssignmentExpr(ctx.WithIn(true))
		if err != nil {
			return nil, err
		}
		prop.Value = ast.NewAssignmentPattern(id.Span(), id, def)
		return prop, nil
	}
	prop.Value = id
	return prop, nil
}

// parseMethodTail parses the parameter list and body of a method/getter/
// setter once its key has already been consumed.
func (p *Parser) parseMethodTail(outerCtx Context, start token.Span, generator, async bool) (*ast.FunctionExpr, *perrors.Error) {
	ctx := outerCtx.WithYield(generator).WithAwait(async)
	params, err := p.parseFormalParameters(ctx)
	if err != nil {
		return nil, err
	}
	body, err := p.parseFunctionBody(ctx)
	if err != nil {
		return nil, err
	}
	if err := validateParamList(params, true); err != nil {
		return nil, err
	}
	return ast.NewFunctionExpr(p.spanFrom(start), nil, params, body, generator, async), nil
}

func (p *Parser) parseTemplateLiteral(ctx Context) (*ast.TemplateLiteral, *perrors.Error) {
	start := p.r.Current().Span
	cur := p.r.Current()
	if cur.Is(token.TEMPLATE) {
		p.r.Advance()
		return ast.NewTemplateLiteral(p.spanFrom(start), []string{cur.StringValue}, []string{cur.Literal}, nil), nil
	}
	quasis := []string{cur.StringValue}
	raws := []string{cur.Literal}
	p.r.Advance()
	var exprs []ast.Expr
	for {
		expr, err := p.parseExpression(ctx.WithIn(true))
		if err != nil {
			return nil, err
		}
		exprs = append(exprs, expr)
		if !p.at(token.RBRACE) {
			return nil, perrors.NewExpectedOther(p.r.Current().Span, "}", p.r.Current().Type.String())
		}
		if rerr := p.r.ReReadWithState(lexer.ModeTemplateTail); rerr != nil {
			return nil, rerr
		}
		tail := p.r.Current()
		quasis = append(quasis, tail.StringValue)
		raws = append(raws, tail.Literal)
		p.r.Advance()
		if tail.Is(token.TEMPLATE_TAIL) {
			break
		}
	}
	return ast.NewTemplateLiteral(p.spanFrom(start), quasis, raws, exprs), nil
}

// parseArrowFunctionSingleParam parses `Ident => Body` / `async Ident =>
// Body`; Current is the parameter identifier on entry.
func (p *Parser) parseArrowFunctionSingleParam(ctx Context, async bool) (*ast.ArrowFunctionExpr, *perrors.Error) {
	start := p.r.Current().Span
	innerCtx := ctx.WithAwait(async).WithYield(false)
	id, err := p.parseBindingIdentifier(innerCtx)
	if err != nil {
		return nil, err
	}
	param := ast.NewParam(id.Span(), id, nil, false)
	if _, err := p.expectPunct(token.ARROW, "=>"); err != nil {
		return nil, err
	}
	return p.parseArrowFunctionBody(innerCtx, start, []*ast.Param{param}, async)
}

func (p *Parser) parseArrowFunctionBody(ctx Context, start token.Span, params []*ast.Param, async bool) (*ast.ArrowFunctionExpr, *perrors.Error) {
	if err := validateParamList(params, true); err != nil {
		return nil, err
	}
	if p.at(token.LBRACE) {
		body, err := p.parseFunctionBody(ctx)
		if err != nil {
			return nil, err
		}
		arrow := ast.NewArrowFunctionExpr(p.spanFrom(start), params, async)
		arrow.BlockBody = &body
		return arrow, nil
	}
	body, err := p.parseAssignmentExpr(ctx.WithIn(true))
	if err != nil {
		return nil, err
	}
	arrow := ast.NewArrowFunctionExpr(p.spanFrom(start), params, async)
	arrow.ExprBody = body
	return arrow, nil
}
