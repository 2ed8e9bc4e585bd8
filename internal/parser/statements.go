package parser

import (
	"github.com/ecmago/ecmaparse/internal/perrors"
	"github.com/ecmago/ecmaparse/pkg/ast"
	"github.com/ecmago/ecmaparse/pkg/token"
)

// parseStmtListItem parses one StatementListItem: a Declaration
// (function/class/let/const) or a Statement.
func (p *Parser) parseStmtListItem(ctx Context) (ast.Stmt, *perrors.Error) {
	cur := p.r.Current()
	switch {
	case cur.Is(token.FUNCTION):
		return p.parseFunctionDecl(ctx, cur.Span, false)
	case cur.Is(token.ASYNC) && p.r.Peek(1).Is(token.FUNCTION) && !p.r.Peek(1).FirstOnLine:
		p.r.Advance()
		return p.parseFunctionDecl(ctx, cur.Span, true)
	case cur.Is(token.CLASS):
		return p.parseClassDecl(ctx)
	case cur.Is(token.CONST):
		return p.parseVariableDecl(ctx, ast.Const)
	case cur.Is(token.LET) && isLetDeclarationStart(p.r.Peek(1)):
		return p.parseVariableDecl(ctx, ast.Let)
	case cur.Is(token.IMPORT) && !p.r.Peek(1).Is(token.LPAREN) && !p.r.Peek(1).Is(token.DOT):
		return p.parseImportDecl(ctx)
	case cur.Is(token.EXPORT):
		return p.parseExportDecl(ctx)
	default:
		return p.parseStatement(ctx)
	}
}

// isLetDeclarationStart disambiguates "let" as a declaration keyword from
// "let" used as an ordinary identifier, e.g. `let[0] = 1` (a statement
// indexing into a variable named `let`) versus `let [a] = x` (a
// destructuring let-declaration). The rule is purely syntactic: `let`
// starts a declaration iff the next token could begin a BindingList.
func isLetDeclarationStart(next token.Token) bool {
	return next.Type == token.IDENT || next.Type.IsContextualKeyword() ||
		next.Is(token.LBRACKET) || next.Is(token.LBRACE)
}

func (p *Parser) parseStatement(ctx Context) (ast.Stmt, *perrors.Error) {
	cur := p.r.Current()
	switch {
	case cur.Is(token.LBRACE):
		return p.parseBlockStmt(ctx)
	case cur.Is(token.VAR):
		return p.parseVariableDecl(ctx, ast.Var)
	case cur.Is(token.SEMICOLON):
		p.r.Advance()
		return ast.NewEmptyStmt(cur.Span), nil
	case cur.Is(token.IF):
		return p.parseIfStmt(ctx)
	case cur.Is(token.FOR):
		return p.parseForStmt(ctx)
	case cur.Is(token.WHILE):
		return p.parseWhileStmt(ctx)
	case cur.Is(token.DO):
		return p.parseDoWhileStmt(ctx)
	case cur.Is(token.RETURN):
		return p.parseReturnStmt(ctx)
	case cur.Is(token.BREAK):
		return p.parseBreakStmt(ctx)
	case cur.Is(token.CONTINUE):
		return p.parseContinueStmt(ctx)
	case cur.Is(token.THROW):
		return p.parseThrowStmt(ctx)
	case cur.Is(token.TRY):
		return p.parseTryStmt(ctx)
	case cur.Is(token.SWITCH):
		return p.parseSwitchStmt(ctx)
	case cur.Is(token.WITH):
		return p.parseWithStmt(ctx)
	case cur.Is(token.DEBUGGER):
		p.r.Advance()
		if err := p.consumeSemicolon(); err != nil {
			return nil, err
		}
		return ast.NewDebuggerStmt(cur.Span), nil
	case (cur.Type == token.IDENT || cur.Type.IsContextualKeyword()) && p.r.Peek(1).Is(token.COLON):
		return p.parseLabeledStmt(ctx)
	default:
		return p.parseExprStmt(ctx)
	}
}

func (p *Parser) parseBlockStmt(ctx Context) (*ast.BlockStmt, *perrors.Error) {
	start := p.r.Current().Span
	p.r.Advance() // {
	body, err := p.parseStmtListUntil(ctx, token.RBRACE)
	if err != nil {
		return nil, err
	}
	if _, err := p.expectPunct(token.RBRACE, "}"); err != nil {
		return nil, err
	}
	return ast.NewBlockStmt(p.spanFrom(start), body), nil
}

func (p *Parser) parseExprStmt(ctx Context) (*ast.ExprStmt, *perrors.Error) {
	start := p.r.Current().Span
	expr, err := p.parseExpression(ctx.WithIn(true))
	if err != nil {
		return nil, err
	}
	if err := p.consumeSemicolon(); err != nil {
		return nil, err
	}
	return ast.NewExprStmt(p.spanFrom(start), expr), nil
}

func (p *Parser) parseVariableDecl(ctx Context, kind ast.VariableKind) (*ast.VariableDecl, *perrors.Error) {
	start := p.r.Current().Span
	p.r.Advance() // var/let/const
	decls, err := p.parseVariableDeclaratorList(ctx, kind)
	if err != nil {
		return nil, err
	}
	if err := p.consumeSemicolon(); err != nil {
		return nil, err
	}
	return ast.NewVariableDecl(p.spanFrom(start), kind, decls), nil
}

func (p *Parser) parseVariableDeclaratorList(ctx Context, kind ast.VariableKind) ([]*ast.VariableDeclarator, *perrors.Error) {
	var decls []*ast.VariableDeclarator
	seen := map[string]bool{}
	for {
		start := p.r.Current().Span
		binding, err := p.parseBindingTarget(ctx)
		if err != nil {
			return nil, err
		}
		var init ast.Expr
		if p.at(token.ASSIGN) {
			p.r.Advance()
			init, err = p.parseAssignmentExpr(ctx)
			if err != nil {
				return nil, err
			}
		} else if _, ok := binding.(*ast.Ident); !ok {
			return nil, perrors.NewSyntaxError(binding.Span(), "missing initializer in destructuring declaration")
		} else if kind == ast.Const {
			return nil, perrors.NewSyntaxError(binding.Span(), "missing initializer in const declaration")
		}
		if kind != ast.Var {
			if err := validatePattern(binding, seen); err != nil {
				return nil, err
			}
		}
		decls = append(decls, ast.NewVariableDeclarator(p.spanFrom(start), binding, init))
		if p.at(token.COMMA) {
			p.r.Advance()
			continue
		}
		break
	}
	return decls, nil
}

func (p *Parser) parseIfStmt(ctx Context) (*ast.IfStmt, *perrors.Error) {
	start := p.r.Current().Span
	p.r.Advance() // if
	if _, err := p.expectPunct(token.LPAREN, "("); err != nil {
		return nil, err
	}
	test, err := p.parseExpression(ctx.WithIn(true))
	if err != nil {
		return nil, err
	}
	if _, err := p.expectPunct(token.RPAREN, ")"); err != nil {
		return nil, err
	}
	cons, err := p.parseStatement(ctx)
	if err != nil {
		return nil, err
	}
	var alt ast.Stmt
	if p.at(token.ELSE) {
		p.r.Advance()
		alt, err = p.parseStatement(ctx)
		if err != nil {
			return nil, err
		}
	}
	return ast.NewIfStmt(p.spanFrom(start), test, cons, alt), nil
}

// parseForStmt speculatively attempts the ForInOfStatement production
// first and, on failure, rewinds to just after the opening `(` and
// reparses as the three-clause ForStatement. A
// for-loop head is short and bounded, so paying for a rewind here is
// cheap relative to threading a full LL(k) disambiguation through the
// grammar.
func (p *Parser) parseForStmt(ctx Context) (ast.Stmt, *perrors.Error) {
	start := p.r.Current().Span
	p.r.Advance() // for
	await := false
	if p.at(token.AWAIT) {
		await = true
		p.r.Advance()
	}
	if _, err := p.expectPunct(token.LPAREN, "("); err != nil {
		return nil, err
	}

	mark := p.r.MarkPosition()
	if stmt, err := p.tryParseForInOf(ctx, start, await); err == nil {
		return stmt, nil
	}
	p.r.RewindTo(mark)
	if await {
		return nil, perrors.NewSyntaxError(start, "for-await loops require a for-of head")
	}
	return p.parseForStmtTail(ctx, start)
}

// tryParseForInOf attempts the ForInOfStatement production starting
// right after the opening `(`.
func (p *Parser) tryParseForInOf(ctx Context, start token.Span, await bool) (ast.Stmt, *perrors.Error) {
	var target ast.ForTarget
	noInCtx := ctx.WithIn(false)

	switch {
	case p.at(token.VAR) || p.at(token.CONST) || (p.at(token.LET) && isLetDeclarationStart(p.r.Peek(1))):
		kind := ast.Var
		if p.at(token.CONST) {
			kind = ast.Const
		} else if p.at(token.LET) {
			kind = ast.Let
		}
		declStart := p.r.Current().Span
		p.r.Advance()
		binding, err := p.parseBindingTarget(noInCtx)
		if err != nil {
			return nil, err
		}
		decl := ast.NewVariableDecl(p.spanFrom(declStart), kind, []*ast.VariableDeclarator{
			ast.NewVariableDeclarator(binding.Span(), binding, nil),
		})
		target = ast.ForTarget{Decl: decl}
	default:
		expr, err := p.parseLeftHandSideExpr(noInCtx)
		if err != nil {
			return nil, err
		}
		pat, err := exprToAssignmentPattern(expr)
		if err != nil {
			return nil, err
		}
		target = ast.ForTarget{Pattern: pat}
	}

	switch {
	case p.at(token.IN):
		if await {
			return nil, perrors.NewSyntaxError(p.r.Current().Span, "for-await cannot be used with for-in")
		}
		p.r.Advance()
		right, err := p.parseExpression(ctx.WithIn(true))
		if err != nil {
			return nil, err
		}
		if _, err := p.expectPunct(token.RPAREN, ")"); err != nil {
			return nil, err
		}
		body, err := p.parseStatement(ctx)
		if err != nil {
			return nil, err
		}
		return ast.NewForInStmt(p.spanFrom(start), target, right, body), nil
	case p.at(token.OF):
		p.r.Advance()
		right, err := p.parseAssignmentExpr(ctx.WithAwait(await || ctx.Await).WithIn(true))
		if err != nil {
			return nil, err
		}
		if _, err := p.expectPunct(token.RPAREN, ")"); err != nil {
			return nil, err
		}
		body, err := p.parseStatement(ctx)
		if err != nil {
			return nil, err
		}
		return ast.NewForOfStmt(p.spanFrom(start), target, right, body, await), nil
	default:
		return nil, perrors.NewSyntaxError(p.r.Current().Span, "expected 'in' or 'of'")
	}
}

// parseForStmtTail parses the three-clause C-style for head, assuming
// the opening `(` has already been consumed.
func (p *Parser) parseForStmtTail(ctx Context, start token.Span) (*ast.ForStmt, *perrors.Error) {
	noInCtx := ctx.WithIn(false)
	var init *ast.ForInit
	switch {
	case p.at(token.SEMICOLON):
		// empty init
	case p.at(token.VAR) || p.at(token.CONST) || (p.at(token.LET) && isLetDeclarationStart(p.r.Peek(1))):
		kind := ast.Var
		if p.at(token.CONST) {
			kind = ast.Const
		} else if p.at(token.LET) {
			kind = ast.Let
		}
		declStart := p.r.Current().Span
		p.r.Advance()
		decls, err := p.parseVariableDeclaratorList(noInCtx, kind)
		if err != nil {
			return nil, err
		}
		init = &ast.ForInit{Decl: ast.NewVariableDecl(p.spanFrom(declStart), kind, decls)}
	default:
		expr, err := p.parseExpression(noInCtx)
		if err != nil {
			return nil, err
		}
		init = &ast.ForInit{Expr: expr}
	}
	if _, err := p.expectPunct(token.SEMICOLON, ";"); err != nil {
		return nil, err
	}
	var test ast.Expr
	if !p.at(token.SEMICOLON) {
		var err *perrors.Error
		test, err = p.parseExpression(ctx.WithIn(true))
		if err != nil {
			return nil, err
		}
	}
	if _, err := p.expectPunct(token.SEMICOLON, ";"); err != nil {
		return nil, err
	}
	var update ast.Expr
	if !p.at(token.RPAREN) {
		var err *perrors.Error
		update, err = p.parseExpression(ctx.WithIn(true))
		if err != nil {
			return nil, err
		}
	}
	if _, err := p.expectPunct(token.RPAREN, ")"); err != nil {
		return nil, err
	}
	body, err := p.parseStatement(ctx)
	if err != nil {
		return nil, err
	}
	return ast.NewForStmt(p.spanFrom(start), init, test, update, body), nil
}

// exprToAssignmentPattern reinterprets an expression parsed as a for-in/
// for-of left-hand side as an assignment target pattern.
func exprToAssignmentPattern(expr ast.Expr) (ast.Pattern, *perrors.Error) {
	if pat, ok := expr.(ast.Pattern); ok {
		return pat, nil
	}
	return nil, perrors.NewSyntaxError(expr.Span(), "invalid assignment target")
}

func (p *Parser) parseWhileStmt(ctx Context) (*ast.WhileStmt, *perrors.Error) {
	start := p.r.Current().Span
	p.r.Advance() // while
	if _, err := p.expectPunct(token.LPAREN, "("); err != nil {
		return nil, err
	}
	test, err := p.parseExpression(ctx.WithIn(true))
	if err != nil {
		return nil, err
	}
	if _, err := p.expectPunct(token.RPAREN, ")"); err != nil {
		return nil, err
	}
	body, err := p.parseStatement(ctx)
	if err != nil {
		return nil, err
	}
	return ast.NewWhileStmt(p.spanFrom(start), test, body), nil
}

func (p *Parser) parseDoWhileStmt(ctx Context) (*ast.DoWhileStmt, *perrors.Error) {
	start := p.r.Current().Span
	p.r.Advance() // do
	body, err := p.parseStatement(ctx)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.WHILE); err != nil {
		return nil, err
	}
	if _, err := p.expectPunct(token.LPAREN, "("); err != nil {
		return nil, err
	}
	test, err := p.parseExpression(ctx.WithIn(true))
	if err != nil {
		return nil, err
	}
	if _, err := p.expectPunct(token.RPAREN, ")"); err != nil {
		return nil, err
	}
	// The trailing semicolon after do-while is ASI-exempt: it is always
	// optional, even without a following line terminator.
	if p.at(token.SEMICOLON) {
		p.r.Advance()
	}
	return ast.NewDoWhileStmt(p.spanFrom(start), body, test), nil
}

func (p *Parser) parseReturnStmt(ctx Context) (*ast.ReturnStmt, *perrors.Error) {
	start := p.r.Current().Span
	p.r.Advance() // return
	cur := p.r.Current()
	if cur.FirstOnLine || cur.Is(token.SEMICOLON) || cur.Is(token.RBRACE) || cur.Is(token.EOF) {
		if err := p.consumeSemicolon(); err != nil {
			return nil, err
		}
		return ast.NewReturnStmt(p.spanFrom(start), nil), nil
	}
	arg, err := p.parseExpression(ctx.WithIn(true))
	if err != nil {
		return nil, err
	}
	if err := p.consumeSemicolon(); err != nil {
		return nil, err
	}
	return ast.NewReturnStmt(p.spanFrom(start), arg), nil
}

func (p *Parser) parseBreakStmt(ctx Context) (*ast.BreakStmt, *perrors.Error) {
	start := p.r.Current().Span
	p.r.Advance() // break
	label, err := p.parseOptionalLabel(ctx)
	if err != nil {
		return nil, err
	}
	if err := p.consumeSemicolon(); err != nil {
		return nil, err
	}
	return ast.NewBreakStmt(p.spanFrom(start), label), nil
}

func (p *Parser) parseContinueStmt(ctx Context) (*ast.ContinueStmt, *perrors.Error) {
	start := p.r.Current().Span
	p.r.Advance() // continue
	label, err := p.parseOptionalLabel(ctx)
	if err != nil {
		return nil, err
	}
	if err := p.consumeSemicolon(); err != nil {
		return nil, err
	}
	return ast.NewContinueStmt(p.spanFrom(start), label), nil
}

// parseOptionalLabel parses the identifier following break/continue, if
// any is present on the same line (ASI forbids one on the next line).
func (p *Parser) parseOptionalLabel(ctx Context) (*ast.Ident, *perrors.Error) {
	cur := p.r.Current()
	if cur.FirstOnLine || !isBindingIdentifierToken(cur.Type) {
		return nil, nil
	}
	return p.parseBindingIdentifier(ctx)
}

func (p *Parser) parseThrowStmt(ctx Context) (*ast.ThrowStmt, *perrors.Error) {
	start := p.r.Current().Span
	p.r.Advance() // throw
	cur := p.r.Current()
	if cur.FirstOnLine {
		return nil, perrors.NewSyntaxError(cur.Span, "no line break allowed between 'throw' and its argument")
	}
	arg, err := p.parseExpression(ctx.WithIn(true))
	if err != nil {
		return nil, err
	}
	if err := p.consumeSemicolon(); err != nil {
		return nil, err
	}
	return ast.NewThrowStmt(p.spanFrom(start), arg), nil
}

func (p *Parser) parseTryStmt(ctx Context) (*ast.TryStmt, *perrors.Error) {
	start := p.r.Current().Span
	p.r.Advance() // try
	block, err := p.parseBlockStmt(ctx)
	if err != nil {
		return nil, err
	}
	var handler *ast.CatchClause
	if p.at(token.CATCH) {
		catchStart := p.r.Current().Span
		p.r.Advance()
		var param ast.Pattern
		if p.at(token.LPAREN) {
			p.r.Advance()
			param, err = p.parseBindingTarget(ctx)
			if err != nil {
				return nil, err
			}
			if _, err := p.expectPunct(token.RPAREN, ")"); err != nil {
				return nil, err
			}
		}
		body, err := p.parseBlockStmt(ctx)
		if err != nil {
			return nil, err
		}
		handler = ast.NewCatchClause(p.spanFrom(catchStart), param, body)
	}
	var finalizer *ast.BlockStmt
	if p.at(token.FINALLY) {
		p.r.Advance()
		finalizer, err = p.parseBlockStmt(ctx)
		if err != nil {
			return nil, err
		}
	}
	if handler == nil && finalizer == nil {
		return nil, perrors.NewSyntaxError(p.r.Current().Span, "missing catch or finally after try")
	}
	return ast.NewTryStmt(p.spanFrom(start), block, handler, finalizer), nil
}

func (p *Parser) parseSwitchStmt(ctx Context) (*ast.SwitchStmt, *perrors.Error) {
	start := p.r.Current().Span
	p.r.Advance() // switch
	if _, err := p.expectPunct(token.LPAREN, "("); err != nil {
		return nil, err
	}
	discriminant, err := p.parseExpression(ctx.WithIn(true))
	if err != nil {
		return nil, err
	}
	if _, err := p.expectPunct(token.RPAREN, ")"); err != nil {
		return nil, err
	}
	if _, err := p.expectPunct(token.LBRACE, "{"); err != nil {
		return nil, err
	}
	var cases []*ast.SwitchCase
	seenDefault := false
	for !p.at(token.RBRACE) {
		caseStart := p.r.Current().Span
		var test ast.Expr
		if p.at(token.CASE) {
			p.r.Advance()
			test, err = p.parseExpression(ctx.WithIn(true))
			if err != nil {
				return nil, err
			}
		} else if p.at(token.DEFAULT) {
			if seenDefault {
				return nil, perrors.NewSyntaxError(caseStart, "more than one default clause in switch statement")
			}
			seenDefault = true
			p.r.Advance()
		} else {
			return nil, perrors.NewUnexpectedToken(p.r.Current().Span, p.r.Current().Literal)
		}
		if _, err := p.expectPunct(token.COLON, ":"); err != nil {
			return nil, err
		}
		var body []ast.Stmt
		for !p.at(token.CASE) && !p.at(token.DEFAULT) && !p.at(token.RBRACE) {
			stmt, err := p.parseStmtListItem(ctx)
			if err != nil {
				return nil, err
			}
			body = append(body, stmt)
		}
		cases = append(cases, ast.NewSwitchCase(p.spanFrom(caseStart), test, body))
	}
	if _, err := p.expectPunct(token.RBRACE, "}"); err != nil {
		return nil, err
	}
	return ast.NewSwitchStmt(p.spanFrom(start), discriminant, cases), nil
}

func (p *Parser) parseWithStmt(ctx Context) (*ast.WithStmt, *perrors.Error) {
	start := p.r.Current().Span
	if ctx.Strict {
		return nil, perrors.NewSyntaxError(start, "'with' statements are not allowed in strict mode")
	}
	p.r.Advance() // with
	if _, err := p.expectPunct(token.LPAREN, "("); err != nil {
		return nil, err
	}
	object, err := p.parseExpression(ctx.WithIn(true))
	if err != nil {
		return nil, err
	}
	if _, err := p.expectPunct(token.RPAREN, ")"); err != nil {
		return nil, err
	}
	body, err := p.parseStatement(ctx)
	if err != nil {
		return nil, err
	}
	return ast.NewWithStmt(p.spanFrom(start), object, body), nil
}

func (p *Parser) parseLabeledStmt(ctx Context) (*ast.LabeledStmt, *perrors.Error) {
	start := p.r.Current().Span
	label, err := p.parseBindingIdentifier(ctx)
	if err != nil {
		return nil, err
	}
	if _, err := p.expectPunct(token.COLON, ":"); err != nil {
		return nil, err
	}
	body, err := p.parseStatement(ctx)
	if err != nil {
		return nil, err
	}
	return ast.NewLabeledStmt(p.spanFrom(start), label, body), nil
}
