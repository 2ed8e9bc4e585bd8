package parser

import (
	"github.com/ecmago/ecmaparse/internal/perrors"
	"github.com/ecmago/ecmaparse/pkg/ast"
	"github.com/ecmago/ecmaparse/pkg/token"
)

func (p *Parser) parseImportDecl(ctx Context) (*ast.ImportDecl, *perrors.Error) {
	start := p.r.Current().Span
	p.r.Advance() // import

	if p.at(token.STRING) {
		source, _, err := p.parsePrimaryLiteral()
		if err != nil {
			return nil, err
		}
		if err := p.consumeSemicolon(); err != nil {
			return nil, err
		}
		return ast.NewImportDecl(p.spanFrom(start), nil, source.(*ast.Literal)), nil
	}

	var specs []*ast.ImportSpecifier
	if isBindingIdentifierToken(p.r.Current().Type) {
		id, err := p.parseBindingIdentifier(ctx)
		if err != nil {
			return nil, err
		}
		specs = append(specs, ast.NewImportSpecifier(id.Span(), ast.ImportDefault, nil, id))
		if p.at(token.COMMA) {
			p.r.Advance()
		}
	}
	if p.at(token.STAR) {
		starStart := p.r.Current().Span
		p.r.Advance()
		if _, err := p.expect(token.AS); err != nil {
			return nil, err
		}
		local, err := p.parseBindingIdentifier(ctx)
		if err != nil {
			return nil, err
		}
		specs = append(specs, ast.NewImportSpecifier(p.spanFrom(starStart), ast.ImportNamespace, nil, local))
	} else if p.at(token.LBRACE) {
		named, err := p.parseNamedImports(ctx)
		if err != nil {
			return nil, err
		}
		specs = append(specs, named...)
	}

	if _, err := p.expect(token.FROM); err != nil {
		return nil, err
	}
	source, _, err := p.parsePrimaryLiteral()
	if err != nil {
		return nil, err
	}
	if err := p.consumeSemicolon(); err != nil {
		return nil, err
	}
	return ast.NewImportDecl(p.spanFrom(start), specs, source.(*ast.Literal)), nil
}

func (p *Parser) parseNamedImports(ctx Context) ([]*ast.ImportSpecifier, *perrors.Error) {
	p.r.Advance() // {
	var specs []*ast.ImportSpecifier
	for !p.at(token.RBRACE) {
		start := p.r.Current().Span
		imported, err := p.parseModuleExportName(ctx)
		if err != nil {
			return nil, err
		}
		local := imported
		if p.at(token.AS) {
			p.r.Advance()
			local, err = p.parseBindingIdentifier(ctx)
			if err != nil {
				return nil, err
			}
		}
		specs = append(specs, ast.NewImportSpecifier(p.spanFrom(start), ast.ImportNamed, imported, local))
		if p.at(token.COMMA) {
			p.r.Advance()
		} else {
			break
		}
	}
	_, err := p.expectPunct(token.RBRACE, "}")
	return specs, err
}

// parseModuleExportName parses an identifier or, in contexts where
// ECMAScript permits it, a string literal module export name; this
// parser accepts only the identifier form, matching what the binding
// side of import/export clauses actually binds to.
func (p *Parser) parseModuleExportName(ctx Context) (*ast.Ident, *perrors.Error) {
	cur := p.r.Current()
	if cur.Type == token.IDENT || cur.Type.IsContextualKeyword() || cur.Type.IsKeyword() || cur.Type.IsStrictReserved() {
		p.r.Advance()
		return ast.NewIdent(cur.Span, identifierName(cur)), nil
	}
	return nil, perrors.NewExpectedIdentifier(cur.Span, cur.Type.String())
}

func (p *Parser) parseExportDecl(ctx Context) (ast.Stmt, *perrors.Error) {
	start := p.r.Current().Span
	p.r.Advance() // export

	if p.at(token.DEFAULT) {
		p.r.Advance()
		var decl ast.Node
		var err *perrors.Error
		switch {
		case p.at(token.FUNCTION):
			decl, err = p.parseFunctionDecl(ctx, p.r.Current().Span, false)
		case p.at(token.ASYNC) && p.r.Peek(1).Is(token.FUNCTION):
			asyncSpan := p.r.Current().Span
			p.r.Advance()
			decl, err = p.parseFunctionDecl(ctx, asyncSpan, true)
		case p.at(token.CLASS):
			decl, err = p.parseClassDecl(ctx)
		default:
			decl, err = p.parseAssignmentExpr(ctx.WithIn(true))
			if err == nil {
				if cerr := p.consumeSemicolon(); cerr != nil {
					err = cerr
				}
			}
		}
		if err != nil {
			return nil, err
		}
		return ast.NewExportDefaultDecl(p.spanFrom(start), decl), nil
	}

	if p.at(token.STAR) {
		p.r.Advance()
		var exported *ast.Ident
		if p.at(token.AS) {
			p.r.Advance()
			var err *perrors.Error
			exported, err = p.parseModuleExportName(ctx)
			if err != nil {
				return nil, err
			}
		}
		if _, err := p.expect(token.FROM); err != nil {
			return nil, err
		}
		source, _, err := p.parsePrimaryLiteral()
		if err != nil {
			return nil, err
		}
		if err := p.consumeSemicolon(); err != nil {
			return nil, err
		}
		return ast.NewExportAllDecl(p.spanFrom(start), exported, source.(*ast.Literal)), nil
	}

	if p.at(token.LBRACE) {
		p.r.Advance()
		var specs []*ast.ExportSpecifier
		for !p.at(token.RBRACE) {
			specStart := p.r.Current().Span
			local, err := p.parseModuleExportName(ctx)
			if err != nil {
				return nil, err
			}
			exported := local
			if p.at(token.AS) {
				p.r.Advance()
				exported, err = p.parseModuleExportName(ctx)
				if err != nil {
					return nil, err
				}
			}
			specs = append(specs, ast.NewExportSpecifier(p.spanFrom(specStart), local, exported))
			if p.at(token.COMMA) {
				p.r.Advance()
			} else {
				break
			}
		}
		if _, err := p.expectPunct(token.RBRACE, "}"); err != nil {
			return nil, err
		}
		var source *ast.Literal
		if p.at(token.FROM) {
			p.r.Advance()
			lit, _, err := p.parsePrimaryLiteral()
			if err != nil {
				return nil, err
			}
			source = lit.(*ast.Literal)
		}
		if err := p.consumeSemicolon(); err != nil {
			return nil, err
		}
		return ast.NewExportNamedDecl(p.spanFrom(start), nil, specs, source), nil
	}

	// export <declaration>
	decl, err := p.parseStmtListItem(ctx)
	if err != nil {
		return nil, err
	}
	return ast.NewExportNamedDecl(p.spanFrom(start), decl, nil, nil), nil
}
