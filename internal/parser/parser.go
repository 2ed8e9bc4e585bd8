// Package parser implements a recursive-descent ECMAScript parser over
// the token stream produced by internal/lexer, producing the pkg/ast
// node tree.
package parser

import (
	"github.com/ecmago/ecmaparse/internal/lexer"
	"github.com/ecmago/ecmaparse/internal/perrors"
	"github.com/ecmago/ecmaparse/pkg/ast"
	"github.com/ecmago/ecmaparse/pkg/token"
)

// SourceType selects which top-level grammar Parse uses. Unknown asks
// the parser to sniff whether the source is a Module or a Script by
// scanning for a top-level import/export before parsing.
type SourceType int

const (
	Script SourceType = iota
	Module
	Unknown
)

// Parser holds the token reader and the source text needed for error
// rendering; Context is never stored on Parser itself, it is threaded
// explicitly through every parse method's parameters.
type Parser struct {
	source string
	r      *Reader
	lex    *lexer.Lexer
}

// New constructs a Parser over source. lexOpts are forwarded to the
// underlying lexer (trace output, comment retention).
func New(source string, lexOpts ...lexer.Option) (*Parser, *perrors.Error) {
	lx := lexer.New(source, lexOpts...)
	r, err := NewReader(lx)
	if err != nil {
		return nil, err
	}
	return &Parser{source: source, r: r, lex: lx}, nil
}

// ParseProgram parses a complete Script or Module depending on typ. For
// Unknown it resolves the grammar with sniffSourceKind before parsing at
// all: Module iff source contains a top-level import/export, Script
// otherwise — not by speculatively parsing as Module and falling back to
// Script on error, which would accept a plain script as a (wrongly
// implicit-strict) Module whenever it happens to also be syntactically
// valid module code.
func ParseProgram(source string, typ SourceType) (*ast.Program, *perrors.Error) {
	p, err := New(source)
	if err != nil {
		return nil, err
	}
	switch typ {
	case Module:
		return p.parseProgram(ast.Module)
	case Script:
		return p.parseProgram(ast.Script)
	default:
		return p.parseProgram(sniffSourceKind(source))
	}
}

// ParseExpr parses source as a single standalone expression, useful for
// tooling that only needs to evaluate one expression's shape.
func ParseExpr(source string) (ast.Expr, *perrors.Error) {
	p, err := New(source)
	if err != nil {
		return nil, err
	}
	ctx := Context{In: true}
	expr, perr := p.parseExpression(ctx)
	if perr != nil {
		return nil, perr
	}
	if !p.r.Is(token.EOF) {
		return nil, perrors.NewUnexpectedToken(p.r.Current().Span, p.r.Current().Literal)
	}
	return expr, nil
}

func (p *Parser) parseProgram(kind ast.SourceKind) (*ast.Program, *perrors.Error) {
	start := p.r.Current().Span
	ctx := Context{In: true}
	body, err := p.parseStmtListUntil(ctx.WithStrict(kind == ast.Module), token.EOF)
	if err != nil {
		return nil, err
	}
	end := p.r.Current().Span
	return ast.NewProgram(token.NewSpan(start.Start, end.End), kind, body), nil
}

// parseStmtListUntil parses StatementListItems until Current's type is
// stop (consumed by the caller) or EOF.
func (p *Parser) parseStmtListUntil(ctx Context, stop token.Type) (ast.StmtList, *perrors.Error) {
	var list ast.StmtList
	for !p.r.Is(stop) && !p.r.Is(token.EOF) {
		// A directive prologue can only appear at the very front; once a
		// non-directive statement is seen, later "use strict" strings are
		// ordinary expression statements, so Strict must be resolved once
		// the whole prologue is in hand. We detect it lazily: StmtList's
		// own IsStrict() is consulted again below once a later parse
		// needs to know Strict, since the prologue only affects callees.
		stmt, err := p.parseStmtListItem(ctx)
		if err != nil {
			return list, err
		}
		list.Body = append(list.Body, stmt)
		if list.IsStrict() {
			ctx = ctx.WithStrict(true)
		}
	}
	return list, nil
}

// expect consumes Current if it has type t, else returns an error.
func (p *Parser) expect(t token.Type) (token.Token, *perrors.Error) {
	if !p.r.Is(t) {
		cur := p.r.Current()
		return cur, perrors.NewExpectedOther(cur.Span, t.String(), cur.Type.String())
	}
	return p.r.Consume(), nil
}

// expectPunct is expect specialized for punctuators, producing a message
// that names the expected spelling rather than the Type's Go name.
func (p *Parser) expectPunct(t token.Type, spelling string) (token.Token, *perrors.Error) {
	if !p.r.Is(t) {
		cur := p.r.Current()
		return cur, perrors.NewExpectedOther(cur.Span, spelling, cur.Type.String())
	}
	return p.r.Consume(), nil
}

func (p *Parser) at(t token.Type) bool { return p.r.Is(t) }

func (p *Parser) atAny(types ...token.Type) bool {
	cur := p.r.Current().Type
	for _, t := range types {
		if cur == t {
			return true
		}
	}
	return false
}

// span builds a Span covering from start through the end of the token
// just consumed (p.r's position is already past it).
func (p *Parser) spanFrom(start token.Span) token.Span {
	prevEnd := start.End
	if len(p.r.tokens) > 0 && p.r.index > 0 {
		prevEnd = p.r.tokens[p.r.index-1].Span.End
	}
	return token.NewSpan(start.Start, prevEnd)
}
