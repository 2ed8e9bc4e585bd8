package ast

import "github.com/ecmago/ecmaparse/pkg/token"

// SourceKind distinguishes the two top-level grammars spec §6 requires
// the public API to support.
type SourceKind int

const (
	Script SourceKind = iota
	Module
)

// Program is the root of every parsed tree: either a Script or a Module,
// each wrapping a StmtList.
type Program struct {
	base
	Kind SourceKind
	Body StmtList
}

func NewProgram(span token.Span, kind SourceKind, body StmtList) *Program {
	return &Program{base: newBase(span), Kind: kind, Body: body}
}

// StmtList is a sequence of statements preceded by a directive prologue —
// the leading run of bare string-literal expression statements. Directives
// is derived from Body rather than stored redundantly; see Directives().
type StmtList struct {
	Body []Stmt
}

// Directives returns the decoded string values of the directive prologue: the
// leading ExprStmt nodes whose expression is a string Literal.
func (s StmtList) Directives() []string {
	var out []string
	for _, stmt := range s.Body {
		es, ok := stmt.(*ExprStmt)
		if !ok {
			break
		}
		lit, ok := es.Expr.(*Literal)
		if !ok || lit.Kind != LiteralString {
			break
		}
		out = append(out, lit.StringValue)
	}
	return out
}

// IsStrict reports whether the directive prologue contains "use strict".
func (s StmtList) IsStrict() bool {
	for _, d := range s.Directives() {
		if d == "use strict" {
			return true
		}
	}
	return false
}
