// Package ast defines the ECMAScript syntax tree: a tagged-variant tree
// where every node carries a Span, mirroring the closed-sum design of
// spec section 3 ("AST nodes ... every node carries a Span").
package ast

import "github.com/ecmago/ecmaparse/pkg/token"

// Node is implemented by every AST type. Spans are set once, at
// construction, by the parser function that completed the node; they are
// never mutated afterward.
type Node interface {
	Span() token.Span
}

// Expr is any expression node.
type Expr interface {
	Node
	exprNode()
}

// Stmt is any statement or declaration node that can appear in a
// StmtList.
type Stmt interface {
	Node
	stmtNode()
}

// Pattern is a binding or assignment target: an identifier, or an array /
// object destructuring pattern.
type Pattern interface {
	Node
	patternNode()
}

// base embeds a Span on every concrete node type; Span() is promoted
// automatically by embedding.
type base struct {
	span token.Span
}

func (b base) Span() token.Span { return b.span }

func newBase(span token.Span) base { return base{span: span} }
