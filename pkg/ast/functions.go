package ast

import "github.com/ecmago/ecmaparse/pkg/token"

func (*FunctionDecl) stmtNode() {}

// Param is one entry of a FormalParameterList: a binding pattern, an
// optional default-value initializer (destructuring defaults), and
// whether it is the trailing rest parameter.
type Param struct {
	base
	Binding Pattern
	Default Expr // nil if absent
	Rest    bool
}

func NewParam(span token.Span, binding Pattern, def Expr, rest bool) *Param {
	return &Param{base: newBase(span), Binding: binding, Default: def, Rest: rest}
}

// FunctionBody is shared by function declarations/expressions and class
// methods: a StmtList, so its directive prologue determines Strict.
type FunctionBody struct {
	Stmts StmtList
}

type functionShape struct {
	base
	ID        *Ident // nil for anonymous function expressions
	Params    []*Param
	Body      FunctionBody
	Generator bool
	Async     bool
}

// FunctionDecl is a function/function*/async function/async function*
// declaration.
type FunctionDecl struct {
	functionShape
}

func NewFunctionDecl(span token.Span, id *Ident, params []*Param, body FunctionBody, generator, async bool) *FunctionDecl {
	return &FunctionDecl{functionShape{base: newBase(span), ID: id, Params: params, Body: body, Generator: generator, Async: async}}
}

// FunctionExpr is the expression-position counterpart of FunctionDecl.
type FunctionExpr struct {
	functionShape
}

func NewFunctionExpr(span token.Span, id *Ident, params []*Param, body FunctionBody, generator, async bool) *FunctionExpr {
	return &FunctionExpr{functionShape{base: newBase(span), ID: id, Params: params, Body: body, Generator: generator, Async: async}}
}

// ArrowFunctionExpr's Body is either a bare Expr (concise body) or a
// FunctionBody (block body) — exactly one of ExprBody/BlockBody is set.
type ArrowFunctionExpr struct {
	base
	Params    []*Param
	ExprBody  Expr
	BlockBody *FunctionBody
	Async     bool
}

func NewArrowFunctionExpr(span token.Span, params []*Param, async bool) *ArrowFunctionExpr {
	return &ArrowFunctionExpr{base: newBase(span), Params: params, Async: async}
}
