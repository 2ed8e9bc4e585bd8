package ast

import "github.com/ecmago/ecmaparse/pkg/token"

// MethodKind distinguishes ordinary methods from accessors and the
// constructor.
type MethodKind int

const (
	MethodOrdinary MethodKind = iota
	MethodGet
	MethodSet
	MethodConstructor
)

// ClassMember is one entry of a class body: a method, a field, or a
// static initialization block. Exactly one of Method/Value/StaticBlock is
// meaningful per MemberForm.
type MemberForm int

const (
	MemberMethod MemberForm = iota
	MemberField
	MemberStaticBlock
)

type ClassMember struct {
	base
	Form     MemberForm
	Key      Expr // Ident, Literal, *PrivateName, or computed Expr
	Computed bool
	Static   bool

	// MemberMethod
	MethodKind MethodKind
	Function   *FunctionExpr

	// MemberField
	Value Expr // initializer, nil if absent

	// MemberStaticBlock
	Body StmtList
}

func NewClassMember(span token.Span) *ClassMember { return &ClassMember{base: newBase(span)} }

type classShape struct {
	base
	ID         *Ident // nil for anonymous class expressions
	SuperClass Expr   // nil if no `extends`
	Body       []*ClassMember
}

// ClassDecl is a class declaration; ClassExpr is the expression-position
// counterpart. Both implicitly parse their Body under Strict, per
// spec §4.4.6 ("Class bodies are implicitly strict").
type ClassDecl struct{ classShape }

func NewClassDecl(span token.Span, id *Ident, super Expr, body []*ClassMember) *ClassDecl {
	return &ClassDecl{classShape{base: newBase(span), ID: id, SuperClass: super, Body: body}}
}

type ClassExpr struct{ classShape }

func NewClassExpr(span token.Span, id *Ident, super Expr, body []*ClassMember) *ClassExpr {
	return &ClassExpr{classShape{base: newBase(span), ID: id, SuperClass: super, Body: body}}
}
