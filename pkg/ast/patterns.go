package ast

import "github.com/ecmago/ecmaparse/pkg/token"

func (*ArrayPattern) patternNode()      {}
func (*ObjectPattern) patternNode()     {}
func (*AssignmentPattern) patternNode() {}
func (*RestElement) patternNode()       {}

// ArrayPattern is an array destructuring pattern: elements may be nil for
// elisions, a plain Pattern, or a *RestElement as the (only, trailing)
// rest.
type ArrayPattern struct {
	base
	Elements []Pattern
}

func NewArrayPattern(span token.Span, elements []Pattern) *ArrayPattern {
	return &ArrayPattern{base: newBase(span), Elements: elements}
}

// ObjectPatternProperty is one `key: value` or shorthand entry of an
// ObjectPattern.
type ObjectPatternProperty struct {
	Key       Expr
	Computed  bool
	Value     Pattern
	Shorthand bool
}

type ObjectPattern struct {
	base
	Properties []ObjectPatternProperty
	Rest       *Ident // nil if no trailing `...rest`
}

func NewObjectPattern(span token.Span, props []ObjectPatternProperty, rest *Ident) *ObjectPattern {
	return &ObjectPattern{base: newBase(span), Properties: props, Rest: rest}
}

// AssignmentPattern is a pattern with a default value: `{a = 1}`, `[a = 1]`.
type AssignmentPattern struct {
	base
	Left  Pattern
	Right Expr
}

func NewAssignmentPattern(span token.Span, left Pattern, right Expr) *AssignmentPattern {
	return &AssignmentPattern{base: newBase(span), Left: left, Right: right}
}

// RestElement is the `...x` tail of an array/object pattern.
type RestElement struct {
	base
	Argument Pattern
}

func NewRestElement(span token.Span, arg Pattern) *RestElement {
	return &RestElement{base: newBase(span), Argument: arg}
}
