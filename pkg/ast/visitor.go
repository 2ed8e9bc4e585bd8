package ast

import "reflect"

// Visitor receives every Node reachable from a Walk, in source order.
// Returning false from Visit skips that node's children.
type Visitor interface {
	Visit(n Node) bool
}

// VisitorFunc adapts a plain function to a Visitor.
type VisitorFunc func(n Node) bool

func (f VisitorFunc) Visit(n Node) bool { return f(n) }

// Walk traverses n and every descendant reachable through its exported
// struct fields, visiting Node-shaped values (direct, pointer, slice, or
// interface) in field-declaration order. Traversal is reflection-driven
// rather than generated per node kind, so adding a grammar production
// never requires touching a separate visitor file.
func Walk(n Node, v Visitor) {
	if n == nil || isNilNode(n) {
		return
	}
	if !v.Visit(n) {
		return
	}
	walkChildren(reflect.ValueOf(n), v)
}

func walkChildren(rv reflect.Value, v Visitor) {
	if !rv.IsValid() {
		return
	}
	switch rv.Kind() {
	case reflect.Ptr:
		if rv.IsNil() {
			return
		}
		walkChildren(rv.Elem(), v)
	case reflect.Interface:
		if rv.IsNil() {
			return
		}
		if n, ok := rv.Interface().(Node); ok {
			Walk(n, v)
			return
		}
		walkChildren(rv.Elem(), v)
	case reflect.Struct:
		for i := 0; i < rv.NumField(); i++ {
			field := rv.Type().Field(i)
			if !field.IsExported() {
				continue
			}
			walkField(rv.Field(i), v)
		}
	case reflect.Slice, reflect.Array:
		for i := 0; i < rv.Len(); i++ {
			walkField(rv.Index(i), v)
		}
	}
}

func walkField(rv reflect.Value, v Visitor) {
	switch rv.Kind() {
	case reflect.Ptr:
		if rv.IsNil() {
			return
		}
		if n, ok := rv.Interface().(Node); ok {
			Walk(n, v)
			return
		}
		walkChildren(rv, v)
	case reflect.Interface:
		if rv.IsNil() {
			return
		}
		if n, ok := rv.Interface().(Node); ok {
			Walk(n, v)
			return
		}
	case reflect.Struct, reflect.Slice, reflect.Array:
		walkChildren(rv, v)
	}
}

func isNilNode(n Node) bool {
	rv := reflect.ValueOf(n)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Interface, reflect.Slice, reflect.Map, reflect.Chan, reflect.Func:
		return rv.IsNil()
	default:
		return false
	}
}
