package cmd

import (
	"reflect"

	"github.com/ecmago/ecmaparse/pkg/ast"
)

// directChildren collects n's immediate Node-shaped children in
// field-declaration order, stopping recursion at the first Node found
// down each field path. Unlike ast.Walk (which flattens every descendant),
// this is what a nested tree dump needs one level at a time.
func directChildren(n ast.Node) []ast.Node {
	var out []ast.Node
	collectChildren(reflect.ValueOf(n), &out)
	return out
}

func collectChildren(rv reflect.Value, out *[]ast.Node) {
	if !rv.IsValid() {
		return
	}
	switch rv.Kind() {
	case reflect.Ptr:
		if rv.IsNil() {
			return
		}
		collectChildren(rv.Elem(), out)
	case reflect.Interface:
		if rv.IsNil() {
			return
		}
		collectChildren(rv.Elem(), out)
	case reflect.Struct:
		for i := 0; i < rv.NumField(); i++ {
			field := rv.Type().Field(i)
			if !field.IsExported() {
				continue
			}
			collectField(rv.Field(i), out)
		}
	case reflect.Slice, reflect.Array:
		for i := 0; i < rv.Len(); i++ {
			collectField(rv.Index(i), out)
		}
	}
}

// collectField is collectChildren's entry point for a single field value:
// it appends the field if it is itself a Node, otherwise it recurses
// through non-Node structs/slices looking for Nodes within.
func collectField(rv reflect.Value, out *[]ast.Node) {
	if !rv.IsValid() {
		return
	}
	switch rv.Kind() {
	case reflect.Ptr, reflect.Interface:
		if rv.IsNil() {
			return
		}
		if node, ok := rv.Interface().(ast.Node); ok {
			*out = append(*out, node)
			return
		}
		collectField(rv.Elem(), out)
	case reflect.Struct:
		if rv.CanAddr() {
			if node, ok := rv.Addr().Interface().(ast.Node); ok {
				*out = append(*out, node)
				return
			}
		}
		collectChildren(rv, out)
	case reflect.Slice, reflect.Array:
		collectChildren(rv, out)
	}
}
