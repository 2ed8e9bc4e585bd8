package ecmascript

import (
	"reflect"
	"strings"

	"github.com/ecmago/ecmaparse/pkg/ast"
)

// ToJSON converts an AST node into a JSON-marshalable tree: a "type" key
// holding the node's Go type name, a "span" key, and one key per exported
// field, recursing through structs/slices/pointers/interfaces the same
// way ast.Walk does. Non-Node struct fields (e.g. ast.FunctionBody,
// ast.ObjectPatternProperty) become nested objects, so every exported
// field, not just Node-shaped children, ends up in the snapshot.
func ToJSON(n ast.Node) any {
	if n == nil || isNil(reflect.ValueOf(n)) {
		return nil
	}
	rv := reflect.ValueOf(n)
	out := map[string]any{
		"type": nodeTypeName(rv),
		"span": n.Span().String(),
	}
	walkStruct(indirect(rv), out)
	return out
}

func nodeTypeName(rv reflect.Value) string {
	t := indirect(rv).Type()
	return strings.TrimPrefix(t.String(), "ast.")
}

func indirect(rv reflect.Value) reflect.Value {
	for rv.Kind() == reflect.Ptr {
		if rv.IsNil() {
			return rv
		}
		rv = rv.Elem()
	}
	return rv
}

func isNil(rv reflect.Value) bool {
	switch rv.Kind() {
	case reflect.Ptr, reflect.Interface, reflect.Slice, reflect.Map, reflect.Chan, reflect.Func:
		return rv.IsNil()
	default:
		return false
	}
}

func walkStruct(rv reflect.Value, out map[string]any) {
	if rv.Kind() != reflect.Struct {
		return
	}
	t := rv.Type()
	for i := 0; i < rv.NumField(); i++ {
		field := t.Field(i)
		if !field.IsExported() {
			continue
		}
		// base.span is already surfaced as "span" via Span().
		if field.Anonymous && field.Type.Name() == "base" {
			continue
		}
		out[lowerFirst(field.Name)] = toValue(rv.Field(i))
	}
}

func toValue(rv reflect.Value) any {
	switch rv.Kind() {
	case reflect.Ptr:
		if rv.IsNil() {
			return nil
		}
		if n, ok := rv.Interface().(ast.Node); ok {
			return ToJSON(n)
		}
		return toValue(rv.Elem())
	case reflect.Interface:
		if rv.IsNil() {
			return nil
		}
		if n, ok := rv.Interface().(ast.Node); ok {
			return ToJSON(n)
		}
		return toValue(rv.Elem())
	case reflect.Struct:
		if rv.CanAddr() {
			if n, ok := rv.Addr().Interface().(ast.Node); ok {
				return ToJSON(n)
			}
		}
		out := map[string]any{}
		walkStruct(rv, out)
		return out
	case reflect.Slice, reflect.Array:
		if rv.IsNil() {
			return nil
		}
		out := make([]any, rv.Len())
		for i := 0; i < rv.Len(); i++ {
			out[i] = toValue(rv.Index(i))
		}
		return out
	default:
		return rv.Interface()
	}
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToLower(s[:1]) + s[1:]
}
