package parser

import (
	"fmt"
	"reflect"
	"testing"

	"github.com/ecmago/ecmaparse/pkg/ast"
	"github.com/ecmago/ecmaparse/pkg/token"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// identGen produces ASCII identifiers that are never reserved words, so
// the generated programs below are always valid bindings.
func identGen() gopter.Gen {
	names := []string{"a", "b", "c", "x", "y", "total", "value", "counter"}
	return gen.OneConstOf(asInterfaceSlice(names)...)
}

func asInterfaceSlice(names []string) []interface{} {
	out := make([]interface{}, len(names))
	for i, n := range names {
		out[i] = n
	}
	return out
}

// Property 1+2: span containment and monotonicity over a family of
// randomly generated but always-valid declaration lists.
func TestProperty_SpanContainmentAndMonotonicity(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	properties := gopter.NewProperties(parameters)

	properties.Property("every child span is contained in its parent's span", prop.ForAll(
		func(names []string) bool {
			if len(names) == 0 {
				return true
			}
			source := ""
			for _, n := range names {
				source += fmt.Sprintf("var %s = 1;\n", n)
			}
			prog, err := ParseProgram(source, Script)
			if err != nil {
				return false
			}
			return spanContainmentHolds(prog)
		},
		gen.SliceOfN(5, identGen()),
	))

	properties.Property("sibling statement spans are non-decreasing in start", prop.ForAll(
		func(names []string) bool {
			if len(names) == 0 {
				return true
			}
			source := ""
			for _, n := range names {
				source += fmt.Sprintf("var %s = 1;\n", n)
			}
			prog, err := ParseProgram(source, Script)
			if err != nil {
				return false
			}
			return monotonicHolds(prog.Body.Body)
		},
		gen.SliceOfN(5, identGen()),
	))

	properties.TestingRun(t)
}

func spanContainmentHolds(n ast.Node) bool {
	parent := n.Span()
	ok := true
	ast.Walk(n, ast.VisitorFunc(func(child ast.Node) bool {
		if child == n {
			return true
		}
		if !parent.Covers(child.Span()) || !spanContainmentHolds(child) {
			ok = false
		}
		return false
	}))
	return ok
}

func monotonicHolds(stmts []ast.Stmt) bool {
	prevEnd := uint32(0)
	for i, s := range stmts {
		if i > 0 && s.Span().Start < prevEnd {
			return false
		}
		prevEnd = s.Span().End
	}
	return true
}

// Property 6: a function whose body opens with "use strict" parses under
// Strict regardless of the enclosing context, e.g. rejecting a duplicate
// simple parameter name that would be legal without the directive.
func TestProperty_StrictPropagation(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 50
	properties := gopter.NewProperties(parameters)

	properties.Property("duplicate parameter name is rejected once body opens with use strict", prop.ForAll(
		func(name string) bool {
			source := fmt.Sprintf(`function f(%s, %s) { "use strict"; }`, name, name)
			_, err := ParseProgram(source, Script)
			return err != nil
		},
		identGen(),
	))

	properties.Property("the same duplicate parameter name is accepted without the directive", prop.ForAll(
		func(name string) bool {
			source := fmt.Sprintf(`function f(%s, %s) { }`, name, name)
			_, err := ParseProgram(source, Script)
			return err == nil
		},
		identGen(),
	))

	properties.TestingRun(t)
}

// Property 7: "yield" is an ordinary identifier in a non-generator
// function and the yield operator in a generator, at the same position.
func TestProperty_KeywordContextuality(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 50
	properties := gopter.NewProperties(parameters)

	properties.Property("yield is an identifier outside a generator", prop.ForAll(
		func(name string) bool {
			source := fmt.Sprintf(`function f() { var yield = %s; return yield; }`, name)
			prog, err := ParseProgram(source, Script)
			if err != nil {
				return false
			}
			decl, ok := prog.Body.Body[0].(*ast.FunctionDecl)
			if !ok {
				return false
			}
			vd, ok := decl.Body.Stmts.Body[0].(*ast.VariableDecl)
			if !ok {
				return false
			}
			id, ok := vd.Declarations[0].Binding.(*ast.Ident)
			return ok && id.Name == "yield"
		},
		identGen(),
	))

	properties.Property("yield is the yield operator inside a generator", prop.ForAll(
		func(name string) bool {
			source := fmt.Sprintf(`function* f() { yield %s; }`, name)
			prog, err := ParseProgram(source, Script)
			if err != nil {
				return false
			}
			decl, ok := prog.Body.Body[0].(*ast.FunctionDecl)
			if !ok {
				return false
			}
			es, ok := decl.Body.Stmts.Body[0].(*ast.ExprStmt)
			if !ok {
				return false
			}
			_, ok = es.Expr.(*ast.YieldExpr)
			return ok
		},
		identGen(),
	))

	properties.TestingRun(t)
}

func TestProperty_SpanKindIsStruct(t *testing.T) {
	if reflect.TypeOf(token.Span{}).Kind() != reflect.Struct {
		t.Fatal("token.Span is expected to be a plain struct")
	}
}
