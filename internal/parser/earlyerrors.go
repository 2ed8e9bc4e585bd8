package parser

import (
	"github.com/ecmago/ecmaparse/internal/perrors"
	"github.com/ecmago/ecmaparse/pkg/ast"
	"github.com/ecmago/ecmaparse/pkg/token"
)

// validateAssignmentTarget rejects expressions that are syntactically
// well formed but not legal simple assignment targets: literals, calls,
// and similar. ArrayExpr/ObjectExpr are accepted as destructuring
// targets without looking at their elements; they are not converted to
// patterns, so validatePattern never sees them.
func validateAssignmentTarget(expr ast.Expr) *perrors.Error {
	switch expr.(type) {
	case *ast.Ident, *ast.MemberExpr, *ast.ArrayExpr, *ast.ObjectExpr, *ast.ParenthesizedExpr:
		return nil
	default:
		return perrors.NewSyntaxError(expr.Span(), "invalid assignment target")
	}
}

// validatePattern walks a binding/destructuring pattern checking for
// duplicate bound names within a single declaration list, collecting
// names into seen.
func validatePattern(pat ast.Pattern, seen map[string]bool) *perrors.Error {
	switch p := pat.(type) {
	case *ast.Ident:
		if seen[p.Name] {
			return perrors.NewSyntaxError(p.Span(), "duplicate binding %q", p.Name)
		}
		seen[p.Name] = true
	case *ast.ArrayPattern:
		for _, el := range p.Elements {
			if el == nil {
				continue
			}
			if err := validatePattern(el, seen); err != nil {
				return err
			}
		}
	case *ast.ObjectPattern:
		for _, prop := range p.Properties {
			if err := validatePattern(prop.Value, seen); err != nil {
				return err
			}
		}
		if p.Rest != nil {
			if err := validatePattern(p.Rest, seen); err != nil {
				return err
			}
		}
	case *ast.AssignmentPattern:
		return validatePattern(p.Left, seen)
	case *ast.RestElement:
		return validatePattern(p.Argument, seen)
	}
	return nil
}

// validateStrictRestrictedTarget rejects "eval" and "arguments" as the
// target of an assignment or update expression in strict mode (ECMA-262
// static semantics for AssignmentTargetType / forbidden left-hand-side
// restrictions). Non-identifier targets (member expressions, patterns)
// are left to validateAssignmentTarget/validatePattern.
func validateStrictRestrictedTarget(ctx Context, expr ast.Expr) *perrors.Error {
	if !ctx.Strict {
		return nil
	}
	id, ok := expr.(*ast.Ident)
	if !ok {
		return nil
	}
	if id.Name == "eval" || id.Name == "arguments" {
		return perrors.NewSyntaxError(id.Span(), "%q may not be assigned to in strict mode", id.Name)
	}
	return nil
}

// validateStrictDelete rejects `delete` applied directly to an
// unqualified identifier in strict mode (ECMA-262 UnaryExpression
// static semantics).
func validateStrictDelete(ctx Context, arg ast.Expr) *perrors.Error {
	if !ctx.Strict {
		return nil
	}
	if id, ok := arg.(*ast.Ident); ok {
		return perrors.NewSyntaxError(id.Span(), "delete of an unqualified identifier in strict mode")
	}
	return nil
}

// isSimpleParameterList reports whether every parameter is a plain
// identifier with no default value and no rest. With a simple list,
// duplicate parameter names are rejected only when the function is
// strict; any other list always gets the duplicate-parameter check.
func isSimpleParameterList(params []*ast.Param) bool {
	for _, prm := range params {
		if prm.Rest || prm.Default != nil {
			return false
		}
		if _, ok := prm.Binding.(*ast.Ident); !ok {
			return false
		}
	}
	return true
}

// validateParamList rejects duplicate bound names across a parameter
// list when mustBeUnique is set. Callers pass true unconditionally for
// arrow functions and method definitions (UniqueFormalParameters always
// applies to them), and for ordinary functions only once strictness or
// a non-simple parameter list is known.
func validateParamList(params []*ast.Param, mustBeUnique bool) *perrors.Error {
	if !mustBeUnique {
		return nil
	}
	seen := map[string]bool{}
	for _, prm := range params {
		if err := validatePattern(prm.Binding, seen); err != nil {
			return err
		}
	}
	return nil
}

// validateSetterArity enforces that a setter accessor method has
// exactly one non-rest parameter. fallback is used for the diagnostic
// span when the method has zero parameters.
func validateSetterArity(params []*ast.Param, fallback token.Span) *perrors.Error {
	if len(params) == 1 && !params[0].Rest {
		return nil
	}
	span := fallback
	if len(params) > 0 {
		span = params[0].Span()
	}
	return perrors.NewSyntaxError(span, "setter must have exactly one parameter")
}

// validateGetterArity enforces that a getter accessor method has no
// parameters.
func validateGetterArity(params []*ast.Param) *perrors.Error {
	if len(params) != 0 {
		return perrors.NewSyntaxError(params[0].Span(), "getter must have no parameters")
	}
	return nil
}
