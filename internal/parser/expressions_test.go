package parser

import (
	"testing"

	"github.com/ecmago/ecmaparse/pkg/ast"
)

func parseExpr(t *testing.T, input string) ast.Expr {
	t.Helper()
	expr, err := ParseExpr(input)
	if err != nil {
		t.Fatalf("input %q: unexpected parse error: %v", input, err)
	}
	return expr
}

func TestBinaryExpressionPrecedence(t *testing.T) {
	tests := []struct {
		input      string
		tightChild string // "left" or "right": which operand is itself a BinaryExpr
	}{
		{"a + b * c", "right"},
		{"a * b + c", "left"},
		{"a ** b ** c", "right"}, // ** is right-associative: a ** (b ** c)
	}

	for i, tt := range tests {
		bin, ok := parseExpr(t, tt.input).(*ast.BinaryExpr)
		if !ok {
			t.Fatalf("tests[%d] (%q): expected *ast.BinaryExpr at top level, got different type", i, tt.input)
		}
		child := bin.Right
		if tt.tightChild == "left" {
			child = bin.Left
		}
		if _, ok := child.(*ast.BinaryExpr); !ok {
			t.Fatalf("tests[%d] (%q): expected tighter-binding operand on the %s to be a nested BinaryExpr, got %T", i, tt.input, tt.tightChild, child)
		}
	}
}

func TestLogicalBindsLooserThanRelational(t *testing.T) {
	expr := parseExpr(t, "a < b && c")
	logical, ok := expr.(*ast.LogicalExpr)
	if !ok {
		t.Fatalf("expected *ast.LogicalExpr at top level, got %T", expr)
	}
	if _, ok := logical.Left.(*ast.BinaryExpr); !ok {
		t.Fatalf("expected a < b to bind tighter than &&, got %T", logical.Left)
	}
}

func TestConditionalExpression(t *testing.T) {
	expr := parseExpr(t, "a ? b : c")
	cond, ok := expr.(*ast.ConditionalExpr)
	if !ok {
		t.Fatalf("expected *ast.ConditionalExpr, got %T", expr)
	}
	if _, ok := cond.Test.(*ast.Ident); !ok {
		t.Fatalf("expected Test to be an identifier, got %T", cond.Test)
	}
}

func TestMemberAndCallExpressions(t *testing.T) {
	expr := parseExpr(t, "a.b[c](d)")
	call, ok := expr.(*ast.CallExpr)
	if !ok {
		t.Fatalf("expected *ast.CallExpr, got %T", expr)
	}
	if len(call.Arguments) != 1 {
		t.Fatalf("expected 1 argument, got %d", len(call.Arguments))
	}
	index, ok := call.Callee.(*ast.MemberExpr)
	if !ok || !index.Computed {
		t.Fatalf("expected computed member access as callee, got %T", call.Callee)
	}
	dot, ok := index.Object.(*ast.MemberExpr)
	if !ok || dot.Computed {
		t.Fatalf("expected non-computed member access as object, got %T", index.Object)
	}
}

func TestOptionalChaining(t *testing.T) {
	expr := parseExpr(t, "a?.b?.[c]")
	outer, ok := expr.(*ast.MemberExpr)
	if !ok {
		t.Fatalf("expected *ast.MemberExpr, got %T", expr)
	}
	if !outer.Computed || !outer.Optional {
		t.Fatalf("expected outer ?.[c] to be computed and optional, got computed=%v optional=%v", outer.Computed, outer.Optional)
	}
	inner, ok := outer.Object.(*ast.MemberExpr)
	if !ok || !inner.Optional {
		t.Fatalf("expected a?.b to be optional, got %T", outer.Object)
	}
}

func TestTemplateLiteralWithSubstitutions(t *testing.T) {
	expr := parseExpr(t, "`a${x}b${y}c`")
	tmpl, ok := expr.(*ast.TemplateLiteral)
	if !ok {
		t.Fatalf("expected *ast.TemplateLiteral, got %T", expr)
	}
	if len(tmpl.Quasis) != 3 {
		t.Fatalf("expected 3 quasis, got %d", len(tmpl.Quasis))
	}
	if len(tmpl.Expressions) != 2 {
		t.Fatalf("expected 2 substitutions, got %d", len(tmpl.Expressions))
	}
}

func TestArrowFunctionExpression(t *testing.T) {
	tests := []string{
		"x => x + 1",
		"(x, y) => x + y",
		"() => 42",
		"async x => x",
	}
	for _, input := range tests {
		expr := parseExpr(t, input)
		if _, ok := expr.(*ast.ArrowFunctionExpr); !ok {
			t.Fatalf("input %q: expected *ast.ArrowFunction, got %T", input, expr)
		}
	}
}

func TestSequenceExpressionInParens(t *testing.T) {
	expr := parseExpr(t, "(a, b, c)")
	paren, ok := expr.(*ast.ParenthesizedExpr)
	if !ok {
		t.Fatalf("expected *ast.ParenthesizedExpr, got %T", expr)
	}
	seq, ok := paren.Expression.(*ast.SequenceExpr)
	if !ok {
		t.Fatalf("expected *ast.SequenceExpr inside parens, got %T", paren.Expression)
	}
	if len(seq.Expressions) != 3 {
		t.Fatalf("expected 3 expressions, got %d", len(seq.Expressions))
	}
}

func TestObjectAndArrayLiterals(t *testing.T) {
	expr := parseExpr(t, "{ a: 1, ...b, [c]: 2 }")
	obj, ok := expr.(*ast.ObjectExpr)
	if !ok {
		t.Fatalf("expected *ast.ObjectExpr, got %T", expr)
	}
	if len(obj.Properties) != 3 {
		t.Fatalf("expected 3 properties, got %d", len(obj.Properties))
	}

	arr := parseExpr(t, "[1, , 3]")
	arrExpr, ok := arr.(*ast.ArrayExpr)
	if !ok {
		t.Fatalf("expected *ast.ArrayExpr, got %T", arr)
	}
	if len(arrExpr.Elements) != 3 {
		t.Fatalf("expected 3 elements (middle elided), got %d", len(arrExpr.Elements))
	}
	if arrExpr.Elements[1] != nil {
		t.Fatalf("expected elided element to be nil, got %T", arrExpr.Elements[1])
	}
}

func TestRegexLiteralExpression(t *testing.T) {
	tests := []struct {
		input    string
		wantBody string
		wantFlag string
	}{
		{"/ab+/g", "ab+", "g"},
		{`/a\/b/`, `a\/b`, ""},
	}
	for i, tt := range tests {
		expr := parseExpr(t, tt.input)
		lit, ok := expr.(*ast.Literal)
		if !ok || lit.Kind != ast.LiteralRegExp {
			t.Fatalf("tests[%d] (%q): expected a regexp literal, got %T", i, tt.input, expr)
		}
		if lit.RegexBody != tt.wantBody || lit.RegexFlags != tt.wantFlag {
			t.Fatalf("tests[%d] (%q): expected body=%q flags=%q, got body=%q flags=%q",
				i, tt.input, tt.wantBody, tt.wantFlag, lit.RegexBody, lit.RegexFlags)
		}
	}
}

func TestRegexLiteralDisambiguatedFromDivision(t *testing.T) {
	expr := parseExpr(t, "a / b / c")
	bin, ok := expr.(*ast.BinaryExpr)
	if !ok || bin.Op != ast.OpDiv {
		t.Fatalf("expected a top-level division, got %T", expr)
	}
	left, ok := bin.Left.(*ast.BinaryExpr)
	if !ok || left.Op != ast.OpDiv {
		t.Fatalf("expected the left operand to itself be a division, got %T", bin.Left)
	}

	stmt := singleStmt(t, parseProgram(t, "const re = /ab+/g;"))
	decl, ok := stmt.(*ast.VariableDecl)
	if !ok {
		t.Fatalf("expected *ast.VariableDecl, got %T", stmt)
	}
	lit, ok := decl.Declarations[0].Init.(*ast.Literal)
	if !ok || lit.Kind != ast.LiteralRegExp {
		t.Fatalf("expected the initializer to be a regexp literal, got %T", decl.Declarations[0].Init)
	}
}
