package parser

import (
	"testing"

	"github.com/ecmago/ecmaparse/pkg/ast"
)

func TestFunctionDeclarationFlavors(t *testing.T) {
	tests := []struct {
		input         string
		wantGenerator bool
		wantAsync     bool
	}{
		{"function f() {}", false, false},
		{"function* g() {}", true, false},
		{"async function f() {}", false, true},
		{"async function* g() {}", true, true},
	}
	for i, tt := range tests {
		stmt := singleStmt(t, parseProgram(t, tt.input))
		fn, ok := stmt.(*ast.FunctionDecl)
		if !ok {
			t.Fatalf("tests[%d] (%q): expected *ast.FunctionDecl, got %T", i, tt.input, stmt)
		}
		if fn.Generator != tt.wantGenerator {
			t.Fatalf("tests[%d] (%q): Generator = %v, want %v", i, tt.input, fn.Generator, tt.wantGenerator)
		}
		if fn.Async != tt.wantAsync {
			t.Fatalf("tests[%d] (%q): Async = %v, want %v", i, tt.input, fn.Async, tt.wantAsync)
		}
	}
}

func TestFunctionParameterForms(t *testing.T) {
	stmt := singleStmt(t, parseProgram(t, "function f(a, b = 1, [c, d], {e}, ...rest) {}"))
	fn, ok := stmt.(*ast.FunctionDecl)
	if !ok {
		t.Fatalf("expected *ast.FunctionDecl, got %T", stmt)
	}
	if len(fn.Params) != 5 {
		t.Fatalf("expected 5 parameters, got %d", len(fn.Params))
	}
	if fn.Params[1].Default == nil {
		t.Fatal("expected param 1 (b = 1) to carry a default")
	}
	if _, ok := fn.Params[2].Binding.(*ast.ArrayPattern); !ok {
		t.Fatalf("expected param 2 to be an array pattern, got %T", fn.Params[2].Binding)
	}
	if _, ok := fn.Params[3].Binding.(*ast.ObjectPattern); !ok {
		t.Fatalf("expected param 3 to be an object pattern, got %T", fn.Params[3].Binding)
	}
	if !fn.Params[4].Rest {
		t.Fatal("expected the final parameter to be a rest parameter")
	}
}

func TestArrowFunctionBodies(t *testing.T) {
	expr := parseExpr(t, "x => x + 1")
	arrow, ok := expr.(*ast.ArrowFunctionExpr)
	if !ok {
		t.Fatalf("expected *ast.ArrowFunctionExpr, got %T", expr)
	}
	if arrow.ExprBody == nil || arrow.BlockBody != nil {
		t.Fatal("expected a concise (expression) body")
	}

	blockExpr := parseExpr(t, "x => { return x + 1; }")
	blockArrow, ok := blockExpr.(*ast.ArrowFunctionExpr)
	if !ok {
		t.Fatalf("expected *ast.ArrowFunctionExpr, got %T", blockExpr)
	}
	if blockArrow.BlockBody == nil || blockArrow.ExprBody != nil {
		t.Fatal("expected a block body")
	}
}

func TestYieldAndAwaitExpressions(t *testing.T) {
	stmt := singleStmt(t, parseProgram(t, "function* g() { yield 1; yield* items; }"))
	fn, ok := stmt.(*ast.FunctionDecl)
	if !ok {
		t.Fatalf("expected *ast.FunctionDecl, got %T", stmt)
	}
	if len(fn.Body.Stmts.Body) != 2 {
		t.Fatalf("expected 2 statements in generator body, got %d", len(fn.Body.Stmts.Body))
	}
	first := fn.Body.Stmts.Body[0].(*ast.ExprStmt).Expr.(*ast.YieldExpr)
	if first.Delegate {
		t.Fatal("expected the first yield to not be delegating")
	}
	second := fn.Body.Stmts.Body[1].(*ast.ExprStmt).Expr.(*ast.YieldExpr)
	if !second.Delegate {
		t.Fatal("expected the second yield* to be delegating")
	}
}

func TestForAwaitOf(t *testing.T) {
	stmt := singleStmt(t, parseProgram(t, "async function f() { for await (const x of xs) {} }"))
	fn, ok := stmt.(*ast.FunctionDecl)
	if !ok {
		t.Fatalf("expected *ast.FunctionDecl, got %T", stmt)
	}
	inner := fn.Body.Stmts.Body[0]
	forOf, ok := inner.(*ast.ForOfStmt)
	if !ok {
		t.Fatalf("expected *ast.ForOfStmt, got %T", inner)
	}
	if !forOf.Await {
		t.Fatal("expected Await to be true for a for-await-of loop")
	}
}
