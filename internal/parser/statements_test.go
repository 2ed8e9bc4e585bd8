package parser

import (
	"testing"

	"github.com/ecmago/ecmaparse/pkg/ast"
)

func parseProgram(t *testing.T, input string) *ast.Program {
	t.Helper()
	prog, err := ParseProgram(input, Script)
	if err != nil {
		t.Fatalf("input %q: unexpected parse error: %v", input, err)
	}
	return prog
}

func singleStmt(t *testing.T, prog *ast.Program) ast.Stmt {
	t.Helper()
	if len(prog.Body.Body) != 1 {
		t.Fatalf("expected exactly 1 statement, got %d", len(prog.Body.Body))
	}
	return prog.Body.Body[0]
}

func TestVariableDeclarationKinds(t *testing.T) {
	tests := []struct {
		input    string
		wantKind ast.VariableKind
	}{
		{"var x = 1;", ast.Var},
		{"let y = 2;", ast.Let},
		{"const z = 3;", ast.Const},
	}
	for i, tt := range tests {
		stmt := singleStmt(t, parseProgram(t, tt.input))
		decl, ok := stmt.(*ast.VariableDecl)
		if !ok {
			t.Fatalf("tests[%d] (%q): expected *ast.VariableDecl, got %T", i, tt.input, stmt)
		}
		if decl.Kind != tt.wantKind {
			t.Fatalf("tests[%d] (%q): expected kind %v, got %v", i, tt.input, tt.wantKind, decl.Kind)
		}
		if len(decl.Declarations) != 1 {
			t.Fatalf("tests[%d] (%q): expected 1 declarator, got %d", i, tt.input, len(decl.Declarations))
		}
	}
}

func TestDestructuringDeclaration(t *testing.T) {
	stmt := singleStmt(t, parseProgram(t, "let { a, b: c, ...rest } = obj;"))
	decl, ok := stmt.(*ast.VariableDecl)
	if !ok {
		t.Fatalf("expected *ast.VariableDecl, got %T", stmt)
	}
	pat, ok := decl.Declarations[0].Binding.(*ast.ObjectPattern)
	if !ok {
		t.Fatalf("expected an object pattern binding, got %T", decl.Declarations[0].Binding)
	}
	if len(pat.Properties) != 2 {
		t.Fatalf("expected 2 destructured properties, got %d", len(pat.Properties))
	}
	if pat.Rest == nil || pat.Rest.Name != "rest" {
		t.Fatalf("expected a rest binding named rest, got %+v", pat.Rest)
	}
}

func TestIfElseStatement(t *testing.T) {
	stmt := singleStmt(t, parseProgram(t, "if (a) { b; } else { c; }"))
	ifStmt, ok := stmt.(*ast.IfStmt)
	if !ok {
		t.Fatalf("expected *ast.IfStmt, got %T", stmt)
	}
	if ifStmt.Alternate == nil {
		t.Fatal("expected a non-nil else branch")
	}
}

func TestForStatementVariants(t *testing.T) {
	t.Run("classic for", func(t *testing.T) {
		stmt := singleStmt(t, parseProgram(t, "for (let i = 0; i < 10; i++) {}"))
		forStmt, ok := stmt.(*ast.ForStmt)
		if !ok {
			t.Fatalf("expected *ast.ForStmt, got %T", stmt)
		}
		if forStmt.Init == nil || forStmt.Init.Decl == nil {
			t.Fatal("expected Init to carry a declaration")
		}
	})

	t.Run("for-in", func(t *testing.T) {
		stmt := singleStmt(t, parseProgram(t, "for (const k in obj) {}"))
		if _, ok := stmt.(*ast.ForInStmt); !ok {
			t.Fatalf("expected *ast.ForInStmt, got %T", stmt)
		}
	})

	t.Run("for-of", func(t *testing.T) {
		stmt := singleStmt(t, parseProgram(t, "for (const v of items) {}"))
		if _, ok := stmt.(*ast.ForOfStmt); !ok {
			t.Fatalf("expected *ast.ForOfStmt, got %T", stmt)
		}
	})
}

func TestTryCatchFinally(t *testing.T) {
	stmt := singleStmt(t, parseProgram(t, "try { a; } catch (e) { b; } finally { c; }"))
	tryStmt, ok := stmt.(*ast.TryStmt)
	if !ok {
		t.Fatalf("expected *ast.TryStmt, got %T", stmt)
	}
	if tryStmt.Handler == nil || tryStmt.Handler.Param == nil {
		t.Fatal("expected a catch handler with a bound parameter")
	}
	if tryStmt.Finalizer == nil {
		t.Fatal("expected a finally block")
	}
}

func TestOptionalCatchBinding(t *testing.T) {
	stmt := singleStmt(t, parseProgram(t, "try { a; } catch { b; }"))
	tryStmt, ok := stmt.(*ast.TryStmt)
	if !ok {
		t.Fatalf("expected *ast.TryStmt, got %T", stmt)
	}
	if tryStmt.Handler == nil {
		t.Fatal("expected a catch handler")
	}
	if tryStmt.Handler.Param != nil {
		t.Fatalf("expected a nil Param for an optional catch binding, got %T", tryStmt.Handler.Param)
	}
}

func TestSwitchStatement(t *testing.T) {
	stmt := singleStmt(t, parseProgram(t, "switch (x) { case 1: a; break; default: b; }"))
	sw, ok := stmt.(*ast.SwitchStmt)
	if !ok {
		t.Fatalf("expected *ast.SwitchStmt, got %T", stmt)
	}
	if len(sw.Cases) != 2 {
		t.Fatalf("expected 2 cases, got %d", len(sw.Cases))
	}
	if sw.Cases[1].Test != nil {
		t.Fatalf("expected default case's Test to be nil, got %T", sw.Cases[1].Test)
	}
}

func TestLabeledBreakAndContinue(t *testing.T) {
	stmt := singleStmt(t, parseProgram(t, "outer: while (a) { break outer; }"))
	labeled, ok := stmt.(*ast.LabeledStmt)
	if !ok {
		t.Fatalf("expected *ast.LabeledStmt, got %T", stmt)
	}
	if labeled.Label.Name != "outer" {
		t.Fatalf("expected label %q, got %q", "outer", labeled.Label.Name)
	}
}

func TestWithStatement(t *testing.T) {
	stmt := singleStmt(t, parseProgram(t, "with (obj) { a; }"))
	if _, ok := stmt.(*ast.WithStmt); !ok {
		t.Fatalf("expected *ast.WithStmt, got %T", stmt)
	}
}

func TestDoWhileStatement(t *testing.T) {
	stmt := singleStmt(t, parseProgram(t, "do { a; } while (x);"))
	if _, ok := stmt.(*ast.DoWhileStmt); !ok {
		t.Fatalf("expected *ast.DoWhileStmt, got %T", stmt)
	}
}
