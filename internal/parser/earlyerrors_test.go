package parser

import "testing"

func TestInvalidAssignmentTargets(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"literal on the left", "1 = 2;"},
		{"call expression on the left", "f() = 2;"},
		{"binary expression on the left", "a + b = 2;"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseProgram(tt.input, Script); err == nil {
				t.Fatalf("input %q: expected a syntax error, got none", tt.input)
			}
		})
	}
}

func TestValidAssignmentTargets(t *testing.T) {
	tests := []string{
		"a = 2;",
		"a.b = 2;",
		"[a, b] = [1, 2];",
		"({ a, b } = obj);",
		"(a) = 2;",
	}
	for _, input := range tests {
		if _, err := ParseProgram(input, Script); err != nil {
			t.Fatalf("input %q: unexpected parse error: %v", input, err)
		}
	}
}

func TestDuplicateBindingInDeclarationList(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"duplicate let binding", "let a, a = 1;"},
		{"duplicate const binding", "const a = 1, a = 2;"},
		{"duplicate name across destructured properties", "let { a, b: a } = obj;"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseProgram(tt.input, Script); err == nil {
				t.Fatalf("input %q: expected a duplicate-binding error, got none", tt.input)
			}
		})
	}
}

func TestVarAllowsRedeclaration(t *testing.T) {
	if _, err := ParseProgram("var a, a = 1;", Script); err != nil {
		t.Fatalf("unexpected parse error for var redeclaration: %v", err)
	}
}

func TestDestructuringDeclarationRequiresInitializer(t *testing.T) {
	tests := []string{
		"let { a };",
		"const [a, b];",
	}
	for _, input := range tests {
		if _, err := ParseProgram(input, Script); err == nil {
			t.Fatalf("input %q: expected a missing-initializer error, got none", input)
		}
	}
}

func TestAccessorArity(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"getter with a parameter", "class C { get x(v) {} }"},
		{"setter with no parameters", "class C { set x() {} }"},
		{"setter with two parameters", "class C { set x(a, b) {} }"},
		{"setter with a rest parameter", "class C { set x(...rest) {} }"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseProgram(tt.input, Script); err == nil {
				t.Fatalf("input %q: expected an accessor-arity error, got none", tt.input)
			}
		})
	}
}

func TestAccessorArityAccepted(t *testing.T) {
	tests := []string{
		"class C { get x() {} }",
		"class C { set x(v) {} }",
	}
	for _, input := range tests {
		if _, err := ParseProgram(input, Script); err != nil {
			t.Fatalf("input %q: unexpected parse error: %v", input, err)
		}
	}
}

func TestDuplicateParameterNamesRejected(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"strict function body", `function f(a, a) { "use strict"; }`},
		{"non-simple list via default", "function f(a, a = 1) {}"},
		{"non-simple list via destructuring", "function f([a], a) {}"},
		{"non-simple list via rest", "function f(a, ...a) {}"},
		{"arrow function, always checked", "(a, a) => a;"},
		{"object method, always checked", "const o = { m(a, a) {} };"},
		{"class method, always checked", "class C { m(a, a) {} }"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseProgram(tt.input, Script); err == nil {
				t.Fatalf("input %q: expected a duplicate-parameter error, got none", tt.input)
			}
		})
	}
}

func TestDuplicateParameterNamesAllowedInSloppyMode(t *testing.T) {
	if _, err := ParseProgram("function f(a, a) {}", Script); err != nil {
		t.Fatalf("unexpected parse error for a sloppy-mode simple parameter list: %v", err)
	}
}

func TestStrictDeleteOfUnqualifiedIdentifier(t *testing.T) {
	if _, err := ParseProgram(`"use strict"; delete x;`, Script); err == nil {
		t.Fatal("expected a syntax error deleting an unqualified identifier in strict mode")
	}
	if _, err := ParseProgram(`delete x;`, Script); err != nil {
		t.Fatalf("unexpected parse error for delete in sloppy mode: %v", err)
	}
	if _, err := ParseProgram(`"use strict"; delete x.y;`, Script); err != nil {
		t.Fatalf("unexpected parse error deleting a member expression in strict mode: %v", err)
	}
}

func TestStrictEvalArgumentsAsAssignmentOrUpdateTarget(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"eval assignment", `"use strict"; eval = 1;`},
		{"arguments compound assignment", `"use strict"; arguments += 1;`},
		{"eval prefix update", `"use strict"; ++eval;`},
		{"arguments postfix update", `"use strict"; arguments++;`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseProgram(tt.input, Script); err == nil {
				t.Fatalf("input %q: expected a syntax error, got none", tt.input)
			}
		})
	}
}

func TestEvalArgumentsAssignmentAllowedInSloppyMode(t *testing.T) {
	if _, err := ParseProgram("eval = 1; arguments++;", Script); err != nil {
		t.Fatalf("unexpected parse error in sloppy mode: %v", err)
	}
}
