package lexer

import (
	"testing"

	"github.com/ecmago/ecmaparse/pkg/token"
)

func TestStringLiterals(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"simple single quoted", `'hello'`, "hello"},
		{"simple double quoted", `"world"`, "world"},
		{"empty string", `''`, ""},
		{"string with spaces", `'hello world'`, "hello world"},
		{"newline escape", `'a\nb'`, "a\nb"},
		{"tab escape", `'a\tb'`, "a\tb"},
		{"null escape", `'a\0b'`, "a\x00b"},
		{"hex escape", `'\x41'`, "A"},
		{"unicode escape", `'\u0041'`, "A"},
		{"unicode brace escape", `'\u{41}'`, "A"},
		{"legacy octal escape", `'\101'`, "A"},
		{"line continuation", "'a\\\nb'", "ab"},
		{"unrecognized escape passes through", `'\q'`, "q"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := New(tt.input)
			tok, err := l.NextToken(ModeNormal)
			if err != nil {
				t.Fatalf("unexpected lex error: %v", err)
			}
			if tok.Type != token.STRING {
				t.Fatalf("expected STRING, got %v", tok.Type)
			}
			if tok.StringValue != tt.expected {
				t.Fatalf("StringValue wrong. expected=%q, got=%q", tt.expected, tok.StringValue)
			}
		})
	}
}

func TestStringUnterminated(t *testing.T) {
	tests := []string{
		`'hello`,
		"'hello\n'",
		`"world`,
	}
	for _, input := range tests {
		l := New(input)
		if _, err := l.NextToken(ModeNormal); err == nil {
			t.Fatalf("input %q: expected unterminated string literal error", input)
		}
	}
}

func TestStringLiteralPreservesRawLiteral(t *testing.T) {
	l := New(`'a\nb'`)
	tok, err := l.NextToken(ModeNormal)
	if err != nil {
		t.Fatalf("unexpected lex error: %v", err)
	}
	if tok.Literal != `'a\nb'` {
		t.Fatalf("Literal wrong. expected=%q, got=%q", `'a\nb'`, tok.Literal)
	}
}
