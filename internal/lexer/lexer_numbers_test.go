package lexer

import (
	"testing"

	"github.com/ecmago/ecmaparse/pkg/token"
)

func TestNumberLiterals(t *testing.T) {
	tests := []struct {
		input       string
		base        int
		legacyOctal bool
		bigInt      bool
	}{
		{"123", 10, false, false},
		{"3.14", 10, false, false},
		{"1.5e10", 10, false, false},
		{"2.0E+3", 10, false, false},
		{"0x1F", 16, false, false},
		{"0o17", 8, false, false},
		{"0b101", 2, false, false},
		{"0777", 8, true, false},
		{"123n", 10, false, true},
		{"1_000", 10, false, false},
	}

	for i, tt := range tests {
		l := New(tt.input)
		tok, err := l.NextToken(ModeNormal)
		if err != nil {
			t.Fatalf("tests[%d] (%q): unexpected lex error: %v", i, tt.input, err)
		}
		if tok.Type != token.NUMBER {
			t.Fatalf("tests[%d] (%q): expected NUMBER, got %v", i, tt.input, tok.Type)
		}
		if tok.NumberBase != tt.base {
			t.Fatalf("tests[%d] (%q): expected base %d, got %d", i, tt.input, tt.base, tok.NumberBase)
		}
		if tok.LegacyOctal != tt.legacyOctal {
			t.Fatalf("tests[%d] (%q): expected legacyOctal=%v, got %v", i, tt.input, tt.legacyOctal, tok.LegacyOctal)
		}
		if tok.BigInt != tt.bigInt {
			t.Fatalf("tests[%d] (%q): expected bigInt=%v, got %v", i, tt.input, tt.bigInt, tok.BigInt)
		}
	}
}

func TestNumberImmediatelyFollowedByIdentifierIsAnError(t *testing.T) {
	l := New("123abc")
	if _, err := l.NextToken(ModeNormal); err == nil {
		t.Fatal("expected a lexer error for a numeric literal immediately followed by an identifier")
	}
}
