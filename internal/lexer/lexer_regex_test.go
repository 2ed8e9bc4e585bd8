package lexer

import (
	"testing"

	"github.com/ecmago/ecmaparse/pkg/token"
)

func TestRegexLiterals(t *testing.T) {
	tests := []struct {
		input string
		body  string
		flags string
	}{
		{"/abc/", "abc", ""},
		{"/abc/gi", "abc", "gi"},
		{`/a\/b/`, `a\/b`, ""},
		{"/[a/b]/", "[a/b]", ""},
		{"/(?:x)+/y", "(?:x)+", "y"},
	}

	for i, tt := range tests {
		l := New(tt.input)
		tok, err := l.NextToken(ModeRegexAllowed)
		if err != nil {
			t.Fatalf("tests[%d] (%q): unexpected lex error: %v", i, tt.input, err)
		}
		if tok.Type != token.REGEXP {
			t.Fatalf("tests[%d] (%q): expected REGEXP, got %v", i, tt.input, tok.Type)
		}
		if tok.StringValue != tt.body {
			t.Fatalf("tests[%d] (%q): body wrong. expected=%q, got=%q", i, tt.input, tt.body, tok.StringValue)
		}
		if tok.RegexFlags != tt.flags {
			t.Fatalf("tests[%d] (%q): flags wrong. expected=%q, got=%q", i, tt.input, tt.flags, tok.RegexFlags)
		}
	}
}

func TestRegexUnterminated(t *testing.T) {
	tests := []string{
		"/abc",
		"/abc\n/",
	}
	for _, input := range tests {
		l := New(input)
		if _, err := l.NextToken(ModeRegexAllowed); err == nil {
			t.Fatalf("input %q: expected unterminated regular expression literal error", input)
		}
	}
}

func TestRegexSlashInsideCharClassNotTerminator(t *testing.T) {
	l := New("/[/]/")
	tok, err := l.NextToken(ModeRegexAllowed)
	if err != nil {
		t.Fatalf("unexpected lex error: %v", err)
	}
	if tok.StringValue != "[/]" {
		t.Fatalf("expected body %q, got %q", "[/]", tok.StringValue)
	}
}
