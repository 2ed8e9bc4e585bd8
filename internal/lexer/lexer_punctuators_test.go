package lexer

import (
	"testing"

	"github.com/ecmago/ecmaparse/pkg/token"
)

// TestMaximalMunch checks that punctuators sharing a prefix always lex as
// the longest match, e.g. `>>>=` never splits into `>>` + `>=`.
func TestMaximalMunch(t *testing.T) {
	tests := []struct {
		input string
		want  token.Type
	}{
		{"=>", token.ARROW},
		{"===", token.EQ_STRICT},
		{"==", token.EQ},
		{"=", token.ASSIGN},
		{"!==", token.NOT_EQ_STRICT},
		{"!=", token.NOT_EQ},
		{">>>=", token.USHR_ASSIGN},
		{">>>", token.USHR},
		{">>=", token.SHR_ASSIGN},
		{">>", token.SHR},
		{">=", token.GT_EQ},
		{">", token.GT},
		{"<<=", token.SHL_ASSIGN},
		{"<<", token.SHL},
		{"<=", token.LT_EQ},
		{"&&=", token.AMP_AMP_ASSIGN},
		{"&&", token.AMP_AMP},
		{"&=", token.AMP_ASSIGN},
		{"&", token.AMP},
		{"||=", token.PIPE_PIPE_ASSIGN},
		{"||", token.PIPE_PIPE},
		{"??=", token.QUESTION_QUESTION_ASSIGN},
		{"??", token.QUESTION_QUESTION},
		{"?.", token.QUESTION_DOT},
		{"...", token.ELLIPSIS},
		{"**=", token.STAR_STAR_ASSIGN},
		{"**", token.STAR_STAR},
	}

	for i, tt := range tests {
		l := New(tt.input)
		tok, err := l.NextToken(ModeNormal)
		if err != nil {
			t.Fatalf("tests[%d] (%q): unexpected lex error: %v", i, tt.input, err)
		}
		if tok.Type != tt.want {
			t.Fatalf("tests[%d] (%q): expected %v, got %v (literal %q)", i, tt.input, tt.want, tok.Type, tok.Literal)
		}
		if tok.Literal != tt.input {
			t.Fatalf("tests[%d] (%q): expected literal to consume whole input, got %q", i, tt.input, tok.Literal)
		}
	}
}

// TestQuestionDotBeatsSeparateQuestionAndDot checks that `?.` is scanned
// as one QUESTION_DOT punctuator rather than QUESTION followed by DOT,
// even when a digit follows (the grammar-level ambiguity with a ternary's
// `?` immediately preceding a numeric member access is the parser's
// problem, not the lexer's).
func TestQuestionDotBeatsSeparateQuestionAndDot(t *testing.T) {
	l := New("?.3")
	first, err := l.NextToken(ModeNormal)
	if err != nil {
		t.Fatalf("unexpected lex error: %v", err)
	}
	if first.Type != token.QUESTION_DOT {
		t.Fatalf("expected QUESTION_DOT, got %v", first.Type)
	}
	second, err := l.NextToken(ModeNormal)
	if err != nil {
		t.Fatalf("unexpected lex error: %v", err)
	}
	if second.Type != token.NUMBER || second.Literal != "3" {
		t.Fatalf("expected NUMBER 3 after ?., got %v %q", second.Type, second.Literal)
	}
}

func TestAtSignIsPunctuator(t *testing.T) {
	l := New("@@@")
	tok, err := l.NextToken(ModeNormal)
	if err != nil {
		t.Fatalf("unexpected lex error for '@': %v", err)
	}
	if tok.Type != token.AT {
		t.Fatalf("expected AT, got %v", tok.Type)
	}
}

func TestTrulyUnexpectedCharacter(t *testing.T) {
	l := New("\x01")
	if _, err := l.NextToken(ModeNormal); err == nil {
		t.Fatal("expected an unexpected-character lex error")
	}
}
