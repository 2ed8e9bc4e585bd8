package lexer

import (
	"testing"

	"github.com/ecmago/ecmaparse/pkg/token"
)

func TestTemplateNoSubstitution(t *testing.T) {
	l := New("`hello world`")
	tok, err := l.NextToken(ModeNormal)
	if err != nil {
		t.Fatalf("unexpected lex error: %v", err)
	}
	if tok.Type != token.TEMPLATE {
		t.Fatalf("expected TEMPLATE, got %v", tok.Type)
	}
	if tok.StringValue != "hello world" {
		t.Fatalf("StringValue wrong. expected=%q, got=%q", "hello world", tok.StringValue)
	}
}

func TestTemplateHeadMidTail(t *testing.T) {
	// `a${1}b${2}c`
	l := New("`a${1}b${2}c`")

	head, err := l.NextToken(ModeNormal)
	if err != nil {
		t.Fatalf("unexpected lex error: %v", err)
	}
	if head.Type != token.TEMPLATE_HEAD || head.StringValue != "a" {
		t.Fatalf("head wrong: type=%v value=%q", head.Type, head.StringValue)
	}

	num1, err := l.NextToken(ModeNormal)
	if err != nil || num1.Type != token.NUMBER || num1.Literal != "1" {
		t.Fatalf("expected NUMBER 1 inside substitution, got %v %q (err=%v)", num1.Type, num1.Literal, err)
	}

	mid, err := l.NextToken(ModeTemplateTail)
	if err != nil {
		t.Fatalf("unexpected lex error: %v", err)
	}
	if mid.Type != token.TEMPLATE_MID || mid.StringValue != "b" {
		t.Fatalf("mid wrong: type=%v value=%q", mid.Type, mid.StringValue)
	}

	num2, err := l.NextToken(ModeNormal)
	if err != nil || num2.Type != token.NUMBER || num2.Literal != "2" {
		t.Fatalf("expected NUMBER 2 inside substitution, got %v %q (err=%v)", num2.Type, num2.Literal, err)
	}

	tail, err := l.NextToken(ModeTemplateTail)
	if err != nil {
		t.Fatalf("unexpected lex error: %v", err)
	}
	if tail.Type != token.TEMPLATE_TAIL || tail.StringValue != "c" {
		t.Fatalf("tail wrong: type=%v value=%q", tail.Type, tail.StringValue)
	}
}

func TestTemplateCRLFNormalized(t *testing.T) {
	l := New("`a\r\nb`")
	tok, err := l.NextToken(ModeNormal)
	if err != nil {
		t.Fatalf("unexpected lex error: %v", err)
	}
	if tok.StringValue != "a\nb" {
		t.Fatalf("expected CRLF normalized to LF, got %q", tok.StringValue)
	}
}

func TestTemplateUnterminated(t *testing.T) {
	l := New("`hello")
	if _, err := l.NextToken(ModeNormal); err == nil {
		t.Fatal("expected unterminated template literal error")
	}
}

func TestTemplateDollarWithoutBraceIsLiteral(t *testing.T) {
	l := New("`price: $5`")
	tok, err := l.NextToken(ModeNormal)
	if err != nil {
		t.Fatalf("unexpected lex error: %v", err)
	}
	if tok.Type != token.TEMPLATE || tok.StringValue != "price: $5" {
		t.Fatalf("expected literal $ passthrough, got type=%v value=%q", tok.Type, tok.StringValue)
	}
}
