package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/ecmago/ecmaparse/pkg/token"
)

// tokenLine is the JSON-friendly shape lex --json prints, one per line.
type tokenLine struct {
	Type    string `json:"type"`
	Literal string `json:"literal,omitempty"`
	Start   uint32 `json:"start"`
	End     uint32 `json:"end"`
}

// printToken writes tok to w in the plain-text format lex uses by
// default: [TYPE] "literal", followed by @start:end when showPos is set.
func printToken(w io.Writer, tok token.Token, showPos bool) {
	var line string
	if tok.IsEOF() {
		line = fmt.Sprintf("[%-14s] EOF", tok.Type.String())
	} else if tok.Literal == "" {
		line = fmt.Sprintf("[%-14s] %s", tok.Type.String(), tok.Type.String())
	} else {
		line = fmt.Sprintf("[%-14s] %q", tok.Type.String(), tok.Literal)
	}
	if showPos {
		line += fmt.Sprintf(" @%d:%d", tok.Span.Start, tok.Span.End)
	}
	fmt.Fprintln(w, line)
}

// printTokenJSON writes tok as one JSON object per line.
func printTokenJSON(w io.Writer, tok token.Token) error {
	enc := json.NewEncoder(w)
	return enc.Encode(tokenLine{
		Type:    tok.Type.String(),
		Literal: tok.Literal,
		Start:   tok.Span.Start,
		End:     tok.Span.End,
	})
}
