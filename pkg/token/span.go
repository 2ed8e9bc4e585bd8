// Package token defines the lexical token vocabulary of the ECMAScript
// front end: token kinds, the fixed keyword and punctuator tables, and the
// Token and Span types that the lexer and parser exchange.
package token

import "fmt"

// Span is a half-open byte-offset range [Start, End) into the original
// source text. Every AST node and every Token carries one.
type Span struct {
	Start uint32
	End   uint32
}

// NewSpan builds a Span from two byte offsets.
func NewSpan(start, end uint32) Span {
	return Span{Start: start, End: end}
}

// Covers reports whether s fully contains other, i.e. other is a valid
// child span of s.
func (s Span) Covers(other Span) bool {
	return s.Start <= other.Start && other.End <= s.End
}

// Union returns the smallest span covering both s and other.
func (s Span) Union(other Span) Span {
	start, end := s.Start, s.End
	if other.Start < start {
		start = other.Start
	}
	if other.End > end {
		end = other.End
	}
	return Span{Start: start, End: end}
}

func (s Span) String() string {
	return fmt.Sprintf("%d:%d", s.Start, s.End)
}
