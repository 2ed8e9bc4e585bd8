// Package perrors defines the closed diagnostic taxonomy shared by the
// lexer and parser, and renders it the way a compiler frontend does: a
// line:column header followed by a source line and a caret.
package perrors

import (
	"fmt"
	"strings"

	"github.com/ecmago/ecmaparse/pkg/token"
)

// Kind is the closed set of error categories the front end can produce.
// There is no panic-mode recovery: the parser returns the first *Error it
// meets and stops.
type Kind int

const (
	EndOfStream Kind = iota
	LexerErrorKind
	UnexpectedToken
	ExpectedOther
	ExpectedIdentifier
	UnexpectedIdent
	ForbiddenIdentifier
	SyntaxErrorKind
)

func (k Kind) String() string {
	switch k {
	case EndOfStream:
		return "EndOfStream"
	case LexerErrorKind:
		return "LexerError"
	case UnexpectedToken:
		return "UnexpectedToken"
	case ExpectedOther:
		return "ExpectedOther"
	case ExpectedIdentifier:
		return "ExpectedIdentifier"
	case UnexpectedIdent:
		return "UnexpectedIdent"
	case ForbiddenIdentifier:
		return "ForbiddenIdentifier"
	case SyntaxErrorKind:
		return "SyntaxError"
	default:
		return "Unknown"
	}
}

// Diagnostic is a secondary label pointing at a related span, e.g. "binding
// already declared here" attached to a DuplicateBinding SyntaxError.
type Diagnostic struct {
	Label string
	Span  token.Span
}

// Error is the single error type every package in this module returns.
// It always carries a Kind and the Span where the problem was found.
type Error struct {
	Kind       Kind
	Message    string
	Span       token.Span
	Diagnostic *Diagnostic
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func New(kind Kind, span token.Span, message string, args ...any) *Error {
	if len(args) > 0 {
		message = fmt.Sprintf(message, args...)
	}
	return &Error{Kind: kind, Span: span, Message: message}
}

func (e *Error) WithDiagnostic(label string, span token.Span) *Error {
	e.Diagnostic = &Diagnostic{Label: label, Span: span}
	return e
}

func NewEndOfStream(span token.Span) *Error {
	return New(EndOfStream, span, "unexpected end of input")
}

func NewLexerError(span token.Span, message string, args ...any) *Error {
	return New(LexerErrorKind, span, message, args...)
}

func NewUnexpectedToken(span token.Span, lexeme string) *Error {
	return New(UnexpectedToken, span, "unexpected token %q", lexeme)
}

func NewExpectedOther(span token.Span, expected, actual string) *Error {
	return New(ExpectedOther, span, "expected %s, found %s", expected, actual)
}

func NewExpectedIdentifier(span token.Span, actual string) *Error {
	return New(ExpectedIdentifier, span, "expected identifier, found %s", actual)
}

func NewUnexpectedIdent(span token.Span, name string) *Error {
	return New(UnexpectedIdent, span, "unexpected identifier %q", name)
}

func NewForbiddenIdentifier(span token.Span, name string) *Error {
	return New(ForbiddenIdentifier, span, "%q is not a valid binding name here", name)
}

func NewSyntaxError(span token.Span, message string, args ...any) *Error {
	return New(SyntaxErrorKind, span, message, args...)
}

// Position is a 1-indexed line/column pair, computed on demand from a byte
// offset — never stored on a Span, which stays a plain byte range.
type Position struct {
	Line   int
	Column int
}

// PositionOf derives the line/column of a byte offset within source.
func PositionOf(source string, offset uint32) Position {
	line, col := 1, 1
	for i := 0; i < int(offset) && i < len(source); i++ {
		if source[i] == '\n' {
			line++
			col = 1
		} else {
			col++
		}
	}
	return Position{Line: line, Column: col}
}

// Render formats err the way a compiler frontend does: a file:line:column
// header, the offending source line, and a caret under the error span.
func Render(source, filename string, err *Error) string {
	var sb strings.Builder

	pos := PositionOf(source, err.Span.Start)
	if filename != "" {
		sb.WriteString(fmt.Sprintf("error in %s:%d:%d: %s\n", filename, pos.Line, pos.Column, err.Message))
	} else {
		sb.WriteString(fmt.Sprintf("error at %d:%d: %s\n", pos.Line, pos.Column, err.Message))
	}

	line := sourceLine(source, pos.Line)
	if line != "" {
		lineNumStr := fmt.Sprintf("%4d | ", pos.Line)
		sb.WriteString(lineNumStr)
		sb.WriteString(line)
		sb.WriteString("\n")
		sb.WriteString(strings.Repeat(" ", len(lineNumStr)+pos.Column-1))
		sb.WriteString("^")
	}

	if err.Diagnostic != nil {
		dpos := PositionOf(source, err.Diagnostic.Span.Start)
		sb.WriteString(fmt.Sprintf("\nnote: %s (at %d:%d)", err.Diagnostic.Label, dpos.Line, dpos.Column))
	}

	return sb.String()
}

func sourceLine(source string, lineNum int) string {
	if source == "" {
		return ""
	}
	lines := strings.Split(source, "\n")
	if lineNum < 1 || lineNum > len(lines) {
		return ""
	}
	return lines[lineNum-1]
}
