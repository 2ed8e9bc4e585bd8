// Package ecmascript is the public facade over internal/lexer and
// internal/parser: the one import path a caller outside this module
// needs for parsing ECMAScript source text into an AST or a token
// stream. It holds no state beyond what each call receives.
package ecmascript

import (
	"io"

	"github.com/ecmago/ecmaparse/internal/lexer"
	"github.com/ecmago/ecmaparse/internal/parser"
	"github.com/ecmago/ecmaparse/internal/perrors"
	"github.com/ecmago/ecmaparse/pkg/ast"
	"github.com/ecmago/ecmaparse/pkg/token"
)

// SourceType selects which top-level grammar a Parse call uses.
type SourceType = parser.SourceType

const (
	Script  = parser.Script
	Module  = parser.Module
	Unknown = parser.Unknown
)

// Option configures the lexer a Parse/Tokenize call runs over.
type Option = lexer.Option

// WithTrace forwards mode-switch tracing (regex/template re-lexes) to w.
func WithTrace(w io.Writer) Option { return lexer.WithTrace(w) }

// ParseError is the facade's error type: it renders like a compiler
// frontend (line:column, source line, caret) via Error(), while still
// exposing the span and kind for callers that want to inspect them.
type ParseError struct {
	Source   string
	Filename string
	Kind     perrors.Kind
	Span     token.Span
	perr     *perrors.Error
}

func (e *ParseError) Error() string { return perrors.Render(e.Source, e.Filename, e.perr) }

// Unwrap exposes the underlying perrors.Error for errors.As callers.
func (e *ParseError) Unwrap() error { return e.perr }

func wrapError(source, filename string, err *perrors.Error) *ParseError {
	return &ParseError{Source: source, Filename: filename, Kind: err.Kind, Span: err.Span, perr: err}
}

// New parses source as a complete program. typ selects Script, Module,
// or Unknown (Module when the source has a top-level import or export,
// Script otherwise).
func New(source string, typ SourceType) (*ast.Program, error) {
	prog, err := parser.ParseProgram(source, typ)
	if err != nil {
		return nil, wrapError(source, "", err)
	}
	return prog, nil
}

// ParseFile is New with a filename recorded for error rendering.
func ParseFile(source, filename string, typ SourceType) (*ast.Program, error) {
	prog, err := parser.ParseProgram(source, typ)
	if err != nil {
		return nil, wrapError(source, filename, err)
	}
	return prog, nil
}

// ParseExpression parses source as a single standalone expression.
func ParseExpression(source string) (ast.Expr, error) {
	expr, err := parser.ParseExpr(source)
	if err != nil {
		return nil, wrapError(source, "", err)
	}
	return expr, nil
}
