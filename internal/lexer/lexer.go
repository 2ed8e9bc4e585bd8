// Package lexer turns ECMAScript source text into a stream of tokens.
//
// # Unicode and byte positions
//
// The lexer decodes UTF-8 correctly but reports every Span as a byte
// offset, not a rune count, so spans compose directly with slicing the
// original source string.
//
// The lexer is mode-driven rather than fully context-free: `/` is
// ambiguous between division and the start of a RegExp literal, and `}`
// is ambiguous between a block/object punctuator and the resumption of a
// template literal. The parser tells the lexer which interpretation it
// wants via the Mode argument to NextToken, and re-lexes the cached
// lookahead when a tentative guess turns out wrong.
package lexer

import (
	"fmt"
	"io"
	"strings"
	"unicode"

	"github.com/ecmago/ecmaparse/internal/perrors"
	"github.com/ecmago/ecmaparse/pkg/token"
)

const (
	lineSeparator      = '\u2028'
	paragraphSeparator = '\u2029'
	zeroWidthNonJoiner = '\u200c'
	zeroWidthJoiner    = '\u200d'
	noBreakSpace       = '\u00a0'
	byteOrderMark      = '\ufeff'
)

// Lexer is a hand-written scanner over ECMAScript source text.
type Lexer struct {
	r    *reader
	line int

	// atLineStart is saved and restored with Mark/ResetTo. NextToken does
	// not read or set it: each token's FirstOnLine comes from the line
	// terminators skipTrivia reports.
	atLineStart bool

	trace            io.Writer
	preserveComments bool
}

// Option configures a Lexer. Options are applied during lexer creation via
// New(), following the functional-options style used across this module.
type Option func(*Lexer)

// WithTrace enables debug tracing of mode switches (regex/template
// re-lexes) to w. Useful for diagnosing an ambiguous `/` or `}`.
func WithTrace(w io.Writer) Option {
	return func(l *Lexer) { l.trace = w }
}

// WithPreserveComments records the preserve flag on the Lexer. NextToken
// does not consult it: comments are always skipped and no comment tokens
// are produced.
func WithPreserveComments(preserve bool) Option {
	return func(l *Lexer) { l.preserveComments = preserve }
}

// New creates a Lexer over input. A leading UTF-8 BOM is stripped.
func New(input string, opts ...Option) *Lexer {
	if len(input) >= 3 && input[0] == 0xEF && input[1] == 0xBB && input[2] == 0xBF {
		input = input[3:]
	}
	l := &Lexer{r: newReader(input), line: 1}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

func (l *Lexer) tracef(format string, args ...any) {
	if l.trace != nil {
		io.WriteString(l.trace, fmt.Sprintf(format, args...)+"\n")
	}
}

// Mark returns an opaque snapshot of the lexer's position, for the
// parser's cover-grammar speculative scans and for ReReadWithState.
func (l *Lexer) Mark() State { return l.snapshot() }

// ResetTo rewinds the lexer to a previously captured Mark.
func (l *Lexer) ResetTo(s State) { l.restore(s) }

// NextToken scans and returns the next token, interpreting `/` and `}`
// according to mode.
func (l *Lexer) NextToken(mode Mode) (token.Token, *perrors.Error) {
	firstOnLine, err := l.skipTrivia()
	if err != nil {
		return token.Token{}, err
	}

	start := l.r.byteAt()
	ch := l.r.ch

	if ch == eof {
		return token.Token{Type: token.EOF, Span: token.NewSpan(start, start), FirstOnLine: firstOnLine}, nil
	}

	if mode == ModeTemplateTail && ch == '}' {
		l.tracef("template continuation at byte %d", start)
		return l.scanTemplateContinuation(start, firstOnLine)
	}

	switch {
	case isIdentStart(ch), ch == '\\' && l.r.peek(1) == 'u':
		return l.scanIdentifierOrKeyword(start, firstOnLine)
	case isDigit(ch), ch == '.' && isDigit(l.r.peek(1)):
		return l.scanNumber(start, firstOnLine)
	case ch == '"' || ch == '\'':
		return l.scanString(start, firstOnLine, ch)
	case ch == '`':
		return l.scanTemplateStart(start, firstOnLine)
	case ch == '/' && mode == ModeRegexAllowed:
		l.tracef("regex literal at byte %d", start)
		return l.scanRegex(start, firstOnLine)
	default:
		return l.scanPunctuator(start, firstOnLine)
	}
}

// skipTrivia consumes whitespace and comments, reporting whether a line
// terminator was seen (needed for ASI and for the next token's
// FirstOnLine).
func (l *Lexer) skipTrivia() (bool, *perrors.Error) {
	sawLineTerm := false
	for {
		switch l.r.ch {
		case ' ', '\t', '\v', '\f', noBreakSpace, byteOrderMark:
			l.r.advance()
		case '\n':
			sawLineTerm = true
			l.line++
			l.r.advance()
		case '\r':
			sawLineTerm = true
			l.line++
			l.r.advance()
			l.r.match('\n')
		case lineSeparator, paragraphSeparator:
			sawLineTerm = true
			l.line++
			l.r.advance()
		case '/':
			if l.r.peek(1) == '/' {
				l.r.advance()
				l.r.advance()
				for l.r.ch != eof && !isLineTerminator(l.r.ch) {
					l.r.advance()
				}
				continue
			}
			if l.r.peek(1) == '*' {
				start := l.r.byteAt()
				l.r.advance()
				l.r.advance()
				closed := false
				for l.r.ch != eof {
					if l.r.ch == '*' && l.r.peek(1) == '/' {
						l.r.advance()
						l.r.advance()
						closed = true
						break
					}
					if isLineTerminator(l.r.ch) {
						sawLineTerm = true
						l.line++
					}
					l.r.advance()
				}
				if !closed {
					return sawLineTerm, perrors.NewLexerError(token.NewSpan(start, l.r.byteAt()), "unterminated block comment")
				}
				continue
			}
			return sawLineTerm, nil
		default:
			// The remaining WhiteSpace code points (U+1680, U+2000-U+200A,
			// U+202F, U+205F, U+3000, ...) all fall in Unicode category Zs;
			// noBreakSpace above is also Zs but is listed explicitly since
			// it is by far the most common of the bunch.
			if unicode.Is(unicode.Zs, l.r.ch) {
				l.r.advance()
				continue
			}
			return sawLineTerm, nil
		}
	}
}

func isLineTerminator(ch rune) bool {
	return ch == '\n' || ch == '\r' || ch == lineSeparator || ch == paragraphSeparator
}

func isDigit(ch rune) bool { return ch >= '0' && ch <= '9' }

func isIdentStart(ch rune) bool {
	return ch == '_' || ch == '$' || unicode.IsLetter(ch) || unicode.Is(unicode.Nl, ch)
}

func isIdentPart(ch rune) bool {
	return isIdentStart(ch) || unicode.IsDigit(ch) ||
		unicode.Is(unicode.Mn, ch) || unicode.Is(unicode.Mc, ch) ||
		unicode.Is(unicode.Pc, ch) || ch == zeroWidthNonJoiner || ch == zeroWidthJoiner
}

// scanIdentifierOrKeyword scans an IdentifierName, including any
// `\uXXXX`/`\u{X...}` UnicodeEscapeSequence within it (ECMA-262 §12.7).
// An identifier containing an escape is never recognized as a keyword,
// reserved word, or contextual keyword even if it decodes to one of
// their spellings — it can only ever be an IDENT.
func (l *Lexer) scanIdentifierOrKeyword(start uint32, firstOnLine bool) (token.Token, *perrors.Error) {
	var sb strings.Builder
	escaped := false
	for {
		if l.r.ch == '\\' && l.r.peek(1) == 'u' {
			escStart := l.r.byteAt()
			l.r.advance() // consume '\'
			decoded, _, err := l.decodeUnicodeEscape(escStart)
			if err != nil {
				return token.Token{}, err
			}
			r := []rune(decoded)[0]
			isFirst := sb.Len() == 0
			if (isFirst && !isIdentStart(r)) || (!isFirst && !isIdentPart(r)) {
				return token.Token{}, perrors.NewLexerError(token.NewSpan(escStart, l.r.byteAt()), "invalid identifier escape sequence")
			}
			sb.WriteRune(r)
			escaped = true
			continue
		}
		if sb.Len() == 0 {
			if !isIdentStart(l.r.ch) {
				break
			}
		} else if !isIdentPart(l.r.ch) {
			break
		}
		sb.WriteRune(l.r.ch)
		l.r.advance()
	}
	name := sb.String()
	typ := token.IDENT
	if !escaped {
		typ = token.LookupIdent(name)
	}
	return token.Token{
		Type:        typ,
		Span:        token.NewSpan(start, l.r.byteAt()),
		FirstOnLine: firstOnLine,
		Literal:     name,
		StringValue: name,
	}, nil
}
