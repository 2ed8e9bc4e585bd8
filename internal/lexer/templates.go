package lexer

import (
	"strings"

	"github.com/ecmago/ecmaparse/internal/perrors"
	"github.com/ecmago/ecmaparse/pkg/token"
)

// scanTemplateStart lexes from an opening backtick. It produces a TEMPLATE
// token (no substitutions) if the template closes with another backtick,
// or a TEMPLATE_HEAD token if it runs into `${`, in which case the parser
// must parse an Expression and then call NextToken with ModeTemplateTail
// to resume scanning the next chunk via scanTemplateContinuation.
func (l *Lexer) scanTemplateStart(start uint32, firstOnLine bool) (token.Token, *perrors.Error) {
	l.r.advance() // consume opening `
	return l.scanTemplateChunk(start, firstOnLine, token.TEMPLATE, token.TEMPLATE_HEAD)
}

// scanTemplateContinuation resumes a template literal body after a `}`
// that closes a `${...}` substitution.
func (l *Lexer) scanTemplateContinuation(start uint32, firstOnLine bool) (token.Token, *perrors.Error) {
	l.r.advance() // consume closing }
	return l.scanTemplateChunk(start, firstOnLine, token.TEMPLATE_TAIL, token.TEMPLATE_MID)
}

// scanTemplateChunk scans up to the next backtick (producing closeKind) or
// the next `${` (producing openKind), decoding escapes the same way string
// literals do.
func (l *Lexer) scanTemplateChunk(start uint32, firstOnLine bool, closeKind, openKind token.Type) (token.Token, *perrors.Error) {
	var raw, value strings.Builder
	for {
		switch l.r.ch {
		case eof:
			return token.Token{}, perrors.NewLexerError(token.NewSpan(start, l.r.byteAt()), "unterminated template literal")
		case '`':
			l.r.advance()
			return token.Token{
				Type:        closeKind,
				Span:        token.NewSpan(start, l.r.byteAt()),
				FirstOnLine: firstOnLine,
				Literal:     raw.String(),
				StringValue: value.String(),
			}, nil
		case '$':
			if l.r.peek(1) == '{' {
				l.r.advance()
				l.r.advance()
				return token.Token{
					Type:        openKind,
					Span:        token.NewSpan(start, l.r.byteAt()),
					FirstOnLine: firstOnLine,
					Literal:     raw.String(),
					StringValue: value.String(),
				}, nil
			}
			raw.WriteRune('$')
			value.WriteRune('$')
			l.r.advance()
		case '\\':
			raw.WriteRune('\\')
			l.r.advance()
			decoded, rawEsc, err := l.decodeEscape()
			if err != nil {
				return token.Token{}, err
			}
			raw.WriteString(rawEsc)
			value.WriteString(decoded)
		case '\r':
			// Template literals normalize CRLF/CR to LF (ECMA-262 §12.8.6).
			raw.WriteRune('\n')
			value.WriteRune('\n')
			l.line++
			l.r.advance()
			l.r.match('\n')
		default:
			if l.r.ch == '\n' {
				l.line++
			}
			raw.WriteRune(l.r.ch)
			value.WriteRune(l.r.ch)
			l.r.advance()
		}
	}
}
