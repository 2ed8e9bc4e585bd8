package lexer

import (
	"strings"

	"github.com/ecmago/ecmaparse/internal/perrors"
	"github.com/ecmago/ecmaparse/pkg/token"
)

// scanRegex lexes a RegExp literal, called only when the parser has set
// ModeRegexAllowed because the grammar position cannot be a division
// operator (per ECMA-262 §12.9.1's trigger table, applied by the caller).
func (l *Lexer) scanRegex(start uint32, firstOnLine bool) (token.Token, *perrors.Error) {
	var body strings.Builder
	l.r.advance() // consume opening /

	inClass := false
	for {
		switch l.r.ch {
		case eof, '\n', '\r':
			return token.Token{}, perrors.NewLexerError(token.NewSpan(start, l.r.byteAt()), "unterminated regular expression literal")
		case '\\':
			body.WriteRune(l.r.ch)
			l.r.advance()
			if l.r.ch == eof || isLineTerminator(l.r.ch) {
				return token.Token{}, perrors.NewLexerError(token.NewSpan(start, l.r.byteAt()), "unterminated regular expression literal")
			}
			body.WriteRune(l.r.ch)
			l.r.advance()
		case '[':
			inClass = true
			body.WriteRune(l.r.ch)
			l.r.advance()
		case ']':
			inClass = false
			body.WriteRune(l.r.ch)
			l.r.advance()
		case '/':
			if inClass {
				body.WriteRune(l.r.ch)
				l.r.advance()
				continue
			}
			l.r.advance()
			var flags strings.Builder
			for isIdentPart(l.r.ch) {
				flags.WriteRune(l.r.ch)
				l.r.advance()
			}
			return token.Token{
				Type:        token.REGEXP,
				Span:        token.NewSpan(start, l.r.byteAt()),
				FirstOnLine: firstOnLine,
				Literal:     body.String(),
				StringValue: body.String(),
				RegexFlags:  flags.String(),
			}, nil
		default:
			body.WriteRune(l.r.ch)
			l.r.advance()
		}
	}
}
