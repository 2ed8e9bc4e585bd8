package lexer

import (
	"strconv"
	"strings"

	"github.com/ecmago/ecmaparse/internal/perrors"
	"github.com/ecmago/ecmaparse/pkg/token"
)

// scanString lexes a single- or double-quoted StringLiteral, decoding all
// escape sequences (\n, \t, \xHH, \uHHHH, \u{H...}, octal legacy escapes,
// line continuations) into StringValue. Literal keeps the raw source text
// including the surrounding quotes.
func (l *Lexer) scanString(start uint32, firstOnLine bool, quote rune) (token.Token, *perrors.Error) {
	raw := strings.Builder{}
	raw.WriteRune(quote)
	l.r.advance()

	var value strings.Builder
	for {
		switch l.r.ch {
		case eof:
			return token.Token{}, perrors.NewLexerError(token.NewSpan(start, l.r.byteAt()), "unterminated string literal")
		case quote:
			raw.WriteRune(l.r.ch)
			l.r.advance()
			return token.Token{
				Type:        token.STRING,
				Span:        token.NewSpan(start, l.r.byteAt()),
				FirstOnLine: firstOnLine,
				Literal:     raw.String(),
				StringValue: value.String(),
			}, nil
		case '\n', '\r':
			return token.Token{}, perrors.NewLexerError(token.NewSpan(start, l.r.byteAt()), "unterminated string literal")
		case '\\':
			raw.WriteRune(l.r.ch)
			l.r.advance()
			decoded, rawEsc, err := l.decodeEscape()
			if err != nil {
				return token.Token{}, err
			}
			raw.WriteString(rawEsc)
			value.WriteString(decoded)
		default:
			raw.WriteRune(l.r.ch)
			value.WriteRune(l.r.ch)
			l.r.advance()
		}
	}
}

// decodeEscape decodes the body of a `\...` escape sequence, assuming the
// backslash itself has already been consumed. It returns the decoded
// value, the raw escape-body text (for Literal reconstruction), and any
// lexer error.
func (l *Lexer) decodeEscape() (string, string, *perrors.Error) {
	start := l.r.byteAt()
	ch := l.r.ch
	switch ch {
	case 'n':
		l.r.advance()
		return "\n", "n", nil
	case 't':
		l.r.advance()
		return "\t", "t", nil
	case 'r':
		l.r.advance()
		return "\r", "r", nil
	case 'b':
		l.r.advance()
		return "\b", "b", nil
	case 'f':
		l.r.advance()
		return "\f", "f", nil
	case 'v':
		l.r.advance()
		return "\v", "v", nil
	case '0':
		if !isDigit(l.r.peek(1)) {
			l.r.advance()
			return "\x00", "0", nil
		}
		return l.decodeLegacyOctalEscape()
	case '1', '2', '3', '4', '5', '6', '7':
		return l.decodeLegacyOctalEscape()
	case '\n':
		l.r.advance()
		return "", "\n", nil
	case '\r':
		l.r.advance()
		l.r.match('\n')
		return "", "\r\n", nil
	case lineSeparator, paragraphSeparator:
		r := l.r.ch
		l.r.advance()
		return "", string(r), nil
	case 'x':
		l.r.advance()
		var sb strings.Builder
		for i := 0; i < 2; i++ {
			if !isHexDigit(l.r.ch) {
				return "", "", perrors.NewLexerError(token.NewSpan(start, l.r.byteAt()), "invalid hex escape")
			}
			sb.WriteRune(l.r.ch)
			l.r.advance()
		}
		v, _ := strconv.ParseInt(sb.String(), 16, 32)
		return string(rune(v)), "x" + sb.String(), nil
	case 'u':
		return l.decodeUnicodeEscape(start)
	default:
		r := l.r.ch
		l.r.advance()
		return string(r), string(r), nil
	}
}

func (l *Lexer) decodeLegacyOctalEscape() (string, string, *perrors.Error) {
	var sb strings.Builder
	for i := 0; i < 3 && isOctalDigit(l.r.ch); i++ {
		sb.WriteRune(l.r.ch)
		l.r.advance()
	}
	v, _ := strconv.ParseInt(sb.String(), 8, 32)
	return string(rune(v)), sb.String(), nil
}

func (l *Lexer) decodeUnicodeEscape(start uint32) (string, string, *perrors.Error) {
	l.r.advance() // consume 'u'
	if l.r.ch == '{' {
		l.r.advance()
		var sb strings.Builder
		for l.r.ch != '}' {
			if !isHexDigit(l.r.ch) {
				return "", "", perrors.NewLexerError(token.NewSpan(start, l.r.byteAt()), "invalid unicode escape")
			}
			sb.WriteRune(l.r.ch)
			l.r.advance()
		}
		l.r.advance() // consume '}'
		v, err := strconv.ParseInt(sb.String(), 16, 32)
		if err != nil || v > 0x10FFFF {
			return "", "", perrors.NewLexerError(token.NewSpan(start, l.r.byteAt()), "code point out of range")
		}
		return string(rune(v)), "u{" + sb.String() + "}", nil
	}

	var sb strings.Builder
	for i := 0; i < 4; i++ {
		if !isHexDigit(l.r.ch) {
			return "", "", perrors.NewLexerError(token.NewSpan(start, l.r.byteAt()), "invalid unicode escape")
		}
		sb.WriteRune(l.r.ch)
		l.r.advance()
	}
	v, _ := strconv.ParseInt(sb.String(), 16, 32)
	return string(rune(v)), "u" + sb.String(), nil
}
