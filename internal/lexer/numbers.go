package lexer

import (
	"strings"

	"github.com/ecmago/ecmaparse/internal/perrors"
	"github.com/ecmago/ecmaparse/pkg/token"
)

// scanNumber lexes every ECMAScript numeric literal form: decimal (with
// optional fraction/exponent), binary (0b), octal (0o), hex (0x), legacy
// octal (a bare 0-leading digit run), and an optional trailing BigInt `n`
// suffix. Numeric separators (1_000) are accepted between digits and
// stripped from Literal, and a BigInt `n` suffix is left out of Literal
// (the BigInt flag records it). StringValue is left unset for numbers;
// callers re-parse Literal in the radix given by NumberBase.
func (l *Lexer) scanNumber(start uint32, firstOnLine bool) (token.Token, *perrors.Error) {
	var sb strings.Builder
	base := 10
	legacyOctal := false

	if l.r.ch == '0' && (l.r.peek(1) == 'x' || l.r.peek(1) == 'X') {
		sb.WriteRune(l.r.ch)
		l.r.advance()
		sb.WriteRune(l.r.ch)
		l.r.advance()
		base = 16
		l.scanDigits(&sb, isHexDigit)
	} else if l.r.ch == '0' && (l.r.peek(1) == 'o' || l.r.peek(1) == 'O') {
		sb.WriteRune(l.r.ch)
		l.r.advance()
		sb.WriteRune(l.r.ch)
		l.r.advance()
		base = 8
		l.scanDigits(&sb, isOctalDigit)
	} else if l.r.ch == '0' && (l.r.peek(1) == 'b' || l.r.peek(1) == 'B') {
		sb.WriteRune(l.r.ch)
		l.r.advance()
		sb.WriteRune(l.r.ch)
		l.r.advance()
		base = 2
		l.scanDigits(&sb, isBinaryDigit)
	} else if l.r.ch == '0' && isOctalDigit(l.r.peek(1)) {
		// Legacy octal: 0 followed directly by octal digits, no 'o'.
		base = 8
		legacyOctal = true
		sb.WriteRune(l.r.ch)
		l.r.advance()
		l.scanDigits(&sb, isOctalDigit)
	} else {
		l.scanDigits(&sb, isDigit)
		if l.r.ch == '.' {
			sb.WriteRune(l.r.ch)
			l.r.advance()
			l.scanDigits(&sb, isDigit)
		}
		if l.r.ch == 'e' || l.r.ch == 'E' {
			sb.WriteRune(l.r.ch)
			l.r.advance()
			if l.r.ch == '+' || l.r.ch == '-' {
				sb.WriteRune(l.r.ch)
				l.r.advance()
			}
			l.scanDigits(&sb, isDigit)
		}
	}

	bigInt := false
	if l.r.ch == 'n' {
		bigInt = true
		l.r.advance()
	}

	if isIdentStart(l.r.ch) || isDigit(l.r.ch) {
		span := token.NewSpan(start, l.r.byteAt())
		return token.Token{}, perrors.NewLexerError(span, "identifier starts immediately after numeric literal")
	}

	return token.Token{
		Type:        token.NUMBER,
		Span:        token.NewSpan(start, l.r.byteAt()),
		FirstOnLine: firstOnLine,
		Literal:     sb.String(),
		NumberBase:  base,
		LegacyOctal: legacyOctal,
		BigInt:      bigInt,
	}, nil
}

func (l *Lexer) scanDigits(sb *strings.Builder, isDigitFn func(rune) bool) {
	for isDigitFn(l.r.ch) || l.r.ch == '_' {
		if l.r.ch != '_' {
			sb.WriteRune(l.r.ch)
		}
		l.r.advance()
	}
}

func isHexDigit(ch rune) bool {
	return isDigit(ch) || (ch >= 'a' && ch <= 'f') || (ch >= 'A' && ch <= 'F')
}

func isOctalDigit(ch rune) bool { return ch >= '0' && ch <= '7' }

func isBinaryDigit(ch rune) bool { return ch == '0' || ch == '1' }
