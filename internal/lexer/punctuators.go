package lexer

import (
	"github.com/ecmago/ecmaparse/internal/perrors"
	"github.com/ecmago/ecmaparse/pkg/token"
)

// punctRule is one entry of the maximal-munch table: the longest match
// wins, so within each leading character a spelling that is a prefix of
// another is listed after it.
type punctRule struct {
	spelling string
	typ      token.Type
}

// punctTable is grouped by leading byte to keep the scan cheap; within a
// group, every spelling comes before any shorter spelling that is its
// prefix (e.g. "??=" before "??" before "?"), so the first match is the
// longest and the scan never needs backtracking once it commits to a
// leading character.
var punctTable = map[byte][]punctRule{
	'{': {{"{", token.LBRACE}},
	'}': {{"}", token.RBRACE}},
	'(': {{"(", token.LPAREN}},
	')': {{")", token.RPAREN}},
	'[': {{"[", token.LBRACKET}},
	']': {{"]", token.RBRACKET}},
	';': {{";", token.SEMICOLON}},
	',': {{",", token.COMMA}},
	'.': {{"...", token.ELLIPSIS}, {".", token.DOT}},
	':': {{":", token.COLON}},
	'~': {{"~", token.TILDE}},
	'#': {{"#", token.HASH}},
	'@': {{"@", token.AT}},
	'?': {{"?.", token.QUESTION_DOT}, {"??=", token.QUESTION_QUESTION_ASSIGN}, {"??", token.QUESTION_QUESTION}, {"?", token.QUESTION}},
	'=': {{"===", token.EQ_STRICT}, {"==", token.EQ}, {"=>", token.ARROW}, {"=", token.ASSIGN}},
	'!': {{"!==", token.NOT_EQ_STRICT}, {"!=", token.NOT_EQ}, {"!", token.BANG}},
	'<': {{"<<=", token.SHL_ASSIGN}, {"<<", token.SHL}, {"<=", token.LT_EQ}, {"<", token.LT}},
	'>': {{">>>=", token.USHR_ASSIGN}, {">>>", token.USHR}, {">>=", token.SHR_ASSIGN}, {">>", token.SHR}, {">=", token.GT_EQ}, {">", token.GT}},
	'+': {{"++", token.PLUS_PLUS}, {"+=", token.PLUS_ASSIGN}, {"+", token.PLUS}},
	'-': {{"--", token.MINUS_MINUS}, {"-=", token.MINUS_ASSIGN}, {"-", token.MINUS}},
	'*': {{"**=", token.STAR_STAR_ASSIGN}, {"**", token.STAR_STAR}, {"*=", token.STAR_ASSIGN}, {"*", token.STAR}},
	'/': {{"/=", token.SLASH_ASSIGN}, {"/", token.SLASH}},
	'%': {{"%=", token.PERCENT_ASSIGN}, {"%", token.PERCENT}},
	'&': {{"&&=", token.AMP_AMP_ASSIGN}, {"&&", token.AMP_AMP}, {"&=", token.AMP_ASSIGN}, {"&", token.AMP}},
	'|': {{"||=", token.PIPE_PIPE_ASSIGN}, {"||", token.PIPE_PIPE}, {"|=", token.PIPE_ASSIGN}, {"|", token.PIPE}},
	'^': {{"^=", token.CARET_ASSIGN}, {"^", token.CARET}},
}

func (l *Lexer) scanPunctuator(start uint32, firstOnLine bool) (token.Token, *perrors.Error) {
	if l.r.ch > 127 || l.r.ch == eof {
		return token.Token{}, perrors.NewLexerError(token.NewSpan(start, l.r.byteAt()+1), "unexpected character")
	}

	rules, ok := punctTable[byte(l.r.ch)]
	if !ok {
		return token.Token{}, perrors.NewLexerError(token.NewSpan(start, l.r.byteAt()+1), "unexpected character %q", string(l.r.ch))
	}

	for _, rule := range rules {
		if l.matchSpelling(rule.spelling) {
			for range rule.spelling {
				l.r.advance()
			}
			return token.Token{
				Type:        rule.typ,
				Span:        token.NewSpan(start, l.r.byteAt()),
				FirstOnLine: firstOnLine,
				Literal:     rule.spelling,
			}, nil
		}
	}

	return token.Token{}, perrors.NewLexerError(token.NewSpan(start, l.r.byteAt()+1), "unexpected character %q", string(l.r.ch))
}

func (l *Lexer) matchSpelling(spelling string) bool {
	for i, want := range spelling {
		if l.r.peek(i) != want {
			return false
		}
	}
	return true
}
