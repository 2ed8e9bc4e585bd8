package ecmascript

import (
	"github.com/ecmago/ecmaparse/internal/lexer"
	"github.com/ecmago/ecmaparse/pkg/token"
)

// Tokenize scans source into a flat token stream using lexer.ModeNormal
// throughout. Unlike the parser, it has no grammar context to resolve
// `/` (division vs. RegExp) or a template-continuation `}`, so a source
// containing either may tokenize differently here than it would while
// being parsed; this is a diagnostic convenience, not what the parser
// actually consumes.
func Tokenize(source string, opts ...Option) ([]token.Token, error) {
	lx := lexer.New(source, opts...)
	var out []token.Token
	for {
		tok, err := lx.NextToken(lexer.ModeNormal)
		if err != nil {
			return out, wrapError(source, "", err)
		}
		out = append(out, tok)
		if tok.IsEOF() {
			return out, nil
		}
	}
}
