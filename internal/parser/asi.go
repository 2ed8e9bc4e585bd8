package parser

import (
	"github.com/ecmago/ecmaparse/internal/perrors"
	"github.com/ecmago/ecmaparse/pkg/token"
)

// consumeSemicolon implements automatic semicolon insertion at a grammar
// site requiring `;`. It is called instead of expect(token.SEMICOLON)
// everywhere a production ends in a semicolon, so the three ASI rules
// live in exactly one place:
//
//  1. An explicit `;` is always consumed.
//  2. Otherwise, a semicolon is inserted if Current is `}`, EOF, or is
//     preceded by a line terminator (FirstOnLine).
//  3. Otherwise it is a syntax error.
func (p *Parser) consumeSemicolon() *perrors.Error {
	if p.r.Is(token.SEMICOLON) {
		p.r.Advance()
		return nil
	}
	cur := p.r.Current()
	if cur.Is(token.RBRACE) || cur.Is(token.EOF) || cur.FirstOnLine {
		return nil
	}
	return perrors.NewSyntaxError(cur.Span, "expected ';' but found %q", cur.Literal)
}
