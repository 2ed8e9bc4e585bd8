package parser

import (
	"github.com/ecmago/ecmaparse/internal/lexer"
	"github.com/ecmago/ecmaparse/pkg/ast"
	"github.com/ecmago/ecmaparse/pkg/token"
)

// sniffSourceKind performs a lightweight pre-scan of source to resolve
// SourceType Unknown: Module iff a top-level `import` or `export` token
// is seen (brace/paren/bracket depth 0, and outside any template
// substitution), Script otherwise. It only tokenizes, tracking
// nesting depth and re-lexing `}` under ModeTemplateTail exactly where
// Reader.ReReadWithState would during a real parse, so it never needs to
// build or discard an AST the way a speculative Module-then-Script
// reparse would.
func sniffSourceKind(source string) ast.SourceKind {
	lx := lexer.New(source)
	depth := 0
	var templateDepths []int
	for {
		mark := lx.Mark()
		tok, err := lx.NextToken(lexer.ModeNormal)
		if err != nil {
			return ast.Script
		}
		if tok.Is(token.RBRACE) && len(templateDepths) > 0 && depth == templateDepths[len(templateDepths)-1] {
			lx.ResetTo(mark)
			tok, err = lx.NextToken(lexer.ModeTemplateTail)
			if err != nil {
				return ast.Script
			}
		}
		if tok.IsEOF() {
			return ast.Script
		}
		switch tok.Type {
		case token.LPAREN, token.LBRACKET, token.LBRACE:
			depth++
		case token.RPAREN, token.RBRACKET, token.RBRACE:
			if depth > 0 {
				depth--
			}
		case token.TEMPLATE_HEAD, token.TEMPLATE_MID:
			templateDepths = append(templateDepths, depth)
		case token.TEMPLATE_TAIL:
			if len(templateDepths) > 0 {
				templateDepths = templateDepths[:len(templateDepths)-1]
			}
		case token.IMPORT, token.EXPORT:
			if depth == 0 && len(templateDepths) == 0 {
				return ast.Module
			}
		}
	}
}
