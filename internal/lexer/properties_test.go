package lexer

import (
	"strings"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

var lexemeVocabulary = []string{
	"foo", "bar", "baz", "42", "3.14", "\"str\"", "true", "null",
	"+", "-", "*", "/", "=", "==", "(", ")", "{", "}", "[", "]", ",", ";",
}

var whitespaceVocabulary = []string{" ", "\t", "\n", "  ", " \n "}

func lexemeGen() gopter.Gen {
	values := make([]interface{}, len(lexemeVocabulary))
	for i, v := range lexemeVocabulary {
		values[i] = v
	}
	return gen.OneConstOf(values...)
}

func whitespaceGen() gopter.Gen {
	values := make([]interface{}, len(whitespaceVocabulary))
	for i, v := range whitespaceVocabulary {
		values[i] = v
	}
	return gen.OneConstOf(values...)
}

// buildSource interleaves lexemes with whitespace, always ending with a
// lexeme so the reconstruction below doesn't need to handle trailing
// whitespace specially.
func buildSource(lexemes, gaps []string) string {
	var sb strings.Builder
	for i, lx := range lexemes {
		sb.WriteString(lx)
		if i < len(lexemes)-1 && i < len(gaps) {
			sb.WriteString(gaps[i])
		}
	}
	return sb.String()
}

// Property 3 (round-trip 1): concatenating source[token.span] over every
// token, interleaved with the whitespace between them, reproduces the
// input byte-for-byte.
func TestProperty_LexRoundTrip(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	properties := gopter.NewProperties(parameters)

	properties.Property("token spans plus interleaved gaps reconstruct the source", prop.ForAll(
		func(lexemes []string, gaps []string) bool {
			if len(lexemes) == 0 {
				return true
			}
			source := buildSource(lexemes, gaps)
			l := New(source)

			var rebuilt strings.Builder
			prevEnd := uint32(0)
			for {
				tok, err := l.NextToken(ModeNormal)
				if err != nil {
					return false
				}
				if tok.IsEOF() {
					rebuilt.WriteString(source[prevEnd:])
					break
				}
				rebuilt.WriteString(source[prevEnd:tok.Span.Start])
				rebuilt.WriteString(source[tok.Span.Start:tok.Span.End])
				prevEnd = tok.Span.End
			}
			return rebuilt.String() == source
		},
		gen.SliceOfN(6, lexemeGen()),
		gen.SliceOfN(6, whitespaceGen()),
	))

	properties.TestingRun(t)
}
