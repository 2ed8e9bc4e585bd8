package parser

import (
	"github.com/ecmago/ecmaparse/internal/lexer"
	"github.com/ecmago/ecmaparse/internal/perrors"
	"github.com/ecmago/ecmaparse/pkg/token"
)

// Reader is the TokenReader: a lookahead buffer over the Lexer that
// additionally supports rewinding to an earlier token and re-lexing the
// current lookahead under a different Mode — the mechanism spec §4.3
// requires for `/` vs regex and for template middle/tail continuation.
type Reader struct {
	lex    *lexer.Lexer
	tokens []token.Token
	states []lexer.State // lexer state captured immediately before tokens[i] was scanned
	index  int
}

// NewReader buffers the first token and returns a Reader positioned on it.
func NewReader(lex *lexer.Lexer) (*Reader, *perrors.Error) {
	r := &Reader{lex: lex}
	if err := r.fetch(); err != nil {
		return nil, err
	}
	return r, nil
}

// fetch scans one more token under ModeNormal and appends it to the
// buffer, recording the lexer state beforehand for later re-lexing.
func (r *Reader) fetch() *perrors.Error {
	state := r.lex.Mark()
	tok, err := r.lex.NextToken(lexer.ModeNormal)
	if err != nil {
		return err
	}
	r.states = append(r.states, state)
	r.tokens = append(r.tokens, tok)
	return nil
}

// Current returns the token at the reader's position.
func (r *Reader) Current() token.Token { return r.tokens[r.index] }

// Peek returns the token n positions ahead of Current; Peek(0) == Current.
func (r *Reader) Peek(n int) token.Token {
	for r.index+n >= len(r.tokens)-1 && !r.tokens[len(r.tokens)-1].IsEOF() {
		if err := r.fetch(); err != nil {
			// A lexer error surfaces on Consume/Current instead; peeking
			// past it returns the last good token so callers relying on
			// PeekIs() degrade gracefully rather than panicking.
			break
		}
	}
	idx := r.index + n
	if idx >= len(r.tokens) {
		idx = len(r.tokens) - 1
	}
	return r.tokens[idx]
}

// Consume returns Current and advances the reader by one token.
func (r *Reader) Consume() token.Token {
	tok := r.Current()
	r.Advance()
	return tok
}

// Advance moves the reader to the next token, fetching it if needed.
func (r *Reader) Advance() {
	if r.index < len(r.tokens)-1 {
		r.index++
		return
	}
	if r.tokens[r.index].IsEOF() {
		return
	}
	if err := r.fetch(); err == nil {
		r.index++
	}
}

// Is reports whether Current has the given type.
func (r *Reader) Is(t token.Type) bool { return r.Current().Type == t }

// Mark is an opaque position usable with RewindTo.
type Mark struct{ index int }

// MarkPosition captures the reader's current position.
func (r *Reader) MarkPosition() Mark { return Mark{index: r.index} }

// RewindTo restores a position captured by MarkPosition. Only rewinding
// within the already-buffered window is supported, which is always true
// for the bounded cover-grammar and for-loop speculative scans that use
// it (spec §4.4.1, §4.4.3: "cost is bounded because the parser only
// rewinds small distances").
func (r *Reader) RewindTo(m Mark) { r.index = m.index }

// ReReadWithState discards the cached Current token and re-lexes the same
// source position under mode, truncating any tokens buffered after it
// (their validity may depend on the mode the old scan produced, e.g. a
// `}` that was a punctuator under ModeNormal becomes a TEMPLATE_TAIL
// under ModeTemplateTail).
func (r *Reader) ReReadWithState(mode lexer.Mode) *perrors.Error {
	state := r.states[r.index]
	r.lex.ResetTo(state)
	tok, err := r.lex.NextToken(mode)
	if err != nil {
		return err
	}
	r.tokens = r.tokens[:r.index+1]
	r.states = r.states[:r.index+1]
	r.tokens[r.index] = tok
	return nil
}
