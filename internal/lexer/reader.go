package lexer

import "unicode/utf8"

// reader is the CharacterReader: a UTF-8 aware cursor over the source text
// that tracks byte offsets (for Span) while decoding one rune at a time.
// Positions are byte offsets, never rune counts, so they line up directly
// with the Span carried by every Token and AST node.
type reader struct {
	input        string
	position     int // byte offset of ch
	readPosition int // byte offset of the next rune
	ch           rune
}

const eof = rune(-1)

func newReader(input string) *reader {
	r := &reader{input: input}
	r.advance()
	return r
}

// advance moves the reader to the next rune, decoding UTF-8 as it goes.
func (r *reader) advance() {
	if r.readPosition >= len(r.input) {
		r.position = len(r.input)
		r.ch = eof
		return
	}
	ch, size := utf8.DecodeRuneInString(r.input[r.readPosition:])
	r.position = r.readPosition
	r.readPosition += size
	r.ch = ch
}

// peek returns the rune n positions ahead of the current one without
// advancing. peek(0) is the current rune.
func (r *reader) peek(n int) rune {
	if n == 0 {
		return r.ch
	}
	pos := r.readPosition
	for i := 1; i < n; i++ {
		if pos >= len(r.input) {
			return eof
		}
		_, size := utf8.DecodeRuneInString(r.input[pos:])
		pos += size
	}
	if pos >= len(r.input) {
		return eof
	}
	ch, _ := utf8.DecodeRuneInString(r.input[pos:])
	return ch
}

// match advances past the current rune and returns true if it equals want.
func (r *reader) match(want rune) bool {
	if r.ch != want {
		return false
	}
	r.advance()
	return true
}

// byteAt returns the current byte offset, suitable as a Span boundary.
func (r *reader) byteAt() uint32 { return uint32(r.position) }

// seekTo rewinds the reader to an earlier byte offset, re-deriving ch via a
// single re-decode. Nothing in the lexer calls it; Mark/ResetTo restore
// positions through State instead.
func (r *reader) seekTo(pos int) {
	if pos >= len(r.input) {
		r.position = len(r.input)
		r.readPosition = len(r.input)
		r.ch = eof
		return
	}
	ch, size := utf8.DecodeRuneInString(r.input[pos:])
	r.position = pos
	r.readPosition = pos + size
	r.ch = ch
}

func (r *reader) slice(start, end int) string {
	if start < 0 {
		start = 0
	}
	if end > len(r.input) {
		end = len(r.input)
	}
	return r.input[start:end]
}
