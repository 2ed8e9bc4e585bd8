package token

// Token is the unit the lexer produces and the parser consumes: a closed
// sum over Type plus whatever literal payload that Type carries, a Span,
// and whether a line terminator preceded it (needed by Automatic Semicolon
// Insertion and by the restricted-production rules).
type Token struct {
	Type Type
	Span Span

	// FirstOnLine is true when at least one LineTerminator appears in the
	// source text between this token and the previous one (or the start of
	// input). ASI consults this on every grammar production that ends in a
	// semicolon.
	FirstOnLine bool

	// Literal is the token's source text, with escapes left undecoded
	// (STRING keeps its quotes). Exceptions: NUMBER leaves out numeric
	// separators and a BigInt `n` suffix, REGEXP holds only the body
	// between the slashes, and an identifier written with `\u` escapes
	// holds its decoded name.
	Literal string

	// StringValue holds the decoded content of STRING and TEMPLATE(_*)
	// tokens: escape sequences already resolved.
	StringValue string

	// NumberBase is 2, 8, 10, or 16 for NUMBER tokens, identifying the
	// radix the literal was written in (a legacy octal literal such as 0777
	// is 8 with LegacyOctal set; a 0-leading literal containing 8 or 9,
	// such as 089, is 10).
	NumberBase int
	// LegacyOctal marks a NUMBER token written as a bare 0-prefixed octal
	// literal (e.g. 0777), which is only valid outside strict mode.
	LegacyOctal bool
	// BigInt marks a NUMBER token with a trailing `n` suffix.
	BigInt bool

	// RegexFlags holds the flag letters of a REGEXP token.
	RegexFlags string
}

// Is reports whether the token has the given Type.
func (t Token) Is(tt Type) bool { return t.Type == tt }

// IsEOF reports whether the token is the end-of-stream sentinel.
func (t Token) IsEOF() bool { return t.Type == EOF }
