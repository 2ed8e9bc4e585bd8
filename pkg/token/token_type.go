package token

// Type identifies the lexical category of a Token. Kinds are grouped by
// role so that range checks (IsKeyword, IsPunctuator, ...) stay cheap
// integer comparisons.
type Type int

const (
	// Special tokens.
	ILLEGAL Type = iota // unrecognized code point
	EOF                 // end of input

	// Identifiers and literals.
	IDENT          // IdentifierName that is not a Keyword
	NUMBER         // numeric literal (integer or floating, any base)
	STRING         // string literal
	REGEXP         // regular-expression literal
	TEMPLATE       // no-substitution template literal
	TEMPLATE_HEAD  // `head${
	TEMPLATE_MID   // }middle${
	TEMPLATE_TAIL  // }tail`

	literalEnd // marker, not a real token kind

	// Keywords (ECMA-262 reserved words, always keywords).
	BREAK
	CASE
	CATCH
	CLASS
	CONST
	CONTINUE
	DEBUGGER
	DEFAULT
	DELETE
	DO
	ELSE
	ENUM
	EXPORT
	EXTENDS
	FALSE
	FINALLY
	FOR
	FUNCTION
	IF
	IMPORT
	IN
	INSTANCEOF
	NEW
	NULL
	RETURN
	SUPER
	SWITCH
	THIS
	THROW
	TRUE
	TRY
	TYPEOF
	VAR
	VOID
	WHILE
	WITH

	keywordEnd // marker, not a real token kind

	// Contextual keywords: identifiers in most productions, keywords in
	// specific grammar positions. The lexer emits each as its own token
	// type (AWAIT, YIELD, ...) so the parser can both recognize them fast and re-interpret
	// them as plain identifiers when the grammar allows it.
	AWAIT
	YIELD
	LET
	STATIC
	ASYNC
	AS
	FROM
	GET
	SET
	OF
	TARGET // the "target" in new.target

	// Strict-mode future-reserved words: legal identifiers in sloppy mode,
	// forbidden bindings in strict mode.
	IMPLEMENTS
	INTERFACE
	PACKAGE
	PRIVATE
	PROTECTED
	PUBLIC

	contextualEnd // marker, not a real token kind

	// Punctuators, maximal-munch ordered within each family.
	LPAREN    // (
	RPAREN    // )
	LBRACE    // {
	RBRACE    // }
	LBRACKET  // [
	RBRACKET  // ]
	SEMICOLON // ;
	COMMA     // ,
	DOT       // .
	ELLIPSIS  // ...
	ARROW     // =>
	COLON     // :
	QUESTION  // ?
	QUESTION_DOT   // ?.
	QUESTION_QUESTION        // ??
	QUESTION_QUESTION_ASSIGN // ??=

	ASSIGN        // =
	EQ            // ==
	EQ_STRICT     // ===
	NOT_EQ        // !=
	NOT_EQ_STRICT // !==

	LT       // <
	LT_EQ    // <=
	SHL      // <<
	SHL_ASSIGN // <<=
	GT       // >
	GT_EQ    // >=
	SHR      // >>
	SHR_ASSIGN // >>=
	USHR     // >>>
	USHR_ASSIGN // >>>=

	PLUS        // +
	PLUS_PLUS   // ++
	PLUS_ASSIGN // +=
	MINUS        // -
	MINUS_MINUS  // --
	MINUS_ASSIGN // -=
	STAR        // *
	STAR_STAR   // **
	STAR_ASSIGN // *=
	STAR_STAR_ASSIGN // **=
	SLASH        // /
	SLASH_ASSIGN // /=
	PERCENT        // %
	PERCENT_ASSIGN // %=

	AMP        // &
	AMP_AMP    // &&
	AMP_ASSIGN // &=
	AMP_AMP_ASSIGN // &&=
	PIPE        // |
	PIPE_PIPE   // ||
	PIPE_ASSIGN // |=
	PIPE_PIPE_ASSIGN // ||=
	CARET        // ^
	CARET_ASSIGN // ^=
	BANG  // !
	TILDE // ~
	HASH  // # (private-name sigil)
	AT    // @ (decorator sigil; no parser production accepts it)

	punctuatorEnd // marker, not a real token kind
)

// IsLiteral reports whether t is a literal-producing token kind.
func (t Type) IsLiteral() bool { return t > EOF && t < literalEnd }

// IsKeyword reports whether t is one of the unconditionally reserved words.
func (t Type) IsKeyword() bool { return t > literalEnd && t < keywordEnd }

// IsContextualKeyword reports whether t is a contextual keyword or
// strict-mode future-reserved word — an identifier in some positions.
func (t Type) IsContextualKeyword() bool { return t > keywordEnd && t < contextualEnd }

// IsStrictReserved reports whether t names one of the words that cannot be
// bound as identifiers in strict mode.
func (t Type) IsStrictReserved() bool {
	switch t {
	case IMPLEMENTS, INTERFACE, LET, PACKAGE, PRIVATE, PROTECTED, PUBLIC, STATIC, YIELD:
		return true
	default:
		return false
	}
}

// IsPunctuator reports whether t is a punctuator.
func (t Type) IsPunctuator() bool { return t > contextualEnd && t < punctuatorEnd }

func (t Type) String() string {
	if int(t) >= 0 && int(t) < len(typeStrings) {
		return typeStrings[t]
	}
	return "UNKNOWN"
}

var typeStrings = [...]string{
	ILLEGAL: "ILLEGAL",
	EOF:     "EOF",

	IDENT:         "IDENT",
	NUMBER:        "NUMBER",
	STRING:        "STRING",
	REGEXP:        "REGEXP",
	TEMPLATE:      "TEMPLATE",
	TEMPLATE_HEAD: "TEMPLATE_HEAD",
	TEMPLATE_MID:  "TEMPLATE_MID",
	TEMPLATE_TAIL: "TEMPLATE_TAIL",

	BREAK: "break", CASE: "case", CATCH: "catch", CLASS: "class",
	CONST: "const", CONTINUE: "continue", DEBUGGER: "debugger",
	DEFAULT: "default", DELETE: "delete", DO: "do", ELSE: "else",
	ENUM: "enum", EXPORT: "export", EXTENDS: "extends", FALSE: "false",
	FINALLY: "finally", FOR: "for", FUNCTION: "function", IF: "if",
	IMPORT: "import", IN: "in", INSTANCEOF: "instanceof", NEW: "new",
	NULL: "null", RETURN: "return", SUPER: "super", SWITCH: "switch",
	THIS: "this", THROW: "throw", TRUE: "true", TRY: "try",
	TYPEOF: "typeof", VAR: "var", VOID: "void", WHILE: "while", WITH: "with",

	AWAIT: "await", YIELD: "yield", LET: "let", STATIC: "static",
	ASYNC: "async", AS: "as", FROM: "from", GET: "get", SET: "set",
	OF: "of", TARGET: "target",

	IMPLEMENTS: "implements", INTERFACE: "interface", PACKAGE: "package",
	PRIVATE: "private", PROTECTED: "protected", PUBLIC: "public",

	LPAREN: "(", RPAREN: ")", LBRACE: "{", RBRACE: "}",
	LBRACKET: "[", RBRACKET: "]", SEMICOLON: ";", COMMA: ",",
	DOT: ".", ELLIPSIS: "...", ARROW: "=>", COLON: ":", QUESTION: "?",
	QUESTION_DOT: "?.", QUESTION_QUESTION: "??", QUESTION_QUESTION_ASSIGN: "??=",

	ASSIGN: "=", EQ: "==", EQ_STRICT: "===", NOT_EQ: "!=", NOT_EQ_STRICT: "!==",

	LT: "<", LT_EQ: "<=", SHL: "<<", SHL_ASSIGN: "<<=",
	GT: ">", GT_EQ: ">=", SHR: ">>", SHR_ASSIGN: ">>=",
	USHR: ">>>", USHR_ASSIGN: ">>>=",

	PLUS: "+", PLUS_PLUS: "++", PLUS_ASSIGN: "+=",
	MINUS: "-", MINUS_MINUS: "--", MINUS_ASSIGN: "-=",
	STAR: "*", STAR_STAR: "**", STAR_ASSIGN: "*=", STAR_STAR_ASSIGN: "**=",
	SLASH: "/", SLASH_ASSIGN: "/=", PERCENT: "%", PERCENT_ASSIGN: "%=",

	AMP: "&", AMP_AMP: "&&", AMP_ASSIGN: "&=", AMP_AMP_ASSIGN: "&&=",
	PIPE: "|", PIPE_PIPE: "||", PIPE_ASSIGN: "|=", PIPE_PIPE_ASSIGN: "||=",
	CARET: "^", CARET_ASSIGN: "^=", BANG: "!", TILDE: "~", HASH: "#", AT: "@",
}

// Keywords maps the fixed ECMA-262 reserved-word spelling to its Type.
// Words that are only contextually reserved (let, async, of, ...) are
// included too; the parser, not the lexer, decides when they bind as
// identifiers versus keywords, per spec.md's "contextual keyword" design.
var Keywords = map[string]Type{
	"break": BREAK, "case": CASE, "catch": CATCH, "class": CLASS,
	"const": CONST, "continue": CONTINUE, "debugger": DEBUGGER,
	"default": DEFAULT, "delete": DELETE, "do": DO, "else": ELSE,
	"enum": ENUM, "export": EXPORT, "extends": EXTENDS, "false": FALSE,
	"finally": FINALLY, "for": FOR, "function": FUNCTION, "if": IF,
	"import": IMPORT, "in": IN, "instanceof": INSTANCEOF, "new": NEW,
	"null": NULL, "return": RETURN, "super": SUPER, "switch": SWITCH,
	"this": THIS, "throw": THROW, "true": TRUE, "try": TRY,
	"typeof": TYPEOF, "var": VAR, "void": VOID, "while": WHILE, "with": WITH,

	"await": AWAIT, "yield": YIELD, "let": LET, "static": STATIC,
	"async": ASYNC, "as": AS, "from": FROM, "get": GET, "set": SET,
	"of": OF, "target": TARGET,

	"implements": IMPLEMENTS, "interface": INTERFACE, "package": PACKAGE,
	"private": PRIVATE, "protected": PROTECTED, "public": PUBLIC,
}

// LookupIdent classifies a scanned identifier name, returning IDENT for
// ordinary identifiers or the matching keyword/contextual Type otherwise.
func LookupIdent(name string) Type {
	if t, ok := Keywords[name]; ok {
		return t
	}
	return IDENT
}
