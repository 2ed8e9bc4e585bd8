package ast

import "github.com/ecmago/ecmaparse/pkg/token"

func (*ImportDecl) stmtNode() {}
func (*ExportNamedDecl) stmtNode() {}
func (*ExportDefaultDecl) stmtNode() {}
func (*ExportAllDecl) stmtNode() {}

// ImportSpecifier is one binding of an import clause: default, namespace
// (`* as X`), or named (`{ a }` / `{ a as b }`).
type ImportSpecifierKind int

const (
	ImportDefault ImportSpecifierKind = iota
	ImportNamespace
	ImportNamed
)

type ImportSpecifier struct {
	base
	Kind     ImportSpecifierKind
	Imported *Ident // nil for ImportDefault/ImportNamespace
	Local    *Ident
}

func NewImportSpecifier(span token.Span, kind ImportSpecifierKind, imported, local *Ident) *ImportSpecifier {
	return &ImportSpecifier{base: newBase(span), Kind: kind, Imported: imported, Local: local}
}

// ImportDecl is `import ... from "spec"` in any of its forms, or a
// side-effect-only `import "spec"`.
type ImportDecl struct {
	base
	Specifiers []*ImportSpecifier
	Source     *Literal
}

func NewImportDecl(span token.Span, specs []*ImportSpecifier, source *Literal) *ImportDecl {
	return &ImportDecl{base: newBase(span), Specifiers: specs, Source: source}
}

// ExportSpecifier is one `local as exported` entry of a named export
// clause.
type ExportSpecifier struct {
	base
	Local    *Ident
	Exported *Ident
}

func NewExportSpecifier(span token.Span, local, exported *Ident) *ExportSpecifier {
	return &ExportSpecifier{base: newBase(span), Local: local, Exported: exported}
}

// ExportNamedDecl covers `export { a, b as c }`, `export { a } from "m"`,
// and `export <declaration>` (Declaration set, Specifiers nil).
type ExportNamedDecl struct {
	base
	Declaration Stmt // nil unless this wraps a declaration directly
	Specifiers  []*ExportSpecifier
	Source      *Literal // non-nil only for re-exports
}

func NewExportNamedDecl(span token.Span, decl Stmt, specs []*ExportSpecifier, source *Literal) *ExportNamedDecl {
	return &ExportNamedDecl{base: newBase(span), Declaration: decl, Specifiers: specs, Source: source}
}

// ExportDefaultDecl is `export default <expr-or-decl>`.
type ExportDefaultDecl struct {
	base
	Declaration Node // FunctionDecl, ClassDecl, or any Expr
}

func NewExportDefaultDecl(span token.Span, decl Node) *ExportDefaultDecl {
	return &ExportDefaultDecl{base: newBase(span), Declaration: decl}
}

// ExportAllDecl is `export * from "m"` or `export * as ns from "m"`.
type ExportAllDecl struct {
	base
	Exported *Ident // nil for bare `export *`
	Source   *Literal
}

func NewExportAllDecl(span token.Span, exported *Ident, source *Literal) *ExportAllDecl {
	return &ExportAllDecl{base: newBase(span), Exported: exported, Source: source}
}
