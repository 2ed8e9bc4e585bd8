package ast

import "github.com/ecmago/ecmaparse/pkg/token"

func (*ExprStmt) stmtNode()     {}
func (*BlockStmt) stmtNode()    {}
func (*EmptyStmt) stmtNode()    {}
func (*VariableDecl) stmtNode() {}
func (*IfStmt) stmtNode()       {}
func (*ForStmt) stmtNode()      {}
func (*ForInStmt) stmtNode()    {}
func (*ForOfStmt) stmtNode()    {}
func (*WhileStmt) stmtNode()    {}
func (*DoWhileStmt) stmtNode()  {}
func (*ReturnStmt) stmtNode()   {}
func (*BreakStmt) stmtNode()    {}
func (*ContinueStmt) stmtNode() {}
func (*ThrowStmt) stmtNode()    {}
func (*TryStmt) stmtNode()      {}
func (*SwitchStmt) stmtNode()   {}
func (*LabeledStmt) stmtNode()  {}
func (*WithStmt) stmtNode()     {}
func (*DebuggerStmt) stmtNode() {}
func (*ClassDecl) stmtNode()    {}

type ExprStmt struct {
	base
	Expr Expr
}

func NewExprStmt(span token.Span, expr Expr) *ExprStmt { return &ExprStmt{base: newBase(span), Expr: expr} }

type BlockStmt struct {
	base
	Body StmtList
}

func NewBlockStmt(span token.Span, body StmtList) *BlockStmt {
	return &BlockStmt{base: newBase(span), Body: body}
}

type EmptyStmt struct{ base }

func NewEmptyStmt(span token.Span) *EmptyStmt { return &EmptyStmt{base: newBase(span)} }

type DebuggerStmt struct{ base }

func NewDebuggerStmt(span token.Span) *DebuggerStmt { return &DebuggerStmt{base: newBase(span)} }

// VariableKind is var, let, or const.
type VariableKind int

const (
	Var VariableKind = iota
	Let
	Const
)

// VariableDeclarator is one `binding = init` entry of a VariableDecl.
type VariableDeclarator struct {
	base
	Binding Pattern
	Init    Expr // nil if absent (only legal for Var/Let without a pattern)
}

func NewVariableDeclarator(span token.Span, binding Pattern, init Expr) *VariableDeclarator {
	return &VariableDeclarator{base: newBase(span), Binding: binding, Init: init}
}

// VariableDecl is a var/let/const statement, and also the left side of a
// ForDeclaration when used inside a for-in/for-of head.
type VariableDecl struct {
	base
	Kind         VariableKind
	Declarations []*VariableDeclarator
}

func NewVariableDecl(span token.Span, kind VariableKind, decls []*VariableDeclarator) *VariableDecl {
	return &VariableDecl{base: newBase(span), Kind: kind, Declarations: decls}
}

type IfStmt struct {
	base
	Test       Expr
	Consequent Stmt
	Alternate  Stmt // nil if no else
}

func NewIfStmt(span token.Span, test Expr, cons, alt Stmt) *IfStmt {
	return &IfStmt{base: newBase(span), Test: test, Consequent: cons, Alternate: alt}
}

// ForInit is the first clause of a C-style for header: either a
// VariableDecl or a bare Expr, parsed with the In context parameter
// suppressed.
type ForInit struct {
	Decl *VariableDecl
	Expr Expr
}

type ForStmt struct {
	base
	Init   *ForInit // nil if the first `;` has nothing before it
	Test   Expr     // nil if omitted
	Update Expr     // nil if omitted
	Body   Stmt
}

func NewForStmt(span token.Span, init *ForInit, test, update Expr, body Stmt) *ForStmt {
	return &ForStmt{base: newBase(span), Init: init, Test: test, Update: update, Body: body}
}

// ForTarget is the left side of for-in/for-of: a declaration or a valid
// assignment target reinterpreted from an expression.
type ForTarget struct {
	Decl    *VariableDecl
	Pattern Pattern
}

type ForInStmt struct {
	base
	Left  ForTarget
	Right Expr
	Body  Stmt
}

func NewForInStmt(span token.Span, left ForTarget, right Expr, body Stmt) *ForInStmt {
	return &ForInStmt{base: newBase(span), Left: left, Right: right, Body: body}
}

type ForOfStmt struct {
	base
	Left  ForTarget
	Right Expr
	Body  Stmt
	Await bool
}

func NewForOfStmt(span token.Span, left ForTarget, right Expr, body Stmt, await bool) *ForOfStmt {
	return &ForOfStmt{base: newBase(span), Left: left, Right: right, Body: body, Await: await}
}

type WhileStmt struct {
	base
	Test Expr
	Body Stmt
}

func NewWhileStmt(span token.Span, test Expr, body Stmt) *WhileStmt {
	return &WhileStmt{base: newBase(span), Test: test, Body: body}
}

type DoWhileStmt struct {
	base
	Body Stmt
	Test Expr
}

func NewDoWhileStmt(span token.Span, body Stmt, test Expr) *DoWhileStmt {
	return &DoWhileStmt{base: newBase(span), Body: body, Test: test}
}

type ReturnStmt struct {
	base
	Argument Expr // nil if bare `return;`
}

func NewReturnStmt(span token.Span, arg Expr) *ReturnStmt { return &ReturnStmt{base: newBase(span), Argument: arg} }

type BreakStmt struct {
	base
	Label *Ident // nil if unlabeled
}

func NewBreakStmt(span token.Span, label *Ident) *BreakStmt { return &BreakStmt{base: newBase(span), Label: label} }

type ContinueStmt struct {
	base
	Label *Ident
}

func NewContinueStmt(span token.Span, label *Ident) *ContinueStmt {
	return &ContinueStmt{base: newBase(span), Label: label}
}

type ThrowStmt struct {
	base
	Argument Expr
}

func NewThrowStmt(span token.Span, arg Expr) *ThrowStmt { return &ThrowStmt{base: newBase(span), Argument: arg} }

// CatchClause's Param is nil for an optional-catch-binding `catch {}`.
type CatchClause struct {
	base
	Param Pattern
	Body  *BlockStmt
}

func NewCatchClause(span token.Span, param Pattern, body *BlockStmt) *CatchClause {
	return &CatchClause{base: newBase(span), Param: param, Body: body}
}

type TryStmt struct {
	base
	Block     *BlockStmt
	Handler   *CatchClause // nil if no catch
	Finalizer *BlockStmt   // nil if no finally
}

func NewTryStmt(span token.Span, block *BlockStmt, handler *CatchClause, finalizer *BlockStmt) *TryStmt {
	return &TryStmt{base: newBase(span), Block: block, Handler: handler, Finalizer: finalizer}
}

// SwitchCase is one `case expr:` or `default:` arm; Test is nil for
// default.
type SwitchCase struct {
	base
	Test       Expr
	Consequent []Stmt
}

func NewSwitchCase(span token.Span, test Expr, body []Stmt) *SwitchCase {
	return &SwitchCase{base: newBase(span), Test: test, Consequent: body}
}

type SwitchStmt struct {
	base
	Discriminant Expr
	Cases        []*SwitchCase
}

func NewSwitchStmt(span token.Span, discriminant Expr, cases []*SwitchCase) *SwitchStmt {
	return &SwitchStmt{base: newBase(span), Discriminant: discriminant, Cases: cases}
}

type LabeledStmt struct {
	base
	Label *Ident
	Body  Stmt
}

func NewLabeledStmt(span token.Span, label *Ident, body Stmt) *LabeledStmt {
	return &LabeledStmt{base: newBase(span), Label: label, Body: body}
}

// WithStmt is the legacy `with (obj) stmt` statement: grammatically real,
// forbidden in strict mode, retained because no Non-goal excludes it.
type WithStmt struct {
	base
	Object Expr
	Body   Stmt
}

func NewWithStmt(span token.Span, object Expr, body Stmt) *WithStmt {
	return &WithStmt{base: newBase(span), Object: object, Body: body}
}
