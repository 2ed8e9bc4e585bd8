package parser

// Context is the immutable set of grammar parameters threaded through
// every parse function. It is never mutated in place, only derived: each
// nested production builds the Context it needs with a With* call and
// passes that value on, so a caller's Context is never affected by what
// a callee does with its derived copy.
type Context struct {
	Await   bool
	Yield   bool
	In      bool
	Default bool
	Strict  bool
}

// WithAwait returns a Context identical to c except Await.
func (c Context) WithAwait(await bool) Context { c.Await = await; return c }

// WithYield returns a Context identical to c except Yield.
func (c Context) WithYield(yield bool) Context { c.Yield = yield; return c }

// WithIn returns a Context identical to c except In.
func (c Context) WithIn(in bool) Context { c.In = in; return c }

// WithDefault returns a Context identical to c except Default.
func (c Context) WithDefault(def bool) Context { c.Default = def; return c }

// WithStrict returns a Context identical to c except Strict. Strict is
// sticky: it is never cleared by a nested function, only ORed in by a
// "use strict" directive or an enclosing strict context.
func (c Context) WithStrict(strict bool) Context {
	c.Strict = c.Strict || strict
	return c
}
