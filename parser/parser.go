// Package parser implements the combinator parser runtime (spec.md §4.H,
// §4.I): a pull-based Builder/NodeBuilder that drives a lexer.Lexer and a
// green.Cache while accumulating errors, a Context carrying trivia
// parsers, and the primitive combinators (AnyToken, Token, Tokens,
// ErrorAt) every hand-written grammar composes.
//
// Grounded on original_source/crates/parser/src/{parser,context,state,
// builder,parsers,error,result}.rs, adapted to Go: the Rust `Parser`
// trait — "any function matching parse(state, context) -> (Option<Green>,
// state)" — becomes an interface plus a function-type adapter (the same
// shape net/http.HandlerFunc uses to let a plain func satisfy an
// interface), since Go has no blanket impl for function types.
package parser

import (
	"github.com/syntaxkit/cst/green"
	"github.com/syntaxkit/cst/lexer"
)

// Kind re-exports the lexer's token-kind constraint so grammars written
// against this package don't need to import lexer directly just to name
// the constraint.
type Kind[T any] interface{ lexer.Kind[T] }

// Parser is implemented by anything that can consume from a State under
// a Context and produce an optional Green. A nil-returning parser (ok
// == false) consumed no green value, though it may still have advanced
// the lexer and/or appended errors — see Context's trivia parsers, which
// are themselves ordinary Parsers.
type Parser[T Kind[T], E any] interface {
	Parse(state State[T, E], ctx *Context[T, E]) (green.Green, bool, State[T, E])
}

// ParseFunc adapts a plain function to Parser, the same way
// http.HandlerFunc adapts a func to http.Handler.
type ParseFunc[T Kind[T], E any] func(state State[T, E], ctx *Context[T, E]) (green.Green, bool, State[T, E])

// Parse implements Parser.
func (f ParseFunc[T, E]) Parse(state State[T, E], ctx *Context[T, E]) (green.Green, bool, State[T, E]) {
	return f(state, ctx)
}

// Parse is the entry point: it runs p over lx with a default (no-trivia)
// Context and a fresh Cache, returning the completed tree (if any) and
// every error collected along the way.
func Parse[T Kind[T], E any](lx *lexer.Lexer[T, E], p Parser[T, E]) Result {
	state := State[T, E]{lx: lx, cache: green.NewCache()}
	ctx := &Context[T, E]{}
	root, ok, final := p.Parse(state, ctx)
	return Result{Root: root, HasRoot: ok, Errors: final.errors}
}

// ParseWithCache is Parse, but lets the caller supply the Cache — for
// example one built with green.WithInterning().
func ParseWithCache[T Kind[T], E any](lx *lexer.Lexer[T, E], cache *green.Cache, p Parser[T, E]) Result {
	state := State[T, E]{lx: lx, cache: cache}
	ctx := &Context[T, E]{}
	root, ok, final := p.Parse(state, ctx)
	return Result{Root: root, HasRoot: ok, Errors: final.errors}
}
