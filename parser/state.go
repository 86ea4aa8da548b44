package parser

import (
	"github.com/syntaxkit/cst/green"
	"github.com/syntaxkit/cst/lexer"
)

// State is what every Parser threads through a parse: the lexer it pulls
// tokens from, the cache it builds Green values with, and the errors
// collected so far. Every combinator in this package receives a State by
// value and returns the (possibly advanced) State alongside its result,
// the same shape the original's `Parse` trait method uses — but since the
// Lexer and Cache are reached through pointers, a State "copy" still
// observes the same underlying lexer cursor and cache. Callers must treat
// a State as consumed once passed to a Parser and use only the returned
// one, exactly as the original's ownership-moving State does; nothing in
// this package reuses a stale State, and hand-written grammars should
// follow the same discipline.
type State[T Kind[T], E any] struct {
	lx     *lexer.Lexer[T, E]
	cache  *green.Cache
	errors []Error
}

// NewState returns a fresh State over lx, using cache to build Green
// values.
func NewState[T Kind[T], E any](lx *lexer.Lexer[T, E], cache *green.Cache) State[T, E] {
	return State[T, E]{lx: lx, cache: cache}
}

// Lexer returns the State's underlying lexer.
func (s State[T, E]) Lexer() *lexer.Lexer[T, E] {
	return s.lx
}

// Cache returns the State's Green-building cache.
func (s State[T, E]) Cache() *green.Cache {
	return s.cache
}

// Errors returns every error collected so far.
func (s State[T, E]) Errors() []Error {
	return s.errors
}

func (s *State[T, E]) addError(e Error) {
	s.errors = append(s.errors, e)
}
