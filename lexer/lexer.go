// Package lexer implements the pull-based, peekable, mergeable-token
// lexer runtime (spec.md §4.G): a TokenKind contract (here split, Go-style,
// into a Kind constraint plus a LexFunc production value — see doc below),
// a Lexer that buffers at most one lookahead token, coalesces adjacent
// mergeable tokens on Next, and can Morph into a differently-typed lexer
// mid-parse without losing the remaining input.
//
// Grounded on driver/lexer/lexer.go's cursor-with-accept/revert shape
// (NewLexer taking a behavior object, Next buffering, a private
// lex-one-token step) and on the original's lexer.rs for the merge loop
// and peek/restore mechanics.
package lexer

import (
	"github.com/syntaxkit/cst/text"
)

// Kind is the constraint a token-kind value type must satisfy: display
// name (via fmt.Stringer, used in error messages) and a mergeability
// predicate. Unlike the original's TokenKind trait, the production
// function itself is not a method of Kind — Go has no associated
// functions on type parameters — so it is supplied to NewLexer as a
// LexFunc value instead, the same split driver/lexer/lexer.go makes
// between its KindID value type and its LexSpec behavior object.
type Kind[T any] interface {
	comparable
	String() string
	// Mergeable reports whether a token of kind other, immediately
	// following a token of kind self, must be coalesced into one token
	// of kind self. The predicate is directional: only the first
	// token's Mergeable is ever consulted (spec.md §9).
	Mergeable(other T) bool
}

// LexFunc consumes a prefix of in (via in.Chomp) and returns the matched
// kind and text. ok is false when no token can be produced from the
// current position; the Lexer then reports exhaustion just as it would
// at true EOF, leaving recovery to the caller (a parser combinator that
// sees no token where it expected one).
type LexFunc[T Kind[T], E any] func(in *Input, extras E) (T, string, bool)

// Token is one lexical token: its kind, matched text, and absolute byte
// range.
type Token[T any] struct {
	Kind  T
	Value string
	Range text.Range
}

// Lexer pulls tokens from an Input, using a user-supplied LexFunc and a
// user-supplied Extras value it carries across Morph. It holds at most
// one lookahead slot and is not safe for concurrent use.
type Lexer[T Kind[T], E any] struct {
	input  Input
	extras E
	lexFn  LexFunc[T, E]

	hasPeek   bool
	peekTok   Token[T]
	peekOK    bool
	peekAfter text.Size
}

// NewLexer returns a Lexer over src, starting with the given Extras and
// using lexFn to produce tokens.
func NewLexer[T Kind[T], E any](src string, extras E, lexFn LexFunc[T, E]) *Lexer[T, E] {
	return &Lexer[T, E]{
		input: *NewInput(src),
		extras: extras,
		lexFn:  lexFn,
	}
}

// Extras returns the lexer's current Extras value.
func (l *Lexer[T, E]) Extras() E {
	return l.extras
}

// Span returns a zero-length range at the lexer's current cursor, used
// by callers that need a location for an error raised at EOF.
func (l *Lexer[T, E]) Span() text.Range {
	c := l.input.Cursor()
	return text.NewRange(c, c)
}

// lexOne produces one raw token (no merging), restoring the cursor on
// failure so a failed attempt never consumes input.
func (l *Lexer[T, E]) lexOne() (Token[T], bool) {
	if l.input.AtEOF() {
		return Token[T]{}, false
	}
	start := l.input.Cursor()
	kind, value, ok := l.lexFn(&l.input, l.extras)
	if !ok {
		l.input.SetCursor(start)
		return Token[T]{}, false
	}
	end := l.input.Cursor()
	return Token[T]{Kind: kind, Value: value, Range: text.NewRange(start, end)}, true
}

// ensurePeek fills the lookahead slot if empty, stabilising the cursor
// (restore-on-peek): the underlying lex always runs and reports, but the
// cursor is put back to where it was before peeking, with the post-token
// position cached in peekAfter for a later consuming call to jump to.
func (l *Lexer[T, E]) ensurePeek() {
	if l.hasPeek {
		return
	}
	saved := l.input.Cursor()
	tok, ok := l.lexOne()
	after := l.input.Cursor()
	l.input.SetCursor(saved)

	l.peekTok = tok
	l.peekOK = ok
	l.peekAfter = after
	l.hasPeek = true
}

// Peek returns the next raw token without consuming it. The peeked token
// is not merged with the tokens that follow it; only Next merges.
func (l *Lexer[T, E]) Peek() (Token[T], bool) {
	l.ensurePeek()
	return l.peekTok, l.peekOK
}

// consumePeek commits the cached lookahead token, if any, advancing the
// cursor past it.
func (l *Lexer[T, E]) consumePeek() (Token[T], bool) {
	tok, ok := l.peekTok, l.peekOK
	l.input.SetCursor(l.peekAfter)
	l.hasPeek = false
	return tok, ok
}

func (l *Lexer[T, E]) nextRaw() (Token[T], bool) {
	if l.hasPeek {
		return l.consumePeek()
	}
	return l.lexOne()
}

// Next produces the next token, merging it with any immediately
// following tokens that its kind declares Mergeable: while the peeked
// next token's kind is mergeable into the current one, the peek is
// consumed and folded in, extending the range and re-slicing Value from
// source. The merge is directional — only first.Kind.Mergeable is ever
// consulted — and never crosses a non-mergeable pair.
func (l *Lexer[T, E]) Next() (Token[T], bool) {
	first, ok := l.nextRaw()
	if !ok {
		return Token[T]{}, false
	}
	for {
		next, ok := l.Peek()
		if !ok || !first.Kind.Mergeable(next.Kind) {
			break
		}
		l.consumePeek()
		first.Range = first.Range.Cover(next.Range)
		first.Value = l.input.StrForRange(first.Range)
	}
	return first, true
}

// Morph converts l into a Lexer of a different token kind, preserving
// whatever input hasn't been consumed yet and converting Extras via
// convertExtras. Any pending peek is discarded — morph always starts the
// new lexer fresh from the true, un-peeked cursor position.
func Morph[T1 Kind[T1], E1 any, T2 Kind[T2], E2 any](l *Lexer[T1, E1], lexFn2 LexFunc[T2, E2], convertExtras func(E1) E2) *Lexer[T2, E2] {
	return &Lexer[T2, E2]{
		input:  l.input,
		extras: convertExtras(l.extras),
		lexFn:  lexFn2,
	}
}
