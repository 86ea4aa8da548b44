package parser

import (
	"sort"

	"github.com/syntaxkit/cst/green"
	"github.com/syntaxkit/cst/lexer"
)

// Builder accumulates alias names for the single Green value it is about
// to produce — a token, an error leaf, or the result of delegating to
// another Parser. NodeBuilder is its sibling for accumulating children
// into a node. Both are value types threaded the way State is: every
// method returns the (possibly updated) Builder/NodeBuilder rather than
// mutating in place, matching the original's consuming `self` methods.
//
// Grounded on original_source/crates/parser/src/builder.rs, with the
// alias-name set realized as a sorted, deduplicated []green.Name in place
// of a BTreeSet<Name> — iteration order is what the original relies on to
// decide alias nesting, and a sorted slice gives the same order.
type Builder[T Kind[T], E any] struct {
	state State[T, E]
	ctx   *Context[T, E]
	names []green.Name
}

// NewBuilder starts a Builder over state under ctx.
func NewBuilder[T Kind[T], E any](state State[T, E], ctx *Context[T, E]) Builder[T, E] {
	return Builder[T, E]{state: state, ctx: ctx}
}

// Name records that the value this Builder produces should also be
// reachable under name, as an Alias wrapper. Names are deduplicated and
// applied in sorted order. Token makes the first one the token's own tag;
// after Node, NodeBuilder.Finish makes it the node's own tag. Parse and
// Error wrap their value in every accumulated name (Error's leaf is
// always tagged "error").
func (b Builder[T, E]) Name(name green.Name) Builder[T, E] {
	b.names = insertSorted(b.names, name)
	return b
}

// PeekToken returns the kind of the next token without consuming it.
func (b Builder[T, E]) PeekToken() (T, bool) {
	tok, ok := b.state.Lexer().Peek()
	return tok.Kind, ok
}

// SetCtx replaces the Context this Builder parses under.
func (b Builder[T, E]) SetCtx(ctx *Context[T, E]) Builder[T, E] {
	b.ctx = ctx
	return b
}

// GetCtx returns the Context this Builder parses under.
func (b Builder[T, E]) GetCtx() *Context[T, E] {
	return b.ctx
}

// Node switches to building a node (with children) instead of a single
// token, carrying over this Builder's accumulated names and state.
func (b Builder[T, E]) Node() NodeBuilder[T, E] {
	return NodeBuilder[T, E]{state: b.state, ctx: b.ctx, names: b.names}
}

// None produces no Green value at all — the "this parser doesn't apply
// here" result a combinator returns without consuming any input.
func (b Builder[T, E]) None() (green.Green, bool, State[T, E]) {
	return green.Green{}, false, b.state
}

// Parse delegates to p and wraps a successful result in each accumulated
// alias, in sorted order (so the first name ends up innermost, the last
// outermost). A nil result from p is returned as-is, with no wrapping.
func (b Builder[T, E]) Parse(p Parser[T, E]) (green.Green, bool, State[T, E]) {
	g, ok, state := p.Parse(b.state, b.ctx)
	if !ok {
		return green.Green{}, false, state
	}
	return wrapAliases(state, g, b.names), true, state
}

// Error consumes exactly one token (or, at EOF, a zero-length span) as an
// "error" leaf, records desc against its range, and returns the leaf
// wrapped in this Builder's accumulated aliases. Consuming one token at
// mismatch — rather than none — is what guarantees every parser
// terminates (spec.md §9, testable property 6): there is no input on
// which a caller can loop forever re-trying the same position.
func (b Builder[T, E]) Error(desc string) (green.Green, bool, State[T, E]) {
	state := b.state
	lx := state.Lexer()
	var rng = lx.Span()
	var value string
	if tok, ok := lx.Next(); ok {
		rng = tok.Range
		value = tok.Value
	}
	state.addError(Error{Desc: desc, Range: rng})
	node := state.Cache().Token("error", value)
	return wrapAliases(state, node, b.names), true, state
}

// Token consumes one real token, surrounded by leading/trailing trivia as
// configured on the Context, and returns it (named by the first
// accumulated name, or "" if none) wrapped in any remaining aliases. At
// EOF it instead produces a "eof" token carrying whatever trivia was
// found, rather than failing — spec.md §9's "eof" carries trivia rule.
func (b Builder[T, E]) Token() (green.Green, bool, State[T, E]) {
	state := b.state
	leading, state := handleTrivia(b.ctx.LeadingTrivia, state)
	tok, ok := state.Lexer().Next()
	trailing, state := handleTrivia(b.ctx.TrailingTrivia, state)

	names := b.names
	var node green.Green
	if !ok {
		node = state.Cache().WithTrivia("eof", leading, "", trailing)
	} else {
		name, rest := shiftName(names)
		names = rest
		node = state.Cache().WithTrivia(name, leading, tok.Value, trailing)
	}
	return wrapAliases(state, node, names), true, state
}

// NodeBuilder accumulates parsed children plus alias names, finishing
// into a Green-Node (or, via ParseMode, a sub-language Green wrapped back
// into the outer node).
type NodeBuilder[T Kind[T], E any] struct {
	state    State[T, E]
	ctx      *Context[T, E]
	names    []green.Name
	children []green.Green
}

// Name records an additional alias name for the finished node, same
// rules as Builder.Name.
func (nb NodeBuilder[T, E]) Name(name green.Name) NodeBuilder[T, E] {
	nb.names = insertSorted(nb.names, name)
	return nb
}

// PeekToken returns the kind of the next token without consuming it.
func (nb NodeBuilder[T, E]) PeekToken() (T, bool) {
	tok, ok := nb.state.Lexer().Peek()
	return tok.Kind, ok
}

// SetCtx replaces the Context this NodeBuilder parses under.
func (nb NodeBuilder[T, E]) SetCtx(ctx *Context[T, E]) NodeBuilder[T, E] {
	nb.ctx = ctx
	return nb
}

// GetCtx returns the Context this NodeBuilder parses under.
func (nb NodeBuilder[T, E]) GetCtx() *Context[T, E] {
	return nb.ctx
}

// Parse runs p and, if it produced a value, appends it as the next
// child. A nil result advances the NodeBuilder's State (p may have
// consumed an error token or trivia) without adding a child.
func (nb NodeBuilder[T, E]) Parse(p Parser[T, E]) NodeBuilder[T, E] {
	g, ok, state := p.Parse(nb.state, nb.ctx)
	nb.state = state
	if ok {
		nb.children = append(nb.children, g)
	}
	return nb
}

// Finish builds the Green-Node from the accumulated children, tagged
// with the first accumulated name (or "" if none), and wraps it in any
// remaining aliases.
func (nb NodeBuilder[T, E]) Finish() (green.Green, bool, State[T, E]) {
	name, rest := shiftName(nb.names)
	children := nb.children
	node := nb.state.Cache().Node(name, func(*green.Cache) []green.Green { return children })
	return wrapAliases(nb.state, node, rest), true, nb.state
}

// ParseMode temporarily morphs the NodeBuilder's lexer into a
// differently-typed one (lexFn2/E2), runs p against it under a fresh
// default Context, then morphs back to the original token kind using
// lexFn1 to resume lexing it — appending p's result as the next child on
// success. Because Go has no associated production function on a type
// parameter, both the outer and inner production functions must be named
// explicitly here, unlike the original's mode-switch which recovers
// Tok::lex from the TokenKind trait bound alone.
//
// Grounded on original_source/crates/parser/src/{builder,state}.rs'
// mode-switch plus lexer.Morph.
func ParseMode[T Kind[T], E any, T2 Kind[T2], E2 any](
	nb NodeBuilder[T, E],
	lexFn1 lexer.LexFunc[T, E],
	lexFn2 lexer.LexFunc[T2, E2],
	into func(E) E2,
	back func(E2) E,
	p Parser[T2, E2],
) NodeBuilder[T, E] {
	innerLexer := lexer.Morph(nb.state.Lexer(), lexFn2, into)
	innerState := State[T2, E2]{lx: innerLexer, cache: nb.state.Cache(), errors: nb.state.Errors()}
	innerCtx := &Context[T2, E2]{}

	g, ok, innerAfter := p.Parse(innerState, innerCtx)

	outerLexer := lexer.Morph(innerAfter.Lexer(), lexFn1, back)
	nb.state = State[T, E]{lx: outerLexer, cache: innerAfter.Cache(), errors: innerAfter.Errors()}
	if ok {
		nb.children = append(nb.children, g)
	}
	return nb
}

func handleTrivia[T Kind[T], E any](trivia Parser[T, E], state State[T, E]) (string, State[T, E]) {
	if trivia == nil {
		return "", state
	}
	g, ok, state := trivia.Parse(state, &Context[T, E]{})
	if !ok {
		return "", state
	}
	return g.String(), state
}

func wrapAliases[T Kind[T], E any](state State[T, E], node green.Green, names []green.Name) green.Green {
	for _, name := range names {
		inner := node
		node = state.Cache().Alias(name, func(*green.Cache) green.Green { return inner })
	}
	return node
}

func shiftName(names []green.Name) (green.Name, []green.Name) {
	if len(names) == 0 {
		return "", nil
	}
	return names[0], names[1:]
}

func insertSorted(names []green.Name, n green.Name) []green.Name {
	i := sort.SearchStrings(names, n)
	if i < len(names) && names[i] == n {
		return names
	}
	out := make([]green.Name, len(names)+1)
	copy(out, names[:i])
	out[i] = n
	copy(out[i+1:], names[i:])
	return out
}
