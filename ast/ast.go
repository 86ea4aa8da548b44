// Package ast defines the builder-style AST construction surface: typed
// façades over a red.Red, and the builders (token, alias, boxed) that
// compose to produce them while emitting green.Green values through a
// green.Cache.
//
// This package is the contract a grammar-specific code generator targets
// (spec.md §6): generated wrappers implement Ast and NewFunc, and compose
// TokenBuilder/AliasBuilder/IntoBuilder to build trees. Nothing here
// knows about any particular grammar.
package ast

import (
	"fmt"

	"github.com/syntaxkit/cst/green"
	"github.com/syntaxkit/cst/red"
)

// Name is the structural tag used for nodes, tokens, and aliases.
type Name = green.Name

// Ast is a typed façade over a Red. Concrete wrappers are constructed via
// a package-level NewFunc rather than a method on the interface — Go has
// no associated/static functions on interfaces, so the "new" half of the
// original new/red pair is a plain function value instead of an
// interface method.
type Ast interface {
	// Red returns the underlying positioned view.
	Red() red.Red
}

// NewFunc validates that r has the shape a concrete Ast wrapper expects
// (red.Is(ExpectedName), and for token-typed wrappers that the green
// value is a Token) and, if so, constructs the wrapper. It returns false
// on a shape mismatch rather than erroring, mirroring Ast::new's
// Option<Self> in the original design.
type NewFunc[T Ast] func(r red.Red) (T, bool)

// AstBuilder is the dynamic, type-erased building capability: it can
// produce a green.Green without the caller knowing which concrete
// wrapper type it will validate into. Because Go interface values are
// already boxed, this single method also serves the role the original's
// build_boxed_green played for Box<dyn AstBuilder> — no separate method
// is needed to support storing builders in a heterogeneous slice.
type AstBuilder interface {
	BuildGreen(c *green.Cache) green.Green
}

// DynBuilder is AstBuilder under the name used for heterogeneous child
// lists ([]DynBuilder mixes concrete builder types that all build toward
// the same category), matching the role IntoDyn plays for an IntoBuilder.
type DynBuilder = AstBuilder

// TokenBuilder fluently constructs a single green Token leaf and, on
// Build, validates and wraps it as T.
type TokenBuilder[T Ast] struct {
	name  Name
	value string
	pre   string
	post  string
	new   NewFunc[T]
}

// NewToken returns a TokenBuilder tagged "token", the default name used
// when a grammar doesn't need to distinguish its token leaves by name.
func NewToken[T Ast](newFn NewFunc[T], value string) *TokenBuilder[T] {
	return CustomToken(newFn, "token", value)
}

// CustomToken returns a TokenBuilder tagged name, for grammars that need
// a named single-token leaf (e.g. an "Atom" token rather than a bare
// "token").
func CustomToken[T Ast](newFn NewFunc[T], name Name, value string) *TokenBuilder[T] {
	return &TokenBuilder[T]{name: name, value: value, new: newFn}
}

// WithPre attaches leading trivia text.
func (b *TokenBuilder[T]) WithPre(pre string) *TokenBuilder[T] {
	b.pre = pre
	return b
}

// WithPost attaches trailing trivia text.
func (b *TokenBuilder[T]) WithPost(post string) *TokenBuilder[T] {
	b.post = post
	return b
}

func (b *TokenBuilder[T]) buildToken(c *green.Cache) green.Green {
	return c.WithTrivia(b.name, b.pre, b.value, b.post)
}

// BuildGreen implements AstBuilder.
func (b *TokenBuilder[T]) BuildGreen(c *green.Cache) green.Green {
	return b.buildToken(c)
}

// Build produces the green token and wraps it in a Red-rooted T. It
// panics if T's NewFunc rejects the result — a contradiction, since
// TokenBuilder is guaranteed by construction to produce a valid token
// shape for any NewFunc that only checks name/token-ness.
func (b *TokenBuilder[T]) Build(c *green.Cache) T {
	g := b.buildToken(c)
	v, ok := b.new(red.Root(g))
	if !ok {
		panic(fmt.Sprintf("ast: token builder %q produced a green value its wrapper rejected", b.name))
	}
	return v
}

// AliasBuilder wraps another builder's green value in a named alias and,
// on Build, validates and wraps the result as As.
type AliasBuilder[As Ast] struct {
	alias Name
	inner AstBuilder
	new   NewFunc[As]
}

// NewAlias returns an AliasBuilder that wraps inner's green output under
// alias.
func NewAlias[As Ast](newFn NewFunc[As], alias Name, inner AstBuilder) *AliasBuilder[As] {
	return &AliasBuilder[As]{alias: alias, inner: inner, new: newFn}
}

// BuildGreen implements AstBuilder.
func (b *AliasBuilder[As]) BuildGreen(c *green.Cache) green.Green {
	innerGreen := b.inner.BuildGreen(c)
	return c.Alias(b.alias, func(*green.Cache) green.Green { return innerGreen })
}

// Build produces the green alias and wraps it in a Red-rooted As.
func (b *AliasBuilder[As]) Build(c *green.Cache) As {
	g := b.BuildGreen(c)
	v, ok := b.new(red.Root(g))
	if !ok {
		panic(fmt.Sprintf("ast: alias builder %q produced a green value its wrapper rejected", b.alias))
	}
	return v
}

// IntoBuilder is implemented by any concrete builder that can stand in
// for category As — a token or node builder appearing anywhere As is
// expected, without a synthetic wrapping node. Generated wrappers
// implement this once per category they inhabit, baking in both the
// alias name and As's NewFunc.
type IntoBuilder[As Ast] interface {
	AstBuilder
	// Into wraps the receiver in the As category's alias.
	Into() *AliasBuilder[As]
}

// IntoDyn returns b's alias wrapper as a plain AstBuilder, for placing
// into a []DynBuilder alongside builders of other concrete types that
// all inhabit category As.
func IntoDyn[As Ast](b IntoBuilder[As]) DynBuilder {
	return b.Into()
}

// RawToken builds a literal, unnamed token — the punctuation a grammar
// emits directly (an opening paren, a dot) without per-occurrence
// validation against any Ast wrapper. Unlike TokenBuilder it carries no
// NewFunc, since nothing ever needs to validate a lone punctuation mark
// back into a typed wrapper; it only ever appears as a NodeBuilder part.
type RawToken struct {
	name, value, pre, post string
}

// Punct returns a RawToken tagged "token" with value.
func Punct(value string) *RawToken {
	return &RawToken{name: "token", value: value}
}

// WithPre attaches leading trivia text.
func (r *RawToken) WithPre(pre string) *RawToken {
	r.pre = pre
	return r
}

// WithPost attaches trailing trivia text.
func (r *RawToken) WithPost(post string) *RawToken {
	r.post = post
	return r
}

// BuildGreen implements AstBuilder.
func (r *RawToken) BuildGreen(c *green.Cache) green.Green {
	return c.WithTrivia(r.name, r.pre, r.value, r.post)
}

// NodeBuilder fluently assembles a Green-Node from an ordered mix of
// literal punctuation and heterogeneous child builders, then validates
// and wraps the result as T. It is the builder-side counterpart a
// grammar's code generator emits for rules with more than one child
// (spec.md §4.F, "Polymorphic builders with heterogeneous children"):
// the boxed-trait-object shape is realized here as []AstBuilder, each
// element obtained from some concrete type's IntoBuilder.Into (or, for
// bare punctuation, from Punct).
type NodeBuilder[T Ast] struct {
	name  Name
	new   NewFunc[T]
	parts []AstBuilder
}

// NewNodeBuilder returns an empty NodeBuilder tagged name.
func NewNodeBuilder[T Ast](newFn NewFunc[T], name Name) *NodeBuilder[T] {
	return &NodeBuilder[T]{name: name, new: newFn}
}

// Child appends a single part.
func (b *NodeBuilder[T]) Child(part AstBuilder) *NodeBuilder[T] {
	b.parts = append(b.parts, part)
	return b
}

// Children appends a sequence of parts, in order.
func (b *NodeBuilder[T]) Children(parts []DynBuilder) *NodeBuilder[T] {
	b.parts = append(b.parts, parts...)
	return b
}

// Fill is the common shape a fixed-arity grammar rule's constructor
// reaches for: a literal opening token, an ordered sequence of children,
// and a literal closing token.
func (b *NodeBuilder[T]) Fill(open string, children []DynBuilder, close string) *NodeBuilder[T] {
	return b.Child(Punct(open)).Children(children).Child(Punct(close))
}

// BuildGreen implements AstBuilder.
func (b *NodeBuilder[T]) BuildGreen(c *green.Cache) green.Green {
	parts := b.parts
	return c.Node(b.name, func(*green.Cache) []green.Green {
		children := make([]green.Green, len(parts))
		for i, p := range parts {
			children[i] = p.BuildGreen(c)
		}
		return children
	})
}

// Build produces the green node and wraps it in a Red-rooted T.
func (b *NodeBuilder[T]) Build(c *green.Cache) T {
	g := b.BuildGreen(c)
	v, ok := b.new(red.Root(g))
	if !ok {
		panic(fmt.Sprintf("ast: node builder %q produced a green value its wrapper rejected", b.name))
	}
	return v
}
