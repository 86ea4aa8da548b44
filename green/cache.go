package green

import (
	"strconv"
	"strings"

	"github.com/syntaxkit/cst/text"
)

// CacheOption configures a Cache at construction time, in the same
// functional-options style the teacher uses for its Lexer/Parser
// constructors.
type CacheOption func(*Cache)

// WithInterning enables structural deduplication: equal subtrees built
// through this Cache share a single underlying Green. Interning is never
// required for correctness (spec: "No observable difference exists
// between an interned and non-interned result") — it exists to shrink
// memory for large, repetitive trees.
func WithInterning() CacheOption {
	return func(c *Cache) {
		c.intern = newInternTable()
	}
}

// Cache builds Green values. It is the only way to construct a Green; it
// may deduplicate (intern) equal subtrees but is not required to. A Cache
// is single-owner for the duration of a build and must not be used
// concurrently.
type Cache struct {
	intern *internTable
}

// NewCache returns a Cache with no interning.
func NewCache(opts ...CacheOption) *Cache {
	c := &Cache{}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Token returns a Green-Token with empty prefix and postfix.
func (c *Cache) Token(name Name, value string) Green {
	return c.WithTrivia(name, "", value, "")
}

// WithTrivia returns a Green-Token carrying leading/trailing trivia. When
// value is empty, this is the shape used to represent end-of-input
// carrying trailing trivia; by convention name is "eof" for that case,
// but this constructor itself doesn't enforce it — Builder.Token is the
// caller that does.
func (c *Cache) WithTrivia(name Name, pre, value, post string) Green {
	g := Green{d: &data{
		name: name,
		size: text.SizeOf(pre) + text.SizeOf(value) + text.SizeOf(post),
		kind: kindToken,
		token: Token{
			Prefix:  pre,
			Value:   value,
			Postfix: post,
		},
	}}
	return c.internGreen(g)
}

// Node invokes build to obtain an ordered sequence of children and returns
// a Green-Node whose size is the sum of the children's sizes.
func (c *Cache) Node(name Name, build func(*Cache) []Green) Green {
	children := build(c)
	var size text.Size
	for _, ch := range children {
		size += ch.Size()
	}
	g := Green{d: &data{
		name: name,
		size: size,
		kind: kindNode,
		node: Node{Children: children},
	}}
	return c.internGreen(g)
}

// Alias invokes build to obtain the inner Green (which may be the zero
// Green to represent a missing node) and returns a Green-Alias wrapping
// it.
func (c *Cache) Alias(name Name, build func(*Cache) Green) Green {
	inner := build(c)
	var size text.Size
	var alias *Green
	if !inner.IsZero() {
		size = inner.Size()
		innerCopy := inner
		alias = &innerCopy
	}
	g := Green{d: &data{
		name:  name,
		size:  size,
		kind:  kindAlias,
		alias: alias,
	}}
	return c.internGreen(g)
}

func (c *Cache) internGreen(g Green) Green {
	if c.intern == nil {
		return g
	}
	return c.intern.intern(g)
}

// internTable deduplicates structurally-equal Green values. It is adapted
// from the teacher's two hash-keyed dedup idioms: compressor's
// UniqueEntriesTable.Compress (canonicalize a row into a byte key, look it
// up before allocating) and grammar/symbol's SymbolTable (a map from a
// canonical text key to a shared value). Here the key is a structural
// encoding of a Green subtree and the shared value is the Green itself
// rather than a row number or a bit-packed symbol.
type internTable struct {
	byKey map[string]Green
}

func newInternTable() *internTable {
	return &internTable{byKey: map[string]Green{}}
}

func (t *internTable) intern(g Green) Green {
	key := canonicalKey(g)
	if existing, ok := t.byKey[key]; ok {
		return existing
	}
	t.byKey[key] = g
	return g
}

// canonicalKey builds a string that uniquely identifies g's structural
// shape: its kind, its name, and (recursively) its payload. Two Green
// values with the same canonical key are interchangeable per spec's
// equality model (name + kind + child/token content).
func canonicalKey(g Green) string {
	var b strings.Builder
	writeCanonicalKey(&b, g)
	return b.String()
}

func writeCanonicalKey(b *strings.Builder, g Green) {
	b.WriteString(strconv.Itoa(int(g.d.kind)))
	b.WriteByte(':')
	b.WriteString(g.d.name)
	b.WriteByte(':')
	switch g.d.kind {
	case kindToken:
		b.WriteString(strconv.Quote(g.d.token.Prefix))
		b.WriteString(strconv.Quote(g.d.token.Value))
		b.WriteString(strconv.Quote(g.d.token.Postfix))
	case kindNode:
		b.WriteByte('[')
		for _, c := range g.d.node.Children {
			writeCanonicalKey(b, c)
			b.WriteByte(',')
		}
		b.WriteByte(']')
	case kindAlias:
		if g.d.alias != nil {
			writeCanonicalKey(b, *g.d.alias)
		} else {
			b.WriteString("<none>")
		}
	}
}
