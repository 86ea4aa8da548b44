// Package green implements the lossless, immutable, shareable tree that
// backs the toolkit: named nodes, tokens carrying leading/trailing trivia,
// and aliases that let one subtree stand in for a grammar category without
// copying it.
package green

import (
	"fmt"
	"strings"

	"github.com/syntaxkit/cst/text"
)

// Name is the structural tag of a node, token, or alias. Equality is
// string equality; a static short identifier such as "atom" or "Value".
type Name = string

// kind discriminates the three Green variants. It is unexported: callers
// go through Is/AsNode/AsToken/Children rather than switching on it.
type kind int

const (
	kindToken kind = iota
	kindNode
	kindAlias
)

// Token is the payload of a token-kind Green: the matched text plus the
// trivia that surrounds it. Prefix and postfix are emitted verbatim by
// Green.String so that re-emission is byte-exact.
type Token struct {
	Prefix  string
	Value   string
	Postfix string
}

// Node is the payload of a node-kind Green: an ordered sequence of
// children.
type Node struct {
	Children []Green
}

// data is the shared, immutable backing store for a Green value. Green
// itself is a thin handle over a pointer to data, so cloning a Green is a
// pointer copy.
type data struct {
	name  Name
	size  text.Size
	kind  kind
	node  Node
	token Token
	// alias is the inner Green of an Alias(Some(_)); nil means Alias(None).
	alias *Green
}

// Green is an immutable, shareable tree value: a Token, a Node, or an
// Alias wrapping another Green. Green values are never mutated after
// construction; use Cache to build new ones and ReplaceGreen to derive a
// modified root that shares every untouched subtree with the original.
type Green struct {
	d *data
}

// Name returns the structural tag of g.
func (g Green) Name() Name {
	return g.d.name
}

// Size returns the cached UTF-8 byte length of all token text (including
// trivia) contained in g.
func (g Green) Size() text.Size {
	return g.d.size
}

// IsZero reports whether g is the zero Green value (no tree at all, as
// opposed to an Alias(None) which is itself a valid, named Green).
func (g Green) IsZero() bool {
	return g.d == nil
}

// IsAlias reports whether g is an Alias, regardless of whether its inner
// value is present.
func (g Green) IsAlias() bool {
	return g.d.kind == kindAlias
}

// Is reports whether name appears on g directly, or transitively through
// a chain of Alias wrappers.
func (g Green) Is(name Name) bool {
	if g.d.kind == kindAlias && g.d.alias != nil {
		if g.d.alias.Is(name) {
			return true
		}
	}
	return g.d.name == name
}

// AsNode returns g's Node payload, looking through any Alias(Some(_))
// wrappers. The second return value is false for a Token or an
// Alias(None).
func (g Green) AsNode() (Node, bool) {
	switch g.d.kind {
	case kindNode:
		return g.d.node, true
	case kindAlias:
		if g.d.alias != nil {
			return g.d.alias.AsNode()
		}
	}
	return Node{}, false
}

// AsToken returns g's Token payload, looking through any Alias(Some(_))
// wrappers. The second return value is false for a Node or an
// Alias(None).
func (g Green) AsToken() (Token, bool) {
	switch g.d.kind {
	case kindToken:
		return g.d.token, true
	case kindAlias:
		if g.d.alias != nil {
			return g.d.alias.AsToken()
		}
	}
	return Token{}, false
}

// Inner returns the wrapped Green of an Alias(Some(_)). The second value
// is false if g is not an Alias, or is an Alias(None).
func (g Green) Inner() (Green, bool) {
	if g.d.kind == kindAlias && g.d.alias != nil {
		return *g.d.alias, true
	}
	return Green{}, false
}

// Children returns g's direct children, looking through Alias wrappers.
// A Token or an Alias(None) has no children.
func (g Green) Children() []Green {
	switch g.d.kind {
	case kindNode:
		return g.d.node.Children
	case kindAlias:
		if g.d.alias != nil {
			return g.d.alias.Children()
		}
	}
	return nil
}

// String concatenates every token's prefix, value, and postfix in source
// order, skipping Alias(None) subtrees. For a tree that consumed all of
// its input without dropping any bytes, this reconstructs the input
// exactly.
func (g Green) String() string {
	var b strings.Builder
	b.Grow(g.d.size.Int())
	writeGreen(&b, g)
	return b.String()
}

func writeGreen(b *strings.Builder, g Green) {
	switch g.d.kind {
	case kindToken:
		b.WriteString(g.d.token.Prefix)
		b.WriteString(g.d.token.Value)
		b.WriteString(g.d.token.Postfix)
	case kindNode:
		for _, c := range g.d.node.Children {
			writeGreen(b, c)
		}
	case kindAlias:
		if g.d.alias != nil {
			writeGreen(b, *g.d.alias)
		}
	}
}

// GoString renders g as a debug tree: one line per node, with byte ranges
// for non-alias values, trivia shown escaped for tokens, and "missing"
// for an Alias(None). This is informational only, not a compatibility
// surface — callers that need lossless text use String.
func (g Green) GoString() string {
	var b strings.Builder
	b.WriteString("\n--- GREEN TREE ---\n")
	dumpGreen(&b, g, 0, 0, false)
	b.WriteString("--- END ---\n")
	return b.String()
}

func dumpGreen(b *strings.Builder, g Green, offset text.Size, depth int, skipIndent bool) {
	if !skipIndent {
		b.WriteString(strings.Repeat(" ", depth*4))
	}
	b.WriteString(g.d.name)

	if g.d.kind == kindAlias {
		b.WriteString(", ")
	} else {
		fmt.Fprintf(b, " @ %v..%v", offset, offset+g.d.size)
	}

	switch g.d.kind {
	case kindNode:
		b.WriteByte('\n')
		off := offset
		for _, c := range g.d.node.Children {
			dumpGreen(b, c, off, depth+1, false)
			off += c.Size()
		}
	case kindAlias:
		if g.d.alias != nil {
			dumpGreen(b, *g.d.alias, offset, depth, true)
		} else {
			b.WriteString(" missing\n")
		}
	case kindToken:
		fmt.Fprintf(b, " `%s`", g.d.token.Value)
		if g.d.token.Prefix != "" {
			fmt.Fprintf(b, " ; pre: `%s`", debugEscape(g.d.token.Prefix))
		}
		if g.d.token.Postfix != "" {
			fmt.Fprintf(b, " ; post: `%s`", debugEscape(g.d.token.Postfix))
		}
		b.WriteByte('\n')
	}
}

// debugEscape escapes only tab and newline, matching the original's
// fmt_debug_str (a plain "\t"/"\n" replace, not a full Go-style quote).
func debugEscape(s string) string {
	s = strings.ReplaceAll(s, "\t", `\t`)
	s = strings.ReplaceAll(s, "\n", `\n`)
	return s
}
