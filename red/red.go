// Package red implements the positioned view computed on demand over a
// green.Green tree: absolute byte offsets and parent links, both absent
// from the green tree itself so that green values stay shareable across
// many positions and many parse trees.
package red

import (
	"github.com/syntaxkit/cst/green"
	"github.com/syntaxkit/cst/text"
)

// Red is a positioned view over a green.Green value. The root has offset
// 0 and no parent; every other Red is produced by descending from a
// parent on demand. Two Reds with the same green value, offset, and
// parent chain are observationally equal, but == on Red values compares
// the parent pointer by identity, so two such Reds from separate descents
// compare unequal; compare via Green, Offset, and Parent if needed.
type Red struct {
	g      green.Green
	parent *Red
	offset text.Size
}

// Root returns a Red over g with offset 0 and no parent.
func Root(g green.Green) Red {
	return Red{g: g, offset: 0}
}

// Green returns the green value this Red is a view over.
func (r Red) Green() green.Green {
	return r.g
}

// Parent returns r's parent Red, or (Red{}, false) at the root.
func (r Red) Parent() (Red, bool) {
	if r.parent == nil {
		return Red{}, false
	}
	return *r.parent, true
}

// Offset returns r's absolute byte offset from the start of the source.
func (r Red) Offset() text.Size {
	return r.offset
}

// Range returns r's absolute byte range in the source.
func (r Red) Range() text.Range {
	return text.At(r.offset, r.g.Size())
}

// Is reports whether name appears on r's green value directly or via
// alias.
func (r Red) Is(name green.Name) bool {
	return r.g.Is(name)
}

// Children returns r's children as positioned Reds, computing each
// child's offset as the sum of its preceding siblings' sizes added to
// r's own offset. If r's green value is an Alias(Some(inner)), descent
// goes through inner first — alias wrapping is transparent to
// navigation, even though Is still reports the alias's own name for r
// itself.
func (r Red) Children() []Red {
	children := r.g.Children()
	if len(children) == 0 {
		return nil
	}
	out := make([]Red, len(children))
	offset := r.offset
	for i, c := range children {
		out[i] = Red{g: c, parent: &r, offset: offset}
		offset += c.Size()
	}
	return out
}
