package parser

import (
	"fmt"

	"github.com/syntaxkit/cst/text"
)

// Error is a single, flat parse error: a description and the byte range
// it applies to. Errors are collected, never thrown — a mismatch still
// produces a Green "error" leaf so the tree stays total (spec.md §4.I).
//
// Grounded on original_source/crates/parser/src/error.rs.
type Error struct {
	Desc  string
	Range text.Range
}

// Error implements the error interface so an Error can be passed to
// anything expecting one (fmt.Errorf("%w", ...), log fields, and so on),
// mirroring how vartan's own parse errors satisfy error despite being
// collected rather than returned directly.
func (e Error) Error() string {
	return fmt.Sprintf("%v: %s", e.Range, e.Desc)
}
