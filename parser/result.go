package parser

import "github.com/syntaxkit/cst/green"

// Result is the outcome of a top-level Parse: the built tree, if any, and
// every error collected along the way. HasRoot is false only when the
// top-level parser itself returned no Green — ordinary mismatches further
// down the tree still produce a rooted result containing "error" leaves.
type Result struct {
	Root    green.Green
	HasRoot bool
	Errors  []Error
}
