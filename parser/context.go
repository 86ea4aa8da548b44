package parser

// Context carries the optional leading/trailing trivia parsers that
// Builder.Token consults around every real token. Its zero value is the
// no-trivia context (both parsers nil), matching spec.md's "Default
// leaves both unset."
//
// Grounded on original_source/crates/parser/src/context.rs.
type Context[T Kind[T], E any] struct {
	LeadingTrivia  Parser[T, E]
	TrailingTrivia Parser[T, E]
}

// NewContext returns a Context using p as both the leading and trailing
// trivia parser — the common case of a single whitespace/comment parser
// applied on both sides of every token.
func NewContext[T Kind[T], E any](p Parser[T, E]) *Context[T, E] {
	return &Context[T, E]{LeadingTrivia: p, TrailingTrivia: p}
}
