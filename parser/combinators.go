package parser

import (
	"fmt"
	"strings"

	"github.com/syntaxkit/cst/green"
)

// AnyToken accepts any single token, or EOF, naming it "token". It never
// reports a mismatch: at EOF it produces the usual eof-with-trivia leaf
// via Builder.Token.
func AnyToken[T Kind[T], E any]() Parser[T, E] {
	return ParseFunc[T, E](func(state State[T, E], ctx *Context[T, E]) (green.Green, bool, State[T, E]) {
		return NewBuilder(state, ctx).Name("token").Token()
	})
}

// Token accepts exactly one token of the given kind, naming it "token".
// A nil expected means "expect EOF here". On mismatch it reports an
// "Expected X but found Y"-style error (grounded on
// original_source/crates/parser/src/parsers.rs's Expected Display impl)
// and still consumes one token, as Builder.Error always does.
func Token[T Kind[T], E any](expected *T) Parser[T, E] {
	return ParseFunc[T, E](func(state State[T, E], ctx *Context[T, E]) (green.Green, bool, State[T, E]) {
		b := NewBuilder(state, ctx)
		peeked, ok := b.PeekToken()
		switch {
		case expected == nil && ok:
			return b.Error(fmt.Sprintf("Expected EOF, found %v", peeked))
		case expected != nil && !ok:
			return b.Error(fmt.Sprintf("Expected %v but found EOF", *expected))
		case expected != nil && ok && peeked != *expected:
			return b.Error(fmt.Sprintf("Expected %v but found %v", *expected, peeked))
		default:
			return b.Name("token").Token()
		}
	})
}

// Tokens accepts exactly one token whose kind is in expected. An empty
// expected means "expect EOF here", the set-valued sibling of Token.
func Tokens[T Kind[T], E any](expected []T) Parser[T, E] {
	wantEOF := len(expected) == 0
	return ParseFunc[T, E](func(state State[T, E], ctx *Context[T, E]) (green.Green, bool, State[T, E]) {
		b := NewBuilder(state, ctx)
		peeked, ok := b.PeekToken()
		switch {
		case wantEOF && ok:
			return b.Error(fmt.Sprintf("Expected EOF, found %v", peeked))
		case !wantEOF && !ok:
			return b.Error(fmt.Sprintf("%s but found EOF", expectedList(expected)))
		case !wantEOF && ok && !containsKind(expected, peeked):
			return b.Error(fmt.Sprintf("%s but found %v", expectedList(expected), peeked))
		default:
			return b.Name("token").Token()
		}
	})
}

// ErrorAt unconditionally consumes one token (or EOF) as an error leaf
// carrying desc — the combinator a grammar reaches for when it already
// knows, from context, that whatever comes next cannot be valid.
func ErrorAt[T Kind[T], E any](desc string) Parser[T, E] {
	return ParseFunc[T, E](func(state State[T, E], ctx *Context[T, E]) (green.Green, bool, State[T, E]) {
		return NewBuilder(state, ctx).Error(desc)
	})
}

func expectedList[T Kind[T]](expected []T) string {
	var b strings.Builder
	b.WriteString("Expected ")
	if len(expected) > 1 {
		b.WriteString("one of ")
	}
	for i, k := range expected {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(k.String())
	}
	return b.String()
}

func containsKind[T Kind[T]](set []T, k T) bool {
	for _, s := range set {
		if s == k {
			return true
		}
	}
	return false
}
