// This file adapts github.com/nihei9/maleeni — a DFA-compiled,
// pattern-driven lexer — into this package's pull-based LexFunc contract.
// It is the second of the two TokenKind implementation styles spec.md §6
// calls out: a regex-/pattern-driven lexer adapter, alongside the
// hand-written production function the rest of this package and its
// tests use directly.
//
// Grounded on grammar/grammar.go (assembling an mlspec.LexSpec of named
// regex entries and compiling it with mlcompiler.Compile — the same step
// the `maleeni compile` CLI performs offline from a lexspec.json file,
// invoked here directly so no generated artifact or external tool is
// needed) and on spec/lexer.go / driver/token_stream.go (driving the
// compiled spec with mldriver.NewLexer and reading
// mldriver.Token{KindName, Lexeme, Invalid, EOF} off its Next()).
package lexer

import (
	"fmt"
	"strings"

	mlcompiler "github.com/nihei9/maleeni/compiler"
	mldriver "github.com/nihei9/maleeni/driver"
	mlspec "github.com/nihei9/maleeni/spec"
)

// PatternRule names one token kind as a maleeni regex pattern — the same
// Kind/Pattern pairing grammar.go assembles per terminal production
// before compiling.
type PatternRule[T any] struct {
	Kind    T
	Name    string
	Pattern string
}

// CompiledPatterns is a maleeni DFA compiled once from a set of
// PatternRules, plus the Name->Kind lookup needed to translate an
// mldriver.Token's KindName back into the caller's kind type. Compile it
// once per grammar and reuse it across every source lexed.
type CompiledPatterns[T any] struct {
	spec    *mlspec.CompiledLexSpec
	byName  map[mlspec.LexKindName]T
	invalid T
}

// CompilePatterns compiles rules into a maleeni DFA. invalid is the kind
// reported for a byte sequence the DFA matches but flags Invalid — the
// same fallback spec/lexer.go's newInvalidToken represents for the
// teacher's own grammar lexer.
func CompilePatterns[T any](rules []PatternRule[T], invalid T) (*CompiledPatterns[T], error) {
	entries := make([]*mlspec.LexEntry, 0, len(rules))
	byName := make(map[mlspec.LexKindName]T, len(rules))
	for _, r := range rules {
		name := mlspec.LexKindName(r.Name)
		entries = append(entries, &mlspec.LexEntry{
			Kind:    name,
			Pattern: mlspec.LexPattern(r.Pattern),
		})
		byName[name] = r.Kind
	}
	compiled, err, cErrs := mlcompiler.Compile(&mlspec.LexSpec{Entries: entries}, mlcompiler.CompressionLevel(mlcompiler.CompressionLevelMax))
	if err != nil {
		return nil, fmt.Errorf("lexer: compiling maleeni pattern spec: %w (%v)", err, cErrs)
	}
	return &CompiledPatterns[T]{spec: compiled, byName: byName, invalid: invalid}, nil
}

// PatternState is the Extras a pattern-driven Lexer carries. Its
// underlying maleeni driver is built lazily, from whichever Input it
// first sees a token requested against, rather than at construction:
// Morph's convertExtras (spec.md §4.G) has no Input to read from, only
// the old Extras value, so eager construction can't know where in the
// source a post-morph PatternState should start reading. Deferring to
// first use means NewPatternState works identically whether it backs a
// brand-new Lexer or one just resumed after Morph discarded a pending
// peek and rewound to an un-consumed cursor position — either way, the
// first PatternLexFunc call sees the correct Input.Remaining().
type PatternState[T any] struct {
	cp  *CompiledPatterns[T]
	mlx *mldriver.Lexer
}

// NewPatternState returns the Extras value for a pattern-driven Lexer
// built over cp.
func NewPatternState[T any](cp *CompiledPatterns[T]) *PatternState[T] {
	return &PatternState[T]{cp: cp}
}

// PatternLexFunc is the LexFunc a maleeni-backed Lexer is constructed
// with:
//
//	lx := lexer.NewLexer[MyKind, *lexer.PatternState[MyKind]](
//		src, lexer.NewPatternState(cp), lexer.PatternLexFunc[MyKind])
//
// Each call pulls exactly one token from the underlying maleeni driver
// and advances in by the matched lexeme's length, keeping the Input
// cursor this package's Lexer relies on for peek/restore and Morph in
// lockstep with maleeni's own internal read position.
func PatternLexFunc[T Kind[T]](in *Input, st *PatternState[T]) (T, string, bool) {
	if st.mlx == nil {
		mlx, err := mldriver.NewLexer(st.cp.spec, strings.NewReader(in.Remaining()))
		if err != nil {
			var zero T
			return zero, "", false
		}
		st.mlx = mlx
	}
	tok, err := st.mlx.Next()
	if err != nil || tok.EOF {
		var zero T
		return zero, "", false
	}
	kind := st.cp.invalid
	if !tok.Invalid {
		if k, ok := st.cp.byName[mlspec.LexKindName(tok.KindName)]; ok {
			kind = k
		}
	}
	value, _ := in.Chomp(len(tok.Lexeme))
	return kind, value, true
}
