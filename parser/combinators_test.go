package parser

import (
	"testing"

	"github.com/syntaxkit/cst/lexer"
)

func TestAnyToken_ConsumesWhateverComesNext(t *testing.T) {
	lx := newSexpLexer("(")
	res := Parse(lx, AnyToken[tok, struct{}]())
	if len(res.Errors) != 0 {
		t.Fatalf("errors = %v, want none", res.Errors)
	}
	if got, want := res.Root.String(), "("; got != want {
		t.Fatalf("String() = %q, want %q", got, want)
	}
	if !res.Root.Is("token") {
		t.Fatal(`any_token should be named "token"`)
	}
}

func TestAnyToken_AtEOF_ProducesEOFLeaf(t *testing.T) {
	lx := newSexpLexer("")
	res := Parse(lx, AnyToken[tok, struct{}]())
	if len(res.Errors) != 0 {
		t.Fatalf("errors = %v, want none", res.Errors)
	}
	if !res.Root.Is("eof") {
		t.Fatal(`at EOF, any_token should still produce an "eof" leaf`)
	}
}

func TestToken_Mismatch_ProducesStableErrorText(t *testing.T) {
	lx := newSexpLexer(")")
	res := Parse(lx, Token[tok, struct{}](&lparenK))
	if len(res.Errors) != 1 {
		t.Fatalf("errors = %v, want exactly one", res.Errors)
	}
	if got, want := res.Errors[0].Desc, "Expected ( but found )"; got != want {
		t.Fatalf("error = %q, want %q", got, want)
	}
	if got, want := res.Root.String(), ")"; got != want {
		t.Fatalf("String() = %q, want %q (the mismatched token must still be consumed)", got, want)
	}
}

func TestToken_EOF_Expected_ProducesExpectedEOFMessage(t *testing.T) {
	lx := newSexpLexer("(")
	res := Parse(lx, Token[tok, struct{}](nil))
	if len(res.Errors) != 1 {
		t.Fatalf("errors = %v, want exactly one", res.Errors)
	}
	if got, want := res.Errors[0].Desc, "Expected EOF, found ("; got != want {
		t.Fatalf("error = %q, want %q", got, want)
	}
}

func TestTokens_EmptySet_MeansExpectEOF(t *testing.T) {
	lx := newSexpLexer("a")
	res := Parse(lx, Tokens[tok, struct{}](nil))
	if len(res.Errors) != 1 {
		t.Fatalf("errors = %v, want exactly one", res.Errors)
	}
	if got, want := res.Errors[0].Desc, "Expected EOF, found atom"; got != want {
		t.Fatalf("error = %q, want %q", got, want)
	}
}

func TestTokens_MultipleExpected_ListsThemAll(t *testing.T) {
	lx := newSexpLexer("a")
	res := Parse(lx, Tokens[tok, struct{}]([]tok{tLParen, tRParen}))
	if len(res.Errors) != 1 {
		t.Fatalf("errors = %v, want exactly one", res.Errors)
	}
	if got, want := res.Errors[0].Desc, "Expected one of (, ) but found atom"; got != want {
		t.Fatalf("error = %q, want %q", got, want)
	}
}

func TestErrorAt_AlwaysReportsAndConsumes(t *testing.T) {
	lx := newSexpLexer("xyz")
	res := Parse(lx, ErrorAt[tok, struct{}]("unexpected"))
	if len(res.Errors) != 1 || res.Errors[0].Desc != "unexpected" {
		t.Fatalf("errors = %v, want exactly one \"unexpected\"", res.Errors)
	}
	if !res.Root.Is("error") {
		t.Fatal(`error() should produce an "error"-named leaf`)
	}
	if got, want := res.Root.String(), "xyz"; got != want {
		t.Fatalf("String() = %q, want %q", got, want)
	}
}

// TestTermination_ErrorAlwaysAdvances exercises testable property 6: a
// mismatch consumes at least one token, so a caller retrying the same
// combinator in a loop can never spin forever on the same input.
func TestTermination_ErrorAlwaysAdvances(t *testing.T) {
	lx := newSexpLexer(")))")
	var iterations int
	for {
		if _, ok := lx.Peek(); !ok {
			break
		}
		before := lx.Span().Start
		res := Parse(lx, Token[tok, struct{}](&lparenK))
		if !res.HasRoot {
			t.Fatal("want a root from every iteration")
		}
		after := lx.Span().Start
		if after <= before {
			t.Fatal("mismatch must advance the cursor")
		}
		iterations++
		if iterations > 10 {
			t.Fatal("did not terminate")
		}
	}
	if iterations != 3 {
		t.Fatalf("iterations = %v, want 3 (one per ')')", iterations)
	}
}

var _ = lexer.NewLexer[tok, struct{}]
