package green

import (
	"strings"
	"testing"
)

func buildSimple(c *Cache) Green {
	return c.Node("Root", func(c *Cache) []Green {
		return []Green{
			c.Token("number", "2"),
			c.Token("op", "+"),
			c.Token("number", "2"),
		}
	})
}

func TestCache_PrintRoundTrip(t *testing.T) {
	c := NewCache()
	tree := buildSimple(c)
	if got, want := tree.String(), "2+2"; got != want {
		t.Fatalf("String() = %q, want %q", got, want)
	}
}

func TestCache_Nested(t *testing.T) {
	c := NewCache()
	tree := c.Node("Root", func(c *Cache) []Green {
		return []Green{
			c.Node("Add", func(c *Cache) []Green {
				return []Green{
					c.Token("number", "2"),
					c.Token("op", "+"),
					c.Token("number", "2"),
				}
			}),
		}
	})
	if got, want := tree.String(), "2+2"; got != want {
		t.Fatalf("String() = %q, want %q", got, want)
	}
}

func TestCache_Size(t *testing.T) {
	c := NewCache()
	tree := buildSimple(c)
	if got, want := tree.Size().Int(), 3; got != want {
		t.Fatalf("Size() = %v, want %v", got, want)
	}
}

func TestCache_Trivia(t *testing.T) {
	c := NewCache()
	tree := c.Node("Root", func(c *Cache) []Green {
		return []Green{
			c.WithTrivia("number", "", "2", " "),
			c.WithTrivia("op", "", "+", " "),
			c.Token("number", "2"),
		}
	})
	if got, want := tree.String(), "2 + 2"; got != want {
		t.Fatalf("String() = %q, want %q", got, want)
	}
}

// TestSizeInvariant exercises testable property 2 from the spec: for
// every Green g, g.Size() == len(g.String()).
func TestSizeInvariant(t *testing.T) {
	c := NewCache()
	tree := c.Node("Root", func(c *Cache) []Green {
		return []Green{
			c.WithTrivia("a", "  ", "x", "\t"),
			c.Node("Inner", func(c *Cache) []Green {
				return []Green{c.WithTrivia("b", "", "y", "\n")}
			}),
		}
	})
	if got, want := tree.Size().Int(), len(tree.String()); got != want {
		t.Fatalf("Size() = %v, want %v (len of String())", got, want)
	}
}

func TestAlias_Transparency(t *testing.T) {
	c := NewCache()
	tok := c.Token("atom", "a")
	aliased := c.Alias("Value", func(*Cache) Green { return tok })

	if !aliased.Is("Value") {
		t.Fatal("aliased.Is(\"Value\") = false, want true")
	}
	if !aliased.Is("atom") {
		t.Fatal("aliased.Is(\"atom\") = false, want true (alias transparency)")
	}
	if _, ok := aliased.AsToken(); !ok {
		t.Fatal("aliased.AsToken() ok = false, want true (alias transparency)")
	}
	if aliased.String() != "a" {
		t.Fatalf("aliased.String() = %q, want %q", aliased.String(), "a")
	}
}

func TestAlias_None(t *testing.T) {
	c := NewCache()
	missing := c.Alias("Value", func(*Cache) Green { return Green{} })
	if !missing.Is("Value") {
		t.Fatal("missing.Is(\"Value\") = false, want true")
	}
	if missing.String() != "" {
		t.Fatalf("missing.String() = %q, want empty", missing.String())
	}
	if missing.Size() != 0 {
		t.Fatalf("missing.Size() = %v, want 0", missing.Size())
	}
	if !strings.Contains(missing.GoString(), "missing") {
		t.Fatalf("GoString() = %q, want it to mention \"missing\"", missing.GoString())
	}
}

func TestInterning_SharesEqualSubtrees(t *testing.T) {
	c := NewCache(WithInterning())
	a := c.Token("atom", "x")
	b := c.Token("atom", "x")
	if a.d != b.d {
		t.Fatal("interned tokens with identical content should share one backing value")
	}
}

func TestInterning_DistinguishesDifferentContent(t *testing.T) {
	c := NewCache(WithInterning())
	a := c.Token("atom", "x")
	b := c.Token("atom", "y")
	if a.d == b.d {
		t.Fatal("tokens with different content must not be shared")
	}
}

func TestNoInterning_ObservablyIdentical(t *testing.T) {
	plain := NewCache()
	interned := NewCache(WithInterning())

	build := func(c *Cache) Green {
		return c.Node("Root", func(c *Cache) []Green {
			return []Green{c.Token("atom", "x"), c.Token("atom", "x")}
		})
	}

	a := build(plain)
	b := build(interned)
	if a.String() != b.String() || a.Size() != b.Size() || a.Name() != b.Name() {
		t.Fatal("interning must not change the observable shape of a tree")
	}
}

func TestDebugDump_ShowsRangesAndTrivia(t *testing.T) {
	c := NewCache()
	tree := c.Node("Root", func(c *Cache) []Green {
		return []Green{c.WithTrivia("a", "\t", "x", "\n")}
	})
	dump := tree.GoString()
	for _, want := range []string{"Root @ 0..3", "a @ 0..3", "`x`", "pre: `\\t`", "post: `\\n`"} {
		if !strings.Contains(dump, want) {
			t.Fatalf("GoString() = %q, want it to contain %q", dump, want)
		}
	}
}
