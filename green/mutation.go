package green

import "fmt"

// ReplaceGreen walks from root following path — a sequence of child
// indices, one Node.Children index per Node level and the implicit single
// index 0 at each Alias(Some(_)) level — and returns a new root with the
// addressed subtree swapped for replacement. Because Green values are
// immutable and shared, the result shares every subtree untouched by the
// walk with root: only the nodes and aliases on the path itself, plus
// their ancestors up to root, are rebuilt.
//
// ReplaceGreen panics if path descends into a Token or an Alias(None),
// or if a Node-level index is out of range — those are programmer errors
// in the caller's path, not something a malformed input tree can trigger.
func ReplaceGreen(cache *Cache, root Green, path []int, replacement Green) Green {
	return replaceAt(cache, root, path, replacement)
}

func replaceAt(cache *Cache, g Green, path []int, replacement Green) Green {
	if len(path) == 0 {
		return replacement
	}

	idx := path[0]
	rest := path[1:]

	if inner, ok := g.Inner(); ok {
		if idx != 0 {
			panic(fmt.Sprintf("green: alias %q has no child at index %v", g.Name(), idx))
		}
		name := g.Name()
		newInner := replaceAt(cache, inner, rest, replacement)
		return cache.Alias(name, func(*Cache) Green { return newInner })
	}

	if node, ok := g.AsNode(); ok {
		if idx < 0 || idx >= len(node.Children) {
			panic(fmt.Sprintf("green: node %q has no child at index %v", g.Name(), idx))
		}
		children := append([]Green(nil), node.Children...)
		children[idx] = replaceAt(cache, children[idx], rest, replacement)
		name := g.Name()
		return cache.Node(name, func(*Cache) []Green { return children })
	}

	panic(fmt.Sprintf("green: %q has no children to descend into", g.Name()))
}
