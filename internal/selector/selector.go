// Package selector maps a user's menu selection onto catalog commands.
package selector

import (
	"fmt"
	"slices"

	"github.com/sahilm/fuzzy"

	"github.com/ZeroDread/nudge/internal/catalog"
)

// Resolve returns the commands picked by sel. An empty selection means every
// command, in catalog order. Otherwise commands come back in the order the
// indices were given.
//
// Indices come from a menu built over the same catalog, so an out-of-range
// index is a bug and Resolve panics.
func Resolve(c catalog.Catalog, sel []int) catalog.Catalog {
	if len(sel) == 0 {
		return slices.Clone(c)
	}
	out := make(catalog.Catalog, 0, len(sel))
	for _, i := range sel {
		if i < 0 || i >= len(c) {
			panic(fmt.Sprintf("selector: index %d out of range [0,%d)", i, len(c)))
		}
		out = append(out, c[i])
	}
	return out
}

// Indices maps command names to catalog indices, keeping the order of names.
func Indices(c catalog.Catalog, names []string) ([]int, error) {
	out := make([]int, 0, len(names))
	for _, n := range names {
		i, ok := catalog.Find(c, n)
		if !ok {
			if guess, found := Suggest(c, n); found {
				return nil, fmt.Errorf("command not found: %s (did you mean %q?)", n, guess)
			}
			return nil, fmt.Errorf("command not found: %s", n)
		}
		out = append(out, i)
	}
	return out, nil
}

// Suggest returns the command name that best fuzzy-matches query.
func Suggest(c catalog.Catalog, query string) (string, bool) {
	matches := fuzzy.Find(query, names(c))
	if len(matches) == 0 {
		return "", false
	}
	return matches[0].Str, true
}

// Filter returns the commands whose name fuzzy-matches query, in catalog
// order. An empty query keeps every command.
func Filter(c catalog.Catalog, query string) catalog.Catalog {
	if query == "" {
		return slices.Clone(c)
	}
	matches := fuzzy.Find(query, names(c))
	idx := make([]int, len(matches))
	for i, m := range matches {
		idx[i] = m.Index
	}
	slices.Sort(idx)
	out := make(catalog.Catalog, 0, len(idx))
	for _, i := range idx {
		out = append(out, c[i])
	}
	return out
}

func names(c catalog.Catalog) []string {
	out := make([]string, len(c))
	for i, cmd := range c {
		out[i] = cmd.Name
	}
	return out
}
