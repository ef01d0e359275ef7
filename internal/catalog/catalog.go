package catalog

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"
	"slices"

	"github.com/pelletier/go-toml/v2"
)

//go:embed catalog.toml
var builtinTOML []byte

var builtin = mustParse(builtinTOML)

// document is the on-disk shape of a catalog file.
type document struct {
	Commands []Command `toml:"command"`
}

func mustParse(data []byte) Catalog {
	c, err := Parse(data)
	if err != nil {
		panic(fmt.Sprintf("built-in catalog: %v", err))
	}
	return c
}

// AllCommands returns the built-in catalog. Each call returns a fresh copy.
func AllCommands() Catalog {
	return slices.Clone(builtin)
}

// Parse decodes a catalog from its TOML form. Unknown keys and unknown kinds
// are rejected.
func Parse(data []byte) (Catalog, error) {
	var doc document
	dec := toml.NewDecoder(bytes.NewReader(data)).DisallowUnknownFields()
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}
	return Catalog(doc.Commands), nil
}

// Load reads and parses a catalog file.
func Load(path string) (Catalog, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	c, err := Parse(b)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// Add appends cmd to the end of c.
func Add(c Catalog, cmd Command) Catalog {
	return append(c, cmd)
}

// Remove drops every command named exactly name. The relative order of the
// remaining commands is unchanged. Removing a missing name is not an error.
func Remove(c Catalog, name string) Catalog {
	return slices.DeleteFunc(c, func(cmd Command) bool { return cmd.Name == name })
}

// FilterByCategory returns the commands whose category equals category, in
// catalog order.
func FilterByCategory(c Catalog, category string) Catalog {
	var out Catalog
	for _, cmd := range c {
		if cmd.Category == category {
			out = append(out, cmd)
		}
	}
	return out
}

// Categories returns the distinct categories in c, sorted.
func Categories(c Catalog) []string {
	out := make([]string, 0, len(c))
	for _, cmd := range c {
		out = append(out, cmd.Category)
	}
	slices.Sort(out)
	return slices.Compact(out)
}

// Find returns the index of the first command named name.
func Find(c Catalog, name string) (int, bool) {
	i := slices.IndexFunc(c, func(cmd Command) bool { return cmd.Name == name })
	return i, i >= 0
}

// Labels returns the menu label of every command, in order.
func Labels(c Catalog) []string {
	out := make([]string, len(c))
	for i, cmd := range c {
		out[i] = cmd.Label()
	}
	return out
}
