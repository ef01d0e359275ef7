// Package catalog provides the list of maintenance commands nudge can run.
package catalog

import "fmt"

// Kind tells the executor how to run a Command.
type Kind int

const (
	// Shell commands are passed verbatim to `<shell> -c`.
	Shell Kind = iota
	// Custom commands name a routine in the executor's registry.
	Custom
)

func (k Kind) String() string {
	switch k {
	case Shell:
		return "shell"
	case Custom:
		return "custom"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// MarshalText implements encoding.TextMarshaler.
func (k Kind) MarshalText() ([]byte, error) {
	switch k {
	case Shell, Custom:
		return []byte(k.String()), nil
	}
	return nil, fmt.Errorf("invalid kind: %d", int(k))
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *Kind) UnmarshalText(b []byte) error {
	switch string(b) {
	case "shell":
		*k = Shell
	case "custom":
		*k = Custom
	default:
		return fmt.Errorf("invalid kind %q: want \"shell\" or \"custom\"", string(b))
	}
	return nil
}

// Command is a single catalog entry.
type Command struct {
	Name        string `toml:"name"`
	Invocation  string `toml:"invocation"`
	Kind        Kind   `toml:"kind"`
	Icon        string `toml:"icon"`
	Description string `toml:"description"`
	Category    string `toml:"category"`
}

// Label is the text shown for the command in menus and progress output.
func (c Command) Label() string {
	if c.Icon == "" {
		return c.Name
	}
	return c.Icon + " " + c.Name
}

// Catalog is an ordered list of commands. Order is display order and the
// order used when every command runs.
type Catalog []Command
