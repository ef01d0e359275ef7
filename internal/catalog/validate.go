package catalog

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"mvdan.cc/sh/v3/syntax"
)

// ValidateName checks whether name is acceptable as a command name: not
// empty after trimming, valid UTF-8, no control characters.
func ValidateName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("invalid name: name cannot be empty")
	}
	if !utf8.ValidString(name) {
		return fmt.Errorf("invalid name: contains invalid encoding")
	}
	for _, r := range name {
		if unicode.IsControl(r) {
			return fmt.Errorf("invalid name: contains control character U+%04X (%q)", r, r)
		}
	}
	return nil
}

// ValidateShell reports whether invocation parses as a single shell program.
// zsh is close enough to bash for the constructs catalog entries use.
func ValidateShell(invocation string) error {
	if strings.TrimSpace(invocation) == "" {
		return fmt.Errorf("empty invocation")
	}
	p := syntax.NewParser(syntax.Variant(syntax.LangBash))
	if _, err := p.Parse(strings.NewReader(invocation), ""); err != nil {
		return fmt.Errorf("invalid shell syntax: %w", err)
	}
	return nil
}

// Validate checks every command in c and returns all problems joined. known
// reports whether a custom key has a registered routine; nil skips that check.
//
// Construction never fails on these problems. Duplicate names and unknown
// custom keys only surface here or when the command is executed.
func Validate(c Catalog, known func(key string) bool) error {
	var errs []error
	seen := make(map[string]int, len(c))
	for i, cmd := range c {
		pos := i + 1
		if err := ValidateName(cmd.Name); err != nil {
			errs = append(errs, fmt.Errorf("command %d: %w", pos, err))
		}
		if first, dup := seen[cmd.Name]; dup {
			errs = append(errs, fmt.Errorf("command %d: duplicate name %q (first at %d)", pos, cmd.Name, first))
		} else {
			seen[cmd.Name] = pos
		}
		switch cmd.Kind {
		case Shell:
			if err := ValidateShell(cmd.Invocation); err != nil {
				errs = append(errs, fmt.Errorf("command %d (%s): %w", pos, cmd.Name, err))
			}
		case Custom:
			if known != nil && !known(cmd.Invocation) {
				errs = append(errs, fmt.Errorf("command %d (%s): unknown custom command %q", pos, cmd.Name, cmd.Invocation))
			}
		default:
			errs = append(errs, fmt.Errorf("command %d (%s): invalid kind %v", pos, cmd.Name, cmd.Kind))
		}
	}
	return errors.Join(errs...)
}
