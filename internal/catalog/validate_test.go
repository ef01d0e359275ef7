package catalog

import (
	"strings"
	"testing"
)

func TestValidateBuiltin(t *testing.T) {
	known := func(key string) bool { return key == "handle_site_repo" }
	if err := Validate(AllCommands(), known); err != nil {
		t.Fatalf("built-in catalog should validate: %v", err)
	}
}

func TestValidateReportsProblems(t *testing.T) {
	c := Catalog{
		{Name: "dup", Invocation: "true", Kind: Shell},
		{Name: "dup", Invocation: "true", Kind: Shell},
		{Name: "broken", Invocation: "echo 'unterminated", Kind: Shell},
		{Name: "ghost", Invocation: "not_a_real_command", Kind: Custom},
		{Name: "  ", Invocation: "true", Kind: Shell},
	}
	err := Validate(c, func(string) bool { return false })
	if err == nil {
		t.Fatalf("expected validation errors")
	}
	msg := err.Error()
	for _, want := range []string{"duplicate name", "invalid shell syntax", "unknown custom command", "name cannot be empty"} {
		if !strings.Contains(msg, want) {
			t.Fatalf("expected %q in %q", want, msg)
		}
	}
}

func TestValidateNilKnownSkipsRegistry(t *testing.T) {
	c := Catalog{{Name: "ghost", Invocation: "whatever", Kind: Custom}}
	if err := Validate(c, nil); err != nil {
		t.Fatalf("expected no error with nil registry check, got %v", err)
	}
}

func TestValidateNameControlChars(t *testing.T) {
	if err := ValidateName("bad\x07name"); err == nil {
		t.Fatalf("expected control character error")
	}
	if err := ValidateName("Update Homebrew"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidateShell(t *testing.T) {
	ok := []string{
		"brew update && brew upgrade",
		"~/.config/emacs/bin/doom sync && ~/.config/emacs/bin/doom doctor",
		"ls | wc -l",
	}
	for _, s := range ok {
		if err := ValidateShell(s); err != nil {
			t.Fatalf("%q should parse: %v", s, err)
		}
	}
	if err := ValidateShell(""); err == nil {
		t.Fatalf("expected error for empty invocation")
	}
	if err := ValidateShell("if true; then"); err == nil {
		t.Fatalf("expected error for incomplete if")
	}
}
