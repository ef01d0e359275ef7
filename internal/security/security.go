// Package security inspects shell command strings before they run.
package security

import (
	"errors"
	"path/filepath"
	"regexp"
	"strings"

	"mvdan.cc/sh/v3/syntax"
)

var dangerousPatterns = []*regexp.Regexp{
	// Destructive filesystem ops
	regexp.MustCompile(`(?i)\brm\s+-rf\s+/?$`),
	regexp.MustCompile(`(?i)\brm\s+-rf\s+/`),
	regexp.MustCompile(`(?i)\bmkfs\b`),
	regexp.MustCompile(`(?i)\bdd\s+if=`),
	// fork bombs (e.g. :(){ :|:& };:)
	regexp.MustCompile(`:\(\)\s*\{`),
	// package managers removing all packages
	regexp.MustCompile(`(?i)\bapt\-get\s+remove\s+`),
	regexp.MustCompile(`(?i)\byum\s+remove\s+`),
	regexp.MustCompile(`(?i)\bbrew\s+uninstall\s+--force\b`),
	// wipe disk
	regexp.MustCompile(`(?i)\bwipefs\b`),
	regexp.MustCompile(`(?i)\bdiskutil\s+(erase|zero)`),
}

// ErrDangerous is returned by CheckAllowed for blocked commands.
var ErrDangerous = errors.New("command appears destructive or unsafe")

// CheckAllowed returns nil if the command is allowed to run, or an error
// describing why it's blocked. Checking is conservative and not exhaustive.
func CheckAllowed(command string) error {
	cmd := strings.TrimSpace(command)
	if cmd == "" {
		return errors.New("empty command")
	}
	for _, re := range dangerousPatterns {
		if re.MatchString(cmd) {
			return ErrDangerous
		}
	}
	return nil
}

var privilegeCommands = map[string]bool{
	"sudo": true,
	"doas": true,
	"su":   true,
}

var privilegePattern = regexp.MustCompile(`(?:^|[;&|(]\s*)(?:sudo|doas|su)\b`)

// RequiresPrivilege reports whether command runs any program through sudo,
// doas or su. Such commands may prompt for a password on the terminal.
func RequiresPrivilege(command string) bool {
	p := syntax.NewParser(syntax.Variant(syntax.LangBash))
	f, err := p.Parse(strings.NewReader(command), "")
	if err != nil {
		return privilegePattern.MatchString(strings.TrimSpace(command))
	}
	found := false
	syntax.Walk(f, func(n syntax.Node) bool {
		if found {
			return false
		}
		call, ok := n.(*syntax.CallExpr)
		if !ok || len(call.Args) == 0 {
			return true
		}
		if privilegeCommands[filepath.Base(call.Args[0].Lit())] {
			found = true
			return false
		}
		return true
	})
	return found
}
