package executor

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownCustomCommand is wrapped by UnknownCustomCommandError.
var ErrUnknownCustomCommand = errors.New("unknown custom command")

// UnknownCustomCommandError is returned for a custom command whose key has no
// registered routine.
type UnknownCustomCommandError struct {
	Key string
}

func (e *UnknownCustomCommandError) Error() string {
	return fmt.Sprintf("unknown custom command: %s", e.Key)
}

func (e *UnknownCustomCommandError) Unwrap() error { return ErrUnknownCustomCommand }

// CommandError describes an external process that exited unsuccessfully.
type CommandError struct {
	// Command is the command line as it would be typed in a shell.
	Command  string
	ExitCode int
	// Stderr is the captured standard error with invalid UTF-8 replaced.
	Stderr string
	Err    error
}

func (e *CommandError) Error() string {
	return "command failed: " + e.Cause()
}

// Cause is the human-readable failure reason: the captured stderr, or the
// exit status when the process wrote nothing to stderr.
func (e *CommandError) Cause() string {
	if s := strings.TrimSpace(e.Stderr); s != "" {
		return s
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return fmt.Sprintf("exit status %d", e.ExitCode)
}

func (e *CommandError) Unwrap() error { return e.Err }
