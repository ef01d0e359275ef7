// Package executor runs catalog commands, either through a shell or through a
// registered custom routine.
package executor

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/kballard/go-shellquote"

	"github.com/ZeroDread/nudge/internal/catalog"
)

// DefaultShell is used when Executor.Shell is empty.
const DefaultShell = "zsh"

// Executor runs one catalog command at a time.
type Executor struct {
	// Shell is the shell binary used for shell commands; "zsh" if empty.
	Shell    string
	DryRun   bool
	Registry Registry
	// Stdout and Stderr, when set, receive the child's output as it runs.
	// Stderr is captured for error reporting either way.
	Stdout io.Writer
	Stderr io.Writer
	Logger *log.Logger
}

// New returns an Executor using registry for custom commands.
func New(registry Registry, logger *log.Logger) *Executor {
	return &Executor{Registry: registry, Logger: logger}
}

// Execute runs cmd to completion. It returns nil on success; otherwise the
// error carries a human-readable cause (see CommandError and
// UnknownCustomCommandError).
func (e *Executor) Execute(ctx context.Context, cmd catalog.Command) error {
	switch cmd.Kind {
	case catalog.Shell:
		return e.runShell(ctx, cmd.Invocation)
	case catalog.Custom:
		return e.runCustom(ctx, cmd.Invocation)
	default:
		return fmt.Errorf("unsupported command kind %v for %q", cmd.Kind, cmd.Name)
	}
}

func (e *Executor) runShell(ctx context.Context, invocation string) error {
	shell, args := shellInvocation(invocation, e.Shell)
	line := shellquote.Join(append([]string{shell}, args...)...)

	if e.DryRun {
		_, _ = fmt.Fprintf(e.stdout(), "dry-run: %s\n", line)
		return nil
	}
	if _, err := exec.LookPath(shell); err != nil {
		return fmt.Errorf("shell not found in PATH: %s", shell)
	}
	e.logger().Debug("exec", "cmd", line)
	return runCaptured(ctx, "", shell, args, e.Stdout, e.Stderr, invocation)
}

func (e *Executor) runCustom(ctx context.Context, key string) error {
	routine, ok := e.Registry[key]
	if !ok {
		return &UnknownCustomCommandError{Key: key}
	}
	if e.DryRun {
		_, _ = fmt.Fprintf(e.stdout(), "dry-run: custom %s\n", key)
		return nil
	}
	e.logger().Debug("custom", "key", key)
	return routine(ctx)
}

func (e *Executor) stdout() io.Writer {
	if e.Stdout != nil {
		return e.Stdout
	}
	return io.Discard
}

func (e *Executor) logger() *log.Logger {
	if e.Logger != nil {
		return e.Logger
	}
	return log.Default()
}

// shellInvocation returns the shell executable and arguments that run
// command as a single shell-interpreted string.
func shellInvocation(command string, overrideShell string) (string, []string) {
	shell := overrideShell
	if shell == "" {
		shell = DefaultShell
	}
	return shell, []string{"-c", command}
}

// runCaptured runs name with args in dir, waiting for it to exit. stderr is
// always captured; stdout and stderr are also copied to the given writers
// when they are non-nil. display names the command in a CommandError.
func runCaptured(ctx context.Context, dir, name string, args []string, stdout, stderr io.Writer, display string) error {
	cmd := exec.CommandContext(ctx, name, args...)
	if dir != "" {
		cmd.Dir = dir
	}
	var berr bytes.Buffer
	if stdout != nil {
		cmd.Stdout = stdout
	}
	if stderr != nil {
		cmd.Stderr = io.MultiWriter(&berr, stderr)
	} else {
		cmd.Stderr = &berr
	}
	if err := cmd.Run(); err != nil {
		return checkExecutionError(err, &berr, display)
	}
	return nil
}

func checkExecutionError(err error, berr *bytes.Buffer, display string) error {
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return &CommandError{
			Command:  display,
			ExitCode: exitErr.ExitCode(),
			Stderr:   strings.ToValidUTF8(berr.String(), "�"),
			Err:      err,
		}
	}
	return fmt.Errorf("start %q: %w", display, err)
}
