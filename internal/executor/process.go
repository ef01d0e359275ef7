package executor

import (
	"context"
	"io"

	"github.com/kballard/go-shellquote"
)

// ProcessRunner starts an external program in dir and waits for it.
type ProcessRunner interface {
	Run(ctx context.Context, dir string, name string, args ...string) error
}

// ExecProcessRunner runs programs with os/exec. Stderr is captured into the
// returned CommandError; Stdout and Stderr optionally mirror the output.
type ExecProcessRunner struct {
	Stdout io.Writer
	Stderr io.Writer
}

// Run implements ProcessRunner.
func (r *ExecProcessRunner) Run(ctx context.Context, dir string, name string, args ...string) error {
	display := shellquote.Join(append([]string{name}, args...)...)
	return runCaptured(ctx, dir, name, args, r.Stdout, r.Stderr, display)
}
