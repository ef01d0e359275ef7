package ui

import (
	"context"

	"github.com/charmbracelet/huh/spinner"
	"github.com/charmbracelet/log"

	"github.com/ZeroDread/nudge/internal/catalog"
	"github.com/ZeroDread/nudge/internal/runner"
	"github.com/ZeroDread/nudge/internal/security"
)

// SpinningExecutor shows a spinner while Next runs a command. The spinner
// only animates; the command runs exactly once on its own goroutine and its
// error is returned unchanged.
type SpinningExecutor struct {
	Next    runner.Executor
	Enabled bool
	Logger  *log.Logger
}

func (s *SpinningExecutor) Execute(ctx context.Context, cmd catalog.Command) error {
	if !s.shouldSpin(cmd) {
		return s.Next.Execute(ctx, cmd)
	}

	spinCtx, stop := context.WithCancel(ctx)
	defer stop()

	done := make(chan error, 1)
	go func() {
		defer stop()
		done <- s.Next.Execute(ctx, cmd)
	}()

	if err := spinner.New().
		Title(" Running " + cmd.Name + "...").
		Context(spinCtx).
		Run(); err != nil && ctx.Err() == nil {
		s.logger().Debug("spinner stopped", "err", err)
	}
	return <-done
}

// shouldSpin reports whether a spinner may own the terminal while cmd runs.
// Commands escalating privileges prompt for a password there.
func (s *SpinningExecutor) shouldSpin(cmd catalog.Command) bool {
	if !s.Enabled {
		return false
	}
	if cmd.Kind == catalog.Shell && security.RequiresPrivilege(cmd.Invocation) {
		return false
	}
	return true
}

func (s *SpinningExecutor) logger() *log.Logger {
	if s.Logger != nil {
		return s.Logger
	}
	return log.Default()
}
