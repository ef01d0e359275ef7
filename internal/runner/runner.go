// Package runner executes a batch of catalog commands in order, reporting
// progress and stopping at the first failure.
package runner

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"

	"github.com/ZeroDread/nudge/internal/catalog"
)

// DefaultPace is the pause between successful commands. It only exists to
// keep terminal output readable.
const DefaultPace = 50 * time.Millisecond

// Executor runs a single command.
type Executor interface {
	Execute(ctx context.Context, cmd catalog.Command) error
}

// BatchError reports the command that stopped a batch.
type BatchError struct {
	// Position is 1-based.
	Position int
	Command  catalog.Command
	Err      error
}

func (e *BatchError) Error() string {
	return fmt.Sprintf("%s failed: %v", e.Command.Name, e.Err)
}

func (e *BatchError) Unwrap() error { return e.Err }

// Runner drives an Executor over a batch. Commands run strictly one at a
// time because custom routines change the process working directory.
type Runner struct {
	Executor Executor
	Reporter Reporter
	Pace     time.Duration
	// Home resolves the directory restored after every batch; os.UserHomeDir
	// if nil.
	Home   func() (string, error)
	Logger *log.Logger
}

// New returns a Runner with the default pace.
func New(exec Executor, reporter Reporter, logger *log.Logger) *Runner {
	return &Runner{Executor: exec, Reporter: reporter, Pace: DefaultPace, Logger: logger}
}

// Run executes batch in order. It returns nil when every command succeeds
// and a *BatchError for the first failing command; later commands are not
// run. The working directory is reset to the home directory afterwards on
// both paths.
func (r *Runner) Run(ctx context.Context, batch catalog.Catalog) error {
	rep := r.Reporter
	if rep == nil {
		rep = NopReporter{}
	}

	rep.BatchStarted(len(batch))
	err := r.run(ctx, batch, rep)
	if rerr := r.restoreHome(); rerr != nil {
		if err == nil {
			err = rerr
		} else {
			r.logger().Warn("could not restore working directory", "err", rerr)
		}
	}
	rep.BatchFinished(err)
	return err
}

func (r *Runner) run(ctx context.Context, batch catalog.Catalog, rep Reporter) error {
	total := len(batch)
	for i, cmd := range batch {
		pos := i + 1
		rep.CommandStarted(pos, total, cmd)
		start := time.Now()
		if err := r.Executor.Execute(ctx, cmd); err != nil {
			rep.CommandFailed(pos, total, cmd, err, time.Since(start))
			return &BatchError{Position: pos, Command: cmd, Err: err}
		}
		rep.CommandSucceeded(pos, total, cmd, time.Since(start))

		if pos < total && r.Pace > 0 {
			if err := sleep(ctx, r.Pace); err != nil {
				return err
			}
		}
	}
	return nil
}

func (r *Runner) restoreHome() error {
	home := os.UserHomeDir
	if r.Home != nil {
		home = r.Home
	}
	dir, err := home()
	if err != nil {
		return fmt.Errorf("resolve home directory: %w", err)
	}
	if err := os.Chdir(dir); err != nil {
		return fmt.Errorf("restore working directory: %w", err)
	}
	return nil
}

func (r *Runner) logger() *log.Logger {
	if r.Logger != nil {
		return r.Logger
	}
	return log.Default()
}

func sleep(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
