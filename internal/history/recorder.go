package history

import (
	"context"
	"time"

	"github.com/charmbracelet/log"

	"github.com/ZeroDread/nudge/internal/catalog"
)

// Recorder is a runner.Reporter that writes each batch to a Repository.
// Storage errors are logged and never interrupt the batch.
type Recorder struct {
	repo   *Repository
	ctx    context.Context
	dryRun bool
	logger *log.Logger

	runID  int64
	active bool
}

// NewRecorder returns a Recorder writing to repo.
func NewRecorder(ctx context.Context, repo *Repository, dryRun bool, logger *log.Logger) *Recorder {
	if logger == nil {
		logger = log.Default()
	}
	return &Recorder{repo: repo, ctx: ctx, dryRun: dryRun, logger: logger}
}

// RunID returns the ID of the most recently started run.
func (r *Recorder) RunID() int64 { return r.runID }

func (r *Recorder) BatchStarted(total int) {
	id, err := r.repo.StartRun(r.ctx, total, r.dryRun)
	if err != nil {
		r.logger.Warn("history disabled for this run", "err", err)
		r.active = false
		return
	}
	r.runID = id
	r.active = true
}

func (r *Recorder) CommandStarted(int, int, catalog.Command) {}

func (r *Recorder) CommandSucceeded(pos, _ int, cmd catalog.Command, elapsed time.Duration) {
	r.record(pos, cmd, nil, elapsed)
}

func (r *Recorder) CommandFailed(pos, _ int, cmd catalog.Command, err error, elapsed time.Duration) {
	r.record(pos, cmd, err, elapsed)
}

func (r *Recorder) BatchFinished(err error) {
	if !r.active {
		return
	}
	// the batch context may already be cancelled; the final row still matters
	if ferr := r.repo.FinishRun(context.WithoutCancel(r.ctx), r.runID, err); ferr != nil {
		r.logger.Warn("could not finish history record", "run", r.runID, "err", ferr)
	}
	r.active = false
}

func (r *Recorder) record(pos int, cmd catalog.Command, cmdErr error, elapsed time.Duration) {
	if !r.active {
		return
	}
	if err := r.repo.RecordCommand(context.WithoutCancel(r.ctx), r.runID, pos, cmd, cmdErr, elapsed); err != nil {
		r.logger.Warn("could not record command", "name", cmd.Name, "err", err)
	}
}
