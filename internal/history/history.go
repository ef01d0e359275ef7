// Package history stores the outcome of each batch run in SQLite.
package history

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/ZeroDread/nudge/internal/catalog"
)

// Status values stored for runs and commands.
const (
	StatusRunning = "running"
	StatusOK      = "ok"
	StatusFailed  = "failed"
)

// Run is one recorded batch.
type Run struct {
	ID         int64
	StartedAt  string
	FinishedAt sql.NullString
	Total      int
	Status     string
	Error      sql.NullString
	DryRun     bool
	Commands   []CommandResult
}

// CommandResult is the recorded outcome of one command in a run.
type CommandResult struct {
	Position   int
	Name       string
	Invocation string
	Kind       string
	Status     string
	Error      sql.NullString
	Duration   time.Duration
}

// Repository reads and writes run history.
type Repository struct {
	db  *sql.DB
	now func() time.Time
}

// NewRepository creates a new Repository using db.
func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db, now: time.Now}
}

func (r *Repository) timestamp() string {
	return r.now().UTC().Format(time.RFC3339)
}

// StartRun inserts a new run in the running state and returns its ID.
func (r *Repository) StartRun(ctx context.Context, total int, dryRun bool) (int64, error) {
	res, err := r.db.ExecContext(ctx,
		"INSERT INTO runs (started_at, total, status, dry_run) VALUES (?, ?, ?, ?)",
		r.timestamp(), total, StatusRunning, dryRun)
	if err != nil {
		return 0, fmt.Errorf("insert run: %w", err)
	}
	return res.LastInsertId()
}

// RecordCommand stores the outcome of the command at position pos.
func (r *Repository) RecordCommand(ctx context.Context, runID int64, pos int, cmd catalog.Command, cmdErr error, elapsed time.Duration) error {
	status, errText := outcome(cmdErr)
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO run_commands (run_id, position, name, invocation, kind, status, error, duration_ms)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		runID, pos, cmd.Name, cmd.Invocation, cmd.Kind.String(), status, errText, elapsed.Milliseconds())
	if err != nil {
		return fmt.Errorf("insert run command: %w", err)
	}
	return nil
}

// FinishRun marks the run as finished with the batch outcome.
func (r *Repository) FinishRun(ctx context.Context, runID int64, runErr error) error {
	status, errText := outcome(runErr)
	res, err := r.db.ExecContext(ctx,
		"UPDATE runs SET finished_at = ?, status = ?, error = ? WHERE id = ?",
		r.timestamp(), status, errText, runID)
	if err != nil {
		return fmt.Errorf("update run: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("run %d not found", runID)
	}
	return nil
}

// ListRuns returns up to limit runs, newest first, with their commands.
// A limit of zero or less returns every run.
func (r *Repository) ListRuns(ctx context.Context, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = -1
	}
	rows, err := r.db.QueryContext(ctx,
		"SELECT id, started_at, finished_at, total, status, error, dry_run FROM runs ORDER BY id DESC LIMIT ?", limit)
	if err != nil {
		return nil, fmt.Errorf("query runs: %w", err)
	}
	var out []Run
	for rows.Next() {
		var run Run
		if err := rows.Scan(&run.ID, &run.StartedAt, &run.FinishedAt, &run.Total, &run.Status, &run.Error, &run.DryRun); err != nil {
			_ = rows.Close()
			return nil, err
		}
		out = append(out, run)
	}
	if err := rows.Err(); err != nil {
		_ = rows.Close()
		return nil, err
	}
	_ = rows.Close()

	for i := range out {
		cmds, err := r.commands(ctx, out[i].ID)
		if err != nil {
			return nil, err
		}
		out[i].Commands = cmds
	}
	return out, nil
}

func (r *Repository) commands(ctx context.Context, runID int64) ([]CommandResult, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT position, name, invocation, kind, status, error, duration_ms
		FROM run_commands WHERE run_id = ? ORDER BY position`, runID)
	if err != nil {
		return nil, fmt.Errorf("query run commands: %w", err)
	}
	defer func() { _ = rows.Close() }()
	var out []CommandResult
	for rows.Next() {
		var c CommandResult
		var ms int64
		if err := rows.Scan(&c.Position, &c.Name, &c.Invocation, &c.Kind, &c.Status, &c.Error, &ms); err != nil {
			return nil, err
		}
		c.Duration = time.Duration(ms) * time.Millisecond
		out = append(out, c)
	}
	return out, rows.Err()
}

func outcome(err error) (string, sql.NullString) {
	if err == nil {
		return StatusOK, sql.NullString{}
	}
	return StatusFailed, sql.NullString{String: err.Error(), Valid: true}
}
