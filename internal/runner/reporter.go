package runner

import (
	"time"

	"github.com/ZeroDread/nudge/internal/catalog"
)

// Reporter receives progress notifications from a Runner. Positions are
// 1-based.
type Reporter interface {
	BatchStarted(total int)
	CommandStarted(pos, total int, cmd catalog.Command)
	CommandSucceeded(pos, total int, cmd catalog.Command, elapsed time.Duration)
	CommandFailed(pos, total int, cmd catalog.Command, err error, elapsed time.Duration)
	// BatchFinished is called after the working directory was restored.
	BatchFinished(err error)
}

// NopReporter ignores every notification.
type NopReporter struct{}

func (NopReporter) BatchStarted(int)                                              {}
func (NopReporter) CommandStarted(int, int, catalog.Command)                      {}
func (NopReporter) CommandSucceeded(int, int, catalog.Command, time.Duration)     {}
func (NopReporter) CommandFailed(int, int, catalog.Command, error, time.Duration) {}
func (NopReporter) BatchFinished(error)                                           {}

// MultiReporter forwards every notification to each reporter in order.
type MultiReporter []Reporter

func (m MultiReporter) BatchStarted(total int) {
	for _, r := range m {
		r.BatchStarted(total)
	}
}

func (m MultiReporter) CommandStarted(pos, total int, cmd catalog.Command) {
	for _, r := range m {
		r.CommandStarted(pos, total, cmd)
	}
}

func (m MultiReporter) CommandSucceeded(pos, total int, cmd catalog.Command, elapsed time.Duration) {
	for _, r := range m {
		r.CommandSucceeded(pos, total, cmd, elapsed)
	}
}

func (m MultiReporter) CommandFailed(pos, total int, cmd catalog.Command, err error, elapsed time.Duration) {
	for _, r := range m {
		r.CommandFailed(pos, total, cmd, err, elapsed)
	}
}

func (m MultiReporter) BatchFinished(err error) {
	for _, r := range m {
		r.BatchFinished(err)
	}
}
