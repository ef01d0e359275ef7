package ui

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/bubbles/progress"

	"github.com/ZeroDread/nudge/internal/catalog"
)

// Reporter prints batch progress to a terminal. It implements
// runner.Reporter.
type Reporter struct {
	w       io.Writer
	heading string
	bar     progress.Model
	// Getwd reports the directory shown after a successful batch.
	Getwd func() (string, error)
}

// NewReporter returns a Reporter writing to w. heading is printed when the
// batch starts.
func NewReporter(w io.Writer, heading string) *Reporter {
	return &Reporter{
		w:       w,
		heading: heading,
		bar:     progress.New(progress.WithDefaultGradient(), progress.WithWidth(40)),
		Getwd:   os.Getwd,
	}
}

func (r *Reporter) BatchStarted(int) {
	Separator(r.w)
	Info(r.w, "🔄 "+r.heading)
}

func (r *Reporter) CommandStarted(pos, total int, cmd catalog.Command) {
	_, _ = fmt.Fprintln(r.w, ProgressLine(r.bar, pos, total, cmd))
}

// ProgressLine renders "[i/N] <bar> pct% - <icon> <name>".
func ProgressLine(bar progress.Model, pos, total int, cmd catalog.Command) string {
	pct := 1.0
	if total > 0 {
		pct = float64(pos) / float64(total)
	}
	return fmt.Sprintf("%s %s - %s", stepStyle.Render(fmt.Sprintf("[%d/%d]", pos, total)), bar.ViewAs(pct), cmd.Label())
}

func (r *Reporter) CommandSucceeded(_, _ int, cmd catalog.Command, elapsed time.Duration) {
	Success(r.w, fmt.Sprintf("%s completed successfully %s", cmd.Name, subtleStyle.Render("("+elapsed.Round(time.Millisecond).String()+")")))
}

func (r *Reporter) CommandFailed(_, _ int, cmd catalog.Command, err error, _ time.Duration) {
	Error(r.w, fmt.Sprintf("%s failed: %s", cmd.Name, CleanOutput(err.Error())))
}

func (r *Reporter) BatchFinished(err error) {
	if err != nil {
		return
	}
	_, _ = fmt.Fprintln(r.w)
	_, _ = fmt.Fprintln(r.w, doneStyle.Render("🎉 All tasks completed successfully!"))
	if wd, werr := r.Getwd(); werr == nil {
		_, _ = fmt.Fprintf(r.w, "Currently in: %s\n", pathStyle.Render(wd))
	}
}
