package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ZeroDread/nudge/internal/catalog"
	"github.com/ZeroDread/nudge/internal/db"
	"github.com/ZeroDread/nudge/internal/executor"
	"github.com/ZeroDread/nudge/internal/history"
	"github.com/ZeroDread/nudge/internal/runner"
	"github.com/ZeroDread/nudge/internal/security"
	"github.com/ZeroDread/nudge/internal/ui"
)

// runBatch runs batch with the terminal reporter and, unless disabled, the
// history recorder attached.
func runBatch(cmd *cobra.Command, batch catalog.Catalog, heading string) error {
	if !force {
		for _, c := range batch {
			if c.Kind != catalog.Shell {
				continue
			}
			if err := security.CheckAllowed(c.Invocation); err != nil {
				return fmt.Errorf("refusing to run potentially dangerous command '%s': %v (use --force to override)", c.Name, err)
			}
		}
	}

	ctx := cmd.Context()
	out := cmd.OutOrStdout()
	l := currentLogger()

	procs := &executor.ExecProcessRunner{}
	e := executor.New(executor.DefaultRegistry(executor.NewSiteRepo(procs, l)), l)
	e.Shell = shellName
	e.DryRun = dryRun
	if dryRun {
		e.Stdout = out
	}
	if verbose {
		e.Stdout, e.Stderr = out, cmd.ErrOrStderr()
		procs.Stdout, procs.Stderr = out, cmd.ErrOrStderr()
	}

	reporters := runner.MultiReporter{ui.NewReporter(out, heading)}
	if !noHistory {
		conn, err := db.InitDB()
		if err != nil {
			l.Warn("run history unavailable", "err", err)
		} else {
			defer func() { _ = conn.Close() }()
			reporters = append(reporters, history.NewRecorder(ctx, history.NewRepository(conn), dryRun, l))
		}
	}

	spin := &ui.SpinningExecutor{
		Next:    e,
		Enabled: !noSpinner && !verbose && !dryRun && isTerminal(os.Stdout),
		Logger:  l,
	}
	r := runner.New(spin, reporters, l)
	r.Pace = pace
	return r.Run(ctx, batch)
}
