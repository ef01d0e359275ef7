package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ZeroDread/nudge/internal/db"
	"github.com/ZeroDread/nudge/internal/exporter"
	"github.com/ZeroDread/nudge/internal/history"
	"github.com/ZeroDread/nudge/internal/ui"
)

var historyLimit int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recent runs",
	Long:  "Show recent runs with the outcome of each command, newest first",
	RunE: func(cmd *cobra.Command, _ []string) error {
		dbConn, err := db.InitDB()
		if err != nil {
			return err
		}
		defer func() { _ = dbConn.Close() }()

		runs, err := history.NewRepository(dbConn).ListRuns(cmd.Context(), historyLimit)
		if err != nil {
			return err
		}
		if len(runs) == 0 {
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "no runs recorded yet")
			return nil
		}
		_, _ = fmt.Fprintln(cmd.OutOrStdout(), ui.RunsTable(runs))
		return nil
	},
}

var historyExportCmd = &cobra.Command{
	Use:   "export <file>",
	Short: "Copy the run history database to a file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dbConn, err := db.InitDB()
		if err != nil {
			return err
		}
		defer func() { _ = dbConn.Close() }()

		if err := exporter.ExportDatabase(cmd.Context(), dbConn, args[0]); err != nil {
			return err
		}
		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "exported history to %s\n", args[0])
		return nil
	},
}

func init() {
	historyCmd.AddCommand(historyExportCmd)
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 10, "Number of runs to show (0 for all)")
	rootCmd.AddCommand(historyCmd)
}
