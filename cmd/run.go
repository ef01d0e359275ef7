package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ZeroDread/nudge/internal/catalog"
	"github.com/ZeroDread/nudge/internal/selector"
	"github.com/ZeroDread/nudge/internal/ui"
)

var (
	runAll      bool
	runCategory string
	runConfirm  bool
)

var runCmd = &cobra.Command{
	Use:   "run [name...]",
	Short: "Run commands without the interactive prompt",
	Long: "Run the named catalog commands in the order given, every command with --all,\n" +
		"or every command of a category with --category. Example:\n  nudge run \"Update Homebrew\" \"Upgrade Homebrew packages\"",
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := loadCatalog()
		if err != nil {
			return err
		}

		var batch catalog.Catalog
		heading := "Executing selected tasks..."
		switch {
		case runAll:
			if len(args) > 0 {
				return errors.New("command names cannot be combined with --all")
			}
			batch = selector.Resolve(c, nil)
			heading = "Executing all tasks..."
		case runCategory != "":
			batch = catalog.FilterByCategory(c, runCategory)
			if len(args) > 0 {
				idx, err := selector.Indices(batch, args)
				if err != nil {
					return err
				}
				batch = selector.Resolve(batch, idx)
			}
			if len(batch) == 0 {
				return fmt.Errorf("no commands in category %q", runCategory)
			}
		case len(args) > 0:
			idx, err := selector.Indices(c, args)
			if err != nil {
				return err
			}
			batch = selector.Resolve(c, idx)
		default:
			return errors.New("name at least one command, or use --all or --category")
		}

		if runConfirm {
			ok, err := ui.Confirm(fmt.Sprintf("Run %d command(s) now?", len(batch)), accessible())
			if err != nil {
				return err
			}
			if !ok {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "aborted")
				return nil
			}
		}
		return runBatch(cmd, batch, heading)
	},
}

func init() {
	runCmd.Flags().BoolVar(&runAll, "all", false, "Run every catalog command")
	runCmd.Flags().StringVar(&runCategory, "category", "", "Run the commands of one category")
	runCmd.Flags().BoolVar(&runConfirm, "confirm", false, "Ask for confirmation before running")
	runCmd.MarkFlagsMutuallyExclusive("all", "category")
	rootCmd.AddCommand(runCmd)
}
