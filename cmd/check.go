package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ZeroDread/nudge/internal/catalog"
	"github.com/ZeroDread/nudge/internal/executor"
	"github.com/ZeroDread/nudge/internal/security"
	"github.com/ZeroDread/nudge/internal/ui"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate the active catalog",
	Long: "Check every catalog command: names, shell syntax, custom routine keys,\n" +
		"duplicate names and commands that look destructive.",
	RunE: func(cmd *cobra.Command, _ []string) error {
		c, err := loadCatalog()
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		if err := checkCatalog(c); err != nil {
			for _, line := range strings.Split(err.Error(), "\n") {
				ui.Error(out, line)
			}
			return errors.New("catalog check failed")
		}
		ui.Success(out, fmt.Sprintf("catalog OK: %d commands", len(c)))
		return nil
	},
}

func checkCatalog(c catalog.Catalog) error {
	registry := executor.DefaultRegistry(executor.NewSiteRepo(nil, currentLogger()))
	errs := []error{catalog.Validate(c, registry.Known)}
	for i, cmd := range c {
		if cmd.Kind != catalog.Shell {
			continue
		}
		if err := security.CheckAllowed(cmd.Invocation); err != nil {
			errs = append(errs, fmt.Errorf("command %d (%s): %w", i+1, cmd.Name, err))
		}
	}
	return errors.Join(errs...)
}

func init() {
	rootCmd.AddCommand(checkCmd)
}
