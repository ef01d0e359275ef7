package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ZeroDread/nudge/internal/version"
)

var versionCmd = &cobra.Command{
	Use:         "version",
	Short:       "Print version information",
	Annotations: map[string]string{skipConfigAnnotation: "true"},
	Run: func(cmd *cobra.Command, _ []string) {
		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "nudge %s\n", version.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
