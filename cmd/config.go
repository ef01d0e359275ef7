package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/spf13/cobra"

	"github.com/ZeroDread/nudge/internal/config"
	"github.com/ZeroDread/nudge/internal/ui"
	"github.com/ZeroDread/nudge/internal/utils"
)

var configInitForce bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show or create the display configuration",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the active configuration",
	RunE: func(cmd *cobra.Command, _ []string) error {
		out := cmd.OutOrStdout()
		_, _ = fmt.Fprintf(out, "file:     %s\n", configPath)
		_, _ = fmt.Fprintf(out, "app_name: %s\n", appConfig.AppName)
		_, _ = fmt.Fprintf(out, "version:  %s\n", appConfig.Version)
		_, _ = fmt.Fprintf(out, "author:   %s\n", appConfig.Author)
		return nil
	},
}

var configInitCmd = &cobra.Command{
	Use:         "init",
	Short:       "Write the default configuration file",
	Annotations: map[string]string{skipConfigAnnotation: "true"},
	RunE: func(cmd *cobra.Command, _ []string) error {
		if _, err := os.Stat(configPath); err == nil && !configInitForce {
			return fmt.Errorf("%s already exists (use --overwrite to replace it)", configPath)
		} else if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return err
		}
		if err := config.Save(configPath, config.Default()); err != nil {
			return err
		}
		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", configPath)
		return nil
	},
}

var configEditCmd = &cobra.Command{
	Use:         "edit",
	Short:       "Open the configuration file in $EDITOR",
	Long:        "Open the configuration file in $VISUAL or $EDITOR, creating it with the defaults first if needed",
	Annotations: map[string]string{skipConfigAnnotation: "true"},
	RunE: func(cmd *cobra.Command, _ []string) error {
		if _, err := os.Stat(configPath); errors.Is(err, fs.ErrNotExist) {
			if err := config.Save(configPath, config.Default()); err != nil {
				return err
			}
		}
		if err := utils.OpenEditor(cmd.Context(), configPath); err != nil {
			return err
		}
		if _, err := config.Load(configPath); err != nil {
			return err
		}
		ui.Success(cmd.OutOrStdout(), fmt.Sprintf("%s is valid", configPath))
		return nil
	},
}

func init() {
	configInitCmd.Flags().BoolVar(&configInitForce, "overwrite", false, "Replace an existing file")
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configEditCmd)
	rootCmd.AddCommand(configCmd)
}
