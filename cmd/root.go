package cmd

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/ZeroDread/nudge/internal/catalog"
	"github.com/ZeroDread/nudge/internal/config"
	"github.com/ZeroDread/nudge/internal/runner"
	"github.com/ZeroDread/nudge/internal/selector"
	"github.com/ZeroDread/nudge/internal/ui"
)

var (
	configPath  string
	catalogPath string
	verbose     bool
	dryRun      bool
	shellName   string
	pace        time.Duration
	noHistory   bool
	noSpinner   bool
	force       bool

	logger    *log.Logger
	appConfig config.AppConfig
)

var rootCmd = &cobra.Command{
	Use:   "nudge",
	Short: "nudge runs routine maintenance commands",
	Long: "nudge keeps a catalog of maintenance commands (package managers, toolchains,\n" +
		"system updates) and runs a selection of them in order, stopping at the first failure.",
	SilenceErrors: true,
	SilenceUsage:  true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		logger = newLogger()
		if cmd.Annotations[skipConfigAnnotation] != "" {
			return nil
		}
		cfg, err := config.Load(configPath)
		if err != nil {
			return err
		}
		appConfig = cfg
		return nil
	},
	RunE: func(cmd *cobra.Command, _ []string) error {
		c, err := loadCatalog()
		if err != nil {
			return err
		}
		if !isTerminal(os.Stdin) || !isTerminal(os.Stdout) {
			return errors.New("interactive selection needs a terminal; use 'nudge run' instead")
		}

		out := cmd.OutOrStdout()
		ui.Header(out, appConfig)
		picked, err := ui.SelectCommands(c, accessible())
		if errors.Is(err, huh.ErrUserAborted) {
			ui.Warning(out, "Selection cancelled.")
			return nil
		}
		if err != nil {
			return err
		}

		heading := "Executing selected tasks..."
		if len(picked) == 0 {
			ui.Warning(out, "No commands selected. Executing all commands...")
			heading = "Executing all tasks..."
		}
		return runBatch(cmd, selector.Resolve(c, picked), heading)
	},
}

const skipConfigAnnotation = "nudge/skip-config"

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&configPath, "config", config.DefaultFile, "Path to the JSON display configuration")
	pf.StringVar(&catalogPath, "catalog", "", "Load commands from a TOML catalog instead of the built-in one")
	pf.BoolVarP(&verbose, "verbose", "v", false, "Show command output and debug logs")
	pf.BoolVar(&dryRun, "dry-run", false, "Print what would run without running it")
	pf.StringVar(&shellName, "shell", "", "Shell used for shell commands (default zsh)")
	pf.DurationVar(&pace, "pace", runner.DefaultPace, "Pause between successful commands")
	pf.BoolVar(&noHistory, "no-history", false, "Do not record this run in the history database")
	pf.BoolVar(&noSpinner, "no-spinner", false, "Disable the spinner shown while a command runs")
	pf.BoolVar(&force, "force", false, "Override safety checks and force execution")
}

// Execute executes the root command
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		// the terminal reporter already printed the failing command
		var batchErr *runner.BatchError
		if !errors.As(err, &batchErr) {
			currentLogger().Error(err)
		}
		os.Exit(1)
	}
}

func newLogger() *log.Logger {
	l := log.NewWithOptions(os.Stderr, log.Options{Prefix: "nudge"})
	if verbose {
		l.SetLevel(log.DebugLevel)
		l.SetReportTimestamp(true)
	}
	return l
}

func currentLogger() *log.Logger {
	if logger == nil {
		logger = newLogger()
	}
	return logger
}

func loadCatalog() (catalog.Catalog, error) {
	if catalogPath == "" {
		return catalog.AllCommands(), nil
	}
	c, err := catalog.Load(catalogPath)
	if err != nil {
		return nil, err
	}
	currentLogger().Debug("catalog loaded", "path", catalogPath, "commands", len(c))
	return c, nil
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

func accessible() bool {
	return os.Getenv("ACCESSIBLE") != ""
}
