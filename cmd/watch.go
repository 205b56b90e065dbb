package cmd

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"witness/internal/watch"
	"witness/pkg/logging"
)

var watchCmd = &cobra.Command{
	Use:   "watch <scenario-path>",
	Short: "Rerun the suite whenever a scenario file changes",
	Long: `Executes the suite once, then watches the scenario path and reruns
it after every change to a YAML file. Stop with Ctrl-C.`,
	Args: cobra.ExactArgs(1),
	RunE: watchSuite,
}

func init() {
	rootCmd.AddCommand(watchCmd)

	watchCmd.Flags().BoolVar(&runNoConfiguration, "no-configuration", false, "Ignore witness.yaml and start from the built-in defaults")
	watchCmd.Flags().BoolVar(&runNoOutput, "no-output", false, "Suppress all console reporting")
	watchCmd.Flags().BoolVar(&runFailFast, "fail-fast", false, "Stop executing further tests after the first failure or error")
	watchCmd.Flags().BoolVar(&runFailOnWarning, "fail-on-warning", false, "Treat tests that triggered warnings as failed")
	watchCmd.Flags().BoolVar(&runVerbose, "verbose", false, "Report every test result, not only defects")
	watchCmd.Flags().BoolVar(&runDebug, "debug", false, "Enable debug logging")
}

func watchSuite(cmd *cobra.Command, args []string) error {
	logLevel := logging.LevelInfo
	if runDebug {
		logLevel = logging.LevelDebug
	}
	logging.Init(logLevel, os.Stderr)

	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	// Watch mode reruns many times; persisting only the last run's
	// outcomes would be misleading.
	cfg.CacheResult = false

	path := args[0]

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	watcher := watch.New(path, func(ctx context.Context) error {
		err := executeRun(ctx, path, cfg)
		if err != nil && !errors.Is(err, errTestsFailed) {
			logging.Warn("Watch", "Run aborted: %v", err)
		}
		return nil
	})

	logging.Info("Watch", "Watching %s for changes", path)
	return watcher.Run(ctx)
}
