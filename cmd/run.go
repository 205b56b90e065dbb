package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"witness/internal/config"
	"witness/internal/events"
	"witness/internal/metadata"
	"witness/internal/report"
	"witness/internal/run"
	"witness/internal/scenario"
	"witness/pkg/logging"
)

var (
	runDoNotCacheResult bool
	runNoConfiguration  bool
	runNoOutput         bool
	runLogEventsText    string
	runReportPath       string
	runFailFast         bool
	runFailOnWarning    bool
	runTimeout          time.Duration
	runVerbose          bool
	runDebug            bool
)

var runCmd = &cobra.Command{
	Use:   "run <scenario-path>",
	Short: "Execute the test suite described by a scenario file or directory",
	Long: `Loads scenario files from the given path (a single YAML file or a
directory of them), builds the suite and executes every test. Progress
is reported to stdout and the exit code reflects the overall verdict.`,
	Args: cobra.ExactArgs(1),
	RunE: runSuite,
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().BoolVar(&runDoNotCacheResult, "do-not-cache-result", false, "Do not persist per-test outcomes after the run")
	runCmd.Flags().BoolVar(&runNoConfiguration, "no-configuration", false, "Ignore witness.yaml and start from the built-in defaults")
	runCmd.Flags().BoolVar(&runNoOutput, "no-output", false, "Suppress all console reporting")
	runCmd.Flags().StringVar(&runLogEventsText, "log-events-text", "", "Write the textual event trace to this file")
	runCmd.Flags().StringVar(&runReportPath, "report", "", "Write the structured JSON run report to this file")
	runCmd.Flags().BoolVar(&runFailFast, "fail-fast", false, "Stop executing further tests after the first failure or error")
	runCmd.Flags().BoolVar(&runFailOnWarning, "fail-on-warning", false, "Treat tests that triggered warnings as failed")
	runCmd.Flags().DurationVar(&runTimeout, "timeout", 0, "Per-test time limit (0 disables the limit)")
	runCmd.Flags().BoolVar(&runVerbose, "verbose", false, "Report every test result, not only defects")
	runCmd.Flags().BoolVar(&runDebug, "debug", false, "Enable debug logging")
}

func runSuite(cmd *cobra.Command, args []string) error {
	logLevel := logging.LevelInfo
	if runDebug {
		logLevel = logging.LevelDebug
	}
	logging.Init(logLevel, os.Stderr)

	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return executeRun(ctx, args[0], cfg)
}

// resolveConfig layers the command line flags over the file configuration.
// Flags that were not given on the command line leave the file values
// untouched.
func resolveConfig(cmd *cobra.Command) (config.Config, error) {
	var cfg config.Config
	if runNoConfiguration {
		cfg = config.Default()
	} else {
		loaded, err := config.Load(".")
		if err != nil {
			return config.Config{}, err
		}
		cfg = loaded
	}

	if runDoNotCacheResult {
		cfg.CacheResult = false
	}
	if runNoOutput {
		cfg.NoOutput = true
	}
	if runFailFast {
		cfg.FailFast = true
	}
	if runFailOnWarning {
		cfg.FailOnWarning = true
	}
	if runVerbose {
		cfg.Verbose = true
	}
	if runLogEventsText != "" {
		cfg.LogEventsText = runLogEventsText
	}
	if runReportPath != "" {
		cfg.ReportPath = runReportPath
	}
	if cmd.Flags().Changed("timeout") {
		cfg.Timeout = config.Duration(runTimeout)
	}

	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

// executeRun loads, builds and executes the suite at path with the given
// configuration. It returns errTestsFailed for a completed run with
// defects so the exit code can distinguish that from setup errors.
func executeRun(ctx context.Context, path string, cfg config.Config) error {
	spec, err := scenario.LoadPath(path)
	if err != nil {
		return err
	}

	registry := metadata.NewRegistry()
	suite, err := spec.Build(registry)
	if err != nil {
		return err
	}

	facade := events.NewFacade()

	if cfg.LogEventsText != "" {
		traceFile, err := os.Create(cfg.LogEventsText)
		if err != nil {
			return fmt.Errorf("opening event trace file: %w", err)
		}
		defer traceFile.Close()
		if err := facade.RegisterSubscriber(events.NewTraceWriter(traceFile)); err != nil {
			return err
		}
	}

	runner := run.NewRunner(facade)
	if err := runner.Configure(cfg); err != nil {
		return err
	}
	if err := runner.Load(suite, registry); err != nil {
		return err
	}
	if err := runner.Seal(); err != nil {
		return err
	}

	reporter := report.NewConsoleReporter(os.Stdout, cfg.Verbose, cfg.NoOutput)
	reporter.ReportStart(suite.Name, suite.CountTests())

	result, err := runner.Run(ctx)
	if err != nil {
		return err
	}

	for _, tr := range result.TestResults {
		reporter.ReportTestResult(tr)
	}
	reporter.ReportSummary(result)

	if cfg.ReportPath != "" {
		if err := report.WriteJSON(cfg.ReportPath, result); err != nil {
			return err
		}
		logging.Info("CLI", "Report written to %s", cfg.ReportPath)
	}

	if cfg.CacheResult {
		if err := saveResultCache(cfg.ResultCachePath, result); err != nil {
			// A broken cache must not mask the run verdict.
			logging.Warn("CLI", "Could not save result cache: %v", err)
		}
	}

	if !result.Successful() {
		return errTestsFailed
	}
	return nil
}

func saveResultCache(path string, result *run.Result) error {
	cache, err := config.LoadResultCache(path)
	if err != nil {
		return err
	}
	for _, tr := range result.TestResults {
		cache.Record(tr.Name, string(tr.Outcome))
	}
	return cache.Save(path)
}
