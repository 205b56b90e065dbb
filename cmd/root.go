package cmd

import (
	"errors"
	"os"

	"github.com/spf13/cobra"

	"witness/internal/config"
	"witness/internal/scenario"
)

// Exit codes for CLI commands.
const (
	// ExitCodeSuccess indicates that every executed test passed or was skipped.
	ExitCodeSuccess = 0
	// ExitCodeTestFailure indicates at least one failed or errored test.
	ExitCodeTestFailure = 1
	// ExitCodeUsage indicates a usage, configuration or scenario error
	// that prevented the run from starting.
	ExitCodeUsage = 2
)

// errTestsFailed signals a completed run with failures. It carries no
// message of its own; the reporter already printed the verdict.
var errTestsFailed = errors.New("tests failed")

// rootCmd represents the base command for the witness application.
var rootCmd = &cobra.Command{
	Use:   "witness",
	Short: "Run scenario-driven unit test suites",
	Long: `witness executes test suites described in scenario files. Every step
of the lifecycle is announced through a sealed event stream, and test
doubles verify their expected invocations when each test finishes.`,
	// Errors are reported by the run itself; Cobra should not repeat the
	// usage text after them.
	SilenceUsage: true,
}

// SetVersion sets the version for the root command. Called from the main
// package to inject the version at build time.
func SetVersion(v string) {
	rootCmd.Version = v
}

// GetVersion returns the current version of the application.
func GetVersion() string {
	return rootCmd.Version
}

// Execute is the main entry point for the CLI application. It is called
// by main.main().
func Execute() {
	rootCmd.SetVersionTemplate(`{{printf "witness version %s\n" .Version}}`)

	err := rootCmd.Execute()
	if err != nil {
		os.Exit(getExitCode(err))
	}
}

// getExitCode maps the error type to a semantic exit code for scripting
// and automation.
func getExitCode(err error) int {
	if errors.Is(err, errTestsFailed) {
		return ExitCodeTestFailure
	}

	var invalidConfig *config.InvalidConfigError
	if errors.As(err, &invalidConfig) {
		return ExitCodeUsage
	}

	var invalidScenario *scenario.InvalidScenarioError
	if errors.As(err, &invalidScenario) {
		return ExitCodeUsage
	}

	// Default to the test failure code; anything else that aborted the
	// run left the suite in a non-passing state.
	return ExitCodeTestFailure
}

func init() {
	rootCmd.AddCommand(newVersionCmd())
}
