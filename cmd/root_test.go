package cmd

import (
	"bytes"
	"errors"
	"fmt"
	"testing"

	"witness/internal/config"
	"witness/internal/scenario"
)

func TestSetVersion(t *testing.T) {
	testVersion := "1.2.3-test"
	originalVersion := rootCmd.Version
	defer func() { rootCmd.Version = originalVersion }()

	SetVersion(testVersion)

	if rootCmd.Version != testVersion {
		t.Errorf("Expected version to be %s, got %s", testVersion, rootCmd.Version)
	}
	if GetVersion() != testVersion {
		t.Errorf("Expected GetVersion to return %s, got %s", testVersion, GetVersion())
	}
}

func TestRootCommand(t *testing.T) {
	if rootCmd.Use != "witness" {
		t.Errorf("Expected Use to be 'witness', got %s", rootCmd.Use)
	}
	if rootCmd.Short == "" {
		t.Error("Expected Short description to be set")
	}
	if !rootCmd.SilenceUsage {
		t.Error("Expected SilenceUsage to be true")
	}
}

func TestGetExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{
			name: "tests failed",
			err:  errTestsFailed,
			want: ExitCodeTestFailure,
		},
		{
			name: "wrapped tests failed",
			err:  fmt.Errorf("run: %w", errTestsFailed),
			want: ExitCodeTestFailure,
		},
		{
			name: "invalid configuration",
			err:  &config.InvalidConfigError{Field: "timeout", Reason: "must not be negative"},
			want: ExitCodeUsage,
		},
		{
			name: "invalid scenario",
			err:  &scenario.InvalidScenarioError{Path: "suite.yaml", Reason: "no suite files found"},
			want: ExitCodeUsage,
		},
		{
			name: "other error",
			err:  errors.New("boom"),
			want: ExitCodeTestFailure,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := getExitCode(tc.err); got != tc.want {
				t.Errorf("getExitCode(%v) = %d, want %d", tc.err, got, tc.want)
			}
		})
	}
}

func TestVersionCommandExecution(t *testing.T) {
	testVersion := "1.2.3-test"
	originalVersion := rootCmd.Version
	defer func() { rootCmd.Version = originalVersion }()
	rootCmd.Version = testVersion

	versionCmd := newVersionCmd()

	var buf bytes.Buffer
	versionCmd.SetOut(&buf)
	versionCmd.Run(versionCmd, []string{})

	expected := "witness version " + testVersion + "\n"
	if buf.String() != expected {
		t.Errorf("Expected output %q, got %q", expected, buf.String())
	}
}
