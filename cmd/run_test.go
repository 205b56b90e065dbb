package cmd

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"witness/internal/config"
)

func writeSuiteFile(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "suite.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing suite file: %v", err)
	}
	return path
}

func quietConfig(t *testing.T) config.Config {
	t.Helper()
	cfg := config.Default()
	cfg.NoOutput = true
	cfg.ResultCachePath = filepath.Join(t.TempDir(), "cache.yaml")
	return cfg
}

func TestExecuteRunPassingSuite(t *testing.T) {
	path := writeSuiteFile(t, `
suite: calculator
tests:
  - name: testAdd
    steps:
      - assertEqual:
          expected: 4
          actual: 4
`)

	err := executeRun(context.Background(), path, quietConfig(t))
	if err != nil {
		t.Errorf("Expected passing suite to return nil, got %v", err)
	}
}

func TestExecuteRunFailingSuite(t *testing.T) {
	path := writeSuiteFile(t, `
suite: calculator
tests:
  - name: testBroken
    steps:
      - fail: not today
`)

	err := executeRun(context.Background(), path, quietConfig(t))
	if !errors.Is(err, errTestsFailed) {
		t.Errorf("Expected errTestsFailed, got %v", err)
	}
}

func TestExecuteRunWritesResultCache(t *testing.T) {
	path := writeSuiteFile(t, `
suite: calculator
tests:
  - name: testAdd
    steps:
      - assertEqual:
          expected: 1
          actual: 1
`)

	cfg := quietConfig(t)
	if err := executeRun(context.Background(), path, cfg); err != nil {
		t.Fatalf("run failed: %v", err)
	}

	cache, err := config.LoadResultCache(cfg.ResultCachePath)
	if err != nil {
		t.Fatalf("loading result cache: %v", err)
	}
	if got := cache.Outcomes["calculator::testAdd"]; got != "PASSED" {
		t.Errorf("Expected cached outcome PASSED, got %q", got)
	}
}

func TestExecuteRunWritesEventTrace(t *testing.T) {
	path := writeSuiteFile(t, `
suite: calculator
tests:
  - name: testAdd
    steps: []
`)

	cfg := quietConfig(t)
	cfg.LogEventsText = filepath.Join(t.TempDir(), "events.log")
	if err := executeRun(context.Background(), path, cfg); err != nil {
		t.Fatalf("run failed: %v", err)
	}

	data, err := os.ReadFile(cfg.LogEventsText)
	if err != nil {
		t.Fatalf("reading event trace: %v", err)
	}
	if len(data) == 0 {
		t.Error("Expected event trace to contain lines")
	}
}

func TestExecuteRunInvalidScenarioPath(t *testing.T) {
	err := executeRun(context.Background(), filepath.Join(t.TempDir(), "missing.yaml"), quietConfig(t))
	if err == nil {
		t.Fatal("Expected an error for a missing scenario path")
	}
	if errors.Is(err, errTestsFailed) {
		t.Error("A missing scenario must not be reported as a test failure")
	}
}
