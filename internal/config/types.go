package config

import (
	"fmt"
	"time"

	"gopkg.in/yaml.v3"
)

// Duration wraps time.Duration with yaml unmarshalling from strings like
// "30s" or "2m".
type Duration time.Duration

func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var raw string
	if err := value.Decode(&raw); err != nil {
		return err
	}
	parsed, err := time.ParseDuration(raw)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", raw, err)
	}
	*d = Duration(parsed)
	return nil
}

func (d Duration) MarshalYAML() (interface{}, error) {
	return time.Duration(d).String(), nil
}

// Std returns the wrapped time.Duration.
func (d Duration) Std() time.Duration {
	return time.Duration(d)
}

// Config is the run configuration consumed by the runner, reporters and
// the CLI.
type Config struct {
	// FailOnWarning converts a test that triggered warnings from Passed
	// to Failed. Consulted only at outcome determination; event emission
	// order is unaffected.
	FailOnWarning bool `yaml:"failOnWarning"`

	// FailFast stops executing further tests after the first failure or
	// error. Suite and execution bracketing events are still emitted.
	FailFast bool `yaml:"failFast"`

	// Timeout is the per-test time limit. Zero means no limit.
	Timeout Duration `yaml:"timeout"`

	// Verbose enables detailed console reporting.
	Verbose bool `yaml:"verbose"`

	// NoOutput suppresses all console reporting.
	NoOutput bool `yaml:"noOutput"`

	// CacheResult persists per-test outcomes after the run.
	CacheResult bool `yaml:"cacheResult"`

	// ResultCachePath is where the result cache is written.
	ResultCachePath string `yaml:"resultCachePath"`

	// LogEventsText, when set, writes the textual event trace to this
	// path.
	LogEventsText string `yaml:"logEventsText"`

	// ReportPath, when set, writes the structured JSON run report to this
	// path.
	ReportPath string `yaml:"reportPath"`
}

// InvalidConfigError reports an unusable configuration. The CLI maps it
// to the usage exit code.
type InvalidConfigError struct {
	Field  string
	Reason string
}

func (e *InvalidConfigError) Error() string {
	return fmt.Sprintf("invalid configuration: %s %s", e.Field, e.Reason)
}

// Validate checks the configuration for values the runner cannot honor.
func (c *Config) Validate() error {
	if c.Timeout < 0 {
		return &InvalidConfigError{Field: "timeout", Reason: "must not be negative"}
	}
	if c.CacheResult && c.ResultCachePath == "" {
		return &InvalidConfigError{Field: "resultCachePath", Reason: "must be set when result caching is enabled"}
	}
	return nil
}
