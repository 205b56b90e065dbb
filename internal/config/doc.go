// Package config defines the run configuration for witness: outcome
// policy toggles (fail-on-warning, fail-fast), the per-test time limit,
// reporting destinations, and the result cache persisted between runs.
//
// Configuration is loaded from witness.yaml in the working directory,
// layered over built-in defaults; the --no-configuration flag bypasses
// the file entirely.
package config
