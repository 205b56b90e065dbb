// Package run implements the test lifecycle runner: a strict state
// machine that sequences suite and test lifecycle events, executes test
// bodies, determines outcomes, and verifies test doubles at teardown.
//
// The runner advances Idle -> Configured -> SuiteLoaded -> Sealed ->
// RunnerStarted -> ExecutionStarted -> ... -> ExecutionFinished ->
// RunnerFinished. Within a test the event order is always Preparation
// Started, Prepared, zero or more Triggered events in occurrence order,
// exactly one terminal outcome, then Finished. Finished is emitted even
// when preparation or the body itself failed, and suite Started/Finished
// events bracket every contained test with no interleaving.
//
// Test-level failures of every kind are converted into terminal lifecycle
// events; the suite always completes. Lifecycle invariant breaks are the
// only errors that abort a run.
package run
