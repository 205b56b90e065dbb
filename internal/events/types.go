package events

import (
	"fmt"
	"time"
)

// Kind identifies a lifecycle event type. The string value is the
// human-readable event name used in textual traces.
type Kind string

// Runner-level event kinds.
const (
	// KindTestRunnerStarted indicates the test runner began a run.
	KindTestRunnerStarted Kind = "Test Runner Started"

	// KindTestRunnerFinished indicates the test runner completed a run.
	KindTestRunnerFinished Kind = "Test Runner Finished"

	// KindTestRunnerTriggeredWarning indicates the runner itself raised a
	// warning (for example an invalid configuration value it recovered from).
	KindTestRunnerTriggeredWarning Kind = "Test Runner Triggered Warning"

	// KindExecutionStarted indicates test execution began.
	KindExecutionStarted Kind = "Test Execution Started"

	// KindExecutionFinished indicates test execution completed.
	KindExecutionFinished Kind = "Test Execution Finished"
)

// Suite-level event kinds.
const (
	// KindTestSuiteStarted brackets the start of a suite's tests.
	KindTestSuiteStarted Kind = "Test Suite Started"

	// KindTestSuiteFinished brackets the end of a suite's tests.
	KindTestSuiteFinished Kind = "Test Suite Finished"
)

// Test-level event kinds.
const (
	// KindTestPreparationStarted indicates a test is about to be prepared.
	KindTestPreparationStarted Kind = "Test Preparation Started"

	// KindTestPrepared indicates a test was prepared and its body is about
	// to run.
	KindTestPrepared Kind = "Test Prepared"

	// KindTestTriggeredWarning indicates the code under test raised a
	// warning. Non-terminal; execution continues.
	KindTestTriggeredWarning Kind = "Test Triggered Warning"

	// KindTestTriggeredNotice indicates the code under test raised a notice.
	KindTestTriggeredNotice Kind = "Test Triggered Notice"

	// KindTestTriggeredDeprecation indicates the code under test raised a
	// deprecation.
	KindTestTriggeredDeprecation Kind = "Test Triggered Deprecation"

	// KindTestPassed is the terminal outcome for a passing test.
	KindTestPassed Kind = "Test Passed"

	// KindTestFailed is the terminal outcome for a failing test.
	KindTestFailed Kind = "Test Failed"

	// KindTestErrored is the terminal outcome for a test that raised a
	// non-assertion error.
	KindTestErrored Kind = "Test Errored"

	// KindTestSkipped is the terminal outcome for a skipped test.
	KindTestSkipped Kind = "Test Skipped"

	// KindTestFinished indicates a test's lifecycle completed. Always
	// emitted, even when preparation or outcome determination failed.
	KindTestFinished Kind = "Test Finished"
)

// Data-provider event kinds.
const (
	// KindDataProviderMethodCalled indicates a data provider method is
	// about to be invoked during resolution.
	KindDataProviderMethodCalled Kind = "Data Provider Method Called"

	// KindDataProviderMethodFinished indicates a data provider method
	// invocation completed. Emitted even when the method failed.
	KindDataProviderMethodFinished Kind = "Data Provider Method Finished"
)

// Event is one emitted lifecycle notification. Events are immutable once
// emitted; Seq imposes a total order within a single run.
type Event struct {
	Seq     uint64
	Kind    Kind
	Payload string
	Time    time.Time
}

// TraceLine renders the event in the textual trace format, one line per
// event: "<EventName> (<payload>)".
func (e Event) TraceLine() string {
	return fmt.Sprintf("%s (%s)", e.Kind, e.Payload)
}

// Subscriber receives every event emitted through a facade it is
// registered on.
type Subscriber interface {
	Notify(Event)
}

// SubscriberFunc adapts a function to the Subscriber interface.
type SubscriberFunc func(Event)

func (f SubscriberFunc) Notify(e Event) {
	f(e)
}
