package run

import (
	"fmt"
	"reflect"
	"sync"

	"witness/internal/double"
	"witness/internal/events"
)

// TestContext is handed to every test body. It creates the test's doubles,
// carries the data set arguments of parameterized runs, and routes
// triggered warnings into the event stream without ending the test.
//
// A forcibly terminated body keeps running on its abandoned goroutine.
// The mutex and the abandoned latch fence it off: once the runner gives
// up on the body, its context stops counting warnings and stops emitting,
// so nothing from it can interleave into a later test's events.
type TestContext struct {
	name    string
	emitter *events.Emitter
	args    []interface{}

	mu        sync.Mutex
	doubles   []*double.Handler
	warnings  int
	abandoned bool
}

// Name returns the full test name, including the data set label for
// parameterized runs.
func (tc *TestContext) Name() string {
	return tc.name
}

// Args returns the data set arguments for a parameterized run, or nil.
func (tc *TestContext) Args() []interface{} {
	return tc.args
}

// NewDouble creates a test double handler owned by this test. The runner
// verifies every double created here at teardown. An abandoned body still
// gets a usable handler, but it is not registered for verification.
func (tc *TestContext) NewDouble(name string) *double.Handler {
	h := double.NewHandler(name)
	tc.mu.Lock()
	defer tc.mu.Unlock()
	if tc.abandoned {
		return h
	}
	tc.doubles = append(tc.doubles, h)
	return h
}

// TriggerWarning reports a warning from the code under test. Non-terminal:
// the test keeps running and can still pass, unless warnings are
// configured as failures.
func (tc *TestContext) TriggerWarning(format string, args ...interface{}) {
	tc.mu.Lock()
	defer tc.mu.Unlock()
	if tc.abandoned {
		return
	}
	tc.warnings++
	tc.emitter.TestTriggeredWarning(tc.name, fmt.Sprintf(format, args...))
}

// TriggerNotice reports a notice from the code under test. Non-terminal.
func (tc *TestContext) TriggerNotice(format string, args ...interface{}) {
	tc.mu.Lock()
	defer tc.mu.Unlock()
	if tc.abandoned {
		return
	}
	tc.emitter.TestTriggeredNotice(tc.name, fmt.Sprintf(format, args...))
}

// TriggerDeprecation reports a deprecation from the code under test.
// Non-terminal.
func (tc *TestContext) TriggerDeprecation(format string, args ...interface{}) {
	tc.mu.Lock()
	defer tc.mu.Unlock()
	if tc.abandoned {
		return
	}
	tc.emitter.TestTriggeredDeprecation(tc.name, fmt.Sprintf(format, args...))
}

// AssertEqual fails the test when actual is not deep-equal to expected.
func (tc *TestContext) AssertEqual(expected, actual interface{}) error {
	if !reflect.DeepEqual(expected, actual) {
		return Failf("failed asserting that %v equals expected %v", actual, expected)
	}
	return nil
}

// AssertTrue fails the test when condition is false.
func (tc *TestContext) AssertTrue(condition bool, message string) error {
	if !condition {
		return Failf("failed asserting that %s", message)
	}
	return nil
}

// abandon cuts the body's goroutine off from this context. Called by the
// runner on forced termination, before any teardown event is emitted.
func (tc *TestContext) abandon() {
	tc.mu.Lock()
	tc.abandoned = true
	tc.mu.Unlock()
}

// warningCount returns the number of warnings triggered before the body
// finished or was abandoned.
func (tc *TestContext) warningCount() int {
	tc.mu.Lock()
	defer tc.mu.Unlock()
	return tc.warnings
}

// verifyDoubles collects verification failures from every double created
// during the test, preserving creation order.
func (tc *TestContext) verifyDoubles() []error {
	tc.mu.Lock()
	doubles := make([]*double.Handler, len(tc.doubles))
	copy(doubles, tc.doubles)
	tc.mu.Unlock()

	var failures []error
	for _, h := range doubles {
		if err := h.Verify(); err != nil {
			failures = append(failures, err)
		}
	}
	return failures
}
