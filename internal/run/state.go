package run

import "fmt"

// State is the runner's lifecycle state. Transitions are strictly
// ordered; an out-of-order transition is an internal invariant break that
// aborts the whole run, unlike test failures which are converted into
// lifecycle events.
type State int

const (
	StateIdle State = iota
	StateConfigured
	StateSuiteLoaded
	StateSealed
	StateRunnerStarted
	StateExecutionStarted
	StateExecutionFinished
	StateRunnerFinished
)

// String makes State satisfy the fmt.Stringer interface.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "Idle"
	case StateConfigured:
		return "Configured"
	case StateSuiteLoaded:
		return "SuiteLoaded"
	case StateSealed:
		return "Sealed"
	case StateRunnerStarted:
		return "RunnerStarted"
	case StateExecutionStarted:
		return "ExecutionStarted"
	case StateExecutionFinished:
		return "ExecutionFinished"
	case StateRunnerFinished:
		return "RunnerFinished"
	default:
		return "Unknown"
	}
}

// InvariantError reports an out-of-order lifecycle transition. It is
// never converted into a test outcome.
type InvariantError struct {
	Current  State
	Expected State
}

func (e *InvariantError) Error() string {
	return fmt.Sprintf("lifecycle invariant violated: runner is %s, expected %s", e.Current, e.Expected)
}

// transition advances the runner state, enforcing the expected current
// state.
func (r *Runner) transition(expected, next State) error {
	if r.state != expected {
		return &InvariantError{Current: r.state, Expected: expected}
	}
	r.state = next
	return nil
}
