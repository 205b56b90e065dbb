package run

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"witness/internal/config"
	"witness/internal/double"
	"witness/internal/events"
	"witness/internal/metadata"
	"witness/internal/provider"
	"witness/pkg/logging"
)

// Runner drives a whole run: it sequences the lifecycle state machine,
// executes every test strictly sequentially, emits lifecycle events
// through the facade, and verifies each test's doubles at teardown.
//
// Every test-level failure is caught at the test boundary and converted
// into a terminal lifecycle event; the suite always completes. Only
// facade-sealing violations and lifecycle invariant breaks abort the run.
type Runner struct {
	state    State
	cfg      config.Config
	facade   *events.Facade
	emitter  *events.Emitter
	registry *metadata.Registry
	resolver *provider.Resolver
	suite    *Suite
	stopped  bool
}

// NewRunner creates an idle runner bound to the given event facade.
func NewRunner(facade *events.Facade) *Runner {
	return &Runner{
		state:   StateIdle,
		facade:  facade,
		emitter: facade.Emitter(),
	}
}

// Configure applies the run configuration. Idle -> Configured.
func (r *Runner) Configure(cfg config.Config) error {
	if err := r.transition(StateIdle, StateConfigured); err != nil {
		return err
	}
	r.cfg = cfg
	return nil
}

// Load installs the root suite and its metadata registry.
// Configured -> SuiteLoaded.
func (r *Runner) Load(suite *Suite, registry *metadata.Registry) error {
	if err := r.transition(StateConfigured, StateSuiteLoaded); err != nil {
		return err
	}
	r.suite = suite
	r.registry = registry
	r.resolver = provider.NewResolver(registry, r.emitter)
	logging.Info("Runner", "Loaded suite %q with %d test(s)", suite.Name, suite.CountTests())
	return nil
}

// Seal freezes the event facade. SuiteLoaded -> Sealed. After sealing no
// new event subscribers may register, process-wide.
func (r *Runner) Seal() error {
	if err := r.transition(StateSuiteLoaded, StateSealed); err != nil {
		return err
	}
	return r.facade.Seal()
}

// Run executes the loaded suite. Sealed -> ... -> RunnerFinished. The
// returned Result is complete even when tests failed; a non-nil error
// means the run itself was aborted by an invariant break.
func (r *Runner) Run(ctx context.Context) (*Result, error) {
	if err := r.transition(StateSealed, StateRunnerStarted); err != nil {
		return nil, err
	}
	r.emitter.TestRunnerStarted()

	if err := r.transition(StateRunnerStarted, StateExecutionStarted); err != nil {
		return nil, err
	}
	r.emitter.ExecutionStarted()

	result := &Result{StartTime: time.Now()}
	r.runSuite(ctx, r.suite, result)

	result.EndTime = time.Now()
	result.Duration = result.EndTime.Sub(result.StartTime)

	if err := r.transition(StateExecutionStarted, StateExecutionFinished); err != nil {
		return nil, err
	}
	r.emitter.ExecutionFinished()

	if err := r.transition(StateExecutionFinished, StateRunnerFinished); err != nil {
		return nil, err
	}
	r.emitter.TestRunnerFinished()

	logging.Info("Runner", "Run finished: %d test(s), %d passed, %d failed, %d errored, %d skipped",
		result.TotalTests, result.Passed, result.Failed, result.Errored, result.Skipped)
	return result, nil
}

// runSuite brackets the suite's tests between Started and Finished
// events. Finished is emitted even when execution inside the suite was
// cut short.
func (r *Runner) runSuite(ctx context.Context, s *Suite, result *Result) {
	r.emitter.TestSuiteStarted(s.Name)
	defer r.emitter.TestSuiteFinished(s.Name)

	for _, test := range s.Tests {
		if r.stopped {
			return
		}
		r.runTest(ctx, test, result)
	}
	for _, child := range s.Suites {
		if r.stopped {
			return
		}
		r.runSuite(ctx, child, result)
	}
}

// runTest expands the test's data sources and executes one run per data
// set, or a single unparameterized run. Data provider failures mark the
// test errored without running it; the suite continues.
func (r *Runner) runTest(ctx context.Context, test *Test, result *Result) {
	sets, err := r.resolver.Resolve(test.Class, test.Method)
	if err != nil {
		r.recordPreparationFailure(test.Name(), err, result)
		return
	}

	if sets == nil {
		r.executeTest(ctx, test, test.Name(), nil, result)
		return
	}
	for _, entry := range sets.Entries() {
		if r.stopped {
			return
		}
		name := fmt.Sprintf("%s with data set %s", test.Name(), entry.Label())
		r.executeTest(ctx, test, name, entry.Args, result)
	}
}

// recordPreparationFailure emits the lifecycle events for a test that
// could not be prepared. Prepared is skipped, Finished is not.
func (r *Runner) recordPreparationFailure(name string, cause error, result *Result) {
	r.emitter.TestPreparationStarted(name)
	r.emitter.TestErrored(name, cause.Error())
	r.emitter.TestFinished(name)

	result.record(TestResult{Name: name, Outcome: OutcomeErrored, Message: cause.Error()})
	r.noteOutcome(OutcomeErrored)
}

// executeTest runs one (possibly parameterized) test through its full
// lifecycle: Preparation Started, Prepared, any Triggered events in
// occurrence order, the terminal outcome, then Finished. Finished is
// emitted unconditionally.
func (r *Runner) executeTest(ctx context.Context, test *Test, name string, args []interface{}, result *Result) {
	started := time.Now()
	r.emitter.TestPreparationStarted(name)
	defer r.emitter.TestFinished(name)

	tc := &TestContext{
		name:    name,
		emitter: r.emitter,
		args:    args,
	}
	r.emitter.TestPrepared(name)

	bodyErr := r.invokeBody(ctx, tc, test.Body)
	outcome, message := r.determineOutcome(tc, bodyErr)

	switch outcome {
	case OutcomePassed:
		r.emitter.TestPassed(name)
	case OutcomeFailed:
		r.emitter.TestFailed(name, message)
	case OutcomeErrored:
		r.emitter.TestErrored(name, message)
	case OutcomeSkipped:
		r.emitter.TestSkipped(name, message)
	}

	result.record(TestResult{
		Name:     name,
		Outcome:  outcome,
		Message:  message,
		Warnings: tc.warningCount(),
		Duration: time.Since(started),
	})
	r.noteOutcome(outcome)
}

// invokeBody runs the test body, catching panics and enforcing the
// configured per-test time limit. On forced termination the body's
// goroutine is abandoned and its context is latched shut, so a still
// running body can no longer count warnings or emit events into a later
// test's bracket.
func (r *Runner) invokeBody(ctx context.Context, tc *TestContext, body Body) error {
	if body == nil {
		return nil
	}

	run := func() (err error) {
		defer func() {
			if p := recover(); p != nil {
				if e, ok := p.(error); ok {
					err = e
					return
				}
				err = fmt.Errorf("test panicked: %v", p)
			}
		}()
		return body(tc)
	}

	limit := r.cfg.Timeout.Std()
	if limit <= 0 && ctx.Done() == nil {
		return run()
	}

	done := make(chan error, 1)
	go func() {
		done <- run()
	}()

	var timeout <-chan time.Time
	if limit > 0 {
		timer := time.NewTimer(limit)
		defer timer.Stop()
		timeout = timer.C
	}

	select {
	case err := <-done:
		return err
	case <-timeout:
		tc.abandon()
		return &TimeLimitError{Limit: limit.String()}
	case <-ctx.Done():
		tc.abandon()
		return &TimeLimitError{Limit: "context cancellation"}
	}
}

// determineOutcome classifies the body result and applies the teardown
// verification step. Verification failures convert an otherwise-Passed
// outcome to Failed; the warnings-as-failures toggle is consulted here
// and nowhere else.
func (r *Runner) determineOutcome(tc *TestContext, bodyErr error) (Outcome, string) {
	if bodyErr != nil {
		var skip *SkipError
		if errors.As(bodyErr, &skip) {
			return OutcomeSkipped, skip.Message
		}
		var assertion *AssertionError
		if errors.As(bodyErr, &assertion) {
			return OutcomeFailed, assertion.Message
		}
		var unexpected *double.UnexpectedInvocationError
		if errors.As(bodyErr, &unexpected) {
			return OutcomeFailed, unexpected.Error()
		}
		return OutcomeErrored, bodyErr.Error()
	}

	if failures := tc.verifyDoubles(); len(failures) > 0 {
		msgs := make([]string, len(failures))
		for i, f := range failures {
			msgs[i] = f.Error()
		}
		return OutcomeFailed, strings.Join(msgs, "; ")
	}

	if warnings := tc.warningCount(); r.cfg.FailOnWarning && warnings > 0 {
		return OutcomeFailed, fmt.Sprintf("test triggered %d warning(s)", warnings)
	}
	return OutcomePassed, ""
}

// noteOutcome latches the fail-fast stop after the first failure or
// error.
func (r *Runner) noteOutcome(outcome Outcome) {
	if !r.cfg.FailFast {
		return
	}
	if outcome == OutcomeFailed || outcome == OutcomeErrored {
		r.stopped = true
	}
}
