package scenario

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"time"

	"witness/internal/double"
	"witness/internal/metadata"
	"witness/internal/run"
)

// Build compiles a suite spec into a runnable suite, registering static
// data sets in the given metadata registry.
func (s *SuiteSpec) Build(registry *metadata.Registry) (*run.Suite, error) {
	suite := &run.Suite{Name: s.Suite}

	for i := range s.Tests {
		test, err := buildTest(s.Suite, &s.Tests[i], registry)
		if err != nil {
			return nil, err
		}
		suite.Tests = append(suite.Tests, test)
	}
	for i := range s.Suites {
		child, err := s.Suites[i].Build(registry)
		if err != nil {
			return nil, err
		}
		suite.Suites = append(suite.Suites, child)
	}
	return suite, nil
}

func buildTest(suiteName string, spec *TestSpec, registry *metadata.Registry) (*run.Test, error) {
	class := spec.Class
	if class == "" {
		class = suiteName
	}
	test := &run.Test{Class: class, Method: spec.Name}

	ref := metadata.MethodRef{Class: class, Method: spec.Name}
	for _, data := range spec.Data {
		registry.RegisterDataSet(ref, metadata.DataSet{Key: data.Key, Args: data.Args})
	}

	doubles := spec.Doubles
	steps := spec.Steps
	skip := spec.Skip
	test.Body = func(tc *run.TestContext) error {
		if skip != "" {
			return run.Skipf("%s", skip)
		}

		handlers := make(map[string]*double.Handler, len(doubles))
		for _, d := range doubles {
			h := tc.NewDouble(d.Name)
			for _, e := range d.Expect {
				configureExpectation(h, e)
			}
			handlers[d.Name] = h
		}

		for i, step := range steps {
			if err := runStep(tc, handlers, step); err != nil {
				return fmt.Errorf("step %d: %w", i+1, err)
			}
		}
		return nil
	}
	return test, nil
}

func configureExpectation(h *double.Handler, spec ExpectationSpec) {
	e := h.Expects(buildCardinality(spec.Calls)).Method(spec.Method)
	if spec.Args != nil {
		e.WithValues(spec.Args...)
	}
	if spec.Fails != "" {
		e.WillFail(errors.New(spec.Fails))
	} else if spec.Returns != nil {
		e.WillReturn(spec.Returns...)
	}
}

func buildCardinality(spec *CallsSpec) double.Cardinality {
	switch {
	case spec == nil:
		return double.AnyCount()
	case spec.Exactly != nil:
		return double.Exactly(*spec.Exactly)
	case spec.AtLeast != nil:
		return double.AtLeast(*spec.AtLeast)
	case spec.AtMost != nil:
		return double.AtMost(*spec.AtMost)
	case spec.Never:
		return double.Never()
	default:
		return double.AnyCount()
	}
}

func runStep(tc *run.TestContext, handlers map[string]*double.Handler, step StepSpec) error {
	switch {
	case step.Call != nil:
		return runCallStep(tc, handlers, step.Call)
	case step.AssertEqual != nil:
		expected := resolveValue(tc, step.AssertEqual.Expected)
		actual := resolveValue(tc, step.AssertEqual.Actual)
		return tc.AssertEqual(expected, actual)
	case step.Warn != "":
		tc.TriggerWarning("%s", step.Warn)
		return nil
	case step.Notice != "":
		tc.TriggerNotice("%s", step.Notice)
		return nil
	case step.Deprecation != "":
		tc.TriggerDeprecation("%s", step.Deprecation)
		return nil
	case step.Fail != "":
		return run.Failf("%s", step.Fail)
	case step.Sleep != "":
		d, err := time.ParseDuration(step.Sleep)
		if err != nil {
			return fmt.Errorf("invalid sleep duration %q: %w", step.Sleep, err)
		}
		time.Sleep(d)
		return nil
	default:
		return run.Failf("empty step")
	}
}

func runCallStep(tc *run.TestContext, handlers map[string]*double.Handler, step *CallStep) error {
	h, ok := handlers[step.Double]
	if !ok {
		return fmt.Errorf("unknown double %q", step.Double)
	}

	args := make([]interface{}, len(step.Args))
	for i, a := range step.Args {
		args[i] = resolveValue(tc, a)
	}
	values, err := h.Invoke(step.Method, args...)
	if step.ExpectError != "" {
		// An unexpected invocation is an expectation defect, never a
		// stubbed failure the step could have anticipated.
		var unexpected *double.UnexpectedInvocationError
		if errors.As(err, &unexpected) {
			return err
		}
		if err == nil {
			return run.Failf("call to %s.%s succeeded, expected error %q", step.Double, step.Method, step.ExpectError)
		}
		if err.Error() != step.ExpectError {
			return run.Failf("call to %s.%s failed with %q, expected %q", step.Double, step.Method, err.Error(), step.ExpectError)
		}
		return nil
	}
	if err != nil {
		return err
	}
	if step.Expect != nil {
		expected := make([]interface{}, len(step.Expect))
		for i, v := range step.Expect {
			expected[i] = resolveValue(tc, v)
		}
		if !reflect.DeepEqual(expected, values) {
			return run.Failf("call to %s.%s returned %v, expected %v", step.Double, step.Method, values, expected)
		}
	}
	return nil
}

// resolveValue substitutes "$N" strings with the N-th data set argument
// of a parameterized run. Everything else passes through unchanged.
func resolveValue(tc *run.TestContext, v interface{}) interface{} {
	s, ok := v.(string)
	if !ok || !strings.HasPrefix(s, "$") {
		return v
	}
	index, err := strconv.Atoi(s[1:])
	if err != nil || index < 0 || index >= len(tc.Args()) {
		return v
	}
	return tc.Args()[index]
}
