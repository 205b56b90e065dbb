package double

import "fmt"

// Expectation is one configured rule on a double: how often a method may
// be called, against which arguments, after which other expectations, and
// what the call does. Created through Handler.Expects and configured by
// chaining; consulted on every invocation; verified once at teardown.
type Expectation struct {
	handler     *Handler
	method      string
	cardinality Cardinality
	args        ArgsMatcher
	after       []*Expectation
	action      StubAction
	count       int
}

// Method restricts the expectation to calls of the named method.
// An expectation without a method matches calls to any method.
func (e *Expectation) Method(name string) *Expectation {
	e.method = name
	return e
}

// With restricts the expectation to argument lists matched positionally
// by the given matchers.
func (e *Expectation) With(matchers ...ArgMatcher) *Expectation {
	e.args = Args(matchers...)
	return e
}

// WithValues restricts the expectation to argument lists deep-equal to
// the given values.
func (e *Expectation) WithValues(values ...interface{}) *Expectation {
	e.args = Values(values...)
	return e
}

// After gates this expectation on the prior ones: it only accepts calls
// once every listed expectation is done (saturated, or met for
// non-saturating cardinalities).
func (e *Expectation) After(prior ...*Expectation) *Expectation {
	e.after = append(e.after, prior...)
	return e
}

// Will installs an arbitrary stub action.
func (e *Expectation) Will(action StubAction) *Expectation {
	e.action = action
	return e
}

// WillReturn stubs fixed return values.
func (e *Expectation) WillReturn(values ...interface{}) *Expectation {
	return e.Will(Return(values...))
}

// WillReturnFunc stubs return values computed per call.
func (e *Expectation) WillReturnFunc(fn func(Invocation) []interface{}) *Expectation {
	return e.Will(ReturnFunc(fn))
}

// WillFail stubs a call failure with err.
func (e *Expectation) WillFail(err error) *Expectation {
	return e.Will(Fail(err))
}

// accepts reports whether this expectation is willing to take the call:
// structural match on method and arguments, not yet saturated, and in
// sequence with respect to After constraints.
func (e *Expectation) accepts(method string, args []interface{}) bool {
	if e.method != "" && e.method != method {
		return false
	}
	if e.args != nil && !e.args.MatchesArgs(args) {
		return false
	}
	if e.saturated() {
		return false
	}
	return e.inSequence()
}

func (e *Expectation) saturated() bool {
	if s, ok := e.cardinality.(Saturating); ok {
		return s.Saturated(e.count)
	}
	return false
}

func (e *Expectation) done() bool {
	if s, ok := e.cardinality.(Saturating); ok {
		return s.Saturated(e.count)
	}
	return e.cardinality.Met(e.count)
}

func (e *Expectation) inSequence() bool {
	for _, prior := range e.after {
		if !prior.done() {
			return false
		}
	}
	return true
}

// invoked advances the count and applies the stub action. The count is
// monotonically non-decreasing; nothing else mutates it.
func (e *Expectation) invoked(inv Invocation) ([]interface{}, error) {
	e.count++
	if e.action == nil {
		return nil, nil
	}
	return e.action.Apply(inv)
}

// Verify checks the cardinality against the observed count. Idempotent:
// it reads the count without mutating it, so repeated verification of a
// satisfied expectation keeps succeeding.
func (e *Expectation) Verify() error {
	if e.cardinality.Met(e.count) {
		return nil
	}
	return &VerificationFailure{
		Double:      e.handler.name,
		Method:      e.methodLabel(),
		Cardinality: e.cardinality.String(),
		Actual:      e.count,
	}
}

// Count returns the number of calls this expectation has accepted.
func (e *Expectation) Count() int {
	return e.count
}

func (e *Expectation) methodLabel() string {
	if e.method == "" {
		return "<any method>"
	}
	return e.method
}

func (e *Expectation) String() string {
	label := fmt.Sprintf("%s.%s", e.handler.name, e.methodLabel())
	if e.args != nil {
		label += " matching " + e.args.String()
	}
	return fmt.Sprintf("%s %s", label, e.cardinality)
}
