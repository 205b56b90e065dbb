package double

import (
	"fmt"
	"strings"
)

// UnexpectedInvocationError reports a call no configured expectation was
// willing to accept. Raised immediately at the call site; fatal to the
// current test.
type UnexpectedInvocationError struct {
	Double string
	Method string
	Args   []interface{}
}

func (e *UnexpectedInvocationError) Error() string {
	return fmt.Sprintf("unexpected invocation %s.%s(%v)", e.Double, e.Method, e.Args)
}

// VerificationFailure reports one unsatisfied expectation, with the
// configured cardinality and the observed call count.
type VerificationFailure struct {
	Double      string
	Method      string
	Cardinality string
	Actual      int
}

func (e *VerificationFailure) Error() string {
	return fmt.Sprintf("%s.%s expected %s, found %d call(s)", e.Double, e.Method, e.Cardinality, e.Actual)
}

// VerificationReport collects every verification failure for one double.
// One unsatisfied expectation never suppresses reporting of the others.
type VerificationReport struct {
	Double   string
	Failures []*VerificationFailure
}

func (e *VerificationReport) Error() string {
	msgs := make([]string, len(e.Failures))
	for i, f := range e.Failures {
		msgs[i] = f.Error()
	}
	return fmt.Sprintf("double %s has unmet expectations: %s", e.Double, strings.Join(msgs, "; "))
}
