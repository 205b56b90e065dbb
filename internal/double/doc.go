// Package double implements the test-double engine for witness: an
// invocation recorder, cardinality rules, argument matchers, stub actions
// and the per-double invocation handler that ties them together.
//
// A double is configured during test setup:
//
//	h := double.NewHandler("mailer")
//	h.Expects(double.Exactly(2)).Method("Send").WithValues("bob").WillReturn(true)
//
// During the exercise phase every intercepted call is routed through
// Handler.Invoke, which records the invocation, selects the first
// registered expectation still willing to accept it, and applies its stub
// action. A call no expectation accepts fails immediately as an
// unexpected invocation.
//
// At teardown Handler.Verify checks every expectation's cardinality and
// collects all failures into one report. Verification is idempotent.
package double
