package double

import (
	"sync"

	"github.com/google/uuid"

	"witness/pkg/logging"
)

// Handler is the invocation handler for one test double. Generated or
// hand-written double implementations delegate every intercepted call to
// Invoke; there is no method-table rewriting.
//
// A mutex guards the invocation log and expectation list. Tests run
// single-threaded, but a forcibly terminated body keeps running on its
// abandoned goroutine and may still invoke a double while the runner
// verifies it.
type Handler struct {
	id   uuid.UUID
	name string

	mu           sync.Mutex
	recorder     Recorder
	expectations []*Expectation
}

// NewHandler creates a handler for a double with the given name. The name
// appears in failure messages and event payloads; the uuid identity
// disambiguates doubles sharing a name.
func NewHandler(name string) *Handler {
	return &Handler{
		id:   uuid.New(),
		name: name,
	}
}

// Name returns the double's configured name.
func (h *Handler) Name() string {
	return h.name
}

// ID returns the double's unique identity.
func (h *Handler) ID() uuid.UUID {
	return h.id
}

// Expects registers a new expectation with the given cardinality and
// returns it for chained configuration. Registration order is
// significant: the first registered, still-accepting expectation wins
// when several match the same invocation.
func (h *Handler) Expects(cardinality Cardinality) *Expectation {
	e := &Expectation{
		handler:     h,
		cardinality: cardinality,
	}
	h.mu.Lock()
	h.expectations = append(h.expectations, e)
	h.mu.Unlock()
	return e
}

// Invoke is the interception entry point, called on every call against
// the double. The invocation is recorded first, then matched against the
// registered expectations in order. The winning expectation's stub action
// supplies the result. When no expectation accepts the call, an
// UnexpectedInvocationError is returned; the caller must treat it as
// fatal to the current test, not as a silent no-op.
func (h *Handler) Invoke(method string, args ...interface{}) ([]interface{}, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	inv := h.recorder.Record(h.name, method, args)

	for _, e := range h.expectations {
		if e.accepts(method, args) {
			logging.Debug("Double", "%s accepted by %s", inv, e)
			return e.invoked(inv)
		}
	}

	return nil, &UnexpectedInvocationError{
		Double: h.name,
		Method: method,
		Args:   args,
	}
}

// Verify checks every registered expectation and collects all failures
// into a single report. Returns nil when every expectation is satisfied.
// Idempotent: verifying twice yields the same result.
func (h *Handler) Verify() error {
	h.mu.Lock()
	defer h.mu.Unlock()

	var failures []*VerificationFailure
	for _, e := range h.expectations {
		if err := e.Verify(); err != nil {
			failures = append(failures, err.(*VerificationFailure))
		}
	}
	if len(failures) == 0 {
		return nil
	}
	return &VerificationReport{
		Double:   h.name,
		Failures: failures,
	}
}

// History iterates the recorded invocations in call order.
func (h *Handler) History(fn func(Invocation) bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.recorder.History(fn)
}

// Invocations returns the total number of recorded calls, including
// unexpected ones.
func (h *Handler) Invocations() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.recorder.Count()
}
