package double

import "fmt"

// Cardinality constrains how many times an expectation may be invoked.
// Implementations are pure predicates over a count owned by the
// expectation, so verification is naturally idempotent.
type Cardinality interface {
	// Met reports whether the expectation is satisfied at count.
	Met(count int) bool
	fmt.Stringer
}

// Saturating cardinalities stop accepting further calls once a bound is
// reached. A call arriving at a saturated expectation falls through to the
// next registered expectation, or fails as unexpected if none accepts.
type Saturating interface {
	Cardinality
	// Saturated reports whether count has reached the upper bound.
	Saturated(count int) bool
}

type anyCount struct{}

func (anyCount) Met(int) bool   { return true }
func (anyCount) String() string { return "any number of times" }

type exactly int

func (n exactly) Met(count int) bool       { return count == int(n) }
func (n exactly) Saturated(count int) bool { return count >= int(n) }
func (n exactly) String() string           { return fmt.Sprintf("exactly %d time(s)", int(n)) }

type atLeast int

func (n atLeast) Met(count int) bool { return count >= int(n) }
func (n atLeast) String() string     { return fmt.Sprintf("at least %d time(s)", int(n)) }

type atMost int

func (n atMost) Met(count int) bool       { return count <= int(n) }
func (n atMost) Saturated(count int) bool { return count >= int(n) }
func (n atMost) String() string           { return fmt.Sprintf("at most %d time(s)", int(n)) }

// AnyCount returns a cardinality that accepts any number of calls and
// never fails verification. This is the stub cardinality.
func AnyCount() Cardinality { return anyCount{} }

// Exactly returns a cardinality requiring exactly n calls. It saturates
// after n calls; further matching calls fall through.
func Exactly(n int) Cardinality { return exactly(n) }

// Once is shorthand for Exactly(1).
func Once() Cardinality { return exactly(1) }

// Never is shorthand for Exactly(0): any call is unexpected.
func Never() Cardinality { return exactly(0) }

// AtLeast returns a cardinality requiring n or more calls. It never
// saturates.
func AtLeast(n int) Cardinality { return atLeast(n) }

// AtMost returns a cardinality allowing up to n calls. A call beyond the
// bound is refused at the call site rather than deferred to verification,
// because an unexpected extra call indicates a logic defect worth
// surfacing where it happens.
func AtMost(n int) Cardinality { return atMost(n) }
