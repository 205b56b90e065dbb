package double

import (
	"fmt"
	"sync/atomic"
)

// tick orders invocations across all doubles in a run, for
// order-dependent rules.
var tick uint64

func nextTick() uint64 {
	return atomic.AddUint64(&tick, 1)
}

// Invocation is one recorded call against a test double. Immutable once
// recorded.
type Invocation struct {
	// Double is the owning double's name.
	Double string
	// Method is the invoked method name.
	Method string
	// Args is the ordered argument list as passed by the caller.
	Args []interface{}
	// Seq is the 1-based call index within the owning double.
	Seq int
	// Tick orders this invocation relative to calls on other doubles.
	Tick uint64
}

func (i Invocation) String() string {
	return fmt.Sprintf("%s.%s(%v)", i.Double, i.Method, i.Args)
}

// Recorder keeps the append-only invocation log for one double. There is
// no removal operation; the log lives as long as the double.
type Recorder struct {
	recorded []Invocation
}

// Record appends an invocation to the log, assigning its per-double
// sequence number and global tick, and returns the completed record.
func (r *Recorder) Record(doubleName, method string, args []interface{}) Invocation {
	inv := Invocation{
		Double: doubleName,
		Method: method,
		Args:   args,
		Seq:    len(r.recorded) + 1,
		Tick:   nextTick(),
	}
	r.recorded = append(r.recorded, inv)
	return inv
}

// History returns a restartable iteration over the recorded invocations in
// call order. The callback returning false stops the iteration; calling
// History again restarts from the first invocation.
func (r *Recorder) History(fn func(Invocation) bool) {
	for _, inv := range r.recorded {
		if !fn(inv) {
			return
		}
	}
}

// Count returns the number of recorded invocations.
func (r *Recorder) Count() int {
	return len(r.recorded)
}
