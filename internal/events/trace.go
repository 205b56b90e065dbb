package events

import (
	"io"
	"sync"
)

// TraceWriter is a subscriber that renders every event as one trace line
// on an io.Writer. Used for the --log-events-text surface and for
// golden-file ordering tests.
type TraceWriter struct {
	mu sync.Mutex
	w  io.Writer
}

// NewTraceWriter creates a trace writer over w. The caller owns w and is
// responsible for closing it after the run.
func NewTraceWriter(w io.Writer) *TraceWriter {
	return &TraceWriter{w: w}
}

func (t *TraceWriter) Notify(e Event) {
	t.mu.Lock()
	defer t.mu.Unlock()
	// Write errors are swallowed: emission is fire-and-forget and must
	// never feed back into the run.
	io.WriteString(t.w, e.TraceLine()+"\n")
}

// Collector is a subscriber that retains every event in emission order.
type Collector struct {
	mu     sync.Mutex
	events []Event
}

// NewCollector creates an empty collector.
func NewCollector() *Collector {
	return &Collector{}
}

func (c *Collector) Notify(e Event) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.events = append(c.events, e)
}

// Events returns a copy of the collected events in emission order.
func (c *Collector) Events() []Event {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]Event, len(c.events))
	copy(out, c.events)
	return out
}

// Kinds returns just the kinds of the collected events, in order.
// Convenient for ordering assertions.
func (c *Collector) Kinds() []Kind {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]Kind, len(c.events))
	for i, e := range c.events {
		out[i] = e.Kind
	}
	return out
}
