package events

import (
	"errors"
	"sync"
	"time"

	"witness/pkg/logging"
)

// ErrSealed is returned when the facade is mutated after sealing.
var ErrSealed = errors.New("event facade is sealed")

// Facade is the process-wide event registry for one run. It has a strict
// two-phase lifecycle: subscribers may register only before Seal is called;
// after sealing the subscriber set is frozen and the facade is emit-only.
//
// A single facade instance is created per run and passed by reference into
// the runner and the data provider resolver. It is not an ambient global.
type Facade struct {
	mu          sync.Mutex
	sealed      bool
	subscribers []Subscriber
	seq         uint64
}

// NewFacade creates an unsealed facade with no subscribers.
func NewFacade() *Facade {
	return &Facade{}
}

// RegisterSubscriber adds a subscriber. Returns ErrSealed once the facade
// has been sealed; late registration is a caller bug, never silently
// ignored.
func (f *Facade) RegisterSubscriber(s Subscriber) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.sealed {
		return ErrSealed
	}
	f.subscribers = append(f.subscribers, s)
	return nil
}

// Seal freezes the subscriber set. Sealing happens exactly once per run,
// after configuration and suite loading and before any test executes.
// A second Seal returns ErrSealed.
func (f *Facade) Seal() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.sealed {
		return ErrSealed
	}
	f.sealed = true
	logging.Debug("Events", "Facade sealed with %d subscriber(s)", len(f.subscribers))
	return nil
}

// Sealed reports whether Seal has been called.
func (f *Facade) Sealed() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.sealed
}

// Emitter returns the typed emitter bound to this facade.
func (f *Facade) Emitter() *Emitter {
	return &Emitter{facade: f}
}

// emit dispatches an event to every subscriber, in registration order.
// Emission is fire-and-forget; subscribers must not block.
func (f *Facade) emit(kind Kind, payload string) {
	f.mu.Lock()
	f.seq++
	e := Event{
		Seq:     f.seq,
		Kind:    kind,
		Payload: payload,
		Time:    time.Now(),
	}
	subscribers := f.subscribers
	f.mu.Unlock()

	for _, s := range subscribers {
		s.Notify(e)
	}
}
