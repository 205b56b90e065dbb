// Package events implements the lifecycle event facade for witness.
//
// One Facade instance exists per run. It has a two-phase lifecycle:
// subscribers register during the configuration window, then the facade is
// sealed exactly once, before any test executes. After sealing, the
// subscriber set is frozen and the facade only emits.
//
// Events are emitted through the typed Emitter, one method per event kind,
// and dispatched synchronously to subscribers in registration order. Each
// event carries a per-run sequence number imposing a total order.
//
// The textual trace format, one line per event in the form
// "<EventName> (<payload>)", is produced by TraceWriter and consumed by the
// --log-events-text CLI flag and by ordering regression tests.
package events
