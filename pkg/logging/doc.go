// Package logging provides a structured logging system for witness with unified
// log handling and level filtering.
//
// The package is built on Go's standard slog package. All log entries carry a
// timestamp, a level, a subsystem identifier for categorization, the message,
// and optional error information.
//
// # Usage
//
//	logging.Init(logging.LevelInfo, os.Stderr)
//
//	logging.Info("Runner", "Execution started")
//	logging.Debug("Scenario", "Loaded suite from %s", path)
//	logging.Error("Provider", err, "Data provider resolution failed")
//
// Log output is always written to the configured writer, never to the test
// event stream; the event facade and logging are independent surfaces.
//
// The logging system is safe for concurrent use.
package logging
