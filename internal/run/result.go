package run

import "time"

// Outcome is the terminal classification of one executed test.
type Outcome string

const (
	// OutcomePassed indicates the test completed without failure.
	OutcomePassed Outcome = "PASSED"
	// OutcomeFailed indicates an assertion or expectation failure.
	OutcomeFailed Outcome = "FAILED"
	// OutcomeErrored indicates a non-assertion error or panic.
	OutcomeErrored Outcome = "ERROR"
	// OutcomeSkipped indicates the test asked to be skipped.
	OutcomeSkipped Outcome = "SKIPPED"
)

// TestResult is the recorded outcome of one executed test, including each
// parameterized run of a data-provided test.
type TestResult struct {
	Name     string        `json:"name"`
	Outcome  Outcome       `json:"outcome"`
	Message  string        `json:"message,omitempty"`
	Warnings int           `json:"warnings,omitempty"`
	Duration time.Duration `json:"duration"`
}

// Result aggregates a whole run.
type Result struct {
	StartTime   time.Time     `json:"startTime"`
	EndTime     time.Time     `json:"endTime"`
	Duration    time.Duration `json:"duration"`
	TotalTests  int           `json:"totalTests"`
	Passed      int           `json:"passed"`
	Failed      int           `json:"failed"`
	Errored     int           `json:"errored"`
	Skipped     int           `json:"skipped"`
	TestResults []TestResult  `json:"testResults"`
}

// Successful reports whether the run had no failures and no errors.
// Skipped tests do not fail a run.
func (r *Result) Successful() bool {
	return r.Failed == 0 && r.Errored == 0
}

func (r *Result) record(tr TestResult) {
	r.TestResults = append(r.TestResults, tr)
	r.TotalTests++
	switch tr.Outcome {
	case OutcomePassed:
		r.Passed++
	case OutcomeFailed:
		r.Failed++
	case OutcomeErrored:
		r.Errored++
	case OutcomeSkipped:
		r.Skipped++
	}
}
