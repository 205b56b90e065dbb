package report

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"

	"witness/internal/run"
)

// ConsoleReporter writes human-readable progress and the run summary.
type ConsoleReporter struct {
	w        io.Writer
	verbose  bool
	noOutput bool
}

// NewConsoleReporter creates a console reporter. With noOutput set, every
// reporting method is a no-op.
func NewConsoleReporter(w io.Writer, verbose, noOutput bool) *ConsoleReporter {
	return &ConsoleReporter{
		w:        w,
		verbose:  verbose,
		noOutput: noOutput,
	}
}

// ReportStart is called when a run begins.
func (r *ConsoleReporter) ReportStart(suiteName string, totalTests int) {
	if r.noOutput {
		return
	}
	fmt.Fprintf(r.w, "witness: running suite %q (%d test(s))\n", suiteName, totalTests)
}

// ReportTestResult is called after each executed test.
func (r *ConsoleReporter) ReportTestResult(tr run.TestResult) {
	if r.noOutput {
		return
	}
	switch {
	case r.verbose:
		fmt.Fprintf(r.w, "  %-7s %s (%v)", tr.Outcome, tr.Name, tr.Duration.Round(microsecond))
		if tr.Message != "" {
			fmt.Fprintf(r.w, " - %s", tr.Message)
		}
		fmt.Fprintln(r.w)
	case tr.Outcome != run.OutcomePassed:
		fmt.Fprintf(r.w, "  %-7s %s", tr.Outcome, tr.Name)
		if tr.Message != "" {
			fmt.Fprintf(r.w, " - %s", tr.Message)
		}
		fmt.Fprintln(r.w)
	}
}

// ReportSummary renders the final counters table and verdict.
func (r *ConsoleReporter) ReportSummary(result *run.Result) {
	if r.noOutput {
		return
	}

	t := table.NewWriter()
	t.SetOutputMirror(r.w)
	t.AppendHeader(table.Row{"Total", "Passed", "Failed", "Errored", "Skipped", "Duration"})
	t.AppendRow(table.Row{
		result.TotalTests,
		result.Passed,
		result.Failed,
		result.Errored,
		result.Skipped,
		result.Duration.Round(microsecond).String(),
	})
	t.Render()

	if result.Successful() {
		fmt.Fprintln(r.w, "OK")
	} else {
		fmt.Fprintln(r.w, "FAILURES!")
	}
}
