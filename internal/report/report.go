// Package report aggregates per-example execution outcomes into a pass/fail
// summary and renders it for humans (styled text) or machines (JSON).
package report

import "time"

// Outcome is the recorded result of running one example. It is created by
// the runner, immutable once created, and owned by the Report afterwards.
type Outcome struct {
	Name      string
	Title     string
	Succeeded bool
	Duration  time.Duration

	// Output is the text the example wrote through its injected writer.
	// Buffered per example so concurrent runs never interleave.
	Output string

	// Error holds the failure message; empty when Succeeded is true.
	Error string
}

// Report is the ordered aggregation of one run's outcomes. Outcome order
// matches the order the examples were selected, regardless of how they were
// scheduled.
type Report struct {
	Outcomes []Outcome
	Total    int
	Passed   int
	Failed   int
	Elapsed  time.Duration
}

// Summarize derives a Report from an ordered sequence of outcomes. It is a
// pure function: no I/O, no mutation of the input.
func Summarize(outcomes []Outcome) Report {
	rep := Report{
		Outcomes: outcomes,
		Total:    len(outcomes),
	}
	for _, o := range outcomes {
		if o.Succeeded {
			rep.Passed++
		} else {
			rep.Failed++
		}
		rep.Elapsed += o.Duration
	}
	return rep
}

// Failures returns the failed outcomes in their original execution order.
func (r Report) Failures() []Outcome {
	var failed []Outcome
	for _, o := range r.Outcomes {
		if !o.Succeeded {
			failed = append(failed, o)
		}
	}
	return failed
}

// Ok reports whether every outcome in the report succeeded. An empty report
// is vacuously ok.
func (r Report) Ok() bool {
	return r.Failed == 0
}
