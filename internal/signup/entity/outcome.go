package entity

import "github.com/shandysiswandi/gosignup/internal/pkg/validator"

// Verdict is the decision taken on a sign-up request.
type Verdict int

const (
	VerdictAccepted Verdict = iota
	VerdictRejected
)

// String returns the string representation of the verdict.
func (v Verdict) String() string {
	if v == VerdictRejected {
		return "rejected"
	}
	return "accepted"
}

// Outcome is either accepted, or rejected with a non-empty report.
type Outcome struct {
	verdict Verdict
	report  *validator.Report
}

// NewOutcome rejects when report holds at least one message and accepts otherwise.
func NewOutcome(report *validator.Report) Outcome {
	if report.IsEmpty() {
		return Outcome{verdict: VerdictAccepted}
	}
	return Outcome{verdict: VerdictRejected, report: report}
}

// Verdict returns the decision.
func (o Outcome) Verdict() Verdict {
	return o.verdict
}

// Accepted reports whether the request passed every rule.
func (o Outcome) Accepted() bool {
	return o.verdict == VerdictAccepted
}

// Report returns the aggregated messages of a rejection, nil when accepted.
func (o Outcome) Report() *validator.Report {
	return o.report
}
