package app

type DispatchOutcome string

const (
	DispatchFailed    DispatchOutcome = "failed"
	DispatchPartial   DispatchOutcome = "partial"
	DispatchSucceeded DispatchOutcome = "succeeded"
)

// DispatchSummary is the result of one dispatch run. Success is false only
// when the run could not start or could not list recipients; per-user and
// per-message failures are collected in Errors.
type DispatchSummary struct {
	Success      bool
	MessagesSent int
	Errors       []string
}

func (s DispatchSummary) Outcome() DispatchOutcome {
	switch {
	case !s.Success:
		return DispatchFailed
	case len(s.Errors) > 0:
		return DispatchPartial
	default:
		return DispatchSucceeded
	}
}
