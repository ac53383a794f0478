package domain

import "time"

// WindowEvaluator decides whether a medication is active on a calendar day.
//
// Missing end dates resolve to the reference day, so an open-ended course is
// evaluated again on every call and never gets a precomputed future end.
// Missing start dates follow the evaluator's MissingStartPolicy. Both bounds
// are inclusive and compared at day granularity.
type WindowEvaluator struct {
	policy MissingStartPolicy
}

func NewWindowEvaluator(policy MissingStartPolicy) *WindowEvaluator {
	if policy == "" {
		policy = MissingStartFromReference
	}

	return &WindowEvaluator{policy: policy}
}

func (e *WindowEvaluator) Policy() MissingStartPolicy {
	return e.policy
}

// IsActiveOn reports whether m is active on the calendar day of reference,
// taken in reference's location.
func (e *WindowEvaluator) IsActiveOn(m *Medication, reference time.Time) bool {
	return e.IsActiveOnDate(m, DateOf(reference))
}

func (e *WindowEvaluator) IsActiveOnDate(m *Medication, today CalendarDate) bool {
	return e.Contains(m.startDate, m.endDate, today)
}

func (e *WindowEvaluator) Contains(startDate, endDate *CalendarDate, today CalendarDate) bool {
	effectiveStart := today
	if startDate != nil {
		effectiveStart = *startDate
	} else if e.policy == MissingStartInactive {
		return false
	}

	effectiveEnd := today
	if endDate != nil {
		effectiveEnd = *endDate
	}

	return !today.Before(effectiveStart) && !today.After(effectiveEnd)
}
