package app

import "time"

type Clock interface {
	Now() time.Time
}

// SystemClock reports wall-clock time in a fixed location so that the
// calendar day of "now" matches the configured reminder timezone.
type SystemClock struct {
	Location *time.Location
}

func (c SystemClock) Now() time.Time {
	if c.Location == nil {
		return time.Now()
	}

	return time.Now().In(c.Location)
}

type FixedClock time.Time

func (c FixedClock) Now() time.Time {
	return time.Time(c)
}
