package domain

// MissingStartPolicy decides how a medication without a start date is treated.
type MissingStartPolicy string

const (
	// MissingStartFromReference treats a missing start date as the reference day.
	MissingStartFromReference MissingStartPolicy = "from_reference"
	// MissingStartInactive treats a medication without a start date as never active.
	MissingStartInactive MissingStartPolicy = "inactive"
)
