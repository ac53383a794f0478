package domain_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KasumiMercury/primind-medication-remind/internal/domain"
)

func datePtr(t *testing.T, s string) *domain.CalendarDate {
	t.Helper()

	if s == "" {
		return nil
	}

	d, err := domain.ParseCalendarDate(s)
	require.NoError(t, err)

	return &d
}

func createMedicationWithDates(t *testing.T, start, end string) *domain.Medication {
	t.Helper()

	return domain.ReconstituteMedication(
		domain.NewMedicationID(),
		createValidUserID(t),
		domain.MedicationDetails{
			Name:             "Amoxicillin",
			Dosage:           "500mg",
			Frequency:        "Twice a day",
			StartDate:        datePtr(t, start),
			EndDate:          datePtr(t, end),
			RemindersEnabled: true,
		},
		time.Now(),
		time.Now(),
	)
}

func TestWindowEvaluatorIsActiveOnFromReference(t *testing.T) {
	tests := []struct {
		name      string
		startDate string
		endDate   string
		today     string
		expected  bool
	}{
		{
			name:      "today within closed range",
			startDate: "2024-01-01",
			endDate:   "2024-12-31",
			today:     "2024-06-15",
			expected:  true,
		},
		{
			name:     "range entirely in the past",
			endDate:  "2023-12-31",
			today:    "2024-01-01",
			expected: false,
		},
		{
			name:      "range entirely in the future",
			startDate: "2024-12-25",
			today:     "2024-06-15",
			expected:  false,
		},
		{
			name:      "today equals start date",
			startDate: "2024-06-15",
			endDate:   "2024-06-20",
			today:     "2024-06-15",
			expected:  true,
		},
		{
			name:      "today equals end date",
			startDate: "2024-06-01",
			endDate:   "2024-06-15",
			today:     "2024-06-15",
			expected:  true,
		},
		{
			name:      "single day course",
			startDate: "2024-06-15",
			endDate:   "2024-06-15",
			today:     "2024-06-15",
			expected:  true,
		},
		{
			name:     "no dates is active on the reference day",
			today:    "2024-06-15",
			expected: true,
		},
		{
			name:      "open ended course already started",
			startDate: "2020-03-01",
			today:     "2024-06-15",
			expected:  true,
		},
		{
			name:     "no start date and end date still ahead",
			endDate:  "2024-07-01",
			today:    "2024-06-15",
			expected: true,
		},
		{
			name:     "no start date and end date yesterday",
			endDate:  "2024-06-14",
			today:    "2024-06-15",
			expected: false,
		},
	}

	evaluator := domain.NewWindowEvaluator(domain.MissingStartFromReference)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := createMedicationWithDates(t, tt.startDate, tt.endDate)
			today := *datePtr(t, tt.today)

			assert.Equal(t, tt.expected, evaluator.IsActiveOnDate(m, today))
		})
	}
}

func TestWindowEvaluatorIsActiveOnInactiveWithoutStart(t *testing.T) {
	tests := []struct {
		name      string
		startDate string
		endDate   string
		today     string
		expected  bool
	}{
		{
			name:     "no dates",
			today:    "2024-06-15",
			expected: false,
		},
		{
			name:     "end date only",
			endDate:  "2024-07-01",
			today:    "2024-06-15",
			expected: false,
		},
		{
			name:      "start date only",
			startDate: "2024-06-01",
			today:     "2024-06-15",
			expected:  true,
		},
		{
			name:      "closed range",
			startDate: "2024-06-01",
			endDate:   "2024-06-10",
			today:     "2024-06-15",
			expected:  false,
		},
	}

	evaluator := domain.NewWindowEvaluator(domain.MissingStartInactive)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := createMedicationWithDates(t, tt.startDate, tt.endDate)
			today := *datePtr(t, tt.today)

			assert.Equal(t, tt.expected, evaluator.IsActiveOnDate(m, today))
		})
	}
}

func TestWindowEvaluatorIsActiveOnUsesCalendarDay(t *testing.T) {
	evaluator := domain.NewWindowEvaluator(domain.MissingStartFromReference)
	m := createMedicationWithDates(t, "2024-06-15", "2024-06-15")

	tests := []struct {
		name      string
		reference time.Time
		expected  bool
	}{
		{
			name:      "just after local midnight",
			reference: time.Date(2024, time.June, 15, 0, 0, 1, 0, time.UTC),
			expected:  true,
		},
		{
			name:      "just before local midnight",
			reference: time.Date(2024, time.June, 15, 23, 59, 59, 0, time.UTC),
			expected:  true,
		},
		{
			name:      "same instant seen from a zone where it is the next day",
			reference: time.Date(2024, time.June, 15, 20, 0, 0, 0, time.UTC).In(time.FixedZone("JST", 9*60*60)),
			expected:  false,
		},
		{
			name:      "next day",
			reference: time.Date(2024, time.June, 16, 0, 0, 0, 0, time.UTC),
			expected:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, evaluator.IsActiveOn(m, tt.reference))
		})
	}
}

func TestNewWindowEvaluatorDefaultsPolicy(t *testing.T) {
	evaluator := domain.NewWindowEvaluator("")

	assert.Equal(t, domain.MissingStartFromReference, evaluator.Policy())
}
