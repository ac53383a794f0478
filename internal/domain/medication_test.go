package domain_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KasumiMercury/primind-medication-remind/internal/domain"
)

func createValidUserID(t *testing.T) domain.UserID {
	t.Helper()

	id, err := domain.UserIDFromString("firebase-uid-123")
	require.NoError(t, err)

	return id
}

func validDetails() domain.MedicationDetails {
	return domain.MedicationDetails{
		Name:      "Metformin",
		Dosage:    "500mg",
		Frequency: "Once a day",
		Reason:    "Type 2 diabetes",
	}
}

func TestNewMedicationSuccess(t *testing.T) {
	tests := []struct {
		name      string
		startDate *domain.CalendarDate
		endDate   *domain.CalendarDate
		reminders bool
	}{
		{
			name: "no dates",
		},
		{
			name:      "start date only with reminders",
			startDate: datePtr(t, "2024-01-01"),
			reminders: true,
		},
		{
			name:      "closed range",
			startDate: datePtr(t, "2024-01-01"),
			endDate:   datePtr(t, "2024-01-31"),
		},
		{
			name:      "same start and end",
			startDate: datePtr(t, "2024-01-01"),
			endDate:   datePtr(t, "2024-01-01"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			owner := createValidUserID(t)
			details := validDetails()
			details.StartDate = tt.startDate
			details.EndDate = tt.endDate
			details.RemindersEnabled = tt.reminders

			m, err := domain.NewMedication(owner, details)

			require.NoError(t, err)
			assert.False(t, m.ID().IsZero())
			assert.True(t, m.IsOwnedBy(owner))
			assert.Equal(t, "Metformin", m.Name())
			assert.Equal(t, tt.reminders, m.RemindersEnabled())
			assert.Equal(t, tt.startDate, m.StartDate())
			assert.Equal(t, tt.endDate, m.EndDate())
			assert.False(t, m.CreatedAt().IsZero())
		})
	}
}

func TestNewMedicationError(t *testing.T) {
	tests := []struct {
		name          string
		modify        func(d *domain.MedicationDetails)
		expectedError error
	}{
		{
			name:          "short name",
			modify:        func(d *domain.MedicationDetails) { d.Name = "A" },
			expectedError: domain.ErrMedicationNameTooShort,
		},
		{
			name:          "whitespace name",
			modify:        func(d *domain.MedicationDetails) { d.Name = "   " },
			expectedError: domain.ErrMedicationNameTooShort,
		},
		{
			name:          "missing dosage",
			modify:        func(d *domain.MedicationDetails) { d.Dosage = "" },
			expectedError: domain.ErrDosageRequired,
		},
		{
			name:          "short frequency",
			modify:        func(d *domain.MedicationDetails) { d.Frequency = "x" },
			expectedError: domain.ErrFrequencyTooShort,
		},
		{
			name: "end before start",
			modify: func(d *domain.MedicationDetails) {
				d.StartDate = datePtr(t, "2024-02-01")
				d.EndDate = datePtr(t, "2024-01-31")
			},
			expectedError: domain.ErrEndBeforeStart,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			details := validDetails()
			tt.modify(&details)

			m, err := domain.NewMedication(createValidUserID(t), details)

			assert.ErrorIs(t, err, tt.expectedError)
			assert.Nil(t, m)
		})
	}
}

func TestMedicationUpdate(t *testing.T) {
	m, err := domain.NewMedication(createValidUserID(t), validDetails())
	require.NoError(t, err)

	originalID := m.ID()
	originalUpdatedAt := m.UpdatedAt()

	time.Sleep(time.Millisecond)

	details := validDetails()
	details.Dosage = "850mg"
	details.RemindersEnabled = true
	details.StartDate = datePtr(t, "2024-03-01")

	require.NoError(t, m.Update(details))

	assert.Equal(t, originalID, m.ID())
	assert.Equal(t, "850mg", m.Dosage())
	assert.True(t, m.RemindersEnabled())
	assert.Equal(t, "2024-03-01", m.StartDate().String())
	assert.True(t, m.UpdatedAt().After(originalUpdatedAt))
}

func TestMedicationUpdateRejectsInvalidRange(t *testing.T) {
	m, err := domain.NewMedication(createValidUserID(t), validDetails())
	require.NoError(t, err)

	details := validDetails()
	details.StartDate = datePtr(t, "2024-03-02")
	details.EndDate = datePtr(t, "2024-03-01")

	err = m.Update(details)

	assert.ErrorIs(t, err, domain.ErrEndBeforeStart)
	assert.Nil(t, m.StartDate())
}

func TestMedicationDatesAreCopied(t *testing.T) {
	start := datePtr(t, "2024-01-01")
	details := validDetails()
	details.StartDate = start

	m, err := domain.NewMedication(createValidUserID(t), details)
	require.NoError(t, err)

	*start = domain.MustCalendarDate(2030, time.January, 1)

	assert.Equal(t, "2024-01-01", m.StartDate().String())
}

func TestReconstituteMedicationSkipsValidation(t *testing.T) {
	details := validDetails()
	details.StartDate = datePtr(t, "2024-02-01")
	details.EndDate = datePtr(t, "2024-01-01")

	m := domain.ReconstituteMedication(domain.NewMedicationID(), createValidUserID(t), details, time.Now(), time.Now())

	assert.Equal(t, "2024-02-01", m.StartDate().String())
	assert.Equal(t, "2024-01-01", m.EndDate().String())
}
