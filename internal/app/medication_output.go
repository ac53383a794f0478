package app

import (
	"time"

	"github.com/KasumiMercury/primind-medication-remind/internal/domain"
)

type MedicationOutput struct {
	ID               string
	UserID           string
	Name             string
	Dosage           string
	Frequency        string
	Reason           string
	StartDate        string
	EndDate          string
	RemindersEnabled bool
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

type MedicationsOutput struct {
	Medications []MedicationOutput
	Count       int32
}

// ActiveRemindersOutput is the dashboard list for a single day.
type ActiveRemindersOutput struct {
	Date        string
	Medications []MedicationOutput
	Count       int32
}

func FromMedication(m *domain.Medication) MedicationOutput {
	return MedicationOutput{
		ID:               m.ID().String(),
		UserID:           m.OwnerID().String(),
		Name:             m.Name(),
		Dosage:           m.Dosage(),
		Frequency:        m.Frequency(),
		Reason:           m.Reason(),
		StartDate:        formatOptionalDate(m.StartDate()),
		EndDate:          formatOptionalDate(m.EndDate()),
		RemindersEnabled: m.RemindersEnabled(),
		CreatedAt:        m.CreatedAt(),
		UpdatedAt:        m.UpdatedAt(),
	}
}

func FromMedications(medications []*domain.Medication) MedicationsOutput {
	outputs := make([]MedicationOutput, 0, len(medications))
	for _, m := range medications {
		outputs = append(outputs, FromMedication(m))
	}

	return MedicationsOutput{
		Medications: outputs,
		Count:       int32(len(outputs)),
	}
}

func formatOptionalDate(d *domain.CalendarDate) string {
	if d == nil {
		return ""
	}

	return d.String()
}
