package handler

import "github.com/KasumiMercury/primind-medication-remind/internal/app"

// MedicationRequest is the body of create and full-update calls. Dates are
// YYYY-MM-DD; empty means unset.
type MedicationRequest struct {
	Name             string `json:"name" binding:"required"`
	Dosage           string `json:"dosage" binding:"required"`
	Frequency        string `json:"frequency" binding:"required"`
	Reason           string `json:"reason"`
	StartDate        string `json:"start_date"`
	EndDate          string `json:"end_date"`
	RemindersEnabled bool   `json:"reminders_enabled"`
}

type ActiveRemindersRequest struct {
	Date string `form:"date"`
}

func (r MedicationRequest) toInput() app.MedicationInput {
	return app.MedicationInput{
		Name:             r.Name,
		Dosage:           r.Dosage,
		Frequency:        r.Frequency,
		Reason:           r.Reason,
		StartDate:        r.StartDate,
		EndDate:          r.EndDate,
		RemindersEnabled: r.RemindersEnabled,
	}
}
