package handler

import (
	"time"

	"github.com/KasumiMercury/primind-medication-remind/internal/app"
)

type MedicationResponse struct {
	ID               string    `json:"id"`
	UserID           string    `json:"user_id"`
	Name             string    `json:"name"`
	Dosage           string    `json:"dosage"`
	Frequency        string    `json:"frequency"`
	Reason           string    `json:"reason,omitempty"`
	StartDate        string    `json:"start_date,omitempty"`
	EndDate          string    `json:"end_date,omitempty"`
	RemindersEnabled bool      `json:"reminders_enabled"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

type MedicationsResponse struct {
	Medications []MedicationResponse `json:"medications"`
	Count       int32                `json:"count"`
}

type ActiveRemindersResponse struct {
	Date        string               `json:"date"`
	Medications []MedicationResponse `json:"medications"`
	Count       int32                `json:"count"`
}

func FromMedicationDTO(output app.MedicationOutput) MedicationResponse {
	return MedicationResponse{
		ID:               output.ID,
		UserID:           output.UserID,
		Name:             output.Name,
		Dosage:           output.Dosage,
		Frequency:        output.Frequency,
		Reason:           output.Reason,
		StartDate:        output.StartDate,
		EndDate:          output.EndDate,
		RemindersEnabled: output.RemindersEnabled,
		CreatedAt:        output.CreatedAt,
		UpdatedAt:        output.UpdatedAt,
	}
}

func fromMedicationDTOs(outputs []app.MedicationOutput) []MedicationResponse {
	responses := make([]MedicationResponse, 0, len(outputs))
	for _, o := range outputs {
		responses = append(responses, FromMedicationDTO(o))
	}

	return responses
}

func FromMedicationsDTO(output app.MedicationsOutput) MedicationsResponse {
	return MedicationsResponse{
		Medications: fromMedicationDTOs(output.Medications),
		Count:       output.Count,
	}
}

func FromActiveRemindersDTO(output app.ActiveRemindersOutput) ActiveRemindersResponse {
	return ActiveRemindersResponse{
		Date:        output.Date,
		Medications: fromMedicationDTOs(output.Medications),
		Count:       output.Count,
	}
}
