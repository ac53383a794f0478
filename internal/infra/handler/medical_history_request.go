package handler

import "github.com/KasumiMercury/primind-medication-remind/internal/app"

// MedicalHistoryRequest is the body of create and full-update calls. Type is
// one of Illness, Allergy, Procedure or Other; date is YYYY-MM-DD or empty.
type MedicalHistoryRequest struct {
	Type        string `json:"type" binding:"required"`
	Description string `json:"description" binding:"required"`
	Date        string `json:"date"`
	Notes       string `json:"notes"`
}

func (r MedicalHistoryRequest) toInput() app.MedicalHistoryInput {
	return app.MedicalHistoryInput{
		Type:        r.Type,
		Description: r.Description,
		Date:        r.Date,
		Notes:       r.Notes,
	}
}
