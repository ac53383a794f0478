package handler

import (
	"time"

	"github.com/KasumiMercury/primind-medication-remind/internal/app"
)

type MedicalHistoryResponse struct {
	ID          string    `json:"id"`
	UserID      string    `json:"user_id"`
	Type        string    `json:"type"`
	Description string    `json:"description"`
	Date        string    `json:"date,omitempty"`
	Notes       string    `json:"notes,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type MedicalHistoryListResponse struct {
	Entries []MedicalHistoryResponse `json:"entries"`
	Count   int32                    `json:"count"`
}

func FromMedicalHistoryDTO(output app.MedicalHistoryOutput) MedicalHistoryResponse {
	return MedicalHistoryResponse{
		ID:          output.ID,
		UserID:      output.UserID,
		Type:        output.Type,
		Description: output.Description,
		Date:        output.Date,
		Notes:       output.Notes,
		CreatedAt:   output.CreatedAt,
		UpdatedAt:   output.UpdatedAt,
	}
}

func FromMedicalHistoryListDTO(output app.MedicalHistoryListOutput) MedicalHistoryListResponse {
	entries := make([]MedicalHistoryResponse, 0, len(output.Entries))
	for _, e := range output.Entries {
		entries = append(entries, FromMedicalHistoryDTO(e))
	}

	return MedicalHistoryListResponse{
		Entries: entries,
		Count:   output.Count,
	}
}
