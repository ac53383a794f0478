package app

import (
	"time"

	"github.com/KasumiMercury/primind-medication-remind/internal/domain"
)

type MedicalHistoryOutput struct {
	ID          string
	UserID      string
	Type        string
	Description string
	Date        string
	Notes       string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type MedicalHistoryListOutput struct {
	Entries []MedicalHistoryOutput
	Count   int32
}

func FromMedicalHistoryEntry(e *domain.MedicalHistoryEntry) MedicalHistoryOutput {
	return MedicalHistoryOutput{
		ID:          e.ID().String(),
		UserID:      e.OwnerID().String(),
		Type:        string(e.Type()),
		Description: e.Description(),
		Date:        formatOptionalDate(e.Date()),
		Notes:       e.Notes(),
		CreatedAt:   e.CreatedAt(),
		UpdatedAt:   e.UpdatedAt(),
	}
}

func FromMedicalHistoryEntries(entries []*domain.MedicalHistoryEntry) MedicalHistoryListOutput {
	outputs := make([]MedicalHistoryOutput, 0, len(entries))
	for _, e := range entries {
		outputs = append(outputs, FromMedicalHistoryEntry(e))
	}

	return MedicalHistoryListOutput{
		Entries: outputs,
		Count:   int32(len(outputs)),
	}
}
