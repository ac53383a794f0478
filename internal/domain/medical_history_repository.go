package domain

import (
	"context"
)

//go:generate mockgen -source=medical_history_repository.go -destination=medical_history_repository_mock.go -package=domain

// MedicalHistoryRepository lists entries newest date first.
type MedicalHistoryRepository interface {
	Save(ctx context.Context, entry *MedicalHistoryEntry) error
	FindByID(ctx context.Context, id MedicalHistoryID) (*MedicalHistoryEntry, error)
	FindByOwnerID(ctx context.Context, ownerID UserID) ([]*MedicalHistoryEntry, error)
	Update(ctx context.Context, entry *MedicalHistoryEntry) error
	Delete(ctx context.Context, id MedicalHistoryID) error
}
