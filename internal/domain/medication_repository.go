package domain

import (
	"context"
)

//go:generate mockgen -source=medication_repository.go -destination=medication_repository_mock.go -package=domain

type MedicationRepository interface {
	Save(ctx context.Context, medication *Medication) error
	FindByID(ctx context.Context, id MedicationID) (*Medication, error)
	FindByOwnerID(ctx context.Context, ownerID UserID) ([]*Medication, error)
	FindReminderEnabledByOwnerID(ctx context.Context, ownerID UserID) ([]*Medication, error)
	Update(ctx context.Context, medication *Medication) error
	Delete(ctx context.Context, id MedicationID) error
}
