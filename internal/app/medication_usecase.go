package app

import "context"

type MedicationUseCase interface {
	CreateMedication(ctx context.Context, input CreateMedicationInput) (MedicationOutput, error)
	GetMedication(ctx context.Context, input GetMedicationInput) (MedicationOutput, error)
	ListMedications(ctx context.Context, input ListMedicationsInput) (MedicationsOutput, error)
	UpdateMedication(ctx context.Context, input UpdateMedicationInput) (MedicationOutput, error)
	DeleteMedication(ctx context.Context, input DeleteMedicationInput) error
	ListActiveReminders(ctx context.Context, input ListActiveRemindersInput) (ActiveRemindersOutput, error)
}
