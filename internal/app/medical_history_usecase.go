package app

import "context"

type MedicalHistoryUseCase interface {
	CreateEntry(ctx context.Context, input CreateMedicalHistoryInput) (MedicalHistoryOutput, error)
	GetEntry(ctx context.Context, input GetMedicalHistoryInput) (MedicalHistoryOutput, error)
	ListEntries(ctx context.Context, input ListMedicalHistoryInput) (MedicalHistoryListOutput, error)
	UpdateEntry(ctx context.Context, input UpdateMedicalHistoryInput) (MedicalHistoryOutput, error)
	DeleteEntry(ctx context.Context, input DeleteMedicalHistoryInput) error
}
