package app

// MedicalHistoryInput carries the editable fields of a history entry. Date is
// YYYY-MM-DD or empty.
type MedicalHistoryInput struct {
	Type        string
	Description string
	Date        string
	Notes       string
}

type CreateMedicalHistoryInput struct {
	UserID string
	Entry  MedicalHistoryInput
}

type GetMedicalHistoryInput struct {
	UserID string
	ID     string
}

type ListMedicalHistoryInput struct {
	UserID string
}

type UpdateMedicalHistoryInput struct {
	UserID string
	ID     string
	Entry  MedicalHistoryInput
}

type DeleteMedicalHistoryInput struct {
	UserID string
	ID     string
}
