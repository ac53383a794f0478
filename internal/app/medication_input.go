package app

type MedicationInput struct {
	Name             string
	Dosage           string
	Frequency        string
	Reason           string
	StartDate        string
	EndDate          string
	RemindersEnabled bool
}

type CreateMedicationInput struct {
	UserID     string
	Medication MedicationInput
}

type GetMedicationInput struct {
	UserID string
	ID     string
}

type ListMedicationsInput struct {
	UserID string
}

type UpdateMedicationInput struct {
	UserID     string
	ID         string
	Medication MedicationInput
}

type DeleteMedicationInput struct {
	UserID string
	ID     string
}

// ListActiveRemindersInput selects the reminder-enabled medications active on
// Date (YYYY-MM-DD). An empty Date means today.
type ListActiveRemindersInput struct {
	UserID string
	Date   string
}
