package app

// VisitInput carries the editable fields of a hospital visit. Date is
// YYYY-MM-DD and required.
type VisitInput struct {
	Date         string
	HospitalName string
	DoctorName   string
	SicknessType string
	Details      string
}

type CreateVisitInput struct {
	UserID string
	Visit  VisitInput
}

type GetVisitInput struct {
	UserID string
	ID     string
}

type ListVisitsInput struct {
	UserID string
}

type UpdateVisitInput struct {
	UserID string
	ID     string
	Visit  VisitInput
}

type DeleteVisitInput struct {
	UserID string
	ID     string
}
