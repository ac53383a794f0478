package handler

import "github.com/KasumiMercury/primind-medication-remind/internal/app"

// VisitRequest is the body of create and full-update calls. An empty date is
// reported as a validation error on the date field.
type VisitRequest struct {
	Date         string `json:"date"`
	HospitalName string `json:"hospital_name" binding:"required"`
	DoctorName   string `json:"doctor_name" binding:"required"`
	SicknessType string `json:"sickness_type" binding:"required"`
	Details      string `json:"details"`
}

func (r VisitRequest) toInput() app.VisitInput {
	return app.VisitInput{
		Date:         r.Date,
		HospitalName: r.HospitalName,
		DoctorName:   r.DoctorName,
		SicknessType: r.SicknessType,
		Details:      r.Details,
	}
}
