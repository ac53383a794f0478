package handler

import (
	"time"

	"github.com/KasumiMercury/primind-medication-remind/internal/app"
)

type VisitResponse struct {
	ID           string    `json:"id"`
	UserID       string    `json:"user_id"`
	Date         string    `json:"date"`
	HospitalName string    `json:"hospital_name"`
	DoctorName   string    `json:"doctor_name"`
	SicknessType string    `json:"sickness_type"`
	Details      string    `json:"details,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type VisitsResponse struct {
	Visits []VisitResponse `json:"visits"`
	Count  int32           `json:"count"`
}

func FromVisitDTO(output app.VisitOutput) VisitResponse {
	return VisitResponse{
		ID:           output.ID,
		UserID:       output.UserID,
		Date:         output.Date,
		HospitalName: output.HospitalName,
		DoctorName:   output.DoctorName,
		SicknessType: output.SicknessType,
		Details:      output.Details,
		CreatedAt:    output.CreatedAt,
		UpdatedAt:    output.UpdatedAt,
	}
}

func FromVisitsDTO(output app.VisitsOutput) VisitsResponse {
	visits := make([]VisitResponse, 0, len(output.Visits))
	for _, v := range output.Visits {
		visits = append(visits, FromVisitDTO(v))
	}

	return VisitsResponse{
		Visits: visits,
		Count:  output.Count,
	}
}
