package app

import (
	"time"

	"github.com/KasumiMercury/primind-medication-remind/internal/domain"
)

type VisitOutput struct {
	ID           string
	UserID       string
	Date         string
	HospitalName string
	DoctorName   string
	SicknessType string
	Details      string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type VisitsOutput struct {
	Visits []VisitOutput
	Count  int32
}

func FromVisit(v *domain.Visit) VisitOutput {
	return VisitOutput{
		ID:           v.ID().String(),
		UserID:       v.OwnerID().String(),
		Date:         v.Date().String(),
		HospitalName: v.HospitalName(),
		DoctorName:   v.DoctorName(),
		SicknessType: v.SicknessType(),
		Details:      v.Details(),
		CreatedAt:    v.CreatedAt(),
		UpdatedAt:    v.UpdatedAt(),
	}
}

func FromVisits(visits []*domain.Visit) VisitsOutput {
	outputs := make([]VisitOutput, 0, len(visits))
	for _, v := range visits {
		outputs = append(outputs, FromVisit(v))
	}

	return VisitsOutput{
		Visits: outputs,
		Count:  int32(len(outputs)),
	}
}
