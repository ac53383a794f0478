package repository

import (
	"fmt"
	"time"

	"github.com/KasumiMercury/primind-medication-remind/internal/domain"
)

type VisitModel struct {
	ID           string    `gorm:"column:id;type:uuid;primaryKey"`
	UserID       string    `gorm:"column:user_id;type:varchar(128);not null;index:idx_visits_user_id"`
	VisitDate    string    `gorm:"column:visit_date;type:varchar(10);not null"` // YYYY-MM-DD
	HospitalName string    `gorm:"column:hospital_name;type:varchar(255);not null"`
	DoctorName   string    `gorm:"column:doctor_name;type:varchar(255);not null"`
	SicknessType string    `gorm:"column:sickness_type;type:varchar(255);not null"`
	Details      string    `gorm:"column:details;type:text;not null;default:''"`
	CreatedAt    time.Time `gorm:"column:created_at;type:timestamptz;not null"`
	UpdatedAt    time.Time `gorm:"column:updated_at;type:timestamptz;not null"`
}

func (VisitModel) TableName() string {
	return "visits"
}

func (m *VisitModel) ToEntity() (*domain.Visit, error) {
	id, err := domain.VisitIDFromString(m.ID)
	if err != nil {
		return nil, err
	}

	ownerID, err := domain.UserIDFromString(m.UserID)
	if err != nil {
		return nil, err
	}

	visitDate, err := domain.ParseCalendarDate(m.VisitDate)
	if err != nil {
		return nil, fmt.Errorf("visit %s visit_date: %w", m.ID, err)
	}

	return domain.ReconstituteVisit(
		id,
		ownerID,
		domain.VisitDetails{
			Date:         visitDate,
			HospitalName: m.HospitalName,
			DoctorName:   m.DoctorName,
			SicknessType: m.SicknessType,
			Details:      m.Details,
		},
		m.CreatedAt,
		m.UpdatedAt,
	), nil
}

func FromVisitEntity(v *domain.Visit) *VisitModel {
	return &VisitModel{
		ID:           v.ID().String(),
		UserID:       v.OwnerID().String(),
		VisitDate:    v.Date().String(),
		HospitalName: v.HospitalName(),
		DoctorName:   v.DoctorName(),
		SicknessType: v.SicknessType(),
		Details:      v.Details(),
		CreatedAt:    v.CreatedAt(),
		UpdatedAt:    v.UpdatedAt(),
	}
}
