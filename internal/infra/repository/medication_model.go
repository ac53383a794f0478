package repository

import (
	"fmt"
	"time"

	"github.com/KasumiMercury/primind-medication-remind/internal/domain"
)

type MedicationModel struct {
	ID               string    `gorm:"column:id;type:uuid;primaryKey"`
	UserID           string    `gorm:"column:user_id;type:varchar(128);not null;index:idx_medications_user_id"`
	Name             string    `gorm:"column:name;type:varchar(255);not null"`
	Dosage           string    `gorm:"column:dosage;type:varchar(255);not null"`
	Frequency        string    `gorm:"column:frequency;type:varchar(255);not null"`
	Reason           string    `gorm:"column:reason;type:text;not null;default:''"`
	StartDate        *string   `gorm:"column:start_date;type:varchar(10)"` // YYYY-MM-DD
	EndDate          *string   `gorm:"column:end_date;type:varchar(10)"`   // YYYY-MM-DD
	RemindersEnabled bool      `gorm:"column:reminders_enabled;type:boolean;not null;default:false;index:idx_medications_reminders_enabled"`
	CreatedAt        time.Time `gorm:"column:created_at;type:timestamptz;not null"`
	UpdatedAt        time.Time `gorm:"column:updated_at;type:timestamptz;not null"`
}

func (MedicationModel) TableName() string {
	return "medications"
}

// ToEntity fails on malformed stored dates instead of treating them as unset.
func (m *MedicationModel) ToEntity() (*domain.Medication, error) {
	id, err := domain.MedicationIDFromString(m.ID)
	if err != nil {
		return nil, err
	}

	ownerID, err := domain.UserIDFromString(m.UserID)
	if err != nil {
		return nil, err
	}

	startDate, err := parseStoredDate(m.StartDate)
	if err != nil {
		return nil, fmt.Errorf("medication %s start_date: %w", m.ID, err)
	}

	endDate, err := parseStoredDate(m.EndDate)
	if err != nil {
		return nil, fmt.Errorf("medication %s end_date: %w", m.ID, err)
	}

	return domain.ReconstituteMedication(
		id,
		ownerID,
		domain.MedicationDetails{
			Name:             m.Name,
			Dosage:           m.Dosage,
			Frequency:        m.Frequency,
			Reason:           m.Reason,
			StartDate:        startDate,
			EndDate:          endDate,
			RemindersEnabled: m.RemindersEnabled,
		},
		m.CreatedAt,
		m.UpdatedAt,
	), nil
}

func FromMedicationEntity(m *domain.Medication) *MedicationModel {
	return &MedicationModel{
		ID:               m.ID().String(),
		UserID:           m.OwnerID().String(),
		Name:             m.Name(),
		Dosage:           m.Dosage(),
		Frequency:        m.Frequency(),
		Reason:           m.Reason(),
		StartDate:        formatStoredDate(m.StartDate()),
		EndDate:          formatStoredDate(m.EndDate()),
		RemindersEnabled: m.RemindersEnabled(),
		CreatedAt:        m.CreatedAt(),
		UpdatedAt:        m.UpdatedAt(),
	}
}

func parseStoredDate(s *string) (*domain.CalendarDate, error) {
	if s == nil {
		return nil, nil //nolint:nilnil
	}

	return domain.ParseOptionalCalendarDate(*s)
}

func formatStoredDate(d *domain.CalendarDate) *string {
	if d == nil {
		return nil
	}

	s := d.String()

	return &s
}
