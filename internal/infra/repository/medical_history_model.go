package repository

import (
	"fmt"
	"time"

	"github.com/KasumiMercury/primind-medication-remind/internal/domain"
)

type MedicalHistoryModel struct {
	ID          string    `gorm:"column:id;type:uuid;primaryKey"`
	UserID      string    `gorm:"column:user_id;type:varchar(128);not null;index:idx_medical_history_user_id"`
	Type        string    `gorm:"column:type;type:varchar(16);not null"`
	Description string    `gorm:"column:description;type:text;not null"`
	OccurredOn  *string   `gorm:"column:occurred_on;type:varchar(10)"` // YYYY-MM-DD
	Notes       string    `gorm:"column:notes;type:text;not null;default:''"`
	CreatedAt   time.Time `gorm:"column:created_at;type:timestamptz;not null"`
	UpdatedAt   time.Time `gorm:"column:updated_at;type:timestamptz;not null"`
}

func (MedicalHistoryModel) TableName() string {
	return "medical_history"
}

func (m *MedicalHistoryModel) ToEntity() (*domain.MedicalHistoryEntry, error) {
	id, err := domain.MedicalHistoryIDFromString(m.ID)
	if err != nil {
		return nil, err
	}

	ownerID, err := domain.UserIDFromString(m.UserID)
	if err != nil {
		return nil, err
	}

	entryType, err := domain.ParseMedicalHistoryType(m.Type)
	if err != nil {
		return nil, fmt.Errorf("medical history %s type: %w", m.ID, err)
	}

	occurredOn, err := parseStoredDate(m.OccurredOn)
	if err != nil {
		return nil, fmt.Errorf("medical history %s occurred_on: %w", m.ID, err)
	}

	return domain.ReconstituteMedicalHistoryEntry(
		id,
		ownerID,
		domain.MedicalHistoryDetails{
			Type:        entryType,
			Description: m.Description,
			Date:        occurredOn,
			Notes:       m.Notes,
		},
		m.CreatedAt,
		m.UpdatedAt,
	), nil
}

func FromMedicalHistoryEntity(e *domain.MedicalHistoryEntry) *MedicalHistoryModel {
	return &MedicalHistoryModel{
		ID:          e.ID().String(),
		UserID:      e.OwnerID().String(),
		Type:        string(e.Type()),
		Description: e.Description(),
		OccurredOn:  formatStoredDate(e.Date()),
		Notes:       e.Notes(),
		CreatedAt:   e.CreatedAt(),
		UpdatedAt:   e.UpdatedAt(),
	}
}
