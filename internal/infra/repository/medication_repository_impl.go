package repository

import (
	"context"
	"errors"
	"log/slog"

	"gorm.io/gorm"

	"github.com/KasumiMercury/primind-medication-remind/internal/domain"
)

type medicationRepositoryImpl struct {
	db *gorm.DB
}

func NewMedicationRepository(db *gorm.DB) domain.MedicationRepository {
	return &medicationRepositoryImpl{
		db: db,
	}
}

func (r *medicationRepositoryImpl) Save(ctx context.Context, medication *domain.Medication) error {
	slog.Debug("saving medication to database",
		"medication_id", medication.ID().String(),
	)

	result := r.db.WithContext(ctx).Create(FromMedicationEntity(medication))
	if result.Error != nil {
		slog.Error("failed to save medication to database",
			"medication_id", medication.ID().String(),
			"error", result.Error,
		)

		return result.Error
	}

	return nil
}

func (r *medicationRepositoryImpl) FindByID(ctx context.Context, id domain.MedicationID) (*domain.Medication, error) {
	var m MedicationModel

	result := r.db.WithContext(ctx).Where("id = ?", id.String()).First(&m)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			slog.Debug("medication not found",
				"medication_id", id.String(),
			)

			return nil, domain.ErrMedicationNotFound
		}

		slog.Error("failed to find medication by ID",
			"medication_id", id.String(),
			"error", result.Error,
		)

		return nil, result.Error
	}

	return m.ToEntity()
}

func (r *medicationRepositoryImpl) FindByOwnerID(ctx context.Context, ownerID domain.UserID) ([]*domain.Medication, error) {
	return r.find(ctx, r.db.WithContext(ctx).Where("user_id = ?", ownerID.String()))
}

func (r *medicationRepositoryImpl) FindReminderEnabledByOwnerID(ctx context.Context, ownerID domain.UserID) ([]*domain.Medication, error) {
	return r.find(ctx, r.db.WithContext(ctx).
		Where("user_id = ? AND reminders_enabled = ?", ownerID.String(), true),
	)
}

func (r *medicationRepositoryImpl) find(ctx context.Context, query *gorm.DB) ([]*domain.Medication, error) {
	var models []MedicationModel

	if err := query.Order("created_at ASC").Order("id ASC").Find(&models).Error; err != nil {
		slog.ErrorContext(ctx, "failed to find medications",
			"error", err,
		)

		return nil, err
	}

	medications := make([]*domain.Medication, 0, len(models))
	for _, m := range models {
		medication, err := m.ToEntity()
		if err != nil {
			slog.ErrorContext(ctx, "failed to convert model to entity",
				"medication_id", m.ID,
				"error", err,
			)

			return nil, err
		}

		medications = append(medications, medication)
	}

	return medications, nil
}

func (r *medicationRepositoryImpl) Update(ctx context.Context, medication *domain.Medication) error {
	m := FromMedicationEntity(medication)

	result := r.db.WithContext(ctx).Model(&MedicationModel{}).Where("id = ?", m.ID).Updates(map[string]any{
		"name":              m.Name,
		"dosage":            m.Dosage,
		"frequency":         m.Frequency,
		"reason":            m.Reason,
		"start_date":        m.StartDate,
		"end_date":          m.EndDate,
		"reminders_enabled": m.RemindersEnabled,
		"updated_at":        m.UpdatedAt,
	})
	if result.Error != nil {
		slog.Error("failed to update medication",
			"medication_id", m.ID,
			"error", result.Error,
		)

		return result.Error
	}

	if result.RowsAffected == 0 {
		return domain.ErrMedicationNotFound
	}

	return nil
}

func (r *medicationRepositoryImpl) Delete(ctx context.Context, id domain.MedicationID) error {
	result := r.db.WithContext(ctx).Where("id = ?", id.String()).Delete(&MedicationModel{})
	if result.Error != nil {
		slog.Error("failed to delete medication",
			"medication_id", id.String(),
			"error", result.Error,
		)

		return result.Error
	}

	if result.RowsAffected == 0 {
		slog.Debug("medication already absent",
			"medication_id", id.String(),
		)
	}

	return nil
}
