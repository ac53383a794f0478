package repository

import (
	"context"
	"errors"
	"log/slog"

	"gorm.io/gorm"

	"github.com/KasumiMercury/primind-medication-remind/internal/domain"
)

type medicalHistoryRepositoryImpl struct {
	db *gorm.DB
}

func NewMedicalHistoryRepository(db *gorm.DB) domain.MedicalHistoryRepository {
	return &medicalHistoryRepositoryImpl{
		db: db,
	}
}

func (r *medicalHistoryRepositoryImpl) Save(ctx context.Context, entry *domain.MedicalHistoryEntry) error {
	slog.Debug("saving medical history entry to database",
		"entry_id", entry.ID().String(),
	)

	if err := r.db.WithContext(ctx).Create(FromMedicalHistoryEntity(entry)).Error; err != nil {
		slog.Error("failed to save medical history entry to database",
			"entry_id", entry.ID().String(),
			"error", err,
		)

		return err
	}

	return nil
}

func (r *medicalHistoryRepositoryImpl) FindByID(ctx context.Context, id domain.MedicalHistoryID) (*domain.MedicalHistoryEntry, error) {
	var m MedicalHistoryModel

	result := r.db.WithContext(ctx).Where("id = ?", id.String()).First(&m)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domain.ErrMedicalHistoryNotFound
		}

		slog.Error("failed to find medical history entry by ID",
			"entry_id", id.String(),
			"error", result.Error,
		)

		return nil, result.Error
	}

	return m.ToEntity()
}

// FindByOwnerID lists undated entries after dated ones.
func (r *medicalHistoryRepositoryImpl) FindByOwnerID(ctx context.Context, ownerID domain.UserID) ([]*domain.MedicalHistoryEntry, error) {
	var models []MedicalHistoryModel

	err := r.db.WithContext(ctx).
		Where("user_id = ?", ownerID.String()).
		Order("occurred_on DESC NULLS LAST").
		Order("created_at DESC").
		Find(&models).Error
	if err != nil {
		slog.ErrorContext(ctx, "failed to find medical history",
			"user_id", ownerID.String(),
			"error", err,
		)

		return nil, err
	}

	entries := make([]*domain.MedicalHistoryEntry, 0, len(models))
	for _, m := range models {
		entry, err := m.ToEntity()
		if err != nil {
			return nil, err
		}

		entries = append(entries, entry)
	}

	return entries, nil
}

func (r *medicalHistoryRepositoryImpl) Update(ctx context.Context, entry *domain.MedicalHistoryEntry) error {
	m := FromMedicalHistoryEntity(entry)

	result := r.db.WithContext(ctx).Model(&MedicalHistoryModel{}).Where("id = ?", m.ID).Updates(map[string]any{
		"type":        m.Type,
		"description": m.Description,
		"occurred_on": m.OccurredOn,
		"notes":       m.Notes,
		"updated_at":  m.UpdatedAt,
	})
	if result.Error != nil {
		slog.Error("failed to update medical history entry",
			"entry_id", m.ID,
			"error", result.Error,
		)

		return result.Error
	}

	if result.RowsAffected == 0 {
		return domain.ErrMedicalHistoryNotFound
	}

	return nil
}

func (r *medicalHistoryRepositoryImpl) Delete(ctx context.Context, id domain.MedicalHistoryID) error {
	result := r.db.WithContext(ctx).Where("id = ?", id.String()).Delete(&MedicalHistoryModel{})
	if result.Error != nil {
		slog.Error("failed to delete medical history entry",
			"entry_id", id.String(),
			"error", result.Error,
		)

		return result.Error
	}

	return nil
}
