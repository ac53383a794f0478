package repository

import (
	"context"
	"errors"
	"log/slog"

	"gorm.io/gorm"

	"github.com/KasumiMercury/primind-medication-remind/internal/domain"
)

type visitRepositoryImpl struct {
	db *gorm.DB
}

func NewVisitRepository(db *gorm.DB) domain.VisitRepository {
	return &visitRepositoryImpl{
		db: db,
	}
}

func (r *visitRepositoryImpl) Save(ctx context.Context, visit *domain.Visit) error {
	slog.Debug("saving visit to database",
		"visit_id", visit.ID().String(),
	)

	if err := r.db.WithContext(ctx).Create(FromVisitEntity(visit)).Error; err != nil {
		slog.Error("failed to save visit to database",
			"visit_id", visit.ID().String(),
			"error", err,
		)

		return err
	}

	return nil
}

func (r *visitRepositoryImpl) FindByID(ctx context.Context, id domain.VisitID) (*domain.Visit, error) {
	var m VisitModel

	result := r.db.WithContext(ctx).Where("id = ?", id.String()).First(&m)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domain.ErrVisitNotFound
		}

		slog.Error("failed to find visit by ID",
			"visit_id", id.String(),
			"error", result.Error,
		)

		return nil, result.Error
	}

	return m.ToEntity()
}

func (r *visitRepositoryImpl) FindByOwnerID(ctx context.Context, ownerID domain.UserID) ([]*domain.Visit, error) {
	var models []VisitModel

	err := r.db.WithContext(ctx).
		Where("user_id = ?", ownerID.String()).
		Order("visit_date DESC").
		Order("created_at DESC").
		Find(&models).Error
	if err != nil {
		slog.ErrorContext(ctx, "failed to find visits",
			"user_id", ownerID.String(),
			"error", err,
		)

		return nil, err
	}

	visits := make([]*domain.Visit, 0, len(models))
	for _, m := range models {
		visit, err := m.ToEntity()
		if err != nil {
			return nil, err
		}

		visits = append(visits, visit)
	}

	return visits, nil
}

func (r *visitRepositoryImpl) Update(ctx context.Context, visit *domain.Visit) error {
	m := FromVisitEntity(visit)

	result := r.db.WithContext(ctx).Model(&VisitModel{}).Where("id = ?", m.ID).Updates(map[string]any{
		"visit_date":    m.VisitDate,
		"hospital_name": m.HospitalName,
		"doctor_name":   m.DoctorName,
		"sickness_type": m.SicknessType,
		"details":       m.Details,
		"updated_at":    m.UpdatedAt,
	})
	if result.Error != nil {
		slog.Error("failed to update visit",
			"visit_id", m.ID,
			"error", result.Error,
		)

		return result.Error
	}

	if result.RowsAffected == 0 {
		return domain.ErrVisitNotFound
	}

	return nil
}

func (r *visitRepositoryImpl) Delete(ctx context.Context, id domain.VisitID) error {
	result := r.db.WithContext(ctx).Where("id = ?", id.String()).Delete(&VisitModel{})
	if result.Error != nil {
		slog.Error("failed to delete visit",
			"visit_id", id.String(),
			"error", result.Error,
		)

		return result.Error
	}

	return nil
}
