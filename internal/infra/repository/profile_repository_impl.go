package repository

import (
	"context"
	"errors"
	"log/slog"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/KasumiMercury/primind-medication-remind/internal/domain"
)

type profileRepositoryImpl struct {
	db *gorm.DB
}

func NewProfileRepository(db *gorm.DB) domain.ProfileRepository {
	return &profileRepositoryImpl{db: db}
}

// Save inserts the profile or overwrites the stored one for the same user.
func (r *profileRepositoryImpl) Save(ctx context.Context, profile *domain.Profile) error {
	m := FromProfileEntity(profile)

	result := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"display_name", "push_token", "updated_at"}),
	}).Create(m)
	if result.Error != nil {
		slog.Error("failed to save profile",
			"user_id", m.UserID,
			"error", result.Error,
		)

		return result.Error
	}

	return nil
}

func (r *profileRepositoryImpl) FindByUserID(ctx context.Context, userID domain.UserID) (*domain.Profile, error) {
	var m ProfileModel

	result := r.db.WithContext(ctx).Where("user_id = ?", userID.String()).First(&m)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domain.ErrProfileNotFound
		}

		return nil, result.Error
	}

	return m.ToEntity()
}

func (r *profileRepositoryImpl) FindWithPushToken(ctx context.Context) ([]*domain.Profile, error) {
	var models []ProfileModel

	if err := r.db.WithContext(ctx).Where("push_token <> ''").Order("user_id ASC").Find(&models).Error; err != nil {
		slog.ErrorContext(ctx, "failed to find profiles with push token",
			"error", err,
		)

		return nil, err
	}

	profiles := make([]*domain.Profile, 0, len(models))
	for _, m := range models {
		profile, err := m.ToEntity()
		if err != nil {
			return nil, err
		}

		profiles = append(profiles, profile)
	}

	slog.Debug("profiles with push token found",
		"count", len(profiles),
	)

	return profiles, nil
}
