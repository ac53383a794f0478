package repository

import (
	"time"

	"github.com/KasumiMercury/primind-medication-remind/internal/domain"
)

type ProfileModel struct {
	UserID      string    `gorm:"column:user_id;type:varchar(128);primaryKey"`
	DisplayName string    `gorm:"column:display_name;type:varchar(255);not null;default:''"`
	PushToken   string    `gorm:"column:push_token;type:text;not null;default:''"`
	UpdatedAt   time.Time `gorm:"column:updated_at;type:timestamptz;not null"`
}

func (ProfileModel) TableName() string {
	return "profiles"
}

func (m *ProfileModel) ToEntity() (*domain.Profile, error) {
	userID, err := domain.UserIDFromString(m.UserID)
	if err != nil {
		return nil, err
	}

	var token domain.PushToken
	if m.PushToken != "" {
		token, err = domain.NewPushToken(m.PushToken)
		if err != nil {
			return nil, err
		}
	}

	return domain.ReconstituteProfile(userID, m.DisplayName, token, m.UpdatedAt), nil
}

func FromProfileEntity(p *domain.Profile) *ProfileModel {
	return &ProfileModel{
		UserID:      p.UserID().String(),
		DisplayName: p.DisplayName(),
		PushToken:   p.PushToken().String(),
		UpdatedAt:   p.UpdatedAt(),
	}
}
