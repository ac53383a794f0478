package app

import (
	"context"
	"time"
)

// RegisterPushTokenInput creates the profile on first registration;
// DisplayName is only used then.
type RegisterPushTokenInput struct {
	UserID      string
	DisplayName string
	Token       string
}

type ClearPushTokenInput struct {
	UserID string
}

type UpdateProfileInput struct {
	UserID      string
	DisplayName string
}

type GetProfileInput struct {
	UserID string
}

type ProfileOutput struct {
	UserID       string
	DisplayName  string
	HasPushToken bool
	UpdatedAt    time.Time
}

type ProfileUseCase interface {
	RegisterPushToken(ctx context.Context, input RegisterPushTokenInput) (ProfileOutput, error)
	ClearPushToken(ctx context.Context, input ClearPushTokenInput) error
	GetProfile(ctx context.Context, input GetProfileInput) (ProfileOutput, error)
	UpdateProfile(ctx context.Context, input UpdateProfileInput) (ProfileOutput, error)
}
