package domain

import "context"

//go:generate mockgen -source=profile_repository.go -destination=profile_repository_mock.go -package=domain

type ProfileRepository interface {
	Save(ctx context.Context, profile *Profile) error
	FindByUserID(ctx context.Context, userID UserID) (*Profile, error)
	FindWithPushToken(ctx context.Context) ([]*Profile, error)
}
