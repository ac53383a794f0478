package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/KasumiMercury/primind-medication-remind/internal/domain"
)

type profileUseCaseImpl struct {
	repo domain.ProfileRepository
}

func NewProfileUseCase(repo domain.ProfileRepository) ProfileUseCase {
	return &profileUseCaseImpl{repo: repo}
}

func (uc *profileUseCaseImpl) RegisterPushToken(ctx context.Context, input RegisterPushTokenInput) (ProfileOutput, error) {
	userID, err := domain.UserIDFromString(input.UserID)
	if err != nil {
		return ProfileOutput{}, NewValidationError("user_id", err.Error())
	}

	token, err := domain.NewPushToken(input.Token)
	if err != nil {
		return ProfileOutput{}, NewValidationError("token", err.Error())
	}

	profile, err := uc.repo.FindByUserID(ctx, userID)
	if err != nil {
		if !errors.Is(err, domain.ErrProfileNotFound) {
			slog.Error("failed to find profile",
				"error", err,
				"user_id", input.UserID,
			)

			return ProfileOutput{}, fmt.Errorf("%w: %v", ErrInternalError, err)
		}

		profile = domain.NewProfile(userID, input.DisplayName)
	}

	profile.RegisterPushToken(token)

	if err := uc.repo.Save(ctx, profile); err != nil {
		slog.Error("failed to save profile",
			"error", err,
			"user_id", input.UserID,
		)

		return ProfileOutput{}, fmt.Errorf("%w: %v", ErrInternalError, err)
	}

	slog.Info("push token registered",
		"user_id", input.UserID,
	)

	return fromProfile(profile), nil
}

func (uc *profileUseCaseImpl) ClearPushToken(ctx context.Context, input ClearPushTokenInput) error {
	userID, err := domain.UserIDFromString(input.UserID)
	if err != nil {
		return NewValidationError("user_id", err.Error())
	}

	profile, err := uc.repo.FindByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrProfileNotFound) {
			return nil
		}

		return fmt.Errorf("%w: %v", ErrInternalError, err)
	}

	if !profile.HasPushToken() {
		return nil
	}

	profile.ClearPushToken()

	if err := uc.repo.Save(ctx, profile); err != nil {
		slog.Error("failed to clear push token",
			"error", err,
			"user_id", input.UserID,
		)

		return fmt.Errorf("%w: %v", ErrInternalError, err)
	}

	slog.Info("push token cleared",
		"user_id", input.UserID,
	)

	return nil
}

func (uc *profileUseCaseImpl) GetProfile(ctx context.Context, input GetProfileInput) (ProfileOutput, error) {
	userID, err := domain.UserIDFromString(input.UserID)
	if err != nil {
		return ProfileOutput{}, NewValidationError("user_id", err.Error())
	}

	profile, err := uc.repo.FindByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrProfileNotFound) {
			return ProfileOutput{}, fmt.Errorf("%w: %v", ErrNotFound, err)
		}

		return ProfileOutput{}, fmt.Errorf("%w: %v", ErrInternalError, err)
	}

	return fromProfile(profile), nil
}

// UpdateProfile renames the caller's profile, creating it when it does not exist yet.
func (uc *profileUseCaseImpl) UpdateProfile(ctx context.Context, input UpdateProfileInput) (ProfileOutput, error) {
	userID, err := domain.UserIDFromString(input.UserID)
	if err != nil {
		return ProfileOutput{}, NewValidationError("user_id", err.Error())
	}

	profile, err := uc.repo.FindByUserID(ctx, userID)
	if err != nil {
		if !errors.Is(err, domain.ErrProfileNotFound) {
			slog.Error("failed to find profile",
				"error", err,
				"user_id", input.UserID,
			)

			return ProfileOutput{}, fmt.Errorf("%w: %v", ErrInternalError, err)
		}

		profile = domain.NewProfile(userID, "")
	}

	if err := profile.Rename(input.DisplayName); err != nil {
		return ProfileOutput{}, NewValidationError("display_name", err.Error())
	}

	if err := uc.repo.Save(ctx, profile); err != nil {
		slog.Error("failed to save profile",
			"error", err,
			"user_id", input.UserID,
		)

		return ProfileOutput{}, fmt.Errorf("%w: %v", ErrInternalError, err)
	}

	slog.Info("profile updated",
		"user_id", input.UserID,
	)

	return fromProfile(profile), nil
}

func fromProfile(p *domain.Profile) ProfileOutput {
	return ProfileOutput{
		UserID:       p.UserID().String(),
		DisplayName:  p.DisplayName(),
		HasPushToken: p.HasPushToken(),
		UpdatedAt:    p.UpdatedAt(),
	}
}
