package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/KasumiMercury/primind-medication-remind/internal/domain"
)

type medicalHistoryUseCaseImpl struct {
	repo domain.MedicalHistoryRepository
}

func NewMedicalHistoryUseCase(repo domain.MedicalHistoryRepository) MedicalHistoryUseCase {
	return &medicalHistoryUseCaseImpl{
		repo: repo,
	}
}

func (uc *medicalHistoryUseCaseImpl) CreateEntry(ctx context.Context, input CreateMedicalHistoryInput) (MedicalHistoryOutput, error) {
	slog.Debug("creating medical history entry",
		"user_id", input.UserID,
	)

	userID, err := domain.UserIDFromString(input.UserID)
	if err != nil {
		return MedicalHistoryOutput{}, NewValidationError("user_id", err.Error())
	}

	details, err := toMedicalHistoryDetails(input.Entry)
	if err != nil {
		return MedicalHistoryOutput{}, err
	}

	entry, err := domain.NewMedicalHistoryEntry(userID, details)
	if err != nil {
		return MedicalHistoryOutput{}, medicalHistoryValidationError(err)
	}

	if err := uc.repo.Save(ctx, entry); err != nil {
		slog.Error("failed to save medical history entry",
			"error", err,
			"user_id", input.UserID,
		)

		return MedicalHistoryOutput{}, fmt.Errorf("%w: %v", ErrInternalError, err)
	}

	slog.Info("medical history entry created",
		"entry_id", entry.ID().String(),
		"user_id", input.UserID,
		"type", string(entry.Type()),
	)

	return FromMedicalHistoryEntry(entry), nil
}

func (uc *medicalHistoryUseCaseImpl) GetEntry(ctx context.Context, input GetMedicalHistoryInput) (MedicalHistoryOutput, error) {
	entry, err := uc.findOwned(ctx, input.UserID, input.ID)
	if err != nil {
		return MedicalHistoryOutput{}, err
	}

	return FromMedicalHistoryEntry(entry), nil
}

func (uc *medicalHistoryUseCaseImpl) ListEntries(ctx context.Context, input ListMedicalHistoryInput) (MedicalHistoryListOutput, error) {
	userID, err := domain.UserIDFromString(input.UserID)
	if err != nil {
		return MedicalHistoryListOutput{}, NewValidationError("user_id", err.Error())
	}

	entries, err := uc.repo.FindByOwnerID(ctx, userID)
	if err != nil {
		slog.Error("failed to list medical history",
			"error", err,
			"user_id", input.UserID,
		)

		return MedicalHistoryListOutput{}, fmt.Errorf("%w: %v", ErrInternalError, err)
	}

	return FromMedicalHistoryEntries(entries), nil
}

func (uc *medicalHistoryUseCaseImpl) UpdateEntry(ctx context.Context, input UpdateMedicalHistoryInput) (MedicalHistoryOutput, error) {
	entry, err := uc.findOwned(ctx, input.UserID, input.ID)
	if err != nil {
		return MedicalHistoryOutput{}, err
	}

	details, err := toMedicalHistoryDetails(input.Entry)
	if err != nil {
		return MedicalHistoryOutput{}, err
	}

	if err := entry.Update(details); err != nil {
		return MedicalHistoryOutput{}, medicalHistoryValidationError(err)
	}

	if err := uc.repo.Update(ctx, entry); err != nil {
		if errors.Is(err, domain.ErrMedicalHistoryNotFound) {
			return MedicalHistoryOutput{}, fmt.Errorf("%w: %v", ErrNotFound, err)
		}

		slog.Error("failed to update medical history entry",
			"error", err,
			"entry_id", input.ID,
		)

		return MedicalHistoryOutput{}, fmt.Errorf("%w: %v", ErrInternalError, err)
	}

	slog.Info("medical history entry updated",
		"entry_id", input.ID,
	)

	return FromMedicalHistoryEntry(entry), nil
}

func (uc *medicalHistoryUseCaseImpl) DeleteEntry(ctx context.Context, input DeleteMedicalHistoryInput) error {
	entry, err := uc.findOwned(ctx, input.UserID, input.ID)
	if err != nil {
		if isAbsent(err) {
			slog.Info("medical history entry already deleted (idempotency)",
				"entry_id", input.ID,
			)

			return nil
		}

		return err
	}

	if err := uc.repo.Delete(ctx, entry.ID()); err != nil {
		slog.Error("failed to delete medical history entry",
			"error", err,
			"entry_id", input.ID,
		)

		return fmt.Errorf("%w: %v", ErrInternalError, err)
	}

	slog.Info("medical history entry deleted",
		"entry_id", input.ID,
	)

	return nil
}

func (uc *medicalHistoryUseCaseImpl) findOwned(ctx context.Context, rawUserID, rawID string) (*domain.MedicalHistoryEntry, error) {
	userID, err := domain.UserIDFromString(rawUserID)
	if err != nil {
		return nil, NewValidationError("user_id", err.Error())
	}

	id, err := domain.MedicalHistoryIDFromString(rawID)
	if err != nil {
		return nil, NewValidationError("id", err.Error())
	}

	entry, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrMedicalHistoryNotFound) {
			return nil, fmt.Errorf("%w: %v", ErrNotFound, err)
		}

		slog.Error("failed to find medical history entry",
			"error", err,
			"entry_id", rawID,
		)

		return nil, fmt.Errorf("%w: %v", ErrInternalError, err)
	}

	if !entry.IsOwnedBy(userID) {
		slog.Warn("medical history access by non-owner",
			"entry_id", rawID,
			"user_id", rawUserID,
		)

		return nil, fmt.Errorf("%w: %w", ErrNotFound, errNotOwned)
	}

	return entry, nil
}

func toMedicalHistoryDetails(in MedicalHistoryInput) (domain.MedicalHistoryDetails, error) {
	entryType, err := domain.ParseMedicalHistoryType(in.Type)
	if err != nil {
		return domain.MedicalHistoryDetails{}, NewValidationError("type", err.Error())
	}

	date, err := domain.ParseOptionalCalendarDate(in.Date)
	if err != nil {
		return domain.MedicalHistoryDetails{}, NewValidationError("date", err.Error())
	}

	return domain.MedicalHistoryDetails{
		Type:        entryType,
		Description: in.Description,
		Date:        date,
		Notes:       in.Notes,
	}, nil
}

func medicalHistoryValidationError(err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidMedicalHistoryType):
		return NewValidationError("type", err.Error())
	case errors.Is(err, domain.ErrHistoryDescriptionTooShort):
		return NewValidationError("description", err.Error())
	default:
		return NewValidationError("entry", err.Error())
	}
}
