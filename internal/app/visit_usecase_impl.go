package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/KasumiMercury/primind-medication-remind/internal/domain"
)

type visitUseCaseImpl struct {
	repo domain.VisitRepository
}

func NewVisitUseCase(repo domain.VisitRepository) VisitUseCase {
	return &visitUseCaseImpl{
		repo: repo,
	}
}

func (uc *visitUseCaseImpl) CreateVisit(ctx context.Context, input CreateVisitInput) (VisitOutput, error) {
	slog.Debug("creating visit",
		"user_id", input.UserID,
	)

	userID, err := domain.UserIDFromString(input.UserID)
	if err != nil {
		return VisitOutput{}, NewValidationError("user_id", err.Error())
	}

	details, err := toVisitDetails(input.Visit)
	if err != nil {
		return VisitOutput{}, err
	}

	visit, err := domain.NewVisit(userID, details)
	if err != nil {
		return VisitOutput{}, visitValidationError(err)
	}

	if err := uc.repo.Save(ctx, visit); err != nil {
		slog.Error("failed to save visit",
			"error", err,
			"user_id", input.UserID,
		)

		return VisitOutput{}, fmt.Errorf("%w: %v", ErrInternalError, err)
	}

	slog.Info("visit created",
		"visit_id", visit.ID().String(),
		"user_id", input.UserID,
		"visit_date", visit.Date().String(),
	)

	return FromVisit(visit), nil
}

func (uc *visitUseCaseImpl) GetVisit(ctx context.Context, input GetVisitInput) (VisitOutput, error) {
	visit, err := uc.findOwned(ctx, input.UserID, input.ID)
	if err != nil {
		return VisitOutput{}, err
	}

	return FromVisit(visit), nil
}

func (uc *visitUseCaseImpl) ListVisits(ctx context.Context, input ListVisitsInput) (VisitsOutput, error) {
	userID, err := domain.UserIDFromString(input.UserID)
	if err != nil {
		return VisitsOutput{}, NewValidationError("user_id", err.Error())
	}

	visits, err := uc.repo.FindByOwnerID(ctx, userID)
	if err != nil {
		slog.Error("failed to list visits",
			"error", err,
			"user_id", input.UserID,
		)

		return VisitsOutput{}, fmt.Errorf("%w: %v", ErrInternalError, err)
	}

	return FromVisits(visits), nil
}

func (uc *visitUseCaseImpl) UpdateVisit(ctx context.Context, input UpdateVisitInput) (VisitOutput, error) {
	visit, err := uc.findOwned(ctx, input.UserID, input.ID)
	if err != nil {
		return VisitOutput{}, err
	}

	details, err := toVisitDetails(input.Visit)
	if err != nil {
		return VisitOutput{}, err
	}

	if err := visit.Update(details); err != nil {
		return VisitOutput{}, visitValidationError(err)
	}

	if err := uc.repo.Update(ctx, visit); err != nil {
		if errors.Is(err, domain.ErrVisitNotFound) {
			return VisitOutput{}, fmt.Errorf("%w: %v", ErrNotFound, err)
		}

		slog.Error("failed to update visit",
			"error", err,
			"visit_id", input.ID,
		)

		return VisitOutput{}, fmt.Errorf("%w: %v", ErrInternalError, err)
	}

	slog.Info("visit updated",
		"visit_id", input.ID,
	)

	return FromVisit(visit), nil
}

func (uc *visitUseCaseImpl) DeleteVisit(ctx context.Context, input DeleteVisitInput) error {
	visit, err := uc.findOwned(ctx, input.UserID, input.ID)
	if err != nil {
		if isAbsent(err) {
			slog.Info("visit already deleted (idempotency)",
				"visit_id", input.ID,
			)

			return nil
		}

		return err
	}

	if err := uc.repo.Delete(ctx, visit.ID()); err != nil {
		slog.Error("failed to delete visit",
			"error", err,
			"visit_id", input.ID,
		)

		return fmt.Errorf("%w: %v", ErrInternalError, err)
	}

	slog.Info("visit deleted",
		"visit_id", input.ID,
	)

	return nil
}

func (uc *visitUseCaseImpl) findOwned(ctx context.Context, rawUserID, rawID string) (*domain.Visit, error) {
	userID, err := domain.UserIDFromString(rawUserID)
	if err != nil {
		return nil, NewValidationError("user_id", err.Error())
	}

	id, err := domain.VisitIDFromString(rawID)
	if err != nil {
		return nil, NewValidationError("id", err.Error())
	}

	visit, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrVisitNotFound) {
			return nil, fmt.Errorf("%w: %v", ErrNotFound, err)
		}

		slog.Error("failed to find visit",
			"error", err,
			"visit_id", rawID,
		)

		return nil, fmt.Errorf("%w: %v", ErrInternalError, err)
	}

	if !visit.IsOwnedBy(userID) {
		slog.Warn("visit access by non-owner",
			"visit_id", rawID,
			"user_id", rawUserID,
		)

		return nil, fmt.Errorf("%w: %w", ErrNotFound, errNotOwned)
	}

	return visit, nil
}

func toVisitDetails(in VisitInput) (domain.VisitDetails, error) {
	if in.Date == "" {
		return domain.VisitDetails{}, NewValidationError("date", domain.ErrVisitDateRequired.Error())
	}

	date, err := domain.ParseCalendarDate(in.Date)
	if err != nil {
		return domain.VisitDetails{}, NewValidationError("date", err.Error())
	}

	return domain.VisitDetails{
		Date:         date,
		HospitalName: in.HospitalName,
		DoctorName:   in.DoctorName,
		SicknessType: in.SicknessType,
		Details:      in.Details,
	}, nil
}

func visitValidationError(err error) error {
	switch {
	case errors.Is(err, domain.ErrVisitDateRequired):
		return NewValidationError("date", err.Error())
	case errors.Is(err, domain.ErrHospitalNameTooShort):
		return NewValidationError("hospital_name", err.Error())
	case errors.Is(err, domain.ErrDoctorNameTooShort):
		return NewValidationError("doctor_name", err.Error())
	case errors.Is(err, domain.ErrSicknessTypeTooShort):
		return NewValidationError("sickness_type", err.Error())
	default:
		return NewValidationError("visit", err.Error())
	}
}
