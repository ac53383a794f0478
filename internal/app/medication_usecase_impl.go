package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/KasumiMercury/primind-medication-remind/internal/domain"
)

type medicationUseCaseImpl struct {
	repo      domain.MedicationRepository
	clock     Clock
	dashboard *domain.WindowEvaluator
}

func NewMedicationUseCase(repo domain.MedicationRepository, clock Clock) MedicationUseCase {
	if clock == nil {
		clock = SystemClock{}
	}

	return &medicationUseCaseImpl{
		repo:      repo,
		clock:     clock,
		dashboard: domain.NewWindowEvaluator(domain.MissingStartInactive),
	}
}

func (uc *medicationUseCaseImpl) CreateMedication(ctx context.Context, input CreateMedicationInput) (MedicationOutput, error) {
	slog.Debug("creating medication",
		"user_id", input.UserID,
	)

	userID, err := domain.UserIDFromString(input.UserID)
	if err != nil {
		return MedicationOutput{}, NewValidationError("user_id", err.Error())
	}

	details, err := toMedicationDetails(input.Medication)
	if err != nil {
		return MedicationOutput{}, err
	}

	medication, err := domain.NewMedication(userID, details)
	if err != nil {
		return MedicationOutput{}, medicationValidationError(err)
	}

	if err := uc.repo.Save(ctx, medication); err != nil {
		slog.Error("failed to save medication",
			"error", err,
			"user_id", input.UserID,
		)

		return MedicationOutput{}, fmt.Errorf("%w: %v", ErrInternalError, err)
	}

	slog.Info("medication created",
		"medication_id", medication.ID().String(),
		"user_id", input.UserID,
		"reminders_enabled", medication.RemindersEnabled(),
	)

	return FromMedication(medication), nil
}

func (uc *medicationUseCaseImpl) GetMedication(ctx context.Context, input GetMedicationInput) (MedicationOutput, error) {
	medication, err := uc.findOwned(ctx, input.UserID, input.ID)
	if err != nil {
		return MedicationOutput{}, err
	}

	return FromMedication(medication), nil
}

func (uc *medicationUseCaseImpl) ListMedications(ctx context.Context, input ListMedicationsInput) (MedicationsOutput, error) {
	userID, err := domain.UserIDFromString(input.UserID)
	if err != nil {
		return MedicationsOutput{}, NewValidationError("user_id", err.Error())
	}

	medications, err := uc.repo.FindByOwnerID(ctx, userID)
	if err != nil {
		slog.Error("failed to list medications",
			"error", err,
			"user_id", input.UserID,
		)

		return MedicationsOutput{}, fmt.Errorf("%w: %v", ErrInternalError, err)
	}

	return FromMedications(medications), nil
}

func (uc *medicationUseCaseImpl) UpdateMedication(ctx context.Context, input UpdateMedicationInput) (MedicationOutput, error) {
	slog.Debug("updating medication",
		"medication_id", input.ID,
		"user_id", input.UserID,
	)

	medication, err := uc.findOwned(ctx, input.UserID, input.ID)
	if err != nil {
		return MedicationOutput{}, err
	}

	details, err := toMedicationDetails(input.Medication)
	if err != nil {
		return MedicationOutput{}, err
	}

	if err := medication.Update(details); err != nil {
		return MedicationOutput{}, medicationValidationError(err)
	}

	if err := uc.repo.Update(ctx, medication); err != nil {
		if errors.Is(err, domain.ErrMedicationNotFound) {
			return MedicationOutput{}, fmt.Errorf("%w: %v", ErrNotFound, err)
		}

		slog.Error("failed to update medication",
			"error", err,
			"medication_id", input.ID,
		)

		return MedicationOutput{}, fmt.Errorf("%w: %v", ErrInternalError, err)
	}

	slog.Info("medication updated",
		"medication_id", input.ID,
		"reminders_enabled", medication.RemindersEnabled(),
	)

	return FromMedication(medication), nil
}

func (uc *medicationUseCaseImpl) DeleteMedication(ctx context.Context, input DeleteMedicationInput) error {
	slog.Debug("deleting medication",
		"medication_id", input.ID,
		"user_id", input.UserID,
	)

	medication, err := uc.findOwned(ctx, input.UserID, input.ID)
	if err != nil {
		if isAbsent(err) {
			slog.Info("medication already deleted (idempotency)",
				"medication_id", input.ID,
			)

			return nil
		}

		return err
	}

	if err := uc.repo.Delete(ctx, medication.ID()); err != nil {
		slog.Error("failed to delete medication",
			"error", err,
			"medication_id", input.ID,
		)

		return fmt.Errorf("%w: %v", ErrInternalError, err)
	}

	slog.Info("medication deleted",
		"medication_id", input.ID,
	)

	return nil
}

func (uc *medicationUseCaseImpl) ListActiveReminders(ctx context.Context, input ListActiveRemindersInput) (ActiveRemindersOutput, error) {
	userID, err := domain.UserIDFromString(input.UserID)
	if err != nil {
		return ActiveRemindersOutput{}, NewValidationError("user_id", err.Error())
	}

	today := domain.DateOf(uc.clock.Now())
	if input.Date != "" {
		today, err = domain.ParseCalendarDate(input.Date)
		if err != nil {
			return ActiveRemindersOutput{}, NewValidationError("date", err.Error())
		}
	}

	medications, err := uc.repo.FindReminderEnabledByOwnerID(ctx, userID)
	if err != nil {
		slog.Error("failed to load reminder medications",
			"error", err,
			"user_id", input.UserID,
		)

		return ActiveRemindersOutput{}, fmt.Errorf("%w: %v", ErrInternalError, err)
	}

	active := make([]*domain.Medication, 0, len(medications))
	for _, m := range medications {
		if uc.dashboard.IsActiveOnDate(m, today) {
			active = append(active, m)
		}
	}

	list := FromMedications(active)

	return ActiveRemindersOutput{
		Date:        today.String(),
		Medications: list.Medications,
		Count:       list.Count,
	}, nil
}

// findOwned reports a medication owned by someone else as not found.
func (uc *medicationUseCaseImpl) findOwned(ctx context.Context, rawUserID, rawID string) (*domain.Medication, error) {
	userID, err := domain.UserIDFromString(rawUserID)
	if err != nil {
		return nil, NewValidationError("user_id", err.Error())
	}

	id, err := domain.MedicationIDFromString(rawID)
	if err != nil {
		return nil, NewValidationError("id", err.Error())
	}

	medication, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrMedicationNotFound) {
			return nil, fmt.Errorf("%w: %v", ErrNotFound, err)
		}

		slog.Error("failed to find medication",
			"error", err,
			"medication_id", rawID,
		)

		return nil, fmt.Errorf("%w: %v", ErrInternalError, err)
	}

	if !medication.IsOwnedBy(userID) {
		slog.Warn("medication access by non-owner",
			"medication_id", rawID,
			"user_id", rawUserID,
		)

		return nil, fmt.Errorf("%w: %w", ErrNotFound, errNotOwned)
	}

	return medication, nil
}

func toMedicationDetails(in MedicationInput) (domain.MedicationDetails, error) {
	start, err := domain.ParseOptionalCalendarDate(in.StartDate)
	if err != nil {
		return domain.MedicationDetails{}, NewValidationError("start_date", err.Error())
	}

	end, err := domain.ParseOptionalCalendarDate(in.EndDate)
	if err != nil {
		return domain.MedicationDetails{}, NewValidationError("end_date", err.Error())
	}

	return domain.MedicationDetails{
		Name:             in.Name,
		Dosage:           in.Dosage,
		Frequency:        in.Frequency,
		Reason:           in.Reason,
		StartDate:        start,
		EndDate:          end,
		RemindersEnabled: in.RemindersEnabled,
	}, nil
}

func medicationValidationError(err error) error {
	switch {
	case errors.Is(err, domain.ErrMedicationNameTooShort):
		return NewValidationError("name", err.Error())
	case errors.Is(err, domain.ErrDosageRequired):
		return NewValidationError("dosage", err.Error())
	case errors.Is(err, domain.ErrFrequencyTooShort):
		return NewValidationError("frequency", err.Error())
	case errors.Is(err, domain.ErrEndBeforeStart):
		return NewValidationError("end_date", err.Error())
	default:
		return NewValidationError("medication", err.Error())
	}
}
