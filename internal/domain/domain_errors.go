package domain

import "errors"

var (
	ErrMedicationNotFound = errors.New("medication not found")
	ErrProfileNotFound    = errors.New("profile not found")

	ErrMedicalHistoryNotFound = errors.New("medical history entry not found")
	ErrVisitNotFound          = errors.New("visit not found")

	ErrInvalidMedicationID     = errors.New("invalid medication ID")
	ErrInvalidMedicalHistoryID = errors.New("invalid medical history ID")
	ErrInvalidVisitID          = errors.New("invalid visit ID")
	ErrInvalidCalendarDate     = errors.New("invalid calendar date: expected YYYY-MM-DD")
	ErrEndBeforeStart          = errors.New("end date cannot be before start date")

	ErrMedicationNameTooShort = errors.New("medication name must be at least 2 characters")
	ErrDosageRequired         = errors.New("dosage is required")
	ErrFrequencyTooShort      = errors.New("frequency must be at least 2 characters")

	ErrInvalidMedicalHistoryType  = errors.New("medical history type must be one of Illness, Allergy, Procedure, Other")
	ErrHistoryDescriptionTooShort = errors.New("description must be at least 3 characters")

	ErrVisitDateRequired    = errors.New("date of visit is required")
	ErrHospitalNameTooShort = errors.New("hospital name must be at least 2 characters")
	ErrDoctorNameTooShort   = errors.New("doctor name must be at least 2 characters")
	ErrSicknessTypeTooShort = errors.New("type of sickness or reason for visit must be at least 2 characters")

	ErrInvalidDisplayName = errors.New("display name must be between 1 and 50 characters")
)
