package domain

import (
	"strings"
	"time"
)

type MedicalHistoryType string

const (
	MedicalHistoryIllness   MedicalHistoryType = "Illness"
	MedicalHistoryAllergy   MedicalHistoryType = "Allergy"
	MedicalHistoryProcedure MedicalHistoryType = "Procedure"
	MedicalHistoryOther     MedicalHistoryType = "Other"
)

func ParseMedicalHistoryType(s string) (MedicalHistoryType, error) {
	t := MedicalHistoryType(strings.TrimSpace(s))
	if !t.IsValid() {
		return "", ErrInvalidMedicalHistoryType
	}

	return t, nil
}

func (t MedicalHistoryType) IsValid() bool {
	switch t {
	case MedicalHistoryIllness, MedicalHistoryAllergy, MedicalHistoryProcedure, MedicalHistoryOther:
		return true
	default:
		return false
	}
}

// MedicalHistoryDetails carries the user-editable fields of a history entry.
// Date is optional; a condition may have no known onset.
type MedicalHistoryDetails struct {
	Type        MedicalHistoryType
	Description string
	Date        *CalendarDate
	Notes       string
}

type MedicalHistoryEntry struct {
	id          MedicalHistoryID
	ownerID     UserID
	entryType   MedicalHistoryType
	description string
	date        *CalendarDate
	notes       string
	createdAt   time.Time
	updatedAt   time.Time
}

func NewMedicalHistoryEntry(ownerID UserID, details MedicalHistoryDetails) (*MedicalHistoryEntry, error) {
	details, err := validateHistoryDetails(details)
	if err != nil {
		return nil, err
	}

	now := time.Now()

	e := &MedicalHistoryEntry{
		id:        NewMedicalHistoryID(),
		ownerID:   ownerID,
		createdAt: now,
		updatedAt: now,
	}
	e.apply(details)

	return e, nil
}

func ReconstituteMedicalHistoryEntry(
	id MedicalHistoryID,
	ownerID UserID,
	details MedicalHistoryDetails,
	createdAt time.Time,
	updatedAt time.Time,
) *MedicalHistoryEntry {
	e := &MedicalHistoryEntry{
		id:        id,
		ownerID:   ownerID,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
	e.apply(details)

	return e
}

func (e *MedicalHistoryEntry) Update(details MedicalHistoryDetails) error {
	details, err := validateHistoryDetails(details)
	if err != nil {
		return err
	}

	e.apply(details)
	e.updatedAt = time.Now()

	return nil
}

func (e *MedicalHistoryEntry) apply(d MedicalHistoryDetails) {
	e.entryType = d.Type
	e.description = d.Description
	e.date = copyDate(d.Date)
	e.notes = d.Notes
}

func validateHistoryDetails(d MedicalHistoryDetails) (MedicalHistoryDetails, error) {
	d.Description = strings.TrimSpace(d.Description)
	d.Notes = strings.TrimSpace(d.Notes)

	if !d.Type.IsValid() {
		return MedicalHistoryDetails{}, ErrInvalidMedicalHistoryType
	}

	if len([]rune(d.Description)) < 3 {
		return MedicalHistoryDetails{}, ErrHistoryDescriptionTooShort
	}

	return d, nil
}

func (e *MedicalHistoryEntry) IsOwnedBy(userID UserID) bool {
	return e.ownerID.Equals(userID)
}

func (e *MedicalHistoryEntry) ID() MedicalHistoryID {
	return e.id
}

func (e *MedicalHistoryEntry) OwnerID() UserID {
	return e.ownerID
}

func (e *MedicalHistoryEntry) Type() MedicalHistoryType {
	return e.entryType
}

func (e *MedicalHistoryEntry) Description() string {
	return e.description
}

func (e *MedicalHistoryEntry) Date() *CalendarDate {
	return copyDate(e.date)
}

func (e *MedicalHistoryEntry) Notes() string {
	return e.notes
}

func (e *MedicalHistoryEntry) CreatedAt() time.Time {
	return e.createdAt
}

func (e *MedicalHistoryEntry) UpdatedAt() time.Time {
	return e.updatedAt
}
