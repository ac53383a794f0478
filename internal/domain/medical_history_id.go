package domain

import (
	"github.com/google/uuid"
)

type MedicalHistoryID struct {
	value uuid.UUID
}

func NewMedicalHistoryID() MedicalHistoryID {
	return MedicalHistoryID{value: uuid.Must(uuid.NewV7())}
}

func MedicalHistoryIDFromString(s string) (MedicalHistoryID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return MedicalHistoryID{}, ErrInvalidMedicalHistoryID
	}

	return MedicalHistoryID{value: id}, nil
}

func (i MedicalHistoryID) String() string {
	return i.value.String()
}

func (i MedicalHistoryID) IsZero() bool {
	return i.value == uuid.Nil
}

func (i MedicalHistoryID) Equals(other MedicalHistoryID) bool {
	return i.value == other.value
}
