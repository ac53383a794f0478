package domain

import (
	"github.com/google/uuid"
)

type MedicationID struct {
	value uuid.UUID
}

func NewMedicationID() MedicationID {
	return MedicationID{value: uuid.Must(uuid.NewV7())}
}

func MedicationIDFromString(s string) (MedicationID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return MedicationID{}, ErrInvalidMedicationID
	}

	return MedicationID{value: id}, nil
}

func MedicationIDFromUUID(id uuid.UUID) MedicationID {
	return MedicationID{value: id}
}

func (m MedicationID) String() string {
	return m.value.String()
}

func (m MedicationID) UUID() uuid.UUID {
	return m.value
}

func (m MedicationID) IsZero() bool {
	return m.value == uuid.Nil
}

func (m MedicationID) Equals(other MedicationID) bool {
	return m.value == other.value
}
