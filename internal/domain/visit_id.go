package domain

import (
	"github.com/google/uuid"
)

type VisitID struct {
	value uuid.UUID
}

func NewVisitID() VisitID {
	return VisitID{value: uuid.Must(uuid.NewV7())}
}

func VisitIDFromString(s string) (VisitID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return VisitID{}, ErrInvalidVisitID
	}

	return VisitID{value: id}, nil
}

func (i VisitID) String() string {
	return i.value.String()
}

func (i VisitID) IsZero() bool {
	return i.value == uuid.Nil
}

func (i VisitID) Equals(other VisitID) bool {
	return i.value == other.value
}
