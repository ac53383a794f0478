package domain

import (
	"errors"
	"strings"
)

// UserID is the opaque subject issued by the identity provider.
type UserID struct {
	value string
}

const maxUserIDLength = 128

var ErrInvalidUserID = errors.New("invalid user ID: must be a non-empty opaque identifier")

func UserIDFromString(s string) (UserID, error) {
	s = strings.TrimSpace(s)
	if s == "" || len(s) > maxUserIDLength {
		return UserID{}, ErrInvalidUserID
	}

	return UserID{value: s}, nil
}

func (u UserID) String() string {
	return u.value
}

func (u UserID) IsZero() bool {
	return u.value == ""
}

func (u UserID) Equals(other UserID) bool {
	return u.value == other.value
}
