package domain

import (
	"errors"
	"strings"
)

// PushToken is the opaque delivery address of a user's device.
type PushToken struct {
	value string
}

var ErrEmptyPushToken = errors.New("push token cannot be empty")

func NewPushToken(token string) (PushToken, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return PushToken{}, ErrEmptyPushToken
	}

	return PushToken{value: token}, nil
}

func (p PushToken) String() string {
	return p.value
}

func (p PushToken) IsZero() bool {
	return p.value == ""
}

func (p PushToken) Equals(other PushToken) bool {
	return p.value == other.value
}
