package domain

import (
	"strings"
	"time"
)

const maxDisplayNameLength = 50

type Profile struct {
	userID      UserID
	displayName string
	pushToken   PushToken
	updatedAt   time.Time
}

func NewProfile(userID UserID, displayName string) *Profile {
	return &Profile{
		userID:      userID,
		displayName: displayName,
		updatedAt:   time.Now(),
	}
}

func ReconstituteProfile(userID UserID, displayName string, pushToken PushToken, updatedAt time.Time) *Profile {
	return &Profile{
		userID:      userID,
		displayName: displayName,
		pushToken:   pushToken,
		updatedAt:   updatedAt,
	}
}

func (p *Profile) RegisterPushToken(token PushToken) {
	p.pushToken = token
	p.updatedAt = time.Now()
}

func (p *Profile) ClearPushToken() {
	p.pushToken = PushToken{}
	p.updatedAt = time.Now()
}

func (p *Profile) HasPushToken() bool {
	return !p.pushToken.IsZero()
}

// Rename trims the name and requires 1 to 50 characters.
func (p *Profile) Rename(displayName string) error {
	displayName = strings.TrimSpace(displayName)

	n := len([]rune(displayName))
	if n == 0 || n > maxDisplayNameLength {
		return ErrInvalidDisplayName
	}

	p.displayName = displayName
	p.updatedAt = time.Now()

	return nil
}

func (p *Profile) UserID() UserID {
	return p.userID
}

func (p *Profile) DisplayName() string {
	return p.displayName
}

func (p *Profile) PushToken() PushToken {
	return p.pushToken
}

func (p *Profile) UpdatedAt() time.Time {
	return p.updatedAt
}
