package domain_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KasumiMercury/primind-medication-remind/internal/domain"
)

func TestProfilePushTokenLifecycle(t *testing.T) {
	p := domain.NewProfile(createValidUserID(t), "Alex")
	assert.False(t, p.HasPushToken())

	token, err := domain.NewPushToken("fcm-abc")
	require.NoError(t, err)

	p.RegisterPushToken(token)
	assert.True(t, p.HasPushToken())
	assert.Equal(t, "fcm-abc", p.PushToken().String())

	p.ClearPushToken()
	assert.False(t, p.HasPushToken())
	assert.True(t, p.PushToken().IsZero())
}

func TestProfileRename(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		expected    string
		expectedErr error
	}{
		{
			name:     "trims surrounding space",
			input:    "  Sam Tanaka ",
			expected: "Sam Tanaka",
		},
		{
			name:     "fifty characters",
			input:    strings.Repeat("a", 50),
			expected: strings.Repeat("a", 50),
		},
		{
			name:        "blank",
			input:       "   ",
			expectedErr: domain.ErrInvalidDisplayName,
		},
		{
			name:        "too long",
			input:       strings.Repeat("a", 51),
			expectedErr: domain.ErrInvalidDisplayName,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := domain.NewProfile(createValidUserID(t), "Alex")

			err := p.Rename(tt.input)

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				assert.Equal(t, "Alex", p.DisplayName())

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.expected, p.DisplayName())
		})
	}
}
