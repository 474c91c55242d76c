package models

import (
	"errors"
	"testing"
	"time"

	ledgererrors "bank-ledger/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUser(t *testing.T) {
	tests := []struct {
		name    string
		params  UserParams
		wantErr bool
	}{
		{"valid admin", UserParams{Username: "admin", PasswordHash: "h", Role: RoleAdmin, Active: true}, false},
		{"trimmed username", UserParams{Username: "  teller_01 ", PasswordHash: "h", Role: RoleEmployee}, false},
		{"short username", UserParams{Username: "ab", PasswordHash: "h", Role: RoleCustomer}, true},
		{"punctuation in username", UserParams{Username: "ana.silva", PasswordHash: "h", Role: RoleCustomer}, true},
		{"unknown role", UserParams{Username: "ana", PasswordHash: "h", Role: "root"}, true},
		{"missing hash", UserParams{Username: "ana", Role: RoleCustomer}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			user, err := NewUser(tt.params)
			if tt.wantErr {
				assert.True(t, errors.Is(err, ledgererrors.ErrInvalidField), "got %v", err)
				return
			}
			require.NoError(t, err)
			assert.NotEmpty(t, user.ID)
			assert.NotContains(t, user.Username, " ")
		})
	}
}

func TestSession_IsExpired(t *testing.T) {
	now := time.Now()
	s := Session{JTI: "abc", Username: "ana", IssuedAt: now, ExpiresAt: now.Add(30 * time.Minute)}

	assert.False(t, s.IsExpired(now.Add(29*time.Minute)))
	assert.True(t, s.IsExpired(now.Add(31*time.Minute)))
}
