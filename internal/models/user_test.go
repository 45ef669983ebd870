package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUser(t *testing.T) {
	t.Run("normalizes username and hashes password", func(t *testing.T) {
		u, err := NewUser("  Admin ", "", "correct-horse")

		require.NoError(t, err)
		assert.NotEmpty(t, u.ID)
		assert.Equal(t, "admin", u.Username)
		assert.Equal(t, "admin", u.DisplayName)
		assert.True(t, u.IsActive)
		assert.NotEqual(t, "correct-horse", u.PasswordHash)
		assert.True(t, u.VerifyPassword("correct-horse"))
		assert.False(t, u.VerifyPassword("wrong-horse"))
	})

	t.Run("rejects empty username", func(t *testing.T) {
		_, err := NewUser(" ", "Staff", "password1")
		assert.ErrorIs(t, err, ErrEmptyUsername)
	})

	t.Run("rejects short password", func(t *testing.T) {
		_, err := NewUser("staff", "Staff", "short")
		assert.ErrorIs(t, err, ErrPasswordTooShort)
	})

	t.Run("user without hash never verifies", func(t *testing.T) {
		u := &User{}
		assert.False(t, u.VerifyPassword(""))
	})
}

func TestWebSession(t *testing.T) {
	t.Run("new session is active and not expired", func(t *testing.T) {
		s := NewWebSession("u1", "127.0.0.1", "test", time.Hour)

		assert.NotEmpty(t, s.ID)
		assert.True(t, s.IsActive)
		assert.False(t, s.IsExpired())
		assert.WithinDuration(t, time.Now().UTC().Add(time.Hour), s.ExpiresAt, 5*time.Second)
	})

	t.Run("past expiry is expired", func(t *testing.T) {
		s := NewWebSession("u1", "", "", -time.Minute)
		assert.True(t, s.IsExpired())
	})

	t.Run("response carries user", func(t *testing.T) {
		u := &User{ID: "u1", Username: "anna", DisplayName: "Anna"}
		s := NewWebSession(u.ID, "", "", time.Hour)

		resp := s.ToResponse(u)
		assert.Equal(t, "anna", resp.User.Username)
		assert.Equal(t, s.ExpiresAt, resp.ExpiresAt)
	})
}
