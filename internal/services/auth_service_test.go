package services

import (
	"context"
	"testing"

	"github.com/hairshop/admin/internal/models"
	"github.com/hairshop/admin/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthService_Login(t *testing.T) {
	ctx := context.Background()

	setup := func(t *testing.T) (*AuthService, *ActivityService, *models.User) {
		db := setupTestDB(t)
		user := addTestUser(t, db, "Maria", "correct-horse")
		activity := NewActivityService(repository.NewActivityRepository(db))
		svc := NewAuthService(
			repository.NewUserRepository(db),
			repository.NewWebSessionRepository(db),
			activity, nil, 24,
		)
		return svc, activity, user
	}

	t.Run("valid credentials open a session", func(t *testing.T) {
		svc, activity, user := setup(t)

		session, got, err := svc.Login(ctx, " MARIA ", "correct-horse", "10.0.0.2", "agent")

		require.NoError(t, err)
		assert.Equal(t, user.ID, got.ID)
		assert.Equal(t, user.ID, session.UserID)
		assert.Equal(t, "10.0.0.2", session.IPAddress)

		entries, _, err := activity.List(ctx, 0)
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, models.ActionLogin, entries[0].Action)
	})

	t.Run("wrong password and unknown user look the same", func(t *testing.T) {
		svc, _, _ := setup(t)

		_, _, errPassword := svc.Login(ctx, "maria", "wrong-password", "", "")
		_, _, errUser := svc.Login(ctx, "nobody", "correct-horse", "", "")

		assert.Equal(t, models.ErrInvalidCredentials, errPassword)
		assert.Equal(t, models.ErrInvalidCredentials, errUser)
	})
}

func TestAuthService_Sessions(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	addTestUser(t, db, "maria", "correct-horse")
	svc := NewAuthService(
		repository.NewUserRepository(db),
		repository.NewWebSessionRepository(db),
		nil, nil, 1,
	)

	session, _, err := svc.Login(ctx, "maria", "correct-horse", "", "")
	require.NoError(t, err)

	t.Run("get session", func(t *testing.T) {
		got, user, err := svc.GetSession(ctx, session.ID)
		require.NoError(t, err)
		assert.Equal(t, session.ID, got.ID)
		assert.Equal(t, "maria", user.Username)
	})

	t.Run("unknown session", func(t *testing.T) {
		_, _, err := svc.GetSession(ctx, "missing")
		assert.Equal(t, models.ErrSessionNotFound, err)
	})

	t.Run("logout invalidates", func(t *testing.T) {
		require.NoError(t, svc.Logout(ctx, session))

		_, _, err := svc.GetSession(ctx, session.ID)
		assert.Equal(t, models.ErrSessionInactive, err)

		removed, err := svc.CleanupExpired(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, removed)
	})
}

func TestAuthService_BootstrapAdmin(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	users := repository.NewUserRepository(db)
	svc := NewAuthService(users, repository.NewWebSessionRepository(db), nil, nil, 24)

	t.Run("nothing configured", func(t *testing.T) {
		created, err := svc.BootstrapAdmin(ctx, "", "")
		require.NoError(t, err)
		assert.False(t, created)
	})

	t.Run("creates once", func(t *testing.T) {
		created, err := svc.BootstrapAdmin(ctx, "Admin", "admin-password")
		require.NoError(t, err)
		assert.True(t, created)

		created, err = svc.BootstrapAdmin(ctx, "admin", "other-password")
		require.NoError(t, err)
		assert.False(t, created)

		count, err := users.GetCount(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, count)

		_, user, err := svc.Login(ctx, "admin", "admin-password", "", "")
		require.NoError(t, err)
		assert.Equal(t, "admin", user.Username)
	})

	t.Run("short password rejected", func(t *testing.T) {
		_, err := svc.BootstrapAdmin(ctx, "second", "short")
		assert.Equal(t, models.ErrPasswordTooShort, err)
	})
}
