package repository

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	"github.com/hairshop/admin/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := NewSQLiteDB(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func addTestUser(t *testing.T, repo *UserRepository, username string) *models.User {
	t.Helper()
	user, err := models.NewUser(username, "", "password123")
	require.NoError(t, err)
	require.NoError(t, repo.Add(context.Background(), user))
	return user
}

func TestUserRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("add and get", func(t *testing.T) {
		repo := NewUserRepository(setupTestDB(t))
		user := addTestUser(t, repo, "anna")

		byID, err := repo.GetByID(ctx, user.ID)
		require.NoError(t, err)
		require.NotNil(t, byID)
		assert.Equal(t, "anna", byID.Username)
		assert.True(t, byID.IsActive)
		assert.True(t, byID.VerifyPassword("password123"))

		byName, err := repo.GetByUsername(ctx, "anna")
		require.NoError(t, err)
		require.NotNil(t, byName)
		assert.Equal(t, user.ID, byName.ID)

		count, err := repo.GetCount(ctx)
		require.NoError(t, err)
		assert.Equal(t, 1, count)
	})

	t.Run("missing user returns nil", func(t *testing.T) {
		repo := NewUserRepository(setupTestDB(t))

		user, err := repo.GetByUsername(ctx, "nobody")
		assert.NoError(t, err)
		assert.Nil(t, user)
	})

	t.Run("usernames are unique", func(t *testing.T) {
		repo := NewUserRepository(setupTestDB(t))
		addTestUser(t, repo, "anna")

		dup, err := models.NewUser("anna", "", "password456")
		require.NoError(t, err)
		assert.Error(t, repo.Add(ctx, dup))
	})
}

func TestWebSessionRepository(t *testing.T) {
	ctx := context.Background()

	setup := func(t *testing.T) (*WebSessionRepository, *models.User) {
		db := setupTestDB(t)
		user := addTestUser(t, NewUserRepository(db), "staff")
		return NewWebSessionRepository(db), user
	}

	t.Run("add and get", func(t *testing.T) {
		repo, user := setup(t)
		session := models.NewWebSession(user.ID, "10.0.0.1", "test-agent", time.Hour)
		require.NoError(t, repo.Add(ctx, session))

		got, err := repo.GetByID(ctx, session.ID)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, user.ID, got.UserID)
		assert.Equal(t, "10.0.0.1", got.IPAddress)
		assert.True(t, got.IsActive)
		assert.False(t, got.IsExpired())
	})

	t.Run("invalidate", func(t *testing.T) {
		repo, user := setup(t)
		session := models.NewWebSession(user.ID, "", "", time.Hour)
		require.NoError(t, repo.Add(ctx, session))

		require.NoError(t, repo.Invalidate(ctx, session.ID))

		got, err := repo.GetByID(ctx, session.ID)
		require.NoError(t, err)
		assert.False(t, got.IsActive)
	})

	t.Run("touch moves last activity", func(t *testing.T) {
		repo, user := setup(t)
		session := models.NewWebSession(user.ID, "", "", time.Hour)
		session.LastActivityAt = time.Now().UTC().Add(-time.Hour)
		require.NoError(t, repo.Add(ctx, session))

		require.NoError(t, repo.Touch(ctx, session.ID))

		got, err := repo.GetByID(ctx, session.ID)
		require.NoError(t, err)
		assert.WithinDuration(t, time.Now().UTC(), got.LastActivityAt, 5*time.Second)
	})

	t.Run("cleanup removes expired and inactive", func(t *testing.T) {
		repo, user := setup(t)
		live := models.NewWebSession(user.ID, "", "", time.Hour)
		expired := models.NewWebSession(user.ID, "", "", -time.Hour)
		inactive := models.NewWebSession(user.ID, "", "", time.Hour)
		inactive.IsActive = false
		for _, s := range []*models.WebSession{live, expired, inactive} {
			require.NoError(t, repo.Add(ctx, s))
		}

		removed, err := repo.CleanupExpired(ctx)
		require.NoError(t, err)
		assert.Equal(t, 2, removed)

		got, err := repo.GetByID(ctx, live.ID)
		require.NoError(t, err)
		assert.NotNil(t, got)
	})

	t.Run("unknown session returns nil", func(t *testing.T) {
		repo, _ := setup(t)
		got, err := repo.GetByID(ctx, "missing")
		assert.NoError(t, err)
		assert.Nil(t, got)
	})
}

func TestActivityRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("recent entries newest first", func(t *testing.T) {
		repo := NewActivityRepository(setupTestDB(t))
		base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
		for i, action := range []string{models.ActionLogin, models.ActionImageReorder, models.ActionImageDelete} {
			a := models.NewActivity("u1", action, models.SubjectVariant, "v1", "", i != 2)
			a.CreatedAt = base.Add(time.Duration(i) * time.Minute)
			require.NoError(t, repo.Add(ctx, a))
		}

		recent, err := repo.GetRecent(ctx, 2)
		require.NoError(t, err)
		require.Len(t, recent, 2)
		assert.Equal(t, models.ActionImageDelete, recent[0].Action)
		assert.False(t, recent[0].Success)
		assert.Equal(t, models.ActionImageReorder, recent[1].Action)
		assert.Equal(t, "v1", recent[1].SubjectID)
	})

	t.Run("empty log is an empty slice", func(t *testing.T) {
		repo := NewActivityRepository(setupTestDB(t))
		recent, err := repo.GetRecent(ctx, 10)
		require.NoError(t, err)
		assert.NotNil(t, recent)
		assert.Empty(t, recent)
	})

	t.Run("delete older than cutoff", func(t *testing.T) {
		repo := NewActivityRepository(setupTestDB(t))
		old := models.NewActivity("u1", models.ActionLogin, "", "", "", true)
		old.CreatedAt = time.Now().UTC().Add(-48 * time.Hour)
		fresh := models.NewActivity("u1", models.ActionLogout, "", "", "", true)
		require.NoError(t, repo.Add(ctx, old))
		require.NoError(t, repo.Add(ctx, fresh))

		removed, err := repo.DeleteOlderThan(ctx, time.Now().UTC().Add(-24*time.Hour))
		require.NoError(t, err)
		assert.Equal(t, 1, removed)

		recent, err := repo.GetRecent(ctx, 10)
		require.NoError(t, err)
		require.Len(t, recent, 1)
		assert.Equal(t, models.ActionLogout, recent[0].Action)
	})
}
