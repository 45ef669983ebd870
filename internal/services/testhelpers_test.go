package services

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/hairshop/admin/internal/models"
	"github.com/hairshop/admin/internal/repository"
	"github.com/stretchr/testify/require"
)

func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := repository.NewSQLiteDB(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func addTestUser(t *testing.T, db *sql.DB, username, password string) *models.User {
	t.Helper()
	user, err := models.NewUser(username, "", password)
	require.NoError(t, err)
	require.NoError(t, repository.NewUserRepository(db).Add(context.Background(), user))
	return user
}
