package services

import (
	"context"
	"testing"
	"time"

	"github.com/hairshop/admin/internal/models"
	"github.com/hairshop/admin/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMaintenanceService_RunNow(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	user := addTestUser(t, db, "stylist", "password123")

	sessions := repository.NewWebSessionRepository(db)
	require.NoError(t, sessions.Add(ctx, models.NewWebSession(user.ID, "", "", -time.Hour)))
	live := models.NewWebSession(user.ID, "", "", time.Hour)
	require.NoError(t, sessions.Add(ctx, live))

	activity := NewActivityService(repository.NewActivityRepository(db))
	old := models.NewActivity(user.ID, models.ActionLogin, "", "", "", true)
	old.CreatedAt = time.Now().UTC().AddDate(0, 0, -40)
	activity.Record(ctx, old)
	activity.Record(ctx, models.NewActivity(user.ID, models.ActionLogout, "", "", "", true))

	auth := NewAuthService(repository.NewUserRepository(db), sessions, activity, nil, 24)
	svc := NewMaintenanceService(auth, activity, 30)

	status, ran := svc.RunNow(ctx)
	require.True(t, ran)
	assert.False(t, status.Running)
	assert.Equal(t, 1, status.SessionsRemoved)
	assert.Equal(t, 1, status.ActivityRemoved)
	assert.Empty(t, status.Errors)
	assert.False(t, status.LastRun.IsZero())

	got, err := sessions.GetByID(ctx, live.ID)
	require.NoError(t, err)
	assert.NotNil(t, got)

	entries, _, err := activity.List(ctx, 10)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, models.ActionLogout, entries[0].Action)

	assert.Equal(t, status, svc.GetStatus())
}

func TestMaintenanceService_ZeroRetentionKeepsActivity(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)

	activity := NewActivityService(repository.NewActivityRepository(db))
	old := models.NewActivity("u1", models.ActionLogin, "", "", "", true)
	old.CreatedAt = time.Now().UTC().AddDate(-1, 0, 0)
	activity.Record(ctx, old)

	auth := NewAuthService(repository.NewUserRepository(db), repository.NewWebSessionRepository(db), activity, nil, 24)
	status, ran := NewMaintenanceService(auth, activity, 0).RunNow(ctx)
	require.True(t, ran)
	assert.Zero(t, status.ActivityRemoved)
}
