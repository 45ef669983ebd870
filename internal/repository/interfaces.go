package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/hairshop/admin/internal/models"
)

// DBTX is satisfied by *sql.DB and *observability.TraceDB
type DBTX interface {
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
}

// UserRepo defines the interface for staff account persistence
type UserRepo interface {
	GetByID(ctx context.Context, id string) (*models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	GetCount(ctx context.Context) (int, error)
	Add(ctx context.Context, user *models.User) error
}

// WebSessionRepo defines the interface for browser session persistence
type WebSessionRepo interface {
	GetByID(ctx context.Context, id string) (*models.WebSession, error)
	Add(ctx context.Context, session *models.WebSession) error
	Touch(ctx context.Context, id string) error
	Invalidate(ctx context.Context, id string) error
	CleanupExpired(ctx context.Context) (int, error)
}

// ActivityRepo defines the interface for the audit trail
type ActivityRepo interface {
	Add(ctx context.Context, activity *models.Activity) error
	GetRecent(ctx context.Context, limit int) ([]*models.Activity, error)
	DeleteOlderThan(ctx context.Context, cutoff time.Time) (int, error)
}
