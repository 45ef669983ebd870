package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/hairshop/admin/internal/models"
)

// WebSessionRepository implements WebSessionRepo for PostgreSQL/SQLite
type WebSessionRepository struct {
	db DBTX
}

// NewWebSessionRepository creates a new WebSessionRepository
func NewWebSessionRepository(db DBTX) *WebSessionRepository {
	return &WebSessionRepository{db: db}
}

func (r *WebSessionRepository) GetByID(ctx context.Context, id string) (*models.WebSession, error) {
	query := `SELECT id, user_id, created_at, expires_at, last_activity_at, ip_address, user_agent, is_active
			  FROM web_sessions WHERE id = $1`

	var session models.WebSession
	var ipAddress, userAgent sql.NullString
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&session.ID, &session.UserID, &session.CreatedAt, &session.ExpiresAt,
		&session.LastActivityAt, &ipAddress, &userAgent, &session.IsActive,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	session.IPAddress = ipAddress.String
	session.UserAgent = userAgent.String
	return &session, nil
}

func (r *WebSessionRepository) Add(ctx context.Context, session *models.WebSession) error {
	query := `INSERT INTO web_sessions (id, user_id, created_at, expires_at, last_activity_at, ip_address, user_agent, is_active)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	_, err := r.db.ExecContext(ctx, query,
		session.ID, session.UserID, session.CreatedAt, session.ExpiresAt,
		session.LastActivityAt, session.IPAddress, session.UserAgent, session.IsActive,
	)
	return err
}

func (r *WebSessionRepository) Touch(ctx context.Context, id string) error {
	query := `UPDATE web_sessions SET last_activity_at = $2 WHERE id = $1`
	_, err := r.db.ExecContext(ctx, query, id, time.Now().UTC())
	return err
}

func (r *WebSessionRepository) Invalidate(ctx context.Context, id string) error {
	query := `UPDATE web_sessions SET is_active = false WHERE id = $1`
	_, err := r.db.ExecContext(ctx, query, id)
	return err
}

func (r *WebSessionRepository) CleanupExpired(ctx context.Context) (int, error) {
	query := `DELETE FROM web_sessions WHERE expires_at <= $1 OR is_active = false`

	result, err := r.db.ExecContext(ctx, query, time.Now().UTC())
	if err != nil {
		return 0, err
	}
	rows, err := result.RowsAffected()
	return int(rows), err
}
