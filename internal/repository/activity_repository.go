package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/hairshop/admin/internal/models"
)

// ActivityRepository implements ActivityRepo for PostgreSQL/SQLite
type ActivityRepository struct {
	db DBTX
}

// NewActivityRepository creates a new ActivityRepository
func NewActivityRepository(db DBTX) *ActivityRepository {
	return &ActivityRepository{db: db}
}

func (r *ActivityRepository) Add(ctx context.Context, a *models.Activity) error {
	query := `INSERT INTO activity (id, user_id, action, subject_type, subject_id, detail, success, created_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.db.ExecContext(ctx, query,
		a.ID, a.UserID, a.Action, a.SubjectType, a.SubjectID, a.Detail, a.Success, a.CreatedAt)
	return err
}

// GetRecent returns the newest entries first
func (r *ActivityRepository) GetRecent(ctx context.Context, limit int) ([]*models.Activity, error) {
	query := `SELECT id, user_id, action, subject_type, subject_id, detail, success, created_at
			  FROM activity ORDER BY created_at DESC LIMIT $1`

	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	activity := []*models.Activity{}
	for rows.Next() {
		var a models.Activity
		var subjectType, subjectID, detail sql.NullString
		if err := rows.Scan(&a.ID, &a.UserID, &a.Action, &subjectType, &subjectID,
			&detail, &a.Success, &a.CreatedAt); err != nil {
			return nil, err
		}
		a.SubjectType = subjectType.String
		a.SubjectID = subjectID.String
		a.Detail = detail.String
		activity = append(activity, &a)
	}
	return activity, rows.Err()
}

func (r *ActivityRepository) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int, error) {
	result, err := r.db.ExecContext(ctx, `DELETE FROM activity WHERE created_at < $1`, cutoff)
	if err != nil {
		return 0, err
	}
	rows, err := result.RowsAffected()
	return int(rows), err
}
