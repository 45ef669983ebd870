package services

import (
	"context"
	"time"

	"github.com/hairshop/admin/internal/models"
	"github.com/hairshop/admin/internal/observability"
	"github.com/hairshop/admin/internal/repository"
)

const (
	defaultActivityLimit = 50
	maxActivityLimit     = 200
)

// ActivityService writes and reads the staff audit trail
type ActivityService struct {
	repo  repository.ActivityRepo
	wsHub *WebSocketHub
}

// NewActivityService creates a new ActivityService
func NewActivityService(repo repository.ActivityRepo) *ActivityService {
	return &ActivityService{repo: repo}
}

// SetWebSocketHub streams recorded entries to subscribers of TopicActivity
func (s *ActivityService) SetWebSocketHub(hub *WebSocketHub) {
	s.wsHub = hub
}

// Record stores an entry. Failures are logged, not returned. A nil service is
// a no-op.
func (s *ActivityService) Record(ctx context.Context, a *models.Activity) {
	if s == nil || a == nil {
		return
	}
	if err := s.repo.Add(ctx, a); err != nil {
		observability.WithContext(ctx).WithFields(map[string]interface{}{
			"action":  a.Action,
			"user_id": a.UserID,
		}).Errorf("Failed to record activity: %v", err)
		return
	}
	if s.wsHub != nil {
		s.wsHub.BroadcastToTopic(TopicActivity, WSMessage{Type: WSTypeActivity, Payload: a})
	}
}

// List returns the newest entries. limit defaults to 50 and is capped at 200.
func (s *ActivityService) List(ctx context.Context, limit int) ([]*models.Activity, int, error) {
	limit = ClampActivityLimit(limit)
	entries, err := s.repo.GetRecent(ctx, limit)
	return entries, limit, err
}

// Cleanup deletes entries older than retentionDays. Zero keeps everything.
func (s *ActivityService) Cleanup(ctx context.Context, retentionDays int) (int, error) {
	if retentionDays <= 0 {
		return 0, nil
	}
	cutoff := time.Now().UTC().AddDate(0, 0, -retentionDays)
	return s.repo.DeleteOlderThan(ctx, cutoff)
}

// ClampActivityLimit applies the default and maximum page size
func ClampActivityLimit(limit int) int {
	if limit <= 0 {
		return defaultActivityLimit
	}
	if limit > maxActivityLimit {
		return maxActivityLimit
	}
	return limit
}
