package services

import (
	"context"

	"github.com/hairshop/admin/internal/gallery"
	"github.com/hairshop/admin/internal/models"
)

// NotificationService delivers gallery notifications to the owner's browser
// tabs and writes them to the activity log.
type NotificationService struct {
	hub      *WebSocketHub
	activity *ActivityService
	cdnBase  string
}

// NewNotificationService creates a new NotificationService
func NewNotificationService(hub *WebSocketHub, activity *ActivityService, cdnBase string) *NotificationService {
	return &NotificationService{hub: hub, activity: activity, cdnBase: cdnBase}
}

// Notify implements gallery.Notifier
func (s *NotificationService) Notify(ctx context.Context, n gallery.Notification) {
	if s.hub != nil {
		s.hub.SendToUser(n.UserID, WSMessage{Type: WSTypeNotification, Payload: n})
	}

	var a *models.Activity
	switch n.Kind {
	case gallery.ReorderSucceeded, gallery.ReorderFailed:
		a = models.NewActivity(n.UserID, models.ActionImageReorder, models.SubjectVariant, n.VariantID, n.Reason, !n.Failed())
	case gallery.DeleteSucceeded, gallery.DeleteFailed:
		a = models.NewActivity(n.UserID, models.ActionImageDelete, models.SubjectImage, n.ImageID, n.Reason, !n.Failed())
	}
	s.activity.Record(ctx, a)
}

// GalleryUpdated pushes a changed gallery to the owner's other tabs
func (s *NotificationService) GalleryUpdated(userID string, snap gallery.Snapshot) {
	if s.hub == nil {
		return
	}
	s.hub.SendToUser(userID, WSMessage{Type: WSTypeGalleryUpdated, Payload: GalleryView(s.cdnBase, snap)})
}

// GalleryView renders a snapshot with CDN thumbnail and full-size URLs
func GalleryView(cdnBase string, snap gallery.Snapshot) models.GalleryResponse {
	views := make([]models.ImageView, len(snap.Images))
	for i, img := range snap.Images {
		views[i] = models.NewImageView(cdnBase, img)
	}
	return models.GalleryResponse{
		VariantID:   snap.VariantID,
		Images:      views,
		PendingSave: snap.PendingSave,
		Committing:  snap.Committing,
	}
}
