package gallery

import "context"

// NotificationKind identifies the outcome a Notification reports
type NotificationKind string

const (
	ReorderSucceeded NotificationKind = "reorderSucceeded"
	ReorderFailed    NotificationKind = "reorderFailed"
	DeleteSucceeded  NotificationKind = "deleteSucceeded"
	DeleteFailed     NotificationKind = "deleteFailed"
)

// User-facing messages for each kind
var notificationMessages = map[NotificationKind]string{
	ReorderSucceeded: "Image order updated successfully",
	ReorderFailed:    "Failed to update image order",
	DeleteSucceeded:  "Image deleted successfully",
	DeleteFailed:     "Failed to delete image",
}

// Notification is a transient success or failure message for the staff
// user who owns the gallery.
type Notification struct {
	Kind      NotificationKind `json:"kind"`
	Message   string           `json:"message"`
	Reason    string           `json:"reason,omitempty"`
	UserID    string           `json:"-"`
	VariantID string           `json:"variantId"`
	ImageID   string           `json:"imageId,omitempty"`
}

// Failed reports whether the notification describes a failure
func (n Notification) Failed() bool {
	return n.Kind == ReorderFailed || n.Kind == DeleteFailed
}

func newNotification(kind NotificationKind, userID, variantID string, err error) Notification {
	n := Notification{
		Kind:      kind,
		Message:   notificationMessages[kind],
		UserID:    userID,
		VariantID: variantID,
	}
	if err != nil {
		n.Reason = err.Error()
	}
	return n
}

// Notifier receives gallery notifications
type Notifier interface {
	Notify(ctx context.Context, n Notification)
}

// NotifierFunc adapts a function to Notifier
type NotifierFunc func(ctx context.Context, n Notification)

// Notify calls f(ctx, n)
func (f NotifierFunc) Notify(ctx context.Context, n Notification) {
	f(ctx, n)
}

type discardNotifier struct{}

func (discardNotifier) Notify(context.Context, Notification) {}
