package models

import (
	"time"

	"github.com/google/uuid"
)

// Activity actions
const (
	ActionLogin         = "login"
	ActionLogout        = "logout"
	ActionProductCreate = "product.create"
	ActionProductUpdate = "product.update"
	ActionProductDelete = "product.delete"
	ActionVariantCreate = "variant.create"
	ActionVariantUpdate = "variant.update"
	ActionVariantDelete = "variant.delete"
	ActionVariantSKU    = "variant.sku"
	ActionColorCreate   = "color.create"
	ActionColorDelete   = "color.delete"
	ActionImageUpload   = "image.upload"
	ActionImageDelete   = "image.delete"
	ActionImageReorder  = "image.reorder"
)

// Activity subject types
const (
	SubjectProduct = "product"
	SubjectVariant = "variant"
	SubjectColor   = "color"
	SubjectImage   = "image"
	SubjectUser    = "user"
)

// Activity is one entry of the staff audit trail
type Activity struct {
	ID          string    `json:"id"`
	UserID      string    `json:"userId"`
	Action      string    `json:"action"`
	SubjectType string    `json:"subjectType,omitempty"`
	SubjectID   string    `json:"subjectId,omitempty"`
	Detail      string    `json:"detail,omitempty"`
	Success     bool      `json:"success"`
	CreatedAt   time.Time `json:"createdAt"`
}

// NewActivity creates an activity entry stamped now
func NewActivity(userID, action, subjectType, subjectID, detail string, success bool) *Activity {
	return &Activity{
		ID:          uuid.New().String(),
		UserID:      userID,
		Action:      action,
		SubjectType: subjectType,
		SubjectID:   subjectID,
		Detail:      detail,
		Success:     success,
		CreatedAt:   time.Now().UTC(),
	}
}

// ActivityListResponse is returned when listing activity
type ActivityListResponse struct {
	Activity []*Activity `json:"activity"`
	Limit    int         `json:"limit"`
}
