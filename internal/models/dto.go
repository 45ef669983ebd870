package models

import "time"

// HealthResponse is returned by health check
type HealthResponse struct {
	Status    string    `json:"status"`
	Version   string    `json:"version"`
	GitCommit string    `json:"gitCommit"`
	Timestamp time.Time `json:"timestamp"`
}

// ErrorResponse is returned on errors
type ErrorResponse struct {
	Error string `json:"error"`
}

// LoginRequest is the body of a login
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// MoveImageRequest moves one image within the working order. Both indices
// are required and zero-based.
type MoveImageRequest struct {
	From *int `json:"from"`
	To   *int `json:"to"`
}

// GalleryResponse is the console's view of an open gallery
type GalleryResponse struct {
	VariantID   string      `json:"variantId"`
	Images      []ImageView `json:"images"`
	PendingSave bool        `json:"pendingSave"`
	Committing  bool        `json:"committing"`
}

// CategoryOption is one selectable product category
type CategoryOption struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// MetaResponse lists the enumerations forms need
type MetaResponse struct {
	Categories      []CategoryOption `json:"categories"`
	HairTypes       []string         `json:"hairTypes"`
	ColorCategories map[string]int   `json:"colorCategories"`
	MaxUploadBytes  int64            `json:"maxUploadBytes"`
}

// NewMetaResponse builds the enumerations response
func NewMetaResponse(maxUploadBytes int64) MetaResponse {
	return MetaResponse{
		Categories: []CategoryOption{
			{ID: CategoryWigs, Name: CategoryNames[CategoryWigs]},
			{ID: CategoryTails, Name: CategoryNames[CategoryTails]},
			{ID: CategoryToppers, Name: CategoryNames[CategoryToppers]},
		},
		HairTypes: []string{HairTypeNatural, HairTypeSynthetic},
		ColorCategories: map[string]int{
			"light": ColorCategoryLight,
			"dark":  ColorCategoryDark,
		},
		MaxUploadBytes: maxUploadBytes,
	}
}
