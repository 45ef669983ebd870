package handlers

import (
	"net/http"

	"github.com/hairshop/admin/internal/models"
)

// MetaHandler serves the enumerations the console's forms need
type MetaHandler struct {
	maxUploadBytes int64
}

// NewMetaHandler creates a new MetaHandler
func NewMetaHandler(maxUploadBytes int64) *MetaHandler {
	return &MetaHandler{maxUploadBytes: maxUploadBytes}
}

// Get returns categories, hair types and color categories
// @Summary Form metadata
// @Tags meta
// @Produce json
// @Success 200 {object} models.MetaResponse
// @Router /api/meta [get]
func (h *MetaHandler) Get(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, models.NewMetaResponse(h.maxUploadBytes))
}
