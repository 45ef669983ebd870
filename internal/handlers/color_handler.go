package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/hairshop/admin/internal/models"
	"github.com/hairshop/admin/internal/services"
)

// ColorHandler handles hair color endpoints
type ColorHandler struct {
	catalog  *services.CatalogClient
	activity *services.ActivityService
}

// NewColorHandler creates a new ColorHandler
func NewColorHandler(catalog *services.CatalogClient, activity *services.ActivityService) *ColorHandler {
	return &ColorHandler{catalog: catalog, activity: activity}
}

// List returns all colors
// @Summary List colors
// @Tags colors
// @Produce json
// @Success 200 {array} models.Color
// @Router /api/colors [get]
func (h *ColorHandler) List(w http.ResponseWriter, r *http.Request) {
	colors, err := h.catalog.ListColors(r.Context())
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	if colors == nil {
		colors = []models.Color{}
	}
	respondJSON(w, http.StatusOK, colors)
}

// Create adds a color
// @Summary Create color
// @Tags colors
// @Accept json
// @Produce json
// @Param request body models.CreateColorRequest true "Color"
// @Success 201 {object} models.Color
// @Failure 400 {object} models.ErrorResponse
// @Router /api/colors [post]
func (h *ColorHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.CreateColorRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body.")
		return
	}
	if err := req.Validate(); err != nil {
		respondServiceError(w, r, err)
		return
	}

	color, err := h.catalog.CreateColor(r.Context(), req)
	if err != nil {
		record(h.activity, r, models.ActionColorCreate, models.SubjectColor, "", err)
		respondServiceError(w, r, err)
		return
	}
	record(h.activity, r, models.ActionColorCreate, models.SubjectColor, color.ID, nil)
	respondJSON(w, http.StatusCreated, color)
}

// Delete removes a color
// @Summary Delete color
// @Tags colors
// @Param id path string true "Color ID"
// @Success 204
// @Router /api/colors/{id} [delete]
func (h *ColorHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	err := h.catalog.DeleteColor(r.Context(), id)
	record(h.activity, r, models.ActionColorDelete, models.SubjectColor, id, err)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
