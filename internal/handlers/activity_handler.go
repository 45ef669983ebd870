package handlers

import (
	"net/http"
	"strconv"

	"github.com/hairshop/admin/internal/models"
	"github.com/hairshop/admin/internal/services"
)

// ActivityHandler serves the staff audit trail
type ActivityHandler struct {
	activity *services.ActivityService
}

// NewActivityHandler creates a new ActivityHandler
func NewActivityHandler(activity *services.ActivityService) *ActivityHandler {
	return &ActivityHandler{activity: activity}
}

// List returns the newest activity entries
// @Summary List activity
// @Tags activity
// @Produce json
// @Param limit query int false "Number of entries (default 50, max 200)"
// @Success 200 {object} models.ActivityListResponse
// @Security SessionAuth
// @Router /api/activity [get]
func (h *ActivityHandler) List(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	entries, limit, err := h.activity.List(r.Context(), limit)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, models.ActivityListResponse{Activity: entries, Limit: limit})
}
