package handlers

import (
	"context"
	"net/http"

	"github.com/hairshop/admin/internal/models"
	"github.com/hairshop/admin/internal/services"
)

// MaintenanceHandler exposes the background cleanup status
type MaintenanceHandler struct {
	maintenance *services.MaintenanceService
}

// NewMaintenanceHandler creates a new MaintenanceHandler
func NewMaintenanceHandler(maintenance *services.MaintenanceService) *MaintenanceHandler {
	return &MaintenanceHandler{maintenance: maintenance}
}

// GetStatus returns the last maintenance run
// @Summary Get maintenance status
// @Tags maintenance
// @Produce json
// @Success 200 {object} services.MaintenanceStatus
// @Security SessionAuth
// @Router /api/maintenance [get]
func (h *MaintenanceHandler) GetStatus(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.maintenance.GetStatus())
}

// Run triggers a maintenance run and waits for it
// @Summary Run maintenance now
// @Tags maintenance
// @Produce json
// @Success 200 {object} services.MaintenanceStatus
// @Failure 409 {object} models.ErrorResponse
// @Security SessionAuth
// @Router /api/maintenance/run [post]
func (h *MaintenanceHandler) Run(w http.ResponseWriter, r *http.Request) {
	status, ran := h.maintenance.RunNow(context.WithoutCancel(r.Context()))
	if !ran {
		respondJSON(w, http.StatusConflict, models.ErrorResponse{Error: "Maintenance is already running."})
		return
	}
	respondJSON(w, http.StatusOK, status)
}
