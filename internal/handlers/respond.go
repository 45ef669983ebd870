package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/hairshop/admin/internal/gallery"
	"github.com/hairshop/admin/internal/middleware"
	"github.com/hairshop/admin/internal/models"
	"github.com/hairshop/admin/internal/observability"
	"github.com/hairshop/admin/internal/services"
)

func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, models.ErrorResponse{Error: message})
}

// respondServiceError maps domain and catalog API errors to a status code
func respondServiceError(w http.ResponseWriter, r *http.Request, err error) {
	status, message := errorStatus(err)
	if status >= http.StatusInternalServerError {
		observability.WithContext(r.Context()).WithField("path", r.URL.Path).Errorf("Request failed: %v", err)
	}
	respondError(w, status, message)
}

func errorStatus(err error) (int, string) {
	var catalogErr models.CatalogError
	var userErr models.UserError
	var transportErr *services.TransportError

	switch {
	case errors.As(err, &catalogErr):
		return http.StatusBadRequest, catalogErr.Message
	case errors.Is(err, gallery.ErrIndexOutOfRange):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, gallery.ErrImageNotFound):
		return http.StatusNotFound, err.Error()
	case errors.Is(err, gallery.ErrGalleryNotOpen), errors.Is(err, gallery.ErrCommitInProgress):
		return http.StatusConflict, err.Error()
	case errors.Is(err, models.ErrInvalidCredentials), errors.Is(err, models.ErrUserInactive):
		return http.StatusUnauthorized, err.Error()
	case errors.As(err, &userErr):
		return http.StatusBadRequest, userErr.Message
	case errors.As(err, &transportErr):
		return transportStatus(transportErr)
	default:
		return http.StatusInternalServerError, "Internal server error."
	}
}

// transportStatus passes the catalog API's client errors through. Its 401 and
// 403 concern the console's own credentials, so they become 502 like any
// other upstream failure.
func transportStatus(err *services.TransportError) (int, string) {
	message := err.Message
	if message == "" {
		message = err.Error()
	}
	code := err.StatusCode
	if code >= 400 && code < 500 && code != http.StatusUnauthorized && code != http.StatusForbidden {
		return code, message
	}
	return http.StatusBadGateway, message
}

// record writes an activity entry for the signed-in user
func record(activity *services.ActivityService, r *http.Request, action, subjectType, subjectID string, err error) {
	user := middleware.GetUserFromContext(r.Context())
	if user == nil {
		return
	}
	detail := ""
	if err != nil {
		detail = err.Error()
	}
	activity.Record(r.Context(), models.NewActivity(user.ID, action, subjectType, subjectID, detail, err == nil))
}

func clientIP(r *http.Request) string {
	if ip := r.Header.Get("X-Forwarded-For"); ip != "" {
		return ip
	}
	return r.RemoteAddr
}
