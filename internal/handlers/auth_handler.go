package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/hairshop/admin/internal/gallery"
	"github.com/hairshop/admin/internal/middleware"
	"github.com/hairshop/admin/internal/models"
	"github.com/hairshop/admin/internal/services"
)

// AuthHandler handles staff login, logout and the current session
type AuthHandler struct {
	authService *services.AuthService
	galleries   *gallery.Registry
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(authService *services.AuthService, galleries *gallery.Registry) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		galleries:   galleries,
	}
}

// Login checks staff credentials and sets the session cookie
// @Summary Staff login
// @Description Authenticate with username and password. Sets the session_token cookie.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body models.LoginRequest true "Credentials"
// @Success 200 {object} models.SessionResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 401 {object} models.ErrorResponse
// @Router /api/auth/login [post]
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body.")
		return
	}
	if req.Username == "" || req.Password == "" {
		respondError(w, http.StatusBadRequest, "Username and password are required.")
		return
	}

	session, user, err := h.authService.Login(r.Context(), req.Username, req.Password, clientIP(r), r.UserAgent())
	if err != nil {
		respondServiceError(w, r, err)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    session.ID,
		Path:     "/",
		HttpOnly: true,
		Secure:   r.TLS != nil,
		SameSite: http.SameSiteLaxMode,
		Expires:  session.ExpiresAt,
	})

	respondJSON(w, http.StatusOK, session.ToResponse(user))
}

// Logout invalidates the session, closes its gallery and clears the cookie
// @Summary Staff logout
// @Tags auth
// @Produce json
// @Success 200 {object} map[string]bool
// @Failure 401 {object} models.ErrorResponse
// @Router /api/auth/logout [post]
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	session := middleware.GetSessionFromContext(r.Context())
	if session == nil {
		respondError(w, http.StatusUnauthorized, "Session required.")
		return
	}

	if err := h.authService.Logout(r.Context(), session); err != nil {
		respondServiceError(w, r, err)
		return
	}
	h.galleries.Close(session.ID)

	http.SetCookie(w, &http.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		MaxAge:   -1,
		Expires:  time.Unix(0, 0),
	})

	respondJSON(w, http.StatusOK, map[string]bool{"success": true})
}

// GetSession returns the current session and its user
// @Summary Current session
// @Tags auth
// @Produce json
// @Success 200 {object} models.SessionResponse
// @Failure 401 {object} models.ErrorResponse
// @Router /api/session [get]
func (h *AuthHandler) GetSession(w http.ResponseWriter, r *http.Request) {
	session := middleware.GetSessionFromContext(r.Context())
	user := middleware.GetUserFromContext(r.Context())
	if session == nil || user == nil {
		respondError(w, http.StatusUnauthorized, "Session required.")
		return
	}
	respondJSON(w, http.StatusOK, session.ToResponse(user))
}
