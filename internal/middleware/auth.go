package middleware

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/hairshop/admin/internal/models"
	"github.com/hairshop/admin/internal/observability"
	"github.com/hairshop/admin/internal/repository"
)

type contextKey string

const (
	UserContextKey    contextKey = "user"
	SessionContextKey contextKey = "session"
)

// SessionCookieName is the cookie carrying the web session ID
const SessionCookieName = "session_token"

// GetUserFromContext retrieves the authenticated user from request context
func GetUserFromContext(ctx context.Context) *models.User {
	if user, ok := ctx.Value(UserContextKey).(*models.User); ok {
		return user
	}
	return nil
}

// GetSessionFromContext retrieves the web session from request context
func GetSessionFromContext(ctx context.Context) *models.WebSession {
	if session, ok := ctx.Value(SessionContextKey).(*models.WebSession); ok {
		return session
	}
	return nil
}

// WithSession returns a copy of ctx carrying session and user
func WithSession(ctx context.Context, session *models.WebSession, user *models.User) context.Context {
	ctx = context.WithValue(ctx, SessionContextKey, session)
	return context.WithValue(ctx, UserContextKey, user)
}

// SessionAuth creates middleware for web session authentication
func SessionAuth(sessionRepo repository.WebSessionRepo, userRepo repository.UserRepo) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(SessionCookieName)
			if err != nil || cookie.Value == "" {
				writeError(w, http.StatusUnauthorized, "Session required.")
				return
			}

			session, err := sessionRepo.GetByID(r.Context(), cookie.Value)
			if err != nil {
				observability.WithContext(r.Context()).Errorf("Session lookup failed: %v", err)
				writeError(w, http.StatusInternalServerError, "Internal server error.")
				return
			}

			if session == nil || !session.IsActive || session.IsExpired() {
				writeError(w, http.StatusUnauthorized, "Session expired or invalid.")
				return
			}

			user, err := userRepo.GetByID(r.Context(), session.UserID)
			if err != nil || user == nil || !user.IsActive {
				writeError(w, http.StatusUnauthorized, "User not found or disabled.")
				return
			}

			if err := sessionRepo.Touch(r.Context(), session.ID); err != nil {
				observability.WithContext(r.Context()).Warnf("Session touch failed: %v", err)
			}

			next.ServeHTTP(w, r.WithContext(WithSession(r.Context(), session, user)))
		})
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(models.ErrorResponse{Error: message})
}
