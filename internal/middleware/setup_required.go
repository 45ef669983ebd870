package middleware

import (
	"net/http"
	"strings"

	"github.com/hairshop/admin/internal/observability"
	"github.com/hairshop/admin/internal/repository"
)

// SetupRequired rejects API requests with 503 while no staff account exists.
// Health checks and swagger stay reachable.
func SetupRequired(userRepo repository.UserRepo) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			path := r.URL.Path

			if path == "/health" || path == "/api/health" || strings.HasPrefix(path, "/swagger") {
				next.ServeHTTP(w, r)
				return
			}

			count, err := userRepo.GetCount(r.Context())
			if err != nil {
				// Can't tell, let the request through
				observability.WithContext(r.Context()).Errorf("Staff count failed: %v", err)
				next.ServeHTTP(w, r)
				return
			}

			if count == 0 && strings.HasPrefix(path, "/api") {
				writeError(w, http.StatusServiceUnavailable,
					"No staff account exists. Set ADMIN_USERNAME and ADMIN_PASSWORD and restart.")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
