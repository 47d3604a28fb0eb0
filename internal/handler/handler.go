package handler

import (
	"net/http"
	"slices"

	"github.com/devservices/backend/internal/repository"
)

// Handler serves the endpoints that are not tied to a resource (health,
// banner) and owns the CORS policy.
type Handler struct {
	db      repository.DB
	origins []string
}

// New creates a Handler. origins is the CORS allow-list; "*" allows any origin.
func New(db repository.DB, origins []string) *Handler {
	return &Handler{db: db, origins: origins}
}

func (h *Handler) allowedOrigin(origin string) (string, bool) {
	if origin == "" {
		return "", false
	}
	if slices.Contains(h.origins, "*") || slices.Contains(h.origins, origin) {
		return origin, true
	}
	return "", false
}

// CORS echoes allowed origins back so credentials keep working with a
// wildcard allow-list.
func (h *Handler) CORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if origin, ok := h.allowedOrigin(r.Header.Get("Origin")); ok {
			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PATCH, OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
			w.Header().Set("Access-Control-Allow-Credentials", "true")
			w.Header().Add("Vary", "Origin")
		}

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}
