package handler

import (
	"net/http"
)

// Handlers groups everything Routes needs.
type Handlers struct {
	Base          *Handler
	Admin         *AdminHandler
	Catalog       *CatalogHandler
	Quotes        *QuoteHandler
	Consultations *ConsultationHandler
	Stats         *StatsHandler

	// AdminOnly wraps routes reserved for the administrator
	// (auth.RequireAdmin, or auth.OpenAdmin when admin auth is disabled).
	AdminOnly func(http.Handler) http.Handler
	// Limiter throttles login and public submissions. May be nil.
	Limiter *RateLimiter
}

// Routes builds the full middleware chain and mux under the /api prefix.
func Routes(h Handlers) http.Handler {
	admin := func(f http.HandlerFunc) http.Handler { return h.AdminOnly(f) }
	public := func(f http.HandlerFunc) http.Handler { return f }
	limited := public
	if h.Limiter != nil {
		limited = h.Limiter.Wrap
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/{$}", h.Base.Root)
	mux.HandleFunc("GET /api/health", h.Base.Health)

	mux.Handle("POST /api/admin/login", limited(h.Admin.Login))

	// サービス一覧は公開、作成は管理者のみ
	mux.Handle("GET /api/services", public(h.Catalog.List))
	mux.Handle("POST /api/services", admin(h.Catalog.Create))

	mux.Handle("POST /api/quotes", limited(h.Quotes.Submit))
	mux.Handle("GET /api/quotes", admin(h.Quotes.List))
	mux.Handle("GET /api/quotes/count", admin(h.Quotes.Count))
	mux.Handle("GET /api/quotes/{id}", admin(h.Quotes.Get))
	mux.Handle("PATCH /api/quotes/{id}/status", admin(h.Quotes.UpdateStatus))

	mux.Handle("POST /api/consultations", limited(h.Consultations.Submit))
	mux.Handle("GET /api/consultations", admin(h.Consultations.List))
	mux.Handle("GET /api/consultations/count", admin(h.Consultations.Count))
	mux.Handle("GET /api/consultations/{id}", admin(h.Consultations.Get))
	mux.Handle("PATCH /api/consultations/{id}/status", admin(h.Consultations.UpdateStatus))

	mux.Handle("GET /api/stats", admin(h.Stats.Get))

	return Recover(RequestLogger(SecurityHeaders(h.Base.CORS(mux))))
}
