package handler

import (
	"net/http"

	"github.com/devservices/backend/internal/service"
)

type StatsHandler struct {
	stats service.StatsService
}

func NewStatsHandler(stats service.StatsService) *StatsHandler {
	return &StatsHandler{stats: stats}
}

// Get handles GET /api/stats (admin).
func (h *StatsHandler) Get(w http.ResponseWriter, r *http.Request) {
	st, err := h.stats.Stats(r.Context())
	if err != nil {
		writeServiceError(w, r, err, "stats_failed")
		return
	}
	writeJSON(w, http.StatusOK, st)
}
