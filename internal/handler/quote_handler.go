package handler

import (
	"net/http"

	"github.com/devservices/backend/internal/model"
	"github.com/devservices/backend/internal/service"
)

// QuoteHandler handles quote request submission and admin triage.
type QuoteHandler struct {
	quotes service.QuoteService
	status service.StatusService
}

// NewQuoteHandler creates a QuoteHandler with the given services.
func NewQuoteHandler(quotes service.QuoteService, status service.StatusService) *QuoteHandler {
	return &QuoteHandler{quotes: quotes, status: status}
}

// quoteRequest is the expected JSON body for POST /api/quotes.
// id, status and created_at are assigned server-side.
type quoteRequest struct {
	Name        string  `json:"name" validate:"required,max=200"`
	Email       string  `json:"email" validate:"required,email,max=254"`
	Company     *string `json:"company" validate:"omitempty,max=200"`
	Service     string  `json:"service" validate:"required,max=200"`
	Budget      *string `json:"budget" validate:"omitempty,max=100"`
	Description string  `json:"description" validate:"required,max=5000"`
}

// Submit handles POST /api/quotes.
func (h *QuoteHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req quoteRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	q := &model.QuoteRequest{
		Name:        req.Name,
		Email:       req.Email,
		Company:     req.Company,
		Service:     req.Service,
		Budget:      req.Budget,
		Description: req.Description,
	}
	if err := h.quotes.Submit(r.Context(), q); err != nil {
		writeServiceError(w, r, err, "submit_failed")
		return
	}
	writeJSON(w, http.StatusOK, q)
}

// List handles GET /api/quotes (admin). Query: limit, skip, order, status.
func (h *QuoteHandler) List(w http.ResponseWriter, r *http.Request) {
	opts, ok := parseListOptions(w, r)
	if !ok {
		return
	}

	quotes, err := h.quotes.List(r.Context(), opts)
	if err != nil {
		writeServiceError(w, r, err, "list_failed")
		return
	}
	// Return [] not null for empty lists
	if quotes == nil {
		quotes = []*model.QuoteRequest{}
	}
	writeJSON(w, http.StatusOK, quotes)
}

// Get handles GET /api/quotes/{id} (admin).
func (h *QuoteHandler) Get(w http.ResponseWriter, r *http.Request) {
	q, err := h.quotes.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		writeServiceError(w, r, err, "get_failed")
		return
	}
	writeJSON(w, http.StatusOK, q)
}

// Count handles GET /api/quotes/count (admin).
func (h *QuoteHandler) Count(w http.ResponseWriter, r *http.Request) {
	n, err := h.quotes.Count(r.Context())
	if err != nil {
		writeServiceError(w, r, err, "count_failed")
		return
	}
	writeJSON(w, http.StatusOK, map[string]int64{"total": n})
}

// UpdateStatus handles PATCH /api/quotes/{id}/status (admin).
func (h *QuoteHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	status, ok := parseStatusUpdate(w, r)
	if !ok {
		return
	}
	if err := h.status.UpdateStatus(r.Context(), model.CollectionQuotes, r.PathValue("id"), status); err != nil {
		writeServiceError(w, r, err, "update_failed")
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}
