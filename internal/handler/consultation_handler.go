package handler

import (
	"net/http"

	"github.com/devservices/backend/internal/model"
	"github.com/devservices/backend/internal/service"
)

// ConsultationHandler はコンサルテーション予約の HTTP ハンドラ
type ConsultationHandler struct {
	consultations service.ConsultationService
	status        service.StatusService
}

func NewConsultationHandler(consultations service.ConsultationService, status service.StatusService) *ConsultationHandler {
	return &ConsultationHandler{consultations: consultations, status: status}
}

type consultationRequest struct {
	Name          string  `json:"name" validate:"required,max=200"`
	Email         string  `json:"email" validate:"required,email,max=254"`
	Phone         *string `json:"phone" validate:"omitempty,max=50"`
	PreferredDate string  `json:"preferred_date" validate:"required,max=50"`
	PreferredTime string  `json:"preferred_time" validate:"required,max=50"`
	Topic         string  `json:"topic" validate:"required,max=200"`
	Message       *string `json:"message" validate:"omitempty,max=5000"`
}

// Submit handles POST /api/consultations.
func (h *ConsultationHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req consultationRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	c := &model.ConsultationBooking{
		Name:          req.Name,
		Email:         req.Email,
		Phone:         req.Phone,
		PreferredDate: req.PreferredDate,
		PreferredTime: req.PreferredTime,
		Topic:         req.Topic,
		Message:       req.Message,
	}
	if err := h.consultations.Submit(r.Context(), c); err != nil {
		writeServiceError(w, r, err, "submit_failed")
		return
	}
	writeJSON(w, http.StatusOK, c)
}

// List handles GET /api/consultations (admin).
func (h *ConsultationHandler) List(w http.ResponseWriter, r *http.Request) {
	opts, ok := parseListOptions(w, r)
	if !ok {
		return
	}

	list, err := h.consultations.List(r.Context(), opts)
	if err != nil {
		writeServiceError(w, r, err, "list_failed")
		return
	}
	if list == nil {
		list = []*model.ConsultationBooking{}
	}
	writeJSON(w, http.StatusOK, list)
}

// Get handles GET /api/consultations/{id} (admin).
func (h *ConsultationHandler) Get(w http.ResponseWriter, r *http.Request) {
	c, err := h.consultations.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		writeServiceError(w, r, err, "get_failed")
		return
	}
	writeJSON(w, http.StatusOK, c)
}

// Count handles GET /api/consultations/count (admin).
func (h *ConsultationHandler) Count(w http.ResponseWriter, r *http.Request) {
	n, err := h.consultations.Count(r.Context())
	if err != nil {
		writeServiceError(w, r, err, "count_failed")
		return
	}
	writeJSON(w, http.StatusOK, map[string]int64{"total": n})
}

// UpdateStatus handles PATCH /api/consultations/{id}/status (admin).
func (h *ConsultationHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	status, ok := parseStatusUpdate(w, r)
	if !ok {
		return
	}
	if err := h.status.UpdateStatus(r.Context(), model.CollectionConsultations, r.PathValue("id"), status); err != nil {
		writeServiceError(w, r, err, "update_failed")
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}
