package handler

import (
	"net/http"

	"github.com/devservices/backend/internal/model"
	"github.com/devservices/backend/internal/service"
)

// CatalogHandler handles the service catalogue endpoints.
type CatalogHandler struct {
	catalog service.CatalogService
}

func NewCatalogHandler(catalog service.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalog: catalog}
}

type createServiceRequest struct {
	Name        string   `json:"name" validate:"required,max=200"`
	Description string   `json:"description" validate:"required,max=5000"`
	Features    []string `json:"features" validate:"required,max=50,dive,max=500"`
	Icon        string   `json:"icon" validate:"required,max=100"`
}

// List handles GET /api/services.
func (h *CatalogHandler) List(w http.ResponseWriter, r *http.Request) {
	services, err := h.catalog.List(r.Context())
	if err != nil {
		writeServiceError(w, r, err, "list_failed")
		return
	}
	if services == nil {
		services = []*model.Service{}
	}
	writeJSON(w, http.StatusOK, services)
}

// Create handles POST /api/services.
func (h *CatalogHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createServiceRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	svc := &model.Service{
		Name:        req.Name,
		Description: req.Description,
		Features:    req.Features,
		Icon:        req.Icon,
	}
	if err := h.catalog.Create(r.Context(), svc); err != nil {
		writeServiceError(w, r, err, "create_failed")
		return
	}
	writeJSON(w, http.StatusOK, svc)
}
