package handler

import (
	"errors"
	"net/http"

	"github.com/devservices/backend/internal/service"
)

// AdminHandler handles admin authentication.
type AdminHandler struct {
	authService service.AdminAuthService
}

func NewAdminHandler(authService service.AdminAuthService) *AdminHandler {
	return &AdminHandler{authService: authService}
}

// An empty password is not a validation error: it is just a wrong password.
type loginRequest struct {
	Password string `json:"password"`
}

// Login handles POST /api/admin/login.
func (h *AdminHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	token, err := h.authService.Login(r.Context(), req.Password)
	if errors.Is(err, service.ErrUnauthenticated) {
		w.Header().Set("WWW-Authenticate", "Bearer")
		writeError(w, http.StatusUnauthorized, "invalid_password")
		return
	}
	if err != nil {
		writeServiceError(w, r, err, "login_failed")
		return
	}

	writeJSON(w, http.StatusOK, token)
}
