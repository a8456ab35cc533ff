package handler

import (
	"encoding/json"
	"net/http"

	"cinerec/internal/service"
)

type AdminHandler struct {
	svc *service.AdminService
}

func NewAdminHandler(s *service.AdminService) *AdminHandler {
	return &AdminHandler{svc: s}
}

// @Summary Estado del modelo (admin)
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} service.ModelSummary
// @Router /admin/model [get]
func (h *AdminHandler) GetModelSummary(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	summary, err := h.svc.Summary(r.Context())
	if err != nil {
		http.Error(w, err.Error(), 500)
		return
	}
	_ = json.NewEncoder(w).Encode(summary)
}
