package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"cinerec/internal/service"
)

type HistoryHandler struct {
	svc *service.HistoryService
}

func NewHistoryHandler(s *service.HistoryService) *HistoryHandler { return &HistoryHandler{svc: s} }

type historyRequest struct {
	MovieID int `json:"movieId"`
}

// @Summary Registrar visualización
// @Tags history
// @Accept json
// @Security BearerAuth
// @Param body body historyRequest true "película vista"
// @Success 204
// @Router /me/history [post]
func (h *HistoryHandler) PostMyHistory(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	userID := UserIDFromContext(r.Context())

	var req historyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), 400)
		return
	}
	if err := h.svc.Log(r.Context(), userID, req.MovieID); err != nil {
		http.Error(w, err.Error(), 400)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// @Summary Listar historial de visualizaciones
// @Tags history
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.WatchHistory
// @Router /me/history [get]
func (h *HistoryHandler) GetMyHistory(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	userID := UserIDFromContext(r.Context())

	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))

	list, err := h.svc.GetByUser(r.Context(), userID, limit, offset)
	if err != nil {
		http.Error(w, err.Error(), 500)
		return
	}
	_ = json.NewEncoder(w).Encode(list)
}
