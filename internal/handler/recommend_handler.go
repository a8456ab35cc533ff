package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"cinerec/internal/recommender"
	"cinerec/internal/service"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"
)

type RecommendHandler struct {
	svc *service.RecommendService
}

func NewRecommendHandler(s *service.RecommendService) *RecommendHandler {
	return &RecommendHandler{svc: s}
}

// @Summary Recomendaciones híbridas para el usuario autenticado
// @Tags recommend
// @Produce json
// @Security BearerAuth
// @Param k query int false "cantidad de recomendaciones (máx 20)"
// @Param refresh query bool false "si true, ignora cache Redis"
// @Success 200 {object} recommender.Result
// @Router /me/recommendations [get]
func (h *RecommendHandler) GetMyRecommendations(w http.ResponseWriter, r *http.Request) {
	h.serveRecommendations(w, r, UserIDFromContext(r.Context()))
}

// @Summary Recomendaciones de cualquier usuario (admin)
// @Tags recommend
// @Produce json
// @Security BearerAuth
// @Param id path int true "userId"
// @Param k query int false "cantidad de recomendaciones (máx 20)"
// @Param refresh query bool false "si true, ignora cache Redis"
// @Success 200 {object} recommender.Result
// @Router /users/{id}/recommendations [get]
func (h *RecommendHandler) GetRecommendations(w http.ResponseWriter, r *http.Request) {
	userID, _ := strconv.Atoi(chi.URLParam(r, "id"))
	h.serveRecommendations(w, r, uint(userID))
}

// @Summary Historial de recomendaciones servidas a un usuario (admin)
// @Tags recommend
// @Produce json
// @Security BearerAuth
// @Param id path int true "userId"
// @Param limit query int false "cantidad de entradas (máx 100)"
// @Success 200 {array} models.Recommendation
// @Router /users/{id}/recommendations/history [get]
func (h *RecommendHandler) GetRecommendationHistory(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	userID, _ := strconv.Atoi(chi.URLParam(r, "id"))
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	list, err := h.svc.History(r.Context(), uint(userID), int64(limit))
	if err != nil {
		http.Error(w, err.Error(), 500)
		return
	}
	_ = json.NewEncoder(w).Encode(list)
}

func (h *RecommendHandler) serveRecommendations(w http.ResponseWriter, r *http.Request, userID uint) {
	w.Header().Set("Content-Type", "application/json")

	k, _ := strconv.Atoi(r.URL.Query().Get("k"))
	refresh := r.URL.Query().Get("refresh") == "true"

	result, err := h.svc.Recommend(r.Context(), service.RecRequest{
		UserID:  userID,
		K:       k,
		Refresh: refresh,
	})
	if err != nil {
		http.Error(w, err.Error(), 500)
		return
	}
	_ = json.NewEncoder(w).Encode(result)
}

// @Summary Películas similares a un título (sin estado de usuario)
// @Tags recommend
// @Produce json
// @Param title query string true "título exacto"
// @Param k query int false "cantidad de resultados (máx 20)"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {string} string "movie not found"
// @Router /recommend/similar [get]
func (h *RecommendHandler) GetSimilar(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	title := r.URL.Query().Get("title")
	k, _ := strconv.Atoi(r.URL.Query().Get("k"))

	items, err := h.svc.SimilarTo(title, k)
	if err != nil {
		if errors.Is(err, recommender.ErrMovieNotFound) {
			http.Error(w, "movie not found", 404)
			return
		}
		http.Error(w, err.Error(), 500)
		return
	}

	_ = json.NewEncoder(w).Encode(map[string]any{
		"input_movie":     title,
		"recommendations": items,
	})
}

// upgrader global (no afecta a swagger)
var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// @Summary Recomendaciones en tiempo real (WebSocket)
// @Tags recommend
// @Produce json
// @Security BearerAuth
// @Param k query int false "cantidad de recomendaciones (máx 20)"
// @Param refresh query bool false "si true, ignora cache Redis"
// @Success 200 {object} map[string]interface{}
// @Router /me/ws/recommendations [get]
func (h *RecommendHandler) GetMyRecommendationsWS(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		http.Error(w, "No se pudo abrir WebSocket", 400)
		return
	}
	defer conn.Close()

	userID := UserIDFromContext(r.Context())
	k, _ := strconv.Atoi(r.URL.Query().Get("k"))
	refresh := r.URL.Query().Get("refresh") == "true"

	// Mensaje inicial
	conn.WriteJSON(map[string]any{
		"type": "start",
		"msg":  "Conexión WS abierta, consultando preferencias…",
	})

	result, err := h.svc.Recommend(r.Context(), service.RecRequest{
		UserID:  userID,
		K:       k,
		Refresh: refresh,
	})
	if err != nil {
		conn.WriteJSON(map[string]any{
			"type":  "error",
			"error": err.Error(),
		})
		return
	}

	// Mensaje final: estrategia elegida + items
	conn.WriteJSON(map[string]any{
		"type":        "recommendations",
		"userId":      userID,
		"strategy":    result.Strategy,
		"items":       result.Items,
		"generatedAt": time.Now(),
	})
}
