package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"cinerec/internal/service"

	"github.com/go-chi/chi/v5"
)

type MovieHandler struct {
	svc *service.MovieService
}

func NewMovieHandler(s *service.MovieService) *MovieHandler {
	return &MovieHandler{svc: s}
}

// @Summary Obtener película por movieId
// @Tags movies
// @Produce json
// @Param id path int true "movieId"
// @Success 200 {object} models.MovieDoc
// @Router /movies/{id} [get]
func (h *MovieHandler) GetMovie(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	id, _ := strconv.Atoi(chi.URLParam(r, "id"))
	m, ok := h.svc.GetByID(id)
	if !ok {
		http.Error(w, "movie not found", 404)
		return
	}
	_ = json.NewEncoder(w).Encode(m)
}

// @Summary Buscar películas del catálogo
// @Tags movies
// @Produce json
// @Param q query string false "substring del título"
// @Param genre query string false "token de género canónico"
// @Param limit query int false "máximo de resultados"
// @Success 200 {array} models.MovieDoc
// @Router /movies/search [get]
func (h *MovieHandler) Search(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	q := r.URL.Query().Get("q")
	genre := r.URL.Query().Get("genre")
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	_ = json.NewEncoder(w).Encode(h.svc.Search(q, genre, limit))
}

// @Summary Lista de géneros del dataset (menú de onboarding)
// @Tags movies
// @Produce json
// @Success 200 {array} string
// @Router /genres [get]
func (h *MovieHandler) Genres(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(h.svc.Genres())
}
