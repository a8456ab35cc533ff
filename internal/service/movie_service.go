package service

import (
	"strings"

	"cinerec/internal/models"
	"cinerec/internal/recommender"
)

// MovieService sirve lecturas del catálogo directamente del índice en
// memoria: la tabla es inmutable durante la vida del proceso, así que no
// hay viaje a Mongo por request.
type MovieService struct {
	idx *recommender.Index
}

func NewMovieService(idx *recommender.Index) *MovieService {
	return &MovieService{idx: idx}
}

func (s *MovieService) GetByID(movieID int) (*models.MovieDoc, bool) {
	row, ok := s.idx.RowByMovieID(movieID)
	if !ok {
		return nil, false
	}
	m := s.idx.MovieAt(row)
	return &m, true
}

// Search filtra por substring del título (case-insensitive) y/o por token
// de género canónico, en orden de tabla.
func (s *MovieService) Search(q, genre string, limit int) []models.MovieDoc {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	q = strings.ToLower(q)

	out := []models.MovieDoc{}
	for i := 0; i < s.idx.Len() && len(out) < limit; i++ {
		m := s.idx.MovieAt(i)
		if q != "" && !strings.Contains(strings.ToLower(m.Title), q) {
			continue
		}
		if genre != "" && !containsToken(m.Genres, genre) {
			continue
		}
		out = append(out, m)
	}
	return out
}

// Genres expone el menú de géneros canónicos para el onboarding.
func (s *MovieService) Genres() []string {
	return s.idx.Genres()
}

func containsToken(tokens []string, want string) bool {
	for _, t := range tokens {
		if t == want {
			return true
		}
	}
	return false
}
