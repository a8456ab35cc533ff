package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"cinerec/internal/cache"
	"cinerec/internal/models"
	"cinerec/internal/recommender"
	"cinerec/internal/repository"
)

const (
	DefaultK = 5
	MaxK     = 20 // por seguridad, no deja pedir 1000 ítems
)

type RecommendService struct {
	rec     *recommender.Recommender
	idx     *recommender.Index
	ratings *repository.RatingRepository
	users   *repository.UserRepository
	recRepo *repository.RecommendationRepository
}

func NewRecommendService(
	idx *recommender.Index,
	ratings *repository.RatingRepository,
	users *repository.UserRepository,
	recRepo *repository.RecommendationRepository,
) *RecommendService {
	return &RecommendService{
		rec:     recommender.New(idx),
		idx:     idx,
		ratings: ratings,
		users:   users,
		recRepo: recRepo,
	}
}

// ====== Petición de recomendaciones ======

type RecRequest struct {
	UserID  uint
	K       int
	Refresh bool
}

func cacheKey(req RecRequest) string {
	// Cachea por usuario + k (refresh solo decide si usar cache)
	return fmt.Sprintf("rec:user:%d:k:%d", req.UserID, req.K)
}

// Recommend arma la vista de preferencias del usuario (ratings en orden de
// inserción + géneros declarados) y corre la cadena de estrategias.
func (s *RecommendService) Recommend(ctx context.Context, req RecRequest) (*recommender.Result, error) {
	// defaults y límites para K
	if req.K <= 0 {
		req.K = DefaultK
	} else if req.K > MaxK {
		req.K = MaxK
	}

	// 1) Cache Redis (solo si refresh = false)
	if !req.Refresh {
		var cached recommender.Result
		if ok, err := cache.GetJSON(ctx, cacheKey(req), &cached); err == nil && ok {
			return &cached, nil
		}
	}

	// 2) Vista de preferencias: snapshot de solo lectura para este request
	ratings, err := s.ratings.GetAllByUser(ctx, req.UserID)
	if err != nil {
		return nil, err
	}
	events := make([]recommender.RatingEvent, 0, len(ratings))
	for _, r := range ratings {
		events = append(events, recommender.RatingEvent{MovieID: r.MovieID, Rating: r.Rating})
	}

	user, err := s.users.FindByID(ctx, req.UserID)
	if err != nil {
		return nil, err
	}
	var genres []string
	if user != nil {
		genres = SplitGenres(user.PreferredGenres)
	}

	// 3) Cadena de estrategias (nunca falla, en el peor caso trending)
	result := s.rec.ForUser(recommender.PreferenceView{
		Ratings:         events,
		PreferredGenres: genres,
	}, req.K)

	// 4) Guardar historial en Mongo (no rompemos la respuesta si falla)
	if s.recRepo != nil {
		hist := &models.Recommendation{
			UserID:   req.UserID,
			Strategy: result.Strategy,
			Params: map[string]any{
				"k":       req.K,
				"refresh": req.Refresh,
			},
			Items:     result.Items,
			CreatedAt: time.Now(),
		}
		if err := s.recRepo.Insert(ctx, hist); err != nil {
			log.Printf("error guardando recomendación en Mongo: %v", err)
		}
	}

	// 5) Cachear en Redis (1 hora)
	if err := cache.SetJSON(ctx, cacheKey(req), result, 60*60); err != nil {
		log.Printf("error cacheando recomendación en Redis: %v", err)
	}

	return result, nil
}

// History devuelve las últimas recomendaciones que se le sirvieron al
// usuario (el log de Mongo), más recientes primero.
func (s *RecommendService) History(ctx context.Context, userID uint, limit int64) ([]models.Recommendation, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	return s.recRepo.FindByUser(ctx, userID, limit)
}

// ====== Lookup plano por título ======

// SimilarTo no usa estado de usuario: es la búsqueda clásica
// "películas parecidas a X". Título desconocido -> ErrMovieNotFound.
func (s *RecommendService) SimilarTo(title string, k int) ([]models.RecItem, error) {
	if k <= 0 {
		k = DefaultK
	} else if k > MaxK {
		k = MaxK
	}
	return s.idx.SimilarByTitle(title, k)
}
