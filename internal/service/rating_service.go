package service

import (
	"context"
	"fmt"

	"cinerec/internal/models"
	"cinerec/internal/recommender"
	"cinerec/internal/repository"
)

type RatingService struct {
	ratings *repository.RatingRepository
	idx     *recommender.Index
}

func NewRatingService(r *repository.RatingRepository, idx *recommender.Index) *RatingService {
	return &RatingService{ratings: r, idx: idx}
}

// Add registra un evento de rating. Validamos contra el índice en memoria,
// no contra Mongo: si la película no está en el modelo tampoco serviría
// para recomendar.
func (s *RatingService) Add(ctx context.Context, userID uint, movieID int, rating float64) error {
	if rating < 0 || rating > 5 {
		return fmt.Errorf("rating must be between 0 and 5")
	}
	if _, ok := s.idx.RowByMovieID(movieID); !ok {
		return fmt.Errorf("movie %d not in catalog", movieID)
	}
	return s.ratings.Insert(ctx, &models.Rating{
		UserID:  userID,
		MovieID: movieID,
		Rating:  rating,
	})
}

func (s *RatingService) GetByUser(ctx context.Context, userID uint, limit, offset int) ([]models.Rating, error) {
	if limit <= 0 || limit > 500 {
		limit = 100
	}
	return s.ratings.GetByUser(ctx, userID, limit, offset)
}
