package service

import (
	"context"
	"fmt"

	"cinerec/internal/models"
	"cinerec/internal/recommender"
	"cinerec/internal/repository"
)

type HistoryService struct {
	history *repository.HistoryRepository
	idx     *recommender.Index
}

func NewHistoryService(h *repository.HistoryRepository, idx *recommender.Index) *HistoryService {
	return &HistoryService{history: h, idx: idx}
}

// Log registra que el usuario vio una película del catálogo.
func (s *HistoryService) Log(ctx context.Context, userID uint, movieID int) error {
	if _, ok := s.idx.RowByMovieID(movieID); !ok {
		return fmt.Errorf("movie %d not in catalog", movieID)
	}
	return s.history.Insert(ctx, &models.WatchHistory{
		UserID:  userID,
		MovieID: movieID,
	})
}

func (s *HistoryService) GetByUser(ctx context.Context, userID uint, limit, offset int) ([]models.WatchHistory, error) {
	if limit <= 0 || limit > 500 {
		limit = 100
	}
	return s.history.GetByUser(ctx, userID, limit, offset)
}
