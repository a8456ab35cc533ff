package repository

import (
	"context"

	"cinerec/internal/db"
	"cinerec/internal/models"

	"gorm.io/gorm"
)

// HistoryRepository maneja el log de reproducciones en SQLite.
type HistoryRepository struct {
	db *gorm.DB
}

func NewHistoryRepository() *HistoryRepository {
	return &HistoryRepository{db: db.SQL()}
}

func (r *HistoryRepository) Insert(ctx context.Context, entry *models.WatchHistory) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

func (r *HistoryRepository) GetByUser(ctx context.Context, userID uint, limit, offset int) ([]models.WatchHistory, error) {
	var out []models.WatchHistory
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("id DESC").
		Limit(limit).
		Offset(offset).
		Find(&out).Error
	return out, err
}
