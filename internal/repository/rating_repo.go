package repository

import (
	"context"

	"cinerec/internal/db"
	"cinerec/internal/models"

	"gorm.io/gorm"
)

// RatingRepository maneja el log de ratings en SQLite.
//
// Contrato de orden: GetAllByUser devuelve los eventos por id ascendente,
// o sea en orden de inserción. El recomendador depende de ese orden para
// decidir cuál fue "el último rating alto"; no cambiarlo.
type RatingRepository struct {
	db *gorm.DB
}

func NewRatingRepository() *RatingRepository {
	return &RatingRepository{db: db.SQL()}
}

// Insert agrega un evento nuevo. Nunca se actualiza en sitio: recalificar
// una película inserta otra fila y la vuelve "lo más reciente".
func (r *RatingRepository) Insert(ctx context.Context, rating *models.Rating) error {
	return r.db.WithContext(ctx).Create(rating).Error
}

func (r *RatingRepository) GetByUser(ctx context.Context, userID uint, limit, offset int) ([]models.Rating, error) {
	var out []models.Rating
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("id ASC").
		Limit(limit).
		Offset(offset).
		Find(&out).Error
	return out, err
}

func (r *RatingRepository) GetAllByUser(ctx context.Context, userID uint) ([]models.Rating, error) {
	return r.GetByUser(ctx, userID, 10000, 0)
}
