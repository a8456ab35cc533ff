package repository

import (
	"context"

	"cinerec/internal/db"
	"cinerec/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// ModelMetaRepository guarda el resumen del último build (un solo doc).
type ModelMetaRepository struct {
	col *mongo.Collection
}

func NewModelMetaRepository() *ModelMetaRepository {
	return &ModelMetaRepository{col: db.DB().Collection("model_meta")}
}

func (r *ModelMetaRepository) Save(ctx context.Context, meta *models.ModelMeta) error {
	if err := r.col.Drop(ctx); err != nil {
		return err
	}
	_, err := r.col.InsertOne(ctx, meta)
	return err
}

func (r *ModelMetaRepository) Get(ctx context.Context) (*models.ModelMeta, error) {
	var meta models.ModelMeta
	err := r.col.FindOne(ctx, bson.M{}).Decode(&meta)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &meta, nil
}
