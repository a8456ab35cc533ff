package repository

import (
	"context"

	"cinerec/internal/db"
	"cinerec/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MovieRepository persiste la tabla de películas del modelo en Mongo.
// La escribe cmd/modelbuild; el API solo la lee completa al arrancar.
type MovieRepository struct {
	col *mongo.Collection
}

func NewMovieRepository() *MovieRepository {
	return &MovieRepository{col: db.DB().Collection("movies")}
}

// ReplaceAll reemplaza la colección entera por el build nuevo.
// No hay camino incremental: o se reemplaza todo o nada.
func (r *MovieRepository) ReplaceAll(ctx context.Context, movies []models.MovieDoc) error {
	if err := r.col.Drop(ctx); err != nil {
		return err
	}
	docs := make([]interface{}, len(movies))
	for i, m := range movies {
		docs[i] = m
	}
	_, err := r.col.InsertMany(ctx, docs)
	return err
}

// LoadAll devuelve la tabla completa ordenada por rowIdx; ese orden tiene
// que coincidir fila a fila con la matriz de similitud.
func (r *MovieRepository) LoadAll(ctx context.Context) ([]models.MovieDoc, error) {
	opts := options.Find().SetSort(bson.D{{Key: "rowIdx", Value: 1}})
	cur, err := r.col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []models.MovieDoc
	for cur.Next(ctx) {
		var m models.MovieDoc
		if err := cur.Decode(&m); err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, cur.Err()
}

func (r *MovieRepository) Count(ctx context.Context) (int64, error) {
	return r.col.CountDocuments(ctx, bson.M{})
}
