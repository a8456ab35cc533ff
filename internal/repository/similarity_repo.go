package repository

import (
	"context"
	"fmt"

	"cinerec/internal/db"
	"cinerec/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// batch de inserción para no pasarse del tamaño máximo de mensaje de Mongo
const simInsertBatch = 100

// SimilarityRepository persiste la matriz de similitud, un documento por
// fila. Igual que la tabla de películas: modelbuild escribe, el API carga
// todo una vez al arrancar.
type SimilarityRepository struct {
	col *mongo.Collection
}

func NewSimilarityRepository() *SimilarityRepository {
	return &SimilarityRepository{col: db.DB().Collection("similarities")}
}

func (r *SimilarityRepository) ReplaceAll(ctx context.Context, rows []models.SimilarityDoc) error {
	if err := r.col.Drop(ctx); err != nil {
		return err
	}
	for start := 0; start < len(rows); start += simInsertBatch {
		end := start + simInsertBatch
		if end > len(rows) {
			end = len(rows)
		}
		docs := make([]interface{}, 0, end-start)
		for _, row := range rows[start:end] {
			docs = append(docs, row)
		}
		if _, err := r.col.InsertMany(ctx, docs); err != nil {
			return err
		}
	}
	return nil
}

// LoadMatrix reconstruye la matriz completa en memoria. Exige exactamente
// n filas contiguas (rowIdx 0..n-1): un hueco significa artefactos
// corruptos y es mejor negarse a arrancar que recomendar basura.
func (r *SimilarityRepository) LoadMatrix(ctx context.Context, n int) ([][]float32, error) {
	opts := options.Find().SetSort(bson.D{{Key: "rowIdx", Value: 1}})
	cur, err := r.col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	matrix := make([][]float32, 0, n)
	for cur.Next(ctx) {
		var doc models.SimilarityDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, err
		}
		if doc.RowIdx != len(matrix) {
			return nil, fmt.Errorf("fila de similitud fuera de orden: esperaba %d, vino %d", len(matrix), doc.RowIdx)
		}
		matrix = append(matrix, doc.Sims)
	}
	if err := cur.Err(); err != nil {
		return nil, err
	}
	if len(matrix) != n {
		return nil, fmt.Errorf("la matriz tiene %d filas, la tabla de películas %d", len(matrix), n)
	}
	return matrix, nil
}

func (r *SimilarityRepository) Count(ctx context.Context) (int64, error) {
	return r.col.CountDocuments(ctx, bson.M{})
}
