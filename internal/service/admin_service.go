package service

import (
	"context"

	"cinerec/internal/models"
	"cinerec/internal/recommender"
	"cinerec/internal/repository"
)

// AdminService expone el estado del modelo para mantenimiento: qué build
// está persistido en Mongo y qué dimensiones quedaron cargadas en memoria.
type AdminService struct {
	meta   *repository.ModelMetaRepository
	movies *repository.MovieRepository
	sims   *repository.SimilarityRepository
	idx    *recommender.Index
}

func NewAdminService(
	meta *repository.ModelMetaRepository,
	movies *repository.MovieRepository,
	sims *repository.SimilarityRepository,
	idx *recommender.Index,
) *AdminService {
	return &AdminService{meta: meta, movies: movies, sims: sims, idx: idx}
}

// ModelSummary es la respuesta de GET /admin/model.
type ModelSummary struct {
	Meta          *models.ModelMeta `json:"meta"`
	StoredMovies  int64             `json:"storedMovies"`
	StoredSimRows int64             `json:"storedSimRows"`
	LoadedMovies  int               `json:"loadedMovies"`
}

func (s *AdminService) Summary(ctx context.Context) (*ModelSummary, error) {
	meta, err := s.meta.Get(ctx)
	if err != nil {
		return nil, err
	}
	nMovies, err := s.movies.Count(ctx)
	if err != nil {
		return nil, err
	}
	nSims, err := s.sims.Count(ctx)
	if err != nil {
		return nil, err
	}
	return &ModelSummary{
		Meta:          meta,
		StoredMovies:  nMovies,
		StoredSimRows: nSims,
		LoadedMovies:  s.idx.Len(),
	}, nil
}
