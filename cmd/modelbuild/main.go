package main

import (
	"context"
	"log"
	"time"

	"cinerec/internal/config"
	"cinerec/internal/db"
	"cinerec/internal/models"
	"cinerec/internal/pipeline"
	"cinerec/internal/repository"
)

// modelbuild es el pipeline batch offline: CSV crudos -> features ->
// vectorización -> matriz de similitud -> artefactos en Mongo.
//
// Corre de una sola pasada, mono-hilo, sin checkpoints: cualquier error
// irrecuperable aborta y se vuelve a correr desde cero. El API hay que
// reiniciarlo después de cada build para que cargue el modelo nuevo.
func main() {
	start := time.Now()
	cfg := config.Load()
	db.InitMongo(cfg)

	// 1) Merge de los CSV de TMDB (fatal si el corpus no se puede leer)
	log.Printf("[modelbuild] leyendo %s + %s", cfg.MoviesCSV, cfg.CreditsCSV)
	raws, err := pipeline.LoadDataset(cfg.MoviesCSV, cfg.CreditsCSV)
	if err != nil {
		log.Fatalf("[modelbuild] error cargando dataset: %v", err)
	}
	log.Printf("[modelbuild] %d películas después del merge", len(raws))

	// 2) Feature builder: tags canónicos por película
	records := pipeline.BuildRecords(raws)

	// 3) Vectorización con vocabulario acotado
	docs := make([]string, len(records))
	for i, rec := range records {
		docs[i] = rec.TagBag
	}
	vec := pipeline.NewVectorizer(cfg.VocabMax)
	vec.Fit(docs)
	vectors := vec.TransformAll(docs)
	log.Printf("[modelbuild] vocabulario: %d términos (tope %d)", vec.VocabSize(), cfg.VocabMax)

	// 4) Matriz de similitud coseno completa
	log.Printf("[modelbuild] calculando matriz %dx%d…", len(records), len(records))
	matrix := pipeline.CosineMatrix(vectors)

	// 5) Persistir artefactos (reemplazo total, nunca incremental)
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	movieRepo := repository.NewMovieRepository()
	simRepo := repository.NewSimilarityRepository()
	metaRepo := repository.NewModelMetaRepository()

	if err := movieRepo.ReplaceAll(ctx, records); err != nil {
		log.Fatalf("[modelbuild] error guardando tabla de películas: %v", err)
	}

	simRows := make([]models.SimilarityDoc, len(matrix))
	for i, row := range matrix {
		simRows[i] = models.SimilarityDoc{
			RowIdx:  i,
			MovieID: records[i].MovieID,
			Sims:    row,
		}
	}
	if err := simRepo.ReplaceAll(ctx, simRows); err != nil {
		log.Fatalf("[modelbuild] error guardando matriz: %v", err)
	}

	meta := &models.ModelMeta{
		Metric:     "cosine",
		MovieCount: len(records),
		VocabMax:   cfg.VocabMax,
		VocabSize:  vec.VocabSize(),
		BuiltAt:    time.Now().UTC().Format(time.RFC3339),
	}
	if err := metaRepo.Save(ctx, meta); err != nil {
		log.Fatalf("[modelbuild] error guardando metadata: %v", err)
	}

	log.Printf("✅ Modelo construido en %s: %d películas, reiniciar el API para cargarlo.",
		time.Since(start).Round(time.Second), len(records))
}
