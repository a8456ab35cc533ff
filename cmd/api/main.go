package main

import (
	"context"
	"log"
	"net/http"
	"time"

	_ "cinerec/docs" // swagger docs

	"cinerec/internal/cache"
	"cinerec/internal/config"
	"cinerec/internal/db"
	"cinerec/internal/handler"
	"cinerec/internal/recommender"
	"cinerec/internal/repository"
	"cinerec/internal/service"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger"
)

// @title Cinerec Movie Recommender API
// @version 1.0
// @description API de recomendaciones (content-based + híbrido, Mongo, Redis, SQLite)
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg := config.Load()

	// Mongo (artefactos del modelo), Redis (cache) y SQLite (estado de usuarios)
	db.InitMongo(cfg)
	cache.InitRedis(cfg)
	db.InitSQLite(cfg)

	// repos
	userRepo := repository.NewUserRepository()
	ratingRepo := repository.NewRatingRepository()
	historyRepo := repository.NewHistoryRepository()
	movieRepo := repository.NewMovieRepository()
	simRepo := repository.NewSimilarityRepository()
	metaRepo := repository.NewModelMetaRepository()
	recRepo := repository.NewRecommendationRepository()

	// ============================
	// Cargar artefactos del modelo
	// ============================
	// Se cargan UNA vez acá y quedan inmutables: un refresh del dataset
	// implica correr cmd/modelbuild de nuevo y reiniciar el API.
	loadCtx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	movies, err := movieRepo.LoadAll(loadCtx)
	if err != nil {
		log.Fatalf("[api] error cargando tabla de películas: %v", err)
	}
	if len(movies) == 0 {
		log.Fatalf("[api] no hay modelo en Mongo: correr cmd/modelbuild primero")
	}

	matrix, err := simRepo.LoadMatrix(loadCtx, len(movies))
	if err != nil {
		log.Fatalf("[api] error cargando matriz de similitud: %v", err)
	}

	idx, err := recommender.NewIndex(movies, matrix)
	if err != nil {
		log.Fatalf("[api] artefactos inconsistentes: %v", err)
	}
	log.Printf("[api] modelo cargado: %d películas, matriz %dx%d", idx.Len(), idx.Len(), idx.Len())

	// services
	authSvc := service.NewAuthService(userRepo, cfg.JWTSecret)
	movieSvc := service.NewMovieService(idx)
	ratingSvc := service.NewRatingService(ratingRepo, idx)
	historySvc := service.NewHistoryService(historyRepo, idx)
	recSvc := service.NewRecommendService(idx, ratingRepo, userRepo, recRepo)
	adminSvc := service.NewAdminService(metaRepo, movieRepo, simRepo, idx)

	// handlers
	authH := handler.NewAuthHandler(authSvc)
	movieH := handler.NewMovieHandler(movieSvc)
	ratingH := handler.NewRatingHandler(ratingSvc)
	historyH := handler.NewHistoryHandler(historySvc)
	recH := handler.NewRecommendHandler(recSvc)
	adminH := handler.NewAdminHandler(adminSvc)

	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: false,
	}))

	// =============
	// Rutas públicas
	// =============
	r.Get("/health", handler.Health)

	r.Post("/auth/register", authH.Register)
	r.Post("/auth/login", authH.Login)

	// Catálogo (público, sale del índice en memoria)
	r.Get("/movies/search", movieH.Search)
	r.Get("/movies/{id}", movieH.GetMovie)
	r.Get("/genres", movieH.Genres)

	// Lookup plano por título, sin estado de usuario
	r.Get("/recommend/similar", recH.GetSimilar)

	// ===========================
	// Rutas protegidas con JWT
	// ===========================
	authMw := handler.JWTAuth(cfg.JWTSecret)

	r.Group(func(r chi.Router) {
		r.Use(authMw)

		// ---- Endpoints /me (USER normal) ----
		r.Route("/me", func(r chi.Router) {
			r.Get("/", authH.GetMe)
			r.Put("/genres", authH.UpdateMyGenres)
			r.Get("/ratings", ratingH.GetMyRatings)
			r.Post("/ratings", ratingH.PostMyRating)
			r.Get("/history", historyH.GetMyHistory)
			r.Post("/history", historyH.PostMyHistory)
			r.Get("/recommendations", recH.GetMyRecommendations)

			// WebSocket
			r.Get("/ws/recommendations", recH.GetMyRecommendationsWS)
		})

		// ---- Endpoints solo ADMIN ----
		r.Group(func(r chi.Router) {
			r.Use(handler.AdminOnly())

			r.Get("/users", authH.ListUsers)
			r.Route("/users/{id}", func(r chi.Router) {
				r.Get("/", authH.GetUserByID)
				r.Get("/recommendations", recH.GetRecommendations)
				r.Get("/recommendations/history", recH.GetRecommendationHistory)
			})

			// estado del modelo
			r.Get("/admin/model", adminH.GetModelSummary)
		})
	})

	// Swagger UI
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	log.Printf("HTTP escuchando en :%s", cfg.HTTPPort)
	log.Fatal(http.ListenAndServe(":"+cfg.HTTPPort, r))
}
