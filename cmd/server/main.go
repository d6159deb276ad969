package main

import (
	"context"
	"time"

	"github.com/JulienMartel/old-binder/internal/agent"
	"github.com/JulienMartel/old-binder/internal/config"
	"github.com/JulienMartel/old-binder/internal/handler"
	"github.com/JulienMartel/old-binder/internal/logging"
	"github.com/JulienMartel/old-binder/internal/metrics"
	"github.com/JulienMartel/old-binder/internal/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logging.Fatal().Err(err).Msg("Invalid configuration")
	}

	logging.Init(logging.Config{Level: cfg.LogLevel, Format: cfg.LogFormat})
	logging.Info().Str("env", cfg.Env).Str("provider", cfg.Provider).Msg("Starting binder")

	var svc handler.Service
	recommender, err := agent.NewRecommenderFromConfig(context.Background(), cfg)
	if err != nil {
		logging.Warn().Err(err).Msg("Failed to initialize completion client")
		logging.Warn().Msg("Author lookup and recommendations will be unavailable")
	} else {
		svc = recommender
		logging.Info().
			Str("author_model", cfg.AuthorModel).
			Str("recommend_model", cfg.RecommendModel).
			Bool("normalize", cfg.NormalizeRecommendations).
			Msg("Completion client initialized")
	}

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())

	// Security headers (before CORS)
	r.Use(middleware.SecurityHeaders())
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger())
	r.Use(metrics.Middleware())

	// cors.New rejects an empty origin list; production without ALLOWED_ORIGINS is same-origin only
	if len(cfg.AllowedOrigins) > 0 {
		r.Use(cors.New(cors.Config{
			AllowOrigins:     cfg.AllowedOrigins,
			AllowMethods:     []string{"GET", "POST", "OPTIONS"},
			AllowHeaders:     []string{"Content-Type", middleware.RequestIDHeader},
			ExposeHeaders:    []string{middleware.RequestIDHeader},
			AllowCredentials: false,
			MaxAge:           12 * time.Hour,
		}))
	}

	h := handler.New(svc, cfg.Provider)

	// Probes and metrics live outside the /api group
	h.RegisterProbes(r)
	r.GET("/metrics", metrics.Handler())

	h.RegisterRoutes(r.Group("/api"))

	logging.Info().Str("port", cfg.Port).Strs("allowed_origins", cfg.AllowedOrigins).Msg("Server ready")
	if err := r.Run(":" + cfg.Port); err != nil {
		logging.Fatal().Err(err).Msg("Failed to start server")
	}
}
