package main

import (
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/gin-gonic/gin"

	"recipehub/database"
	"recipehub/internal/cache"
	"recipehub/internal/config"
	"recipehub/internal/handler"
	"recipehub/internal/middleware"
	"recipehub/internal/recommender"
	"recipehub/internal/repository"
	"recipehub/internal/service"
)

func main() {
	// Load config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("could not load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid config: %v", err)
	}

	logger := newLogger(cfg)

	// Connect to the database
	db, err := database.ConnectDB(cfg, logger)
	if err != nil {
		log.Fatalf("could not connect to database: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("could not get database instance: %v", err)
	}
	defer sqlDB.Close()

	// Redis is optional: without it search simply skips the cache.
	var cacheStore cache.Store
	if cfg.RedisURL != "" {
		redisStore, err := cache.NewRedisStore(cfg.RedisURL, cfg.RedisPassword)
		if err != nil {
			logger.Warn("Redis unavailable, running without cache", "error", err)
		} else {
			defer redisStore.Close()
			cacheStore = redisStore
		}
	}

	// Repositories
	userRepo := repository.NewUserRepository(db)
	recipeRepo := repository.NewRecipeRepository(db)
	reviewRepo := repository.NewReviewRepository(db)

	// Engine and services
	engine := recommender.New(reviewRepo, recipeRepo, reviewRepo)
	authService := service.NewAuthService(userRepo, cfg)
	recService := service.NewRecommendationService(engine, recipeRepo, reviewRepo)
	searchService := service.NewSearchService(recipeRepo, cacheStore, cfg.CacheTTL)

	// Setup Gin
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.Default()

	r.GET("/check-conn", func(c *gin.Context) {
		if err := sqlDB.Ping(); err != nil {
			c.JSON(503, gin.H{"error": "database unreachable"})
			return
		}
		c.JSON(200, gin.H{"message": "API is alive and database connected"})
	})

	api := r.Group("/api")
	handler.NewAuthHandler(authService).RegisterRoutes(api.Group("/auth"))

	authed := api.Group("")
	authed.Use(middleware.AuthMiddleware(authService))
	handler.NewRecommendationHandler(recService).RegisterRoutes(authed)
	handler.NewRecipeHandler(recipeRepo, searchService).RegisterRoutes(authed)

	addr := fmt.Sprintf(":%d", cfg.HTTPPort)
	logger.Info("Server starting", "addr", addr)
	if err := r.Run(addr); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}

func newLogger(cfg *config.Config) *slog.Logger {
	level := slog.LevelDebug
	switch cfg.LogLevel {
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}
	opts := &slog.HandlerOptions{Level: level}
	if cfg.LogFormat == "json" {
		return slog.New(slog.NewJSONHandler(os.Stdout, opts))
	}
	return slog.New(slog.NewTextHandler(os.Stdout, opts))
}
