package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	config "github.com/culinara/recipe-service/configs"
	"github.com/culinara/recipe-service/internal/application/services"
	"github.com/culinara/recipe-service/internal/core/ports"
	"github.com/culinara/recipe-service/internal/infrastructure/db"
	"github.com/culinara/recipe-service/internal/infrastructure/health"
	"github.com/culinara/recipe-service/internal/infrastructure/httpserver"
	"github.com/culinara/recipe-service/internal/infrastructure/redis"
	"github.com/culinara/recipe-service/internal/infrastructure/repositories"
	"github.com/sirupsen/logrus"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	// Setup logger
	logger := logrus.New()
	if cfg.Log.Format == "json" {
		logger.SetFormatter(&logrus.JSONFormatter{})
	}
	level, err := logrus.ParseLevel(cfg.Log.Level)
	if err != nil {
		logger.SetLevel(logrus.InfoLevel)
	} else {
		logger.SetLevel(level)
	}

	logger.Info("Starting recipe service...")

	// Initialize database (apply pool settings from config)
	database, err := db.NewDatabaseWithConfig(&cfg.Database)
	if err != nil {
		logger.Fatal("Failed to connect to database:", err)
	}
	defer database.Close()

	logger.Info("Connected to database successfully")

	// Run migrations
	if err := database.Migrate("./migrations"); err != nil {
		logger.Warn("Failed to run migrations:", err)
	}

	// Initialize Redis; the cache is optional, so a connection failure only
	// degrades list reads to store-only mode.
	var cache ports.Cache
	redisClient, err := redis.NewRedisClient(&cfg.Redis)
	if err != nil {
		logger.WithError(err).Warn("Failed to connect to Redis, running without cache")
	} else {
		defer redisClient.Close()
		cache = redis.NewRedisCache(redisClient, cfg.Cache.KeyPrefix)
		logger.Info("Connected to Redis successfully")
	}

	// Wire repository and service
	recipeRepo := repositories.NewRecipeRepository(database, logger)
	recipeService := services.NewRecipeService(recipeRepo, cache, cfg.Cache.ListTTL, logger)

	hcSlice := []ports.HealthChecker{health.NewDBHealthChecker(database)}
	if redisClient != nil {
		hcSlice = append(hcSlice, health.NewRedisHealthChecker(redisClient))
	}

	// Create server configuration
	serverConfig := &httpserver.ServerConfig{
		Host:         cfg.Server.Host,
		Port:         cfg.Server.Port,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	deps := httpserver.ServerDeps{
		RecipeService:  recipeService,
		HealthCheckers: hcSlice,
	}

	server := httpserver.NewServer(serverConfig, logger, deps)

	// Start server in a goroutine
	go func() {
		if err := server.Start(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server:", err)
		}
	}()

	logger.Infof("Server started on %s:%s", cfg.Server.Host, cfg.Server.Port)

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.Fatal("Server forced to shutdown:", err)
	}

	logger.Info("Server exited")
}
