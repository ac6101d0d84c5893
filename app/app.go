// File: app/app.go
package app

import (
	"context"
	"database/sql"
	"go-charts-api/config"
	"go-charts-api/db"
	"go-charts-api/handler"
	"go-charts-api/logger"
	"go-charts-api/repository"
	"go-charts-api/router"
	"go-charts-api/service"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
)

func Run() {
	config.LoadConfig(".")
	logger.Init()
	logger.Log.Info("Logger initialized")
	logger.Log.Info("Configuration loaded successfully")

	database, err := db.Connect()
	if err != nil {
		logger.Log.Fatalf("Error connecting to the database: %v", err)
	}
	defer database.Close()

	if err := db.RunMigrations("file://db/migrations"); err != nil {
		logger.Log.Fatalf("Error running migrations: %v", err)
	}

	// The cache is an optimization: start without it if Redis is down.
	var cache service.ICacheClient
	if redisClient, err := db.ConnectRedis(); err != nil {
		logger.Log.WithError(err).Warn("Redis unavailable, continuing without chart cache")
	} else {
		cache = redisClient
		defer redisClient.Close()
	}

	// --- Wiring All Layers Together ---
	chartRepo := repository.NewChartRepository(database)
	chartService := service.NewChartService(chartRepo, cache, config.AppConfig.Charts.AllowedKeys)

	// Seeding must succeed before the server accepts traffic.
	if err := chartService.Seed(context.Background()); err != nil {
		logger.Log.Fatalf("Error seeding chart store: %v", err)
	}

	authService := service.NewAuthService(config.AppConfig.Auth.SecretKey, config.AppConfig.Auth.ExpectedName)
	authHandler := handler.NewAuthHandler(authService)
	chartHandler := handler.NewChartHandler(chartService)

	r := router.NewRouter(authHandler, chartHandler, authService)

	// --- Start the Server with Graceful Shutdown ---
	port := config.AppConfig.Server.Port
	srv := &http.Server{
		Addr:    ":" + port,
		Handler: r,
	}

	go func() {
		logger.Log.Infof("Server starting on port :%s", port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Fatalf("Failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Log.Warn("Shutdown signal received. Starting graceful shutdown...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Fatalf("Server forced to shutdown: %v", err)
	}

	logger.Log.Info("Server exited properly")
}

// TestApp wires the full handler stack over externally managed connections
// so integration tests can drive the router directly.
type TestApp struct {
	DB     *sql.DB
	Router http.Handler
}

func NewTestApp(database *sql.DB, redisClient *redis.Client) *TestApp {
	var cache service.ICacheClient
	if redisClient != nil {
		cache = redisClient
	}

	chartRepo := repository.NewChartRepository(database)
	chartService := service.NewChartService(chartRepo, cache, config.AppConfig.Charts.AllowedKeys)
	authService := service.NewAuthService(config.AppConfig.Auth.SecretKey, config.AppConfig.Auth.ExpectedName)

	authHandler := handler.NewAuthHandler(authService)
	chartHandler := handler.NewChartHandler(chartService)

	return &TestApp{
		DB:     database,
		Router: router.NewRouter(authHandler, chartHandler, authService),
	}
}
