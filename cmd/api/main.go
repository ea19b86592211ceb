package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"ahkii-burger-backend/config"
	_ "ahkii-burger-backend/docs" // Important for Swagger
	v1 "ahkii-burger-backend/internal/delivery/http/v1"
	"ahkii-burger-backend/internal/domain"
	"ahkii-burger-backend/internal/repository/postgres"
	"ahkii-burger-backend/internal/repository/static"
	"ahkii-burger-backend/internal/usecase"
	"ahkii-burger-backend/pkg/database"
	"ahkii-burger-backend/pkg/email"
	"ahkii-burger-backend/pkg/logger"
	"ahkii-burger-backend/pkg/redis"
)

// @title           Ahkii Burger API
// @version         1.0
// @description     Backend for the Ahkii Burger website: menu catalog and contact form.
// @host            localhost:8080
// @BasePath        /v1
func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Setup Logger
	logger.Init()
	logger.Log.Info("Starting ahkii burger backend", "port", cfg.Port)

	// 3. Email transport must be fully configured before serving traffic
	if err := cfg.ValidateTransport(); err != nil {
		logger.Log.Error("Startup configuration error", "error", err)
		os.Exit(1)
	}

	// 4. Setup Catalog source: Postgres when configured, built-in otherwise
	var catalogRepo domain.CatalogRepository
	if cfg.DBUrl != "" {
		dbPool, err := database.NewPostgresConnection(cfg.DBUrl)
		if err != nil {
			logger.Log.Error("Failed to connect to database", "error", err)
			os.Exit(1)
		}
		defer dbPool.Close()
		catalogRepo = postgres.NewMenuRepository(dbPool)
	} else {
		catalogRepo = static.NewMenuRepository()
	}

	// 5. Setup Redis (optional, rate limiting falls back to in-memory)
	if err := redis.Initialize(redis.Config{URL: cfg.RedisURL, Password: cfg.RedisPassword}); err != nil {
		logger.Log.Warn("Redis unavailable", "error", err)
	}

	// 6. Setup UseCases
	sender := email.NewSMTPSender(cfg)
	menuUC := usecase.NewMenuUsecase(catalogRepo)
	contactUC := usecase.NewContactUsecase(sender, cfg)
	infoUC := usecase.NewInfoUsecase()

	// 7. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		MenuUC:    menuUC,
		ContactUC: contactUC,
		InfoUC:    infoUC,
		Config:    cfg,
	})

	// 8. Start Server
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Error("Listen failed", "error", err)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Error("Server forced to shutdown", "error", err)
	}

	logger.Log.Info("Server exiting")
}
