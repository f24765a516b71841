package main

import (
	"context"
	"errors"
	"log/slog"
	"os"

	"github.com/TalalMnd/sim_sales_tracker/internal/apperrors"
	"github.com/TalalMnd/sim_sales_tracker/internal/core/services"
	"github.com/TalalMnd/sim_sales_tracker/internal/handlers"
	"github.com/TalalMnd/sim_sales_tracker/internal/middleware"
	"github.com/TalalMnd/sim_sales_tracker/internal/platform/config"
	"github.com/TalalMnd/sim_sales_tracker/internal/repositories/remote"
	"github.com/TalalMnd/sim_sales_tracker/internal/repositories/storage/file"

	portsrepo "github.com/TalalMnd/sim_sales_tracker/internal/core/ports/repositories"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// @title SIM Sales Tracker API
// @version 1.0
// @description Local-first sales, stock and fuel tracking for SIM resellers.

// @host localhost:8080
// @BasePath /api/v1
func main() {
	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	repos := portsrepo.RepositoryProvider{
		StateRepo:    file.NewStateRepository(cfg.DataFilePath),
		AuthSlotRepo: file.NewAuthSlotRepository(cfg.AuthFilePath),
		MirrorRepo:   remote.NewMirrorRepository(cfg.MirrorURL, cfg.MirrorTimeout),
	}

	container := services.NewServiceContainer(context.Background(), repos)
	defer container.Sync.Close()

	// Restore a previously persisted login so a restart lands back on the
	// same account.
	if user, err := container.Session.Restore(context.Background()); err != nil {
		if !errors.Is(err, apperrors.ErrNoSession) {
			logger.Warn("Session restore failed", slog.String("error", err.Error()))
		}
	} else {
		logger.Info("Session restored", slog.String("user_id", user.ID), slog.String("username", user.Username))
	}

	// Kick off a best-effort pull; a failure leaves the local state intact.
	go func() {
		if err := container.Sync.Refresh(context.Background()); err != nil {
			logger.Warn("Initial mirror refresh failed", slog.String("error", err.Error()))
		}
	}()

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware (logging, recovery, CORS)
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSAllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		AllowCredentials: false,
	}))

	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	handlers.RegisterRoutes(r, cfg, container)

	logger.Info("Server starting", slog.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Error("Server failed to run", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
