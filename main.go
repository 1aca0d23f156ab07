package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	intconfig "travel/internal/config"
	router "travel/internal/http"
	h "travel/internal/http/handlers"
	"travel/internal/repositories"
	"travel/internal/services"
	"travel/internal/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg, err := intconfig.Load(os.Getenv("APP_CONFIG_FILE"))
	if err != nil {
		slog.Error("failed to load config", slog.Any("error", err))
		os.Exit(1)
	}
	if err := cfg.Validate(); err != nil {
		slog.Error("invalid config", slog.Any("error", err))
		os.Exit(1)
	}

	logger := utils.NewLogger(utils.LogOptions{
		Level:          cfg.Log.Level,
		Format:         cfg.Log.Format,
		File:           cfg.Log.File,
		FileMaxSizeMB:  cfg.Log.FileMaxSizeMB,
		FileMaxBackups: cfg.Log.FileMaxBackups,
		FileMaxAgeDays: cfg.Log.FileMaxAgeDays,
	})
	slog.SetDefault(logger)

	if cfg.Server.GinMode != "" {
		gin.SetMode(cfg.Server.GinMode)
	}

	ctx := context.Background()
	conn, dialect, err := intconfig.OpenDB(ctx, cfg.DB)
	if err != nil {
		logger.Error("database unavailable", slog.String("driver", cfg.DB.Driver), slog.String("dsn", cfg.DB.DSN), slog.Any("error", err))
		os.Exit(1)
	}
	defer conn.Close()

	store := repositories.NewStore(conn, dialect)
	if err := store.CreateSchemaIfAbsent(ctx); err != nil {
		logger.Error("failed to create schema", slog.Any("error", err))
		os.Exit(1)
	}
	if cfg.Seed.Enabled {
		if _, err := (services.SeedService{Store: store, Logger: logger}).SeedIfEmpty(ctx); err != nil {
			logger.Error("failed to seed catalog", slog.Any("error", err))
			os.Exit(1)
		}
	}

	itineraries := services.ItineraryService{Store: store, Logger: logger}
	r := router.NewRouter(router.Deps{
		Logger:      logger,
		CORSOrigins: utils.SplitList(cfg.CORS.AllowedOrigins),
		Itineraries: h.ItineraryHandler{
			Itineraries: itineraries,
			Docs:        services.DocsService{Itineraries: itineraries, Logger: logger},
		},
		Catalog: h.CatalogHandler{Catalog: services.CatalogService{Store: store}},
		System:  &h.SystemHandler{Store: store},
	})

	srv := &http.Server{
		Addr:              cfg.Server.Addr,
		Handler:           r,
		ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	go func() {
		logger.Info("server listening", slog.String("addr", cfg.Server.Addr), slog.String("driver", dialect.Driver))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server failed", slog.Any("error", err))
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown failed", slog.Any("error", err))
		return
	}

	logger.Info("server stopped")
}
