package http

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"cadastro/internal/adapter/database"
	"cadastro/internal/adapter/database/postgres"
	"cadastro/internal/adapter/database/sqlite"
	"cadastro/internal/adapter/http/routes"
	adaptertelemetry "cadastro/internal/adapter/telemetry"
	"cadastro/pkg/config"
	"cadastro/pkg/logger"
)

// OpenDatabase connects to the store selected by DATABASE_DRIVER.
func OpenDatabase(cfg *config.AppConfig) (*database.DB, error) {
	dialect, err := database.ParseDialect(cfg.DatabaseDriver)

	if err != nil {
		return nil, err
	}

	switch dialect {
	case database.Postgres:
		return postgres.Open(postgres.Config{
			URL:         cfg.DatabaseURL,
			ServiceName: cfg.ServiceName,
			LogQueries:  cfg.LogQueries,
			AutoMigrate: cfg.AutoMigrate,
		})
	default:
		return sqlite.Open(sqlite.Config{
			Path:        cfg.DatabasePath,
			ServiceName: cfg.ServiceName,
			LogQueries:  cfg.LogQueries,
			AutoMigrate: cfg.AutoMigrate,
		})
	}
}

// StartServer runs the API until SIGINT or SIGTERM, then drains in-flight
// requests within cfg.ShutdownTimeout.
func StartServer(cfg *config.AppConfig) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	return StartServerWithContext(ctx, cfg)
}

func StartServerWithContext(ctx context.Context, cfg *config.AppConfig) error {
	log, err := logger.New(cfg.ServiceName, !cfg.IsProduction())

	if err != nil {
		return err
	}

	defer log.Sync()

	telemetryContainer, err := adaptertelemetry.NewContainer(ctx, adaptertelemetry.Config{
		ServiceName:    cfg.ServiceName,
		ServiceVersion: cfg.ServiceVersion,
		Environment:    cfg.Environment,
		MetricsPort:    cfg.MetricsPort,
		OTLPEndpoint:   cfg.OTLPEndpoint,
	}, slog.Default())

	if err != nil {
		return fmt.Errorf("failed to initialize telemetry: %w", err)
	}

	db, err := OpenDatabase(cfg)

	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}

	defer db.Close()

	container, err := NewContainer(db, telemetryContainer.NewTelemetryProbe(slog.Default()), log)

	if err != nil {
		return err
	}

	router := routes.SetupRouter(routes.HandlersConfig{
		UserHandler:   container.UserHandler,
		MovieHandler:  container.MovieHandler,
		HealthHandler: container.HealthHandler,
		WebHandler:    container.WebHandler,
	}, telemetryContainer.AppMetrics, log, routes.Config{
		ServiceName: cfg.ServiceName,
		Production:  cfg.IsProduction(),
	})

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
	}

	serverErr := make(chan error, 1)

	go func() {
		slog.Info("Server starting",
			"port", cfg.Port,
			"environment", cfg.Environment,
			"database_driver", cfg.DatabaseDriver)

		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}

		close(serverErr)
	}()

	select {
	case err := <-serverErr:
		if err != nil {
			log.ErrorWithTrace(ctx, "Server failed to start", zap.Error(err))
			return err
		}
	case <-ctx.Done():
	}

	slog.Info("Shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("Server forced to shutdown", "error", err)
	}

	if err := telemetryContainer.Shutdown(shutdownCtx); err != nil {
		slog.Error("Failed to shutdown telemetry", "error", err)
	}

	slog.Info("Server stopped")

	return nil
}
