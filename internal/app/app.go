// Package app assembles and runs the feedback analyzer service.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"github.com/reflectlabs/feedback-analyzer/internal/adapter/postgres"
	feedbackrepo "github.com/reflectlabs/feedback-analyzer/internal/adapter/postgres/feedback"
	"github.com/reflectlabs/feedback-analyzer/internal/adapter/rediscache"
	"github.com/reflectlabs/feedback-analyzer/internal/ai"
	"github.com/reflectlabs/feedback-analyzer/internal/config"
	analysissvc "github.com/reflectlabs/feedback-analyzer/internal/service/analysis"
	feedbacksvc "github.com/reflectlabs/feedback-analyzer/internal/service/feedback"
	"github.com/reflectlabs/feedback-analyzer/internal/transport/middleware"
	"github.com/reflectlabs/feedback-analyzer/internal/transport/rest"
)

// Run is the application entry point. It loads configuration, connects the
// external dependencies (PostgreSQL, Redis, the inference endpoint), wires
// the services and HTTP transport, and serves until ctx is cancelled, then
// shuts down gracefully.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	if cfg.Database.Migrate {
		if err := postgres.Migrate(cfg.Database.DSN); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}
	defer pool.Close()

	cache := rediscache.New(cfg.Cache, logger)
	defer cache.Close() //nolint:errcheck
	if err := cache.Ping(ctx); err != nil {
		// The cache is an optimization; a dead Redis only costs latency.
		logger.Warn("cache unreachable, running without response caching",
			slog.String("addr", cfg.Cache.Addr),
			slog.String("error", err.Error()),
		)
	}

	analyzer := ai.NewAnalyzer(ai.NewClient(cfg.AI), cfg.AI, logger)

	repo := feedbackrepo.New(pool)
	submitSvc := feedbacksvc.NewService(logger, repo, analyzer)
	analysisSvc := analysissvc.NewService(logger, repo, analyzer, cache, cfg.Analysis)

	router := rest.NewRouter(
		rest.NewFeedbackHandler(submitSvc, logger),
		rest.NewAnalyzeHandler(analysisSvc, logger),
		rest.NewHealthHandler(repo, cache, BuildVersion()),
		rest.NewDashboardHandler(repo, logger),
	)

	handler := middleware.Chain(
		middleware.RequestID,
		middleware.Logger(logger),
		middleware.Recovery(logger),
		middleware.CORS(cfg.CORS),
	)(router)

	server := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}

	return nil
}
