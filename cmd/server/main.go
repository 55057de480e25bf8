package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"tripfolio/internal/auth"
	"tripfolio/internal/config"
	"tripfolio/internal/handler"
	"tripfolio/internal/logger"
	"tripfolio/internal/parser/claude"
	"tripfolio/internal/repository/postgres"
	"tripfolio/internal/router"
	"tripfolio/internal/service"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logger.Init(cfg.Log.Level, cfg.Log.Format)
	defer func() { _ = logger.Sync() }()

	db, err := postgres.NewDB(&cfg.DB)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	// Initialize repositories
	tripRepo := postgres.NewTripRepo(db)

	// Initialize the extraction provider client
	extractor := claude.NewClient(&cfg.Extractor)

	// Initialize services
	tripSvc := service.NewTripService(tripRepo)
	extractSvc := service.NewExtractService(extractor)

	// Initialize handlers
	tripH := handler.NewTripHandler(tripSvc)
	extractH := handler.NewExtractHandler(extractSvc)
	healthH := handler.NewHealthHandler(db)

	verifier := auth.NewVerifier(cfg.Auth)

	r := router.Setup(cfg, verifier, tripH, extractH, healthH)

	srv := &http.Server{
		Addr:         cfg.Server.Port,
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logger.Get().Infow("server starting", "addr", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("server failed: %w", err)
	case <-ctx.Done():
	}

	// Drain in-flight requests, then release the connection pool via the
	// deferred db.Close.
	logger.Get().Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown failed: %w", err)
	}

	return nil
}
