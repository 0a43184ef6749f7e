package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"ahudio-admin-server/internal/config"
	"ahudio-admin-server/internal/db"
	"ahudio-admin-server/internal/vapi"
	"ahudio-admin-server/pkg/logger"
	"ahudio-admin-server/pkg/middleware"
	"ahudio-admin-server/router"

	"go.uber.org/zap"
)

// SetupServer initializes and returns a configured HTTP server.
// The database is closed when the server shuts down.
func SetupServer(cfg *config.Config) (*http.Server, error) {
	if cfg == nil {
		return nil, errors.New("configuration is required")
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	issuer, err := middleware.NewTokenIssuer(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create token issuer: %w", err)
	}

	// Initialize database
	database, err := db.NewDatabase(cfg.Database.DSN)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	client := vapi.NewClient(cfg.Vapi.Endpoint, cfg.Vapi.Credential)
	if cfg.Vapi.Credential == "" {
		logger.Warn("VAPI credential is empty; remote calls will be rejected")
	}

	r := router.NewRouter(
		router.BuildHandlers(database.GetDB(), client, issuer, cfg),
		issuer,
		router.Options{
			Version:        version,
			MaxUploadBytes: cfg.Upload.MaxBytes,
			ForceHTTPS:     cfg.Server.ForceHTTPS,
		},
	)

	// Create server with security timeouts
	srv := &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:           r,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	srv.RegisterOnShutdown(func() {
		if err := database.Close(); err != nil {
			logger.Warn("Failed to close database", zap.Error(err))
		}
	})

	return srv, nil
}

// StartServer starts the HTTP server and shuts it down gracefully on SIGINT or SIGTERM
func StartServer(srv *http.Server) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	return StartServerWithContext(ctx, srv)
}

// StartServerWithContext starts the HTTP server with a context for shutdown control
func StartServerWithContext(ctx context.Context, srv *http.Server) error {
	serveErr := make(chan error, 1)

	// Start server in a goroutine
	go func() {
		logger.Info("Starting server", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err := <-serveErr:
		if err != nil {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("Shutting down server...")

	// Create a timeout context for shutdown
	ctxShutdown, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelShutdown()

	if err := srv.Shutdown(ctxShutdown); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	return nil
}
