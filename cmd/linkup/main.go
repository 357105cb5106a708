// Package main runs the LinkUp blog API.
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/Gabo-RDev/LinkUp/internal/config"
	"github.com/Gabo-RDev/LinkUp/pkg/di"
	"github.com/Gabo-RDev/LinkUp/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.New("info", "").Fatal("Failed to load configuration", zap.Error(err))
	}

	log := logger.New(cfg.LogLevel, cfg.LogPath)
	defer func() { _ = log.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	container, err := di.NewContainer(ctx, cfg, log)
	if err != nil {
		log.Fatal("Failed to build application", zap.Error(err))
	}
	defer func() {
		if err := container.Close(); err != nil {
			log.Warn("Failed to close resources", zap.Error(err))
		}
	}()

	server := &http.Server{
		Addr:         cfg.HTTP.Addr,
		Handler:      container.Router(),
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("HTTP server started", zap.String("addr", cfg.HTTP.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case <-ctx.Done():
		log.Info("Shutdown signal received")
	case err := <-errCh:
		if err != nil {
			log.Error("HTTP server stopped with error", zap.Error(err))
			os.Exit(1)
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("Graceful shutdown failed", zap.Error(err))
		return
	}

	log.Info("HTTP server stopped successfully")
}
