//go:build !lambda
// +build !lambda

package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/convertly/convertly-api/internal/config"
	"github.com/convertly/convertly-api/internal/logger"
	"github.com/convertly/convertly-api/internal/server"
)

// @title           Convertly API
// @version         1.0
// @description     Currency, temperature, length and weight conversion service.
// @host            localhost:8000
// @BasePath        /

const shutdownTimeout = 5 * time.Second

func main() {
	if err := config.LoadDotEnv(); err != nil {
		log.Printf("Warning: %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	logger.InitLogger(cfg.Stage)
	defer func() { _ = logger.Sync() }()

	if cfg.GinMode != "" {
		gin.SetMode(cfg.GinMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg); err != nil {
		logger.Error("Server exited with error", zap.Error(err))
		os.Exit(1)
	}
	logger.Info("Server exiting")
}

func run(ctx context.Context, cfg *config.Config) error {
	srv, err := server.New(ctx, cfg)
	if err != nil {
		return fmt.Errorf("failed to build server: %w", err)
	}
	defer srv.Close()

	srv.Start()

	httpServer := &http.Server{
		Addr:              fmt.Sprintf(":%s", cfg.Port),
		Handler:           srv.Router(),
		ReadHeaderTimeout: 20 * time.Second, // Prevent Slowloris attacks
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("Server starting", zap.String("port", cfg.Port), zap.String("stage", cfg.Stage))
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("failed to start server: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("Shutting down server...")

		// Give outstanding requests a deadline for completion
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("server forced to shutdown: %w", err)
		}
		return nil
	})

	return g.Wait()
}
