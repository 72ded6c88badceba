// Package main is the entry point for the Study Prompts API server.
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"

	"github.com/Shimizu-Technology/study-prompts-api/internal/config"
	"github.com/Shimizu-Technology/study-prompts-api/internal/observability"
	"github.com/Shimizu-Technology/study-prompts-api/internal/router"
	"github.com/Shimizu-Technology/study-prompts-api/internal/services/pdf"
	"github.com/Shimizu-Technology/study-prompts-api/internal/services/prompts"
	"github.com/Shimizu-Technology/study-prompts-api/internal/services/worker"
)

// Version is set at build time via -ldflags.
var Version = "dev"

func main() {
	// Step 1: Load Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "❌ Failed to load config: %v\n", err)
		os.Exit(1)
	}

	logger := observability.NewLogger(observability.LogConfig{
		Level:       cfg.LogLevel,
		Format:      cfg.LogFormat,
		ServiceName: "study-prompts-api",
	})
	logger.Info().Str("version", Version).Msg("🚀 Study Prompts API starting...")
	logger.Info().
		Str("port", cfg.Port).
		Int("workers", cfg.WorkerCount).
		Str("gin_mode", cfg.GinMode).
		Dur("decode_timeout", cfg.DecodeTimeout).
		Bool("strict_validation", cfg.StrictValidation).
		Msg("📋 Config loaded")

	gin.SetMode(cfg.GinMode)

	// Step 2: Create the pipeline
	extractor := pdf.NewExtractor(pdf.Config{
		StrictValidation: cfg.StrictValidation,
		MaxPages:         cfg.MaxPages,
	})
	generator := prompts.NewGenerator(extractor, prompts.Options{
		MinCandidateLength: cfg.MinCandidateLength,
		MaxPrompts:         cfg.MaxPrompts,
		Logger:             &logger,
	})

	// Step 3: Create and Start Worker Pool
	wp := worker.NewPool(cfg.WorkerCount, cfg.JobQueueSize, generator, logger)
	wp.Start()
	defer wp.Stop()

	if cfg.AuthEnabled() {
		logger.Info().Msg("✅ Bearer token auth enabled for /api/v1/pdf")
	} else {
		logger.Warn().Msg("⚠️  Upload routes are open (set JWT_SECRET to require tokens)")
	}

	// Step 4: Setup HTTP Router
	r := router.Setup(wp, cfg, logger, Version)

	// Step 5: Start the HTTP Server
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Port),
		Handler:      r,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: cfg.DecodeTimeout + 15*time.Second,
		IdleTimeout:  60 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info().Msgf("🌐 Server listening on http://localhost:%s", cfg.Port)
		logger.Info().Msgf("📖 Health check: http://localhost:%s/api/v1/health", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	})

	// Step 6: Graceful Shutdown
	g.Go(func() error {
		<-gctx.Done()
		logger.Info().Msg("🛑 Shutting down gracefully...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		logger.Error().Err(err).Msg("❌ Server stopped with error")
		wp.Stop()
		os.Exit(1)
	}

	logger.Info().Msg("👋 Server stopped. Goodbye!")
}
