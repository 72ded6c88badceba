// Package router sets up all HTTP routes for the API.
package router

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/Shimizu-Technology/study-prompts-api/internal/config"
	"github.com/Shimizu-Technology/study-prompts-api/internal/handlers"
	"github.com/Shimizu-Technology/study-prompts-api/internal/middleware"
)

// Setup creates and configures the Gin router with all routes.
func Setup(runner handlers.Runner, cfg *config.Config, logger zerolog.Logger, version string) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger(logger))
	r.Use(middleware.CORS(cfg.AllowedOrigins))

	h := &handlers.Handler{
		Runner:            runner,
		Logger:            logger,
		Version:           version,
		MaxUploadSize:     cfg.MaxUploadBytes(),
		DecodeTimeout:     cfg.DecodeTimeout,
		JWTSecret:         cfg.JWTSecret,
		AdminPasswordHash: cfg.AdminPasswordHash,
	}
	rateLimiter := middleware.NewRateLimiter(cfg.RateLimitPerHour)

	// --- Public Routes ---
	r.GET("/api/v1/health", h.HealthCheck)
	r.GET("/api/docs", h.ServeSwaggerUI)
	r.GET("/api/docs/openapi.yaml", h.ServeOpenAPISpec)

	if cfg.AuthEnabled() {
		r.POST("/api/v1/auth/token", rateLimiter.RateLimit(), h.IssueToken)
	}

	// --- Upload Routes ---
	pdf := r.Group("/api/v1/pdf")
	if cfg.AuthEnabled() {
		pdf.Use(middleware.JWTAuth(cfg.JWTSecret))
	}
	pdf.Use(rateLimiter.RateLimit())
	{
		pdf.POST("/extract", h.ExtractPDF)
	}

	return r
}
