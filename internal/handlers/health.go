// Package handlers contains HTTP handler functions for the API.
//
// Go Pattern: Handlers in Gin receive a *gin.Context which provides:
// - Request data (params, query, body, headers)
// - Response methods (JSON, String, Status)
// - Middleware data (c.Get/c.Set)
//
// We group related handlers into a struct (Handler) that holds shared dependencies.
package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/Shimizu-Technology/study-prompts-api/internal/models"
	"github.com/Shimizu-Technology/study-prompts-api/internal/services/prompts"
)

// Runner executes prompt generation jobs. *worker.Pool satisfies it.
type Runner interface {
	Submit(ctx context.Context, id string, data []byte) (*prompts.Result, error)
	WorkerCount() int
	QueueSize() int
}

// Handler holds shared dependencies for all HTTP handlers.
// Go Pattern: Dependency injection via struct fields. Instead of global
// variables or service locators, we pass dependencies explicitly.
type Handler struct {
	Runner        Runner
	Logger        zerolog.Logger
	Version       string
	MaxUploadSize int64         // bytes
	DecodeTimeout time.Duration // per pipeline run

	// Auth; token minting is unavailable when either is empty.
	JWTSecret         string
	AdminPasswordHash string
}

// HealthCheck returns the API health status.
// GET /api/v1/health
func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, models.HealthResponse{
		Status:  "ok",
		Version: h.Version,
		Workers: h.Runner.WorkerCount(),
		Queued:  h.Runner.QueueSize(),
	})
}
