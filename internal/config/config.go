// Package config handles application configuration.
//
// Go Pattern: Configuration via environment variables with sensible defaults.
// In Go, we typically use structs to hold configuration, and a function to
// load values from environment variables. A local .env file is loaded first
// (if present) so development setups don't need exported variables.
//
// None of this reaches the prompt pipeline directly: the server translates
// these values into explicit pdf.Config and prompts.Options structs.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all application configuration.
type Config struct {
	// Server settings
	Port    string
	GinMode string // "debug", "release", or "test"

	// Logging
	LogLevel  string // "debug", "info", "warn", "error"
	LogFormat string // "json" or "console"

	// Worker settings
	WorkerCount  int // Number of concurrent decode goroutines
	JobQueueSize int // Size of the in-memory job queue buffer

	// Upload and decode limits
	MaxUploadMB   int           // Max multipart upload size in megabytes
	DecodeTimeout time.Duration // Upper bound for one pipeline run

	// PDF decoder settings
	StrictValidation bool // Run pdfcpu validation before decoding
	MaxPages         int  // Reject documents with more pages (0 = unlimited)

	// Prompt heuristics
	MinCandidateLength int
	MaxPrompts         int

	// Rate limiting
	RateLimitPerHour int // Upload requests per hour per client IP

	// Optional bearer-token auth. Disabled when JWTSecret is empty.
	JWTSecret         string
	AdminPasswordHash string // bcrypt hash of the password that can mint tokens

	// CORS
	AllowedOrigins []string
}

// Load reads configuration from environment variables with sensible defaults.
func Load() (*Config, error) {
	// A missing .env is normal in production; only parse errors matter.
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to read .env: %w", err)
	}

	cfg := &Config{
		Port:    getEnv("PORT", "8080"),
		GinMode: getEnv("GIN_MODE", "debug"),

		LogLevel:  getEnv("LOG_LEVEL", "info"),
		LogFormat: getEnv("LOG_FORMAT", "console"),

		WorkerCount:  getEnvInt("WORKER_COUNT", 3),
		JobQueueSize: getEnvInt("JOB_QUEUE_SIZE", 100),

		MaxUploadMB:   getEnvInt("MAX_UPLOAD_MB", 50),
		DecodeTimeout: getEnvDuration("DECODE_TIMEOUT", 30*time.Second),

		StrictValidation: getEnvBool("PDF_STRICT_VALIDATION", false),
		MaxPages:         getEnvInt("PDF_MAX_PAGES", 0),

		MinCandidateLength: getEnvInt("MIN_CANDIDATE_LENGTH", 30),
		MaxPrompts:         getEnvInt("MAX_PROMPTS", 5),

		RateLimitPerHour: getEnvInt("RATE_LIMIT_PER_HOUR", 100),

		JWTSecret:         getEnv("JWT_SECRET", ""),
		AdminPasswordHash: getEnv("ADMIN_PASSWORD_HASH", ""),

		// CORS origins, comma-separated; in production, set this to your frontend URL
		AllowedOrigins: splitList(getEnv("CORS_ORIGIN", "http://localhost:5173")),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks value ranges and production requirements.
func (c *Config) Validate() error {
	if c.WorkerCount < 1 {
		return fmt.Errorf("WORKER_COUNT must be at least 1, got %d", c.WorkerCount)
	}
	if c.JobQueueSize < 1 {
		return fmt.Errorf("JOB_QUEUE_SIZE must be at least 1, got %d", c.JobQueueSize)
	}
	if c.MaxUploadMB < 1 {
		return fmt.Errorf("MAX_UPLOAD_MB must be at least 1, got %d", c.MaxUploadMB)
	}
	if c.DecodeTimeout <= 0 {
		return fmt.Errorf("DECODE_TIMEOUT must be positive, got %s", c.DecodeTimeout)
	}
	if len(c.AllowedOrigins) == 0 {
		return fmt.Errorf("CORS_ORIGIN must list at least one origin")
	}
	// Zero would be indistinguishable from "use the default" downstream.
	if c.MinCandidateLength < 1 {
		return fmt.Errorf("MIN_CANDIDATE_LENGTH must be at least 1, got %d", c.MinCandidateLength)
	}
	if c.MaxPrompts < 1 {
		return fmt.Errorf("MAX_PROMPTS must be at least 1, got %d", c.MaxPrompts)
	}
	if c.MaxPages < 0 {
		return fmt.Errorf("PDF_MAX_PAGES must not be negative, got %d", c.MaxPages)
	}

	// Security: with auth turned on in production, someone must be able to log in.
	if c.GinMode == "release" && c.JWTSecret != "" && c.AdminPasswordHash == "" {
		return fmt.Errorf("ADMIN_PASSWORD_HASH must be set when JWT_SECRET is set in release mode")
	}
	return nil
}

// AuthEnabled reports whether upload routes require a bearer token.
func (c *Config) AuthEnabled() bool {
	return c.JWTSecret != ""
}

// MaxUploadBytes returns the upload limit in bytes.
func (c *Config) MaxUploadBytes() int64 {
	return int64(c.MaxUploadMB) << 20
}

// getEnv reads an environment variable with a fallback default.
func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

// getEnvInt reads an integer environment variable with a fallback.
func getEnvInt(key string, fallback int) int {
	str := getEnv(key, "")
	if str == "" {
		return fallback
	}
	val, err := strconv.Atoi(str)
	if err != nil {
		return fallback
	}
	return val
}

// getEnvBool reads a boolean environment variable ("true", "1", ...) with a fallback.
func getEnvBool(key string, fallback bool) bool {
	str := getEnv(key, "")
	if str == "" {
		return fallback
	}
	val, err := strconv.ParseBool(str)
	if err != nil {
		return fallback
	}
	return val
}

// getEnvDuration reads a duration like "30s" or "2m" with a fallback.
func getEnvDuration(key string, fallback time.Duration) time.Duration {
	str := getEnv(key, "")
	if str == "" {
		return fallback
	}
	val, err := time.ParseDuration(str)
	if err != nil {
		return fallback
	}
	return val
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
