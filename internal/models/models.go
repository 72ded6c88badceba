// Package models defines the request and response shapes of the HTTP API.
//
// Go Pattern: Models are plain structs with JSON tags for serialization.
// JSON tags (e.g., `json:"text"`) control how struct fields are serialized
// to/from JSON.
package models

// ExtractResponse is returned by POST /api/v1/pdf/extract on success.
// Text and Prompts are independent outputs: Text is present even when
// Prompts is empty, and Message then explains why.
type ExtractResponse struct {
	RunID     string   `json:"run_id"`
	Filename  string   `json:"filename"`
	Text      string   `json:"text"`
	Prompts   []string `json:"prompts"`
	PageCount int      `json:"page_count"`
	Message   string   `json:"message,omitempty"`
}

// TokenRequest is the JSON body for POST /api/v1/auth/token.
type TokenRequest struct {
	Password string `json:"password" binding:"required"`
}

// TokenResponse carries a freshly minted bearer token.
type TokenResponse struct {
	Token     string `json:"token"`
	ExpiresIn int    `json:"expires_in"` // seconds
}

// ErrorResponse is a standard error format for all API errors.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Code    int    `json:"code"`
}

// HealthResponse is returned by the health check endpoint.
type HealthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version"`
	Workers int    `json:"workers"`
	Queued  int    `json:"queued"`
}
