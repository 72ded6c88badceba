// auth.go mints bearer tokens for the upload routes.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"github.com/Shimizu-Technology/study-prompts-api/internal/middleware"
	"github.com/Shimizu-Technology/study-prompts-api/internal/models"
)

// IssueToken exchanges the admin password for a JWT.
// POST /api/v1/auth/token
func (h *Handler) IssueToken(c *gin.Context) {
	if h.JWTSecret == "" || h.AdminPasswordHash == "" {
		c.JSON(http.StatusNotFound, models.ErrorResponse{
			Error:   "auth_disabled",
			Message: "Token authentication is not configured on this server",
			Code:    http.StatusNotFound,
		})
		return
	}

	var req models.TokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_request",
			Message: "A password is required",
			Code:    http.StatusBadRequest,
		})
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(h.AdminPasswordHash), []byte(req.Password)); err != nil {
		h.Logger.Warn().Str("client_ip", c.ClientIP()).Msg("rejected token request")
		c.JSON(http.StatusUnauthorized, models.ErrorResponse{
			Error:   "invalid_credentials",
			Message: "Invalid password",
			Code:    http.StatusUnauthorized,
		})
		return
	}

	token, err := middleware.GenerateJWT("admin", h.JWTSecret)
	if err != nil {
		h.Logger.Error().Err(err).Msg("❌ Failed to generate token")
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error:   "token_error",
			Message: "Failed to generate token",
			Code:    http.StatusInternalServerError,
		})
		return
	}

	c.JSON(http.StatusOK, models.TokenResponse{
		Token:     token,
		ExpiresIn: int(middleware.TokenTTL.Seconds()),
	})
}
