// ratelimit_test.go — Unit tests for the per-client token bucket.
package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestRateLimiter_Allow(t *testing.T) {
	rl := NewRateLimiter(3)

	for i := 0; i < 3; i++ {
		res := rl.allow("10.0.0.1", 3)
		assert.True(t, res.allowed, "request %d should pass", i+1)
	}
	assert.False(t, rl.allow("10.0.0.1", 3).allowed, "fourth request should be limited")

	// Buckets are per client.
	assert.True(t, rl.allow("10.0.0.2", 3).allowed)
}

func TestRateLimiter_Middleware(t *testing.T) {
	gin.SetMode(gin.TestMode)

	newRouter := func(limit int) *gin.Engine {
		r := gin.New()
		r.GET("/x", NewRateLimiter(limit).RateLimit(), func(c *gin.Context) {
			c.Status(http.StatusOK)
		})
		return r
	}

	t.Run("limits after quota", func(t *testing.T) {
		r := newRouter(2)
		codes := make([]int, 0, 3)
		for i := 0; i < 3; i++ {
			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/x", nil))
			codes = append(codes, w.Code)
			if w.Code == http.StatusOK {
				assert.NotEmpty(t, w.Header().Get("X-RateLimit-Limit"))
			}
		}
		assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)
	})

	t.Run("zero disables limiting", func(t *testing.T) {
		r := newRouter(0)
		for i := 0; i < 5; i++ {
			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/x", nil))
			assert.Equal(t, http.StatusOK, w.Code)
		}
	})
}
