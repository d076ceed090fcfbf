package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"hrms-backend/internal/delivery/http/middleware"
	"hrms-backend/pkg/logger"
)

func newLimitedRouter(limit int, window time.Duration) *gin.Engine {
	gin.SetMode(gin.TestMode)
	logger.Init()

	r := gin.New()
	r.POST("/login", middleware.LoginRateLimit(nil, middleware.RateLimitConfig{
		Limit:  limit,
		Window: window,
	}), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return r
}

func hit(r *gin.Engine) int {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/login", nil)
	req.RemoteAddr = "10.0.0.1:1234"
	r.ServeHTTP(w, req)
	return w.Code
}

func TestLoginRateLimitInMemory(t *testing.T) {
	t.Run("Requests over the limit get 429", func(t *testing.T) {
		r := newLimitedRouter(2, time.Minute)

		assert.Equal(t, http.StatusOK, hit(r))
		assert.Equal(t, http.StatusOK, hit(r))
		assert.Equal(t, http.StatusTooManyRequests, hit(r))
	})

	t.Run("Counters reset once the window passes", func(t *testing.T) {
		r := newLimitedRouter(1, 30*time.Millisecond)

		assert.Equal(t, http.StatusOK, hit(r))
		assert.Equal(t, http.StatusTooManyRequests, hit(r))

		time.Sleep(40 * time.Millisecond)
		assert.Equal(t, http.StatusOK, hit(r))
	})
}
