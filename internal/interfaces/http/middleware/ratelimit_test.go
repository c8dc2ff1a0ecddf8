package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/tablescan/qrmenu/internal/shared/logger"
)

type stubLimiter struct {
	allow   bool
	err     error
	lastKey string
}

func (s *stubLimiter) Allow(ctx context.Context, key string) (bool, error) {
	s.lastKey = key
	return s.allow, s.err
}

func TestRateLimit(t *testing.T) {
	tests := []struct {
		name       string
		limiter    *stubLimiter
		wantStatus int
	}{
		{"allowed", &stubLimiter{allow: true}, http.StatusOK},
		{"throttled", &stubLimiter{allow: false}, http.StatusTooManyRequests},
		{"limiter down", &stubLimiter{err: errors.New("redis gone")}, http.StatusOK},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			engine := gin.New()
			engine.POST("/quote", RateLimit(tt.limiter, "quote", logger.NewNopLogger()), func(c *gin.Context) {
				c.Status(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodPost, "/quote", nil)
			req.RemoteAddr = "203.0.113.7:5555"
			w := httptest.NewRecorder()
			engine.ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Equal(t, "quote:203.0.113.7", tt.limiter.lastKey)
		})
	}
}
