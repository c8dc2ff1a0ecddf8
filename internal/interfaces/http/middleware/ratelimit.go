package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/tablescan/qrmenu/internal/infrastructure/ratelimit"
	apperrors "github.com/tablescan/qrmenu/internal/shared/errors"
	"github.com/tablescan/qrmenu/internal/shared/logger"
	"github.com/tablescan/qrmenu/internal/shared/utils"
)

// RateLimit throttles requests per client IP under scope. Limiter errors let
// the request through.
func RateLimit(limiter ratelimit.Limiter, scope string, log logger.Interface) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := scope + ":" + c.ClientIP()
		allowed, err := limiter.Allow(c.Request.Context(), key)
		if err != nil {
			log.Warnw("rate limiter unavailable", "scope", scope, "error", err)
			c.Next()
			return
		}
		if !allowed {
			log.Infow("request rate limited", "scope", scope, "client_ip", c.ClientIP())
			utils.ErrorResponseWithError(c, apperrors.NewRateLimitedError("too many requests, slow down"))
			c.Abort()
			return
		}
		c.Next()
	}
}
