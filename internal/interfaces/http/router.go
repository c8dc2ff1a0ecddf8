package http

import (
	"github.com/gin-gonic/gin"

	"github.com/tablescan/qrmenu/internal/infrastructure/ratelimit"
	"github.com/tablescan/qrmenu/internal/interfaces/http/middleware"
	"github.com/tablescan/qrmenu/internal/interfaces/http/routes"
)

// SetupRoutes configures all HTTP routes
func (c *Container) SetupRoutes() {
	c.engine.Use(middleware.RequestID())
	c.engine.Use(middleware.Logger(c.log.Named("http")))
	c.engine.Use(middleware.Recovery(c.log))
	c.engine.Use(middleware.CORS(c.cfg.Server.AllowedOrigins))

	c.engine.GET("/health", c.hdlrs.healthHandler.HealthCheck)

	routes.SetupStorefrontRoutes(c.engine, &routes.StorefrontRouteConfig{
		StorefrontHandler: c.hdlrs.storefrontHandler,
		SessionMiddleware: c.sessionMiddleware,
		QuoteRateLimit:    c.quoteRateLimit(),
	})

	routes.SetupOfferRoutes(c.engine, &routes.OfferRouteConfig{
		OfferHandler:      c.hdlrs.offerHandler,
		SessionMiddleware: c.sessionMiddleware,
	})
}

// quoteRateLimit throttles anonymous quotes when redis is available.
func (c *Container) quoteRateLimit() gin.HandlerFunc {
	if c.redis == nil {
		return nil
	}
	windows := ratelimit.Windows(c.cfg.RateLimit.QuotePerMinute, c.cfg.RateLimit.QuotePerHour)
	if len(windows) == 0 {
		return nil
	}
	return middleware.RateLimit(ratelimit.NewRedisLimiter(c.redis, windows...), "quote", c.log.Named("ratelimit"))
}

// GetEngine returns the Gin engine
func (c *Container) GetEngine() *gin.Engine {
	return c.engine
}

// Shutdown releases in-process state held by the container. Connections
// passed in by the caller are closed by the caller.
func (c *Container) Shutdown() {
	if c.svcs != nil && c.svcs.catalogCache != nil {
		c.log.Infow("dropping catalog cache", "entries", c.svcs.catalogCache.Len())
		c.svcs.catalogCache.Purge()
	}
}
