package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/tablescan/qrmenu/internal/interfaces/http/handlers/storefront"
	"github.com/tablescan/qrmenu/internal/interfaces/http/middleware"
)

// StorefrontRouteConfig holds dependencies for storefront routes.
type StorefrontRouteConfig struct {
	StorefrontHandler *storefront.Handler
	SessionMiddleware *middleware.PartnerSessionMiddleware
	// QuoteRateLimit is optional.
	QuoteRateLimit gin.HandlerFunc
}

// SetupStorefrontRoutes configures the public menu routes. Sessions are
// optional: a signed-in partner viewing their own page is not counted and
// may add manual charges to a quote.
func SetupStorefrontRoutes(engine *gin.Engine, cfg *StorefrontRouteConfig) {
	sf := engine.Group("/api/storefront")
	sf.Use(cfg.SessionMiddleware.OptionalSession())
	{
		sf.GET("/qr/:code", cfg.StorefrontHandler.GetMenuByQRCode)

		partners := sf.Group("/partners/:partner_id")
		{
			partners.GET("", cfg.StorefrontHandler.GetMenu)
			partners.GET("/meta", cfg.StorefrontHandler.GetPageMetadata)
			if cfg.QuoteRateLimit != nil {
				partners.POST("/quote", cfg.QuoteRateLimit, cfg.StorefrontHandler.QuoteOrder)
			} else {
				partners.POST("/quote", cfg.StorefrontHandler.QuoteOrder)
			}
		}
	}
}
