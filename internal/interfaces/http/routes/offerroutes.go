package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/tablescan/qrmenu/internal/interfaces/http/handlers/offer"
	"github.com/tablescan/qrmenu/internal/interfaces/http/middleware"
)

// OfferRouteConfig holds dependencies for partner offer routes.
type OfferRouteConfig struct {
	OfferHandler      *offer.Handler
	SessionMiddleware *middleware.PartnerSessionMiddleware
}

// SetupOfferRoutes configures partner offer management routes.
func SetupOfferRoutes(engine *gin.Engine, cfg *OfferRouteConfig) {
	offers := engine.Group("/api/partners/:partner_id/offers")
	offers.Use(cfg.SessionMiddleware.RequireSession())
	{
		offers.POST("", cfg.OfferHandler.CreateOffer)
		offers.GET("", cfg.OfferHandler.ListOffers)
	}
}
