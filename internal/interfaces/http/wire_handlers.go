package http

import (
	"github.com/tablescan/qrmenu/internal/interfaces/http/handlers"
	offerHandlers "github.com/tablescan/qrmenu/internal/interfaces/http/handlers/offer"
	storefrontHandlers "github.com/tablescan/qrmenu/internal/interfaces/http/handlers/storefront"
	"github.com/tablescan/qrmenu/internal/interfaces/http/middleware"
)

// allHandlers holds all HTTP handler instances used by the application.
type allHandlers struct {
	healthHandler     *handlers.HealthHandler
	storefrontHandler *storefrontHandlers.Handler
	offerHandler      *offerHandlers.Handler
}

func (c *Container) initHandlers() {
	c.sessionMiddleware = middleware.NewPartnerSessionMiddleware(
		c.svcs.sessionVerifier,
		c.cfg.Auth.CookieName,
		c.log.Named("session"),
	)

	c.hdlrs = &allHandlers{
		healthHandler: handlers.NewHealthHandler(c.healthDeps(), c.log),
		storefrontHandler: storefrontHandlers.NewHandler(
			c.ucs.getMenuUC,
			c.ucs.quoteOrderUC,
			c.ucs.getPageMetadataUC,
			storefrontHandlers.VisitorCookieConfig{
				Name:   c.cfg.Entitlement.VisitorCookieName,
				TTL:    c.cfg.Entitlement.VisitorMarkerTTL,
				Secure: c.cfg.Auth.CookieSecure,
			},
			c.log.Named("storefront"),
		),
		offerHandler: offerHandlers.NewHandler(c.ucs.createOfferUC, c.ucs.listOffersUC, c.log.Named("offer")),
	}
}
