package http

import (
	offerUsecases "github.com/tablescan/qrmenu/internal/application/offer/usecases"
	storefrontUsecases "github.com/tablescan/qrmenu/internal/application/storefront/usecases"
	"github.com/tablescan/qrmenu/internal/domain/entitlement"
)

// allUseCases holds all use case instances used by the application.
type allUseCases struct {
	// Storefront
	evaluateAccessUC  *storefrontUsecases.EvaluateAccessUseCase
	getMenuUC         *storefrontUsecases.GetStorefrontMenuUseCase
	quoteOrderUC      *storefrontUsecases.QuoteOrderUseCase
	getPageMetadataUC *storefrontUsecases.GetPageMetadataUseCase

	// Offer
	createOfferUC *offerUsecases.CreateOfferUseCase
	listOffersUC  *offerUsecases.ListOffersUseCase
}

func (c *Container) initUseCases() error {
	window, err := entitlement.ParseScanWindow(c.cfg.Entitlement.ScanWindow)
	if err != nil {
		return err
	}

	gate := storefrontUsecases.NewEvaluateAccessUseCase(
		c.repos.partnerRepo,
		c.repos.qrCodeRepo,
		c.repos.subscriptionRepo,
		c.repos.planRepo,
		c.svcs.scanCounter,
		storefrontUsecases.GateConfig{
			DomesticCountry:     c.cfg.Entitlement.DomesticCountry,
			ScanWindow:          window,
			IncrementMaxElapsed: c.cfg.Entitlement.IncrementMaxElapsed,
		},
		c.log.Named("gate"),
	)

	c.ucs = &allUseCases{
		evaluateAccessUC:  gate,
		getMenuUC:         storefrontUsecases.NewGetStorefrontMenuUseCase(gate, c.svcs.catalogLoader, c.log),
		quoteOrderUC:      storefrontUsecases.NewQuoteOrderUseCase(gate, c.svcs.catalogLoader, c.repos.qrGroupRepo, c.log),
		getPageMetadataUC: storefrontUsecases.NewGetPageMetadataUseCase(c.repos.partnerRepo, c.log),
		createOfferUC: offerUsecases.NewCreateOfferUseCase(
			c.repos.menuItemRepo,
			c.repos.offerRepo,
			c.svcs.txManager,
			c.svcs.catalogLoader,
			c.log,
		),
		listOffersUC: offerUsecases.NewListOffersUseCase(c.repos.offerRepo, c.log),
	}
	return nil
}
