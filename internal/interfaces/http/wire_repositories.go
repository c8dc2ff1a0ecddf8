package http

import (
	"github.com/tablescan/qrmenu/internal/domain/entitlement"
	"github.com/tablescan/qrmenu/internal/domain/menu"
	"github.com/tablescan/qrmenu/internal/domain/offer"
	"github.com/tablescan/qrmenu/internal/domain/partner"
	"github.com/tablescan/qrmenu/internal/infrastructure/repository"
)

// repositories holds all repository instances used by the application.
// Types match the return types of the repository constructors.
type repositories struct {
	partnerRepo      partner.Repository
	qrCodeRepo       partner.QRCodeRepository
	qrGroupRepo      partner.QRGroupRepository
	menuItemRepo     menu.Repository
	offerRepo        offer.Repository
	subscriptionRepo entitlement.SubscriptionReader
	planRepo         entitlement.PlanCatalogReader
}

func (c *Container) initRepositories() {
	c.repos = &repositories{
		partnerRepo:      repository.NewPartnerRepository(c.db, c.log),
		qrCodeRepo:       repository.NewQRCodeRepository(c.db, c.log),
		qrGroupRepo:      repository.NewQRGroupRepository(c.db, c.log),
		menuItemRepo:     repository.NewMenuItemRepository(c.db, c.log),
		offerRepo:        repository.NewOfferRepository(c.db, c.log),
		subscriptionRepo: repository.NewSubscriptionReader(c.db),
		planRepo:         repository.NewPlanCatalogReader(c.db),
	}
}
