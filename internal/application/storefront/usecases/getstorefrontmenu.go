package usecases

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/tablescan/qrmenu/internal/application/storefront/dto"
	"github.com/tablescan/qrmenu/internal/domain/entitlement"
	"github.com/tablescan/qrmenu/internal/domain/menu"
	"github.com/tablescan/qrmenu/internal/domain/offer"
	"github.com/tablescan/qrmenu/internal/domain/pricing"
	"github.com/tablescan/qrmenu/internal/shared/biztime"
	apperrors "github.com/tablescan/qrmenu/internal/shared/errors"
	"github.com/tablescan/qrmenu/internal/shared/logger"
)

type GetStorefrontMenuQuery struct {
	PartnerID       string
	QRCode          string
	Channel         string
	AlreadyCounted  bool
	ViewerPartnerID string
}

// StorefrontMenuResult carries the gate outcome and, on OK, the priced menu.
type StorefrontMenuResult struct {
	Disposition entitlement.Disposition
	PartnerID   string
	Counted     bool
	Menu        *dto.MenuView
}

type GetStorefrontMenuUseCase struct {
	gate   AccessEvaluator
	loader CatalogLoader
	logger logger.Interface
	now    func() time.Time
}

func NewGetStorefrontMenuUseCase(gate AccessEvaluator, loader CatalogLoader, logger logger.Interface) *GetStorefrontMenuUseCase {
	return &GetStorefrontMenuUseCase{
		gate:   gate,
		loader: loader,
		logger: logger,
		now:    biztime.NowUTC,
	}
}

func (uc *GetStorefrontMenuUseCase) Execute(ctx context.Context, query GetStorefrontMenuQuery) (*StorefrontMenuResult, error) {
	channel, err := offer.ParseChannel(query.Channel)
	if err != nil {
		return nil, apperrors.NewValidationError("invalid channel", err.Error())
	}

	access, err := uc.gate.Execute(ctx, EvaluateAccessCommand{
		PartnerID:       query.PartnerID,
		QRCode:          query.QRCode,
		TrackScan:       true,
		AlreadyCounted:  query.AlreadyCounted,
		ViewerPartnerID: query.ViewerPartnerID,
	})
	if err != nil {
		return nil, err
	}

	result := &StorefrontMenuResult{Disposition: access.Disposition, Counted: access.Counted}
	if access.Partner != nil {
		result.PartnerID = access.Partner.ID()
	}
	if !access.Disposition.IsOK() {
		return result, nil
	}

	now := uc.now()
	items, offers, err := loadCatalog(ctx, uc.loader, uc.logger, access.Partner.ID(), now)
	if err != nil {
		return nil, err
	}

	res := resolve(uc.logger, access.Partner.ID(), items, offers, now, channel)

	view := &dto.MenuView{
		Partner:     dto.ToPartnerView(access.Partner),
		Channel:     channel.String(),
		Items:       dto.ToMenuItemViews(items, res),
		GeneratedAt: now,
	}
	if access.QRCode != nil {
		view.TableLabel = access.QRCode.TableLabel()
	}
	result.Menu = view
	return result, nil
}

// loadCatalog loads items and offers concurrently. Offers are display data:
// when they cannot be read the menu is served at catalog prices.
func loadCatalog(ctx context.Context, loader CatalogLoader, log logger.Interface, partnerID string, now time.Time) ([]*menu.MenuItem, []*offer.Offer, error) {
	var (
		items  []*menu.MenuItem
		offers []*offer.Offer
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		items, err = loader.MenuItems(gctx, partnerID)
		return err
	})
	g.Go(func() error {
		loaded, err := loader.LiveOffers(gctx, partnerID, now)
		if err != nil {
			log.Warnw("failed to load offers, serving catalog prices",
				"partner_id", partnerID,
				"error", err,
			)
			return nil
		}
		offers = loaded
		return nil
	})
	if err := g.Wait(); err != nil {
		log.Errorw("failed to load menu", "partner_id", partnerID, "error", err)
		return nil, nil, apperrors.NewInternalError("failed to load menu")
	}
	return items, offers, nil
}

func resolve(log logger.Interface, partnerID string, items []*menu.MenuItem, offers []*offer.Offer, now time.Time, channel offer.Type) *pricing.Resolution {
	res := pricing.Resolve(offers, pricing.NewCatalog(items), now, channel)
	for _, s := range res.Skipped {
		log.Warnw("offer skipped during price resolution",
			"partner_id", partnerID,
			"offer_id", s.OfferID,
			"menu_item_id", s.MenuItemID,
			"reason", s.Reason,
		)
	}
	return res
}
