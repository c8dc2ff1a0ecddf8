package catalog

import (
	"context"
	"fmt"
	"time"

	"github.com/tablescan/qrmenu/internal/domain/menu"
	"github.com/tablescan/qrmenu/internal/domain/offer"
	"github.com/tablescan/qrmenu/internal/shared/logger"
)

// Loader reads menus and live offers through a Cache.
type Loader struct {
	menuRepo  menu.Repository
	offerRepo offer.Repository
	cache     Cache
	logger    logger.Interface
}

func NewLoader(menuRepo menu.Repository, offerRepo offer.Repository, cache Cache, logger logger.Interface) *Loader {
	if cache == nil {
		cache = NoCache{}
	}
	return &Loader{
		menuRepo:  menuRepo,
		offerRepo: offerRepo,
		cache:     cache,
		logger:    logger,
	}
}

// MenuItems returns the partner's catalog.
func (l *Loader) MenuItems(ctx context.Context, partnerID string) ([]*menu.MenuItem, error) {
	v, err := l.cache.GetOrLoad(ctx, menuKey(partnerID), []string{MenuTag(partnerID)},
		func(ctx context.Context) (any, error) {
			items, err := l.menuRepo.ListByPartner(ctx, partnerID)
			if err != nil {
				return nil, fmt.Errorf("failed to list menu items: %w", err)
			}
			l.logger.Debugw("menu loaded", "partner_id", partnerID, "count", len(items))
			return items, nil
		})
	if err != nil {
		return nil, err
	}
	return v.([]*menu.MenuItem), nil
}

// LiveOffers returns the partner's offers that had not ended when loaded.
// Entries can outlive an offer's end; callers filter by their own now.
func (l *Loader) LiveOffers(ctx context.Context, partnerID string, now time.Time) ([]*offer.Offer, error) {
	v, err := l.cache.GetOrLoad(ctx, offersKey(partnerID), []string{OffersTag(partnerID)},
		func(ctx context.Context) (any, error) {
			offers, err := l.offerRepo.ListLiveByPartner(ctx, partnerID, now)
			if err != nil {
				return nil, fmt.Errorf("failed to list offers: %w", err)
			}
			l.logger.Debugw("offers loaded", "partner_id", partnerID, "count", len(offers))
			return offers, nil
		})
	if err != nil {
		return nil, err
	}
	return v.([]*offer.Offer), nil
}

// InvalidatePartner drops cached menu and offers for a partner.
func (l *Loader) InvalidatePartner(partnerID string) {
	l.cache.InvalidateTag(MenuTag(partnerID))
	l.cache.InvalidateTag(OffersTag(partnerID))
}

// InvalidateOffers drops cached offers for a partner.
func (l *Loader) InvalidateOffers(partnerID string) {
	l.cache.InvalidateTag(OffersTag(partnerID))
}
