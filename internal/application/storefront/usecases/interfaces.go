// Package usecases implements the storefront request pipeline: the
// entitlement gate, menu pricing and order quotes.
package usecases

import (
	"context"
	"time"

	"github.com/tablescan/qrmenu/internal/domain/menu"
	"github.com/tablescan/qrmenu/internal/domain/offer"
)

// AccessEvaluator gates a storefront request.
type AccessEvaluator interface {
	Execute(ctx context.Context, cmd EvaluateAccessCommand) (*AccessResult, error)
}

// CatalogLoader reads menus and offers, possibly through a cache.
type CatalogLoader interface {
	MenuItems(ctx context.Context, partnerID string) ([]*menu.MenuItem, error)
	LiveOffers(ctx context.Context, partnerID string, now time.Time) ([]*offer.Offer, error)
}
