package offer

import (
	"context"
	"time"
)

// Repository persists offers. Several offers may share a Key in storage;
// the resolved storefront view is what guarantees one offer per Key.
type Repository interface {
	Create(ctx context.Context, o *Offer) error
	GetByID(ctx context.Context, id string) (*Offer, error)
	// ListLiveByPartner returns the partner's offers that have not ended at now.
	ListLiveByPartner(ctx context.Context, partnerID string, now time.Time) ([]*Offer, error)
	// ListLiveByMenuItem returns offers on one item that have not ended at now.
	ListLiveByMenuItem(ctx context.Context, menuItemID string, now time.Time) ([]*Offer, error)
	List(ctx context.Context, filter Filter) ([]*Offer, int64, error)
	DeleteByIDs(ctx context.Context, ids []string) error
	// DeleteExpiredCustom removes offers that ended before now and target a
	// custom (offer-only) menu item.
	DeleteExpiredCustom(ctx context.Context, now time.Time, limit int) (int64, error)
}

// Status selects offers by their window relative to Filter.Now.
type Status string

const (
	StatusActive   Status = "active"
	StatusUpcoming Status = "upcoming"
	StatusExpired  Status = "expired"
)

// Filter narrows List results. An empty Status lists every offer.
type Filter struct {
	PartnerID string
	OfferType *Type
	Status    Status
	Now       time.Time
	Page      int
	PageSize  int
}
