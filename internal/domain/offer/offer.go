package offer

import (
	"time"

	"github.com/shopspring/decimal"
)

// VariantRef names the variant an offer applies to. Price is the variant
// price captured when the offer was created; it may be missing on old rows.
type VariantRef struct {
	Name  string
	Price decimal.NullDecimal
}

// Offer is a time-boxed discounted price on a menu item or one of its variants.
type Offer struct {
	id           string
	partnerID    string
	menuItemID   string
	variant      *VariantRef
	offerPrice   decimal.Decimal
	startTime    time.Time
	endTime      time.Time
	offerType    Type
	enquiryCount int64
	createdAt    time.Time
}

// NewOffer creates a new offer. The window must be non-empty and must not
// have ended already.
func NewOffer(
	id string,
	partnerID string,
	menuItemID string,
	variant *VariantRef,
	offerPrice decimal.Decimal,
	startTime time.Time,
	endTime time.Time,
	offerType Type,
	now time.Time,
) (*Offer, error) {
	if id == "" {
		return nil, ErrOfferIDRequired
	}
	if partnerID == "" || menuItemID == "" {
		return nil, ErrOwnerRequired
	}
	if !offerPrice.IsPositive() {
		return nil, ErrInvalidOfferPrice
	}
	if !endTime.After(startTime) {
		return nil, ErrInvalidWindow
	}
	if endTime.Before(now) {
		return nil, ErrAlreadyEnded
	}
	if !offerType.IsValid() {
		return nil, ErrInvalidOfferType
	}
	if variant != nil && variant.Name == "" {
		variant = nil
	}

	return &Offer{
		id:         id,
		partnerID:  partnerID,
		menuItemID: menuItemID,
		variant:    copyVariant(variant),
		offerPrice: offerPrice,
		startTime:  startTime.UTC(),
		endTime:    endTime.UTC(),
		offerType:  offerType,
		createdAt:  now.UTC(),
	}, nil
}

// ReconstructOffer rebuilds an offer from persistence.
func ReconstructOffer(
	id string,
	partnerID string,
	menuItemID string,
	variant *VariantRef,
	offerPrice decimal.Decimal,
	startTime time.Time,
	endTime time.Time,
	offerType Type,
	enquiryCount int64,
	createdAt time.Time,
) (*Offer, error) {
	if id == "" {
		return nil, ErrOfferIDRequired
	}
	if partnerID == "" || menuItemID == "" {
		return nil, ErrOwnerRequired
	}
	if !offerType.IsValid() {
		// Rows written before offer types existed apply everywhere.
		offerType = TypeAll
	}
	if variant != nil && variant.Name == "" {
		variant = nil
	}

	return &Offer{
		id:           id,
		partnerID:    partnerID,
		menuItemID:   menuItemID,
		variant:      copyVariant(variant),
		offerPrice:   offerPrice,
		startTime:    startTime.UTC(),
		endTime:      endTime.UTC(),
		offerType:    offerType,
		enquiryCount: enquiryCount,
		createdAt:    createdAt.UTC(),
	}, nil
}

func copyVariant(v *VariantRef) *VariantRef {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}

func (o *Offer) ID() string                  { return o.id }
func (o *Offer) PartnerID() string           { return o.partnerID }
func (o *Offer) MenuItemID() string          { return o.menuItemID }
func (o *Offer) OfferPrice() decimal.Decimal { return o.offerPrice }
func (o *Offer) StartTime() time.Time        { return o.startTime }
func (o *Offer) EndTime() time.Time          { return o.endTime }
func (o *Offer) OfferType() Type             { return o.offerType }
func (o *Offer) EnquiryCount() int64         { return o.enquiryCount }
func (o *Offer) CreatedAt() time.Time        { return o.createdAt }

// Variant returns the targeted variant, or nil for a base-item offer.
func (o *Offer) Variant() *VariantRef {
	return copyVariant(o.variant)
}

// VariantName returns the targeted variant name, or "" for a base-item offer.
func (o *Offer) VariantName() string {
	if o.variant == nil {
		return ""
	}
	return o.variant.Name
}

// Key identifies the item+variant slot this offer competes for.
func (o *Offer) Key() Key {
	return NewKey(o.menuItemID, o.VariantName())
}

// IsActiveAt reports start <= now <= end.
func (o *Offer) IsActiveAt(now time.Time) bool {
	return !now.Before(o.startTime) && !now.After(o.endTime)
}

// IsUpcomingAt reports start > now.
func (o *Offer) IsUpcomingAt(now time.Time) bool {
	return o.startTime.After(now)
}

// IsExpiredAt reports end < now.
func (o *Offer) IsExpiredAt(now time.Time) bool {
	return o.endTime.Before(now)
}

// AppliesTo reports whether the offer is valid for the ordering channel.
// An empty channel matches every offer.
func (o *Offer) AppliesTo(channel Type) bool {
	if channel == "" || o.offerType == TypeAll {
		return true
	}
	return o.offerType == channel
}
