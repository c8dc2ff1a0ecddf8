package entitlement

import (
	"context"
	"time"
)

// SubscriptionReader reads subscription state. Implementations must not cache.
type SubscriptionReader interface {
	// GetCurrent returns the partner's subscription or ErrSubscriptionNotFound
	GetCurrent(ctx context.Context, partnerID string) (*SubscriptionState, error)
}

// PlanCatalogReader reads the static plan catalog
type PlanCatalogReader interface {
	// GetPlan returns a plan or ErrPlanNotFound
	GetPlan(ctx context.Context, planID string) (*Plan, error)
}

// ScanEvent is one counted storefront visit
type ScanEvent struct {
	PartnerID string
	QRCodeID  string // empty for visits that did not come through a QR code
	At        time.Time
}

// ScanCounter stores monotonically increasing scan counters.
// Increment must be atomic with respect to concurrent callers.
type ScanCounter interface {
	// Increment adds one to the QR lifetime, partner monthly and partner lifetime counters
	Increment(ctx context.Context, event ScanEvent) error

	// PartnerCount returns the partner's scans in the window containing at
	PartnerCount(ctx context.Context, partnerID string, window ScanWindow, at time.Time) (int64, error)

	// QRCount returns the lifetime scans of one QR code
	QRCount(ctx context.Context, qrCodeID string) (int64, error)
}
