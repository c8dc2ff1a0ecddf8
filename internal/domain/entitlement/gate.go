package entitlement

import (
	"time"
)

// PartnerStanding is the slice of a partner the gate needs.
type PartnerStanding struct {
	Active  bool
	Country string
}

// DecisionInput carries everything Decide reads. A nil Partner means the
// partner or QR code was not found; a nil Subscription means none exists.
type DecisionInput struct {
	Partner         *PartnerStanding
	Subscription    *SubscriptionState
	DomesticCountry string
	ScanLimit       int64
	ScanCount       int64
	Now             time.Time
}

// IsInternational reports whether the scan limit applies to the partner.
func (in DecisionInput) IsInternational() bool {
	return in.Partner != nil && in.Partner.Country != in.DomesticCountry
}

// Decide runs the gate checks in order: existence, status, subscription
// expiry, then the scan limit for international partners.
func Decide(in DecisionInput) Disposition {
	if in.Partner == nil {
		return DispositionNotFound
	}
	if !in.Partner.Active {
		return DispositionInactive
	}
	if in.Subscription.IsExpiredAt(in.Now) {
		return DispositionSubscriptionExpired
	}
	if in.IsInternational() && in.ScanLimit != Unlimited && in.ScanCount >= in.ScanLimit {
		return DispositionScanLimitReached
	}
	return DispositionOK
}
