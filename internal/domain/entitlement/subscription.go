package entitlement

import "time"

// SubscriptionState is a partner's current subscription, always read fresh.
// A nil ExpiryDate means the subscription does not expire.
type SubscriptionState struct {
	PartnerID  string
	PlanID     string
	Status     string
	ExpiryDate *time.Time
}

// IsExpiredAt reports expiry_date < now. A missing subscription counts as
// expired.
func (s *SubscriptionState) IsExpiredAt(now time.Time) bool {
	if s == nil {
		return true
	}
	return s.ExpiryDate != nil && s.ExpiryDate.Before(now)
}
