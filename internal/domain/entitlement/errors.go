package entitlement

import (
	"errors"
)

var (
	// ErrSubscriptionNotFound is returned when a partner has no subscription
	ErrSubscriptionNotFound = errors.New("subscription not found")

	// ErrPlanNotFound is returned when a plan is missing from the plan catalog
	ErrPlanNotFound = errors.New("plan not found")

	// ErrInvalidScanWindow is returned when a scan window is not recognised
	ErrInvalidScanWindow = errors.New("invalid scan window")

	// ErrPartnerIDRequired is returned when a scan event has no partner
	ErrPartnerIDRequired = errors.New("partner ID is required")
)
