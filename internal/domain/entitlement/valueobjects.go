// Package entitlement decides whether a storefront request may be served,
// based on partner standing, subscription expiry and scan-volume limits.
package entitlement

import (
	"fmt"
	"strings"
)

// Disposition is the outcome of gating one storefront request
type Disposition string

const (
	// DispositionOK allows the request to proceed
	DispositionOK Disposition = "OK"
	// DispositionScanLimitReached denies an international partner over its plan limit
	DispositionScanLimitReached Disposition = "SCAN_LIMIT_REACHED"
	// DispositionSubscriptionExpired denies a partner whose subscription lapsed
	DispositionSubscriptionExpired Disposition = "SUBSCRIPTION_EXPIRED"
	// DispositionInactive denies a partner switched off by an admin
	DispositionInactive Disposition = "INACTIVE"
	// DispositionNotFound denies a request for an unknown partner or QR code
	DispositionNotFound Disposition = "NOT_FOUND"
)

// IsOK checks if the disposition allows the request
func (d Disposition) IsOK() bool {
	return d == DispositionOK
}

// String returns the string representation of the disposition
func (d Disposition) String() string {
	return string(d)
}

// ScanWindow selects which aggregate a scan limit is checked against
type ScanWindow string

const (
	// ScanWindowMonthly counts scans in the current business month
	ScanWindowMonthly ScanWindow = "monthly"
	// ScanWindowLifetime counts every scan the partner ever received
	ScanWindowLifetime ScanWindow = "lifetime"
)

// IsValid checks if the scan window is valid
func (w ScanWindow) IsValid() bool {
	switch w {
	case ScanWindowMonthly, ScanWindowLifetime:
		return true
	default:
		return false
	}
}

// ParseScanWindow parses a configured window name
func ParseScanWindow(s string) (ScanWindow, error) {
	w := ScanWindow(strings.ToLower(strings.TrimSpace(s)))
	if !w.IsValid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidScanWindow, s)
	}
	return w, nil
}

// String returns the string representation of the scan window
func (w ScanWindow) String() string {
	return string(w)
}
