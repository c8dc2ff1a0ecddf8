package entitlement

// Unlimited is the scan limit sentinel for plans without a cap.
const Unlimited int64 = -1

// Plan is one entry of the static plan catalog.
type Plan struct {
	ID     string
	Period string
	// MaxScanCount is the current limit field; nil falls back to LegacyScanLimit.
	MaxScanCount    *int64
	LegacyScanLimit *int64
}

// ScanLimit returns the plan's scan cap, or Unlimited. A plan that sets
// neither field is unlimited.
func (p *Plan) ScanLimit() int64 {
	switch {
	case p == nil:
		return 0
	case p.MaxScanCount != nil:
		return normalizeLimit(*p.MaxScanCount)
	case p.LegacyScanLimit != nil:
		return normalizeLimit(*p.LegacyScanLimit)
	default:
		return Unlimited
	}
}

func normalizeLimit(n int64) int64 {
	if n < 0 {
		return Unlimited
	}
	return n
}
