package entitlement

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var now = time.Date(2025, 3, 15, 9, 30, 0, 0, time.UTC)

func expiresAt(t time.Time) *time.Time { return &t }

func activeSubscription() *SubscriptionState {
	return &SubscriptionState{PartnerID: "ptn_1", PlanID: "intl_basic", Status: "active", ExpiryDate: expiresAt(now.Add(24 * time.Hour))}
}

func international() *PartnerStanding {
	return &PartnerStanding{Active: true, Country: "AE"}
}

func TestDecide_Order(t *testing.T) {
	expired := &SubscriptionState{ExpiryDate: expiresAt(now.Add(-time.Minute))}

	tests := []struct {
		name string
		in   DecisionInput
		want Disposition
	}{
		{
			name: "missing partner wins over everything",
			in:   DecisionInput{Subscription: expired, ScanLimit: 1, ScanCount: 99},
			want: DispositionNotFound,
		},
		{
			name: "inactive before expiry",
			in:   DecisionInput{Partner: &PartnerStanding{Active: false, Country: "AE"}, Subscription: expired},
			want: DispositionInactive,
		},
		{
			name: "expiry before scan limit",
			in:   DecisionInput{Partner: international(), Subscription: expired, ScanLimit: 10, ScanCount: 10},
			want: DispositionSubscriptionExpired,
		},
		{
			name: "no subscription is expired",
			in:   DecisionInput{Partner: international(), ScanLimit: Unlimited},
			want: DispositionSubscriptionExpired,
		},
		{
			name: "limit reached",
			in:   DecisionInput{Partner: international(), Subscription: activeSubscription(), ScanLimit: 10, ScanCount: 10},
			want: DispositionScanLimitReached,
		},
		{
			name: "ok",
			in:   DecisionInput{Partner: international(), Subscription: activeSubscription(), ScanLimit: 10, ScanCount: 3},
			want: DispositionOK,
		},
		{
			name: "expiry instant itself is still valid",
			in: DecisionInput{
				Partner:      international(),
				Subscription: &SubscriptionState{ExpiryDate: expiresAt(now)},
				ScanLimit:    Unlimited,
			},
			want: DispositionOK,
		},
		{
			name: "no expiry date never expires",
			in: DecisionInput{
				Partner:      international(),
				Subscription: &SubscriptionState{PlanID: "intl_unlimited", Status: "active"},
				ScanLimit:    Unlimited,
			},
			want: DispositionOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.in.Now = now
			tt.in.DomesticCountry = "IN"
			assert.Equal(t, tt.want, Decide(tt.in))
		})
	}
}

func TestDecide_ScanMonotonicity(t *testing.T) {
	const limit = int64(500)
	base := DecisionInput{
		Partner:         international(),
		Subscription:    activeSubscription(),
		DomesticCountry: "IN",
		ScanLimit:       limit,
		Now:             now,
	}

	base.ScanCount = limit - 1
	assert.Equal(t, DispositionOK, Decide(base))

	base.ScanCount = limit
	assert.Equal(t, DispositionScanLimitReached, Decide(base))

	base.ScanLimit = Unlimited
	for _, count := range []int64{0, 1, limit, 1 << 40} {
		base.ScanCount = count
		assert.Equal(t, DispositionOK, Decide(base), "count %d", count)
	}
}

func TestDecide_DomesticNeverLimited(t *testing.T) {
	for _, limit := range []int64{0, 1, 100} {
		for _, count := range []int64{0, 100, 1_000_000} {
			got := Decide(DecisionInput{
				Partner:         &PartnerStanding{Active: true, Country: "IN"},
				Subscription:    activeSubscription(),
				DomesticCountry: "IN",
				ScanLimit:       limit,
				ScanCount:       count,
				Now:             now,
			})
			assert.NotEqual(t, DispositionScanLimitReached, got, "limit %d count %d", limit, count)
		}
	}
}

func TestPlan_ScanLimit(t *testing.T) {
	n := func(v int64) *int64 { return &v }

	assert.Equal(t, int64(300), (&Plan{MaxScanCount: n(300), LegacyScanLimit: n(50)}).ScanLimit())
	assert.Equal(t, int64(50), (&Plan{LegacyScanLimit: n(50)}).ScanLimit())
	assert.Equal(t, Unlimited, (&Plan{MaxScanCount: n(-1)}).ScanLimit())
	assert.Equal(t, Unlimited, (&Plan{}).ScanLimit())

	var missing *Plan
	assert.Equal(t, int64(0), missing.ScanLimit())
}

func TestParseScanWindow(t *testing.T) {
	w, err := ParseScanWindow(" Lifetime ")
	assert.NoError(t, err)
	assert.Equal(t, ScanWindowLifetime, w)

	_, err = ParseScanWindow("weekly")
	assert.ErrorIs(t, err, ErrInvalidScanWindow)
}
