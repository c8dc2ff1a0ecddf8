// Package pricing holds the pure price computations of the storefront:
// offer resolution, bracket surcharges and order totals.
package pricing

import (
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// DiscountPercent returns round((original - offer) / original * 100), rounding
// half up. It returns 0 when original is zero or negative.
func DiscountPercent(original, offerPrice decimal.Decimal) int64 {
	if !original.IsPositive() {
		return 0
	}
	pct := original.Sub(offerPrice).Div(original).Mul(hundred)
	return pct.Add(decimal.NewFromFloat(0.5)).Floor().IntPart()
}
