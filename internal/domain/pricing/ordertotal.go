package pricing

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	ErrNegativeQuantity     = errors.New("quantity must not be negative")
	ErrNegativeUnitPrice    = errors.New("unit price must not be negative")
	ErrNegativeManualCharge = errors.New("manual charge must not be negative")
	ErrNegativeTaxPercent   = errors.New("tax percent must not be negative")
)

// ManualCharge is a staff-entered named charge such as a packing fee.
type ManualCharge struct {
	Name   string
	Amount decimal.Decimal
}

// OrderInput is everything needed to total an order.
type OrderInput struct {
	Items         []LineItem
	ManualCharges []ManualCharge
	Brackets      *ChargeBracketSet // optional
	TaxPercent    decimal.Decimal
}

// TotalBreakdown is a computed order total with its parts.
type TotalBreakdown struct {
	Subtotal      decimal.Decimal
	ManualCharges []ManualCharge
	ManualTotal   decimal.Decimal
	BracketCharge decimal.Decimal
	TaxPercent    decimal.Decimal
	TaxAmount     decimal.Decimal
	GrandTotal    decimal.Decimal
}

// Validate rejects inputs that would produce a negative breakdown field.
func (in OrderInput) Validate() error {
	for i, it := range in.Items {
		if it.Quantity < 0 {
			return fmt.Errorf("%w: line %d", ErrNegativeQuantity, i)
		}
		if it.UnitPrice.IsNegative() {
			return fmt.Errorf("%w: line %d", ErrNegativeUnitPrice, i)
		}
	}
	for _, mc := range in.ManualCharges {
		if mc.Amount.IsNegative() {
			return fmt.Errorf("%w: %s", ErrNegativeManualCharge, mc.Name)
		}
	}
	if in.TaxPercent.IsNegative() {
		return ErrNegativeTaxPercent
	}
	return nil
}

// ComposeOrderTotal totals an order. Tax is charged on the food subtotal
// only; manual and bracket charges are added untaxed.
func ComposeOrderTotal(in OrderInput) (*TotalBreakdown, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	subtotal := Subtotal(in.Items)

	manualTotal := decimal.Zero
	charges := make([]ManualCharge, 0, len(in.ManualCharges))
	for _, mc := range in.ManualCharges {
		manualTotal = manualTotal.Add(mc.Amount)
		charges = append(charges, ManualCharge{Name: strings.TrimSpace(mc.Name), Amount: mc.Amount})
	}

	bracketCharge := CalculateBracketCharge(in.Items, in.Brackets)
	taxAmount := subtotal.Mul(in.TaxPercent).Div(hundred)

	return &TotalBreakdown{
		Subtotal:      subtotal,
		ManualCharges: charges,
		ManualTotal:   manualTotal,
		BracketCharge: bracketCharge,
		TaxPercent:    in.TaxPercent,
		TaxAmount:     taxAmount,
		GrandTotal:    subtotal.Add(manualTotal).Add(bracketCharge).Add(taxAmount),
	}, nil
}
