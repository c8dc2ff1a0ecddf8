package pricing

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	ErrInvalidChargeMode   = errors.New("invalid charge mode")
	ErrInvalidBracketRange = errors.New("charge bracket max amount must be greater than min amount")
	ErrNegativeBracket     = errors.New("charge bracket amounts must not be negative")
	ErrOverlappingBrackets = errors.New("charge brackets must be sorted and must not overlap")
)

// ChargeMode decides how a matched bracket charge is applied.
type ChargeMode string

const (
	ChargeModeFlatFee ChargeMode = "FLAT_FEE"
	ChargeModePerItem ChargeMode = "PER_ITEM"
)

func (m ChargeMode) IsValid() bool {
	return m == ChargeModeFlatFee || m == ChargeModePerItem
}

// ParseChargeMode parses a mode case-insensitively. Empty means FLAT_FEE.
func ParseChargeMode(s string) (ChargeMode, error) {
	s = strings.ToUpper(strings.TrimSpace(s))
	if s == "" {
		return ChargeModeFlatFee, nil
	}
	m := ChargeMode(s)
	if !m.IsValid() {
		return "", fmt.Errorf("%w: %s", ErrInvalidChargeMode, s)
	}
	return m, nil
}

// ChargeBracket maps the subtotal range [MinAmount, MaxAmount) to a charge.
// A nil MaxAmount is unbounded above.
type ChargeBracket struct {
	MinAmount decimal.Decimal
	MaxAmount *decimal.Decimal
	Charge    decimal.Decimal
}

// Contains reports MinAmount <= amount < MaxAmount.
func (b ChargeBracket) Contains(amount decimal.Decimal) bool {
	if amount.LessThan(b.MinAmount) {
		return false
	}
	return b.MaxAmount == nil || amount.LessThan(*b.MaxAmount)
}

// ChargeBracketSet is an ordered, non-overlapping list of brackets.
type ChargeBracketSet struct {
	mode     ChargeMode
	brackets []ChargeBracket
}

// NewChargeBracketSet validates and builds a bracket set.
func NewChargeBracketSet(mode ChargeMode, brackets []ChargeBracket) (*ChargeBracketSet, error) {
	if !mode.IsValid() {
		return nil, fmt.Errorf("%w: %s", ErrInvalidChargeMode, mode)
	}
	for i, b := range brackets {
		if b.MinAmount.IsNegative() || b.Charge.IsNegative() {
			return nil, fmt.Errorf("%w: bracket %d", ErrNegativeBracket, i)
		}
		if b.MaxAmount != nil && !b.MaxAmount.GreaterThan(b.MinAmount) {
			return nil, fmt.Errorf("%w: bracket %d", ErrInvalidBracketRange, i)
		}
		if i > 0 {
			prev := brackets[i-1]
			if prev.MaxAmount == nil || b.MinAmount.LessThan(*prev.MaxAmount) {
				return nil, fmt.Errorf("%w: bracket %d", ErrOverlappingBrackets, i)
			}
		}
	}
	return &ChargeBracketSet{
		mode:     mode,
		brackets: append([]ChargeBracket(nil), brackets...),
	}, nil
}

// LegacyFlatCharge converts a single stored "extra charge" value into a
// one-bracket FLAT_FEE set covering [0, ∞).
func LegacyFlatCharge(charge decimal.Decimal) (*ChargeBracketSet, error) {
	return NewChargeBracketSet(ChargeModeFlatFee, []ChargeBracket{
		{MinAmount: decimal.Zero, Charge: charge},
	})
}

// EmptyChargeBracketSet returns a set that never matches.
func EmptyChargeBracketSet() *ChargeBracketSet {
	return &ChargeBracketSet{mode: ChargeModeFlatFee}
}

func (s *ChargeBracketSet) Mode() ChargeMode { return s.mode }

func (s *ChargeBracketSet) Brackets() []ChargeBracket {
	return append([]ChargeBracket(nil), s.brackets...)
}

func (s *ChargeBracketSet) IsEmpty() bool { return s == nil || len(s.brackets) == 0 }

// Match returns the first bracket containing amount.
func (s *ChargeBracketSet) Match(amount decimal.Decimal) (ChargeBracket, bool) {
	if s == nil {
		return ChargeBracket{}, false
	}
	for _, b := range s.brackets {
		if b.Contains(amount) {
			return b, true
		}
	}
	return ChargeBracket{}, false
}

// LineItem is one priced order line.
type LineItem struct {
	UnitPrice decimal.Decimal
	Quantity  int64
}

// Total returns UnitPrice × Quantity.
func (l LineItem) Total() decimal.Decimal {
	return l.UnitPrice.Mul(decimal.NewFromInt(l.Quantity))
}

// Subtotal sums price × quantity over items.
func Subtotal(items []LineItem) decimal.Decimal {
	sum := decimal.Zero
	for _, it := range items {
		sum = sum.Add(it.Total())
	}
	return sum
}

// TotalQuantity sums quantities over items.
func TotalQuantity(items []LineItem) int64 {
	var n int64
	for _, it := range items {
		n += it.Quantity
	}
	return n
}

// CalculateBracketCharge returns the surcharge for items under set. A nil or
// empty set, or a subtotal no bracket contains, yields zero.
func CalculateBracketCharge(items []LineItem, set *ChargeBracketSet) decimal.Decimal {
	if set.IsEmpty() {
		return decimal.Zero
	}
	b, ok := set.Match(Subtotal(items))
	if !ok {
		return decimal.Zero
	}

	var charge decimal.Decimal
	switch set.Mode() {
	case ChargeModePerItem:
		charge = b.Charge.Mul(decimal.NewFromInt(TotalQuantity(items)))
	default:
		charge = b.Charge
	}
	if charge.IsNegative() {
		return decimal.Zero
	}
	return charge
}
