package pricing

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr(d decimal.Decimal) *decimal.Decimal { return &d }

func tieredSet(t *testing.T, mode ChargeMode) *ChargeBracketSet {
	t.Helper()
	set, err := NewChargeBracketSet(mode, []ChargeBracket{
		{MinAmount: dec("0"), MaxAmount: ptr(dec("500")), Charge: dec("10")},
		{MinAmount: dec("500"), Charge: dec("20")},
	})
	require.NoError(t, err)
	return set
}

func TestCalculateBracketCharge_Boundary(t *testing.T) {
	set := tieredSet(t, ChargeModeFlatFee)

	tests := []struct {
		name     string
		subtotal string
		want     string
	}{
		{"lower bound inclusive", "0", "10"},
		{"just below upper bound", "499.99", "10"},
		{"upper bound exclusive", "500", "20"},
		{"unbounded tail", "100000", "20"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			items := []LineItem{{UnitPrice: dec(tt.subtotal), Quantity: 1}}
			assertDecimal(t, tt.want, CalculateBracketCharge(items, set))
		})
	}
}

func TestCalculateBracketCharge_PerItemUsesTotalQuantity(t *testing.T) {
	set, err := NewChargeBracketSet(ChargeModePerItem, []ChargeBracket{
		{MinAmount: dec("0"), Charge: dec("5")},
	})
	require.NoError(t, err)

	items := []LineItem{
		{UnitPrice: dec("100"), Quantity: 2},
		{UnitPrice: dec("40"), Quantity: 1},
		{UnitPrice: dec("15"), Quantity: 4},
	}
	assertDecimal(t, "35", CalculateBracketCharge(items, set))
}

func TestCalculateBracketCharge_NoMatchIsZero(t *testing.T) {
	items := []LineItem{{UnitPrice: dec("100"), Quantity: 1}}

	assertDecimal(t, "0", CalculateBracketCharge(items, nil))
	assertDecimal(t, "0", CalculateBracketCharge(items, EmptyChargeBracketSet()))

	gap, err := NewChargeBracketSet(ChargeModeFlatFee, []ChargeBracket{
		{MinAmount: dec("200"), Charge: dec("30")},
	})
	require.NoError(t, err)
	assertDecimal(t, "0", CalculateBracketCharge(items, gap))
}

func TestLegacyFlatCharge(t *testing.T) {
	set, err := LegacyFlatCharge(dec("25"))
	require.NoError(t, err)
	assert.Equal(t, ChargeModeFlatFee, set.Mode())
	require.Len(t, set.Brackets(), 1)
	assert.Nil(t, set.Brackets()[0].MaxAmount)

	items := []LineItem{{UnitPrice: dec("999"), Quantity: 3}}
	assertDecimal(t, "25", CalculateBracketCharge(items, set))
}

func TestNewChargeBracketSet_Validation(t *testing.T) {
	tests := []struct {
		name     string
		mode     ChargeMode
		brackets []ChargeBracket
		wantErr  error
	}{
		{
			name:    "unknown mode",
			mode:    ChargeMode("PER_KM"),
			wantErr: ErrInvalidChargeMode,
		},
		{
			name: "empty range",
			mode: ChargeModeFlatFee,
			brackets: []ChargeBracket{
				{MinAmount: dec("100"), MaxAmount: ptr(dec("100")), Charge: dec("1")},
			},
			wantErr: ErrInvalidBracketRange,
		},
		{
			name: "negative charge",
			mode: ChargeModeFlatFee,
			brackets: []ChargeBracket{
				{MinAmount: dec("0"), Charge: dec("-1")},
			},
			wantErr: ErrNegativeBracket,
		},
		{
			name: "overlap",
			mode: ChargeModeFlatFee,
			brackets: []ChargeBracket{
				{MinAmount: dec("0"), MaxAmount: ptr(dec("300")), Charge: dec("5")},
				{MinAmount: dec("200"), Charge: dec("10")},
			},
			wantErr: ErrOverlappingBrackets,
		},
		{
			name: "bracket after unbounded",
			mode: ChargeModeFlatFee,
			brackets: []ChargeBracket{
				{MinAmount: dec("0"), Charge: dec("5")},
				{MinAmount: dec("200"), Charge: dec("10")},
			},
			wantErr: ErrOverlappingBrackets,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewChargeBracketSet(tt.mode, tt.brackets)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestParseChargeMode(t *testing.T) {
	m, err := ParseChargeMode("per_item")
	require.NoError(t, err)
	assert.Equal(t, ChargeModePerItem, m)

	m, err = ParseChargeMode("")
	require.NoError(t, err)
	assert.Equal(t, ChargeModeFlatFee, m)

	_, err = ParseChargeMode("hourly")
	assert.ErrorIs(t, err, ErrInvalidChargeMode)
}
