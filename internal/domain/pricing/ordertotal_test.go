package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComposeOrderTotal(t *testing.T) {
	items := []LineItem{
		{UnitPrice: dec("120"), Quantity: 2},
		{UnitPrice: dec("60"), Quantity: 1},
	}

	got, err := ComposeOrderTotal(OrderInput{
		Items:         items,
		ManualCharges: []ManualCharge{{Name: " packing ", Amount: dec("15")}},
		Brackets:      tieredSet(t, ChargeModeFlatFee),
		TaxPercent:    dec("5"),
	})
	require.NoError(t, err)

	assertDecimal(t, "300", got.Subtotal)
	assertDecimal(t, "15", got.ManualTotal)
	assertDecimal(t, "10", got.BracketCharge)
	assertDecimal(t, "15", got.TaxAmount)
	assertDecimal(t, "340", got.GrandTotal)
	require.Len(t, got.ManualCharges, 1)
	assert.Equal(t, "packing", got.ManualCharges[0].Name)
}

func TestComposeOrderTotal_TaxIgnoresSurcharges(t *testing.T) {
	items := []LineItem{{UnitPrice: dec("199.50"), Quantity: 3}}
	tax := dec("18")

	bare, err := ComposeOrderTotal(OrderInput{Items: items, TaxPercent: tax})
	require.NoError(t, err)

	loaded, err := ComposeOrderTotal(OrderInput{
		Items: items,
		ManualCharges: []ManualCharge{
			{Name: "service", Amount: dec("40")},
			{Name: "packing", Amount: dec("12.25")},
		},
		Brackets:   tieredSet(t, ChargeModePerItem),
		TaxPercent: tax,
	})
	require.NoError(t, err)

	assert.True(t, bare.TaxAmount.Equal(loaded.TaxAmount))
	assertDecimal(t, "107.73", loaded.TaxAmount)
	assert.True(t, loaded.GrandTotal.GreaterThan(bare.GrandTotal))
}

func TestComposeOrderTotal_NoBrackets(t *testing.T) {
	got, err := ComposeOrderTotal(OrderInput{
		Items:      []LineItem{{UnitPrice: dec("50"), Quantity: 2}},
		TaxPercent: dec("0"),
	})
	require.NoError(t, err)
	assertDecimal(t, "0", got.BracketCharge)
	assertDecimal(t, "100", got.GrandTotal)
}

func TestComposeOrderTotal_RejectsNegatives(t *testing.T) {
	tests := []struct {
		name    string
		in      OrderInput
		wantErr error
	}{
		{
			name:    "quantity",
			in:      OrderInput{Items: []LineItem{{UnitPrice: dec("10"), Quantity: -1}}},
			wantErr: ErrNegativeQuantity,
		},
		{
			name:    "unit price",
			in:      OrderInput{Items: []LineItem{{UnitPrice: dec("-10"), Quantity: 1}}},
			wantErr: ErrNegativeUnitPrice,
		},
		{
			name:    "manual charge",
			in:      OrderInput{ManualCharges: []ManualCharge{{Name: "refund", Amount: dec("-5")}}},
			wantErr: ErrNegativeManualCharge,
		},
		{
			name:    "tax",
			in:      OrderInput{TaxPercent: dec("-1")},
			wantErr: ErrNegativeTaxPercent,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ComposeOrderTotal(tt.in)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
