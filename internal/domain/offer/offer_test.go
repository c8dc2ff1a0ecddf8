package offer

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var baseNow = time.Date(2025, 5, 10, 12, 0, 0, 0, time.UTC)

func TestNewOffer_Validation(t *testing.T) {
	tests := []struct {
		name    string
		price   decimal.Decimal
		start   time.Time
		end     time.Time
		typ     Type
		wantErr error
	}{
		{
			name:  "valid",
			price: decimal.NewFromInt(80),
			start: baseNow,
			end:   baseNow.Add(time.Hour),
			typ:   TypeAll,
		},
		{
			name:    "zero price",
			price:   decimal.Zero,
			start:   baseNow,
			end:     baseNow.Add(time.Hour),
			typ:     TypeAll,
			wantErr: ErrInvalidOfferPrice,
		},
		{
			name:    "end before start",
			price:   decimal.NewFromInt(80),
			start:   baseNow,
			end:     baseNow.Add(-time.Minute),
			typ:     TypeAll,
			wantErr: ErrInvalidWindow,
		},
		{
			name:    "already ended",
			price:   decimal.NewFromInt(80),
			start:   baseNow.Add(-2 * time.Hour),
			end:     baseNow.Add(-time.Hour),
			typ:     TypeAll,
			wantErr: ErrAlreadyEnded,
		},
		{
			name:    "unknown type",
			price:   decimal.NewFromInt(80),
			start:   baseNow,
			end:     baseNow.Add(time.Hour),
			typ:     Type("takeaway"),
			wantErr: ErrInvalidOfferType,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o, err := NewOffer("ofr_1", "ptn_1", "itm_1", nil, tt.price, tt.start, tt.end, tt.typ, baseNow)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, baseNow, o.CreatedAt())
		})
	}
}

func TestOffer_Windows(t *testing.T) {
	o, err := ReconstructOffer("ofr_1", "ptn_1", "itm_1", nil, decimal.NewFromInt(50),
		baseNow, baseNow.Add(time.Hour), TypeAll, 0, baseNow)
	require.NoError(t, err)

	assert.True(t, o.IsUpcomingAt(baseNow.Add(-time.Second)))
	assert.False(t, o.IsActiveAt(baseNow.Add(-time.Second)))

	assert.True(t, o.IsActiveAt(baseNow), "start boundary is inclusive")
	assert.True(t, o.IsActiveAt(baseNow.Add(time.Hour)), "end boundary is inclusive")

	assert.False(t, o.IsActiveAt(baseNow.Add(time.Hour+time.Second)))
	assert.True(t, o.IsExpiredAt(baseNow.Add(time.Hour+time.Second)))
}

func TestOffer_AppliesTo(t *testing.T) {
	mk := func(typ Type) *Offer {
		o, err := ReconstructOffer("ofr_1", "ptn_1", "itm_1", nil, decimal.NewFromInt(50),
			baseNow, baseNow.Add(time.Hour), typ, 0, baseNow)
		require.NoError(t, err)
		return o
	}

	assert.True(t, mk(TypeAll).AppliesTo(TypeDelivery))
	assert.True(t, mk(TypeDelivery).AppliesTo(TypeDelivery))
	assert.False(t, mk(TypeDelivery).AppliesTo(TypeDineIn))
	assert.True(t, mk(TypeDineIn).AppliesTo(""))
}

func TestOffer_Key(t *testing.T) {
	base, err := ReconstructOffer("ofr_1", "ptn_1", "itm_9", nil, decimal.NewFromInt(50),
		baseNow, baseNow.Add(time.Hour), TypeAll, 0, baseNow)
	require.NoError(t, err)
	assert.Equal(t, Key("itm_9|base"), base.Key())

	withVariant, err := ReconstructOffer("ofr_2", "ptn_1", "itm_9", &VariantRef{Name: "Large"}, decimal.NewFromInt(50),
		baseNow, baseNow.Add(time.Hour), TypeAll, 0, baseNow)
	require.NoError(t, err)
	assert.Equal(t, Key("itm_9|Large"), withVariant.Key())

	blankVariant, err := ReconstructOffer("ofr_3", "ptn_1", "itm_9", &VariantRef{Name: ""}, decimal.NewFromInt(50),
		baseNow, baseNow.Add(time.Hour), TypeAll, 0, baseNow)
	require.NoError(t, err)
	assert.Nil(t, blankVariant.Variant(), "blank variant name means no variant")
}

func TestReconstructOffer_LegacyTypeDefaultsToAll(t *testing.T) {
	o, err := ReconstructOffer("ofr_1", "ptn_1", "itm_1", nil, decimal.NewFromInt(50),
		baseNow, baseNow.Add(time.Hour), Type(""), 0, baseNow)
	require.NoError(t, err)
	assert.Equal(t, TypeAll, o.OfferType())
}

func TestParseChannel(t *testing.T) {
	ch, err := ParseChannel(" Dine_In ")
	require.NoError(t, err)
	assert.Equal(t, TypeDineIn, ch)

	ch, err = ParseChannel("")
	require.NoError(t, err)
	assert.Equal(t, Type(""), ch)

	_, err = ParseChannel("all")
	assert.ErrorIs(t, err, ErrInvalidChannel)
}
