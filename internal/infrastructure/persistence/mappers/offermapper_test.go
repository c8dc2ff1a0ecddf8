package mappers

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"

	"github.com/tablescan/qrmenu/internal/domain/offer"
	"github.com/tablescan/qrmenu/internal/infrastructure/persistence/models"
	"github.com/tablescan/qrmenu/internal/shared/logger"
)

func TestOfferMapper_MalformedVariantBecomesBaseOffer(t *testing.T) {
	m := NewOfferMapper(logger.NewNopLogger())
	start := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

	entity, err := m.ToEntity(&models.OfferModel{
		ID:         "ofr_1",
		PartnerID:  "ptn_1",
		MenuItemID: "itm_1",
		Variant:    datatypes.JSON(`{broken`),
		OfferPrice: decimal.NewFromInt(99),
		StartTime:  start,
		EndTime:    start.Add(24 * time.Hour),
		OfferType:  "",
		CreatedAt:  start,
	})

	require.NoError(t, err)
	assert.Nil(t, entity.Variant())
	assert.Equal(t, offer.TypeAll, entity.OfferType())
	assert.Equal(t, offer.NewKey("itm_1", ""), entity.Key())
}

func TestOfferMapper_RoundTrip(t *testing.T) {
	m := NewOfferMapper(logger.NewNopLogger())
	now := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

	o, err := offer.NewOffer("ofr_1", "ptn_1", "itm_1",
		&offer.VariantRef{Name: "Large", Price: decimal.NewNullDecimal(decimal.NewFromInt(300))},
		decimal.NewFromInt(240), now, now.Add(time.Hour), offer.TypeDineIn, now)
	require.NoError(t, err)

	model, err := m.ToModel(o)
	require.NoError(t, err)

	back, err := m.ToEntity(model)
	require.NoError(t, err)
	assert.Equal(t, "Large", back.VariantName())
	assert.True(t, back.Variant().Price.Decimal.Equal(decimal.NewFromInt(300)))
	assert.Equal(t, offer.TypeDineIn, back.OfferType())
	assert.True(t, back.OfferPrice().Equal(decimal.NewFromInt(240)))
}
