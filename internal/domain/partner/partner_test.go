package partner

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReconstructPartner(t *testing.T) {
	now := time.Now()

	p, err := ReconstructPartner("ptn_1", "Cafe", Status("suspended"), " in ", decimal.NewFromInt(5), "", now, now)
	require.NoError(t, err)
	assert.Equal(t, StatusInactive, p.Status())
	assert.False(t, p.IsActive())
	assert.Equal(t, "IN", p.Country())
	assert.True(t, p.IsDomestic("in"))
	assert.False(t, p.IsDomestic("AE"))

	_, err = ReconstructPartner("", "Cafe", StatusActive, "IN", decimal.Zero, "", now, now)
	assert.ErrorIs(t, err, ErrPartnerIDRequired)

	_, err = ReconstructPartner("ptn_1", "Cafe", StatusActive, "IN", decimal.NewFromInt(-1), "", now, now)
	assert.ErrorIs(t, err, ErrInvalidTaxPercent)
}

func TestReconstructQRGroup_NilChargesNeverMatch(t *testing.T) {
	g, err := ReconstructQRGroup("qrg_1", "ptn_1", "Patio", nil)
	require.NoError(t, err)
	assert.True(t, g.Charges().IsEmpty())
}
