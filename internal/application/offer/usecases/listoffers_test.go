package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/tablescan/qrmenu/internal/domain/offer"
	"github.com/tablescan/qrmenu/internal/shared/errors"
	"github.com/tablescan/qrmenu/internal/shared/logger"
)

func TestListOffersUseCase_Execute(t *testing.T) {
	repo := new(mockOfferRepository)
	uc := NewListOffersUseCase(repo, logger.NewNopLogger())
	uc.now = func() time.Time { return testNow }

	active := existingOffer(t, "ofr_a", "", 150, offer.TypeAll, testNow.Add(-time.Hour))
	upcoming := existingOffer(t, "ofr_b", "Large", 250, offer.TypeDelivery, testNow.Add(time.Hour))

	dineIn := offer.TypeDelivery
	repo.On("List", mock.Anything, offer.Filter{
		PartnerID: "ptn_1",
		OfferType: &dineIn,
		Now:       testNow,
		Page:      1,
		PageSize:  20,
	}).Return([]*offer.Offer{active, upcoming}, int64(2), nil)

	resp, err := uc.Execute(context.Background(), ListOffersQuery{
		PartnerID: "ptn_1",
		OfferType: "delivery",
		Page:      1,
		PageSize:  20,
	})

	require.NoError(t, err)
	require.Len(t, resp.Offers, 2)
	assert.Equal(t, "active", resp.Offers[0].Status)
	assert.Equal(t, "upcoming", resp.Offers[1].Status)
	assert.Equal(t, int64(2), resp.Pagination.Total)
	repo.AssertExpectations(t)
}

func TestListOffersUseCase_InvalidFilters(t *testing.T) {
	repo := new(mockOfferRepository)
	uc := NewListOffersUseCase(repo, logger.NewNopLogger())

	_, err := uc.Execute(context.Background(), ListOffersQuery{PartnerID: "ptn_1", Status: "archived"})
	assert.True(t, errors.IsValidationError(err))

	_, err = uc.Execute(context.Background(), ListOffersQuery{PartnerID: "ptn_1", OfferType: "pickup"})
	assert.True(t, errors.IsValidationError(err))

	repo.AssertNotCalled(t, "List", mock.Anything, mock.Anything)
}
