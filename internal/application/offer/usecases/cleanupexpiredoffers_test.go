package usecases

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/tablescan/qrmenu/internal/shared/logger"
)

func TestCleanupExpiredOffersUseCase_Execute(t *testing.T) {
	offerRepo := new(mockOfferRepository)
	menuRepo := new(mockMenuRepository)
	uc := NewCleanupExpiredOffersUseCase(offerRepo, menuRepo, 100, logger.NewNopLogger())
	uc.now = func() time.Time { return testNow }

	offerRepo.On("DeleteExpiredCustom", mock.Anything, testNow, 100).Return(int64(4), nil)
	menuRepo.On("DeleteOrphanedCustom", mock.Anything, 100).Return(int64(2), nil)

	n, err := uc.Execute(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 6, n)
	offerRepo.AssertExpectations(t)
	menuRepo.AssertExpectations(t)
}

func TestCleanupExpiredOffersUseCase_StopsOnOfferError(t *testing.T) {
	offerRepo := new(mockOfferRepository)
	menuRepo := new(mockMenuRepository)
	uc := NewCleanupExpiredOffersUseCase(offerRepo, menuRepo, 0, logger.NewNopLogger())

	offerRepo.On("DeleteExpiredCustom", mock.Anything, mock.Anything, 500).Return(int64(0), errors.New("db down"))

	_, err := uc.Execute(context.Background())

	require.Error(t, err)
	menuRepo.AssertNotCalled(t, "DeleteOrphanedCustom", mock.Anything, mock.Anything)
}
