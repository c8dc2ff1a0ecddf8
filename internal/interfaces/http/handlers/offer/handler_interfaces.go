package offer

import (
	"context"

	"github.com/tablescan/qrmenu/internal/application/offer/dto"
	"github.com/tablescan/qrmenu/internal/application/offer/usecases"
)

// Use case interfaces for Handler - enables unit testing with mocks.

type createOfferUseCase interface {
	Execute(ctx context.Context, cmd usecases.CreateOfferCommand) (*dto.CreateOfferResponse, error)
}

type listOffersUseCase interface {
	Execute(ctx context.Context, query usecases.ListOffersQuery) (*dto.ListOffersResponse, error)
}
