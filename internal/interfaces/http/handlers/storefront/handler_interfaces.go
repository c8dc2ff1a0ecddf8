package storefront

import (
	"context"

	"github.com/tablescan/qrmenu/internal/application/storefront/dto"
	"github.com/tablescan/qrmenu/internal/application/storefront/usecases"
)

// Use case interfaces for Handler - enables unit testing with mocks.

type getMenuUseCase interface {
	Execute(ctx context.Context, query usecases.GetStorefrontMenuQuery) (*usecases.StorefrontMenuResult, error)
}

type quoteOrderUseCase interface {
	Execute(ctx context.Context, cmd usecases.QuoteOrderCommand) (*usecases.QuoteOrderResult, error)
}

type getPageMetadataUseCase interface {
	Execute(ctx context.Context, partnerID string) *dto.PageMetadataView
}
