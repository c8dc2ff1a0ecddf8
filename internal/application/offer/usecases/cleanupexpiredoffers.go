package usecases

import (
	"context"
	"fmt"
	"time"

	"github.com/tablescan/qrmenu/internal/domain/menu"
	"github.com/tablescan/qrmenu/internal/domain/offer"
	"github.com/tablescan/qrmenu/internal/shared/biztime"
	"github.com/tablescan/qrmenu/internal/shared/logger"
)

// CleanupExpiredOffersUseCase deletes ended offers on custom (offer-only)
// items and then the custom items left without offers. Catalog items and
// their offer history are left alone.
type CleanupExpiredOffersUseCase struct {
	offerRepo offer.Repository
	menuRepo  menu.Repository
	batchSize int
	logger    logger.Interface
	now       func() time.Time
}

func NewCleanupExpiredOffersUseCase(
	offerRepo offer.Repository,
	menuRepo menu.Repository,
	batchSize int,
	logger logger.Interface,
) *CleanupExpiredOffersUseCase {
	if batchSize <= 0 {
		batchSize = 500
	}
	return &CleanupExpiredOffersUseCase{
		offerRepo: offerRepo,
		menuRepo:  menuRepo,
		batchSize: batchSize,
		logger:    logger,
		now:       biztime.NowUTC,
	}
}

// Execute runs one cleanup pass and returns the number of deleted rows.
func (uc *CleanupExpiredOffersUseCase) Execute(ctx context.Context) (int, error) {
	offers, err := uc.offerRepo.DeleteExpiredCustom(ctx, uc.now(), uc.batchSize)
	if err != nil {
		return 0, fmt.Errorf("failed to delete expired offers: %w", err)
	}

	items, err := uc.menuRepo.DeleteOrphanedCustom(ctx, uc.batchSize)
	if err != nil {
		return int(offers), fmt.Errorf("failed to delete orphaned custom items: %w", err)
	}

	if offers > 0 || items > 0 {
		uc.logger.Infow("expired offers cleaned up",
			"offers_deleted", offers,
			"custom_items_deleted", items,
		)
	}
	return int(offers + items), nil
}
