package usecases

import (
	"context"
	"fmt"

	"github.com/tablescan/qrmenu/internal/application/storefront/dto"
	"github.com/tablescan/qrmenu/internal/domain/partner"
	"github.com/tablescan/qrmenu/internal/shared/logger"
)

const (
	defaultPageTitle       = "Digital Menu"
	defaultPageDescription = "Browse the menu and today's offers."
)

// GetPageMetadataUseCase builds the storefront title and description. It is
// not a gate: every failure falls back to the defaults.
type GetPageMetadataUseCase struct {
	partnerRepo partner.Repository
	logger      logger.Interface
}

func NewGetPageMetadataUseCase(partnerRepo partner.Repository, logger logger.Interface) *GetPageMetadataUseCase {
	return &GetPageMetadataUseCase{
		partnerRepo: partnerRepo,
		logger:      logger,
	}
}

func (uc *GetPageMetadataUseCase) Execute(ctx context.Context, partnerID string) *dto.PageMetadataView {
	meta := &dto.PageMetadataView{Title: defaultPageTitle, Description: defaultPageDescription}
	if partnerID == "" {
		return meta
	}

	p, err := uc.partnerRepo.GetByID(ctx, partnerID)
	if err != nil {
		uc.logger.Warnw("failed to load partner for page metadata, using defaults",
			"partner_id", partnerID,
			"error", err,
		)
		return meta
	}

	if p.Name() != "" {
		meta.Title = fmt.Sprintf("%s | %s", p.Name(), defaultPageTitle)
	}
	if p.Description() != "" {
		meta.Description = p.Description()
	}
	return meta
}
