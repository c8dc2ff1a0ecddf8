package usecases

import (
	"context"
	"time"

	"github.com/tablescan/qrmenu/internal/application/offer/dto"
	"github.com/tablescan/qrmenu/internal/domain/offer"
	"github.com/tablescan/qrmenu/internal/shared/biztime"
	apperrors "github.com/tablescan/qrmenu/internal/shared/errors"
	"github.com/tablescan/qrmenu/internal/shared/logger"
	"github.com/tablescan/qrmenu/internal/shared/utils"
)

type ListOffersQuery struct {
	PartnerID string
	OfferType string
	Status    string
	Page      int
	PageSize  int
}

type ListOffersUseCase struct {
	offerRepo offer.Repository
	logger    logger.Interface
	now       func() time.Time
}

func NewListOffersUseCase(offerRepo offer.Repository, logger logger.Interface) *ListOffersUseCase {
	return &ListOffersUseCase{
		offerRepo: offerRepo,
		logger:    logger,
		now:       biztime.NowUTC,
	}
}

func (uc *ListOffersUseCase) Execute(ctx context.Context, query ListOffersQuery) (*dto.ListOffersResponse, error) {
	now := uc.now()
	page := utils.ValidatePagination(query.Page, query.PageSize)
	filter := offer.Filter{
		PartnerID: query.PartnerID,
		Now:       now,
		Page:      page.Page,
		PageSize:  page.PageSize,
	}

	if query.OfferType != "" {
		t, err := offer.ParseType(query.OfferType)
		if err != nil {
			return nil, apperrors.NewValidationError("invalid offer type", err.Error())
		}
		filter.OfferType = &t
	}

	switch s := offer.Status(query.Status); s {
	case "", offer.StatusActive, offer.StatusUpcoming, offer.StatusExpired:
		filter.Status = s
	default:
		return nil, apperrors.NewValidationError("invalid status", query.Status)
	}

	offers, total, err := uc.offerRepo.List(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to list offers", "partner_id", query.PartnerID, "error", err)
		return nil, apperrors.NewInternalError("failed to list offers")
	}

	resp := &dto.ListOffersResponse{
		Offers:     make([]dto.OfferResponse, 0, len(offers)),
		Pagination: dto.NewPaginationResponse(page.Page, page.PageSize, total),
	}
	for _, o := range offers {
		resp.Offers = append(resp.Offers, dto.ToOfferResponse(o, now))
	}
	return resp, nil
}
