package usecases

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"

	"github.com/tablescan/qrmenu/internal/application/offer/dto"
	"github.com/tablescan/qrmenu/internal/domain/menu"
	"github.com/tablescan/qrmenu/internal/domain/offer"
	"github.com/tablescan/qrmenu/internal/domain/pricing"
	"github.com/tablescan/qrmenu/internal/shared/biztime"
	apperrors "github.com/tablescan/qrmenu/internal/shared/errors"
	"github.com/tablescan/qrmenu/internal/shared/id"
	"github.com/tablescan/qrmenu/internal/shared/logger"
)

type CreateOfferCommand struct {
	PartnerID   string
	MenuItemID  string
	VariantName string
	OfferPrice  decimal.Decimal
	StartTime   time.Time
	EndTime     time.Time
	OfferType   string
}

// CreateOfferUseCase adds an offer and removes the offers it supersedes.
// Writes for one menu item are serialised on the item's row lock, so two
// concurrent creates cannot both survive as the best offer of a key.
type CreateOfferUseCase struct {
	menuRepo    menu.Repository
	offerRepo   offer.Repository
	txRunner    TransactionRunner
	invalidator OfferCacheInvalidator
	logger      logger.Interface
	now         func() time.Time
}

func NewCreateOfferUseCase(
	menuRepo menu.Repository,
	offerRepo offer.Repository,
	txRunner TransactionRunner,
	invalidator OfferCacheInvalidator,
	logger logger.Interface,
) *CreateOfferUseCase {
	return &CreateOfferUseCase{
		menuRepo:    menuRepo,
		offerRepo:   offerRepo,
		txRunner:    txRunner,
		invalidator: invalidator,
		logger:      logger,
		now:         biztime.NowUTC,
	}
}

func (uc *CreateOfferUseCase) Execute(ctx context.Context, cmd CreateOfferCommand) (*dto.CreateOfferResponse, error) {
	offerType, err := offer.ParseType(cmd.OfferType)
	if err != nil {
		return nil, apperrors.NewValidationError("invalid offer type", err.Error())
	}
	now := uc.now()

	var (
		created  *offer.Offer
		replaced []string
	)
	err = uc.txRunner.RunInTransaction(ctx, func(txCtx context.Context) error {
		item, err := uc.menuRepo.GetByIDForUpdate(txCtx, cmd.MenuItemID)
		if err != nil {
			if errors.Is(err, menu.ErrMenuItemNotFound) {
				return apperrors.NewNotFoundError("menu item not found")
			}
			return err
		}
		if item.PartnerID() != cmd.PartnerID {
			return apperrors.NewNotFoundError("menu item not found")
		}

		var variant *offer.VariantRef
		if cmd.VariantName != "" {
			v, ok := item.Variant(cmd.VariantName)
			if !ok {
				return apperrors.NewValidationError("variant does not exist on this menu item", cmd.VariantName)
			}
			variant = &offer.VariantRef{Name: v.Name, Price: decimal.NewNullDecimal(v.Price)}
		}

		offerID, err := id.NewOfferID()
		if err != nil {
			return err
		}
		o, err := offer.NewOffer(offerID, cmd.PartnerID, item.ID(), variant,
			cmd.OfferPrice, cmd.StartTime, cmd.EndTime, offerType, now)
		if err != nil {
			return apperrors.NewValidationError("invalid offer", err.Error())
		}

		candidate := pricing.NewCandidate(o, item)
		if !cmd.OfferPrice.LessThan(candidate.OriginalPrice) {
			return apperrors.NewValidationError("invalid offer", offer.ErrNotDiscounted.Error())
		}

		existing, err := uc.offerRepo.ListLiveByMenuItem(txCtx, item.ID(), now)
		if err != nil {
			return err
		}

		for _, e := range existing {
			if e.Key() != o.Key() || e.IsUpcomingAt(now) != o.IsUpcomingAt(now) {
				continue
			}
			rival := pricing.NewCandidate(e, item)
			if covers(e, o) && rival.Beats(candidate) {
				return apperrors.NewConflictError(offer.ErrSuperseded.Error(), e.ID())
			}
			if covers(o, e) && candidate.Beats(rival) {
				replaced = append(replaced, e.ID())
			}
		}

		if err := uc.offerRepo.Create(txCtx, o); err != nil {
			return err
		}
		if len(replaced) > 0 {
			if err := uc.offerRepo.DeleteByIDs(txCtx, replaced); err != nil {
				return err
			}
		}
		created = o
		return nil
	})
	if err != nil {
		if apperrors.IsAppError(err) {
			return nil, err
		}
		uc.logger.Errorw("failed to create offer",
			"partner_id", cmd.PartnerID,
			"menu_item_id", cmd.MenuItemID,
			"error", err,
		)
		return nil, apperrors.NewInternalError("failed to create offer")
	}

	uc.invalidator.InvalidateOffers(cmd.PartnerID)

	uc.logger.Infow("offer created",
		"offer_id", created.ID(),
		"partner_id", cmd.PartnerID,
		"menu_item_id", created.MenuItemID(),
		"variant", created.VariantName(),
		"replaced", replaced,
	)

	return &dto.CreateOfferResponse{
		Offer:    dto.ToOfferResponse(created, now),
		Replaced: replaced,
	}, nil
}

// covers reports whether a applies on every channel b applies on.
func covers(a, b *offer.Offer) bool {
	return a.OfferType() == offer.TypeAll || a.OfferType() == b.OfferType()
}
