package usecases

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/tablescan/qrmenu/internal/application/storefront/dto"
	"github.com/tablescan/qrmenu/internal/domain/entitlement"
	"github.com/tablescan/qrmenu/internal/domain/offer"
	"github.com/tablescan/qrmenu/internal/domain/partner"
	"github.com/tablescan/qrmenu/internal/domain/pricing"
	"github.com/tablescan/qrmenu/internal/shared/biztime"
	apperrors "github.com/tablescan/qrmenu/internal/shared/errors"
	"github.com/tablescan/qrmenu/internal/shared/logger"
)

const maxQuoteLines = 200

type QuoteLine struct {
	MenuItemID string
	Variant    string
	Quantity   int64
}

type ManualChargeInput struct {
	Name   string
	Amount decimal.Decimal
}

// QuoteOrderCommand prices an order for a storefront. Manual charges may
// only be added by the partner itself.
type QuoteOrderCommand struct {
	PartnerID       string
	QRCode          string
	Channel         string
	Lines           []QuoteLine
	ManualCharges   []ManualChargeInput
	ViewerPartnerID string
}

type QuoteOrderResult struct {
	Disposition entitlement.Disposition
	Quote       *dto.QuoteView
}

type QuoteOrderUseCase struct {
	gate        AccessEvaluator
	loader      CatalogLoader
	qrGroupRepo partner.QRGroupRepository
	logger      logger.Interface
	now         func() time.Time
}

func NewQuoteOrderUseCase(
	gate AccessEvaluator,
	loader CatalogLoader,
	qrGroupRepo partner.QRGroupRepository,
	logger logger.Interface,
) *QuoteOrderUseCase {
	return &QuoteOrderUseCase{
		gate:        gate,
		loader:      loader,
		qrGroupRepo: qrGroupRepo,
		logger:      logger,
		now:         biztime.NowUTC,
	}
}

func (uc *QuoteOrderUseCase) Execute(ctx context.Context, cmd QuoteOrderCommand) (*QuoteOrderResult, error) {
	channel, err := offer.ParseChannel(cmd.Channel)
	if err != nil {
		return nil, apperrors.NewValidationError("invalid channel", err.Error())
	}
	if err := validateQuoteLines(cmd.Lines); err != nil {
		return nil, err
	}

	access, err := uc.gate.Execute(ctx, EvaluateAccessCommand{
		PartnerID: cmd.PartnerID,
		QRCode:    cmd.QRCode,
	})
	if err != nil {
		return nil, err
	}
	if !access.Disposition.IsOK() {
		return &QuoteOrderResult{Disposition: access.Disposition}, nil
	}
	if len(cmd.ManualCharges) > 0 && !access.IsSelfView(cmd.ViewerPartnerID) {
		return nil, apperrors.NewForbiddenError("only the partner can add manual charges")
	}

	p := access.Partner
	now := uc.now()
	items, offers, err := loadCatalog(ctx, uc.loader, uc.logger, p.ID(), now)
	if err != nil {
		return nil, err
	}
	res := resolve(uc.logger, p.ID(), items, offers, now, channel)
	catalog := pricing.NewCatalog(items)

	lineItems := make([]pricing.LineItem, 0, len(cmd.Lines))
	lineViews := make([]dto.QuoteLineView, 0, len(cmd.Lines))
	for _, l := range cmd.Lines {
		price, err := res.EffectivePrice(l.MenuItemID, l.Variant)
		if err != nil {
			return nil, apperrors.NewValidationError("order references an unknown menu item", err.Error())
		}
		li := pricing.LineItem{UnitPrice: price, Quantity: l.Quantity}
		lineItems = append(lineItems, li)

		item, _ := catalog.Item(l.MenuItemID)
		lineViews = append(lineViews, dto.QuoteLineView{
			MenuItemID: l.MenuItemID,
			Name:       item.Name(),
			Variant:    l.Variant,
			UnitPrice:  dto.Money(price),
			Quantity:   l.Quantity,
			LineTotal:  dto.Money(li.Total()),
		})
	}

	brackets, err := uc.chargeBrackets(ctx, access.QRCode)
	if err != nil {
		return nil, err
	}

	manual := make([]pricing.ManualCharge, 0, len(cmd.ManualCharges))
	for _, mc := range cmd.ManualCharges {
		manual = append(manual, pricing.ManualCharge{Name: mc.Name, Amount: mc.Amount})
	}

	breakdown, err := pricing.ComposeOrderTotal(pricing.OrderInput{
		Items:         lineItems,
		ManualCharges: manual,
		Brackets:      brackets,
		TaxPercent:    p.TaxPercent(),
	})
	if err != nil {
		return nil, apperrors.NewValidationError("invalid order", err.Error())
	}

	uc.logger.Debugw("order quoted",
		"partner_id", p.ID(),
		"lines", len(lineItems),
		"grand_total", breakdown.GrandTotal.String(),
	)

	return &QuoteOrderResult{
		Disposition: access.Disposition,
		Quote:       dto.ToQuoteView(lineViews, breakdown),
	}, nil
}

// chargeBrackets returns the surcharge rules of the QR code's group, or nil
// when the order did not come through a grouped QR code.
func (uc *QuoteOrderUseCase) chargeBrackets(ctx context.Context, qr *partner.QRCode) (*pricing.ChargeBracketSet, error) {
	if qr == nil || qr.QRGroupID() == "" {
		return nil, nil
	}
	group, err := uc.qrGroupRepo.GetByID(ctx, qr.QRGroupID())
	if err != nil {
		if errors.Is(err, partner.ErrQRGroupNotFound) {
			uc.logger.Warnw("qr code references a missing group",
				"qr_code_id", qr.ID(),
				"qr_group_id", qr.QRGroupID(),
			)
			return nil, nil
		}
		uc.logger.Errorw("failed to get qr group", "qr_group_id", qr.QRGroupID(), "error", err)
		return nil, apperrors.NewInternalError("failed to load table charges")
	}
	return group.Charges(), nil
}

func validateQuoteLines(lines []QuoteLine) error {
	if len(lines) == 0 {
		return apperrors.NewValidationError("order must contain at least one item")
	}
	if len(lines) > maxQuoteLines {
		return apperrors.NewValidationError(fmt.Sprintf("order must not contain more than %d lines", maxQuoteLines))
	}
	for i, l := range lines {
		if l.MenuItemID == "" {
			return apperrors.NewValidationError(fmt.Sprintf("line %d: menu item is required", i+1))
		}
		if l.Quantity <= 0 {
			return apperrors.NewValidationError(fmt.Sprintf("line %d: quantity must be positive", i+1))
		}
	}
	return nil
}
