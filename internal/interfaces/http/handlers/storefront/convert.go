package storefront

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/tablescan/qrmenu/internal/application/storefront/usecases"
	"github.com/tablescan/qrmenu/internal/shared/errors"
)

func toQuoteOrderCommand(partnerID string, req *QuoteOrderRequest) (usecases.QuoteOrderCommand, error) {
	cmd := usecases.QuoteOrderCommand{
		PartnerID: partnerID,
		QRCode:    req.QRCode,
		Channel:   req.Channel,
		Lines:     make([]usecases.QuoteLine, 0, len(req.Items)),
	}
	for _, it := range req.Items {
		cmd.Lines = append(cmd.Lines, usecases.QuoteLine{
			MenuItemID: it.MenuItemID,
			Variant:    it.Variant,
			Quantity:   it.Quantity,
		})
	}
	for i, mc := range req.ManualCharges {
		amount, err := decimal.NewFromString(mc.Amount)
		if err != nil {
			return usecases.QuoteOrderCommand{}, errors.NewValidationError(
				fmt.Sprintf("manual charge %d: amount must be a number", i+1), err.Error())
		}
		cmd.ManualCharges = append(cmd.ManualCharges, usecases.ManualChargeInput{
			Name:   mc.Name,
			Amount: amount,
		})
	}
	return cmd, nil
}
