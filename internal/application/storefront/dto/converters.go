package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/tablescan/qrmenu/internal/domain/menu"
	"github.com/tablescan/qrmenu/internal/domain/partner"
	"github.com/tablescan/qrmenu/internal/domain/pricing"
)

// Money renders an amount with two decimals.
func Money(d decimal.Decimal) string {
	return d.StringFixed(2)
}

func ToPartnerView(p *partner.Partner) PartnerView {
	return PartnerView{
		ID:          p.ID(),
		Name:        p.Name(),
		Description: p.Description(),
		Country:     p.Country(),
	}
}

// ToMenuItemViews renders the catalog in catalog order. Custom items are
// listed only while an offer governs one of their prices.
func ToMenuItemViews(items []*menu.MenuItem, res *pricing.Resolution) []MenuItemView {
	views := make([]MenuItemView, 0, len(items))
	for _, item := range items {
		base, ok := res.Lookup(item.ID(), "")
		if !ok {
			continue
		}

		view := MenuItemView{
			ID:       item.ID(),
			Name:     item.Name(),
			Category: item.Category(),
		}
		applyBasePrice(&view, base)

		hasOffer := base.HasOffer()
		for _, v := range item.Variants() {
			p, ok := res.Lookup(item.ID(), v.Name)
			if !ok {
				continue
			}
			hasOffer = hasOffer || p.HasOffer()
			view.HasMultipleVariantsOnOffer = view.HasMultipleVariantsOnOffer || p.HasMultipleVariantsOnOffer
			view.Variants = append(view.Variants, toVariantView(v.Name, p))
		}

		if item.IsCustom() && !hasOffer {
			continue
		}
		views = append(views, view)
	}
	return views
}

func applyBasePrice(view *MenuItemView, p pricing.ResolvedPrice) {
	view.Price = Money(p.Price)
	view.OriginalPrice = Money(p.OriginalPrice)
	view.DiscountPercent = p.DiscountPercent
	view.OfferID = p.OfferID
	view.IsUpcoming = p.IsUpcoming
	view.StartsAt, view.EndsAt = offerWindow(p)
}

func toVariantView(name string, p pricing.ResolvedPrice) VariantView {
	starts, ends := offerWindow(p)
	return VariantView{
		Name:                       name,
		Price:                      Money(p.Price),
		OriginalPrice:              Money(p.OriginalPrice),
		DiscountPercent:            p.DiscountPercent,
		OfferID:                    p.OfferID,
		IsUpcoming:                 p.IsUpcoming,
		HasMultipleVariantsOnOffer: p.HasMultipleVariantsOnOffer,
		StartsAt:                   starts,
		EndsAt:                     ends,
	}
}

func offerWindow(p pricing.ResolvedPrice) (*time.Time, *time.Time) {
	if !p.HasOffer() {
		return nil, nil
	}
	starts, ends := p.StartsAt, p.EndsAt
	return &starts, &ends
}

// ToQuoteView renders a total breakdown alongside its priced lines.
func ToQuoteView(lines []QuoteLineView, b *pricing.TotalBreakdown) *QuoteView {
	charges := make([]ManualChargeView, 0, len(b.ManualCharges))
	for _, mc := range b.ManualCharges {
		charges = append(charges, ManualChargeView{Name: mc.Name, Amount: Money(mc.Amount)})
	}
	return &QuoteView{
		Lines:         lines,
		ManualCharges: charges,
		Subtotal:      Money(b.Subtotal),
		ManualTotal:   Money(b.ManualTotal),
		BracketCharge: Money(b.BracketCharge),
		TaxPercent:    b.TaxPercent.String(),
		TaxAmount:     Money(b.TaxAmount),
		GrandTotal:    Money(b.GrandTotal),
	}
}
