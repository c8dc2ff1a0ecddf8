package dto

import (
	"time"
)

// PartnerView is the public face of a partner on its storefront
type PartnerView struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Country     string `json:"country"`
}

// VariantView is one priced variant of a menu item
type VariantView struct {
	Name                       string     `json:"name"`
	Price                      string     `json:"price"`          // price to display, discounted when an offer governs it
	OriginalPrice              string     `json:"original_price"` // catalog price, struck through when discounted
	DiscountPercent            int64      `json:"discount_percent"`
	OfferID                    string     `json:"offer_id,omitempty"`
	IsUpcoming                 bool       `json:"is_upcoming"`
	HasMultipleVariantsOnOffer bool       `json:"has_multiple_variants_on_offer"`
	StartsAt                   *time.Time `json:"starts_at,omitempty"`
	EndsAt                     *time.Time `json:"ends_at,omitempty"`
}

// MenuItemView is a menu item with its base and variant prices resolved
type MenuItemView struct {
	ID                         string        `json:"id"`
	Name                       string        `json:"name"`
	Category                   string        `json:"category,omitempty"`
	Price                      string        `json:"price"`
	OriginalPrice              string        `json:"original_price"`
	DiscountPercent            int64         `json:"discount_percent"`
	OfferID                    string        `json:"offer_id,omitempty"`
	IsUpcoming                 bool          `json:"is_upcoming"`
	HasMultipleVariantsOnOffer bool          `json:"has_multiple_variants_on_offer"`
	StartsAt                   *time.Time    `json:"starts_at,omitempty"`
	EndsAt                     *time.Time    `json:"ends_at,omitempty"`
	Variants                   []VariantView `json:"variants,omitempty"`
}

// MenuView is a storefront menu priced at GeneratedAt
type MenuView struct {
	Partner     PartnerView    `json:"partner"`
	Channel     string         `json:"channel,omitempty"`
	TableLabel  string         `json:"table_label,omitempty"`
	Items       []MenuItemView `json:"items"`
	GeneratedAt time.Time      `json:"generated_at"`
}

// QuoteLineView is one priced order line
type QuoteLineView struct {
	MenuItemID string `json:"menu_item_id"`
	Name       string `json:"name"`
	Variant    string `json:"variant,omitempty"`
	UnitPrice  string `json:"unit_price"`
	Quantity   int64  `json:"quantity"`
	LineTotal  string `json:"line_total"`
}

// ManualChargeView is a named staff-entered charge
type ManualChargeView struct {
	Name   string `json:"name"`
	Amount string `json:"amount"`
}

// QuoteView is an order total with its breakdown
type QuoteView struct {
	Lines         []QuoteLineView    `json:"lines"`
	ManualCharges []ManualChargeView `json:"manual_charges,omitempty"`
	Subtotal      string             `json:"subtotal"`
	ManualTotal   string             `json:"manual_total"`
	BracketCharge string             `json:"bracket_charge"`
	TaxPercent    string             `json:"tax_percent"`
	TaxAmount     string             `json:"tax_amount"`
	GrandTotal    string             `json:"grand_total"`
}

// PageMetadataView carries the storefront page title and description
type PageMetadataView struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}
