package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/tablescan/qrmenu/internal/domain/offer"
)

// CreateOfferRequest is the body of an offer creation call.
type CreateOfferRequest struct {
	MenuItemID string          `json:"menu_item_id" validate:"required"`
	Variant    string          `json:"variant,omitempty" validate:"omitempty,max=100"`
	OfferPrice decimal.Decimal `json:"offer_price" validate:"required,gt=0"`
	StartTime  time.Time       `json:"start_time" validate:"required"`
	EndTime    time.Time       `json:"end_time" validate:"required,gtfield=StartTime"`
	OfferType  string          `json:"offer_type,omitempty" validate:"omitempty,oneof=delivery dine_in all"`
}

// OfferResponse is an offer as shown to its partner.
type OfferResponse struct {
	ID           string    `json:"id"`
	MenuItemID   string    `json:"menu_item_id"`
	Variant      string    `json:"variant,omitempty"`
	OfferPrice   string    `json:"offer_price"`
	StartTime    time.Time `json:"start_time"`
	EndTime      time.Time `json:"end_time"`
	OfferType    string    `json:"offer_type"`
	Status       string    `json:"status"`
	EnquiryCount int64     `json:"enquiry_count"`
	CreatedAt    time.Time `json:"created_at"`
}

// CreateOfferResponse reports the new offer and the offers it replaced.
type CreateOfferResponse struct {
	Offer    OfferResponse `json:"offer"`
	Replaced []string      `json:"replaced,omitempty"`
}

// ListOffersResponse is one page of a partner's offers.
type ListOffersResponse struct {
	Offers     []OfferResponse    `json:"offers"`
	Pagination PaginationResponse `json:"pagination"`
}

// PaginationResponse represents pagination metadata
type PaginationResponse struct {
	Page       int   `json:"page"`
	PageSize   int   `json:"page_size"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"total_pages"`
}

func NewPaginationResponse(page, pageSize int, total int64) PaginationResponse {
	totalPages := 0
	if pageSize > 0 {
		totalPages = int((total + int64(pageSize) - 1) / int64(pageSize))
	}
	return PaginationResponse{Page: page, PageSize: pageSize, Total: total, TotalPages: totalPages}
}

// ToOfferResponse converts a domain offer; status is evaluated at now.
func ToOfferResponse(o *offer.Offer, now time.Time) OfferResponse {
	status := offer.StatusActive
	switch {
	case o.IsExpiredAt(now):
		status = offer.StatusExpired
	case o.IsUpcomingAt(now):
		status = offer.StatusUpcoming
	}
	return OfferResponse{
		ID:           o.ID(),
		MenuItemID:   o.MenuItemID(),
		Variant:      o.VariantName(),
		OfferPrice:   o.OfferPrice().StringFixed(2),
		StartTime:    o.StartTime(),
		EndTime:      o.EndTime(),
		OfferType:    o.OfferType().String(),
		Status:       string(status),
		EnquiryCount: o.EnquiryCount(),
		CreatedAt:    o.CreatedAt(),
	}
}
