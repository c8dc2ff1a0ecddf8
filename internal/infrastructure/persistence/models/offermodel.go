package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"

	"github.com/tablescan/qrmenu/internal/shared/constants"
)

// OfferModel represents the database persistence model for offers.
// Variant is null for base-item offers, otherwise {name, price}.
type OfferModel struct {
	ID           string `gorm:"primarykey;size:32"`
	PartnerID    string `gorm:"not null;size:32;index:idx_offers_partner_end"`
	MenuItemID   string `gorm:"not null;size:32;index:idx_offers_item"`
	Variant      datatypes.JSON
	OfferPrice   decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	StartTime    time.Time       `gorm:"not null"`
	EndTime      time.Time       `gorm:"not null;index:idx_offers_partner_end"`
	OfferType    string          `gorm:"size:20"`
	EnquiryCount int64           `gorm:"not null;default:0"`
	CreatedAt    time.Time
}

// TableName specifies the table name for GORM
func (OfferModel) TableName() string {
	return constants.TableOffers
}
