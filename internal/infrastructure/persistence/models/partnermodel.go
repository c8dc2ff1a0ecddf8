package models

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/tablescan/qrmenu/internal/shared/constants"
)

// PartnerModel represents the database persistence model for partners
type PartnerModel struct {
	ID          string          `gorm:"primarykey;size:32"`
	Name        string          `gorm:"not null;size:200"`
	Status      string          `gorm:"not null;size:20;default:active"`
	Country     string          `gorm:"size:2"`
	TaxPercent  decimal.Decimal `gorm:"type:decimal(5,2);not null;default:0"`
	Description string          `gorm:"size:1000"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName specifies the table name for GORM
func (PartnerModel) TableName() string {
	return constants.TablePartners
}
