package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"

	"github.com/tablescan/qrmenu/internal/shared/constants"
)

// MenuItemModel represents the database persistence model for menu items.
// Variants holds a JSON array of {name, price}; older rows may hold a
// JSON-encoded string of that array, null, or an empty string.
type MenuItemModel struct {
	ID        string          `gorm:"primarykey;size:32"`
	PartnerID string          `gorm:"not null;size:32;index:idx_menu_items_partner"`
	Name      string          `gorm:"not null;size:200"`
	Category  string          `gorm:"size:100"`
	BasePrice decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	Variants  datatypes.JSON
	IsCustom  bool `gorm:"not null;default:false"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName specifies the table name for GORM
func (MenuItemModel) TableName() string {
	return constants.TableMenuItems
}
