package models

import (
	"time"

	"gorm.io/datatypes"

	"github.com/tablescan/qrmenu/internal/shared/constants"
)

// QRCodeModel represents a printed table code
type QRCodeModel struct {
	ID         string  `gorm:"primarykey;size:32"`
	Code       string  `gorm:"uniqueIndex;not null;size:64"`
	PartnerID  string  `gorm:"not null;size:32;index"`
	QRGroupID  *string `gorm:"size:32"`
	TableLabel string  `gorm:"size:50"`
	CreatedAt  time.Time
}

// TableName specifies the table name for GORM
func (QRCodeModel) TableName() string {
	return constants.TableQRCodes
}

// QRGroupModel represents a group of tables sharing surcharge rules.
// ChargeRules is stored in several historical shapes; see the mapper.
type QRGroupModel struct {
	ID          string `gorm:"primarykey;size:32"`
	PartnerID   string `gorm:"not null;size:32;index"`
	Name        string `gorm:"size:100"`
	ChargeRules datatypes.JSON
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName specifies the table name for GORM
func (QRGroupModel) TableName() string {
	return constants.TableQRGroups
}
