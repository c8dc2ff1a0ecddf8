package models

import (
	"time"

	"github.com/tablescan/qrmenu/internal/shared/constants"
)

// SubscriptionModel is a partner's current plan subscription
type SubscriptionModel struct {
	ID         uint   `gorm:"primarykey"`
	PartnerID  string `gorm:"uniqueIndex;not null;size:32"`
	PlanID     string `gorm:"not null;size:50"`
	Status     string `gorm:"not null;size:20"`
	ExpiryDate *time.Time
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// TableName specifies the table name for GORM
func (SubscriptionModel) TableName() string {
	return constants.TableSubscriptions
}

// PlanModel is one row of the plan catalog. ScanLimit is the legacy limit
// column kept for plans written before max_scan_count existed.
type PlanModel struct {
	ID           string `gorm:"primarykey;size:50"`
	Name         string `gorm:"not null;size:100"`
	Period       string `gorm:"size:20"`
	MaxScanCount *int64
	ScanLimit    *int64
	CreatedAt    time.Time
}

// TableName specifies the table name for GORM
func (PlanModel) TableName() string {
	return constants.TablePlans
}
