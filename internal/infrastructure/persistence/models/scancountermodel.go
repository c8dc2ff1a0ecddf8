package models

import (
	"time"

	"github.com/tablescan/qrmenu/internal/shared/constants"
)

// Scan counter scopes.
const (
	ScanScopeQRCode  = "qr"
	ScanScopePartner = "partner"
)

// ScanBucketTotal is the bucket of lifetime counters; monthly buckets use
// the business month key (YYYY-MM).
const ScanBucketTotal = "total"

// ScanCounterModel is one monotonically increasing counter row
type ScanCounterModel struct {
	Scope     string `gorm:"primarykey;size:10"`
	SubjectID string `gorm:"primarykey;size:32"`
	Bucket    string `gorm:"primarykey;size:10"`
	Count     int64  `gorm:"not null;default:0"`
	UpdatedAt time.Time
}

// TableName specifies the table name for GORM
func (ScanCounterModel) TableName() string {
	return constants.TableScanCounters
}
