package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/tablescan/qrmenu/internal/domain/entitlement"
	"github.com/tablescan/qrmenu/internal/infrastructure/persistence/models"
	"github.com/tablescan/qrmenu/internal/shared/biztime"
)

// ScanCounterRepositoryImpl keeps scan counters in SQL. Each counter row is
// bumped with an INSERT ... ON CONFLICT upsert so concurrent visits never
// lose an increment.
type ScanCounterRepositoryImpl struct {
	db *gorm.DB
}

func NewScanCounterRepository(db *gorm.DB) entitlement.ScanCounter {
	return &ScanCounterRepositoryImpl{db: db}
}

func (r *ScanCounterRepositoryImpl) Increment(ctx context.Context, event entitlement.ScanEvent) error {
	month := biztime.MonthKey(event.At)
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if event.QRCodeID != "" {
			if err := bump(tx, models.ScanScopeQRCode, event.QRCodeID, models.ScanBucketTotal, event.At); err != nil {
				return err
			}
		}
		if err := bump(tx, models.ScanScopePartner, event.PartnerID, month, event.At); err != nil {
			return err
		}
		return bump(tx, models.ScanScopePartner, event.PartnerID, models.ScanBucketTotal, event.At)
	})
}

func bump(tx *gorm.DB, scope, subjectID, bucket string, at time.Time) error {
	row := models.ScanCounterModel{
		Scope:     scope,
		SubjectID: subjectID,
		Bucket:    bucket,
		Count:     1,
		UpdatedAt: at,
	}
	err := tx.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "scope"}, {Name: "subject_id"}, {Name: "bucket"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"count":      gorm.Expr("count + 1"),
			"updated_at": at,
		}),
	}).Create(&row).Error
	if err != nil {
		return fmt.Errorf("failed to increment %s/%s scan counter: %w", scope, bucket, err)
	}
	return nil
}

func (r *ScanCounterRepositoryImpl) PartnerCount(ctx context.Context, partnerID string, window entitlement.ScanWindow, at time.Time) (int64, error) {
	bucket := models.ScanBucketTotal
	if window == entitlement.ScanWindowMonthly {
		bucket = biztime.MonthKey(at)
	}
	return r.read(ctx, models.ScanScopePartner, partnerID, bucket)
}

func (r *ScanCounterRepositoryImpl) QRCount(ctx context.Context, qrCodeID string) (int64, error) {
	return r.read(ctx, models.ScanScopeQRCode, qrCodeID, models.ScanBucketTotal)
}

func (r *ScanCounterRepositoryImpl) read(ctx context.Context, scope, subjectID, bucket string) (int64, error) {
	var row models.ScanCounterModel
	err := r.db.WithContext(ctx).
		Where("scope = ? AND subject_id = ? AND bucket = ?", scope, subjectID, bucket).
		First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, nil
		}
		return 0, fmt.Errorf("failed to read scan counter: %w", err)
	}
	return row.Count, nil
}
