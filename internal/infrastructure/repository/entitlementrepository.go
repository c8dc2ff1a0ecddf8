package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/tablescan/qrmenu/internal/domain/entitlement"
	"github.com/tablescan/qrmenu/internal/infrastructure/persistence/mappers"
	"github.com/tablescan/qrmenu/internal/infrastructure/persistence/models"
)

// SubscriptionReaderImpl reads subscriptions straight from the database on
// every call.
type SubscriptionReaderImpl struct {
	db *gorm.DB
}

func NewSubscriptionReader(db *gorm.DB) entitlement.SubscriptionReader {
	return &SubscriptionReaderImpl{db: db}
}

func (r *SubscriptionReaderImpl) GetCurrent(ctx context.Context, partnerID string) (*entitlement.SubscriptionState, error) {
	var model models.SubscriptionModel
	if err := r.db.WithContext(ctx).Where("partner_id = ?", partnerID).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, entitlement.ErrSubscriptionNotFound
		}
		return nil, fmt.Errorf("failed to get subscription: %w", err)
	}
	return mappers.SubscriptionToState(&model), nil
}

type PlanCatalogReaderImpl struct {
	db *gorm.DB
}

func NewPlanCatalogReader(db *gorm.DB) entitlement.PlanCatalogReader {
	return &PlanCatalogReaderImpl{db: db}
}

func (r *PlanCatalogReaderImpl) GetPlan(ctx context.Context, planID string) (*entitlement.Plan, error) {
	var model models.PlanModel
	if err := r.db.WithContext(ctx).Where("id = ?", planID).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, entitlement.ErrPlanNotFound
		}
		return nil, fmt.Errorf("failed to get plan: %w", err)
	}
	return mappers.PlanToEntity(&model), nil
}
