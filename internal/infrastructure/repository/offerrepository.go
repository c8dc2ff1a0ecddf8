package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/tablescan/qrmenu/internal/domain/offer"
	"github.com/tablescan/qrmenu/internal/infrastructure/persistence/mappers"
	"github.com/tablescan/qrmenu/internal/infrastructure/persistence/models"
	"github.com/tablescan/qrmenu/internal/shared/db"
	"github.com/tablescan/qrmenu/internal/shared/logger"
	"github.com/tablescan/qrmenu/internal/shared/utils"
)

type OfferRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.OfferMapper
	logger logger.Interface
}

func NewOfferRepository(db *gorm.DB, logger logger.Interface) offer.Repository {
	return &OfferRepositoryImpl{
		db:     db,
		mapper: mappers.NewOfferMapper(logger),
		logger: logger,
	}
}

func (r *OfferRepositoryImpl) Create(ctx context.Context, o *offer.Offer) error {
	model, err := r.mapper.ToModel(o)
	if err != nil {
		return fmt.Errorf("failed to convert offer to model: %w", err)
	}

	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		r.logger.Errorw("failed to create offer", "error", err, "offer_id", o.ID())
		return fmt.Errorf("failed to create offer: %w", err)
	}
	return nil
}

func (r *OfferRepositoryImpl) GetByID(ctx context.Context, id string) (*offer.Offer, error) {
	var model models.OfferModel
	if err := db.GetTxFromContext(ctx, r.db).Where("id = ?", id).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, offer.ErrOfferNotFound
		}
		r.logger.Errorw("failed to get offer", "error", err, "offer_id", id)
		return nil, fmt.Errorf("failed to get offer: %w", err)
	}
	return r.mapper.ToEntity(&model)
}

func (r *OfferRepositoryImpl) ListLiveByPartner(ctx context.Context, partnerID string, now time.Time) ([]*offer.Offer, error) {
	return r.listLive(ctx, "partner_id = ?", partnerID, now)
}

func (r *OfferRepositoryImpl) ListLiveByMenuItem(ctx context.Context, menuItemID string, now time.Time) ([]*offer.Offer, error) {
	return r.listLive(ctx, "menu_item_id = ?", menuItemID, now)
}

func (r *OfferRepositoryImpl) listLive(ctx context.Context, cond string, arg string, now time.Time) ([]*offer.Offer, error) {
	var offerModels []*models.OfferModel
	err := db.GetTxFromContext(ctx, r.db).
		Where(cond, arg).
		Scopes(db.NotEndedBefore(now)).
		Order("created_at ASC, id ASC").
		Find(&offerModels).Error
	if err != nil {
		r.logger.Errorw("failed to list live offers", "error", err, "filter", arg)
		return nil, fmt.Errorf("failed to list live offers: %w", err)
	}
	return r.mapper.ToEntities(offerModels)
}

func (r *OfferRepositoryImpl) List(ctx context.Context, filter offer.Filter) ([]*offer.Offer, int64, error) {
	query := db.GetTxFromContext(ctx, r.db).Model(&models.OfferModel{}).
		Where("partner_id = ?", filter.PartnerID)

	if filter.OfferType != nil {
		query = query.Where("offer_type = ?", filter.OfferType.String())
	}

	switch filter.Status {
	case offer.StatusActive:
		query = query.Where("start_time <= ?", filter.Now).Scopes(db.NotEndedBefore(filter.Now))
	case offer.StatusUpcoming:
		query = query.Where("start_time > ?", filter.Now)
	case offer.StatusExpired:
		query = query.Scopes(db.EndedBefore(filter.Now))
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		r.logger.Errorw("failed to count offers", "error", err, "partner_id", filter.PartnerID)
		return nil, 0, fmt.Errorf("failed to count offers: %w", err)
	}

	page := utils.ValidatePagination(filter.Page, filter.PageSize)
	var offerModels []*models.OfferModel
	err := query.
		Order("start_time DESC, id ASC").
		Offset(page.Offset()).
		Limit(page.PageSize).
		Find(&offerModels).Error
	if err != nil {
		r.logger.Errorw("failed to list offers", "error", err, "partner_id", filter.PartnerID)
		return nil, 0, fmt.Errorf("failed to list offers: %w", err)
	}

	entities, err := r.mapper.ToEntities(offerModels)
	if err != nil {
		return nil, 0, err
	}
	return entities, total, nil
}

func (r *OfferRepositoryImpl) DeleteByIDs(ctx context.Context, ids []string) error {
	if len(ids) == 0 {
		return nil
	}
	if err := db.GetTxFromContext(ctx, r.db).Where("id IN ?", ids).Delete(&models.OfferModel{}).Error; err != nil {
		r.logger.Errorw("failed to delete offers", "error", err, "offer_ids", ids)
		return fmt.Errorf("failed to delete offers: %w", err)
	}
	return nil
}

func (r *OfferRepositoryImpl) DeleteExpiredCustom(ctx context.Context, now time.Time, limit int) (int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var ids []string
	err := tx.Model(&models.OfferModel{}).
		Joins("JOIN menu_items ON menu_items.id = offers.menu_item_id").
		Where("menu_items.is_custom = ?", true).
		Where("offers.end_time < ?", now).
		Limit(limit).
		Pluck("offers.id", &ids).Error
	if err != nil {
		return 0, fmt.Errorf("failed to find expired custom offers: %w", err)
	}
	if len(ids) == 0 {
		return 0, nil
	}

	result := tx.Where("id IN ?", ids).Delete(&models.OfferModel{})
	if result.Error != nil {
		r.logger.Errorw("failed to delete expired offers", "error", result.Error, "count", len(ids))
		return 0, fmt.Errorf("failed to delete expired offers: %w", result.Error)
	}
	return result.RowsAffected, nil
}
