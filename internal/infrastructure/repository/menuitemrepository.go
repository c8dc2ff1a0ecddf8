package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/tablescan/qrmenu/internal/domain/menu"
	"github.com/tablescan/qrmenu/internal/infrastructure/persistence/mappers"
	"github.com/tablescan/qrmenu/internal/infrastructure/persistence/models"
	"github.com/tablescan/qrmenu/internal/shared/db"
	"github.com/tablescan/qrmenu/internal/shared/logger"
)

type MenuItemRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.MenuItemMapper
	logger logger.Interface
}

func NewMenuItemRepository(db *gorm.DB, logger logger.Interface) menu.Repository {
	return &MenuItemRepositoryImpl{
		db:     db,
		mapper: mappers.NewMenuItemMapper(logger),
		logger: logger,
	}
}

func (r *MenuItemRepositoryImpl) Create(ctx context.Context, item *menu.MenuItem) error {
	model, err := r.mapper.ToModel(item)
	if err != nil {
		return fmt.Errorf("failed to convert menu item to model: %w", err)
	}

	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Create(model).Error; err != nil {
		r.logger.Errorw("failed to create menu item", "error", err, "menu_item_id", item.ID())
		return fmt.Errorf("failed to create menu item: %w", err)
	}
	return nil
}

func (r *MenuItemRepositoryImpl) GetByID(ctx context.Context, id string) (*menu.MenuItem, error) {
	return r.get(db.GetTxFromContext(ctx, r.db), id)
}

func (r *MenuItemRepositoryImpl) GetByIDForUpdate(ctx context.Context, id string) (*menu.MenuItem, error) {
	return r.get(db.GetTxFromContext(ctx, r.db).Scopes(db.ForUpdate()), id)
}

func (r *MenuItemRepositoryImpl) get(tx *gorm.DB, id string) (*menu.MenuItem, error) {
	var model models.MenuItemModel
	if err := tx.Where("id = ?", id).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, menu.ErrMenuItemNotFound
		}
		r.logger.Errorw("failed to get menu item", "error", err, "menu_item_id", id)
		return nil, fmt.Errorf("failed to get menu item: %w", err)
	}
	return r.mapper.ToEntity(&model)
}

func (r *MenuItemRepositoryImpl) ListByPartner(ctx context.Context, partnerID string) ([]*menu.MenuItem, error) {
	var itemModels []*models.MenuItemModel
	err := db.GetTxFromContext(ctx, r.db).
		Where("partner_id = ?", partnerID).
		Order("category ASC, created_at ASC, id ASC").
		Find(&itemModels).Error
	if err != nil {
		r.logger.Errorw("failed to list menu items", "error", err, "partner_id", partnerID)
		return nil, fmt.Errorf("failed to list menu items: %w", err)
	}
	return r.mapper.ToEntities(itemModels)
}

// DeleteOrphanedCustom removes up to limit custom items no offer points at.
// The orphan condition is re-checked in the DELETE so an offer created in
// between keeps its item.
func (r *MenuItemRepositoryImpl) DeleteOrphanedCustom(ctx context.Context, limit int) (int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	orphaned := "NOT EXISTS (SELECT 1 FROM offers WHERE offers.menu_item_id = menu_items.id)"

	var ids []string
	err := tx.Model(&models.MenuItemModel{}).
		Where("is_custom = ?", true).
		Where(orphaned).
		Limit(limit).
		Pluck("id", &ids).Error
	if err != nil {
		return 0, fmt.Errorf("failed to find orphaned custom items: %w", err)
	}
	if len(ids) == 0 {
		return 0, nil
	}

	result := tx.Where("id IN ?", ids).Where(orphaned).Delete(&models.MenuItemModel{})
	if result.Error != nil {
		r.logger.Errorw("failed to delete orphaned custom items", "error", result.Error, "count", len(ids))
		return 0, fmt.Errorf("failed to delete orphaned custom items: %w", result.Error)
	}
	return result.RowsAffected, nil
}
