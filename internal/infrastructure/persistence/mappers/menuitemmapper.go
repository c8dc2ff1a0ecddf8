package mappers

import (
	"fmt"

	"gorm.io/datatypes"

	"github.com/tablescan/qrmenu/internal/domain/menu"
	"github.com/tablescan/qrmenu/internal/infrastructure/persistence/models"
	"github.com/tablescan/qrmenu/internal/shared/logger"
)

// MenuItemMapper handles the conversion between menu items and persistence models
type MenuItemMapper interface {
	ToEntity(model *models.MenuItemModel) (*menu.MenuItem, error)
	ToModel(entity *menu.MenuItem) (*models.MenuItemModel, error)
	ToEntities(models []*models.MenuItemModel) ([]*menu.MenuItem, error)
}

type menuItemMapper struct {
	logger logger.Interface
}

// NewMenuItemMapper creates a new menu item mapper. Malformed variant
// payloads are logged and the item is served with the variants that parsed.
func NewMenuItemMapper(logger logger.Interface) MenuItemMapper {
	return &menuItemMapper{logger: logger}
}

func (m *menuItemMapper) ToEntity(model *models.MenuItemModel) (*menu.MenuItem, error) {
	if model == nil {
		return nil, nil
	}

	variants, err := ParseVariants(model.Variants)
	if err != nil {
		m.logger.Warnw("menu item has malformed variants",
			"menu_item_id", model.ID,
			"error", err,
		)
	}

	entity, err := menu.ReconstructMenuItem(
		model.ID,
		model.PartnerID,
		model.Name,
		model.Category,
		model.BasePrice,
		variants,
		model.IsCustom,
		model.CreatedAt,
		model.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct menu item entity: %w", err)
	}
	return entity, nil
}

func (m *menuItemMapper) ToModel(entity *menu.MenuItem) (*models.MenuItemModel, error) {
	if entity == nil {
		return nil, nil
	}

	variants, err := EncodeVariants(entity.Variants())
	if err != nil {
		return nil, fmt.Errorf("failed to marshal variants: %w", err)
	}

	return &models.MenuItemModel{
		ID:        entity.ID(),
		PartnerID: entity.PartnerID(),
		Name:      entity.Name(),
		Category:  entity.Category(),
		BasePrice: entity.BasePrice(),
		Variants:  datatypes.JSON(variants),
		IsCustom:  entity.IsCustom(),
		CreatedAt: entity.CreatedAt(),
		UpdatedAt: entity.UpdatedAt(),
	}, nil
}

func (m *menuItemMapper) ToEntities(models []*models.MenuItemModel) ([]*menu.MenuItem, error) {
	entities := make([]*menu.MenuItem, 0, len(models))
	for _, model := range models {
		entity, err := m.ToEntity(model)
		if err != nil {
			return nil, err
		}
		if entity != nil {
			entities = append(entities, entity)
		}
	}
	return entities, nil
}
