package mappers

import (
	"fmt"

	"gorm.io/datatypes"

	"github.com/tablescan/qrmenu/internal/domain/offer"
	"github.com/tablescan/qrmenu/internal/infrastructure/persistence/models"
	"github.com/tablescan/qrmenu/internal/shared/logger"
)

// OfferMapper handles the conversion between offers and persistence models
type OfferMapper interface {
	ToEntity(model *models.OfferModel) (*offer.Offer, error)
	ToModel(entity *offer.Offer) (*models.OfferModel, error)
	ToEntities(models []*models.OfferModel) ([]*offer.Offer, error)
}

type offerMapper struct {
	logger logger.Interface
}

func NewOfferMapper(logger logger.Interface) OfferMapper {
	return &offerMapper{logger: logger}
}

// ToEntity converts a stored offer. An unreadable variant payload is logged
// and the offer is treated as a base-item offer.
func (m *offerMapper) ToEntity(model *models.OfferModel) (*offer.Offer, error) {
	if model == nil {
		return nil, nil
	}

	variant, err := ParseOfferVariant(model.Variant)
	if err != nil {
		m.logger.Warnw("offer has malformed variant, treating as base item offer",
			"offer_id", model.ID,
			"error", err,
		)
		variant = nil
	}

	entity, err := offer.ReconstructOffer(
		model.ID,
		model.PartnerID,
		model.MenuItemID,
		variant,
		model.OfferPrice,
		model.StartTime,
		model.EndTime,
		offer.Type(model.OfferType),
		model.EnquiryCount,
		model.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct offer entity: %w", err)
	}
	return entity, nil
}

func (m *offerMapper) ToModel(entity *offer.Offer) (*models.OfferModel, error) {
	if entity == nil {
		return nil, nil
	}

	variant, err := EncodeOfferVariant(entity.Variant())
	if err != nil {
		return nil, fmt.Errorf("failed to marshal offer variant: %w", err)
	}

	return &models.OfferModel{
		ID:           entity.ID(),
		PartnerID:    entity.PartnerID(),
		MenuItemID:   entity.MenuItemID(),
		Variant:      datatypes.JSON(variant),
		OfferPrice:   entity.OfferPrice(),
		StartTime:    entity.StartTime(),
		EndTime:      entity.EndTime(),
		OfferType:    entity.OfferType().String(),
		EnquiryCount: entity.EnquiryCount(),
		CreatedAt:    entity.CreatedAt(),
	}, nil
}

func (m *offerMapper) ToEntities(models []*models.OfferModel) ([]*offer.Offer, error) {
	entities := make([]*offer.Offer, 0, len(models))
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
