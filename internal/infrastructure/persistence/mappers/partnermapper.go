package mappers

import (
	"fmt"

	"github.com/tablescan/qrmenu/internal/domain/entitlement"
	"github.com/tablescan/qrmenu/internal/domain/partner"
	"github.com/tablescan/qrmenu/internal/infrastructure/persistence/models"
	"github.com/tablescan/qrmenu/internal/shared/logger"
)

// PartnerToEntity converts a stored partner.
func PartnerToEntity(model *models.PartnerModel) (*partner.Partner, error) {
	entity, err := partner.ReconstructPartner(
		model.ID,
		model.Name,
		partner.Status(model.Status),
		model.Country,
		model.TaxPercent,
		model.Description,
		model.CreatedAt,
		model.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct partner entity: %w", err)
	}
	return entity, nil
}

// QRCodeToEntity converts a stored QR code.
func QRCodeToEntity(model *models.QRCodeModel) (*partner.QRCode, error) {
	var groupID string
	if model.QRGroupID != nil {
		groupID = *model.QRGroupID
	}
	entity, err := partner.ReconstructQRCode(model.ID, model.Code, model.PartnerID, groupID, model.TableLabel, model.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct qr code entity: %w", err)
	}
	return entity, nil
}

// QRGroupToEntity converts a stored QR group. Charge rules that cannot be
// read are logged and replaced with an empty set, so orders are quoted
// without a surcharge.
func QRGroupToEntity(model *models.QRGroupModel, log logger.Interface) (*partner.QRGroup, error) {
	charges, err := ParseChargeRules(model.ChargeRules)
	if err != nil {
		log.Warnw("qr group has malformed charge rules, applying none",
			"qr_group_id", model.ID,
			"error", err,
		)
	}
	entity, err := partner.ReconstructQRGroup(model.ID, model.PartnerID, model.Name, charges)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct qr group entity: %w", err)
	}
	return entity, nil
}

// SubscriptionToState converts a stored subscription. A NULL expiry date
// never expires.
func SubscriptionToState(model *models.SubscriptionModel) *entitlement.SubscriptionState {
	state := &entitlement.SubscriptionState{
		PartnerID: model.PartnerID,
		PlanID:    model.PlanID,
		Status:    model.Status,
	}
	if model.ExpiryDate != nil {
		expiry := model.ExpiryDate.UTC()
		state.ExpiryDate = &expiry
	}
	return state
}

// PlanToEntity converts a plan catalog row.
func PlanToEntity(model *models.PlanModel) *entitlement.Plan {
	return &entitlement.Plan{
		ID:              model.ID,
		Period:          model.Period,
		MaxScanCount:    model.MaxScanCount,
		LegacyScanLimit: model.ScanLimit,
	}
}
