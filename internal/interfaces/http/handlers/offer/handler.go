// Package offer provides HTTP handlers for partner offer management.
package offer

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tablescan/qrmenu/internal/application/offer/dto"
	"github.com/tablescan/qrmenu/internal/application/offer/usecases"
	"github.com/tablescan/qrmenu/internal/shared/id"
	"github.com/tablescan/qrmenu/internal/shared/logger"
	"github.com/tablescan/qrmenu/internal/shared/utils"
)

// Handler handles HTTP requests for offers.
type Handler struct {
	createOfferUC createOfferUseCase
	listOffersUC  listOffersUseCase
	logger        logger.Interface
}

// NewHandler creates a new Handler.
func NewHandler(createOfferUC createOfferUseCase, listOffersUC listOffersUseCase, logger logger.Interface) *Handler {
	return &Handler{
		createOfferUC: createOfferUC,
		listOffersUC:  listOffersUC,
		logger:        logger,
	}
}

// CreateOffer handles POST /api/partners/:partner_id/offers
func (h *Handler) CreateOffer(c *gin.Context) {
	partnerID, err := utils.ParseSIDParam(c, "partner_id", id.PrefixPartner, "partner")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req dto.CreateOfferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create offer", "partner_id", partnerID, "error", err)
		utils.ErrorResponseWithError(c, utils.BindingError(err))
		return
	}
	if err := utils.ValidateStruct(&req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.createOfferUC.Execute(c.Request.Context(), usecases.CreateOfferCommand{
		PartnerID:   partnerID,
		MenuItemID:  req.MenuItemID,
		VariantName: req.Variant,
		OfferPrice:  req.OfferPrice,
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
		OfferType:   req.OfferType,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Offer created successfully")
}

// ListOffers handles GET /api/partners/:partner_id/offers
func (h *Handler) ListOffers(c *gin.Context) {
	partnerID, err := utils.ParseSIDParam(c, "partner_id", id.PrefixPartner, "partner")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	page := utils.ParsePagination(c)
	result, err := h.listOffersUC.Execute(c.Request.Context(), usecases.ListOffersQuery{
		PartnerID: partnerID,
		OfferType: c.Query("offer_type"),
		Status:    c.Query("status"),
		Page:      page.Page,
		PageSize:  page.PageSize,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}
