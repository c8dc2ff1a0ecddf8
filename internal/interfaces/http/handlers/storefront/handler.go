// Package storefront provides HTTP handlers for the guest-facing menu pages.
package storefront

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/tablescan/qrmenu/internal/application/storefront/usecases"
	"github.com/tablescan/qrmenu/internal/domain/entitlement"
	"github.com/tablescan/qrmenu/internal/shared/constants"
	"github.com/tablescan/qrmenu/internal/shared/logger"
	"github.com/tablescan/qrmenu/internal/shared/utils"
)

// VisitorCookieConfig controls the marker that stops repeat scans from one
// guest being counted twice.
type VisitorCookieConfig struct {
	Name   string
	TTL    time.Duration
	Secure bool
}

// Handler handles storefront requests.
type Handler struct {
	getMenuUC  getMenuUseCase
	quoteUC    quoteOrderUseCase
	metadataUC getPageMetadataUseCase
	visitor    VisitorCookieConfig
	logger     logger.Interface
}

// NewHandler creates a new Handler.
func NewHandler(
	getMenuUC getMenuUseCase,
	quoteUC quoteOrderUseCase,
	metadataUC getPageMetadataUseCase,
	visitor VisitorCookieConfig,
	logger logger.Interface,
) *Handler {
	if visitor.Name == "" {
		visitor.Name = "qr_visit"
	}
	if visitor.TTL <= 0 {
		visitor.TTL = 24 * time.Hour
	}
	return &Handler{
		getMenuUC:  getMenuUC,
		quoteUC:    quoteUC,
		metadataUC: metadataUC,
		visitor:    visitor,
		logger:     logger,
	}
}

// QuoteLineRequest is one ordered line.
type QuoteLineRequest struct {
	MenuItemID string `json:"menu_item_id" binding:"required"`
	Variant    string `json:"variant,omitempty"`
	Quantity   int64  `json:"quantity" binding:"required,gt=0"`
}

// ManualChargeRequest is a surcharge typed in by the partner.
type ManualChargeRequest struct {
	Name   string `json:"name" binding:"required,max=100"`
	Amount string `json:"amount" binding:"required"`
}

// QuoteOrderRequest prices an order. QRCode selects the table and with it
// the table's charge brackets.
type QuoteOrderRequest struct {
	QRCode        string                `json:"qr_code,omitempty"`
	Channel       string                `json:"channel,omitempty"`
	Items         []QuoteLineRequest    `json:"items" binding:"required,min=1,dive"`
	ManualCharges []ManualChargeRequest `json:"manual_charges,omitempty" binding:"omitempty,dive"`
}

// GetMenu handles GET /api/storefront/partners/:partner_id
func (h *Handler) GetMenu(c *gin.Context) {
	partnerID := c.Param("partner_id")
	h.serveMenu(c, usecases.GetStorefrontMenuQuery{PartnerID: partnerID}, partnerID)
}

// GetMenuByQRCode handles GET /api/storefront/qr/:code
func (h *Handler) GetMenuByQRCode(c *gin.Context) {
	code := c.Param("code")
	h.serveMenu(c, usecases.GetStorefrontMenuQuery{QRCode: code}, code)
}

// serveMenu runs the gate and renders the menu. markerScope names the entry
// point the visitor marker is keyed on.
func (h *Handler) serveMenu(c *gin.Context, query usecases.GetStorefrontMenuQuery, markerScope string) {
	query.Channel = c.Query(constants.QueryChannel)
	query.AlreadyCounted = utils.HasVisitorMarker(c, h.visitor.Name, markerScope)
	query.ViewerPartnerID = c.GetString(constants.ContextKeyPartnerID)

	result, err := h.getMenuUC.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if !result.Disposition.IsOK() {
		denyAccess(c, result.Disposition)
		return
	}

	if result.Counted {
		utils.SetVisitorMarker(c, h.visitor.Name, markerScope, uuid.NewString(), h.visitor.TTL, h.visitor.Secure)
	}

	utils.SuccessResponse(c, http.StatusOK, "", result.Menu)
}

// GetPageMetadata handles GET /api/storefront/partners/:partner_id/meta
func (h *Handler) GetPageMetadata(c *gin.Context) {
	meta := h.metadataUC.Execute(c.Request.Context(), c.Param("partner_id"))
	utils.SuccessResponse(c, http.StatusOK, "", meta)
}

// QuoteOrder handles POST /api/storefront/partners/:partner_id/quote
func (h *Handler) QuoteOrder(c *gin.Context) {
	var req QuoteOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for quote order", "error", err)
		utils.ErrorResponseWithError(c, utils.BindingError(err))
		return
	}

	cmd, err := toQuoteOrderCommand(c.Param("partner_id"), &req)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	cmd.ViewerPartnerID = c.GetString(constants.ContextKeyPartnerID)

	result, err := h.quoteUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	if !result.Disposition.IsOK() {
		denyAccess(c, result.Disposition)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result.Quote)
}

var denialMessages = map[entitlement.Disposition]string{
	entitlement.DispositionNotFound:            "menu not found",
	entitlement.DispositionInactive:            "this restaurant is currently unavailable",
	entitlement.DispositionSubscriptionExpired: "this restaurant's subscription has expired",
	entitlement.DispositionScanLimitReached:    "this restaurant has reached its menu view limit",
}

// DispositionStatus maps a gate outcome to its HTTP status.
func DispositionStatus(d entitlement.Disposition) int {
	switch d {
	case entitlement.DispositionOK:
		return http.StatusOK
	case entitlement.DispositionInactive:
		return http.StatusForbidden
	case entitlement.DispositionSubscriptionExpired:
		return http.StatusPaymentRequired
	case entitlement.DispositionScanLimitReached:
		return http.StatusTooManyRequests
	default:
		return http.StatusNotFound
	}
}

func denyAccess(c *gin.Context, d entitlement.Disposition) {
	msg, ok := denialMessages[d]
	if !ok {
		d = entitlement.DispositionNotFound
		msg = denialMessages[d]
	}
	utils.DeniedResponse(c, DispositionStatus(d), d.String(), msg)
}
