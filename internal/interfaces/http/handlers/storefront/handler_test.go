package storefront

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tablescan/qrmenu/internal/application/storefront/dto"
	"github.com/tablescan/qrmenu/internal/application/storefront/usecases"
	"github.com/tablescan/qrmenu/internal/domain/entitlement"
	"github.com/tablescan/qrmenu/internal/interfaces/http/handlers/testutil"
	"github.com/tablescan/qrmenu/internal/shared/errors"
	"github.com/tablescan/qrmenu/internal/shared/logger"
)

// =====================================================================
// Mock use cases
// =====================================================================

type mockGetMenuUC struct {
	result    *usecases.StorefrontMenuResult
	err       error
	lastQuery usecases.GetStorefrontMenuQuery
}

func (m *mockGetMenuUC) Execute(ctx context.Context, query usecases.GetStorefrontMenuQuery) (*usecases.StorefrontMenuResult, error) {
	m.lastQuery = query
	return m.result, m.err
}

type mockQuoteUC struct {
	result  *usecases.QuoteOrderResult
	err     error
	lastCmd usecases.QuoteOrderCommand
}

func (m *mockQuoteUC) Execute(ctx context.Context, cmd usecases.QuoteOrderCommand) (*usecases.QuoteOrderResult, error) {
	m.lastCmd = cmd
	return m.result, m.err
}

type mockMetadataUC struct {
	result *dto.PageMetadataView
}

func (m *mockMetadataUC) Execute(ctx context.Context, partnerID string) *dto.PageMetadataView {
	return m.result
}

// =====================================================================
// Test helpers
// =====================================================================

const cookieBase = "qr_visit"

func newTestHandler(menuUC getMenuUseCase, quoteUC quoteOrderUseCase, metaUC getPageMetadataUseCase) *Handler {
	return NewHandler(menuUC, quoteUC, metaUC, VisitorCookieConfig{Name: cookieBase, TTL: time.Hour}, logger.NewNopLogger())
}

func okMenuResult(counted bool) *usecases.StorefrontMenuResult {
	return &usecases.StorefrontMenuResult{
		Disposition: entitlement.DispositionOK,
		PartnerID:   "ptn_1",
		Counted:     counted,
		Menu: &dto.MenuView{
			Partner: dto.PartnerView{ID: "ptn_1", Name: "Spice Route", Country: "IN"},
			Items: []dto.MenuItemView{
				{ID: "itm_1", Name: "Biryani", Price: "180.00", OriginalPrice: "200.00", DiscountPercent: 10},
			},
		},
	}
}

// =====================================================================
// GetMenu
// =====================================================================

func TestHandler_GetMenu_Success(t *testing.T) {
	menuUC := &mockGetMenuUC{result: okMenuResult(true)}
	handler := newTestHandler(menuUC, nil, nil)

	c, w := testutil.NewTestContext(http.MethodGet, "/api/storefront/partners/ptn_1?channel=delivery", nil)
	testutil.SetURLParam(c, "partner_id", "ptn_1")

	handler.GetMenu(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ptn_1", menuUC.lastQuery.PartnerID)
	assert.Equal(t, "delivery", menuUC.lastQuery.Channel)
	assert.False(t, menuUC.lastQuery.AlreadyCounted)

	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	assert.True(t, resp.Success)

	var menu dto.MenuView
	require.NoError(t, json.Unmarshal(resp.Data, &menu))
	require.Len(t, menu.Items, 1)
	assert.Equal(t, "180.00", menu.Items[0].Price)

	ck := testutil.FindCookie(w, "qr_visit_ptn_1")
	require.NotNil(t, ck)
	assert.NotEmpty(t, ck.Value)
	assert.True(t, ck.HttpOnly)
}

func TestHandler_GetMenu_NotCountedSetsNoCookie(t *testing.T) {
	menuUC := &mockGetMenuUC{result: okMenuResult(false)}
	handler := newTestHandler(menuUC, nil, nil)

	c, w := testutil.NewTestContext(http.MethodGet, "/api/storefront/partners/ptn_1", nil)
	testutil.SetURLParam(c, "partner_id", "ptn_1")
	testutil.AddCookie(c, "qr_visit_ptn_1", "seen")

	handler.GetMenu(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, menuUC.lastQuery.AlreadyCounted)
	assert.Nil(t, testutil.FindCookie(w, "qr_visit_ptn_1"))
}

func TestHandler_GetMenu_PassesViewer(t *testing.T) {
	menuUC := &mockGetMenuUC{result: okMenuResult(false)}
	handler := newTestHandler(menuUC, nil, nil)

	c, _ := testutil.NewTestContext(http.MethodGet, "/api/storefront/partners/ptn_1", nil)
	testutil.SetURLParam(c, "partner_id", "ptn_1")
	testutil.SetPartnerContext(c, "ptn_1")

	handler.GetMenu(c)

	assert.Equal(t, "ptn_1", menuUC.lastQuery.ViewerPartnerID)
}

func TestHandler_GetMenu_Denied(t *testing.T) {
	tests := []struct {
		disposition entitlement.Disposition
		wantStatus  int
	}{
		{entitlement.DispositionNotFound, http.StatusNotFound},
		{entitlement.DispositionInactive, http.StatusForbidden},
		{entitlement.DispositionSubscriptionExpired, http.StatusPaymentRequired},
		{entitlement.DispositionScanLimitReached, http.StatusTooManyRequests},
	}
	for _, tt := range tests {
		t.Run(tt.disposition.String(), func(t *testing.T) {
			menuUC := &mockGetMenuUC{result: &usecases.StorefrontMenuResult{Disposition: tt.disposition}}
			handler := newTestHandler(menuUC, nil, nil)

			c, w := testutil.NewTestContext(http.MethodGet, "/api/storefront/partners/ptn_1", nil)
			testutil.SetURLParam(c, "partner_id", "ptn_1")

			handler.GetMenu(c)

			assert.Equal(t, tt.wantStatus, w.Code)
			var resp testutil.APIResponse
			require.NoError(t, testutil.ParseResponse(w, &resp))
			assert.False(t, resp.Success)
			require.NotNil(t, resp.Error)
			assert.Equal(t, tt.disposition.String(), resp.Error.Type)
			assert.Nil(t, testutil.FindCookie(w, "qr_visit_ptn_1"))
		})
	}
}

func TestHandler_GetMenu_UseCaseError(t *testing.T) {
	menuUC := &mockGetMenuUC{err: errors.NewValidationError("invalid channel")}
	handler := newTestHandler(menuUC, nil, nil)

	c, w := testutil.NewTestContext(http.MethodGet, "/api/storefront/partners/ptn_1?channel=drone", nil)
	testutil.SetURLParam(c, "partner_id", "ptn_1")

	handler.GetMenu(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_GetMenuByQRCode_ScopesMarkerToCode(t *testing.T) {
	menuUC := &mockGetMenuUC{result: okMenuResult(true)}
	handler := newTestHandler(menuUC, nil, nil)

	c, w := testutil.NewTestContext(http.MethodGet, "/api/storefront/qr/T12", nil)
	testutil.SetURLParam(c, "code", "T12")

	handler.GetMenuByQRCode(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "T12", menuUC.lastQuery.QRCode)
	assert.Empty(t, menuUC.lastQuery.PartnerID)
	assert.NotNil(t, testutil.FindCookie(w, "qr_visit_T12"))
}

// =====================================================================
// GetPageMetadata
// =====================================================================

func TestHandler_GetPageMetadata(t *testing.T) {
	metaUC := &mockMetadataUC{result: &dto.PageMetadataView{Title: "Spice Route | Digital Menu", Description: "Coastal food"}}
	handler := newTestHandler(nil, nil, metaUC)

	c, w := testutil.NewTestContext(http.MethodGet, "/api/storefront/partners/ptn_1/meta", nil)
	testutil.SetURLParam(c, "partner_id", "ptn_1")

	handler.GetPageMetadata(c)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	var meta dto.PageMetadataView
	require.NoError(t, json.Unmarshal(resp.Data, &meta))
	assert.Equal(t, "Spice Route | Digital Menu", meta.Title)
}

// =====================================================================
// QuoteOrder
// =====================================================================

func TestHandler_QuoteOrder_Success(t *testing.T) {
	quoteUC := &mockQuoteUC{result: &usecases.QuoteOrderResult{
		Disposition: entitlement.DispositionOK,
		Quote:       &dto.QuoteView{Subtotal: "360.00", GrandTotal: "388.00"},
	}}
	handler := newTestHandler(nil, quoteUC, nil)

	body := QuoteOrderRequest{
		QRCode:  "T12",
		Channel: "dine_in",
		Items: []QuoteLineRequest{
			{MenuItemID: "itm_1", Variant: "Large", Quantity: 2},
		},
		ManualCharges: []ManualChargeRequest{{Name: "packing", Amount: "10.50"}},
	}
	c, w := testutil.NewTestContext(http.MethodPost, "/api/storefront/partners/ptn_1/quote", body)
	testutil.SetURLParam(c, "partner_id", "ptn_1")
	testutil.SetPartnerContext(c, "ptn_1")

	handler.QuoteOrder(c)

	assert.Equal(t, http.StatusOK, w.Code)

	cmd := quoteUC.lastCmd
	assert.Equal(t, "ptn_1", cmd.PartnerID)
	assert.Equal(t, "T12", cmd.QRCode)
	assert.Equal(t, "ptn_1", cmd.ViewerPartnerID)
	require.Len(t, cmd.Lines, 1)
	assert.Equal(t, int64(2), cmd.Lines[0].Quantity)
	require.Len(t, cmd.ManualCharges, 1)
	assert.Equal(t, "10.5", cmd.ManualCharges[0].Amount.String())
}

func TestHandler_QuoteOrder_InvalidBody(t *testing.T) {
	tests := []struct {
		name string
		body interface{}
	}{
		{"no items", map[string]interface{}{"items": []interface{}{}}},
		{"zero quantity", map[string]interface{}{
			"items": []map[string]interface{}{{"menu_item_id": "itm_1", "quantity": 0}},
		}},
		{"bad amount", map[string]interface{}{
			"items":          []map[string]interface{}{{"menu_item_id": "itm_1", "quantity": 1}},
			"manual_charges": []map[string]interface{}{{"name": "tip", "amount": "ten"}},
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			quoteUC := &mockQuoteUC{}
			handler := newTestHandler(nil, quoteUC, nil)

			c, w := testutil.NewTestContext(http.MethodPost, "/api/storefront/partners/ptn_1/quote", tt.body)
			testutil.SetURLParam(c, "partner_id", "ptn_1")

			handler.QuoteOrder(c)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Empty(t, quoteUC.lastCmd.PartnerID)
		})
	}
}

func TestHandler_QuoteOrder_Denied(t *testing.T) {
	quoteUC := &mockQuoteUC{result: &usecases.QuoteOrderResult{Disposition: entitlement.DispositionSubscriptionExpired}}
	handler := newTestHandler(nil, quoteUC, nil)

	body := QuoteOrderRequest{Items: []QuoteLineRequest{{MenuItemID: "itm_1", Quantity: 1}}}
	c, w := testutil.NewTestContext(http.MethodPost, "/api/storefront/partners/ptn_1/quote", body)
	testutil.SetURLParam(c, "partner_id", "ptn_1")

	handler.QuoteOrder(c)

	assert.Equal(t, http.StatusPaymentRequired, w.Code)
}

func TestHandler_QuoteOrder_ManualChargeForbidden(t *testing.T) {
	quoteUC := &mockQuoteUC{err: errors.NewForbiddenError("only the partner can add manual charges")}
	handler := newTestHandler(nil, quoteUC, nil)

	body := QuoteOrderRequest{
		Items:         []QuoteLineRequest{{MenuItemID: "itm_1", Quantity: 1}},
		ManualCharges: []ManualChargeRequest{{Name: "tip", Amount: "5"}},
	}
	c, w := testutil.NewTestContext(http.MethodPost, "/api/storefront/partners/ptn_1/quote", body)
	testutil.SetURLParam(c, "partner_id", "ptn_1")

	handler.QuoteOrder(c)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestDispositionStatus(t *testing.T) {
	assert.Equal(t, http.StatusOK, DispositionStatus(entitlement.DispositionOK))
	assert.Equal(t, http.StatusNotFound, DispositionStatus(entitlement.Disposition("UNKNOWN")))
}
