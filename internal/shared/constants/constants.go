package constants

const (
	// Environment constants
	EnvDevelopment = "development"
	EnvTest        = "test"
	EnvProduction  = "production"

	// Default pagination
	DefaultPage     = 1
	DefaultPageSize = 20
	MaxPageSize     = 100

	// HTTP Headers
	HeaderXRequestID    = "X-Request-ID"
	HeaderAuthorization = "Authorization"

	// Context keys
	ContextKeyPartnerID = "partner_id"
	ContextKeyRequestID = "request_id"

	// Table names
	TablePartners      = "partners"
	TableMenuItems     = "menu_items"
	TableOffers        = "offers"
	TableQRCodes       = "qr_codes"
	TableQRGroups      = "qr_groups"
	TableSubscriptions = "partner_subscriptions"
	TablePlans         = "plans"
	TableScanCounters  = "scan_counters"

	// Query parameters
	QueryChannel = "channel"

	// Error messages
	ErrMsgValidationFailed    = "Validation failed"
	ErrMsgInternalServerError = "Internal server error occurred"
)
