package menu

import "errors"

var (
	ErrMenuItemNotFound    = errors.New("menu item not found")
	ErrMenuItemIDRequired  = errors.New("menu item ID is required")
	ErrPartnerIDRequired   = errors.New("partner ID is required")
	ErrNameRequired        = errors.New("menu item name is required")
	ErrNegativePrice       = errors.New("price cannot be negative")
	ErrVariantNameRequired = errors.New("variant name is required")
	ErrDuplicateVariant    = errors.New("duplicate variant name")
	ErrReservedVariantName = errors.New("variant name is reserved")
	ErrVariantNotFound     = errors.New("variant not found on menu item")
)
