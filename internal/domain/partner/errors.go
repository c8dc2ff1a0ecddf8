package partner

import "errors"

var (
	ErrPartnerNotFound   = errors.New("partner not found")
	ErrPartnerIDRequired = errors.New("partner ID is required")
	ErrInvalidTaxPercent = errors.New("tax percent must not be negative")
	ErrQRCodeNotFound    = errors.New("qr code not found")
	ErrQRCodeRequired    = errors.New("qr code ID and code are required")
	ErrQRGroupNotFound   = errors.New("qr group not found")
)
