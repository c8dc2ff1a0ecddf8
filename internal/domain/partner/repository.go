package partner

import "context"

// Repository reads partners. Lookups of a missing partner return ErrPartnerNotFound.
type Repository interface {
	GetByID(ctx context.Context, id string) (*Partner, error)
}

// QRCodeRepository resolves printed codes back to partners.
type QRCodeRepository interface {
	GetByCode(ctx context.Context, code string) (*QRCode, error)
}

// QRGroupRepository reads table group configuration.
type QRGroupRepository interface {
	GetByID(ctx context.Context, id string) (*QRGroup, error)
}
