package menu

import "context"

// Repository provides access to a partner's menu catalog.
type Repository interface {
	Create(ctx context.Context, item *MenuItem) error
	// GetByID returns ErrMenuItemNotFound when the item does not exist.
	GetByID(ctx context.Context, id string) (*MenuItem, error)
	// GetByIDForUpdate loads the item and locks its row until the
	// surrounding transaction ends. Offer writes for one item serialize on it.
	GetByIDForUpdate(ctx context.Context, id string) (*MenuItem, error)
	ListByPartner(ctx context.Context, partnerID string) ([]*MenuItem, error)
	// DeleteOrphanedCustom removes custom items that no offer references anymore.
	DeleteOrphanedCustom(ctx context.Context, limit int) (int64, error)
}
