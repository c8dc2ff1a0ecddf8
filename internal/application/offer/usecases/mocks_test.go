package usecases

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/tablescan/qrmenu/internal/domain/menu"
	"github.com/tablescan/qrmenu/internal/domain/offer"
)

type mockMenuRepository struct {
	mock.Mock
}

func (m *mockMenuRepository) Create(ctx context.Context, item *menu.MenuItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *mockMenuRepository) GetByID(ctx context.Context, id string) (*menu.MenuItem, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*menu.MenuItem), args.Error(1)
}

func (m *mockMenuRepository) GetByIDForUpdate(ctx context.Context, id string) (*menu.MenuItem, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*menu.MenuItem), args.Error(1)
}

func (m *mockMenuRepository) ListByPartner(ctx context.Context, partnerID string) ([]*menu.MenuItem, error) {
	args := m.Called(ctx, partnerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*menu.MenuItem), args.Error(1)
}

func (m *mockMenuRepository) DeleteOrphanedCustom(ctx context.Context, limit int) (int64, error) {
	args := m.Called(ctx, limit)
	return args.Get(0).(int64), args.Error(1)
}

type mockOfferRepository struct {
	mock.Mock
}

func (m *mockOfferRepository) Create(ctx context.Context, o *offer.Offer) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *mockOfferRepository) GetByID(ctx context.Context, id string) (*offer.Offer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*offer.Offer), args.Error(1)
}

func (m *mockOfferRepository) ListLiveByPartner(ctx context.Context, partnerID string, now time.Time) ([]*offer.Offer, error) {
	args := m.Called(ctx, partnerID, now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*offer.Offer), args.Error(1)
}

func (m *mockOfferRepository) ListLiveByMenuItem(ctx context.Context, menuItemID string, now time.Time) ([]*offer.Offer, error) {
	args := m.Called(ctx, menuItemID, now)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*offer.Offer), args.Error(1)
}

func (m *mockOfferRepository) List(ctx context.Context, filter offer.Filter) ([]*offer.Offer, int64, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*offer.Offer), args.Get(1).(int64), args.Error(2)
}

func (m *mockOfferRepository) DeleteByIDs(ctx context.Context, ids []string) error {
	args := m.Called(ctx, ids)
	return args.Error(0)
}

func (m *mockOfferRepository) DeleteExpiredCustom(ctx context.Context, now time.Time, limit int) (int64, error) {
	args := m.Called(ctx, now, limit)
	return args.Get(0).(int64), args.Error(1)
}

// inlineTx runs fn directly and counts calls.
type inlineTx struct {
	calls int
}

func (t *inlineTx) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	t.calls++
	return fn(ctx)
}

type mockInvalidator struct {
	mock.Mock
}

func (m *mockInvalidator) InvalidateOffers(partnerID string) {
	m.Called(partnerID)
}
