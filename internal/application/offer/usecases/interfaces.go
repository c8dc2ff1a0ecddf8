// Package usecases implements partner-side offer management.
package usecases

import "context"

// TransactionRunner runs fn inside a database transaction carried by ctx.
type TransactionRunner interface {
	RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// OfferCacheInvalidator drops cached offers after a write.
type OfferCacheInvalidator interface {
	InvalidateOffers(partnerID string)
}
