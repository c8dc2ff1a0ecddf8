// Package catalog loads partner menus and offers through an explicit,
// tag-invalidated cache owned by the caller.
package catalog

import (
	"context"
	"fmt"
)

// Cache memoises loads under a key and drops every entry carrying a tag on
// InvalidateTag. Concurrent misses for one key run load once.
type Cache interface {
	GetOrLoad(ctx context.Context, key string, tags []string, load func(ctx context.Context) (any, error)) (any, error)
	InvalidateTag(tag string)
}

// MenuTag tags cached catalog entries of a partner.
func MenuTag(partnerID string) string {
	return fmt.Sprintf("partner:%s:menu", partnerID)
}

// OffersTag tags cached offer entries of a partner.
func OffersTag(partnerID string) string {
	return fmt.Sprintf("partner:%s:offers", partnerID)
}

func menuKey(partnerID string) string   { return "menu:" + partnerID }
func offersKey(partnerID string) string { return "offers:" + partnerID }

// NoCache loads on every call. It is the fallback when no cache is configured.
type NoCache struct{}

func (NoCache) GetOrLoad(ctx context.Context, _ string, _ []string, load func(ctx context.Context) (any, error)) (any, error) {
	return load(ctx)
}

func (NoCache) InvalidateTag(string) {}
