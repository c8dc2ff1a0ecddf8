package cache

import (
	"context"
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/sync/singleflight"

	"github.com/tablescan/qrmenu/internal/application/catalog"
	"github.com/tablescan/qrmenu/internal/shared/logger"
)

type catalogEntry struct {
	value any
	tags  []string
	gens  []uint64 // tag generations observed when the load started
}

// CatalogCache is an in-process LRU of partner menus and offers.
//
// Every entry carries tags. InvalidateTag bumps the tag's generation and
// drops the entries indexed under it; an entry whose recorded generation
// is behind is treated as a miss, which also covers loads that were in
// flight while the tag was invalidated. Concurrent misses for one key are
// collapsed with singleflight.
type CatalogCache struct {
	entries *expirable.LRU[string, catalogEntry]
	group   singleflight.Group
	logger  logger.Interface

	// mu guards tagKeys and gens. It is never held while calling into entries,
	// whose eviction callback takes mu.
	mu      sync.Mutex
	tagKeys map[string]map[string]struct{}
	gens    map[string]uint64
}

var _ catalog.Cache = (*CatalogCache)(nil)

// NewCatalogCache creates a cache holding at most size entries for ttl.
func NewCatalogCache(size int, ttl time.Duration, logger logger.Interface) *CatalogCache {
	if size <= 0 {
		size = 1024
	}
	c := &CatalogCache{
		logger:  logger,
		tagKeys: make(map[string]map[string]struct{}),
		gens:    make(map[string]uint64),
	}
	c.entries = expirable.NewLRU[string, catalogEntry](size, c.onEvict, ttl)
	return c
}

func (c *CatalogCache) GetOrLoad(ctx context.Context, key string, tags []string, load func(ctx context.Context) (any, error)) (any, error) {
	if v, ok := c.lookup(key); ok {
		return v, nil
	}

	v, err, shared := c.group.Do(key, func() (any, error) {
		if v, ok := c.lookup(key); ok {
			return v, nil
		}

		gens := c.snapshot(tags)
		value, err := load(ctx)
		if err != nil {
			return nil, err
		}
		if c.register(key, tags, gens) {
			c.entries.Add(key, catalogEntry{value: value, tags: tags, gens: gens})
		}
		return value, nil
	})
	if shared {
		c.logger.Debugw("catalog cache load shared", "key", key)
	}
	return v, err
}

func (c *CatalogCache) InvalidateTag(tag string) {
	c.mu.Lock()
	c.gens[tag]++
	keys := c.tagKeys[tag]
	delete(c.tagKeys, tag)
	c.mu.Unlock()

	for key := range keys {
		c.entries.Remove(key)
	}
	c.logger.Debugw("catalog cache tag invalidated", "tag", tag, "entries", len(keys))
}

// Len returns the number of cached entries, including stale ones not yet evicted.
func (c *CatalogCache) Len() int {
	return c.entries.Len()
}

// Purge drops every entry. Tag generations are kept so loads in flight
// across a purge are still discarded if their tags were invalidated.
func (c *CatalogCache) Purge() {
	c.entries.Purge()
}

func (c *CatalogCache) lookup(key string) (any, bool) {
	e, ok := c.entries.Get(key)
	if !ok {
		return nil, false
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	for i, tag := range e.tags {
		if c.gens[tag] != e.gens[i] {
			return nil, false
		}
	}
	return e.value, true
}

func (c *CatalogCache) snapshot(tags []string) []uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	gens := make([]uint64, len(tags))
	for i, tag := range tags {
		gens[i] = c.gens[tag]
	}
	return gens
}

// register indexes key under its tags unless one of them was invalidated
// after gens was taken.
func (c *CatalogCache) register(key string, tags []string, gens []uint64) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i, tag := range tags {
		if c.gens[tag] != gens[i] {
			return false
		}
	}
	for _, tag := range tags {
		keys, ok := c.tagKeys[tag]
		if !ok {
			keys = make(map[string]struct{})
			c.tagKeys[tag] = keys
		}
		keys[key] = struct{}{}
	}
	return true
}

func (c *CatalogCache) onEvict(key string, e catalogEntry) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, tag := range e.tags {
		if keys, ok := c.tagKeys[tag]; ok {
			delete(keys, key)
			if len(keys) == 0 {
				delete(c.tagKeys, tag)
			}
		}
	}
}
