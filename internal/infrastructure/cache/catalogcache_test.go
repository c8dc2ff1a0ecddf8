package cache

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tablescan/qrmenu/internal/shared/logger"
)

func counting(calls *int32, value any) func(context.Context) (any, error) {
	return func(context.Context) (any, error) {
		atomic.AddInt32(calls, 1)
		return value, nil
	}
}

func TestCatalogCache_HitAndInvalidate(t *testing.T) {
	c := NewCatalogCache(16, time.Minute, logger.NewNopLogger())
	ctx := context.Background()
	var calls int32

	v, err := c.GetOrLoad(ctx, "menu:ptn_1", []string{"partner:ptn_1:menu"}, counting(&calls, "v1"))
	require.NoError(t, err)
	assert.Equal(t, "v1", v)

	v, err = c.GetOrLoad(ctx, "menu:ptn_1", []string{"partner:ptn_1:menu"}, counting(&calls, "v2"))
	require.NoError(t, err)
	assert.Equal(t, "v1", v)
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))

	c.InvalidateTag("partner:ptn_1:offers")
	v, _ = c.GetOrLoad(ctx, "menu:ptn_1", []string{"partner:ptn_1:menu"}, counting(&calls, "v2"))
	assert.Equal(t, "v1", v, "other tags leave the entry alone")

	c.InvalidateTag("partner:ptn_1:menu")
	v, err = c.GetOrLoad(ctx, "menu:ptn_1", []string{"partner:ptn_1:menu"}, counting(&calls, "v2"))
	require.NoError(t, err)
	assert.Equal(t, "v2", v)
	assert.Equal(t, int32(2), atomic.LoadInt32(&calls))
}

func TestCatalogCache_ErrorsAreNotCached(t *testing.T) {
	c := NewCatalogCache(16, time.Minute, logger.NewNopLogger())
	ctx := context.Background()
	boom := errors.New("db down")

	_, err := c.GetOrLoad(ctx, "k", nil, func(context.Context) (any, error) { return nil, boom })
	assert.ErrorIs(t, err, boom)

	v, err := c.GetOrLoad(ctx, "k", nil, func(context.Context) (any, error) { return 42, nil })
	require.NoError(t, err)
	assert.Equal(t, 42, v)
}

func TestCatalogCache_InvalidationDuringLoadIsNotStored(t *testing.T) {
	c := NewCatalogCache(16, time.Minute, logger.NewNopLogger())
	ctx := context.Background()
	tag := "partner:ptn_1:offers"

	v, err := c.GetOrLoad(ctx, "offers:ptn_1", []string{tag}, func(context.Context) (any, error) {
		c.InvalidateTag(tag)
		return "stale", nil
	})
	require.NoError(t, err)
	assert.Equal(t, "stale", v)
	assert.Zero(t, c.Len())

	var calls int32
	v, _ = c.GetOrLoad(ctx, "offers:ptn_1", []string{tag}, counting(&calls, "fresh"))
	assert.Equal(t, "fresh", v)
	assert.Equal(t, int32(1), calls)
}

func TestCatalogCache_ConcurrentMissesLoadOnce(t *testing.T) {
	c := NewCatalogCache(16, time.Minute, logger.NewNopLogger())
	ctx := context.Background()

	var calls int32
	release := make(chan struct{})
	load := func(context.Context) (any, error) {
		atomic.AddInt32(&calls, 1)
		<-release
		return "menu", nil
	}

	var wg sync.WaitGroup
	results := make([]any, 8)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], _ = c.GetOrLoad(ctx, "menu:ptn_1", nil, load)
		}(i)
	}
	time.Sleep(50 * time.Millisecond)
	close(release)
	wg.Wait()

	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
	for _, r := range results {
		assert.Equal(t, "menu", r)
	}
}

func TestCatalogCache_EvictionCleansTagIndex(t *testing.T) {
	c := NewCatalogCache(1, time.Minute, logger.NewNopLogger())
	ctx := context.Background()
	var calls int32

	_, _ = c.GetOrLoad(ctx, "a", []string{"t"}, counting(&calls, "a"))
	_, _ = c.GetOrLoad(ctx, "b", []string{"t"}, counting(&calls, "b"))
	assert.Equal(t, 1, c.Len())

	c.mu.Lock()
	keys := len(c.tagKeys["t"])
	c.mu.Unlock()
	assert.Equal(t, 1, keys)
}

func TestCatalogCache_Purge(t *testing.T) {
	c := NewCatalogCache(8, time.Minute, logger.NewNopLogger())
	ctx := context.Background()
	var calls int32

	_, _ = c.GetOrLoad(ctx, "menu:ptn_1", []string{"partner:ptn_1:menu"}, counting(&calls, "m"))
	_, _ = c.GetOrLoad(ctx, "offers:ptn_1", []string{"partner:ptn_1:offers"}, counting(&calls, "o"))
	require.Equal(t, 2, c.Len())

	c.Purge()

	assert.Zero(t, c.Len())
	c.mu.Lock()
	assert.Empty(t, c.tagKeys)
	c.mu.Unlock()

	_, _ = c.GetOrLoad(ctx, "menu:ptn_1", []string{"partner:ptn_1:menu"}, counting(&calls, "m"))
	assert.Equal(t, int32(3), atomic.LoadInt32(&calls))
}
