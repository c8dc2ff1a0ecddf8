package cache

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tablescan/qrmenu/internal/domain/entitlement"
)

func setupRedis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return mr, client
}

func TestRedisScanCounter_ConcurrentIncrements(t *testing.T) {
	_, client := setupRedis(t)
	counter := NewRedisScanCounter(client)
	ctx := context.Background()
	at := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)

	const visits = 50
	var wg sync.WaitGroup
	for i := 0; i < visits; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.NoError(t, counter.Increment(ctx, entitlement.ScanEvent{PartnerID: "ptn_1", QRCodeID: "qr_1", At: at}))
		}()
	}
	wg.Wait()

	monthly, err := counter.PartnerCount(ctx, "ptn_1", entitlement.ScanWindowMonthly, at)
	require.NoError(t, err)
	assert.Equal(t, int64(visits), monthly)

	qr, err := counter.QRCount(ctx, "qr_1")
	require.NoError(t, err)
	assert.Equal(t, int64(visits), qr)
}

func TestRedisScanCounter_Windows(t *testing.T) {
	mr, client := setupRedis(t)
	counter := NewRedisScanCounter(client)
	ctx := context.Background()
	march := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)

	require.NoError(t, counter.Increment(ctx, entitlement.ScanEvent{PartnerID: "ptn_1", At: march}))
	require.NoError(t, counter.Increment(ctx, entitlement.ScanEvent{PartnerID: "ptn_1", At: march.AddDate(0, 1, 0)}))

	got, err := counter.PartnerCount(ctx, "ptn_1", entitlement.ScanWindowMonthly, march)
	require.NoError(t, err)
	assert.Equal(t, int64(1), got)

	got, err = counter.PartnerCount(ctx, "ptn_1", entitlement.ScanWindowLifetime, march)
	require.NoError(t, err)
	assert.Equal(t, int64(2), got)

	assert.False(t, mr.Exists("scan:qr::total"), "visits without a QR code leave QR counters alone")

	got, err = counter.PartnerCount(ctx, "ptn_unknown", entitlement.ScanWindowMonthly, march)
	require.NoError(t, err)
	assert.Zero(t, got)
}

func TestRedisScanCounter_ReadError(t *testing.T) {
	mr, client := setupRedis(t)
	counter := NewRedisScanCounter(client)

	mr.Close()

	_, err := counter.PartnerCount(context.Background(), "ptn_1", entitlement.ScanWindowMonthly, time.Now())
	assert.Error(t, err)
}
