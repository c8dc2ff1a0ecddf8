package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/tablescan/qrmenu/internal/domain/entitlement"
	"github.com/tablescan/qrmenu/internal/shared/biztime"
)

const (
	scanQRKeyFmt           = "scan:qr:%s:total"
	scanPartnerMonthKeyFmt = "scan:partner:%s:month:%s"
	scanPartnerTotalKeyFmt = "scan:partner:%s:total"
)

// RedisScanCounter implements entitlement.ScanCounter with Redis INCR.
// Counters never expire and are never decremented.
type RedisScanCounter struct {
	client *redis.Client
}

// NewRedisScanCounter creates a new Redis-based scan counter
func NewRedisScanCounter(client *redis.Client) *RedisScanCounter {
	return &RedisScanCounter{client: client}
}

var _ entitlement.ScanCounter = (*RedisScanCounter)(nil)

// Increment bumps the QR lifetime, partner monthly and partner lifetime
// counters in one MULTI/EXEC block.
func (c *RedisScanCounter) Increment(ctx context.Context, event entitlement.ScanEvent) error {
	pipe := c.client.TxPipeline()
	if event.QRCodeID != "" {
		pipe.Incr(ctx, fmt.Sprintf(scanQRKeyFmt, event.QRCodeID))
	}
	pipe.Incr(ctx, fmt.Sprintf(scanPartnerMonthKeyFmt, event.PartnerID, biztime.MonthKey(event.At)))
	pipe.Incr(ctx, fmt.Sprintf(scanPartnerTotalKeyFmt, event.PartnerID))

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to increment scan counters: %w", err)
	}
	return nil
}

// PartnerCount returns the partner's scans in the window containing at.
func (c *RedisScanCounter) PartnerCount(ctx context.Context, partnerID string, window entitlement.ScanWindow, at time.Time) (int64, error) {
	key := fmt.Sprintf(scanPartnerTotalKeyFmt, partnerID)
	if window == entitlement.ScanWindowMonthly {
		key = fmt.Sprintf(scanPartnerMonthKeyFmt, partnerID, biztime.MonthKey(at))
	}
	return c.get(ctx, key)
}

// QRCount returns the lifetime scans of one QR code.
func (c *RedisScanCounter) QRCount(ctx context.Context, qrCodeID string) (int64, error) {
	return c.get(ctx, fmt.Sprintf(scanQRKeyFmt, qrCodeID))
}

func (c *RedisScanCounter) get(ctx context.Context, key string) (int64, error) {
	n, err := c.client.Get(ctx, key).Int64()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return 0, nil
		}
		return 0, fmt.Errorf("failed to read scan counter %s: %w", key, err)
	}
	return n, nil
}
