package ratelimit

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const keyPrefix = "qrmenu:ratelimit:"

// RedisLimiter keeps one sorted set per key and window. Members are scored by
// arrival time; members older than the window are trimmed on every check.
type RedisLimiter struct {
	client  *redis.Client
	windows []Window
	now     func() time.Time
}

func NewRedisLimiter(client *redis.Client, windows ...Window) *RedisLimiter {
	return &RedisLimiter{
		client:  client,
		windows: windows,
		now:     time.Now,
	}
}

// Allow records the request and reports whether every window still has room.
// Rejected requests are recorded too, so a client that keeps retrying stays
// throttled.
func (l *RedisLimiter) Allow(ctx context.Context, key string) (bool, error) {
	now := l.now()
	allowed := true
	for _, w := range l.windows {
		ok, err := l.checkWindow(ctx, key, w, now)
		if err != nil {
			return false, err
		}
		allowed = allowed && ok
	}
	return allowed, nil
}

func (l *RedisLimiter) checkWindow(ctx context.Context, key string, w Window, now time.Time) (bool, error) {
	redisKey := windowKey(key, w.Period)
	windowStart := now.Add(-w.Period).UnixNano()

	pipe := l.client.TxPipeline()
	pipe.ZRemRangeByScore(ctx, redisKey, "-inf", strconv.FormatInt(windowStart, 10))
	card := pipe.ZCard(ctx, redisKey)
	pipe.ZAdd(ctx, redisKey, redis.Z{
		Score:  float64(now.UnixNano()),
		Member: uuid.NewString(),
	})
	pipe.Expire(ctx, redisKey, w.Period+time.Minute)

	if _, err := pipe.Exec(ctx); err != nil {
		return false, fmt.Errorf("rate limit window %s: %w", w.Period, err)
	}
	return card.Val() < int64(w.Limit), nil
}

func windowKey(key string, period time.Duration) string {
	return keyPrefix + key + ":" + period.String()
}
