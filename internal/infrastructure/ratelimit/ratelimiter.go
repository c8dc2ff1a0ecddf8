// Package ratelimit throttles requests with sliding windows kept in redis.
package ratelimit

import (
	"context"
	"time"
)

// Window caps the number of requests accepted within Period.
type Window struct {
	Period time.Duration
	Limit  int
}

// Limiter decides whether a request identified by key may proceed.
type Limiter interface {
	Allow(ctx context.Context, key string) (bool, error)
}

// Windows builds per-minute and per-hour windows, skipping non-positive limits.
func Windows(perMinute, perHour int) []Window {
	var windows []Window
	if perMinute > 0 {
		windows = append(windows, Window{Period: time.Minute, Limit: perMinute})
	}
	if perHour > 0 {
		windows = append(windows, Window{Period: time.Hour, Limit: perHour})
	}
	return windows
}
