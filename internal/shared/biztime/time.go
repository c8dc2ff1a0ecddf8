// Package biztime provides utilities for business timezone calculations.
// All storage and transport use UTC. The business timezone is only used for
// calendar boundaries, such as the month a storefront scan is counted in.
package biztime

import (
	"fmt"
	"sync"
	"time"
)

const (
	// DefaultTimezone is the default business timezone.
	DefaultTimezone = "Asia/Kolkata"
)

var (
	bizLocation     *time.Location
	bizLocationOnce sync.Once
	initErr         error
)

// Init initializes the business timezone. Should be called once at startup.
// If tz is empty, defaults to Asia/Kolkata.
func Init(tz string) error {
	bizLocationOnce.Do(func() {
		if tz == "" {
			tz = DefaultTimezone
		}
		bizLocation, initErr = time.LoadLocation(tz)
	})
	return initErr
}

// MustInit initializes the business timezone and panics on error.
func MustInit(tz string) {
	if err := Init(tz); err != nil {
		panic(fmt.Sprintf("failed to initialize business timezone %q: %v", tz, err))
	}
}

// Location returns the business timezone location, initializing the default
// timezone on first use.
func Location() *time.Location {
	if bizLocation == nil {
		if err := Init(""); err != nil {
			panic(fmt.Sprintf("biztime: failed to auto-initialize with default timezone: %v", err))
		}
	}
	return bizLocation
}

// NowUTC returns current time in UTC.
func NowUTC() time.Time {
	return time.Now().UTC()
}

// StartOfMonthUTC returns the start of the business month containing t, in UTC.
func StartOfMonthUTC(t time.Time) time.Time {
	biz := t.In(Location())
	return time.Date(biz.Year(), biz.Month(), 1, 0, 0, 0, 0, Location()).UTC()
}

// EndOfMonthUTC returns the last instant of the business month containing t, in UTC.
func EndOfMonthUTC(t time.Time) time.Time {
	biz := t.In(Location())
	next := time.Date(biz.Year(), biz.Month()+1, 1, 0, 0, 0, 0, Location())
	return next.Add(-time.Nanosecond).UTC()
}

// MonthKey formats the business month containing t as "2006-01".
func MonthKey(t time.Time) string {
	return t.In(Location()).Format("2006-01")
}

// FormatInBizTimezone formats a time in business timezone with the given layout.
func FormatInBizTimezone(t time.Time, layout string) string {
	return t.In(Location()).Format(layout)
}
