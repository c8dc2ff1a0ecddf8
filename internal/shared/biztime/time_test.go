package biztime

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMonthKey(t *testing.T) {
	MustInit("Asia/Kolkata")

	tests := []struct {
		name     string
		utcTime  time.Time
		expected string
	}{
		{
			name:     "mid month",
			utcTime:  time.Date(2025, 3, 15, 10, 0, 0, 0, time.UTC),
			expected: "2025-03",
		},
		{
			name:     "UTC evening on the last day is already next month in IST",
			utcTime:  time.Date(2025, 3, 31, 19, 0, 0, 0, time.UTC),
			expected: "2025-04",
		},
		{
			name:     "UTC early morning on the first stays in the same month",
			utcTime:  time.Date(2025, 4, 1, 1, 0, 0, 0, time.UTC),
			expected: "2025-04",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, MonthKey(tt.utcTime))
		})
	}
}

func TestMonthBoundaries(t *testing.T) {
	MustInit("Asia/Kolkata")

	ref := time.Date(2025, 2, 10, 12, 0, 0, 0, time.UTC)

	start := StartOfMonthUTC(ref)
	end := EndOfMonthUTC(ref)

	// IST is UTC+05:30
	assert.Equal(t, time.Date(2025, 1, 31, 18, 30, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2025, 2, 28, 18, 29, 59, 999999999, time.UTC), end)
	assert.Equal(t, MonthKey(start), MonthKey(end))
}
