package process

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUptime(t *testing.T) {
	start := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	now := start
	p := NewWithClock("1.0.0", "test", func() time.Time { return now })

	assert.Equal(t, start, p.StartedAt())
	assert.Equal(t, float64(0), p.Uptime())

	now = start.Add(1500 * time.Millisecond)
	assert.InDelta(t, 1.5, p.Uptime(), 1e-9)
	assert.Equal(t, now, p.Now())
}

func TestUptimeNeverNegative(t *testing.T) {
	start := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	now := start
	p := NewWithClock("1.0.0", "test", func() time.Time { return now })

	now = start.Add(-time.Hour)
	assert.Equal(t, float64(0), p.Uptime())
}

func TestUptimeMonotonic(t *testing.T) {
	p := New("1.0.0", "test")

	prev := p.Uptime()
	require.GreaterOrEqual(t, prev, float64(0))
	for i := 0; i < 100; i++ {
		cur := p.Uptime()
		assert.GreaterOrEqual(t, cur, prev)
		prev = cur
	}
	assert.Equal(t, "1.0.0", p.Version)
	assert.Equal(t, "test", p.Environment)
}

func TestNilClockFallsBackToWallClock(t *testing.T) {
	p := NewWithClock("v", "e", nil)
	assert.WithinDuration(t, time.Now(), p.Now(), time.Second)
}
