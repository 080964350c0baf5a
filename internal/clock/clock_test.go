package clock

import (
	"testing"
	"time"

	"github.com/rickb777/date/v2"
	"github.com/stretchr/testify/require"
)

func TestFixed_SetAndAdvance(t *testing.T) {
	c := FromUnix(1700000000)
	require.Equal(t, int64(1700000000), Unix(c))

	c.Advance(90 * time.Second)
	require.Equal(t, int64(1700000090), Unix(c))

	c.Set(time.Date(2026, time.October, 15, 12, 0, 0, 0, time.UTC))
	require.Equal(t, date.New(2026, time.October, 15), TodayUTC(c))
}

func TestTodayUTC_ConvertsZone(t *testing.T) {
	tokyo := time.FixedZone("JST", 9*3600)
	c := NewFixed(time.Date(2026, time.October, 16, 3, 0, 0, 0, tokyo))

	require.Equal(t, date.New(2026, time.October, 15), TodayUTC(c))
}

func TestNilClockFallsBackToReal(t *testing.T) {
	before := time.Now().Unix()
	got := Unix(nil)
	require.GreaterOrEqual(t, got, before)
	require.NotEqual(t, date.Date(0), TodayUTC(nil))
	require.GreaterOrEqual(t, TodayUTC(nil).Year(), 2024)
}
