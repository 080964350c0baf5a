package duration

import (
	"math"
	"testing"
	"time"

	"github.com/rickb777/date/v2"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestSplit(t *testing.T) {
	tests := []struct {
		name     string
		in       int64
		negative bool
		abs      uint64
	}{
		{"zero", 0, false, 0},
		{"positive", 42, false, 42},
		{"negative", -42, true, 42},
		{"max", math.MaxInt64, false, math.MaxInt64},
		{"min", math.MinInt64, true, math.MaxInt64 + 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			negative, abs := Split(tt.in)
			require.Equal(t, tt.negative, negative)
			require.Equal(t, tt.abs, abs)
		})
	}
}

func TestDecompose_TimeOfDay(t *testing.T) {
	b := Decompose(3661, date.New(2026, time.October, 15))

	require.Equal(t, Breakdown{Hours: 1, Minutes: 1, Seconds: 1}, b)
	require.Equal(t, uint64(1), b.TotalHours())
}

func TestDecompose_SubtractsCalendarDays(t *testing.T) {
	// 40 days from mid January: one estimated month, and January has 31 days.
	b := Decompose(40*86400, date.New(2024, time.January, 15))

	require.Equal(t, uint64(0), b.Years)
	require.Equal(t, uint64(1), b.Months)
	require.Equal(t, int64(40-31), b.Days)
	require.Equal(t, uint64(40), b.TotalDays)
	require.Equal(t, uint64(1), b.TotalMonths())
}

func TestDecompose_YearDependsOnAnchor(t *testing.T) {
	seconds := uint64(366 * 86400)

	// October 2026 to September 2027 has no leap day.
	b := Decompose(seconds, date.New(2026, time.October, 15))
	require.Equal(t, uint64(1), b.Years)
	require.Equal(t, uint64(0), b.Months)
	require.Equal(t, int64(1), b.Days)

	// January to December 2024 includes 29 February.
	b = Decompose(seconds, date.New(2024, time.January, 15))
	require.Equal(t, uint64(1), b.Years)
	require.Equal(t, int64(0), b.Days)
}

func TestDecompose_LongMonthsLeaveNegativeDays(t *testing.T) {
	// 61 days estimate two months, but July and August span 62.
	b := Decompose(61*86400, date.New(2026, time.July, 1))

	require.Equal(t, uint64(2), b.Months)
	require.Equal(t, int64(-1), b.Days)
}

func TestDecompose_Extremes(t *testing.T) {
	anchor := date.New(2026, time.October, 15)

	for _, seconds := range []int64{math.MaxInt64, math.MinInt64} {
		_, abs := Split(seconds)

		var b Breakdown
		require.NotPanics(t, func() { b = Decompose(abs, anchor) })

		require.Less(t, b.Months, uint64(12))
		require.Less(t, b.Hours, uint64(24))
		require.Less(t, b.Minutes, uint64(60))
		require.Less(t, b.Seconds, uint64(60))
		require.Greater(t, b.Years, uint64(290_000_000_000))
		require.GreaterOrEqual(t, b.Days, int64(0))
		require.Equal(t, abs, b.TotalDays*86400+b.Hours*3600+b.Minutes*60+b.Seconds)
	}
}

func TestProperty_DecomposeReassembles(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		abs := rapid.Uint64().Draw(t, "abs")
		anchor := drawAnchor(t)

		b := Decompose(abs, anchor)

		require.Less(t, b.Months, uint64(12))
		require.Less(t, b.Hours, uint64(24))
		require.Less(t, b.Minutes, uint64(60))
		require.Less(t, b.Seconds, uint64(60))
		require.Equal(t, abs, b.TotalDays*86400+b.Hours*3600+b.Minutes*60+b.Seconds)
		require.Equal(t, int64(b.TotalDays), b.Days+int64(DaysSpanned(b.Years, b.Months, anchor)))
	})
}
