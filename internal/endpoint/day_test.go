package endpoint

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPosition(t *testing.T) {
	p := Position(1700000000, anchor)

	require.Equal(t, int64(1699920000), p.Start)
	require.Equal(t, int64(1700006399), p.End)
	require.Equal(t, 14, p.DayOfMonth)
	require.Equal(t, "0 days, 22h13m20s", p.SinceStart)
	require.Equal(t, "-0 days, 01h46m39s", p.UntilEnd)
	require.InDelta(t, 80000.0/86400.0, p.Progress, 1e-9)
}

func TestPosition_Midnight(t *testing.T) {
	p := Position(86400, anchor)

	require.Equal(t, int64(86400), p.Start)
	require.Empty(t, p.SinceStart)
	require.Equal(t, "-0 days, 23h59m59s", p.UntilEnd)
	require.Zero(t, p.Progress)
	require.Equal(t, 2, p.DayOfMonth)
}

func TestPosition_BeforeEpoch(t *testing.T) {
	p := Position(-1, anchor)

	require.Equal(t, int64(-86400), p.Start)
	require.Equal(t, int64(-1), p.End)
	require.Equal(t, 31, p.DayOfMonth)
	require.Equal(t, "0 days, 23h59m59s", p.SinceStart)
	require.Empty(t, p.UntilEnd)
}

func TestPosition_OutOfRangeHasNoDay(t *testing.T) {
	p := Position(maxRenderable+86400, anchor)

	require.Zero(t, p.DayOfMonth)
	require.Equal(t, p.Start+86399, p.End)
}
