package daybar

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/rickb777/date/v2"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/zjrosen/stampdelta/internal/endpoint"
)

func TestFilled(t *testing.T) {
	tests := []struct {
		progress float64
		width    int
		want     int
	}{
		{0, 10, 0},
		{0.5, 10, 5},
		{0.99, 10, 10},
		{1, 10, 10},
		{1.5, 10, 10},
		{-1, 10, 0},
		{0.5, 0, 0},
	}
	for _, tt := range tests {
		require.Equal(t, tt.want, Filled(tt.progress, tt.width), "progress=%v width=%d", tt.progress, tt.width)
	}
}

func TestBar_Width(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		width := rapid.IntRange(0, 200).Draw(t, "width")
		progress := rapid.Float64Range(0, 1).Draw(t, "progress")
		require.Equal(t, width, ansi.StringWidth(Bar(progress, width)))
	})
}

func TestSpread(t *testing.T) {
	require.Equal(t, "a   mid   b", Spread("a", "mid", "b", 11))
	require.Equal(t, "left     right", Spread("left", "", "right", 14))
	require.Equal(t, "left right", Spread("left", "mid", "right", 10), "middle dropped when cramped")
	require.Equal(t, "le…", Spread("left", "", "right", 3))
}

func TestRender(t *testing.T) {
	anchor := date.New(2023, 11, 14)
	p := endpoint.Position(1700000000, anchor)

	lines := strings.Split(ansi.Strip(Render(p, 60)), "\n")
	require.Len(t, lines, 3)
	require.Equal(t, 60, ansi.StringWidth(lines[0]))
	require.True(t, strings.HasPrefix(lines[1], "00:00:00"))
	require.Contains(t, lines[1], "22:13:20")
	require.True(t, strings.HasSuffix(lines[1], "23:59:59"))
	require.True(t, strings.HasPrefix(lines[2], "+0 days, 22h13m20s"))
	require.True(t, strings.HasSuffix(lines[2], "-0 days, 01h46m39s"))
}

func TestRender_Midnight(t *testing.T) {
	p := endpoint.Position(1699920000, date.New(2023, 11, 14))
	lines := strings.Split(ansi.Strip(Render(p, 60)), "\n")
	require.True(t, strings.HasPrefix(lines[2], "+0 days, 00h00m00s"))
}

func TestRender_Unrenderable(t *testing.T) {
	p := endpoint.DayPosition{Timestamp: 1 << 62}
	require.Equal(t, endpoint.InvalidTimestamp, ansi.Strip(Render(p, 40)))
	require.Empty(t, Render(p, 0))
}
