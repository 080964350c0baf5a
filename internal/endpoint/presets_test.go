package endpoint

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPresets_Ordered(t *testing.T) {
	require.Len(t, Presets, 11)
	require.Equal(t, "DAY", Presets[0].Name)
	require.Equal(t, "365 DAYS", Presets[len(Presets)-1].Name)

	for i := 1; i < len(Presets); i++ {
		require.Greater(t, Presets[i].Seconds, Presets[i-1].Seconds)
	}
	for _, p := range Presets {
		require.Zero(t, p.Seconds%86400, p.Name)
	}
}

func TestLookupPreset(t *testing.T) {
	p, ok := LookupPreset(" 2 weeks ")
	require.True(t, ok)
	require.Equal(t, int64(1209600), p.Seconds)

	_, ok = LookupPreset("fortnight")
	require.False(t, ok)
}

func TestParseOffset(t *testing.T) {
	o, err := ParseOffset("week")
	require.NoError(t, err)
	n, ok := o.Get()
	require.True(t, ok)
	require.Equal(t, int64(604800), n)

	o, err = ParseOffset("-30")
	require.NoError(t, err)
	n, ok = o.Get()
	require.True(t, ok)
	require.Equal(t, int64(-30), n)

	o, err = ParseOffset("  ")
	require.NoError(t, err)
	_, ok = o.Get()
	require.False(t, ok)

	_, err = ParseOffset("1.5")
	require.Error(t, err)
	require.Contains(t, err.Error(), `"1.5"`)
}
