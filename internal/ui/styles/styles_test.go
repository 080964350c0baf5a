package styles

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/require"
)

func TestPresets_Complete(t *testing.T) {
	require.Len(t, Presets, 10)
	seen := map[string]bool{}
	for _, p := range Presets {
		require.False(t, seen[p.Key], "duplicate key %s", p.Key)
		seen[p.Key] = true
		for _, tok := range AllTokens() {
			c, ok := p.Colors[tok]
			require.True(t, ok, "%s missing %s", p.Key, tok)
			require.True(t, IsHexColor(c), "%s %s=%s", p.Key, tok, c)
		}
	}
}

func TestLookupPreset(t *testing.T) {
	p, ok := LookupPreset("deus ex")
	require.True(t, ok)
	require.Equal(t, "deus-ex", p.Key)

	p, ok = LookupPreset("HELLO-KITTY")
	require.True(t, ok)
	require.Equal(t, "HELLO KITTY", p.Name)

	_, ok = LookupPreset("dracula")
	require.False(t, ok)
}

func TestNextPreset_Wraps(t *testing.T) {
	require.Equal(t, "win311", NextPreset("shiba-inu").Key)
	require.Equal(t, "shiba-inu", NextPreset("ai-nspired").Key)
	require.Equal(t, "shiba-inu", NextPreset("missing").Key)
}

func TestApplyTheme(t *testing.T) {
	t.Cleanup(func() { _ = ApplyTheme(ThemeConfig{}) })

	require.NoError(t, ApplyTheme(ThemeConfig{Preset: "DEUS EX"}))
	require.Equal(t, "deus-ex", Active())
	require.Equal(t, lipgloss.Color("#00FF00"), TextColor)
	require.Equal(t, lipgloss.Color("#000000"), BackgroundColor)

	require.NoError(t, ApplyTheme(ThemeConfig{Preset: "sepia", Colors: map[string]string{"text": "#123"}}))
	require.Equal(t, lipgloss.Color("#123"), TextColor)
	require.Equal(t, lipgloss.Color("#DEB887"), BackgroundColor)

	require.NoError(t, ApplyTheme(ThemeConfig{}))
	require.Equal(t, DefaultPresetKey, Active())
}

func TestApplyTheme_Errors(t *testing.T) {
	t.Cleanup(func() { _ = ApplyTheme(ThemeConfig{}) })

	require.ErrorContains(t, ApplyTheme(ThemeConfig{Preset: "nord"}), "unknown theme preset")
	require.ErrorContains(t, ApplyTheme(ThemeConfig{Colors: map[string]string{"glow": "#FFF"}}), "unknown color token")
	require.ErrorContains(t, ApplyTheme(ThemeConfig{Colors: map[string]string{"text": "red"}}), "invalid hex color")
}

func TestIsHexColor(t *testing.T) {
	for _, ok := range []string{"#FFF", "#a0b1c2"} {
		require.True(t, IsHexColor(ok), ok)
	}
	for _, bad := range []string{"FFF", "#FFFF", "#GGGGGG", ""} {
		require.False(t, IsHexColor(bad), bad)
	}
}

func TestRenderPanel(t *testing.T) {
	out := ansi.Strip(RenderPanel([]string{"hello", strings.Repeat("x", 40)}, "HEAD", 20, false))
	lines := strings.Split(out, "\n")

	require.Len(t, lines, 4)
	require.Equal(t, "╭─ HEAD ───────────╮", lines[0])
	require.Equal(t, "│hello             │", lines[1])
	require.Equal(t, "╰──────────────────╯", lines[3])
	for _, l := range lines {
		require.Equal(t, 20, lipgloss.Width(l))
	}
	require.True(t, strings.HasSuffix(lines[2], "…│"))
}
