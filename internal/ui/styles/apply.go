package styles

import (
	"fmt"
	"maps"
	"slices"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ThemeConfig is the theme section of the user config.
type ThemeConfig struct {
	Preset string
	Colors map[string]string
}

var active = DefaultPresetKey

// Active returns the key of the preset last applied.
func Active() string {
	return active
}

// ApplyTheme loads the preset (the default one when empty), layers colour
// overrides on top and rebuilds every style.
func ApplyTheme(cfg ThemeConfig) error {
	key := cfg.Preset
	if key == "" {
		key = DefaultPresetKey
	}
	preset, ok := LookupPreset(key)
	if !ok {
		return fmt.Errorf("unknown theme preset: %s", cfg.Preset)
	}
	colors := maps.Clone(preset.Colors)

	for k, v := range cfg.Colors {
		token := ColorToken(k)
		if !slices.Contains(AllTokens(), token) {
			return fmt.Errorf("unknown color token: %s", k)
		}
		if !IsHexColor(v) {
			return fmt.Errorf("invalid hex color for %s: %s", k, v)
		}
		colors[token] = v
	}

	BackgroundColor = lipgloss.Color(colors[TokenBackground])
	SurfaceColor = lipgloss.Color(colors[TokenSurface])
	TextColor = lipgloss.Color(colors[TokenText])
	PrimaryColor = lipgloss.Color(colors[TokenPrimary])
	SecondaryColor = lipgloss.Color(colors[TokenSecondary])
	AccentColor = lipgloss.Color(colors[TokenAccent])
	HighlightColor = lipgloss.Color(colors[TokenHighlight])
	ProgressFillColor = lipgloss.Color(colors[TokenProgressFill])
	ProgressTroughColor = lipgloss.Color(colors[TokenProgressTrough])

	active = preset.Key
	rebuildStyles()
	return nil
}

// IsHexColor accepts #RGB and #RRGGBB.
func IsHexColor(s string) bool {
	hex, ok := strings.CutPrefix(s, "#")
	if !ok || (len(hex) != 3 && len(hex) != 6) {
		return false
	}
	_, err := strconv.ParseUint(hex, 16, 32)
	return err == nil
}
