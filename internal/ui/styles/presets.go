package styles

import (
	"strings"
)

// Preset is a named palette.
type Preset struct {
	Key    string // config value, e.g. "deus-ex"
	Name   string // display name, e.g. "DEUS EX"
	Colors map[ColorToken]string
}

// DefaultPresetKey is used when nothing is configured or saved.
const DefaultPresetKey = "shiba-inu"

// Presets in the order the theme picker cycles through them.
var Presets = []Preset{
	{Key: "shiba-inu", Name: "SHIBA INU", Colors: palette("#FFC98D", "#FFFFFF", "#000000", "#F00500", "#FFFFFF", "#FFA409", "#FFB800", "#F00500", "#FFC98D")},
	{Key: "win311", Name: "WIN311", Colors: palette("#D3D3D3", "#FFFFFF", "#000000", "#000080", "#FFFFFF", "#808080", "#606080", "#000080", "#D3D3D3")},
	{Key: "clear-blue", Name: "CLEAR BLUE", Colors: palette("#E8F6FF", "#D0E8FF", "#003366", "#0177B7", "#FFFFFF", "#90C0C6", "#6DA3D7", "#0177B7", "#E8F6FF")},
	{Key: "winamp", Name: "WINAMP", Colors: palette("#303030", "#444444", "#F1D579", "#F1D579", "#444444", "#808080", "#505050", "#F1D579", "#444444")},
	{Key: "deus-ex", Name: "DEUS EX", Colors: palette("#000000", "#1A1A1A", "#00FF00", "#FFD700", "#00AA00", "#008000", "#FFD700", "#FFD700", "#1A1A1A")},
	{Key: "black-and-white", Name: "BLACK AND WHITE", Colors: palette("#FFFFFF", "#FFFFFF", "#000000", "#000000", "#FFFFFF", "#CCCCCC", "#808080", "#000000", "#FFFFFF")},
	{Key: "sepia", Name: "SEPIA", Colors: palette("#DEB887", "#EED5B7", "#4A2F22", "#5A3D2B", "#F5E3D9", "#A87D53", "#7A5237", "#5A3D2B", "#EED5B7")},
	{Key: "hello-kitty", Name: "HELLO KITTY", Colors: palette("#FFC0CB", "#FFE4E5", "#880E4F", "#FF69B4", "#FFFFFF", "#FF69B4", "#F06292", "#FF69B4", "#FFE4E5")},
	{Key: "pastel", Name: "PASTEL", Colors: palette("#CFD8DC", "#ECEFF1", "#37474F", "#607D8B", "#ECEFF1", "#90A4AE", "#78909C", "#607D8B", "#ECEFF1")},
	{Key: "ai-nspired", Name: "AI NSPIRED", Colors: palette("#D5E6F7", "#F0F8FF", "#1B2838", "#2D3047", "#76E4B8", "#E0B1CB", "#76E4B8", "#419D78", "#D5E6F7")},
}

func palette(background, surface, text, primary, secondary, accent, highlight, fill, trough string) map[ColorToken]string {
	return map[ColorToken]string{
		TokenBackground:     background,
		TokenSurface:        surface,
		TokenText:           text,
		TokenPrimary:        primary,
		TokenSecondary:      secondary,
		TokenAccent:         accent,
		TokenHighlight:      highlight,
		TokenProgressFill:   fill,
		TokenProgressTrough: trough,
	}
}

// LookupPreset finds a preset by key or display name, ignoring case.
func LookupPreset(name string) (Preset, bool) {
	name = strings.TrimSpace(name)
	for _, p := range Presets {
		if strings.EqualFold(p.Key, name) || strings.EqualFold(p.Name, name) {
			return p, true
		}
	}
	return Preset{}, false
}

// NextPreset returns the preset after key, wrapping at the end. Unknown keys
// start from the first preset.
func NextPreset(key string) Preset {
	for i, p := range Presets {
		if p.Key == key {
			return Presets[(i+1)%len(Presets)]
		}
	}
	return Presets[0]
}
