// Package styles holds the themeable Lip Gloss styles shared by the TUI.
package styles

// ColorToken names a themeable colour.
type ColorToken string

const (
	TokenBackground     ColorToken = "background"
	TokenSurface        ColorToken = "surface" // input and list backgrounds
	TokenText           ColorToken = "text"
	TokenPrimary        ColorToken = "primary"
	TokenSecondary      ColorToken = "secondary"
	TokenAccent         ColorToken = "accent"
	TokenHighlight      ColorToken = "highlight"
	TokenProgressFill   ColorToken = "progress.fill"
	TokenProgressTrough ColorToken = "progress.trough"
)

// AllTokens lists every token a config may override.
func AllTokens() []ColorToken {
	return []ColorToken{
		TokenBackground,
		TokenSurface,
		TokenText,
		TokenPrimary,
		TokenSecondary,
		TokenAccent,
		TokenHighlight,
		TokenProgressFill,
		TokenProgressTrough,
	}
}
