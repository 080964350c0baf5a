// Package config loads and saves the stampdelta YAML configuration.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/zjrosen/stampdelta/internal/duration"
	"github.com/zjrosen/stampdelta/internal/log"
	"github.com/zjrosen/stampdelta/internal/tracing"
	"github.com/zjrosen/stampdelta/internal/ui/styles"
)

// Config holds every option stampdelta reads.
type Config struct {
	DBPath        string         `mapstructure:"db_path"`
	DefaultMode   string         `mapstructure:"default_mode"`
	BookmarkLimit int            `mapstructure:"bookmark_limit"`
	Theme         ThemeConfig    `mapstructure:"theme"`
	UI            UIConfig       `mapstructure:"ui"`
	Tracing       tracing.Config `mapstructure:"tracing"`
}

// ThemeConfig picks a palette and optionally overrides single tokens.
type ThemeConfig struct {
	Preset string            `mapstructure:"preset"`
	Colors map[string]string `mapstructure:"colors"`
}

// UIConfig toggles optional TUI panels.
type UIConfig struct {
	ShowCalendar bool `mapstructure:"show_calendar"`
	ShowDayBar   bool `mapstructure:"show_day_bar"`
	WatchDB      bool `mapstructure:"watch_db"` // reload bookmarks written by other processes
}

// MaxBookmarkLimit caps bookmark_limit.
const MaxBookmarkLimit = 10000

// Dir returns ~/.config/stampdelta, or "" without a home directory.
func Dir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "stampdelta")
}

// Defaults returns the configuration used when a key is absent.
func Defaults() Config {
	dir := Dir()
	tc := tracing.DefaultConfig()
	if dir != "" {
		tc.FilePath = filepath.Join(dir, "traces", "traces.jsonl")
	}
	return Config{
		DBPath:        filepath.Join(dir, "bookmarks.db"),
		DefaultMode:   duration.ModeFull.String(),
		BookmarkLimit: 100,
		Theme:         ThemeConfig{Preset: styles.DefaultPresetKey},
		UI: UIConfig{
			ShowCalendar: true,
			ShowDayBar:   true,
			WatchDB:      true,
		},
		Tracing: tc,
	}
}

// Mode returns the parsed default_mode, falling back to ModeFull.
func (c Config) Mode() duration.Mode {
	m, err := duration.ParseMode(c.DefaultMode)
	if err != nil {
		return duration.ModeFull
	}
	return m
}

// ResolvedDBPath expands a leading ~ in db_path.
func (c Config) ResolvedDBPath() string {
	return ExpandHome(c.DBPath)
}

// ExpandHome replaces a leading "~/" with the user's home directory.
func ExpandHome(p string) string {
	rest, ok := strings.CutPrefix(p, "~/")
	if !ok {
		return p
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return p
	}
	return filepath.Join(home, rest)
}

// Validate checks every section.
func Validate(c Config) error {
	return errors.Join(
		ValidateMode(c.DefaultMode),
		ValidateBookmarkLimit(c.BookmarkLimit),
		ValidateTheme(c.Theme),
		c.Tracing.Validate(),
	)
}

// ValidateMode accepts any name or number ParseMode understands, or empty.
func ValidateMode(mode string) error {
	if mode == "" {
		return nil
	}
	if _, err := duration.ParseMode(mode); err != nil {
		return fmt.Errorf("default_mode: %w", err)
	}
	return nil
}

// ValidateBookmarkLimit requires 1..MaxBookmarkLimit.
func ValidateBookmarkLimit(n int) error {
	if n < 1 || n > MaxBookmarkLimit {
		return fmt.Errorf("bookmark_limit must be between 1 and %d, got %d", MaxBookmarkLimit, n)
	}
	return nil
}

// ValidateTheme checks the preset name and colour overrides.
func ValidateTheme(t ThemeConfig) error {
	if t.Preset != "" {
		if _, ok := styles.LookupPreset(t.Preset); !ok {
			return fmt.Errorf("theme.preset: unknown preset %q", t.Preset)
		}
	}
	for k, v := range t.Colors {
		if !styles.IsHexColor(v) {
			return fmt.Errorf("theme.colors.%s: invalid hex color %q", k, v)
		}
	}
	return nil
}

// StylesTheme converts the theme section for styles.ApplyTheme.
func (t ThemeConfig) StylesTheme() styles.ThemeConfig {
	return styles.ThemeConfig{Preset: t.Preset, Colors: t.Colors}
}

// DefaultConfigTemplate is written on first run.
func DefaultConfigTemplate() string {
	return `# stampdelta configuration

# Bookmark database (sqlite). A leading ~/ expands to your home directory.
# db_path: ~/.config/stampdelta/bookmarks.db

# Duration rendering used by "stampdelta format" when --mode is not given.
# full, days, months, years, months-days, days-time, clock (or 0..3, -1..-3)
default_mode: full

# Maximum bookmarks listed. Starred bookmarks are always listed.
bookmark_limit: 100

theme:
  # shiba-inu, win311, clear-blue, winamp, deus-ex, black-and-white,
  # sepia, hello-kitty, pastel, ai-nspired
  preset: shiba-inu
  # colors:
  #   text: "#000000"
  #   progress.fill: "#F00500"

ui:
  show_calendar: true
  show_day_bar: true
  watch_db: true  # reload bookmarks changed by other stampdelta processes

# tracing:
#   enabled: false
#   exporter: file               # none, file, stdout, otlp
#   file_path: ~/.config/stampdelta/traces/traces.jsonl
#   otlp_endpoint: localhost:4317
#   sample_rate: 1.0
`
}

// WriteDefaultConfig writes DefaultConfigTemplate to path, creating parent
// directories.
func WriteDefaultConfig(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		log.ErrorErr(log.CatConfig, "creating config directory failed", err, "path", path)
		return fmt.Errorf("creating config directory: %w", err)
	}
	if err := os.WriteFile(path, []byte(DefaultConfigTemplate()), 0o600); err != nil {
		log.ErrorErr(log.CatConfig, "writing default config failed", err, "path", path)
		return fmt.Errorf("writing config file: %w", err)
	}
	log.Info(log.CatConfig, "created default config", "path", path)
	return nil
}
