package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/zjrosen/stampdelta/internal/log"
)

// EnvPrefix prefixes environment overrides, e.g. STAMPDELTA_DB_PATH or
// STAMPDELTA_THEME_PRESET.
const EnvPrefix = "STAMPDELTA"

// Paths are the candidate config files in lookup order.
type Paths struct {
	Explicit string // --config; must exist when set
	Local    string // .stampdelta/config.yaml
	User     string // ~/.config/stampdelta/config.yaml, created when nothing exists
}

// DefaultPaths returns the standard lookup order with explicit first.
func DefaultPaths(explicit string) Paths {
	p := Paths{Explicit: explicit, Local: filepath.Join(".stampdelta", "config.yaml")}
	if dir := Dir(); dir != "" {
		p.User = filepath.Join(dir, "config.yaml")
	}
	return p
}

// Load reads the first config file that exists, applies environment
// overrides and returns the config along with the file it came from. When
// no file exists a default one is written to Paths.User.
func Load(p Paths) (Config, string, error) {
	v := viper.New()
	setDefaults(v, Defaults())
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	path, err := pick(p)
	if err != nil {
		return Config{}, "", err
	}
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, "", fmt.Errorf("reading config %s: %w", path, err)
		}
		log.Debug(log.CatConfig, "loaded config", "path", path)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, "", fmt.Errorf("decoding config: %w", err)
	}
	return cfg, path, nil
}

func pick(p Paths) (string, error) {
	if p.Explicit != "" {
		if _, err := os.Stat(p.Explicit); err != nil {
			return "", fmt.Errorf("config file %s: %w", p.Explicit, err)
		}
		return p.Explicit, nil
	}
	for _, c := range []string{p.Local, p.User} {
		if c == "" {
			continue
		}
		if _, err := os.Stat(c); err == nil {
			return c, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", fmt.Errorf("config file %s: %w", c, err)
		}
	}
	if p.User == "" {
		return "", nil
	}
	if err := WriteDefaultConfig(p.User); err != nil {
		// Defaults still apply without a file.
		return "", nil
	}
	return p.User, nil
}

func setDefaults(v *viper.Viper, d Config) {
	v.SetDefault("db_path", d.DBPath)
	v.SetDefault("default_mode", d.DefaultMode)
	v.SetDefault("bookmark_limit", d.BookmarkLimit)
	v.SetDefault("theme.preset", d.Theme.Preset)
	v.SetDefault("ui.show_calendar", d.UI.ShowCalendar)
	v.SetDefault("ui.show_day_bar", d.UI.ShowDayBar)
	v.SetDefault("ui.watch_db", d.UI.WatchDB)
	v.SetDefault("tracing.enabled", d.Tracing.Enabled)
	v.SetDefault("tracing.exporter", d.Tracing.Exporter)
	v.SetDefault("tracing.file_path", d.Tracing.FilePath)
	v.SetDefault("tracing.otlp_endpoint", d.Tracing.OTLPEndpoint)
	v.SetDefault("tracing.sample_rate", d.Tracing.SampleRate)
}
