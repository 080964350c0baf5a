package app

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rickb777/date/v2"

	"github.com/zjrosen/stampdelta/internal/bookmarks"
	"github.com/zjrosen/stampdelta/internal/clock"
	"github.com/zjrosen/stampdelta/internal/config"
	"github.com/zjrosen/stampdelta/internal/log"
	"github.com/zjrosen/stampdelta/internal/ui/styles"
	"github.com/zjrosen/stampdelta/internal/ui/toaster"
)

type themeLoadedMsg struct {
	key string
}

type themeSavedMsg struct {
	key string
	err error
}

// anchor is the calendar date durations are measured from.
func (m Model) anchor() date.Date {
	return clock.TodayUTC(m.clock)
}

func (m Model) loadTheme() tea.Cmd {
	settings := m.opts.Settings
	if settings == nil {
		return nil
	}
	ctx := m.ctx
	return func() tea.Msg {
		v, ok, err := settings.Get(ctx, bookmarks.SettingTheme)
		if err != nil || !ok {
			return themeLoadedMsg{}
		}
		return themeLoadedMsg{key: v}
	}
}

func (m *Model) applyTheme(key string) bool {
	err := styles.ApplyTheme(styles.ThemeConfig{Preset: key, Colors: m.opts.Config.Theme.Colors})
	if err != nil {
		log.Warn(log.CatUI, "Theme rejected", "theme", key, "error", err)
		return false
	}
	m.theme = styles.Active()
	return true
}

func (m Model) cycleTheme() (tea.Model, tea.Cmd) {
	next := styles.NextPreset(m.theme)
	if !m.applyTheme(next.Key) {
		return m.toast("Could not apply theme "+next.Name, toaster.StyleError)
	}

	nm, cmd := m.toast("Theme: "+next.Name, toaster.StyleInfo)
	return nm, tea.Batch(cmd, m.saveTheme(next.Key))
}

// saveTheme persists key to the settings store and the config file.
func (m Model) saveTheme(key string) tea.Cmd {
	settings, ctx, path := m.opts.Settings, m.ctx, m.opts.ConfigPath
	return func() tea.Msg {
		if settings != nil {
			if err := settings.Set(ctx, bookmarks.SettingTheme, key); err != nil {
				return themeSavedMsg{key: key, err: err}
			}
		}
		if path != "" {
			if err := config.SaveTheme(path, key); err != nil {
				return themeSavedMsg{key: key, err: err}
			}
		}
		return themeSavedMsg{key: key}
	}
}

func (m Model) cycleMode() (tea.Model, tea.Cmd) {
	m.mode = m.mode.Next()
	path, name := m.opts.ConfigPath, m.mode.String()
	var save tea.Cmd
	if path != "" {
		save = func() tea.Msg {
			if err := config.SaveDefaultMode(path, name); err != nil {
				log.Warn(log.CatConfig, "Failed to persist mode", "mode", name, "error", err)
			}
			return nil
		}
	}
	nm, cmd := m.toast("Mode: "+name+" ("+m.mode.Description()+")", toaster.StyleInfo)
	return nm, tea.Batch(cmd, save)
}
