// Package keys contains keybinding definitions.
package keys

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the keybindings for the application.
type KeyMap struct {
	// Focus
	NextField key.Binding
	PrevField key.Binding

	// Navigation and nudging
	Up   key.Binding
	Down key.Binding

	// Offsets
	NextPreset  key.Binding
	PrevPreset  key.Binding
	ClearOffset key.Binding
	Now         key.Binding

	// Bookmarks
	Bookmark key.Binding
	Load     key.Binding
	Star     key.Binding
	Edit     key.Binding
	Delete   key.Binding

	// Display
	CycleMode  key.Binding
	CycleTheme key.Binding
	Calendar   key.Binding

	// General
	Help   key.Binding
	Escape key.Binding
	Quit   key.Binding
}

// DefaultKeyMap returns the default keybindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		NextField: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next field"),
		),
		PrevField: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "previous field"),
		),

		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("k/↑", "up / target +1s"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("j/↓", "down / target -1s"),
		),

		NextPreset: key.NewBinding(
			key.WithKeys("]"),
			key.WithHelp("]", "next preset"),
		),
		PrevPreset: key.NewBinding(
			key.WithKeys("["),
			key.WithHelp("[", "previous preset"),
		),
		ClearOffset: key.NewBinding(
			key.WithKeys("ctrl+u"),
			key.WithHelp("ctrl+u", "clear field"),
		),
		Now: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "target = now"),
		),

		Bookmark: key.NewBinding(
			key.WithKeys("b"),
			key.WithHelp("b", "bookmark target"),
		),
		Load: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "use bookmark / save edit"),
		),
		Star: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "toggle star"),
		),
		Edit: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "edit bookmark"),
		),
		Delete: key.NewBinding(
			key.WithKeys("d", "x"),
			key.WithHelp("d", "delete bookmark"),
		),

		CycleMode: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "cycle duration mode"),
		),
		CycleTheme: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "cycle theme"),
		),
		Calendar: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "toggle calendar"),
		),

		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "toggle help"),
		),
		Escape: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "cancel"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp returns keybindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.NextField, k.Bookmark, k.CycleMode, k.Help, k.Quit}
}

// FullHelp returns keybindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.NextField, k.PrevField, k.Up, k.Down},                  // Navigation
		{k.NextPreset, k.PrevPreset, k.ClearOffset, k.Now},        // Offsets
		{k.Bookmark, k.Load, k.Star, k.Edit, k.Delete},            // Bookmarks
		{k.CycleMode, k.CycleTheme, k.Calendar, k.Help, k.Escape, k.Quit}, // General
	}
}

// Bindings returns every binding in the map.
func (k KeyMap) Bindings() []key.Binding {
	var all []key.Binding
	for _, group := range k.FullHelp() {
		all = append(all, group...)
	}
	return all
}
