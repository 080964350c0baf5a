// Package app contains the root application model.
package app

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"

	"github.com/zjrosen/stampdelta/internal/bookmarks"
	"github.com/zjrosen/stampdelta/internal/cachemanager"
	"github.com/zjrosen/stampdelta/internal/clock"
	"github.com/zjrosen/stampdelta/internal/config"
	"github.com/zjrosen/stampdelta/internal/duration"
	"github.com/zjrosen/stampdelta/internal/keys"
	"github.com/zjrosen/stampdelta/internal/log"
	"github.com/zjrosen/stampdelta/internal/pubsub"
	"github.com/zjrosen/stampdelta/internal/ui/styles"
	"github.com/zjrosen/stampdelta/internal/ui/toaster"
	"github.com/zjrosen/stampdelta/internal/watcher"
)

// Options carries the collaborators of the application model. Bookmarks and
// Settings may be nil, in which case the bookmark panel is read-only and
// empty.
type Options struct {
	Config     config.Config
	ConfigPath string
	Bookmarks  bookmarks.Repository
	Settings   bookmarks.Settings
	Clock      clock.Clock
	Durations  *cachemanager.Durations
	Changes    *pubsub.Broker[watcher.Change]
	// Target seeds the target field. Zero means the clock's current time.
	Target int64
	Debug  bool
}

// field identifies the focusable areas, in tab order.
type field int

const (
	fieldTarget field = iota
	fieldHead
	fieldTail
	fieldBookmarks
	fieldCount
)

// Model is the root application state.
type Model struct {
	opts  Options
	keys  keys.KeyMap
	help  help.Model
	clock clock.Clock

	inputs  [fieldBookmarks]textinput.Model
	focus   field
	presets [fieldBookmarks]int // preset index per offset field, -1 when typed
	mode    duration.Mode
	theme   string

	items       []*bookmarks.Bookmark
	cursor      int
	editing     *bookmarks.Bookmark
	savedTarget string

	now          time.Time
	width        int
	height       int
	showCalendar bool
	showDayBar   bool
	showHelp     bool

	toaster toaster.Model
	lastLog string

	ctx     context.Context
	cancel  context.CancelFunc
	changes *pubsub.Listener[watcher.Change]
	logs    *pubsub.Listener[string]
}

// New builds the model. It does not touch the database until Init runs.
func New(opts Options) Model {
	if opts.Clock == nil {
		opts.Clock = clock.Real{}
	}
	if opts.Durations == nil {
		opts.Durations = cachemanager.NewDurationMemory()
	}

	ctx, cancel := context.WithCancel(context.Background())
	m := Model{
		opts:         opts,
		keys:         keys.DefaultKeyMap(),
		help:         help.New(),
		clock:        opts.Clock,
		mode:         opts.Config.Mode(),
		theme:        styles.Active(),
		now:          opts.Clock.Now(),
		showCalendar: opts.Config.UI.ShowCalendar,
		showDayBar:   opts.Config.UI.ShowDayBar,
		toaster:      toaster.New(),
		ctx:          ctx,
		cancel:       cancel,
		presets:      [fieldBookmarks]int{-1, -1, -1},
	}

	prompts := [fieldBookmarks]string{"TARGET ", "-HEAD  ", "+TAIL  "}
	for i := range m.inputs {
		ti := textinput.New()
		ti.Prompt = prompts[i]
		ti.CharLimit = 20
		ti.Width = 22
		ti.Placeholder = "seconds"
		m.inputs[i] = ti
	}
	target := opts.Target
	if target == 0 {
		target = m.now.Unix()
	}
	m.inputs[fieldTarget].SetValue(formatInt(target))
	m.inputs[fieldTarget].Focus()

	if opts.Changes != nil && opts.Config.UI.WatchDB {
		m.changes = pubsub.Listen(ctx, opts.Changes)
	}
	if opts.Debug {
		m.logs = log.Subscribe(ctx)
	}
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{textinput.Blink, tick(), m.loadBookmarks(), m.loadTheme()}
	if m.changes != nil {
		cmds = append(cmds, m.changes.Next())
	}
	if m.logs != nil {
		cmds = append(cmds, m.logs.Next())
	}
	return tea.Batch(cmds...)
}

type tickMsg time.Time

func tick() tea.Cmd {
	return tea.Every(time.Second, func(t time.Time) tea.Msg { return tickMsg(t) })
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tickMsg:
		m.now = m.clock.Now()
		return m, tick()

	case toaster.DismissMsg:
		m.toaster = m.toaster.Update(msg)
		return m, nil

	case bookmarksLoadedMsg:
		if msg.err != nil {
			log.ErrorErr(log.CatDB, "Failed to load bookmarks", msg.err)
			return m.toast("Could not load bookmarks: "+msg.err.Error(), toaster.StyleError)
		}
		m.items = msg.items
		m.cursor = min(m.cursor, max(len(m.items)-1, 0))
		return m, nil

	case bookmarkDoneMsg:
		return m.handleBookmarkDone(msg)

	case themeLoadedMsg:
		if msg.key != "" && msg.key != m.theme {
			m.applyTheme(msg.key)
		}
		return m, nil

	case themeSavedMsg:
		if msg.err != nil {
			log.Warn(log.CatConfig, "Failed to persist theme", "theme", msg.key, "error", msg.err)
		}
		return m, nil

	case pubsub.Event[watcher.Change]:
		log.Debug(log.CatWatcher, "Bookmark database changed", "path", msg.Payload.Path)
		return m, tea.Batch(m.loadBookmarks(), m.changes.Next())

	case pubsub.Event[string]:
		m.lastLog = msg.Payload
		return m, m.logs.Next()

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m.updateFocusedInput(msg)
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		return m, tea.Quit
	}
	if m.showHelp {
		if key.Matches(msg, m.keys.Help, m.keys.Escape, m.keys.Quit) {
			m.showHelp = false
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil
	case key.Matches(msg, m.keys.Escape):
		if m.editing != nil {
			m.editing = nil
			m.restoreTarget()
			return m.toast("Edit cancelled", toaster.StyleInfo)
		}
		return m, nil
	case key.Matches(msg, m.keys.NextField):
		return m.setFocus((m.focus + 1) % fieldCount), nil
	case key.Matches(msg, m.keys.PrevField):
		return m.setFocus((m.focus + fieldCount - 1) % fieldCount), nil
	case key.Matches(msg, m.keys.CycleMode):
		return m.cycleMode()
	case key.Matches(msg, m.keys.CycleTheme):
		return m.cycleTheme()
	case key.Matches(msg, m.keys.Calendar):
		m.showCalendar = !m.showCalendar
		return m, nil
	case key.Matches(msg, m.keys.Now):
		m.setTarget(m.clock.Now().Unix())
		return m, nil
	case key.Matches(msg, m.keys.Bookmark):
		return m.bookmarkTarget()
	}

	if m.focus == fieldBookmarks {
		return m.handleListKey(msg)
	}
	return m.handleFieldKey(msg)
}

func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action != tea.MouseActionRelease || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}
	if zone.DefaultManager == nil {
		return m, nil
	}
	for i := range m.items {
		if z := zone.Get(rowZoneID(i)); z != nil && z.InBounds(msg) {
			m.cursor = i
			m = m.setFocus(fieldBookmarks)
			return m.loadSelected()
		}
	}
	for f := fieldTarget; f < fieldBookmarks; f++ {
		if z := zone.Get(fieldZoneID(f)); z != nil && z.InBounds(msg) {
			return m.setFocus(f), nil
		}
	}
	return m, nil
}

func (m Model) toast(message string, style toaster.Style) (Model, tea.Cmd) {
	var cmd tea.Cmd
	m.toaster, cmd = m.toaster.Show(message, style)
	return m, cmd
}

// Close cancels the event subscriptions.
func (m *Model) Close() error {
	if m.cancel != nil {
		m.cancel()
	}
	return nil
}
