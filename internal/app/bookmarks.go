package app

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/zjrosen/stampdelta/internal/bookmarks"
	"github.com/zjrosen/stampdelta/internal/log"
	"github.com/zjrosen/stampdelta/internal/ui/toaster"
)

type bookmarksLoadedMsg struct {
	items []*bookmarks.Bookmark
	err   error
}

// bookmarkDoneMsg reports the outcome of a bookmark mutation.
type bookmarkDoneMsg struct {
	verb string
	ts   int64
	err  error
}

func (m Model) loadBookmarks() tea.Cmd {
	repo := m.opts.Bookmarks
	if repo == nil {
		return nil
	}
	ctx, limit := m.ctx, m.opts.Config.BookmarkLimit
	return func() tea.Msg {
		items, err := repo.List(ctx, limit)
		return bookmarksLoadedMsg{items: items, err: err}
	}
}

func (m Model) mutate(verb string, ts int64, op func() error) tea.Cmd {
	return func() tea.Msg {
		return bookmarkDoneMsg{verb: verb, ts: ts, err: op()}
	}
}

func (m Model) bookmarkTarget() (tea.Model, tea.Cmd) {
	ts, ok := m.target()
	if !ok {
		return m.toast("Target is not a valid timestamp", toaster.StyleError)
	}
	if m.opts.Bookmarks == nil {
		return m.toast("Bookmarks are unavailable", toaster.StyleError)
	}
	repo, ctx := m.opts.Bookmarks, m.ctx
	return m, m.mutate("added", ts, func() error {
		_, err := repo.Add(ctx, ts)
		return err
	})
}

func (m Model) selected() *bookmarks.Bookmark {
	if m.cursor < 0 || m.cursor >= len(m.items) {
		return nil
	}
	return m.items[m.cursor]
}

func (m Model) handleListKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil
	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}
		return m, nil
	}

	b := m.selected()
	if b == nil || m.opts.Bookmarks == nil {
		return m, nil
	}
	repo, ctx := m.opts.Bookmarks, m.ctx

	switch {
	case key.Matches(msg, m.keys.Load):
		return m.loadSelected()
	case key.Matches(msg, m.keys.Star):
		verb := "starred"
		if b.Starred {
			verb = "unstarred"
		}
		return m, m.mutate(verb, b.Timestamp, func() error {
			_, err := repo.ToggleStar(ctx, b.Timestamp)
			return err
		})
	case key.Matches(msg, m.keys.Delete):
		if b.Starred {
			return m.toast("Unstar a bookmark before deleting it", toaster.StyleError)
		}
		return m, m.mutate("deleted", b.Timestamp, func() error {
			return repo.Delete(ctx, b.Timestamp)
		})
	case key.Matches(msg, m.keys.Edit):
		return m.startEdit(b)
	}
	return m, nil
}

// loadSelected copies the selected bookmark into the target field.
func (m Model) loadSelected() (tea.Model, tea.Cmd) {
	b := m.selected()
	if b == nil {
		return m, nil
	}
	m.setTarget(b.Timestamp)
	return m, nil
}

// startEdit moves the bookmark into the target field; enter saves it back.
func (m Model) startEdit(b *bookmarks.Bookmark) (tea.Model, tea.Cmd) {
	m.editing = b
	m.savedTarget = m.inputs[fieldTarget].Value()
	m.setTarget(b.Timestamp)
	m = m.setFocus(fieldTarget)
	return m.toast(fmt.Sprintf("Editing %d: enter saves, esc cancels", b.Timestamp), toaster.StyleInfo)
}

func (m *Model) restoreTarget() {
	m.inputs[fieldTarget].SetValue(m.savedTarget)
	m.inputs[fieldTarget].CursorEnd()
	m.savedTarget = ""
}

func (m Model) commitEdit() (tea.Model, tea.Cmd) {
	updated, ok := m.target()
	if !ok {
		return m.toast("Target is not a valid timestamp", toaster.StyleError)
	}
	old := m.editing.Timestamp
	m.editing = nil
	m.savedTarget = ""
	repo, ctx := m.opts.Bookmarks, m.ctx
	return m, m.mutate("edited", old, func() error {
		return repo.Edit(ctx, old, updated)
	})
}

func (m Model) handleBookmarkDone(msg bookmarkDoneMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		log.Warn(log.CatDB, "Bookmark operation failed", "op", msg.verb, "timestamp", msg.ts, "error", msg.err)
		var text string
		switch {
		case errors.Is(msg.err, bookmarks.ErrDuplicate):
			text = "Already bookmarked"
		case errors.Is(msg.err, bookmarks.ErrNotFound):
			text = fmt.Sprintf("Bookmark %d no longer exists", msg.ts)
		case errors.Is(msg.err, bookmarks.ErrStarred):
			text = "Unstar a bookmark before deleting it"
		default:
			text = "Bookmark update failed: " + msg.err.Error()
		}
		nm, cmd := m.toast(text, toaster.StyleError)
		return nm, tea.Batch(cmd, m.loadBookmarks())
	}

	log.Info(log.CatDB, "Bookmark updated", "op", msg.verb, "timestamp", msg.ts)
	nm, cmd := m.toast(fmt.Sprintf("Bookmark %s", msg.verb), toaster.StyleSuccess)
	return nm, tea.Batch(cmd, m.loadBookmarks())
}
