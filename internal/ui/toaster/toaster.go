// Package toaster provides a notification toast overlay component.
package toaster

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/zjrosen/stampdelta/internal/ui/overlay"
	"github.com/zjrosen/stampdelta/internal/ui/styles"
)

// DefaultDuration is how long a toast stays up.
const DefaultDuration = 3 * time.Second

// Style determines the visual appearance of the toast.
type Style int

const (
	StyleSuccess Style = iota
	StyleError
	StyleInfo
)

// Model holds the toaster state. Each Show bumps a generation counter so a
// dismissal scheduled for an older toast leaves a newer one alone.
type Model struct {
	message string
	style   Style
	visible bool
	gen     int
}

// New creates a new toaster model.
func New() Model {
	return Model{}
}

// Show displays message and returns the command that will dismiss it.
func (m Model) Show(message string, style Style) (Model, tea.Cmd) {
	m.message = message
	m.style = style
	m.visible = true
	m.gen++
	return m, scheduleDismiss(m.gen, DefaultDuration)
}

// Hide dismisses the toast.
func (m Model) Hide() Model {
	m.visible = false
	m.message = ""
	return m
}

// Visible returns whether the toast is currently showing.
func (m Model) Visible() bool {
	return m.visible
}

// Message returns the text of the current toast.
func (m Model) Message() string {
	return m.message
}

// Update handles DismissMsg.
func (m Model) Update(msg tea.Msg) Model {
	if d, ok := msg.(DismissMsg); ok && d.gen == m.gen {
		return m.Hide()
	}
	return m
}

// View renders the toast box.
func (m Model) View() string {
	if !m.visible || m.message == "" {
		return ""
	}

	style := lipgloss.NewStyle().
		Padding(0, 1).
		Border(lipgloss.RoundedBorder())

	var content string
	switch m.style {
	case StyleError:
		style = style.BorderForeground(styles.ErrorColor)
		content = "✗ " + m.message
	case StyleInfo:
		style = style.BorderForeground(styles.AccentColor)
		content = "• " + m.message
	default:
		style = style.BorderForeground(styles.SuccessColor)
		content = "✓ " + m.message
	}
	return style.Render(content)
}

// Overlay renders the toast near the bottom edge of bg.
func (m Model) Overlay(bg string, width, height int) string {
	if !m.visible || m.message == "" {
		return bg
	}
	return overlay.Place(bg, m.View(), width, height, overlay.Bottom, 1)
}

// DismissMsg signals that the toast from a given Show should be dismissed.
type DismissMsg struct {
	gen int
}

func scheduleDismiss(gen int, d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return DismissMsg{gen: gen}
	})
}
