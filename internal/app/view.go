package app

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/dustin/go-humanize"
	zone "github.com/lrstanley/bubblezone"
	"github.com/muesli/reflow/wordwrap"
	"github.com/rickb777/date/v2"

	"github.com/zjrosen/stampdelta/internal/duration"
	"github.com/zjrosen/stampdelta/internal/endpoint"
	"github.com/zjrosen/stampdelta/internal/ui/calendar"
	"github.com/zjrosen/stampdelta/internal/ui/daybar"
	"github.com/zjrosen/stampdelta/internal/ui/overlay"
	"github.com/zjrosen/stampdelta/internal/ui/styles"
)

const (
	defaultWidth  = 80
	inputColumn   = 32
	visibleRows   = 10
	minPanelWidth = 30
)

func rowZoneID(i int) string     { return fmt.Sprintf("bookmark-row-%d", i) }
func fieldZoneID(f field) string { return fmt.Sprintf("field-%d", int(f)) }

// mark and scan are no-ops until a zone manager is installed.
func mark(id, v string) string {
	if zone.DefaultManager == nil {
		return v
	}
	return zone.Mark(id, v)
}

func scan(v string) string {
	if zone.DefaultManager == nil {
		return v
	}
	return zone.Scan(v)
}

// View implements tea.Model.
func (m Model) View() string {
	width := m.width
	if width <= 0 {
		width = defaultWidth
	}

	sections := []string{m.headerView(width), "", m.fieldsView()}

	ts, ok := m.target()
	valid := ok && endpoint.Renderable(ts)
	if m.showDayBar && valid {
		sections = append(sections, "", daybar.Render(endpoint.Position(ts, m.anchor()), width))
	}

	panelWidth := width
	var cal string
	if m.showCalendar && valid {
		cal = calendar.Render(date.NewAt(time.Unix(ts, 0).UTC()))
		panelWidth = max(width-calendar.Width-2, minPanelWidth)
	}
	lower := m.bookmarksView(panelWidth)
	if cal != "" {
		lower = lipgloss.JoinHorizontal(lipgloss.Top, cal, "  ", lower)
	}
	sections = append(sections, "", lower, "", m.footerView(width))

	view := strings.Join(sections, "\n")
	height := max(m.height, lipgloss.Height(view))
	if m.showHelp {
		view = overlay.Place(view, m.helpView(width), width, height, overlay.Center, 0)
	}
	view = m.toaster.Overlay(view, width, height)
	return scan(view)
}

func (m Model) headerView(width int) string {
	now := m.now.UTC()
	left := fmt.Sprintf("POSIX: %s | Timestamp: %s", humanize.Comma(now.Unix()), now.Format(endpoint.DateLayout))
	right := ""
	if p, ok := styles.LookupPreset(m.theme); ok {
		right = p.Name
	}
	inner := width - 2
	gap := inner - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		return styles.HeaderStyle.Render(ansi.Truncate(left, max(inner, 1), "…"))
	}
	return styles.HeaderStyle.Render(left + strings.Repeat(" ", gap) + right)
}

func (m Model) fieldsView() string {
	pair, ok := m.pair()
	ts, _ := m.target()

	targetLabel := styles.ErrorStyle.Render(endpoint.InvalidTimestamp)
	if ok && endpoint.Renderable(ts) {
		targetLabel = styles.ValueStyle.Render(fmt.Sprintf("%s UTC | POSIX: %d", endpoint.FormatTimestamp(ts), ts))
	}
	if m.editing != nil {
		targetLabel += styles.MutedStyle.Render(fmt.Sprintf("  (editing %d)", m.editing.Timestamp))
	}

	rows := []string{
		m.fieldRow(fieldTarget, styles.LabelStyle.Render("Date (TARGET): ")+targetLabel),
	}
	for _, f := range []field{fieldHead, fieldTail} {
		e := pair.Head
		name := "-HEAD"
		if f == fieldTail {
			e, name = pair.Tail, "+TAIL"
		}
		label := styles.LabelStyle.Render("Date ("+name+"): ") + m.endpointLabel(e)
		rows = append(rows, m.fieldRow(f, label))

		detail := m.durationText(e)
		if p := m.presetName(f); p != "" {
			detail = styles.StarStyle.Render(p) + "  " + detail
		}
		rows = append(rows, strings.Repeat(" ", inputColumn)+detail)
	}
	return strings.Join(rows, "\n")
}

func (m Model) fieldRow(f field, label string) string {
	input := m.inputs[f].View()
	if pad := inputColumn - lipgloss.Width(input); pad > 0 {
		input += strings.Repeat(" ", pad)
	}
	return mark(fieldZoneID(f), input) + label
}

func (m Model) endpointLabel(e endpoint.Endpoint) string {
	switch {
	case !e.Set:
		return styles.MutedStyle.Render("-")
	case !e.Valid:
		return styles.ErrorStyle.Render(e.Label())
	default:
		return styles.ValueStyle.Render(e.Label())
	}
}

// durationText renders the endpoint's offset in the selected mode.
func (m Model) durationText(e endpoint.Endpoint) string {
	if !e.Set {
		return ""
	}
	text, ok := m.opts.Durations.Format(m.ctx, e.Offset, m.mode, m.anchor())
	if !ok {
		return styles.MutedStyle.Render("no offset")
	}
	return styles.MutedStyle.Render(fmt.Sprintf("[%s] ", m.mode)) + styles.ValueStyle.Render(text)
}

func (m Model) bookmarksView(width int) string {
	focused := m.focus == fieldBookmarks
	title := fmt.Sprintf("BOOKMARKS (%d)", len(m.items))

	if len(m.items) == 0 {
		hint := "No bookmarks yet. Press b to save the target."
		if m.opts.Bookmarks == nil {
			hint = "Bookmarks unavailable."
		}
		return styles.RenderPanel([]string{styles.MutedStyle.Render(hint)}, title, width, focused)
	}

	start := max(0, min(m.cursor-visibleRows/2, len(m.items)-visibleRows))
	end := min(start+visibleRows, len(m.items))
	rows := make([]string, 0, end-start)
	for i := start; i < end; i++ {
		b := m.items[i]
		star := " "
		if b.Starred {
			star = styles.StarStyle.Render("★")
		}
		text := fmt.Sprintf(" %d  %s", b.Timestamp, m.bookmarkDate(b.Timestamp))
		if focused && i == m.cursor {
			text = styles.SelectedRowStyle.Render(text)
		}
		rows = append(rows, mark(rowZoneID(i), star+text))
	}
	return styles.RenderPanel(rows, title, width, focused)
}

func (m Model) bookmarkDate(ts int64) string {
	if !endpoint.Renderable(ts) {
		return endpoint.InvalidTimestamp
	}
	return endpoint.FormatTimestamp(ts)
}

func (m Model) footerView(width int) string {
	status := fmt.Sprintf("mode: %s", m.mode)
	if m.editing != nil {
		status += " | editing"
	}
	line := m.help.ShortHelpView(m.keys.ShortHelp()) + "  " + styles.MutedStyle.Render(status)
	lines := []string{ansi.Truncate(line, width, "…")}
	if m.opts.Debug && m.lastLog != "" {
		lines = append(lines, styles.MutedStyle.Render(ansi.Truncate(strings.TrimSpace(m.lastLog), width, "…")))
	}
	return strings.Join(lines, "\n")
}

func (m Model) helpView(width int) string {
	inner := max(min(width-6, 72), 20)

	var b strings.Builder
	b.WriteString(styles.PanelTitle.Render("KEYS"))
	b.WriteString("\n")
	b.WriteString(m.help.FullHelpView(m.keys.FullHelp()))
	b.WriteString("\n\n")
	b.WriteString(styles.PanelTitle.Render("DURATION MODES"))
	for _, mode := range duration.Modes {
		b.WriteString("\n")
		line := fmt.Sprintf("%2d %-12s %s", int(mode), mode, mode.Description())
		b.WriteString(wordwrap.String(line, inner))
	}

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(styles.PrimaryColor).
		Padding(0, 1).
		Render(b.String())
}
