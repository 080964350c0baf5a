package styles

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

const (
	cornerTL = "╭"
	cornerTR = "╮"
	cornerBL = "╰"
	cornerBR = "╯"
	edgeH    = "─"
	edgeV    = "│"
)

// RenderPanel draws rows inside a rounded box with the title set into the
// top edge: ╭─ TITLE ────╮. Rows wider than the box are truncated.
func RenderPanel(rows []string, title string, width int, focused bool) string {
	border := PanelBorder
	if focused {
		border = FocusedBorder
	}
	inner := max(width-2, 1)

	var top string
	if title == "" || inner < 4 {
		top = border.Render(cornerTL + strings.Repeat(edgeH, inner) + cornerTR)
	} else {
		title = ansi.Truncate(title, inner-4, "…")
		rest := max(inner-3-lipgloss.Width(title), 0)
		top = border.Render(cornerTL+edgeH+" ") + PanelTitle.Render(title) +
			border.Render(" "+strings.Repeat(edgeH, rest)+cornerTR)
	}

	lines := make([]string, 0, len(rows)+2)
	lines = append(lines, top)
	for _, row := range rows {
		row = ansi.Truncate(row, inner, "…")
		pad := inner - lipgloss.Width(row)
		lines = append(lines, border.Render(edgeV)+row+strings.Repeat(" ", max(pad, 0))+border.Render(edgeV))
	}
	lines = append(lines, border.Render(cornerBL+strings.Repeat(edgeH, inner)+cornerBR))
	return strings.Join(lines, "\n")
}
