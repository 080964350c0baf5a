// Package overlay composites a small block of rendered text over a larger
// background view.
package overlay

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// Position is the vertical anchor of the foreground block.
type Position int

const (
	Center Position = iota
	Top
	Bottom
)

// Place draws fg over bg, horizontally centred and vertically anchored at
// pos with pad rows kept free at the anchored edge. bg is padded to height
// lines. Styling on both layers survives the splice.
func Place(bg, fg string, width, height int, pos Position, pad int) string {
	if fg == "" {
		return bg
	}
	rows := strings.Split(bg, "\n")
	for len(rows) < height {
		rows = append(rows, strings.Repeat(" ", width))
	}

	block := strings.Split(fg, "\n")
	x := max((width-lipgloss.Width(fg))/2, 0)
	var y int
	switch pos {
	case Top:
		y = pad
	case Bottom:
		y = height - len(block) - pad
	default:
		y = (height - len(block)) / 2
	}
	y = max(y, 0)

	for i, line := range block {
		if y+i >= len(rows) {
			break
		}
		rows[y+i] = splice(rows[y+i], line, x)
	}
	return strings.Join(rows, "\n")
}

// splice replaces the cells of row starting at column x with line.
func splice(row, line string, x int) string {
	left := ansi.Truncate(row, x, "")
	if w := ansi.StringWidth(left); w < x {
		left += strings.Repeat(" ", x-w)
	}
	end := x + ansi.StringWidth(line)
	var right string
	if end < ansi.StringWidth(row) {
		right = ansi.TruncateLeft(row, end, "")
	}
	return left + line + right
}
