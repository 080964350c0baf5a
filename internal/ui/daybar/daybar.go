// Package daybar draws where a timestamp falls within its UTC day.
package daybar

import (
	"math"
	"strings"
	"time"

	"github.com/mattn/go-runewidth"

	"github.com/zjrosen/stampdelta/internal/endpoint"
	"github.com/zjrosen/stampdelta/internal/ui/styles"
)

const (
	fillRune   = "█"
	troughRune = "░"
)

// Filled returns how many of width cells a bar at progress covers.
func Filled(progress float64, width int) int {
	if width <= 0 || math.IsNaN(progress) {
		return 0
	}
	n := int(math.Round(progress * float64(width)))
	return min(max(n, 0), width)
}

// Bar renders the plain progress bar.
func Bar(progress float64, width int) string {
	n := Filled(progress, width)
	return styles.ProgressFillStyle.Render(strings.Repeat(fillRune, n)) +
		styles.ProgressTroughStyle.Render(strings.Repeat(troughRune, max(width-n, 0)))
}

// Spread lays out left, middle and right across width cells. The middle text
// is centred; when the three do not fit, middle is dropped first.
func Spread(left, middle, right string, width int) string {
	lw, mw, rw := runewidth.StringWidth(left), runewidth.StringWidth(middle), runewidth.StringWidth(right)
	if lw+mw+rw+2 > width {
		middle, mw = "", 0
	}
	if lw+rw+1 > width {
		return runewidth.Truncate(left, width, "…")
	}

	gap := width - lw - mw - rw
	before := gap / 2
	if mw == 0 {
		before = gap
	}
	return left + strings.Repeat(" ", before) + middle + strings.Repeat(" ", gap-before) + right
}

// Render returns the three-line day bar: the bar, the day bounds with the
// target clock time, and the distances to both bounds.
func Render(p endpoint.DayPosition, width int) string {
	if width <= 0 {
		return ""
	}
	if !endpoint.Renderable(p.Timestamp) {
		return styles.ErrorStyle.Render(runewidth.Truncate(endpoint.InvalidTimestamp, width, "…"))
	}

	clockText := time.Unix(p.Timestamp, 0).UTC().Format(time.TimeOnly)
	since := p.SinceStart
	if since == "" {
		since = "0 days, 00h00m00s"
	}

	lines := []string{
		Bar(p.Progress, width),
		styles.MutedStyle.Render(Spread("00:00:00", clockText, "23:59:59", width)),
		styles.ValueStyle.Render(Spread("+"+since, "", p.UntilEnd, width)),
	}
	return strings.Join(lines, "\n")
}
