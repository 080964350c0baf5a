package duration

import (
	"fmt"
	"strings"

	"github.com/rickb777/date/v2"

	"github.com/zjrosen/stampdelta/internal/clock"
)

// Format renders b according to m. Breakdowns whose selected units are all zero
// render as "0" with no sign.
func Format(b Breakdown, m Mode) string {
	sign := ""
	if b.Negative {
		sign = "-"
	}

	switch m {
	case ModeClock:
		return fmt.Sprintf("%s%d:%02d:%02d", sign, b.TotalHours(), b.Minutes, b.Seconds)
	case ModeDaysTime:
		return fmt.Sprintf("%s%d days, %s", sign, b.TotalDays, timeBlock(b))
	case ModeMonthsDays:
		return fmt.Sprintf("%s%d months, %d days, %s", sign, b.TotalMonths(), b.Days, timeBlock(b))
	}

	years, months := b.Years, b.Months
	if m == ModeUpToMonths && b.Days > 15 {
		months++
		if months == 12 {
			years++
			months = 0
		}
	}

	var parts []string
	if years > 0 {
		parts = append(parts, fmt.Sprintf("%d years", years))
	}
	if m <= ModeUpToMonths && months > 0 {
		parts = append(parts, fmt.Sprintf("%d months", months))
	}
	if m <= ModeUpToDays && b.Days > 0 {
		parts = append(parts, fmt.Sprintf("%d days", b.Days))
	}
	if m <= ModeFull && (b.Hours > 0 || b.Minutes > 0 || b.Seconds > 0) {
		parts = append(parts, timeBlock(b))
	}

	if len(parts) == 0 {
		return "0"
	}
	return sign + strings.Join(parts, ", ")
}

func timeBlock(b Breakdown) string {
	return fmt.Sprintf("%02dh%02dm%02ds", b.Hours, b.Minutes, b.Seconds)
}

// FormatDuration decomposes seconds against anchor and renders it. The second
// return value is false only when seconds is zero, in which case there is
// nothing to render.
func FormatDuration(seconds int64, m Mode, anchor date.Date) (string, bool) {
	if seconds == 0 {
		return "", false
	}
	negative, abs := Split(seconds)
	b := Decompose(abs, anchor)
	b.Negative = negative
	return Format(b, m), true
}

// Formatter renders durations anchored to the current UTC date of its clock.
type Formatter struct {
	clock clock.Clock
}

// NewFormatter returns a Formatter reading dates from c. A nil clock uses the
// system clock.
func NewFormatter(c clock.Clock) Formatter {
	if c == nil {
		c = clock.Real{}
	}
	return Formatter{clock: c}
}

// Anchor returns today's UTC date according to the formatter's clock.
func (f Formatter) Anchor() date.Date {
	return clock.TodayUTC(f.clock)
}

// Format is FormatDuration anchored at f.Anchor().
func (f Formatter) Format(seconds int64, m Mode) (string, bool) {
	return FormatDuration(seconds, m, f.Anchor())
}
