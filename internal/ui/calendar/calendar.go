// Package calendar renders a read-only month grid with one day highlighted.
// Weeks start on Monday.
package calendar

import (
	"fmt"
	"strings"
	"time"

	"github.com/mattn/go-runewidth"
	"github.com/rickb777/date/v2"
	"github.com/rickb777/date/v2/gregorian"

	"github.com/zjrosen/stampdelta/internal/ui/styles"
)

// Width is the rendered width of the grid in cells.
const Width = 7*3 - 1

var weekdayHeader = []string{"Mo", "Tu", "We", "Th", "Fr", "Sa", "Su"}

// Grid returns the weeks of the month as rows of seven day numbers. Cells
// outside the month are zero.
func Grid(year int, month time.Month) [][7]int {
	first := date.New(year, month, 1)
	lead := (int(first.Weekday()) + 6) % 7 // Monday = 0
	days := gregorian.DaysIn(year, month)

	var weeks [][7]int
	var week [7]int
	col := lead
	for d := 1; d <= days; d++ {
		week[col] = d
		col++
		if col == 7 {
			weeks = append(weeks, week)
			week, col = [7]int{}, 0
		}
	}
	if col > 0 {
		weeks = append(weeks, week)
	}
	return weeks
}

// Render draws the month containing selected with that day highlighted.
func Render(selected date.Date) string {
	year, month, day := selected.Date()

	title := fmt.Sprintf("%s %d", month, year)
	pad := max(Width-runewidth.StringWidth(title), 0)
	lines := []string{
		styles.LabelStyle.Render(strings.Repeat(" ", pad/2) + title + strings.Repeat(" ", pad-pad/2)),
		styles.CalendarHeadStyle.Render(strings.Join(weekdayHeader, " ")),
	}

	for _, week := range Grid(year, month) {
		cells := make([]string, 7)
		for i, d := range week {
			switch {
			case d == 0:
				cells[i] = "  "
			case d == day:
				cells[i] = styles.CalendarTodayStyle.Render(fmt.Sprintf("%2d", d))
			default:
				cells[i] = styles.CalendarDayStyle.Render(fmt.Sprintf("%2d", d))
			}
		}
		lines = append(lines, strings.Join(cells, " "))
	}
	return strings.Join(lines, "\n")
}
