// Package duration decomposes second counts into calendar-aware breakdowns and
// renders them in a handful of display modes.
package duration

import (
	"time"

	"github.com/rickb777/date/v2"
	"github.com/rickb777/date/v2/gregorian"
)

// A Gregorian cycle repeats every 400 years regardless of where it starts.
const (
	monthsPerCycle = 400 * 12
	daysPerCycle   = 146097
)

// DaysSpanned returns the number of calendar days covered by walking
// years*12+months whole months forward from the month containing anchor.
func DaysSpanned(years, months uint64, anchor date.Date) uint64 {
	steps := years*12 + months

	total := (steps / monthsPerCycle) * daysPerCycle
	rest := steps % monthsPerCycle

	year, month, _ := anchor.Date()
	for range rest {
		total += uint64(gregorian.DaysIn(year, month))
		if month == time.December {
			year, month = year+1, time.January
		} else {
			month++
		}
	}
	return total
}
