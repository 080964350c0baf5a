package duration

import (
	"github.com/rickb777/date/v2"
)

// Breakdown is a duration split into calendar units.
//
// Days is what is left of TotalDays after removing the calendar days spanned by
// Years and Months. Months are estimated from a 30.44-day average, so Days can
// dip slightly below zero when the spanned months happen to be long ones.
type Breakdown struct {
	Negative bool

	Years   uint64
	Months  uint64
	Days    int64
	Hours   uint64
	Minutes uint64
	Seconds uint64

	TotalDays uint64
}

// TotalMonths returns years and months folded into months.
func (b Breakdown) TotalMonths() uint64 {
	return b.Years*12 + b.Months
}

// TotalHours returns the whole duration in hours, discarding minutes and seconds.
func (b Breakdown) TotalHours() uint64 {
	return b.TotalDays*24 + b.Hours
}

// IsZero reports whether the breakdown represents no elapsed time.
func (b Breakdown) IsZero() bool {
	return b.TotalDays == 0 && b.Hours == 0 && b.Minutes == 0 && b.Seconds == 0
}

// Split separates the sign from a second count. It is safe for math.MinInt64.
func Split(seconds int64) (negative bool, abs uint64) {
	if seconds < 0 {
		return true, uint64(-(seconds + 1)) + 1
	}
	return false, uint64(seconds)
}

// Decompose breaks an absolute second count into a Breakdown whose months are
// measured against real month lengths starting at anchor. The sign is left to
// the caller.
func Decompose(abs uint64, anchor date.Date) Breakdown {
	minutes, seconds := abs/60, abs%60
	hours, minutes := minutes/60, minutes%60
	totalDays, hours := hours/24, hours%24

	// floor(totalDays / 30.44) without floating point.
	totalMonths := totalDays * 100 / 3044
	years, months := totalMonths/12, totalMonths%12

	span := DaysSpanned(years, months, anchor)

	return Breakdown{
		Years:     years,
		Months:    months,
		Days:      int64(totalDays) - int64(span),
		Hours:     hours,
		Minutes:   minutes,
		Seconds:   seconds,
		TotalDays: totalDays,
	}
}
