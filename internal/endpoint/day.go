package endpoint

import (
	"time"

	"github.com/rickb777/date/v2"

	"github.com/zjrosen/stampdelta/internal/duration"
)

const secondsPerDay = 86400

// DayPosition places a timestamp within its UTC day.
type DayPosition struct {
	Timestamp  int64
	Start      int64
	End        int64
	DayOfMonth int
	// SinceStart and UntilEnd are rendered in days-time mode. SinceStart is
	// empty at midnight.
	SinceStart string
	UntilEnd   string
	Progress   float64
}

// Position computes where ts sits within its UTC day.
func Position(ts int64, anchor date.Date) DayPosition {
	start := floorDiv(ts, secondsPerDay) * secondsPerDay
	end := start + secondsPerDay - 1

	p := DayPosition{
		Timestamp: ts,
		Start:     start,
		End:       end,
		Progress:  float64(ts-start) / secondsPerDay,
	}
	p.SinceStart, _ = duration.FormatDuration(ts-start, duration.ModeDaysTime, anchor)
	p.UntilEnd, _ = duration.FormatDuration(ts-end, duration.ModeDaysTime, anchor)
	if Renderable(ts) {
		p.DayOfMonth = time.Unix(ts, 0).UTC().Day()
	}
	return p
}

func floorDiv(a, b int64) int64 {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}
