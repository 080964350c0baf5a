package endpoint

import (
	"math"
	"time"
)

// InvalidTimestamp is rendered in place of a date that cannot be shown.
const InvalidTimestamp = "Invalid timestamp"

// DateLayout is the UTC layout used for every rendered date.
const DateLayout = "2006-01-02 15:04:05"

const (
	minRenderable = -62135596800 // 0001-01-01 00:00:00 UTC
	maxRenderable = 253402300799 // 9999-12-31 23:59:59 UTC
)

// Renderable reports whether ts falls inside years 1 through 9999.
func Renderable(ts int64) bool {
	return ts >= minRenderable && ts <= maxRenderable
}

// FormatTimestamp renders ts as a UTC date and time, or InvalidTimestamp when
// the year is out of range.
func FormatTimestamp(ts int64) string {
	if !Renderable(ts) {
		return InvalidTimestamp
	}
	return time.Unix(ts, 0).UTC().Format(DateLayout)
}

// addChecked returns a+b and whether the sum fit in an int64.
func addChecked(a, b int64) (int64, bool) {
	if (b > 0 && a > math.MaxInt64-b) || (b < 0 && a < math.MinInt64-b) {
		return 0, false
	}
	return a + b, true
}

// subChecked returns a-b and whether the difference fit in an int64.
func subChecked(a, b int64) (int64, bool) {
	if (b < 0 && a > math.MaxInt64+b) || (b > 0 && a < math.MinInt64+b) {
		return 0, false
	}
	return a - b, true
}

// Nudge moves ts by delta seconds, saturating at the int64 limits.
func Nudge(ts, delta int64) int64 {
	if v, ok := addChecked(ts, delta); ok {
		return v
	}
	if delta > 0 {
		return math.MaxInt64
	}
	return math.MinInt64
}
