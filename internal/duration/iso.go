package duration

import (
	"math"
	"strconv"
	"strings"

	"github.com/rickb777/period"
)

// periodLimit is the largest field period.New carries without rounding.
const periodLimit = math.MaxInt32

// ISO renders b as an ISO-8601 period such as "P1Y2M3DT4H5M6S". Days may be
// negative when the month estimate overshoots; the period keeps that field's
// own sign. Breakdowns with fields beyond periodLimit are written out digit
// for digit.
func ISO(b Breakdown) string {
	days := b.Days
	if days < 0 {
		days = -days
	}
	if b.Years > periodLimit || days > periodLimit {
		return isoExact(b)
	}

	p := period.New(
		int(b.Years), int(b.Months), 0, int(b.Days),
		int(b.Hours), int(b.Minutes), int(b.Seconds),
	)
	if b.Negative {
		p = p.Negate()
	}
	return p.String()
}

func isoExact(b Breakdown) string {
	var sb strings.Builder
	if b.Negative {
		sb.WriteByte('-')
	}
	sb.WriteByte('P')
	unsigned := func(n uint64, designator byte) {
		if n != 0 {
			sb.WriteString(strconv.FormatUint(n, 10))
			sb.WriteByte(designator)
		}
	}
	unsigned(b.Years, 'Y')
	unsigned(b.Months, 'M')
	if b.Days != 0 {
		sb.WriteString(strconv.FormatInt(b.Days, 10))
		sb.WriteByte('D')
	}
	if b.Hours != 0 || b.Minutes != 0 || b.Seconds != 0 {
		sb.WriteByte('T')
		unsigned(b.Hours, 'H')
		unsigned(b.Minutes, 'M')
		unsigned(b.Seconds, 'S')
	}
	return sb.String()
}
