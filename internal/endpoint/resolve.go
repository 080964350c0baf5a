// Package endpoint derives the head and tail timestamps around a target and
// renders them with their offset durations.
package endpoint

import (
	"fmt"

	"github.com/rickb777/date/v2"

	"github.com/zjrosen/stampdelta/internal/duration"
)

// Direction selects which side of the reference an offset lands on.
type Direction int

const (
	// Head subtracts the offset from the reference.
	Head Direction = iota
	// Tail adds the offset to the reference.
	Tail
)

func (d Direction) String() string {
	switch d {
	case Head:
		return "head"
	case Tail:
		return "tail"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}

// Offset is an optional number of seconds.
type Offset struct {
	seconds int64
	set     bool
}

// Some returns an Offset holding n seconds.
func Some(n int64) Offset { return Offset{seconds: n, set: true} }

// None returns an unset Offset.
func None() Offset { return Offset{} }

// Get returns the seconds and whether the offset is set.
func (o Offset) Get() (int64, bool) { return o.seconds, o.set }

// Endpoint is a resolved head or tail.
type Endpoint struct {
	Direction Direction
	Timestamp int64
	Offset    int64
	Duration  string
	Date      string
	Set       bool
	Valid     bool
}

// Label renders the endpoint's date and POSIX value. Unset endpoints render
// empty.
func (e Endpoint) Label() string {
	if !e.Set {
		return ""
	}
	if !e.Valid {
		return InvalidTimestamp
	}
	return fmt.Sprintf("%s UTC | POSIX: %d", e.Date, e.Timestamp)
}

// Resolve moves reference by offset in the given direction. The duration text
// is the full rendering of the offset anchored at anchor.
func Resolve(reference int64, offset Offset, dir Direction, anchor date.Date) Endpoint {
	n, ok := offset.Get()
	if !ok {
		return Endpoint{Direction: dir}
	}

	e := Endpoint{Direction: dir, Offset: n, Set: true}
	e.Duration, _ = duration.FormatDuration(n, duration.ModeFull, anchor)

	var fits bool
	if dir == Head {
		e.Timestamp, fits = subChecked(reference, n)
	} else {
		e.Timestamp, fits = addChecked(reference, n)
	}

	if !fits || !Renderable(e.Timestamp) {
		e.Date = InvalidTimestamp
		return e
	}
	e.Date = FormatTimestamp(e.Timestamp)
	e.Valid = true
	return e
}

// Pair holds both endpoints around a reference.
type Pair struct {
	Reference int64
	Head      Endpoint
	Tail      Endpoint
}

// ResolvePair resolves head and tail around reference.
func ResolvePair(reference int64, head, tail Offset, anchor date.Date) Pair {
	return Pair{
		Reference: reference,
		Head:      Resolve(reference, head, Head, anchor),
		Tail:      Resolve(reference, tail, Tail, anchor),
	}
}
