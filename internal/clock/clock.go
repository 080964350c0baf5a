// Package clock supplies the current time so that callers can swap in a fixed
// clock under test.
package clock

import (
	"sync"
	"time"

	"github.com/rickb777/date/v2"
)

// Clock provides the current time. Use Real in production and Fixed in tests.
type Clock interface {
	Now() time.Time
}

// Real returns the actual current time.
type Real struct{}

// Now returns the current time.
func (Real) Now() time.Time { return time.Now() }

// Fixed is a settable clock for tests.
type Fixed struct {
	mu      sync.Mutex
	current time.Time
}

// NewFixed returns a Fixed clock set to t.
func NewFixed(t time.Time) *Fixed {
	return &Fixed{current: t}
}

// FromUnix returns a Fixed clock set to the given POSIX second.
func FromUnix(sec int64) *Fixed {
	return NewFixed(time.Unix(sec, 0).UTC())
}

// Now returns the clock's current time.
func (f *Fixed) Now() time.Time {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.current
}

// Set moves the clock to t.
func (f *Fixed) Set(t time.Time) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.current = t
}

// Advance moves the clock forward by d.
func (f *Fixed) Advance(d time.Duration) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.current = f.current.Add(d)
}

// Unix returns the POSIX second of c's current time.
func Unix(c Clock) int64 {
	if c == nil {
		c = Real{}
	}
	return c.Now().Unix()
}

// TodayUTC returns the UTC calendar date of c's current time.
func TodayUTC(c Clock) date.Date {
	if c == nil {
		c = Real{}
	}
	return date.NewAt(c.Now().UTC())
}
