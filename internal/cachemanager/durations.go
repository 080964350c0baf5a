package cachemanager

import (
	"context"
	"fmt"

	"github.com/rickb777/date/v2"

	"github.com/zjrosen/stampdelta/internal/duration"
)

// Rendering is a cached FormatDuration result.
type Rendering struct {
	Text string
	OK   bool
}

type durationQuery struct {
	seconds int64
	mode    duration.Mode
	anchor  date.Date
}

// Durations memoises rendered durations. The anchor date is part of the key,
// so entries never go stale when the day changes.
type Durations struct {
	rt *ReadThrough[Rendering, durationQuery]
}

// NewDurations caches renderings in store. A nil store disables caching.
func NewDurations(store Store[Rendering]) *Durations {
	load := func(_ context.Context, q durationQuery) (Rendering, error) {
		text, ok := duration.FormatDuration(q.seconds, q.mode, q.anchor)
		return Rendering{Text: text, OK: ok}, nil
	}
	if store == nil {
		return &Durations{rt: NewReadThrough[Rendering, durationQuery](nil, load, true)}
	}
	return &Durations{rt: NewReadThrough(store, load, false)}
}

// NewDurationMemory returns a Durations backed by a fresh in-memory store.
func NewDurationMemory() *Durations {
	return NewDurations(NewMemory[Rendering]("durations", DefaultExpiration, CleanupInterval))
}

// Format is duration.FormatDuration through the cache.
func (d *Durations) Format(ctx context.Context, seconds int64, m duration.Mode, anchor date.Date) (string, bool) {
	key := fmt.Sprintf("%d|%d|%s", seconds, int(m), anchor)
	r, _ := d.rt.Get(ctx, key, durationQuery{seconds: seconds, mode: m, anchor: anchor}, 0)
	return r.Text, r.OK
}
