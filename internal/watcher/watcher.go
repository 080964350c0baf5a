// Package watcher reports, with debouncing, when the bookmark database is
// written by another process.
package watcher

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/zjrosen/stampdelta/internal/log"
	"github.com/zjrosen/stampdelta/internal/pubsub"
)

// DefaultDebounce is how long the file must stay quiet before a change is
// reported.
const DefaultDebounce = 300 * time.Millisecond

// Change is published once per burst of writes.
type Change struct {
	Path string
}

// Watcher watches one sqlite file plus its -wal and -journal siblings.
type Watcher struct {
	fs       *fsnotify.Watcher
	path     string
	names    map[string]bool
	debounce time.Duration
	events   *pubsub.Broker[Change]
}

// New prepares a watcher for the database at path. A zero debounce uses
// DefaultDebounce.
func New(path string, debounce time.Duration) (*Watcher, error) {
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	fs, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating fsnotify watcher: %w", err)
	}
	base := filepath.Base(path)
	return &Watcher{
		fs:       fs,
		path:     path,
		names:    map[string]bool{base: true, base + "-wal": true, base + "-journal": true},
		debounce: debounce,
		events:   pubsub.NewBroker[Change](),
	}, nil
}

// Events is the broker Change events are published on.
func (w *Watcher) Events() *pubsub.Broker[Change] {
	return w.events
}

// Run watches until ctx ends, then closes the watcher and its broker.
func (w *Watcher) Run(ctx context.Context) error {
	dir := filepath.Dir(w.path)
	if err := w.fs.Add(dir); err != nil {
		_ = w.fs.Close()
		w.events.Close()
		return fmt.Errorf("watching %s: %w", dir, err)
	}
	log.Debug(log.CatWatcher, "watching", "dir", dir, "file", filepath.Base(w.path))

	go w.loop(ctx)
	return nil
}

func (w *Watcher) loop(ctx context.Context) {
	defer func() {
		_ = w.fs.Close()
		w.events.Close()
	}()

	quiet := time.NewTimer(w.debounce)
	if !quiet.Stop() {
		<-quiet.C
	}
	armed := false

	for {
		select {
		case <-ctx.Done():
			quiet.Stop()
			return

		case ev, ok := <-w.fs.Events:
			if !ok {
				return
			}
			if !w.relevant(ev) {
				continue
			}
			if armed && !quiet.Stop() {
				select {
				case <-quiet.C:
				default:
				}
			}
			quiet.Reset(w.debounce)
			armed = true

		case <-quiet.C:
			armed = false
			log.Debug(log.CatWatcher, "database changed", "path", w.path)
			w.events.Publish(pubsub.Changed, Change{Path: w.path})

		case err, ok := <-w.fs.Errors:
			if !ok {
				return
			}
			log.ErrorErr(log.CatWatcher, "fsnotify error", err)
		}
	}
}

func (w *Watcher) relevant(ev fsnotify.Event) bool {
	if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
		return false
	}
	return w.names[filepath.Base(ev.Name)]
}
