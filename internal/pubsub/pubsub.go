// Package pubsub fans typed events out to any number of subscribers.
package pubsub

import (
	"context"
	"sync"
	"time"
)

// Kind names what happened to a payload.
type Kind string

const (
	Changed Kind = "changed"
	Removed Kind = "removed"
	Logged  Kind = "logged"
)

// Event carries a payload and the time it was published.
type Event[T any] struct {
	Kind    Kind
	Payload T
	At      time.Time
}

// Publisher accepts events.
type Publisher[T any] interface {
	Publish(kind Kind, payload T)
}

const defaultBuffer = 32

// Broker delivers every published event to each live subscription. Slow
// subscribers miss events rather than block publishers.
type Broker[T any] struct {
	mu     sync.RWMutex
	subs   map[chan Event[T]]struct{}
	closed bool
	buffer int
}

// NewBroker returns a Broker whose subscriptions buffer a small number of
// events.
func NewBroker[T any]() *Broker[T] {
	return NewBrokerSize[T](defaultBuffer)
}

// NewBrokerSize returns a Broker whose subscriptions buffer size events.
func NewBrokerSize[T any](size int) *Broker[T] {
	return &Broker[T]{subs: make(map[chan Event[T]]struct{}), buffer: size}
}

// Subscribe returns a channel of events that closes when ctx ends or the
// broker closes.
func (b *Broker[T]) Subscribe(ctx context.Context) <-chan Event[T] {
	b.mu.Lock()
	defer b.mu.Unlock()

	ch := make(chan Event[T], b.buffer)
	if b.closed {
		close(ch)
		return ch
	}
	b.subs[ch] = struct{}{}

	go func() {
		<-ctx.Done()
		b.mu.Lock()
		defer b.mu.Unlock()
		if _, ok := b.subs[ch]; ok {
			delete(b.subs, ch)
			close(ch)
		}
	}()
	return ch
}

// Publish delivers an event to every subscriber that has room for it.
func (b *Broker[T]) Publish(kind Kind, payload T) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if b.closed {
		return
	}

	ev := Event[T]{Kind: kind, Payload: payload, At: time.Now()}
	for ch := range b.subs {
		select {
		case ch <- ev:
		default:
		}
	}
}

// Close closes every subscription. Later publishes are ignored.
func (b *Broker[T]) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return
	}
	b.closed = true
	for ch := range b.subs {
		delete(b.subs, ch)
		close(ch)
	}
}

// Subscribers returns the number of live subscriptions.
func (b *Broker[T]) Subscribers() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.subs)
}
