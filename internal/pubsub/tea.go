package pubsub

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
)

// WaitCmd blocks until the next event on ch and returns it as a tea.Msg. It
// returns nil once ctx ends or ch closes.
func WaitCmd[T any](ctx context.Context, ch <-chan Event[T]) tea.Cmd {
	return func() tea.Msg {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-ch:
			if !ok {
				return nil
			}
			return ev
		}
	}
}

// Listener holds one subscription for the lifetime of a Bubble Tea program.
// Return Next from Update after each event to keep receiving.
type Listener[T any] struct {
	ctx context.Context
	ch  <-chan Event[T]
}

// Listen subscribes to b until ctx ends.
func Listen[T any](ctx context.Context, b *Broker[T]) *Listener[T] {
	return &Listener[T]{ctx: ctx, ch: b.Subscribe(ctx)}
}

// Next waits for the following event.
func (l *Listener[T]) Next() tea.Cmd {
	return WaitCmd(l.ctx, l.ch)
}
