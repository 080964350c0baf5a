package cachemanager

import (
	"context"
	"time"
)

// ReadThrough answers from a Store and falls back to load on a miss, caching
// whatever load returns without error.
type ReadThrough[V any, I any] struct {
	store  Store[V]
	load   func(ctx context.Context, in I) (V, error)
	bypass bool
}

// NewReadThrough wraps store around load. With bypass set every call goes to
// load.
func NewReadThrough[V any, I any](store Store[V], load func(ctx context.Context, in I) (V, error), bypass bool) *ReadThrough[V, I] {
	return &ReadThrough[V, I]{store: store, load: load, bypass: bypass}
}

// Get returns the cached value for key or loads it from in.
func (r *ReadThrough[V, I]) Get(ctx context.Context, key string, in I, ttl time.Duration) (V, error) {
	if r.bypass {
		return r.load(ctx, in)
	}
	if v, ok := r.store.Get(ctx, key); ok {
		return v, nil
	}
	v, err := r.load(ctx, in)
	if err != nil {
		return v, err
	}
	r.store.Set(ctx, key, v, ttl)
	return v, nil
}
