// Package cachemanager memoises computed values in process memory.
package cachemanager

import (
	"context"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"github.com/zjrosen/stampdelta/internal/log"
)

const (
	DefaultExpiration = 30 * time.Minute
	CleanupInterval   = time.Hour
)

// Store is a keyed cache of V.
type Store[V any] interface {
	Get(ctx context.Context, key string) (V, bool)
	Set(ctx context.Context, key string, value V, ttl time.Duration)
	Delete(ctx context.Context, keys ...string)
	Flush(ctx context.Context)
	Len() int
}

// Memory is a Store backed by go-cache.
type Memory[V any] struct {
	name  string
	cache *gocache.Cache
}

// NewMemory returns an empty Memory store. The name tags its log lines.
func NewMemory[V any](name string, expiration, cleanup time.Duration) *Memory[V] {
	return &Memory[V]{name: name, cache: gocache.New(expiration, cleanup)}
}

func (m *Memory[V]) Get(_ context.Context, key string) (V, bool) {
	var zero V
	raw, ok := m.cache.Get(key)
	if !ok {
		return zero, false
	}
	v, ok := raw.(V)
	if !ok {
		log.Error(log.CatCache, "cached value has unexpected type", "cache", m.name, "key", key)
		return zero, false
	}
	return v, true
}

// Set stores value for ttl. gocache.DefaultExpiration uses the store's default.
func (m *Memory[V]) Set(_ context.Context, key string, value V, ttl time.Duration) {
	m.cache.Set(key, value, ttl)
}

func (m *Memory[V]) Delete(_ context.Context, keys ...string) {
	for _, k := range keys {
		m.cache.Delete(k)
	}
}

func (m *Memory[V]) Flush(_ context.Context) {
	m.cache.Flush()
	log.Debug(log.CatCache, "flushed", "cache", m.name)
}

func (m *Memory[V]) Len() int {
	return m.cache.ItemCount()
}
