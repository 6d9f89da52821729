package cache

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/krisalay/lfu-cache/api"
	"github.com/krisalay/lfu-cache/engine"
	"github.com/krisalay/lfu-cache/types"
)

var _ api.Cache[string, int] = (*LFUCache[string, int])(nil)

/*
LFUCache is the main cache implementation.
This struct is the thin layer users talk to. It connects:
- the LFU engine (all ordering and eviction decisions)
- metrics
- logging

It is NOT safe for concurrent use.
*/
type LFUCache[K comparable, V any] struct {
	engine  *engine.Engine[K, V]
	metrics types.Metrics
	logger  *slog.Logger
}

/*
New creates an empty cache that holds at most capacity keys.
It returns ErrInvalidCapacity if capacity <= 0. No cache is created in that case.
*/
func New[K comparable, V any](capacity int, opts ...Option) (*LFUCache[K, V], error) {
	eng, err := engine.New[K, V](capacity)
	if err != nil {
		return nil, err
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	c := &LFUCache[K, V]{
		engine:  eng,
		metrics: o.metrics,
		logger:  o.logger,
	}
	eng.OnEvict = c.onEvict
	return c, nil
}

// MustNew is like New but panics on an invalid capacity.
func MustNew[K comparable, V any](capacity int, opts ...Option) *LFUCache[K, V] {
	c, err := New[K, V](capacity, opts...)
	if err != nil {
		panic(fmt.Sprintf("cache.MustNew: %v", err))
	}
	return c
}

/*
Get retrieves a value from the cache.
On a miss the zero value of V is inserted and returned.
*/
func (c *LFUCache[K, V]) Get(key K) V {
	v, hit := c.engine.Get(key)
	if hit {
		c.metrics.Hit()
	} else {
		c.metrics.Miss()
	}
	return v
}

// Put stores a value in the cache, evicting one key first if the cache is full and key is new.
func (c *LFUCache[K, V]) Put(key K, value V) {
	c.engine.Put(key, value)
}

func (c *LFUCache[K, V]) Contains(key K) bool {
	return c.engine.Contains(key)
}

// Peek returns the stored value without side effects.
func (c *LFUCache[K, V]) Peek(key K) (V, bool) {
	ent, ok := c.engine.Lookup(key)
	if !ok {
		var zero V
		return zero, false
	}
	return ent.Value, true
}

// Frequency returns the use count of key without side effects.
func (c *LFUCache[K, V]) Frequency(key K) (int, bool) {
	ent, ok := c.engine.Lookup(key)
	if !ok {
		return 0, false
	}
	return ent.Frequency, true
}

func (c *LFUCache[K, V]) Size() int { return c.engine.Len() }

func (c *LFUCache[K, V]) Empty() bool { return c.engine.Len() == 0 }

func (c *LFUCache[K, V]) Capacity() int { return c.engine.Capacity() }

func (c *LFUCache[K, V]) onEvict(v engine.Victim[K, V]) {
	c.metrics.Eviction()
	c.logger.LogAttrs(context.Background(), slog.LevelDebug, "cache eviction",
		slog.Any("key", v.Key),
		slog.Int("frequency", v.Frequency),
	)
}
