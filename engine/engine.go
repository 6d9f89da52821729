package engine

import (
	"github.com/krisalay/lfu-cache/eviction"
	"github.com/krisalay/lfu-cache/types"
)

/*
Engine is the "brain" of the cache system.
It decides which key leaves the cache when it is full:
the key with the LOWEST frequency, and among those the LEAST recently touched one.

It owns two structures:
- entries: key -> value, frequency and the key's handle in its bucket
- buckets: frequency -> list of keys at that frequency, most recently touched first

plus minFreq, the smallest frequency that currently has a non-empty bucket.
Every operation is O(1).

It does NOT:
- Lock (one goroutine at a time)
- Record metrics or log
- Validate anything besides capacity
*/
type Engine[K comparable, V any] struct {

	// OnEvict, if set, is called after an entry has been evicted to make room for a new key.
	OnEvict func(Victim[K, V])

	capacity int

	// minFreq is meaningless while the engine is empty.
	minFreq int

	entries map[K]*types.Entry[V]

	// buckets only holds non-empty lists. A list is dropped as soon as its last key leaves.
	buckets map[int]*eviction.List[K]

	arena *eviction.Arena[K]
}

// Victim describes an entry removed by eviction.
type Victim[K comparable, V any] struct {
	Key       K
	Value     V
	Frequency int
}

/*
New creates an empty Engine that holds at most capacity keys.
It returns ErrInvalidCapacity if capacity <= 0.
*/
func New[K comparable, V any](capacity int) (*Engine[K, V], error) {
	if capacity <= 0 {
		return nil, ErrInvalidCapacity
	}
	return &Engine[K, V]{
		capacity: capacity,
		entries:  make(map[K]*types.Entry[V], capacity),
		buckets:  make(map[int]*eviction.List[K]),
		arena:    eviction.NewArena[K](capacity),
	}, nil
}

/*
Get returns the value stored for key.

BEHAVIOR:
---------
1. If the key exists:
   - Promote it to the next frequency
   - Return the stored value and true

2. If the key does NOT exist:
   - Insert the zero value of V exactly as Put(key, zero) would,
     evicting if the engine is full
   - Return the zero value and false
*/
func (e *Engine[K, V]) Get(key K) (V, bool) {
	if ent, ok := e.entries[key]; ok {
		e.touch(key, ent)
		return ent.Value, true
	}

	var zero V
	e.Put(key, zero)
	return zero, false
}

/*
Put stores value under key.

BEHAVIOR:
---------
- Existing key: promote it, then overwrite the value. Size does not change.
- New key on a full engine: evict one entry first.
- New key: frequency 1, front of bucket 1, minFreq reset to 1.
*/
func (e *Engine[K, V]) Put(key K, value V) {
	if ent, ok := e.entries[key]; ok {
		e.touch(key, ent)
		ent.Value = value
		return
	}

	if len(e.entries) >= e.capacity {
		v := e.evict()
		if e.OnEvict != nil {
			e.OnEvict(v)
		}
	}

	h := e.arena.Alloc(key)
	e.bucket(1).PushFront(h)
	e.entries[key] = &types.Entry[V]{Value: value, Frequency: 1, Handle: h}

	// A fresh key always has the smallest frequency possible
	e.minFreq = 1
}

// Lookup returns the entry for key without touching it.
// The entry must not be modified by the caller.
func (e *Engine[K, V]) Lookup(key K) (*types.Entry[V], bool) {
	ent, ok := e.entries[key]
	return ent, ok
}

func (e *Engine[K, V]) Contains(key K) bool {
	_, ok := e.entries[key]
	return ok
}

func (e *Engine[K, V]) Len() int { return len(e.entries) }

func (e *Engine[K, V]) Capacity() int { return e.capacity }

// MinFrequency returns the frequency of the next eviction candidate, or 0 when empty.
func (e *Engine[K, V]) MinFrequency() int {
	if len(e.entries) == 0 {
		return 0
	}
	return e.minFreq
}

/*
touch promotes key from frequency f to f+1.

1. Remove the node from bucket f (O(1), we hold its handle)
2. Push the SAME node to the front of bucket f+1
3. If bucket f became empty and it was the minimum, the minimum moves to f+1.
   It cannot move further: the key we just promoted lives at f+1.
*/
func (e *Engine[K, V]) touch(key K, ent *types.Entry[V]) {
	f := ent.Frequency
	old, ok := e.buckets[f]
	if !ok {
		panic("engine: touch on key missing from its frequency bucket")
	}

	old.Remove(ent.Handle)
	if old.Empty() {
		delete(e.buckets, f)
		if f == e.minFreq {
			e.minFreq++
		}
	}

	ent.Frequency = f + 1
	e.bucket(f + 1).PushFront(ent.Handle)
}

/*
evict removes the least recently touched key of bucket minFreq.

minFreq is left alone: evict only runs right before a new key is inserted,
and that insertion resets minFreq to 1.
*/
func (e *Engine[K, V]) evict() Victim[K, V] {
	b, ok := e.buckets[e.minFreq]
	if !ok {
		panic("engine: evict on empty cache")
	}
	h, ok := b.Back()
	if !ok {
		panic("engine: empty bucket at minimum frequency")
	}

	key := e.arena.Key(h)
	ent := e.entries[key]

	b.Remove(h)
	if b.Empty() {
		delete(e.buckets, e.minFreq)
	}
	e.arena.Free(h)
	delete(e.entries, key)

	return Victim[K, V]{Key: key, Value: ent.Value, Frequency: ent.Frequency}
}

// bucket returns the list for freq, creating it on first use.
func (e *Engine[K, V]) bucket(freq int) *eviction.List[K] {
	b, ok := e.buckets[freq]
	if !ok {
		b = eviction.NewList(e.arena)
		e.buckets[freq] = b
	}
	return b
}
