// This file implements the node storage behind every frequency bucket.

package eviction

// Handle addresses one node inside an Arena. It stays valid until the node is freed,
// no matter how many other nodes are allocated or moved between lists.
type Handle int32

// Nil is the "no node" handle. Real handles start at 1.
const Nil Handle = 0

// node represents ONE key inside a recency list.
type node[K comparable] struct {
	// key is the cache key this node represents
	key K

	// prev points to the node touched just after this one (closer to the front)
	prev Handle

	// next points to the node touched just before this one (closer to the back)
	next Handle
}

/*
Arena owns every node used by the frequency index.

Instead of linking nodes with pointers we keep them in one slice
and link them with integer handles:
- a node never moves, so a handle cached in an entry never goes stale
- freed slots are kept on a free list and reused before the slice grows
- lists only store head/tail handles, the arena does the rest
*/
type Arena[K comparable] struct {
	// nodes[0] is a permanent placeholder so that Nil never addresses a live node
	nodes []node[K]

	// free holds handles of released nodes, ready for reuse
	free []Handle
}

// NewArena creates an arena with room for size nodes before it has to grow.
func NewArena[K comparable](size int) *Arena[K] {
	if size < 0 {
		size = 0
	}
	a := &Arena[K]{nodes: make([]node[K], 1, size+1)}
	return a
}

// Alloc returns a detached node holding key.
func (a *Arena[K]) Alloc(key K) Handle {
	if n := len(a.free); n > 0 {
		h := a.free[n-1]
		a.free = a.free[:n-1]
		a.nodes[h] = node[K]{key: key}
		return h
	}
	a.nodes = append(a.nodes, node[K]{key: key})
	return Handle(len(a.nodes) - 1)
}

// Free releases a detached node. The key is cleared so the arena does not keep it alive.
func (a *Arena[K]) Free(h Handle) {
	a.nodes[h] = node[K]{}
	a.free = append(a.free, h)
}

// Key returns the key stored at h.
func (a *Arena[K]) Key(h Handle) K {
	return a.nodes[h].key
}

// Live returns how many nodes are currently allocated.
func (a *Arena[K]) Live() int {
	return len(a.nodes) - 1 - len(a.free)
}
