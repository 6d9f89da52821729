// This file implements the recency-ordered list used for one frequency bucket.

package eviction

/*
List is a doubly-linked list of arena nodes.

The front is the MOST recently touched key, the back is the LEAST recently touched key.
The list does not own its nodes: pushing and removing only rewires links,
allocation and release go through the Arena.
*/
type List[K comparable] struct {
	arena *Arena[K]

	// head points to the MOST recently touched key
	head Handle

	// tail points to the LEAST recently touched key
	tail Handle

	size int
}

// NewList creates an empty list over the given arena.
func NewList[K comparable](arena *Arena[K]) *List[K] {
	return &List[K]{arena: arena}
}

// PushFront adds a detached node to the front of the list. This marks it as "most recently used".
func (l *List[K]) PushFront(h Handle) {
	n := &l.arena.nodes[h]
	n.prev = Nil
	n.next = l.head
	if l.head != Nil {
		l.arena.nodes[l.head].prev = h
	}
	l.head = h

	// If the list was empty, head and tail are the same
	if l.tail == Nil {
		l.tail = h
	}
	l.size++
}

// Remove detaches a node that is currently in this list.
// It updates the neighbours' links and head/tail if needed.
func (l *List[K]) Remove(h Handle) {
	n := &l.arena.nodes[h]
	if n.prev != Nil {
		l.arena.nodes[n.prev].next = n.next
	} else {
		l.head = n.next
	}
	if n.next != Nil {
		l.arena.nodes[n.next].prev = n.prev
	} else {
		l.tail = n.prev
	}
	n.prev, n.next = Nil, Nil
	l.size--
}

// Front returns the most recently touched node.
func (l *List[K]) Front() (Handle, bool) {
	return l.head, l.head != Nil
}

// Back returns the least recently touched node.
func (l *List[K]) Back() (Handle, bool) {
	return l.tail, l.tail != Nil
}

// Next returns the node after h, moving towards the back.
func (l *List[K]) Next(h Handle) (Handle, bool) {
	n := l.arena.nodes[h].next
	return n, n != Nil
}

func (l *List[K]) Len() int { return l.size }

func (l *List[K]) Empty() bool { return l.size == 0 }
