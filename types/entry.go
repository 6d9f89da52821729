package types

import "github.com/krisalay/lfu-cache/eviction"

// Entry is what the key index stores for every cached key.
// It is mutated in place on every hit, never copied out.
type Entry[V any] struct {
	Value V

	// Frequency counts gets and puts since the key was inserted. Starts at 1.
	Frequency int

	// Handle is the key's node in the bucket for Frequency.
	Handle eviction.Handle
}
