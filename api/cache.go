package api

/*
Cache defines the PUBLIC API of the LFU cache.
This is a contract that guarantees certain behaviors, without exposing internals
(frequency buckets, handles, minimum frequency tracking).

None of the methods are safe for concurrent use. Callers that share one cache
between goroutines must serialize every call themselves.
*/
type Cache[K comparable, V any] interface {

	/*
		Get retrieves the value associated with the given key.

		BEHAVIOR:
		-------------------
		1. If the key exists in cache:
		   - Its frequency goes up by one
		   - It becomes the most recently used key at that frequency
		   - The stored value is returned

		2. If the key does NOT exist:
		   - The zero value of V is stored under the key, exactly like Put would
		     (this may evict another key)
		   - The zero value is returned

		A miss is never an error. Use Peek to tell a miss apart from a stored zero value.
	*/
	Get(key K) V

	/*
		Put stores a key-value pair in the cache.

		BEHAVIOR:
		---------
		- Existing key: counts as a use of the key, then replaces the value
		- New key on a full cache: evicts the least frequently used key first
		  (ties go to the least recently used one)
		- New key: starts with frequency 1
	*/
	Put(key K, value V)

	// Contains reports whether key is cached. It does not count as a use.
	Contains(key K) bool

	// Peek returns the stored value without counting it as a use and without inserting anything.
	Peek(key K) (V, bool)

	// Frequency returns how many times key has been used since it was inserted.
	Frequency(key K) (int, bool)

	// Size returns how many keys are cached.
	Size() int

	// Empty reports whether Size() == 0.
	Empty() bool

	// Capacity returns the fixed maximum number of keys.
	Capacity() int
}
