package types

// This file defines how the cache reports what it is doing.

/*
Metrics is an interface that defines what the cache wants to measure.
Each method represents an event in the cache lifecycle. The cache will call these methods whenever something happens.

Calls happen on the caller's goroutine, inside Get and Put.
Implementations shared between several caches must do their own locking.
*/
type Metrics interface {

	// Hit is called when Get finds the key in the cache.
	Hit()

	// Miss is called when Get does NOT find the key and materializes a zero value for it.
	Miss()

	// Eviction is called when a key is removed because the cache is full and needs space.
	Eviction()
}

/*
NoopMetrics is a "do nothing" implementation of Metrics.

It is the default, so the cache never has to check
whether a Metrics implementation was configured.
*/
type NoopMetrics struct{}

func (NoopMetrics) Hit()      {}
func (NoopMetrics) Miss()     {}
func (NoopMetrics) Eviction() {}
