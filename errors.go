package cache

import "github.com/krisalay/lfu-cache/engine"

// ErrInvalidCapacity is returned by New when capacity <= 0.
var ErrInvalidCapacity = engine.ErrInvalidCapacity
