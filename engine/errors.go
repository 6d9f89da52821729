package engine

import "errors"

// ErrInvalidCapacity is returned when an engine is created with a capacity <= 0.
var ErrInvalidCapacity = errors.New("capacity cannot be less than or equal to zero")
