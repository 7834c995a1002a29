package cache

import "errors"

var (
	// ErrNotFound for cache fetches that return a nil value.
	ErrNotFound = errors.New("not found in cache")
	// ErrCacheCannotBeNil is returned when the underlying lru cache could not be built.
	ErrCacheCannotBeNil = errors.New("cache cannot be nil")
)
