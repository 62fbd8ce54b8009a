package chainmap

import "errors"

var (
	// Returned by Lookup when a key is not present.
	ErrNotFound = errors.New("key not found")

	// Raised (as a panic value) when a table would end up with no buckets.
	// Not reachable through the public API.
	ErrInvalidCapacity = errors.New("invalid capacity")
)
