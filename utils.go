package chainmap

import "math"

// Initial number of buckets used when the requested size is not positive.
const DefaultInitialSize = 8

// Normalizes a requested initial size into a bucket count.
func normalizeCapacity(size int) int {
	if size <= 0 {
		return DefaultInitialSize
	}

	return size
}

// Returns the capacity the table grows into from the current one.
func nextCapacity(capacity int) int {
	if capacity > math.MaxInt/2 {
		panic(ErrInvalidCapacity)
	}

	return max(1, capacity*2)
}

// Reports whether size entries over capacity buckets exceed LoadFactor.
func overloaded(size, capacity int) bool {
	return size*loadFactorDen > capacity*loadFactorNum
}
