package chainmap

import "slices"

type entry[V any] struct {
	key   string
	value V
}

// bucket is the chain of entries sharing one index.
// It's always a slice, a single entry is just a chain of length 1.
type bucket[V any] []entry[V]

// Returns the position of the key within the chain, or -1.
func (b bucket[V]) find(key string) int {
	for i := range b {
		if b[i].key == key {
			return i
		}
	}

	return -1
}

// Removes the entry at i, keeping the rest of the chain in insertion order.
func (b bucket[V]) remove(i int) bucket[V] {
	b = slices.Delete(b, i, i+1)
	if len(b) == 0 {
		// Let an emptied chain release its backing array.
		return nil
	}

	return b
}
