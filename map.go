package chainmap

import (
	"fmt"
	"strings"
)

// Map is a string-keyed hash table with separate chaining.
// A key's digest (FNV-1a by default) modulo the number of buckets selects the bucket,
// colliding keys share the bucket's chain. The table doubles once the load
// factor goes over LoadFactor, rehashing every entry.
//
// Map is not safe for concurrent use.
type Map[V any] struct {
	table[V]
}

// Returns a new map with initialSize buckets.
// A non-positive initialSize falls back to DefaultInitialSize.
func New[V any](initialSize int, opts ...Option[V]) *Map[V] {
	var m Map[V]
	m.init(initialSize, opts...)

	return &m
}

// Returns the value stored under the key and whether it was found.
func (m *Map[V]) Get(key string) (V, bool) {
	return m.get(key)
}

// Same as Get, but reports a missing key as an error wrapping ErrNotFound.
func (m *Map[V]) Lookup(key string) (V, error) {
	v, ok := m.get(key)
	if !ok {
		return v, fmt.Errorf("%w: %q", ErrNotFound, key)
	}

	return v, nil
}

// Sets the value of the key.
// Returns the previous value and true if the key was already present.
func (m *Map[V]) Set(key string, value V) (V, bool) {
	return m.set(key, value)
}

// Deletes the key, returning its value and true if it was present.
func (m *Map[V]) Delete(key string) (V, bool) {
	return m.delete(key)
}

// Number of live entries.
func (m *Map[V]) Size() int {
	return m.size
}

// Current number of buckets.
func (m *Map[V]) Capacity() int {
	return m.capacity()
}

// String renders the entries as {k1: v1, k2: v2} in bucket order.
// The order changes when the map grows.
func (m *Map[V]) String() string {
	var sb strings.Builder

	sb.WriteByte('{')
	first := true
	for _, b := range m.buckets {
		for _, e := range b {
			if !first {
				sb.WriteString(", ")
			}
			first = false

			fmt.Fprintf(&sb, "%s: %v", e.key, e.value)
		}
	}
	sb.WriteByte('}')

	return sb.String()
}
