package chainmap

import "github.com/cespare/xxhash/v2"

const (
	fnvOffset64 uint64 = 14695981039346656037
	fnvPrime64  uint64 = 1099511628211
)

// HashFunc computes the digest of a key. It must be deterministic.
type HashFunc func(key string) uint64

// FNV1a is the default digest: 64-bit FNV-1a over the raw bytes of the key.
// Multiplication wraps modulo 2^64.
func FNV1a(key string) uint64 {
	h := fnvOffset64
	for i := 0; i < len(key); i++ {
		h ^= uint64(key[i])
		h *= fnvPrime64
	}

	return h
}

// XXHash is an alternative digest backed by xxHash64.
func XXHash(key string) uint64 {
	return xxhash.Sum64String(key)
}

// BucketIndex reduces a digest to a bucket index within the given capacity.
// Any positive capacity is valid, it doesn't have to be a power of 2.
func BucketIndex(digest uint64, capacity int) int {
	if capacity <= 0 {
		panic(ErrInvalidCapacity)
	}

	return int(digest % uint64(capacity))
}
