package chainmap

const (
	// Maximum ratio of entries to buckets. Crossing it on insert doubles the table.
	LoadFactor = 0.75

	loadFactorNum = 3
	loadFactorDen = 4
)

type table[V any] struct {
	buckets []bucket[V]
	size    int
	resizes int

	hashFunc HashFunc

	emptyV V
}

type Option[V any] func(t *table[V])

// Override default hash function.
func WithHashFunc[V any](f HashFunc) Option[V] {
	return func(t *table[V]) {
		t.hashFunc = f
	}
}

func (t *table[V]) init(initialSize int, opts ...Option[V]) {
	t.buckets = make([]bucket[V], normalizeCapacity(initialSize))
	t.size = 0
	t.resizes = 0

	for _, opt := range opts {
		opt(t)
	}

	if t.hashFunc == nil {
		t.hashFunc = FNV1a
	}
}

func (t *table[V]) capacity() int {
	return len(t.buckets)
}

func (t *table[V]) index(key string) int {
	return BucketIndex(t.hashFunc(key), len(t.buckets))
}

func (t *table[V]) get(key string) (V, bool) {
	b := t.buckets[t.index(key)]
	if i := b.find(key); i >= 0 {
		return b[i].value, true
	}

	return t.emptyV, false
}

// Inserts or overwrites the key.
// Returns the previous value and whether the key was already present.
func (t *table[V]) set(key string, value V) (V, bool) {
	idx := t.index(key)
	b := t.buckets[idx]

	if i := b.find(key); i >= 0 {
		prev := b[i].value
		b[i].value = value

		return prev, true
	}

	t.buckets[idx] = append(b, entry[V]{key: key, value: value})
	t.size++

	if overloaded(t.size, len(t.buckets)) {
		t.resize(nextCapacity(len(t.buckets)))
	}

	return t.emptyV, false
}

func (t *table[V]) delete(key string) (V, bool) {
	idx := t.index(key)
	b := t.buckets[idx]

	i := b.find(key)
	if i < 0 {
		return t.emptyV, false
	}

	prev := b[i].value
	t.buckets[idx] = b.remove(i)
	t.size--

	return prev, true
}

// Rebuilds the table with the given number of buckets, re-placing every entry.
func (t *table[V]) resize(capacity int) {
	if capacity <= 0 {
		panic(ErrInvalidCapacity)
	}

	buckets := make([]bucket[V], capacity)
	for _, b := range t.buckets {
		for _, e := range b {
			idx := BucketIndex(t.hashFunc(e.key), capacity)
			buckets[idx] = append(buckets[idx], e)
		}
	}

	t.buckets = buckets
	t.resizes++
}

// Drops all entries, retaining the current capacity.
func (t *table[V]) Reset() {
	clear(t.buckets)
	t.size = 0
}

func (t *table[V]) Stats() Stats {
	s := Stats{
		Size:     t.size,
		Capacity: len(t.buckets),
		Resizes:  t.resizes,
	}

	for _, b := range t.buckets {
		switch n := len(b); {
		case n == 0:
			s.EmptyBuckets++
		case n > 1:
			s.CollidingBuckets++
		}

		s.LongestChain = max(s.LongestChain, len(b))
	}

	s.LoadFactor = float64(s.Size) / float64(s.Capacity)

	return s
}
