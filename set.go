package chainmap

// Set is a set of strings on top of the same chained table as Map.
// It stores keys only and grows under the same load factor policy.
type Set struct {
	table[struct{}]
}

func NewSet(initialSize int, opts ...Option[struct{}]) *Set {
	var s Set
	s.init(initialSize, opts...)

	return &s
}

// Checks whether a key is in the set.
func (s *Set) Has(key string) bool {
	_, ok := s.get(key)
	return ok
}

// Puts a key in the set.
// Returns whether the key is new.
func (s *Set) Put(key string) bool {
	_, existed := s.set(key, struct{}{})
	return !existed
}

// Deletes a key from the set, reporting whether it was present.
func (s *Set) Delete(key string) bool {
	_, ok := s.delete(key)
	return ok
}

func (s *Set) Size() int {
	return s.size
}

func (s *Set) Capacity() int {
	return s.capacity()
}
