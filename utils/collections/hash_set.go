package collections

type hashSet[R comparable, V any] struct {
	entries  map[R]V
	hashFunc HashSetHashFunc[R, V]
}

type HashSetHashFunc[R comparable, V any] func(V) R

// NewHashSet returns a set keyed by f(v). Two values with the same key are
// the same member.
func NewHashSet[R comparable, V any](f HashSetHashFunc[R, V]) Set[V] {
	return &hashSet[R, V]{
		entries:  make(map[R]V),
		hashFunc: f,
	}
}

func (s *hashSet[R, V]) Contains(v V) bool {
	_, ok := s.entries[s.hashFunc(v)]
	return ok
}

func (s *hashSet[R, V]) Add(v V) error {
	hash := s.hashFunc(v)
	if _, ok := s.entries[hash]; ok {
		return ErrValueExisted
	}
	s.entries[hash] = v
	return nil
}

func (s *hashSet[R, V]) Remove(v V) error {
	hash := s.hashFunc(v)
	if _, ok := s.entries[hash]; !ok {
		return ErrValueNotExisted
	}
	delete(s.entries, hash)
	return nil
}

func (s *hashSet[R, V]) Size() int {
	return len(s.entries)
}

func (s *hashSet[R, V]) Entries() []V {
	arr := make([]V, 0, s.Size())
	for _, v := range s.entries {
		arr = append(arr, v)
	}
	return arr
}

// valueSet is a Set whose members are their own keys, so it only stores
// presence.
type valueSet[V comparable] struct {
	entries map[V]struct{}
}

func NewValueSet[V comparable]() Set[V] {
	return &valueSet[V]{
		entries: make(map[V]struct{}),
	}
}

func (s *valueSet[V]) Contains(v V) bool {
	_, ok := s.entries[v]
	return ok
}

func (s *valueSet[V]) Add(v V) error {
	if _, ok := s.entries[v]; ok {
		return ErrValueExisted
	}
	s.entries[v] = struct{}{}
	return nil
}

func (s *valueSet[V]) Remove(v V) error {
	if _, ok := s.entries[v]; !ok {
		return ErrValueNotExisted
	}
	delete(s.entries, v)
	return nil
}

func (s *valueSet[V]) Size() int {
	return len(s.entries)
}

func (s *valueSet[V]) Entries() []V {
	arr := make([]V, 0, s.Size())
	for v := range s.entries {
		arr = append(arr, v)
	}
	return arr
}
