package collections

// linkedHashMap remembers the order in which keys were first put. Keys and
// Values walk that order; overwriting a key keeps its position.
type linkedHashMap[K comparable, V any] struct {
	entries map[K]V
	order   []K
}

func NewLinkedHashMap[K comparable, V any]() Map[K, V] {
	return &linkedHashMap[K, V]{
		entries: make(map[K]V),
		order:   make([]K, 0),
	}
}

func (m *linkedHashMap[K, V]) Contains(k K) bool {
	_, ok := m.entries[k]
	return ok
}

func (m *linkedHashMap[K, V]) Put(k K, v V, forced bool) error {
	if m.Contains(k) {
		if !forced {
			return ErrValueExisted
		}
		m.entries[k] = v
		return nil
	}
	m.entries[k] = v
	m.order = append(m.order, k)
	return nil
}

func (m *linkedHashMap[K, V]) Get(k K) (v V, err error) {
	v, ok := m.entries[k]
	if !ok {
		return v, ErrValueNotExisted
	}
	return v, nil
}

func (m *linkedHashMap[K, V]) Delete(k K) error {
	if !m.Contains(k) {
		return ErrValueNotExisted
	}
	delete(m.entries, k)
	for i, key := range m.order {
		if key == k {
			m.order = append(m.order[:i], m.order[i+1:]...)
			break
		}
	}
	return nil
}

func (m *linkedHashMap[K, V]) Size() int {
	return len(m.entries)
}

func (m *linkedHashMap[K, V]) Keys() []K {
	arr := make([]K, len(m.order))
	copy(arr, m.order)
	return arr
}

func (m *linkedHashMap[K, V]) Values() []V {
	arr := make([]V, 0, m.Size())
	for _, k := range m.order {
		arr = append(arr, m.entries[k])
	}
	return arr
}
