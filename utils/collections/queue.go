package collections

import (
	"fmt"
)

type Queue[V any] interface {
	Push(V)
	Pop() V
	Peek() V
	Size() int
}

// queue is a growable ring buffer. Popped slots are zeroed so the queue
// does not pin values it no longer holds.
type queue[V any] struct {
	entries []V
	head    int
	size    int
}

func NewQueue[V any]() Queue[V] {
	return &queue[V]{
		entries: make([]V, 4),
	}
}

func (s *queue[V]) Push(v V) {
	if s.size == len(s.entries) {
		s.grow()
	}
	s.entries[(s.head+s.size)%len(s.entries)] = v
	s.size++
}

func (s *queue[V]) grow() {
	entries := make([]V, 2*len(s.entries))
	for i := 0; i < s.size; i++ {
		entries[i] = s.entries[(s.head+i)%len(s.entries)]
	}
	s.entries = entries
	s.head = 0
}

func (s *queue[V]) Pop() (v V) {
	if s.size == 0 {
		return v
	}
	ret := s.entries[s.head]
	s.entries[s.head] = v
	s.head = (s.head + 1) % len(s.entries)
	s.size--
	return ret
}

func (s *queue[V]) Peek() (v V) {
	if s.size == 0 {
		return v
	}
	return s.entries[s.head]
}

func (s *queue[V]) Size() int {
	return s.size
}

func (s queue[V]) String() string {
	arr := make([]V, 0, s.size)
	for i := 0; i < s.size; i++ {
		arr = append(arr, s.entries[(s.head+i)%len(s.entries)])
	}
	return fmt.Sprint(arr)
}
