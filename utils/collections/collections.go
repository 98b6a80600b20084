// Package collections holds the small generic containers shared by the
// sieves and the benchmark runner. None of them are safe for concurrent use.
package collections

import "errors"

var (
	ErrValueExisted    = errors.New("value existed")
	ErrValueNotExisted = errors.New("value not existed")
)

type Set[V any] interface {
	Contains(v V) bool
	// Add returns ErrValueExisted if v is already a member.
	Add(v V) error
	Remove(v V) error
	Size() int
	Entries() []V
}

type Map[K any, V any] interface {
	Contains(k K) bool
	// Put fails with ErrValueExisted on an existing key unless forced.
	Put(k K, v V, forced bool) error
	Get(k K) (V, error)
	Delete(k K) error
	Size() int
	Keys() []K
	Values() []V
}
