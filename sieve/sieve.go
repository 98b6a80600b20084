// Package sieve finds the primes up to a bound with three variants of the
// Sieve of Eratosthenes: a dense boolean array returned eagerly, the same
// array emitted lazily, and a set of eliminated composites grown on demand.
//
// The lazy variants return an iter.Seq that can be ranged over once. Breaking
// out of the loop early is always safe: all state is plain memory and is left
// to the garbage collector.
package sieve

import (
	"errors"
	"fmt"

	"github.com/tuannh982/prime-sieve/utils/math"
)

var ErrNegativeLimit = errors.New("negative limit")

func mustNonNegative(limit int) {
	if limit < 0 {
		panic(fmt.Errorf("%w: %d", ErrNegativeLimit, limit))
	}
}

// primalityVector returns flags for [0, limit] where flags[v] is true iff v
// is prime. The marking pass is complete when it returns.
func primalityVector(limit int) []bool {
	isPrime := make([]bool, limit+1)
	for i := 2; i <= limit; i++ {
		isPrime[i] = true
	}
	// candidates past isqrt(limit) start marking beyond limit
	bound := math.ISqrt(limit) + 1
	if bound > limit {
		bound = limit
	}
	for n := 2; n <= bound; n++ {
		if !isPrime[n] {
			continue
		}
		for m := n * n; m <= limit; m += n {
			isPrime[m] = false
		}
	}
	return isPrime
}

// once wraps seq so that only the first range over it produces values.
func once(seq func(yield func(int) bool)) func(yield func(int) bool) {
	used := false
	return func(yield func(int) bool) {
		if used {
			return
		}
		used = true
		seq(yield)
	}
}
