package sieve

import (
	"iter"

	"github.com/tuannh982/prime-sieve/utils/collections"
)

// Set yields the primes in [2, limit] while growing a set of eliminated
// composites. A candidate is yielded before its multiples are eliminated, so
// the consumer sees each prime as soon as the scan reaches it.
//
// This is much slower and hungrier than the array variants for large limits;
// it is kept as is for comparison.
func Set(limit int) iter.Seq[int] {
	mustNonNegative(limit)
	return once(func(yield func(int) bool) {
		eliminated := collections.NewValueSet[int]()
		for i := 2; i <= limit; i++ {
			if eliminated.Contains(i) {
				continue
			}
			if !yield(i) {
				return
			}
			// i*i > limit for every prime past isqrt(limit), so the inner
			// loop is empty there; the guard also keeps i*i from overflowing.
			if i > limit/i {
				continue
			}
			for m := i * i; m <= limit; m += i {
				// ErrValueExisted: already eliminated by a smaller prime
				_ = eliminated.Add(m)
			}
		}
	})
}
