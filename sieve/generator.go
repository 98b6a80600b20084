package sieve

import "iter"

// Generator yields the same values as Array without materializing them.
// The whole vector is sieved before the first value is yielded; nothing is
// allocated until the sequence is ranged over.
func Generator(limit int) iter.Seq[int] {
	mustNonNegative(limit)
	return once(func(yield func(int) bool) {
		if limit < 2 {
			return
		}
		isPrime := primalityVector(limit)
		for i := 2; i <= limit; i++ {
			if isPrime[i] && !yield(i) {
				return
			}
		}
	})
}
