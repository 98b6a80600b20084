package math

import (
	stdmath "math"

	"golang.org/x/exp/constraints"
)

// ISqrt returns floor(sqrt(n)) for n >= 0.
func ISqrt[T constraints.Integer](n T) T {
	if n < 2 {
		return n
	}
	r := T(stdmath.Sqrt(float64(n)))
	// float64 loses precision above 2^53
	for r > 0 && r > n/r {
		r--
	}
	for r+1 <= n/(r+1) {
		r++
	}
	return r
}

// Round rounds v half away from zero to the given number of decimals.
func Round[T constraints.Float](v T, digits int) T {
	p := stdmath.Pow(10, float64(digits))
	return T(stdmath.Round(float64(v)*p) / p)
}
