package sieve

// Array returns the primes in [0, limit] in ascending order.
func Array(limit int) []int {
	mustNonNegative(limit)
	primes := make([]int, 0)
	if limit < 2 {
		return primes
	}
	for i, prime := range primalityVector(limit) {
		if prime {
			primes = append(primes, i)
		}
	}
	return primes
}
