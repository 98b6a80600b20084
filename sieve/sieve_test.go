package sieve

import (
	"iter"
	"slices"
	"testing"

	"github.com/stretchr/testify/require"
)

func trialDivision(v int) bool {
	if v < 2 {
		return false
	}
	for d := 2; d*d <= v; d++ {
		if v%d == 0 {
			return false
		}
	}
	return true
}

func drain(seq iter.Seq[int]) []int {
	out := make([]int, 0)
	for v := range seq {
		out = append(out, v)
	}
	return out
}

func TestBoundaries(t *testing.T) {
	cases := []struct {
		limit    int
		expected []int
	}{
		{0, []int{}},
		{1, []int{}},
		{2, []int{2}},
		{3, []int{2, 3}},
		{4, []int{2, 3}},
		{10, []int{2, 3, 5, 7}},
		{30, []int{2, 3, 5, 7, 11, 13, 17, 19, 23, 29}},
	}
	for _, c := range cases {
		require.Equal(t, c.expected, Array(c.limit), "array limit=%d", c.limit)
		require.Equal(t, c.expected, drain(Generator(c.limit)), "generator limit=%d", c.limit)
		require.Equal(t, c.expected, drain(Set(c.limit)), "set limit=%d", c.limit)
	}
}

func TestVariantsAgree(t *testing.T) {
	for limit := 0; limit <= 2000; limit++ {
		expected := Array(limit)
		require.Equal(t, expected, drain(Generator(limit)), "limit=%d", limit)
		require.Equal(t, expected, drain(Set(limit)), "limit=%d", limit)
	}
}

func TestPrimalityAndCompleteness(t *testing.T) {
	const limit = 10000
	primes := Array(limit)
	require.True(t, slices.IsSorted(primes))
	for _, p := range primes {
		require.True(t, trialDivision(p), "%d reported prime", p)
	}
	for v := 0; v <= limit; v++ {
		_, found := slices.BinarySearch(primes, v)
		require.Equal(t, trialDivision(v), found, "v=%d", v)
	}
	require.Len(t, primes, 1229)
}

func TestPerfectSquareLimits(t *testing.T) {
	// the largest prime factor of the limit sits exactly at the outer bound
	for _, limit := range []int{4, 9, 25, 49, 121, 169, 289, 361, 529, 841, 961} {
		primes := Array(limit)
		for _, p := range primes {
			require.True(t, trialDivision(p), "limit=%d p=%d", limit, p)
		}
		require.Equal(t, primes, drain(Set(limit)))
	}
}

func TestIdempotent(t *testing.T) {
	require.Equal(t, Array(500), Array(500))
	require.Equal(t, drain(Generator(500)), drain(Generator(500)))
	require.Equal(t, drain(Set(500)), drain(Set(500)))
}

func TestSingleUse(t *testing.T) {
	for name, seq := range map[string]iter.Seq[int]{
		"generator": Generator(30),
		"set":       Set(30),
	} {
		require.Len(t, drain(seq), 10, name)
		require.Empty(t, drain(seq), name)
	}
}

func TestEarlyAbandon(t *testing.T) {
	for name, seq := range map[string]iter.Seq[int]{
		"generator": Generator(30),
		"set":       Set(30),
	} {
		next, stop := iter.Pull(seq)
		got := make([]int, 0, 3)
		for i := 0; i < 3; i++ {
			v, ok := next()
			require.True(t, ok, name)
			got = append(got, v)
		}
		stop()
		require.Equal(t, []int{2, 3, 5}, got, name)
		_, ok := next()
		require.False(t, ok, name)
	}

	got := make([]int, 0)
	for v := range Generator(30) {
		if len(got) == 3 {
			break
		}
		got = append(got, v)
	}
	require.Equal(t, []int{2, 3, 5}, got)
}

func TestNegativeLimit(t *testing.T) {
	require.PanicsWithError(t, "negative limit: -1", func() { Array(-1) })
	require.PanicsWithError(t, "negative limit: -5", func() { Generator(-5) })
	require.PanicsWithError(t, "negative limit: -2", func() { Set(-2) })
}

func TestLargeLimitCount(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping in short mode")
	}
	const limit = 1000000
	require.Len(t, Array(limit), 78498)
	count := 0
	for range Generator(limit) {
		count++
	}
	require.Equal(t, 78498, count)
}
