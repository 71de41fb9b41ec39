package utils

import "golang.org/x/exp/slices"

// NextPrime - Returns the smallest entry in the ascending primes table that is equal to or larger than n.
// If n is larger than every entry, the last (largest) entry is returned.
func NextPrime(primes []uint64, n uint64) uint64 {
	pos, _ := slices.BinarySearch(primes, n)
	if pos == len(primes) {
		return primes[len(primes)-1]
	}

	return primes[pos]
}

// IsPermutation - Returns true if b is a reordering of a, given the element equality function eq.
// Leading elements already in the same order are skipped before the quadratic counting pass.
func IsPermutation[E any](a, b []E, eq func(x, y E) bool) bool {
	if len(a) != len(b) {
		return false
	}

	start := 0
	for start < len(a) && eq(a[start], b[start]) {
		start++
	}
	a, b = a[start:], b[start:]

	for i := range a {
		// Count each distinct value only once, at its first occurrence
		seen := false
		for j := 0; j < i; j++ {
			if eq(a[j], a[i]) {
				seen = true
				break
			}
		}
		if seen {
			continue
		}

		if count(a, a[i], eq) != count(b, a[i], eq) {
			return false
		}
	}

	return true
}

// count - Returns how many elements of s are equal to v
func count[E any](s []E, v E, eq func(x, y E) bool) (n int) {
	for _, e := range s {
		if eq(e, v) {
			n++
		}
	}

	return
}
