package hashindex

import (
	"fmt"
	"math"

	"github.com/gostonefire/hashindex/internal/conf"
	"github.com/gostonefire/hashindex/internal/utils"
)

// GrowthPolicy - Decides which bucket counts an index may use and when a rehash that does not grow is worth doing.
//   - Primes is the ascending table of allowed bucket counts, the last entry is the hard ceiling
//   - ShrinkLoadMargin is how far below max load factor the load factor must end up for a non growing rehash
//   - ShrinkSizeRatio is the fraction of the current bucket count the new count must be below for a non growing rehash
type GrowthPolicy struct {
	Primes           []uint64
	ShrinkLoadMargin float64
	ShrinkSizeRatio  float64
}

// DefaultGrowthPolicy - Returns the policy used when none is configured: the built-in prime table (99 entries on
// 64-bit platforms, 44 on 32-bit), a shrink load margin of 0.25 and a shrink size ratio of 0.75.
func DefaultGrowthPolicy() GrowthPolicy {
	return GrowthPolicy{
		Primes:           conf.Primes(),
		ShrinkLoadMargin: conf.DefaultShrinkLoadMargin,
		ShrinkSizeRatio:  conf.DefaultShrinkSizeRatio,
	}
}

// NextSize - Returns the smallest allowed bucket count equal to or larger than n, or the ceiling if n is beyond it
func (P GrowthPolicy) NextSize(n uint64) uint64 {
	return utils.NextPrime(P.Primes, n)
}

// Max - Returns the largest allowed bucket count
func (P GrowthPolicy) Max() uint64 {
	return P.Primes[len(P.Primes)-1]
}

// worthResize - Returns true if moving size elements from bucketCount buckets into n (not more) buckets pays off
func (P GrowthPolicy) worthResize(size int, n, bucketCount uint64, maxLoadFactor float64) bool {
	return float64(size)/float64(n) < maxLoadFactor-P.ShrinkLoadMargin &&
		float64(n) < float64(bucketCount)*P.ShrinkSizeRatio
}

// validate - Checks that the policy can be used by an index
func (P GrowthPolicy) validate() (err error) {
	if len(P.Primes) == 0 {
		err = InvalidArgument{msg: "growth policy needs at least one bucket count"}
		return
	}
	if P.Primes[0] == 0 {
		err = InvalidArgument{msg: "growth policy bucket counts must be positive"}
		return
	}
	for i := 1; i < len(P.Primes); i++ {
		if P.Primes[i] <= P.Primes[i-1] {
			err = InvalidArgument{msg: fmt.Sprintf("growth policy bucket counts must be ascending, entry %d is not", i)}
			return
		}
	}
	if P.ShrinkLoadMargin < 0 || math.IsNaN(P.ShrinkLoadMargin) || math.IsInf(P.ShrinkLoadMargin, 0) {
		err = InvalidArgument{msg: "growth policy shrink load margin must be a finite non negative value"}
		return
	}
	if !(P.ShrinkSizeRatio > 0 && P.ShrinkSizeRatio <= 1) {
		err = InvalidArgument{msg: "growth policy shrink size ratio must be in the range (0, 1]"}
		return
	}

	return
}
