//go:build unit

package hashindex

import (
	"math"
	"math/bits"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGrowthPolicy_NextSize(t *testing.T) {
	t.Run("rounds up to allowed bucket counts", func(t *testing.T) {
		// Prepare
		p := DefaultGrowthPolicy()

		// Execute and Check
		assert.Equal(t, uint64(101), p.NextSize(0), "smallest")
		assert.Equal(t, uint64(101), p.NextSize(101), "exact match")
		assert.Equal(t, uint64(173), p.NextSize(102), "next")
		assert.Equal(t, uint64(1361), p.NextSize(1000), "between entries")
		assert.Equal(t, p.Max(), p.NextSize(math.MaxUint64), "capped at ceiling")
	})

	t.Run("default table fits the platform", func(t *testing.T) {
		// Execute
		p := DefaultGrowthPolicy()

		// Check
		if bits.UintSize == 64 {
			assert.Len(t, p.Primes, 99, "full table")
			assert.Equal(t, uint64(18446744073709551557), p.Max(), "largest 64-bit prime")
		} else {
			assert.Equal(t, uint64(4294967291), p.Max(), "largest 32-bit prime")
		}
		p.Primes[0] = 1
		assert.Equal(t, uint64(101), DefaultGrowthPolicy().Primes[0], "each policy gets its own table")
	})
}

func TestGrowthPolicy_validate(t *testing.T) {
	t.Run("accepts default policy", func(t *testing.T) {
		assert.NoError(t, DefaultGrowthPolicy().validate(), "valid")
	})

	t.Run("rejects broken policies", func(t *testing.T) {
		// Prepare
		policies := []GrowthPolicy{
			{Primes: nil, ShrinkLoadMargin: 0.25, ShrinkSizeRatio: 0.75},
			{Primes: []uint64{0, 7}, ShrinkLoadMargin: 0.25, ShrinkSizeRatio: 0.75},
			{Primes: []uint64{7, 7}, ShrinkLoadMargin: 0.25, ShrinkSizeRatio: 0.75},
			{Primes: []uint64{11, 7}, ShrinkLoadMargin: 0.25, ShrinkSizeRatio: 0.75},
			{Primes: []uint64{7, 11}, ShrinkLoadMargin: -1, ShrinkSizeRatio: 0.75},
			{Primes: []uint64{7, 11}, ShrinkLoadMargin: math.Inf(1), ShrinkSizeRatio: 0.75},
			{Primes: []uint64{7, 11}, ShrinkLoadMargin: 0.25, ShrinkSizeRatio: 0},
			{Primes: []uint64{7, 11}, ShrinkLoadMargin: 0.25, ShrinkSizeRatio: 1.5},
			{Primes: []uint64{7, 11}, ShrinkLoadMargin: 0.25, ShrinkSizeRatio: math.NaN()},
		}

		// Execute and Check
		for _, p := range policies {
			assert.ErrorIs(t, p.validate(), InvalidArgument{}, "gets correct error")
		}
	})
}

func TestIndex_MaxBucketCount(t *testing.T) {
	t.Run("reports policy ceiling", func(t *testing.T) {
		// Prepare
		index := newIntIndex(t, 0, nil)

		// Execute and Check
		assert.Equal(t, DefaultGrowthPolicy().Max(), index.MaxBucketCount(), "ceiling of default policy")
	})
}
