//go:build unit

package hashindex

import (
	"math"
	"testing"

	"github.com/gostonefire/hashindex/alloc"
	"github.com/gostonefire/hashindex/hashfunc"
	"github.com/gostonefire/hashindex/interfaces"
	"github.com/stretchr/testify/assert"
)

// newIntIndex - Returns a set like index of ints where each int is its own hash value, so key k lives in bucket
// k modulo the bucket count
func newIntIndex(t *testing.T, bucketCount int, allocator interfaces.Allocator[Node[int]]) *Index[int, int] {
	index, err := NewIndex(IndexConf[int, int]{
		BucketCount: bucketCount,
		Hash:        hashfunc.Integer[int],
		Equal:       hashfunc.Equal[int],
		Key:         hashfunc.Identity[int],
		Allocator:   allocator,
	})
	assert.NoError(t, err, "create new index")

	return index
}

// newPairIndex - Returns a map like index from string keys to int values
func newPairIndex(t *testing.T) *Index[string, Pair[string, int]] {
	index, err := NewIndex(IndexConf[string, Pair[string, int]]{
		Hash:  hashfunc.String,
		Equal: hashfunc.Equal[string],
		Key:   PairKey[string, int],
	})
	assert.NoError(t, err, "create new index")

	return index
}

func TestNewIndex(t *testing.T) {
	t.Run("creates index with defaults", func(t *testing.T) {
		// Execute
		index := newPairIndex(t)

		// Check
		assert.Equal(t, 101, index.BucketCount(), "smallest prime bucket count")
		assert.Equal(t, 1.0, index.MaxLoadFactor(), "default max load factor")
		assert.Equal(t, 0, index.Len(), "no elements")
		assert.True(t, index.Empty(), "is empty")
		assert.Equal(t, 0.0, index.LoadFactor(), "zero load factor")
	})

	t.Run("rounds bucket count up to a prime", func(t *testing.T) {
		// Execute
		index := newIntIndex(t, 1000, nil)

		// Check
		assert.Equal(t, 1361, index.BucketCount(), "next prime bucket count")
	})

	t.Run("error when supplying invalid configuration", func(t *testing.T) {
		// Prepare
		valid := IndexConf[int, int]{
			Hash:  hashfunc.Integer[int],
			Equal: hashfunc.Equal[int],
			Key:   hashfunc.Identity[int],
		}
		noHash, noEqual, noKey, negative, badLoad, nanLoad := valid, valid, valid, valid, valid, valid
		noHash.Hash = nil
		noEqual.Equal = nil
		noKey.Key = nil
		negative.BucketCount = -1
		badLoad.MaxLoadFactor = -0.5
		nanLoad.MaxLoadFactor = math.NaN()

		// Execute and Check
		for _, c := range []IndexConf[int, int]{noHash, noEqual, noKey, negative, badLoad, nanLoad} {
			index, err := NewIndex(c)
			assert.ErrorIs(t, err, InvalidArgument{}, "gets correct error")
			assert.Nil(t, index, "no index")
		}
	})

	t.Run("error when supplying invalid growth policy", func(t *testing.T) {
		// Prepare
		policies := []GrowthPolicy{
			{Primes: nil, ShrinkLoadMargin: 0.25, ShrinkSizeRatio: 0.75},
			{Primes: []uint64{173, 101}, ShrinkLoadMargin: 0.25, ShrinkSizeRatio: 0.75},
			{Primes: []uint64{101, 173}, ShrinkLoadMargin: -1, ShrinkSizeRatio: 0.75},
			{Primes: []uint64{101, 173}, ShrinkLoadMargin: 0.25, ShrinkSizeRatio: 0},
		}

		// Execute and Check
		for _, p := range policies {
			_, err := NewIndex(IndexConf[int, int]{
				Hash:   hashfunc.Integer[int],
				Equal:  hashfunc.Equal[int],
				Key:    hashfunc.Identity[int],
				Growth: &p,
			})
			assert.ErrorIs(t, err, InvalidArgument{}, "gets correct error")
		}
	})

	t.Run("error when bucket array can not be allocated", func(t *testing.T) {
		// Prepare
		limited := alloc.NewLimited[Node[int]](nil, -1, 50)

		// Execute
		_, err := NewIndex(IndexConf[int, int]{
			Hash:      hashfunc.Integer[int],
			Equal:     hashfunc.Equal[int],
			Key:       hashfunc.Identity[int],
			Allocator: limited,
		})

		// Check
		assert.ErrorIs(t, err, AllocationError{}, "gets correct error")
	})
}

func TestIndex_SetMaxLoadFactor(t *testing.T) {
	t.Run("sets a valid max load factor", func(t *testing.T) {
		// Prepare
		index := newIntIndex(t, 0, nil)

		// Execute
		err := index.SetMaxLoadFactor(0.5)

		// Check
		assert.NoError(t, err, "sets max load factor")
		assert.Equal(t, 0.5, index.MaxLoadFactor(), "max load factor updated")
	})

	t.Run("rejects negative and non finite values", func(t *testing.T) {
		// Prepare
		index := newIntIndex(t, 0, nil)

		// Execute and Check
		for _, f := range []float64{-0.5, math.NaN(), math.Inf(1), math.Inf(-1)} {
			err := index.SetMaxLoadFactor(f)
			assert.ErrorIs(t, err, InvalidArgument{}, "gets correct error")
			assert.Equal(t, 1.0, index.MaxLoadFactor(), "max load factor unchanged")
		}
	})
}

func TestIndex_Clear(t *testing.T) {
	t.Run("destroys all elements and keeps bucket array", func(t *testing.T) {
		// Prepare
		limited := alloc.NewLimited[Node[int]](nil, -1, -1)
		index := newIntIndex(t, 0, limited)
		for i := 0; i < 500; i++ {
			_, _, err := index.InsertUnique(i)
			assert.NoError(t, err, "insert element")
		}
		bucketCount := index.BucketCount()

		// Execute
		index.Clear()

		// Check
		assert.Equal(t, 0, index.Len(), "no elements")
		assert.Equal(t, bucketCount, index.BucketCount(), "bucket count retained")
		assert.Equal(t, 0, limited.LiveNodes(), "all nodes released")
		assert.True(t, index.Begin().End(), "nothing to iterate")
		assert.False(t, index.Contains(42), "element gone")
	})
}

func TestIndex_Close(t *testing.T) {
	t.Run("releases all nodes and the bucket array", func(t *testing.T) {
		// Prepare
		limited := alloc.NewLimited[Node[int]](nil, -1, -1)
		index := newIntIndex(t, 0, limited)
		for i := 0; i < 300; i++ {
			_, err := index.InsertMulti(i % 7)
			assert.NoError(t, err, "insert element")
		}

		// Execute
		index.Close()

		// Check
		assert.Equal(t, 0, limited.LiveNodes(), "all nodes released")
		assert.Equal(t, 0, limited.LiveSlots(), "bucket array released")
	})

	t.Run("closed index finds nothing and starts over on insert", func(t *testing.T) {
		// Prepare
		index := newIntIndex(t, 0, nil)
		for i := 0; i < 20; i++ {
			_, _ = index.InsertMulti(i % 4)
		}
		index.Close()

		// Execute and Check
		assert.Equal(t, 0, index.Len(), "no elements")
		assert.Equal(t, 0, index.BucketCount(), "no buckets")
		assert.True(t, index.Find(1).End(), "find gives end")
		assert.False(t, index.Contains(1), "not contained")
		assert.Equal(t, 0, index.Count(1), "zero count")
		first, last := index.EqualRangeMulti(1)
		assert.True(t, first.End() && last.End(), "empty range")
		assert.Equal(t, 0, index.EraseUnique(1), "nothing erased")
		assert.Equal(t, 0, index.EraseMulti(1), "nothing erased")
		assert.Equal(t, -1, index.Bucket(1), "no bucket")
		assert.True(t, index.Begin().End(), "nothing to iterate")

		_, inserted, err := index.InsertUnique(7)
		assert.NoError(t, err, "insert after close")
		assert.True(t, inserted, "inserted")
		assert.Equal(t, 101, index.BucketCount(), "new bucket array")
		assert.True(t, index.Contains(7), "found")
	})
}

func TestIndex_Clone(t *testing.T) {
	t.Run("clones all elements into an independent index", func(t *testing.T) {
		// Prepare
		index := newIntIndex(t, 0, nil)
		for i := 0; i < 250; i++ {
			_, err := index.InsertMulti(i % 50)
			assert.NoError(t, err, "insert element")
		}

		// Execute
		clone, err := index.Clone()

		// Check
		assert.NoError(t, err, "clones index")
		assert.Equal(t, index.Len(), clone.Len(), "same size")
		assert.Equal(t, index.BucketCount(), clone.BucketCount(), "same bucket count")
		assert.True(t, EqualMulti(index, clone, hashfunc.Equal[int]), "same elements")

		clone.EraseMulti(7)
		assert.Equal(t, 5, index.Count(7), "original untouched")
		assert.Equal(t, 0, clone.Count(7), "clone changed")
	})

	t.Run("releases partial copy when allocation fails", func(t *testing.T) {
		// Prepare
		limited := alloc.NewLimited[Node[int]](nil, 10, -1)
		index := newIntIndex(t, 0, limited)
		for i := 0; i < 10; i++ {
			_, _, err := index.InsertUnique(i)
			assert.NoError(t, err, "insert element")
		}
		slots := limited.LiveSlots()

		// Execute
		clone, err := index.Clone()

		// Check
		assert.ErrorIs(t, err, AllocationError{}, "gets correct error")
		assert.Nil(t, clone, "no clone")
		assert.Equal(t, 10, limited.LiveNodes(), "partial copy released")
		assert.Equal(t, slots, limited.LiveSlots(), "clone bucket array released")
	})
}

func TestIndex_Swap(t *testing.T) {
	t.Run("swaps contents of two indexes", func(t *testing.T) {
		// Prepare
		a := newIntIndex(t, 0, nil)
		b := newIntIndex(t, 1000, nil)
		_, _, _ = a.InsertUnique(1)
		_, _, _ = b.InsertUnique(2)
		_, _, _ = b.InsertUnique(3)

		// Execute
		a.Swap(b)

		// Check
		assert.Equal(t, 2, a.Len(), "a got b's elements")
		assert.Equal(t, 1361, a.BucketCount(), "a got b's buckets")
		assert.True(t, a.Contains(3), "a holds 3")
		assert.Equal(t, 1, b.Len(), "b got a's elements")
		assert.True(t, b.Contains(1), "b holds 1")

		var walked []int
		for c := a.Begin(); !c.End(); c = c.Next() {
			walked = append(walked, c.Value())
		}
		assert.Equal(t, []int{2, 3}, walked, "cursors made after swap walk the new contents")
	})
}

func TestIndex_Stat(t *testing.T) {
	t.Run("gets usage and distribution", func(t *testing.T) {
		// Prepare
		index := newIntIndex(t, 0, nil)
		for _, k := range []int{0, 101, 202, 5, 6} {
			_, _, err := index.InsertUnique(k)
			assert.NoError(t, err, "insert element")
		}

		// Execute
		stat := index.Stat(true)

		// Check
		assert.Equal(t, 5, stat.Elements, "elements counted")
		assert.Equal(t, 101, stat.Buckets, "buckets counted")
		assert.Equal(t, 3, stat.UsedBuckets, "used buckets counted")
		assert.Equal(t, 3, stat.LongestChain, "longest chain found")
		assert.Len(t, stat.BucketDistribution, 101, "one entry per bucket")
		assert.Equal(t, 3, stat.BucketDistribution[0], "bucket 0 holds three")
		assert.Equal(t, 1, stat.BucketDistribution[5], "bucket 5 holds one")
		assert.InDelta(t, 5.0/101.0, stat.LoadFactor, 1e-9, "load factor")

		assert.Nil(t, index.Stat(false).BucketDistribution, "no distribution")
	})
}

func TestIndex_BucketSize(t *testing.T) {
	t.Run("counts chain lengths", func(t *testing.T) {
		// Prepare
		index := newIntIndex(t, 0, nil)
		for _, k := range []int{3, 104, 205} {
			_, _, _ = index.InsertUnique(k)
		}

		// Execute and Check
		assert.Equal(t, 3, index.Bucket(205), "bucket of key")
		assert.Equal(t, 3, index.BucketSize(3), "three in bucket 3")
		assert.Equal(t, 0, index.BucketSize(4), "bucket 4 empty")
		assert.Equal(t, 0, index.BucketSize(-1), "outside bucket array")
		assert.Equal(t, 0, index.BucketSize(101), "outside bucket array")
	})
}
