package hashindex

import (
	"fmt"
	"log/slog"
	"math"
)

// Rehash - Rebuilds the bucket array for at least count buckets, rounded up by the growth policy.
// A larger bucket count is always applied. A smaller (or equal) one is only applied when the resulting load factor
// stays below max load factor minus the policy's shrink load margin and the new count is below the current count
// times the policy's shrink size ratio.
//
// It returns:
//   - err is of type InvalidArgument if count is negative, or of type AllocationError if the new bucket array could
//     not be allocated, in both cases the index is unchanged
func (G *Index[K, E]) Rehash(count int) (err error) {
	if count < 0 {
		err = InvalidArgument{msg: "rehash count can not be negative"}
		return
	}

	return G.rehash(uint64(count))
}

// Reserve - Makes room for count elements without exceeding max load factor, same as Rehash(ceil(count/max load factor))
func (G *Index[K, E]) Reserve(count int) (err error) {
	if count < 0 {
		err = InvalidArgument{msg: "reserve count can not be negative"}
		return
	}

	return G.rehash(G.bucketsFor(count))
}

// rehashIfNeeded - Grows the bucket array if adding n more elements would take the load factor above max.
// The check is made before any of the new elements are placed.
func (G *Index[K, E]) rehashIfNeeded(n int) (err error) {
	if float64(G.size+n) > float64(len(G.buckets))*G.maxLoadFactor {
		err = G.rehash(G.bucketsFor(G.size + n))
	}

	return
}

// bucketsFor - Returns the number of buckets needed to hold count elements within max load factor
func (G *Index[K, E]) bucketsFor(count int) uint64 {
	t := math.Ceil(float64(count) / G.maxLoadFactor)
	if math.IsNaN(t) || t >= math.MaxUint64 {
		if count == 0 {
			return 0
		}
		return math.MaxUint64
	}

	return uint64(t)
}

// rehash - Applies the growth policy to a requested bucket count
func (G *Index[K, E]) rehash(count uint64) (err error) {
	n := G.growth.NextSize(count)
	bucketCount := uint64(len(G.buckets))

	if n > bucketCount || (n < bucketCount && G.growth.worthResize(G.size, n, bucketCount, G.maxLoadFactor)) {
		err = G.replaceBuckets(n)
	}

	return
}

// replaceBuckets - Moves every node into a new bucket array of n buckets.
// The new array is allocated before anything is touched, after that the move itself can not fail. Equal keys always
// form one contiguous run within one chain, so each run is moved as a whole and stays contiguous.
func (G *Index[K, E]) replaceBuckets(n uint64) (err error) {
	buckets, err := G.allocateBuckets(n)
	if err != nil {
		err = fmt.Errorf("error while rehashing to %d buckets: %w", n, err)
		return
	}

	for i, cur := range G.buckets {
		for cur != nil {
			k := G.key(cur.value)
			last := cur
			for last.next != nil && G.equal(k, G.key(last.next.value)) {
				last = last.next
			}
			next := last.next

			b := G.bucketOf(k, len(buckets))
			last.next = buckets[b]
			buckets[b] = cur

			cur = next
		}
		G.buckets[i] = nil
	}

	old := len(G.buckets)
	G.allocator.DeallocateArray(G.buckets)
	G.buckets = buckets
	G.epoch++

	G.logger.Debug("rehashed bucket array",
		slog.Int("from", old),
		slog.Int("to", len(buckets)),
		slog.Int("size", G.size))

	return
}
