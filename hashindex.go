// Package hashindex implements a generic open hashing index: an array of buckets holding singly linked collision
// chains. The index supports both unique key (map like) and multi key (multimap like) insertion, grows by a prime
// growth policy before the load factor would ever exceed its configured max, and exposes cursors that walk all
// elements as one sequence across buckets and chains.
//
// An Index is not safe for concurrent use.
package hashindex

import (
	"fmt"
	"log/slog"
	"math"

	"github.com/gostonefire/hashindex/alloc"
	"github.com/gostonefire/hashindex/interfaces"
	"github.com/gostonefire/hashindex/internal/conf"
)

// IndexConf - Is a struct to be passed in the call to NewIndex and contains the policies of the index.
//   - BucketCount is the requested initial number of buckets, it is rounded up by the growth policy
//   - Hash is the hash function for keys, equal keys must give equal hash values
//   - Equal is the equality relation for keys
//   - Key extracts the key from an element
//   - MaxLoadFactor is the max number of elements per bucket, zero gives the default 1.0
//   - Growth is the growth policy, nil gives DefaultGrowthPolicy
//   - Allocator provides nodes and bucket arrays, nil gives an alloc.Heap
//   - Logger receives debug events on rehash, nil discards them
type IndexConf[K any, E any] struct {
	BucketCount   int
	Hash          func(key K) uint64
	Equal         func(a, b K) bool
	Key           func(element E) K
	MaxLoadFactor float64
	Growth        *GrowthPolicy
	Allocator     interfaces.Allocator[Node[E]]
	Logger        *slog.Logger
}

// IndexStat - Statistics on the overall usage and distribution over buckets
//   - Elements is the total number of elements stored
//   - Buckets is the number of buckets in the bucket array
//   - UsedBuckets is the number of buckets holding at least one element
//   - LongestChain is the length of the longest chain
//   - LoadFactor is Elements divided by Buckets
//   - BucketDistribution is the number of elements stored in each bucket
type IndexStat struct {
	Elements           int
	Buckets            int
	UsedBuckets        int
	LongestChain       int
	LoadFactor         float64
	BucketDistribution []int
}

// Index - The hash index. It owns the bucket array and every node linked from it.
type Index[K any, E any] struct {
	buckets       []*Node[E]
	size          int
	maxLoadFactor float64
	hash          func(key K) uint64
	equal         func(a, b K) bool
	key           func(element E) K
	growth        GrowthPolicy
	allocator     interfaces.Allocator[Node[E]]
	logger        *slog.Logger
	epoch         uint64
}

// NewIndex - Returns a new empty index configured by indexConf.
//
// It returns:
//   - index is a pointer to the new Index
//   - err is of type InvalidArgument if the configuration is rejected, or of type AllocationError if the bucket
//     array could not be allocated
func NewIndex[K any, E any](indexConf IndexConf[K, E]) (index *Index[K, E], err error) {
	if indexConf.Hash == nil {
		err = InvalidArgument{msg: "hash function can not be nil"}
		return
	}
	if indexConf.Equal == nil {
		err = InvalidArgument{msg: "equal function can not be nil"}
		return
	}
	if indexConf.Key == nil {
		err = InvalidArgument{msg: "key extractor can not be nil"}
		return
	}
	if indexConf.BucketCount < 0 {
		err = InvalidArgument{msg: "bucket count can not be negative"}
		return
	}

	maxLoadFactor := indexConf.MaxLoadFactor
	if maxLoadFactor == 0 {
		maxLoadFactor = conf.DefaultMaxLoadFactor
	}
	err = checkLoadFactor(maxLoadFactor)
	if err != nil {
		return
	}

	growth := DefaultGrowthPolicy()
	if indexConf.Growth != nil {
		growth = *indexConf.Growth
		err = growth.validate()
		if err != nil {
			return
		}
	}

	allocator := indexConf.Allocator
	if allocator == nil {
		allocator = alloc.NewHeap[Node[E]]()
	}

	logger := indexConf.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	index = &Index[K, E]{
		maxLoadFactor: maxLoadFactor,
		hash:          indexConf.Hash,
		equal:         indexConf.Equal,
		key:           indexConf.Key,
		growth:        growth,
		allocator:     allocator,
		logger:        logger,
	}

	index.buckets, err = index.allocateBuckets(growth.NextSize(uint64(indexConf.BucketCount)))
	if err != nil {
		index = nil
		return
	}

	return
}

// Len - Returns the number of elements in the index
func (G *Index[K, E]) Len() int {
	return G.size
}

// Empty - Returns true if the index holds no elements
func (G *Index[K, E]) Empty() bool {
	return G.size == 0
}

// BucketCount - Returns the current number of buckets
func (G *Index[K, E]) BucketCount() int {
	return len(G.buckets)
}

// MaxBucketCount - Returns the largest bucket count the growth policy will ever choose
func (G *Index[K, E]) MaxBucketCount() uint64 {
	return G.growth.Max()
}

// Bucket - Returns the bucket number the given key maps to, -1 if there is no bucket array (after Close)
func (G *Index[K, E]) Bucket(key K) int {
	if len(G.buckets) == 0 {
		return -1
	}

	return G.bucketOf(key, len(G.buckets))
}

// BucketSize - Returns the number of elements in bucket n, zero if n is outside the bucket array
func (G *Index[K, E]) BucketSize(n int) (size int) {
	if n < 0 || n >= len(G.buckets) {
		return
	}
	for cur := G.buckets[n]; cur != nil; cur = cur.next {
		size++
	}

	return
}

// BucketIterator - Returns an iterator over the elements of bucket n only, empty if n is outside the bucket array
func (G *Index[K, E]) BucketIterator(n int) *ChainIterator[E] {
	if n < 0 || n >= len(G.buckets) {
		return newChainIterator[E](nil)
	}

	return newChainIterator(G.buckets[n])
}

// LoadFactor - Returns the average number of elements per bucket
func (G *Index[K, E]) LoadFactor() float64 {
	if len(G.buckets) == 0 {
		return 0
	}

	return float64(G.size) / float64(len(G.buckets))
}

// MaxLoadFactor - Returns the load factor the index grows to stay within
func (G *Index[K, E]) MaxLoadFactor() float64 {
	return G.maxLoadFactor
}

// SetMaxLoadFactor - Sets the load factor the index grows to stay within.
// A negative or non finite value is rejected with an error of type InvalidArgument. The new value takes effect on
// the next insert, no rehash is done by this call.
func (G *Index[K, E]) SetMaxLoadFactor(maxLoadFactor float64) (err error) {
	err = checkLoadFactor(maxLoadFactor)
	if err != nil {
		return
	}
	G.maxLoadFactor = maxLoadFactor

	return
}

// Clear - Destroys every element, the bucket array keeps its size
func (G *Index[K, E]) Clear() {
	if G.size == 0 {
		return
	}

	for i := range G.buckets {
		cur := G.buckets[i]
		for cur != nil {
			next := cur.next
			G.destroyNode(cur)
			cur = next
		}
		G.buckets[i] = nil
	}
	G.size = 0
}

// Close - Destroys every element and hands the bucket array back to the allocator.
// A closed index has no buckets: lookups and erases find nothing, and the next insert, Rehash or Reserve allocates a
// new bucket array as if starting over. Cursors made before Close must not be used.
func (G *Index[K, E]) Close() {
	G.Clear()
	G.allocator.DeallocateArray(G.buckets)
	G.buckets = nil
	G.epoch++
}

// Clone - Returns a deep copy of the index with the same bucket layout and policies.
// If any allocation fails, every node copied so far is released and an error of type AllocationError is returned.
func (G *Index[K, E]) Clone() (clone *Index[K, E], err error) {
	buckets, err := G.allocator.AllocateArray(len(G.buckets))
	if err != nil {
		err = fmt.Errorf("error while allocating bucket array for clone: %w", err)
		return
	}

	clone = &Index[K, E]{
		buckets:       buckets,
		maxLoadFactor: G.maxLoadFactor,
		hash:          G.hash,
		equal:         G.equal,
		key:           G.key,
		growth:        G.growth,
		allocator:     G.allocator,
		logger:        G.logger,
	}

	for i, cur := range G.buckets {
		tail := &clone.buckets[i]
		for ; cur != nil; cur = cur.next {
			var np *Node[E]
			np, err = clone.createNode(cur.value)
			if err != nil {
				clone.Close()
				clone = nil
				return
			}
			*tail = np
			tail = &np.next
			clone.size++
		}
	}

	return
}

// Swap - Exchanges the complete contents and policies of the two indexes.
// Cursors of either index are invalidated: a cursor stays bound to its *Index, which now holds the other table, so it
// must not be read, advanced or erased after Swap.
func (G *Index[K, E]) Swap(other *Index[K, E]) {
	if G == other {
		return
	}
	*G, *other = *other, *G
	G.epoch++
	other.epoch++
}

// Stat - Walks through the entire set of buckets and produce an IndexStat struct with information.
//   - includeDistribution set to true will include a slice with number of elements per bucket, false will set
//     IndexStat.BucketDistribution to nil.
func (G *Index[K, E]) Stat(includeDistribution bool) (indexStat IndexStat) {
	indexStat.Buckets = len(G.buckets)
	indexStat.LoadFactor = G.LoadFactor()
	if includeDistribution {
		indexStat.BucketDistribution = make([]int, len(G.buckets))
	}

	for i := range G.buckets {
		n := G.BucketSize(i)
		if n == 0 {
			continue
		}
		indexStat.Elements += n
		indexStat.UsedBuckets++
		if n > indexStat.LongestChain {
			indexStat.LongestChain = n
		}
		if includeDistribution {
			indexStat.BucketDistribution[i] = n
		}
	}

	return
}

// bucketOf - Returns the bucket number of key for a bucket array of length n
func (G *Index[K, E]) bucketOf(key K, n int) int {
	return int(G.hash(key) % uint64(n))
}

// createNode - Allocates a node and constructs value on it
func (G *Index[K, E]) createNode(value E) (np *Node[E], err error) {
	np, err = G.allocator.Allocate()
	if err != nil {
		err = fmt.Errorf("error while allocating node: %w", err)
		return
	}
	np.value = value
	np.next = nil

	return
}

// destroyNode - Destroys the value on the node and hands the node back to the allocator
func (G *Index[K, E]) destroyNode(np *Node[E]) {
	var zero E
	np.value = zero
	np.next = nil
	G.allocator.Deallocate(np)
}

// allocateBuckets - Allocates an empty bucket array with n buckets
func (G *Index[K, E]) allocateBuckets(n uint64) (buckets []*Node[E], err error) {
	if n > math.MaxInt {
		err = alloc.NewAllocationError(fmt.Sprintf("bucket array of %d buckets is not addressable", n))
		return
	}

	buckets, err = G.allocator.AllocateArray(int(n))
	if err != nil {
		err = fmt.Errorf("error while allocating bucket array: %w", err)
	}

	return
}

// checkLoadFactor - Rejects negative and non finite load factors
func checkLoadFactor(maxLoadFactor float64) (err error) {
	if maxLoadFactor < 0 || math.IsNaN(maxLoadFactor) || math.IsInf(maxLoadFactor, 0) {
		err = InvalidArgument{msg: fmt.Sprintf("invalid max load factor %v", maxLoadFactor)}
	}

	return
}
