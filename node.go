package hashindex

// Node - One stored element and the link to the next node in the same chain.
// Nodes are handed out by an allocator and owned by exactly one chain of one index at a time.
type Node[E any] struct {
	value E
	next  *Node[E]
}

// Pair - Element type for map like use, where Key identifies the element and Value is the mapped value
type Pair[K any, V any] struct {
	Key   K
	Value V
}

// PairKey - Key extractor for Pair elements
func PairKey[K any, V any](p Pair[K, V]) K {
	return p.Key
}
