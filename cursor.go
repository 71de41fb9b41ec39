package hashindex

import "iter"

// Cursor - Points at one element of an index, or at the end of it. Cursors walk the elements of all buckets as one
// sequence: first along the chain of the current bucket, then on to the head of the next non empty bucket.
//
// The cursor remembers the bucket it is in. Should the index have been rehashed since the cursor was made, the bucket
// is found again from the hash of the element's key. Cursors are compared by the element they point at only, so all
// End cursors of one index are equal. A cursor at an erased element must not be used.
type Cursor[K any, E any] struct {
	node   *Node[E]
	bucket int
	epoch  uint64
	index  *Index[K, E]
}

// End - Returns true if the cursor is past the last element
func (C Cursor[K, E]) End() bool {
	return C.node == nil
}

// Value - Returns the element the cursor points at, or the zero value at End
func (C Cursor[K, E]) Value() (element E) {
	if C.node == nil {
		return
	}

	return C.node.value
}

// Ref - Returns a pointer to the element the cursor points at, or nil at End.
// The element may be changed through the pointer as long as its key stays equal.
func (C Cursor[K, E]) Ref() *E {
	if C.node == nil {
		return nil
	}

	return &C.node.value
}

// Key - Returns the key of the element the cursor points at, or the zero value at End
func (C Cursor[K, E]) Key() (key K) {
	if C.node == nil {
		return
	}

	return C.index.key(C.node.value)
}

// Equal - Returns true if both cursors point at the same element, or both are at End
func (C Cursor[K, E]) Equal(other Cursor[K, E]) bool {
	return C.node == other.node
}

// Next - Returns a cursor at the following element, End stays End
func (C Cursor[K, E]) Next() Cursor[K, E] {
	if C.node == nil {
		return C
	}

	if C.node.next != nil {
		C.node = C.node.next
		return C
	}

	return C.index.firstFrom(C.index.cursorBucket(C) + 1)
}

// Begin - Returns a cursor at the first element, or End if the index is empty
func (G *Index[K, E]) Begin() Cursor[K, E] {
	return G.firstFrom(0)
}

// End - Returns the cursor past the last element
func (G *Index[K, E]) End() Cursor[K, E] {
	return Cursor[K, E]{bucket: len(G.buckets), epoch: G.epoch, index: G}
}

// All - Returns an iterator over every element in cursor order.
// The index must not be changed while iterating.
func (G *Index[K, E]) All() iter.Seq[E] {
	return func(yield func(E) bool) {
		for _, head := range G.buckets {
			for cur := head; cur != nil; cur = cur.next {
				if !yield(cur.value) {
					return
				}
			}
		}
	}
}

// cursor - Returns a cursor at np which is in bucket b
func (G *Index[K, E]) cursor(np *Node[E], b int) Cursor[K, E] {
	return Cursor[K, E]{node: np, bucket: b, epoch: G.epoch, index: G}
}

// firstFrom - Returns a cursor at the head of the first non empty bucket from bucket b onwards, or End
func (G *Index[K, E]) firstFrom(b int) Cursor[K, E] {
	for ; b < len(G.buckets); b++ {
		if G.buckets[b] != nil {
			return G.cursor(G.buckets[b], b)
		}
	}

	return G.End()
}

// cursorBucket - Returns the bucket of a cursor that is not at End, recomputing it if the index was rehashed since
func (G *Index[K, E]) cursorBucket(c Cursor[K, E]) int {
	if c.epoch == G.epoch {
		return c.bucket
	}

	return G.bucketOf(G.key(c.node.value), len(G.buckets))
}
