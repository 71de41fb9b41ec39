package hashindex

// InsertUnique - Adds value unless an element with an equal key is already stored.
// The bucket array is grown first if one more element would take the load factor above max. A node is only
// allocated once the key is known to be missing.
//
// It returns:
//   - cursor points at the newly stored element, or at the already stored element with an equal key
//   - inserted is false if an equal key was already stored, the stored element is then left untouched
//   - err is of type AllocationError if a grown bucket array or the node could not be allocated, the stored
//     elements are then unchanged (a grown bucket array is kept)
func (G *Index[K, E]) InsertUnique(value E) (cursor Cursor[K, E], inserted bool, err error) {
	err = G.rehashIfNeeded(1)
	if err != nil {
		cursor = G.End()
		return
	}

	return G.insertValueUnique(value)
}

// InsertMulti - Adds value. If elements with an equal key are already stored the new element is placed right after
// the first of them, keeping all equal keys together.
//
// It returns:
//   - cursor points at the newly stored element
//   - err is of type AllocationError if the node or a grown bucket array could not be allocated, nothing is changed
func (G *Index[K, E]) InsertMulti(value E) (cursor Cursor[K, E], err error) {
	np, err := G.createNode(value)
	if err != nil {
		cursor = G.End()
		return
	}

	err = G.rehashIfNeeded(1)
	if err != nil {
		G.destroyNode(np)
		cursor = G.End()
		return
	}

	cursor = G.insertNodeMulti(np)

	return
}

// InsertUniqueAll - Adds every value whose key is not already stored (or added earlier in the same call).
// Room for all values is made with a single rehash before any of them is placed, and nodes are only allocated for
// missing keys. If a node can not be allocated, every element added by the call is removed again and an error of
// type AllocationError is returned.
func (G *Index[K, E]) InsertUniqueAll(values ...E) (inserted int, err error) {
	err = G.rehashIfNeeded(len(values))
	if err != nil {
		return
	}

	added := make([]Cursor[K, E], 0, len(values))
	for _, v := range values {
		var c Cursor[K, E]
		var ok bool
		c, ok, err = G.insertValueUnique(v)
		if err != nil {
			for i := len(added) - 1; i >= 0; i-- {
				G.eraseNodes(added[i].bucket, added[i].node, added[i].node.next)
			}
			return
		}
		if ok {
			added = append(added, c)
		}
	}
	inserted = len(added)

	return
}

// InsertMultiAll - Adds every value, with a single rehash before any of them is placed.
// Either all nodes are allocated and the call succeeds, or an error of type AllocationError is returned and nothing
// is changed.
func (G *Index[K, E]) InsertMultiAll(values ...E) (err error) {
	nodes, err := G.createNodes(values)
	if err != nil {
		return
	}

	for _, np := range nodes {
		G.insertNodeMulti(np)
	}

	return
}

// Find - Returns a cursor at the first element with a key equal to key, or End if there is none
func (G *Index[K, E]) Find(key K) Cursor[K, E] {
	if len(G.buckets) == 0 {
		return G.End()
	}

	b := G.bucketOf(key, len(G.buckets))
	for cur := G.buckets[b]; cur != nil; cur = cur.next {
		if G.equal(G.key(cur.value), key) {
			return G.cursor(cur, b)
		}
	}

	return G.End()
}

// Get - Returns the first element with a key equal to key, ok is false if there is none
func (G *Index[K, E]) Get(key K) (element E, ok bool) {
	c := G.Find(key)
	if c.End() {
		return
	}

	return c.node.value, true
}

// Contains - Returns true if an element with a key equal to key is stored
func (G *Index[K, E]) Contains(key K) bool {
	return !G.Find(key).End()
}

// Count - Returns the number of elements with a key equal to key
func (G *Index[K, E]) Count(key K) (count int) {
	if len(G.buckets) == 0 {
		return
	}

	b := G.bucketOf(key, len(G.buckets))
	for cur := G.buckets[b]; cur != nil; cur = cur.next {
		if G.equal(G.key(cur.value), key) {
			count++
		}
	}

	return
}

// EqualRangeMulti - Returns the range [first, last) of all elements with a key equal to key.
// If the run of equal keys ends its chain, last is the head of the next non empty bucket, or End.
// Both cursors are End if no element matches.
func (G *Index[K, E]) EqualRangeMulti(key K) (first, last Cursor[K, E]) {
	if len(G.buckets) == 0 {
		first, last = G.End(), G.End()
		return
	}

	b := G.bucketOf(key, len(G.buckets))
	for cur := G.buckets[b]; cur != nil; cur = cur.next {
		if !G.equal(G.key(cur.value), key) {
			continue
		}

		first = G.cursor(cur, b)
		for second := cur.next; second != nil; second = second.next {
			if !G.equal(G.key(second.value), key) {
				last = G.cursor(second, b)
				return
			}
		}
		last = G.firstFrom(b + 1)
		return
	}

	first, last = G.End(), G.End()
	return
}

// EqualRangeUnique - Returns the range [first, last) holding the first element with a key equal to key, the range
// holds at most one element. Both cursors are End if no element matches.
func (G *Index[K, E]) EqualRangeUnique(key K) (first, last Cursor[K, E]) {
	first = G.Find(key)
	last = first.Next()

	return
}

// Erase - Removes the element c points at and returns a cursor at the element that followed it.
// Erasing End does nothing and returns End.
func (G *Index[K, E]) Erase(c Cursor[K, E]) Cursor[K, E] {
	if c.node == nil {
		return G.End()
	}

	next := c.Next()
	b := G.cursorBucket(c)
	for pp := &G.buckets[b]; *pp != nil; pp = &(*pp).next {
		if *pp == c.node {
			*pp = c.node.next
			G.destroyNode(c.node)
			G.size--
			return next
		}
	}

	return G.End()
}

// EraseRange - Removes all elements in [first, last) and returns last.
// Every bucket strictly between the buckets of first and last is cleared fully, the two boundary buckets are cleared
// only for the part of their chains the range covers.
func (G *Index[K, E]) EraseRange(first, last Cursor[K, E]) Cursor[K, E] {
	if first.node == last.node || first.node == nil {
		return last
	}

	firstBucket := G.cursorBucket(first)
	lastBucket := len(G.buckets)
	if last.node != nil {
		lastBucket = G.cursorBucket(last)
	}

	if firstBucket == lastBucket {
		G.eraseNodes(firstBucket, first.node, last.node)
		return last
	}

	G.eraseNodes(firstBucket, first.node, nil)
	for n := firstBucket + 1; n < lastBucket; n++ {
		if G.buckets[n] != nil {
			G.eraseNodes(n, G.buckets[n], nil)
		}
	}
	if lastBucket < len(G.buckets) {
		G.eraseNodes(lastBucket, G.buckets[lastBucket], last.node)
	}

	return last
}

// EraseUnique - Removes the first element with a key equal to key, returns the number of elements removed (0 or 1)
func (G *Index[K, E]) EraseUnique(key K) int {
	if len(G.buckets) == 0 {
		return 0
	}

	b := G.bucketOf(key, len(G.buckets))
	for pp := &G.buckets[b]; *pp != nil; pp = &(*pp).next {
		if np := *pp; G.equal(G.key(np.value), key) {
			*pp = np.next
			G.destroyNode(np)
			G.size--
			return 1
		}
	}

	return 0
}

// EraseMulti - Removes all elements with a key equal to key, returns the number of elements removed
func (G *Index[K, E]) EraseMulti(key K) (erased int) {
	if len(G.buckets) == 0 {
		return
	}

	b := G.bucketOf(key, len(G.buckets))
	pp := &G.buckets[b]
	for *pp != nil && !G.equal(G.key((*pp).value), key) {
		pp = &(*pp).next
	}
	for *pp != nil && G.equal(G.key((*pp).value), key) {
		np := *pp
		*pp = np.next
		G.destroyNode(np)
		G.size--
		erased++
	}

	return
}

// insertValueUnique - Links a new node holding value at the head of its chain unless an equal key is already there.
// The caller makes room in the bucket array first.
func (G *Index[K, E]) insertValueUnique(value E) (cursor Cursor[K, E], inserted bool, err error) {
	k := G.key(value)
	b := G.bucketOf(k, len(G.buckets))
	for cur := G.buckets[b]; cur != nil; cur = cur.next {
		if G.equal(G.key(cur.value), k) {
			cursor = G.cursor(cur, b)
			return
		}
	}

	np, err := G.createNode(value)
	if err != nil {
		cursor = G.End()
		return
	}
	np.next = G.buckets[b]
	G.buckets[b] = np
	G.size++

	return G.cursor(np, b), true, nil
}

// insertNodeMulti - Links np right after the first equal key in its chain, or at the head of the chain
func (G *Index[K, E]) insertNodeMulti(np *Node[E]) Cursor[K, E] {
	k := G.key(np.value)
	b := G.bucketOf(k, len(G.buckets))
	for cur := G.buckets[b]; cur != nil; cur = cur.next {
		if G.equal(G.key(cur.value), k) {
			np.next = cur.next
			cur.next = np
			G.size++
			return G.cursor(np, b)
		}
	}

	np.next = G.buckets[b]
	G.buckets[b] = np
	G.size++

	return G.cursor(np, b)
}

// createNodes - Allocates one node per value and makes room for all of them, or releases everything on failure.
// Used by multi inserts only, where every value gets stored.
func (G *Index[K, E]) createNodes(values []E) (nodes []*Node[E], err error) {
	nodes = make([]*Node[E], 0, len(values))
	for _, v := range values {
		var np *Node[E]
		np, err = G.createNode(v)
		if err != nil {
			G.destroyNodes(nodes)
			nodes = nil
			return
		}
		nodes = append(nodes, np)
	}

	err = G.rehashIfNeeded(len(nodes))
	if err != nil {
		G.destroyNodes(nodes)
		nodes = nil
	}

	return
}

// destroyNodes - Destroys nodes that were never linked into a chain
func (G *Index[K, E]) destroyNodes(nodes []*Node[E]) {
	for _, np := range nodes {
		G.destroyNode(np)
	}
}

// eraseNodes - Unlinks and destroys the nodes of bucket n from first up to, not including, last.
// A nil last erases to the end of the chain.
func (G *Index[K, E]) eraseNodes(n int, first, last *Node[E]) {
	pp := &G.buckets[n]
	for *pp != nil && *pp != first {
		pp = &(*pp).next
	}
	for *pp != nil && *pp != last {
		np := *pp
		*pp = np.next
		G.destroyNode(np)
		G.size--
	}
}
