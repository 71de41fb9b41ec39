package hashindex

// ChainIterator - Is used to iterate over the elements of one bucket, following its chain.
type ChainIterator[E any] struct {
	node *Node[E]
}

// newChainIterator - Returns a pointer to a new ChainIterator starting at head
func newChainIterator[E any](head *Node[E]) *ChainIterator[E] {
	return &ChainIterator[E]{node: head}
}

// HasNext - Returns true if there are more elements to be fetched from a call to Next
func (C *ChainIterator[E]) HasNext() bool {
	return C.node != nil
}

// Next - Returns the next element of the chain.
// It returns:
//   - element is the next element in the chain
//   - ok is false if the chain was already exhausted, element is then the zero value
func (C *ChainIterator[E]) Next() (element E, ok bool) {
	if C.node == nil {
		return
	}

	element = C.node.value
	C.node = C.node.next
	ok = true

	return
}
