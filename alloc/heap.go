package alloc

import "fmt"

// maxArrayLen - Longest bucket array the heap allocator will attempt to make
const maxArrayLen uint64 = 1 << 32

// Heap - Allocator backed by the Go heap. Deallocation is left to the garbage collector.
type Heap[T any] struct{}

// NewHeap - Returns a pointer to a new Heap allocator
func NewHeap[T any]() *Heap[T] {
	return &Heap[T]{}
}

// Allocate - Returns a pointer to a new zero valued T
func (H *Heap[T]) Allocate() (p *T, err error) {
	p = new(T)
	return
}

// Deallocate - Nothing to do, the garbage collector reclaims p once it is unreachable
func (H *Heap[T]) Deallocate(p *T) {}

// AllocateArray - Returns a slice of n nil pointers.
// Lengths that are negative or beyond what the heap allocator supports give an AllocationError.
func (H *Heap[T]) AllocateArray(n int) (a []*T, err error) {
	if n < 0 || uint64(n) > maxArrayLen {
		err = NewAllocationError(fmt.Sprintf("array of length %d can not be allocated", n))
		return
	}

	a = make([]*T, n)
	return
}

// DeallocateArray - Nothing to do, the garbage collector reclaims a once it is unreachable
func (H *Heap[T]) DeallocateArray(a []*T) {}
