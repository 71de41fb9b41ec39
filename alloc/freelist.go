package alloc

import "github.com/gostonefire/hashindex/interfaces"

// FreeList - Allocator that keeps deallocated nodes on a free list and hands them out again before asking the
// backing allocator for more. Arrays are passed straight through to the backing allocator.
type FreeList[T any] struct {
	backing interfaces.Allocator[T]
	free    []*T
	maxFree int
}

// NewFreeList - Returns a pointer to a new FreeList allocator
//   - backing is the allocator used when the free list is empty, nil gives a Heap allocator
//   - maxFree is the max number of nodes kept on the free list, nodes beyond that go back to the backing allocator
func NewFreeList[T any](backing interfaces.Allocator[T], maxFree int) *FreeList[T] {
	if backing == nil {
		backing = NewHeap[T]()
	}

	return &FreeList[T]{backing: backing, maxFree: maxFree}
}

// Allocate - Returns a node from the free list, or a new one from the backing allocator if the list is empty
func (F *FreeList[T]) Allocate() (p *T, err error) {
	if n := len(F.free); n > 0 {
		p = F.free[n-1]
		F.free[n-1] = nil
		F.free = F.free[:n-1]
		return
	}

	return F.backing.Allocate()
}

// Deallocate - Puts p on the free list, or hands it to the backing allocator if the list is full
func (F *FreeList[T]) Deallocate(p *T) {
	if p == nil {
		return
	}
	if len(F.free) >= F.maxFree {
		F.backing.Deallocate(p)
		return
	}

	var zero T
	*p = zero
	F.free = append(F.free, p)
}

// AllocateArray - Delegates to the backing allocator
func (F *FreeList[T]) AllocateArray(n int) (a []*T, err error) {
	return F.backing.AllocateArray(n)
}

// DeallocateArray - Delegates to the backing allocator
func (F *FreeList[T]) DeallocateArray(a []*T) {
	F.backing.DeallocateArray(a)
}

// Free - Returns the number of nodes currently waiting on the free list
func (F *FreeList[T]) Free() int {
	return len(F.free)
}
