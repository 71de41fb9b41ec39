package alloc

import (
	"fmt"
	"github.com/gostonefire/hashindex/interfaces"
)

// Limited - Allocator that wraps another allocator and enforces budgets on the number of live nodes and the total
// number of live array slots. Once a budget would be exceeded it fails with an AllocationError, which makes it
// useful both for capping memory and for exercising allocation failure paths.
type Limited[T any] struct {
	backing   interfaces.Allocator[T]
	maxNodes  int
	maxSlots  int
	liveNodes int
	liveSlots int
}

// NewLimited - Returns a pointer to a new Limited allocator
//   - backing is the allocator that does the actual work, nil gives a Heap allocator
//   - maxNodes is the max number of nodes that can be live at the same time, a negative value means no limit
//   - maxSlots is the max number of array slots that can be live at the same time, a negative value means no limit
func NewLimited[T any](backing interfaces.Allocator[T], maxNodes, maxSlots int) *Limited[T] {
	if backing == nil {
		backing = NewHeap[T]()
	}

	return &Limited[T]{backing: backing, maxNodes: maxNodes, maxSlots: maxSlots}
}

// Allocate - Returns a new zero valued T unless the node budget is spent
func (L *Limited[T]) Allocate() (p *T, err error) {
	if L.maxNodes >= 0 && L.liveNodes >= L.maxNodes {
		err = NewAllocationError(fmt.Sprintf("node budget of %d exhausted", L.maxNodes))
		return
	}

	p, err = L.backing.Allocate()
	if err != nil {
		return
	}
	L.liveNodes++

	return
}

// Deallocate - Hands p back to the backing allocator and returns it to the node budget
func (L *Limited[T]) Deallocate(p *T) {
	if p == nil {
		return
	}
	L.backing.Deallocate(p)
	L.liveNodes--
}

// AllocateArray - Returns a slice of n nil pointers unless the slot budget is spent
func (L *Limited[T]) AllocateArray(n int) (a []*T, err error) {
	if L.maxSlots >= 0 && L.liveSlots+n > L.maxSlots {
		err = NewAllocationError(fmt.Sprintf("array of length %d exceeds slot budget of %d", n, L.maxSlots))
		return
	}

	a, err = L.backing.AllocateArray(n)
	if err != nil {
		return
	}
	L.liveSlots += n

	return
}

// DeallocateArray - Hands a back to the backing allocator and returns its length to the slot budget
func (L *Limited[T]) DeallocateArray(a []*T) {
	if a == nil {
		return
	}
	L.backing.DeallocateArray(a)
	L.liveSlots -= len(a)
}

// LiveNodes - Returns the number of nodes allocated and not yet deallocated
func (L *Limited[T]) LiveNodes() int {
	return L.liveNodes
}

// LiveSlots - Returns the number of array slots allocated and not yet deallocated
func (L *Limited[T]) LiveSlots() int {
	return L.liveSlots
}

// SetMaxNodes - Changes the node budget, a negative value means no limit
func (L *Limited[T]) SetMaxNodes(maxNodes int) {
	L.maxNodes = maxNodes
}

// SetMaxSlots - Changes the slot budget, a negative value means no limit
func (L *Limited[T]) SetMaxSlots(maxSlots int) {
	L.maxSlots = maxSlots
}
