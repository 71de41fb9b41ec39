package interfaces

// Allocator - Interface that permits an implementation using the hash index to supply its own memory management for
// index nodes and for the bucket array. The index itself constructs values in place on the nodes it gets and
// destroys them (sets them to their zero value) before handing them back, so an allocator only deals with raw storage.
type Allocator[T any] interface {
	// Allocate - Returns a pointer to a zero valued T.
	// It returns an error of type alloc.AllocationError if no storage is available.
	Allocate() (p *T, err error)

	// Deallocate - Hands back storage earlier returned by Allocate. The value pointed to is already destroyed.
	Deallocate(p *T)

	// AllocateArray - Returns a slice of length n where every slot is nil.
	// It returns an error of type alloc.AllocationError if no storage is available.
	AllocateArray(n int) (a []*T, err error)

	// DeallocateArray - Hands back a slice earlier returned by AllocateArray.
	DeallocateArray(a []*T)
}
