package alloc

// AllocationError - Custom error to inform that an allocator could not provide the requested storage
type AllocationError struct {
	msg string
}

// NewAllocationError - Returns an AllocationError carrying the given message
func NewAllocationError(msg string) AllocationError {
	return AllocationError{msg: msg}
}

// Error - Used to notify that storage is exhausted
func (E AllocationError) Error() string {
	if E.msg == "" {
		return "allocation failed"
	}
	return E.msg
}

// Is - Makes errors.Is match any AllocationError regardless of message
func (E AllocationError) Is(target error) bool {
	_, ok := target.(AllocationError)
	return ok
}
