package hashindex

import "github.com/gostonefire/hashindex/alloc"

// AllocationError - Custom error to inform that a node or the bucket array could not be allocated.
// The index is always left exactly as it was before the failing call.
type AllocationError = alloc.AllocationError

// InvalidArgument - Custom error to inform that an argument was rejected, no state has been changed
type InvalidArgument struct {
	msg string
}

// Error - Used to notify that an argument is invalid
func (I InvalidArgument) Error() string {
	if I.msg == "" {
		return "invalid argument"
	}
	return I.msg
}

// Is - Makes errors.Is match any InvalidArgument regardless of message
func (I InvalidArgument) Is(target error) bool {
	_, ok := target.(InvalidArgument)
	return ok
}
