package cv

import "fmt"

// Array is a live handle onto a Value holding array storage. The handle
// stays valid across appends, but pointers obtained from it may be
// invalidated when the array grows.
type Array struct {
	v *Value
}

func (a Array) Len() int {
	return len(a.v.arr)
}

// At is bounds-checked element access; an index outside the array wraps
// ErrOutOfRange.
func (a Array) At(i int) (*Value, error) {
	if i < 0 || i >= len(a.v.arr) {
		return nil, fmt.Errorf("index %d of array with length %d: %w",
			i, len(a.v.arr), ErrOutOfRange)
	}
	return &a.v.arr[i], nil
}

// Append adds a Null element built from the owning value's allocator
// and returns it for assignment.
func (a Array) Append() *Value {
	a.v.arr = appendValue(a.v.alloc, a.v.arr, Value{alloc: a.v.alloc})
	return &a.v.arr[len(a.v.arr)-1]
}
