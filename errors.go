package retsu

import (
	"errors"
	"fmt"
)

var (
	// ErrAllocation is returned when an allocator cannot satisfy a request.
	// The triggering operation has no effect on the container.
	ErrAllocation = errors.New("retsu: allocation failed")
	// ErrOutOfRange is returned by bounds-checked accessors.
	ErrOutOfRange = errors.New("retsu: index out of range")
	// ErrInvalidConfig is returned when a Config cannot be turned into options.
	ErrInvalidConfig = errors.New("retsu: invalid config")
)

// RangeError reports a bounds-checked access outside [0, Len).
type RangeError struct {
	Index int
	Len   int
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("retsu: index %d out of range [0, %d)", e.Index, e.Len)
}

// Is reports whether target is ErrOutOfRange.
func (e *RangeError) Is(target error) bool {
	return target == ErrOutOfRange
}

// AllocError describes a failed allocation of n elements for a layout.
type AllocError struct {
	Fields int    // number of field buffers requested
	Count  int    // element count requested
	Bytes  uint64 // total bytes requested, 0 if it overflowed
	Err    error  // underlying cause
}

func (e *AllocError) Error() string {
	if e.Bytes == 0 {
		return fmt.Sprintf("retsu: allocating %d elements x %d fields: %v", e.Count, e.Fields, e.Err)
	}
	return fmt.Sprintf("retsu: allocating %d elements x %d fields (%d bytes): %v", e.Count, e.Fields, e.Bytes, e.Err)
}

func (e *AllocError) Unwrap() error {
	return e.Err
}

// Is reports whether target is ErrAllocation, so every AllocError matches it
// regardless of the underlying cause.
func (e *AllocError) Is(target error) bool {
	return target == ErrAllocation
}

func checkIndex(i, n int) error {
	if uint(i) >= uint(n) {
		return &RangeError{Index: i, Len: n}
	}
	return nil
}
