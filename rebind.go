package retsu

import (
	"reflect"
	"unsafe"
)

// AllocateOf allocates a buffer of n values of T from a FieldAllocator that
// may have been set up for a different field, and returns it as a slice.
func AllocateOf[T any](a FieldAllocator, n int) ([]T, error) {
	if n == 0 {
		return nil, nil
	}
	p, err := a.AllocateField(SpecOf[T](), n)
	if err != nil {
		return nil, err
	}
	return unsafe.Slice((*T)(p), n), nil
}

// DeallocateOf returns a buffer obtained from AllocateOf.
func DeallocateOf[T any](a FieldAllocator, s []T) {
	if cap(s) == 0 {
		return
	}
	a.DeallocateField(SpecOf[T](), unsafe.Pointer(unsafe.SliceData(s)), cap(s))
}

// ElemType returns the element type behind a pointer or slice type, or T
// itself otherwise.
func ElemType[T any]() reflect.Type {
	t := reflect.TypeFor[T]()
	switch t.Kind() {
	case reflect.Pointer, reflect.Slice, reflect.Array:
		return t.Elem()
	}
	return t
}
