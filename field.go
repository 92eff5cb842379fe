package retsu

import (
	"fmt"
	"reflect"
	"unsafe"
)

// MaxFields is the largest arity with a generated container type.
const MaxFields = 6

// FieldSpec describes the element type stored in one field buffer.
type FieldSpec struct {
	Type     reflect.Type
	Size     uintptr
	Align    uintptr
	Pointers bool // the GC must scan values of this type
}

// SpecOf returns the FieldSpec for T.
func SpecOf[T any]() FieldSpec {
	return specOf(reflect.TypeFor[T]())
}

func specOf(t reflect.Type) FieldSpec {
	return FieldSpec{
		Type:     t,
		Size:     t.Size(),
		Align:    uintptr(t.Align()),
		Pointers: hasPointers(t),
	}
}

// hasPointers reports whether values of t may hold references. Pointer-free
// types are relocated with a raw byte copy and need no clearing on destroy.
func hasPointers(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64, reflect.Complex64, reflect.Complex128:
		return false
	case reflect.Array:
		return t.Len() > 0 && hasPointers(t.Elem())
	case reflect.Struct:
		for i := range t.NumField() {
			if hasPointers(t.Field(i).Type) {
				return true
			}
		}
		return false
	default:
		return true
	}
}

// Layout is the ordered list of field types of one container.
type Layout struct {
	fields      []FieldSpec
	rowSize     uintptr
	pointerFree bool
}

// NewLayout builds a Layout from field specs in declaration order.
// It panics if no fields are given.
func NewLayout(fields ...FieldSpec) *Layout {
	if len(fields) == 0 {
		panic("retsu: layout needs at least one field")
	}
	l := &Layout{fields: fields, pointerFree: true}
	for _, f := range fields {
		l.rowSize += f.Size
		if f.Pointers {
			l.pointerFree = false
		}
	}
	return l
}

// Len returns the number of fields.
func (l *Layout) Len() int { return len(l.fields) }

// Field returns the spec of field i.
func (l *Layout) Field(i int) FieldSpec { return l.fields[i] }

// PointerFree reports whether no field holds references.
func (l *Layout) PointerFree() bool { return l.pointerFree }

// RowSize is the sum of the field sizes, the payload of one element.
func (l *Layout) RowSize() uintptr { return l.rowSize }

// Bytes returns the payload size of n elements, ignoring alignment padding.
// ok is false if the size does not fit in memory.
func (l *Layout) Bytes(n int) (bytes uint64, ok bool) {
	return mulSize(l.rowSize, n)
}

func (l *Layout) String() string {
	s := "("
	for i, f := range l.fields {
		if i > 0 {
			s += ", "
		}
		s += f.Type.String()
	}
	return s + ")"
}

func (l *Layout) index(t reflect.Type) int {
	for i, f := range l.fields {
		if f.Type == t {
			return i
		}
	}
	panic(fmt.Sprintf("retsu: layout %s has no field of type %s", l, t))
}

// fieldOps drives one field buffer without knowing its element type.
// Every method takes the buffer base and an element range.
type fieldOps interface {
	spec() FieldSpec
	// relocate moves n elements from src into the unconstructed buffer dst.
	relocate(dst, src unsafe.Pointer, n int)
	// move shifts n elements from src to dst inside one buffer; ranges may overlap.
	move(base unsafe.Pointer, dst, src, n int)
	// construct default-constructs [from, to).
	construct(base unsafe.Pointer, from, to int)
	// destroy ends the lifetime of live elements in [from, to).
	destroy(base unsafe.Pointer, from, to int)
	// vacate clears moved-from slots in [from, to) without running hooks.
	vacate(base unsafe.Pointer, from, to int)
}

type column[T any] struct {
	info    FieldSpec
	ctor    bool
	dtor    bool
	trivial bool // pointer-free without hooks
}

func newColumn[T any]() *column[T] {
	c := &column[T]{info: SpecOf[T]()}
	_, c.ctor = any((*T)(nil)).(Constructor)
	_, c.dtor = any((*T)(nil)).(Destructor)
	c.trivial = !c.info.Pointers && !c.ctor && !c.dtor
	return c
}

func (c *column[T]) spec() FieldSpec { return c.info }

func (c *column[T]) slice(base unsafe.Pointer, n int) []T {
	if n == 0 {
		return nil
	}
	return unsafe.Slice((*T)(base), n)
}

func (c *column[T]) relocate(dst, src unsafe.Pointer, n int) {
	if n == 0 {
		return
	}
	if !c.info.Pointers {
		memCopy(dst, src, c.info.Size*uintptr(n))
		return
	}
	copy(c.slice(dst, n), c.slice(src, n))
}

func (c *column[T]) move(base unsafe.Pointer, dst, src, n int) {
	if n == 0 || dst == src {
		return
	}
	s := c.slice(base, max(dst, src)+n)
	copy(s[dst:dst+n], s[src:src+n])
}

func (c *column[T]) construct(base unsafe.Pointer, from, to int) {
	if from >= to {
		return
	}
	s := c.slice(base, to)[from:to]
	clear(s)
	if !c.ctor {
		return
	}
	built := 0
	defer func() {
		if built != len(s) {
			c.destroySlice(s[:built])
			clear(s)
		}
	}()
	for i := range s {
		placeDefault(&s[i])
		built++
	}
}

func (c *column[T]) destroy(base unsafe.Pointer, from, to int) {
	if from >= to || c.trivial {
		return
	}
	c.destroySlice(c.slice(base, to)[from:to])
}

func (c *column[T]) destroySlice(s []T) {
	if c.dtor {
		for i := range s {
			placeDestroy(&s[i])
		}
	}
	if c.info.Pointers {
		clear(s)
	}
}

func (c *column[T]) vacate(base unsafe.Pointer, from, to int) {
	if from >= to || !c.info.Pointers {
		return
	}
	clear(c.slice(base, to)[from:to])
}

// at returns a pointer to element i of a buffer of T. No bounds check.
func at[T any](base unsafe.Pointer, i int) *T {
	var zero T
	return (*T)(unsafe.Add(base, uintptr(i)*unsafe.Sizeof(zero)))
}

// fill assigns v to elements [from, to) of a buffer of T.
func fill[T any](base unsafe.Pointer, from, to int, v T) {
	if from >= to {
		return
	}
	s := unsafe.Slice((*T)(base), to)[from:to]
	for i := range s {
		s[i] = v
	}
}

// live returns the first n elements of a buffer of T as a slice.
func live[T any](base unsafe.Pointer, n int) []T {
	if n == 0 {
		return nil
	}
	return unsafe.Slice((*T)(base), n)
}

// memCopy copies size bytes from src to dst using built-in copy for performance.
func memCopy(dst, src unsafe.Pointer, size uintptr) {
	if size == 0 {
		return
	}
	dstBytes := unsafe.Slice((*byte)(dst), size)
	srcBytes := unsafe.Slice((*byte)(src), size)
	copy(dstBytes, srcBytes)
}
