package retsu

import (
	"errors"
	"fmt"
	"math"
	"math/bits"
	"reflect"
	"runtime"
	"strconv"
	"unsafe"

	"golang.org/x/sys/cpu"
)

// errTooLarge is the cause reported when a request exceeds addressable memory.
var errTooLarge = errors.New("size exceeds addressable memory")

// cacheLine is the region alignment used by SinglePass for raw blocks.
const cacheLine = unsafe.Sizeof(cpu.CacheLinePad{})

// Block is one allocation made for a Layout: a buffer base per field, in
// layout order, plus the backing storage that keeps them reachable.
type Block struct {
	Fields []unsafe.Pointer
	Owner  any
}

// Allocator hands out and takes back the buffers of every field at once.
// Allocate returns buffers for n elements of each field, zeroed. Deallocate
// receives a block previously returned by Allocate for the same n.
//
// Implementations should return errors matching ErrAllocation.
type Allocator interface {
	Allocate(l *Layout, n int) (Block, error)
	Deallocate(l *Layout, b Block, n int)
}

// FieldAllocator allocates the buffer of a single field.
type FieldAllocator interface {
	AllocateField(f FieldSpec, n int) (unsafe.Pointer, error)
	DeallocateField(f FieldSpec, p unsafe.Pointer, n int)
}

// HeapAllocator allocates field buffers on the Go heap.
type HeapAllocator struct{}

// AllocateField allocates a zeroed buffer of n elements of f.Type.
func (HeapAllocator) AllocateField(f FieldSpec, n int) (p unsafe.Pointer, err error) {
	if _, ok := mulSize(f.Size, n); !ok {
		return nil, errTooLarge
	}
	defer func() {
		if r := recover(); r != nil {
			re, ok := r.(runtime.Error)
			if !ok {
				panic(r)
			}
			p, err = nil, re
		}
	}()
	return reflect.MakeSlice(reflect.SliceOf(f.Type), n, n).UnsafePointer(), nil
}

// DeallocateField is a no-op; the GC reclaims the buffer once unreferenced.
func (HeapAllocator) DeallocateField(FieldSpec, unsafe.Pointer, int) {}

// PerField allocates each field independently, one FieldAllocator per field.
// Fields without an allocator use HeapAllocator.
type PerField struct {
	fields []FieldAllocator
}

// NewPerField returns a PerField adapter; allocs[i] serves field i.
func NewPerField(allocs ...FieldAllocator) *PerField {
	return &PerField{fields: allocs}
}

func (p *PerField) field(i int) FieldAllocator {
	if p != nil && i < len(p.fields) && p.fields[i] != nil {
		return p.fields[i]
	}
	return HeapAllocator{}
}

// Allocate performs one allocation per field. On failure the buffers
// already obtained are returned to their allocators.
func (p *PerField) Allocate(l *Layout, n int) (Block, error) {
	b := Block{Fields: make([]unsafe.Pointer, l.Len())}
	for i, f := range l.fields {
		ptr, err := p.field(i).AllocateField(f, n)
		if err != nil {
			for j := range i {
				p.field(j).DeallocateField(l.fields[j], b.Fields[j], n)
			}
			return Block{}, newAllocError(l, n, fmt.Errorf("field %d (%s): %w", i, f.Type, err))
		}
		b.Fields[i] = ptr
	}
	return b, nil
}

// Deallocate returns every field buffer to its allocator.
func (p *PerField) Deallocate(l *Layout, b Block, n int) {
	for i, f := range l.fields {
		p.field(i).DeallocateField(f, b.Fields[i], n)
	}
}

// SinglePass makes one allocation per request and slices it into per-field
// regions by cumulative, alignment-aware offsets.
//
// Pointer-free layouts get one raw byte block with every region aligned to
// Align (the CPU cache line if zero). Layouts holding references get one
// typed block built from per-field arrays so the GC can scan it; its row
// count is rounded up to a size class, so it may hold up to a quarter more
// rows than requested.
type SinglePass struct {
	Align uintptr
}

func (s SinglePass) align() uintptr {
	if s.Align == 0 {
		return cacheLine
	}
	return s.Align
}

// Allocate performs a single allocation holding n elements of every field.
func (s SinglePass) Allocate(l *Layout, n int) (Block, error) {
	if !l.pointerFree {
		return s.allocateTyped(l, n)
	}
	align := s.align()
	offsets, total, ok := regions(l, n, align)
	if !ok {
		return Block{}, newAllocError(l, n, errTooLarge)
	}
	buf, base, err := alignedBytes(total, align)
	if err != nil {
		return Block{}, newAllocError(l, n, err)
	}
	b := Block{Fields: make([]unsafe.Pointer, l.Len()), Owner: buf}
	for i, off := range offsets {
		b.Fields[i] = unsafe.Add(base, off)
	}
	return b, nil
}

func (s SinglePass) allocateTyped(l *Layout, n int) (b Block, err error) {
	if _, ok := l.Bytes(n); !ok {
		return Block{}, newAllocError(l, n, errTooLarge)
	}
	rows := typedRows(n)
	if _, ok := l.Bytes(rows); !ok {
		return Block{}, newAllocError(l, n, errTooLarge)
	}
	defer func() {
		if r := recover(); r != nil {
			re, ok := r.(runtime.Error)
			if !ok {
				panic(r)
			}
			b, err = Block{}, newAllocError(l, n, re)
		}
	}()
	fields := make([]reflect.StructField, l.Len())
	for i, f := range l.fields {
		fields[i] = reflect.StructField{
			Name: "F" + strconv.Itoa(i),
			Type: reflect.ArrayOf(rows, f.Type),
		}
	}
	// MakeSlice checks the size against the runtime limit and panics with a
	// runtime.Error; reflect.New would abort the process instead.
	v := reflect.MakeSlice(reflect.SliceOf(reflect.StructOf(fields)), 1, 1).Index(0)
	b = Block{Fields: make([]unsafe.Pointer, l.Len()), Owner: v.Addr().Interface()}
	for i := range fields {
		b.Fields[i] = v.Field(i).Addr().UnsafePointer()
	}
	return b, nil
}

// typedRows rounds n up to a size class so that typed blocks reuse a bounded
// set of reflect types: exact up to 8, then four classes per power of two.
func typedRows(n int) int {
	if n <= 8 {
		return n
	}
	g := 1 << (bits.Len(uint(n-1)) - 3)
	return (n + g - 1) &^ (g - 1)
}

// Deallocate is a no-op; the block is reclaimed once no field refers to it.
func (SinglePass) Deallocate(*Layout, Block, int) {}

// regions computes the offset of every field region for n elements and the
// total block length.
func regions(l *Layout, n int, align uintptr) (offsets []uintptr, total uintptr, ok bool) {
	offsets = make([]uintptr, l.Len())
	var off uint64
	for i, f := range l.fields {
		a := uint64(max(f.Align, align))
		off = (off + a - 1) / a * a
		offsets[i] = uintptr(off)
		sz, ok := mulSize(f.Size, n)
		if !ok {
			return nil, 0, false
		}
		var carry uint64
		off, carry = bits.Add64(off, sz, 0)
		if carry != 0 || off > maxBlockBytes {
			return nil, 0, false
		}
	}
	return offsets, uintptr(off), true
}

// alignedBytes allocates size bytes whose start is a multiple of align.
// The slack past the aligned start keeps a zero-length trailing region
// inside the allocation.
func alignedBytes(size, align uintptr) (buf []byte, base unsafe.Pointer, err error) {
	defer func() {
		if r := recover(); r != nil {
			re, ok := r.(runtime.Error)
			if !ok {
				panic(r)
			}
			buf, base, err = nil, nil, re
		}
	}()
	buf = make([]byte, size+align)
	start := unsafe.Pointer(unsafe.SliceData(buf))
	offset := (align - uintptr(start)%align) % align
	return buf, unsafe.Add(start, offset), nil
}

// maxBlockBytes bounds a single request.
const maxBlockBytes = uint64(math.MaxInt) >> 1

func mulSize(size uintptr, n int) (uint64, bool) {
	if n < 0 {
		return 0, false
	}
	hi, lo := bits.Mul64(uint64(size), uint64(n))
	if hi != 0 || lo > maxBlockBytes {
		return 0, false
	}
	return lo, true
}

func newAllocError(l *Layout, n int, err error) *AllocError {
	bytes, _ := l.Bytes(n)
	return &AllocError{Fields: l.Len(), Count: n, Bytes: bytes, Err: err}
}
