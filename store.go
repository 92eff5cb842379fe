package retsu

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"unsafe"
)

// Container is implemented by every ArrayN. It gives Select, Project and
// Column access to the field buffers of any arity.
type Container interface {
	fields() *store
}

// store is the type-erased engine shared by all arities. It owns one buffer
// per field, all sized to capacity, of which [0, size) are live.
type store struct {
	layout   *Layout
	ops      []fieldOps
	block    Block
	size     int
	capacity int
	alloc    Allocator
	growth   GrowthPolicy
	log      *slog.Logger
}

func (s *store) init(opts []Option, ops ...fieldOps) {
	if len(ops) > MaxFields {
		panic(fmt.Sprintf("retsu: %d fields exceed the maximum of %d", len(ops), MaxFields))
	}
	specs := make([]FieldSpec, len(ops))
	for k, op := range ops {
		specs[k] = op.spec()
	}
	o := buildOptions(opts)
	*s = store{
		layout: NewLayout(specs...),
		ops:    ops,
		alloc:  o.alloc,
		growth: o.growth,
		log:    o.logger,
	}
}

func (s *store) fields() *store { return s }

// Len returns the number of live elements.
func (s *store) Len() int { return s.size }

// Cap returns the number of elements the buffers can hold without
// reallocating.
func (s *store) Cap() int { return s.capacity }

// Empty reports whether Len is zero.
func (s *store) Empty() bool { return s.size == 0 }

// Layout returns the field layout.
func (s *store) Layout() *Layout { return s.layout }

// Allocator returns the allocator adapter the buffers come from.
func (s *store) Allocator() Allocator { return s.alloc }

// base returns the buffer of field k, nil while nothing is allocated.
func (s *store) base(k int) unsafe.Pointer {
	if s.block.Fields == nil {
		return nil
	}
	return s.block.Fields[k]
}

// Reserve grows the capacity to exactly n if n exceeds it. Existing elements
// keep their values; buffers, views and iterators are invalidated.
func (s *store) Reserve(n int) error {
	if n <= s.capacity {
		return nil
	}
	return s.reallocate(n)
}

// Resize sets the length to n. Growing default-constructs the new elements,
// reallocating to exactly n if it exceeds the capacity. Shrinking destroys
// the trailing elements and keeps the capacity.
func (s *store) Resize(n int) error {
	if n < 0 {
		panic("retsu: negative length")
	}
	if n <= s.size {
		s.truncate(n)
		return nil
	}
	if err := s.Reserve(n); err != nil {
		return err
	}
	s.constructRows(s.size, n)
	s.size = n
	return nil
}

// resizeWith is Resize with the new elements assigned by fill.
func (s *store) resizeWith(n int, fill func(from, to int)) error {
	if n < 0 {
		panic("retsu: negative length")
	}
	if n <= s.size {
		s.truncate(n)
		return nil
	}
	if err := s.Reserve(n); err != nil {
		return err
	}
	fill(s.size, n)
	s.size = n
	return nil
}

// Clear destroys every element. The capacity is kept.
func (s *store) Clear() {
	s.truncate(0)
}

// Release destroys every element and returns the buffers to the allocator.
func (s *store) Release() {
	s.Clear()
	if s.capacity == 0 {
		return
	}
	s.alloc.Deallocate(s.layout, s.block, s.capacity)
	s.debug("release", slog.Int("capacity", s.capacity))
	s.block, s.capacity = Block{}, 0
}

// Erase removes the element at pos and returns pos, the index of the element
// that followed it.
func (s *store) Erase(pos int) int {
	if debug {
		assertf(pos >= 0 && pos < s.size, "Erase position out of range")
	}
	return s.EraseRange(pos, pos+1)
}

// EraseRange removes the elements in [first, last) and returns first.
func (s *store) EraseRange(first, last int) int {
	if debug {
		assertf(first >= 0 && first <= last && last <= s.size, "EraseRange bounds out of range")
	}
	n := last - first
	if n <= 0 {
		return first
	}
	for k, op := range s.ops {
		b := s.base(k)
		op.destroy(b, first, last)
		op.move(b, first, last, s.size-last)
		op.vacate(b, s.size-n, s.size)
	}
	s.size -= n
	return first
}

// PopBack destroys the last element.
func (s *store) PopBack() {
	if debug {
		assertf(s.size > 0, "PopBack on empty container")
	}
	s.truncate(s.size - 1)
}

// truncate destroys the elements in [n, size).
func (s *store) truncate(n int) {
	if n >= s.size {
		return
	}
	for k, op := range s.ops {
		op.destroy(s.base(k), n, s.size)
	}
	s.size = n
}

// growFor makes room for extra more elements using the growth policy.
func (s *store) growFor(extra int) error {
	if extra > math.MaxInt-s.size {
		return newAllocError(s.layout, math.MaxInt, errTooLarge)
	}
	required := s.size + extra
	if required <= s.capacity {
		return nil
	}
	return s.reallocate(nextCapacity(s.growth, s.capacity, required))
}

// reallocate moves the live elements into a new block of n elements. The
// old block is vacated then deallocated only after the new one is in hand,
// so on error the container is unchanged.
func (s *store) reallocate(n int) error {
	blk, err := s.alloc.Allocate(s.layout, n)
	if err != nil {
		if !errors.Is(err, ErrAllocation) {
			err = newAllocError(s.layout, n, err)
		}
		s.log.LogAttrs(context.Background(), slog.LevelWarn, "retsu: allocation failed",
			slog.String("layout", s.layout.String()),
			slog.Int("from", s.capacity),
			slog.Int("to", n),
			slog.Any("error", err))
		return err
	}
	if len(blk.Fields) != len(s.ops) {
		panic(fmt.Sprintf("retsu: allocator returned %d buffers for %d fields", len(blk.Fields), len(s.ops)))
	}
	for k, op := range s.ops {
		old := s.base(k)
		op.relocate(blk.Fields[k], old, s.size)
		op.vacate(old, 0, s.size)
	}
	old, oldCap := s.block, s.capacity
	s.block, s.capacity = blk, n
	if oldCap > 0 {
		s.alloc.Deallocate(s.layout, old, oldCap)
	}
	s.debug("reallocate",
		slog.Int("from", oldCap),
		slog.Int("to", n),
		slog.Int("size", s.size))
	return nil
}

func (s *store) debug(msg string, attrs ...slog.Attr) {
	ctx := context.Background()
	if !s.log.Enabled(ctx, slog.LevelDebug) {
		return
	}
	attrs = append(attrs, slog.String("layout", s.layout.String()))
	s.log.LogAttrs(ctx, slog.LevelDebug, "retsu: "+msg, attrs...)
}

// openGap makes room for count elements at pos by shifting [pos, size)
// right. The caller fills [pos, pos+count) and then adds count to size.
func (s *store) openGap(pos, count int) error {
	if debug {
		assertf(pos >= 0 && pos <= s.size, "Insert position out of range")
	}
	if count < 0 {
		panic("retsu: negative insert count")
	}
	if err := s.growFor(count); err != nil {
		return err
	}
	for k, op := range s.ops {
		op.move(s.base(k), pos+count, pos, s.size-pos)
	}
	return nil
}

// constructRows default-constructs [from, to) in every field. If a field
// panics, the fields already constructed for the range are destroyed before
// the panic continues.
func (s *store) constructRows(from, to int) {
	k := 0
	defer func() {
		if k == len(s.ops) {
			return
		}
		for j := range k {
			s.ops[j].destroy(s.base(j), from, to)
		}
	}()
	for ; k < len(s.ops); k++ {
		s.ops[k].construct(s.base(k), from, to)
	}
}

// abandon undoes a partially placed row i: fields [0, built) are destroyed
// and the rest cleared.
func (s *store) abandon(i, built int) {
	for k, op := range s.ops {
		if k < built {
			op.destroy(s.base(k), i, i+1)
		} else {
			op.vacate(s.base(k), i, i+1)
		}
	}
}

// pushZero appends one default-constructed element.
func (s *store) pushZero() error {
	if err := s.growFor(1); err != nil {
		return err
	}
	s.constructRows(s.size, s.size+1)
	s.size++
	return nil
}

// cloneInto copies s into a fresh store with the same layout, allocator,
// growth policy and logger, sized to the capacity of s.
func (s *store) cloneInto(dst *store) error {
	*dst = store{
		layout: s.layout,
		ops:    s.ops,
		alloc:  s.alloc,
		growth: s.growth,
		log:    s.log,
	}
	if s.capacity == 0 {
		return nil
	}
	if err := dst.reallocate(s.capacity); err != nil {
		return err
	}
	dst.copyRows(s)
	return nil
}

// assign replaces the elements of s with copies of those of src. Room is
// made before anything is destroyed, so on error s is unchanged.
func (s *store) assign(src *store) error {
	if s == src {
		return nil
	}
	if err := s.Reserve(src.size); err != nil {
		return err
	}
	s.Clear()
	s.copyRows(src)
	return nil
}

func (s *store) copyRows(src *store) {
	for k, op := range s.ops {
		op.relocate(s.base(k), src.base(k), src.size)
	}
	s.size = src.size
}

// moveFrom releases s and takes over the buffers of src, leaving src empty
// with capacity 0. s adopts the allocator that owns the buffers.
func (s *store) moveFrom(src *store) {
	if s == src {
		return
	}
	s.Release()
	s.block, s.size, s.capacity, s.alloc = src.block, src.size, src.capacity, src.alloc
	src.block, src.size, src.capacity = Block{}, 0, 0
}

func (s *store) swap(o *store) {
	*s, *o = *o, *s
}

// column returns the buffer of field k after checking it holds values of
// spec's type.
func (s *store) column(k int, spec FieldSpec) unsafe.Pointer {
	if k < 0 || k >= len(s.ops) {
		panic(fmt.Sprintf("retsu: field index %d out of range for layout %s", k, s.layout))
	}
	if got := s.layout.fields[k].Type; got != spec.Type {
		panic(fmt.Sprintf("retsu: field %d of layout %s is %s, not %s", k, s.layout, got, spec.Type))
	}
	return s.base(k)
}

// find returns the buffer of the first field holding values of spec's type.
func (s *store) find(spec FieldSpec) unsafe.Pointer {
	return s.base(s.layout.index(spec.Type))
}
