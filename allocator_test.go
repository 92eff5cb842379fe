package retsu

import (
	"errors"
	"math"
	"runtime"
	"strconv"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type vec2 struct{ X, Y float32 }

// countingAllocator counts field allocations and can be told to fail.
type countingAllocator struct {
	allocs   int
	frees    int
	failNext bool
}

var errInjected = errors.New("injected failure")

func (c *countingAllocator) AllocateField(f FieldSpec, n int) (unsafe.Pointer, error) {
	if c.failNext {
		c.failNext = false
		return nil, errInjected
	}
	c.allocs++
	return HeapAllocator{}.AllocateField(f, n)
}

func (c *countingAllocator) DeallocateField(FieldSpec, unsafe.Pointer, int) {
	c.frees++
}

// countingBlocks counts whole-block requests made by a container.
type countingBlocks struct {
	next   Allocator
	allocs int
	frees  int
}

func (c *countingBlocks) Allocate(l *Layout, n int) (Block, error) {
	c.allocs++
	return c.next.Allocate(l, n)
}

func (c *countingBlocks) Deallocate(l *Layout, b Block, n int) {
	c.frees++
	c.next.Deallocate(l, b, n)
}

// go test -run ^TestPerFieldAllocationCount$ . -count 1
func TestPerFieldAllocationCount(t *testing.T) {
	f1, f2, f3 := &countingAllocator{}, &countingAllocator{}, &countingAllocator{}
	a := MakeArray3[int, string, float64](WithAllocator(NewPerField(f1, f2, f3)))

	require.NoError(t, a.Reserve(10))
	assert.Equal(t, 1, f1.allocs)
	assert.Equal(t, 1, f2.allocs)
	assert.Equal(t, 1, f3.allocs)

	require.NoError(t, a.Reserve(20))
	assert.Equal(t, 2, f1.allocs)
	assert.Equal(t, 2, f3.allocs)
	assert.Equal(t, 1, f1.frees)

	a.Release()
	assert.Equal(t, 2, f3.frees)
}

// go test -run ^TestPerFieldRollback$ . -count 1
func TestPerFieldRollback(t *testing.T) {
	f1, f2 := &countingAllocator{}, &countingAllocator{failNext: true}
	a := MakeArray2[int, string](WithAllocator(NewPerField(f1, f2)))

	err := a.Reserve(8)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrAllocation)
	assert.ErrorIs(t, err, errInjected)
	var ae *AllocError
	require.ErrorAs(t, err, &ae)
	assert.Equal(t, 8, ae.Count)
	assert.Equal(t, 2, ae.Fields)

	// The first field's buffer was handed back.
	assert.Equal(t, 1, f1.allocs)
	assert.Equal(t, 1, f1.frees)
	assert.Equal(t, 0, a.Cap())
	assert.Equal(t, 0, a.Len())

	require.NoError(t, a.Reserve(8))
	assert.Equal(t, 8, a.Cap())
}

// go test -run ^TestSinglePassOneAllocation$ . -count 1
func TestSinglePassOneAllocation(t *testing.T) {
	for _, name := range []string{"PointerFree", "Typed"} {
		t.Run(name, func(t *testing.T) {
			blocks := &countingBlocks{next: SinglePass{}}
			var s *store
			if name == "PointerFree" {
				a := MakeArray3[int64, float32, byte](WithAllocator(blocks))
				require.NoError(t, a.Reserve(100))
				s = a.fields()
			} else {
				a := MakeArray3[int64, string, byte](WithAllocator(blocks))
				require.NoError(t, a.Reserve(100))
				s = a.fields()
			}
			assert.Equal(t, 1, blocks.allocs)
			assert.Equal(t, name == "PointerFree", s.layout.PointerFree())

			// Regions are ordered, disjoint and aligned.
			for k := range s.layout.Len() {
				f := s.layout.Field(k)
				assert.Zero(t, uintptr(s.base(k))%f.Align, "field %d", k)
				if k > 0 {
					prev := s.layout.Field(k - 1)
					end := uintptr(s.base(k-1)) + prev.Size*100
					assert.LessOrEqual(t, end, uintptr(s.base(k)), "field %d overlaps", k)
				}
			}
			s.Release()
			assert.Equal(t, 1, blocks.frees)
		})
	}
}

// go test -run ^TestSinglePassCacheLineRegions$ . -count 1
func TestSinglePassCacheLineRegions(t *testing.T) {
	l := NewLayout(SpecOf[byte](), SpecOf[int32](), SpecOf[uint16]())
	b, err := SinglePass{}.Allocate(l, 3)
	require.NoError(t, err)
	require.Len(t, b.Fields, 3)
	for k, p := range b.Fields {
		assert.Zero(t, uintptr(p)%cacheLine, "field %d", k)
	}

	b, err = SinglePass{Align: 8}.Allocate(l, 3)
	require.NoError(t, err)
	assert.Equal(t, uintptr(8), uintptr(b.Fields[1])-uintptr(b.Fields[0]))
	assert.Equal(t, uintptr(24), uintptr(b.Fields[2])-uintptr(b.Fields[0]))
}

// go test -run ^TestRegions$ . -count 1
func TestRegions(t *testing.T) {
	l := NewLayout(SpecOf[byte](), SpecOf[int64](), SpecOf[int16]())
	offsets, total, ok := regions(l, 5, 1)
	require.True(t, ok)
	assert.Equal(t, []uintptr{0, 8, 48}, offsets)
	assert.Equal(t, uintptr(58), total)

	_, _, ok = regions(l, math.MaxInt, 1)
	assert.False(t, ok)
}

// go test -run ^TestAllocationTooLarge$ . -count 1
func TestAllocationTooLarge(t *testing.T) {
	if strconv.IntSize < 64 {
		t.Skip("sizes assume a 64-bit address space")
	}
	for _, st := range []Strategy{StrategySinglePass, StrategyPerField} {
		t.Run(st.String(), func(t *testing.T) {
			a := MakeArray2[int64, string](WithStrategy(st))
			require.NoError(t, a.PushBack(1, "a"))
			for _, n := range []int{math.MaxInt / 4, math.MaxInt >> 7} {
				err := a.Reserve(n)
				require.Error(t, err, "reserve %d", n)
				assert.ErrorIs(t, err, ErrAllocation)
				assert.Equal(t, 1, a.Len())
				assert.Equal(t, 2, a.Cap())
				assert.Equal(t, "a", *a.Get2(0))
			}
		})
	}

	_, err := HeapAllocator{}.AllocateField(SpecOf[int64](), math.MaxInt)
	assert.ErrorIs(t, err, errTooLarge)
}

// go test -run ^TestTypedRows$ . -count 1
func TestTypedRows(t *testing.T) {
	for n, want := range map[int]int{0: 0, 1: 1, 8: 8, 9: 10, 16: 16, 17: 20, 100: 112, 1000: 1024, 1025: 1280} {
		assert.Equal(t, want, typedRows(n), "n=%d", n)
	}

	classes := map[int]bool{}
	for n := range 100_000 {
		r := typedRows(n)
		require.GreaterOrEqual(t, r, n)
		require.LessOrEqual(t, r-n, max(n/4, 1))
		classes[r] = true
	}
	assert.Less(t, len(classes), 80)
}

// go test -run ^TestSinglePassExactGrowthRelease$ . -count 1
func TestSinglePassExactGrowthRelease(t *testing.T) {
	var before, after runtime.MemStats
	runtime.GC()
	runtime.ReadMemStats(&before)

	a := MakeArray2[int64, string](WithStrategy(StrategySinglePass), WithGrowth(ExactGrowth))
	for i := range 10_000 {
		require.NoError(t, a.PushBack(int64(i), "x"))
	}
	assert.Equal(t, 10_000, a.Cap())
	assert.Equal(t, "x", *a.Get2(9_999))
	a.Release()

	runtime.GC()
	runtime.GC()
	runtime.ReadMemStats(&after)
	kept := int64(after.HeapAlloc) - int64(before.HeapAlloc)
	assert.Less(t, kept, int64(4<<20), "heap kept after release: %d bytes", kept)
}

// go test -run ^TestBudget$ . -count 1
func TestBudget(t *testing.T) {
	budget := NewBudget(NewPerField(), 160)
	a := MakeArray2[int64, int64](WithAllocator(budget))

	require.NoError(t, a.Reserve(10))
	assert.Equal(t, int64(160), budget.Used())
	assert.Equal(t, int64(160), budget.Limit())

	err := a.Reserve(11)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrAllocation)
	assert.ErrorIs(t, err, ErrBudgetExceeded)
	assert.Equal(t, 10, a.Cap())

	// A second container sharing the budget is refused too.
	b := MakeArray[int64](WithAllocator(budget))
	assert.ErrorIs(t, b.PushBack(1), ErrBudgetExceeded)

	a.Release()
	assert.Zero(t, budget.Used())
	require.NoError(t, b.PushBack(1))
	assert.Equal(t, int64(16), budget.Used())
}

// go test -run ^TestWithMemoryLimit$ . -count 1
func TestWithMemoryLimit(t *testing.T) {
	a := MakeArray2[int32, int32](WithMemoryLimit(64))
	for i := range 6 {
		require.NoError(t, a.PushBack(int32(i), 0))
	}
	// Growing from 6 to 14 elements needs 112 bytes.
	err := a.PushBack(6, 0)
	assert.ErrorIs(t, err, ErrAllocation)
	assert.Equal(t, 6, a.Len())

	budget, ok := a.Allocator().(*Budget)
	require.True(t, ok)
	assert.Equal(t, int64(48), budget.Used())
}

// go test -run ^TestUnlimitedBudget$ . -count 1
func TestUnlimitedBudget(t *testing.T) {
	budget := NewBudget(nil, 0)
	a := MakeArray[int64](WithAllocator(budget))
	require.NoError(t, a.Reserve(1000))
	assert.Equal(t, int64(8000), budget.Used())
	assert.Zero(t, budget.Limit())
}

// go test -run ^TestAllocateOf$ . -count 1
func TestAllocateOf(t *testing.T) {
	var alloc FieldAllocator = &countingAllocator{}
	s, err := AllocateOf[vec2](alloc, 4)
	require.NoError(t, err)
	require.Len(t, s, 4)
	s[3].X = 1
	DeallocateOf(alloc, s)
	assert.Equal(t, 1, alloc.(*countingAllocator).frees)

	empty, err := AllocateOf[int](alloc, 0)
	require.NoError(t, err)
	assert.Nil(t, empty)

	assert.Equal(t, SpecOf[int]().Type, ElemType[*int]())
	assert.Equal(t, SpecOf[string]().Type, ElemType[[]string]())
	assert.Equal(t, SpecOf[vec2]().Type, ElemType[vec2]())
}

// go test -run ^TestLayout$ . -count 1
func TestLayout(t *testing.T) {
	l := NewLayout(SpecOf[int32](), SpecOf[string](), SpecOf[[2]byte]())
	assert.Equal(t, 3, l.Len())
	assert.False(t, l.PointerFree())
	assert.Equal(t, uintptr(4+16+2), l.RowSize())
	assert.Equal(t, "(int32, string, [2]uint8)", l.String())

	bytes, ok := l.Bytes(10)
	assert.True(t, ok)
	assert.Equal(t, uint64(220), bytes)
	_, ok = l.Bytes(math.MaxInt)
	assert.False(t, ok)

	assert.Panics(t, func() { NewLayout() })
	assert.PanicsWithValue(t, "retsu: layout (int32, string, [2]uint8) has no field of type float64", func() {
		l.index(SpecOf[float64]().Type)
	})

	assert.False(t, SpecOf[vec2]().Pointers)
	assert.True(t, SpecOf[*vec2]().Pointers)
	assert.True(t, SpecOf[struct {
		A int
		B []int
	}]().Pointers)
	assert.False(t, SpecOf[[0]*int]().Pointers)
}
