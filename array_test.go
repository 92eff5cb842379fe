package retsu_test

import (
	"errors"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edwinsyarief/retsu"
)

// --- Test Fields ---
type Position struct{ X, Y float32 }
type Velocity struct{ VX, VY float32 }
type Name struct{ Value string }

var strategies = []struct {
	name string
	opt  retsu.Option
}{
	{"SinglePass", retsu.WithStrategy(retsu.StrategySinglePass)},
	{"PerField", retsu.WithStrategy(retsu.StrategyPerField)},
}

// --- Tests ---

// go test -run ^TestNewArray$ . -count 1
func TestNewArray(t *testing.T) {
	for _, st := range strategies {
		t.Run(st.name, func(t *testing.T) {
			for _, n := range []int{0, 1, 7, 100} {
				a, err := retsu.NewArray2[int, string](n, st.opt)
				require.NoError(t, err)
				assert.Equal(t, n, a.Len())
				assert.Equal(t, n, a.Cap())
				assert.Equal(t, n == 0, a.Empty())
				if n > 0 {
					assert.NotNil(t, a.Get1(0))
					assert.NotNil(t, a.Get2(n-1))
					assert.Zero(t, *a.Get1(n - 1))
					assert.Zero(t, *a.Get2(0))
				}
			}
		})
	}
}

// go test -run ^TestNewArrayFilled$ . -count 1
func TestNewArrayFilled(t *testing.T) {
	a, err := retsu.NewArray3Filled(4, 7, "x", Position{1, 2})
	require.NoError(t, err)
	require.Equal(t, 4, a.Len())
	for i := range a.Len() {
		n, s, p := a.Get(i)
		assert.Equal(t, 7, *n)
		assert.Equal(t, "x", *s)
		assert.Equal(t, Position{1, 2}, *p)
	}
}

// go test -run ^TestEmplace$ . -count 1
func TestEmplace(t *testing.T) {
	for _, st := range strategies {
		t.Run(st.name, func(t *testing.T) {
			a := retsu.MakeArray2[int, string](st.opt)
			require.NoError(t, a.Emplace(
				func(n *int) { *n = 0 },
				func(s *string) { *s = "ok" },
			))
			assert.Equal(t, 1, a.Len())
			assert.Equal(t, 0, *a.Get1(0))
			assert.Equal(t, "ok", *a.Get2(0))

			require.NoError(t, a.Emplace(nil, nil))
			n, s := a.Get(1)
			assert.Zero(t, *n)
			assert.Zero(t, *s)
		})
	}
}

// go test -run ^TestGrowthPolicy$ . -count 1
func TestGrowthPolicy(t *testing.T) {
	t.Run("Default", func(t *testing.T) {
		a := retsu.MakeArray2[int, float64]()
		var caps []int
		last := a.Cap()
		for i := range 40 {
			before := a.Cap()
			require.NoError(t, a.PushBack(i, float64(i)))
			assert.Equal(t, i+1, a.Len())
			assert.GreaterOrEqual(t, a.Cap(), a.Len())
			if before == i {
				// Full: must grow to 2c+2.
				assert.Equal(t, 2*before+2, a.Cap())
			} else {
				assert.Equal(t, before, a.Cap())
			}
			if a.Cap() != last {
				caps = append(caps, a.Cap())
				last = a.Cap()
			}
		}
		assert.Equal(t, []int{2, 6, 14, 30, 62}, caps)
		for i := range 40 {
			n, f := a.Get(i)
			assert.Equal(t, i, *n)
			assert.Equal(t, float64(i), *f)
		}
	})

	t.Run("Exact", func(t *testing.T) {
		a := retsu.MakeArray[int](retsu.WithGrowth(retsu.ExactGrowth))
		for i := range 5 {
			require.NoError(t, a.PushBack(i))
			assert.Equal(t, i+1, a.Cap())
		}
	})

	t.Run("ClampedToRequired", func(t *testing.T) {
		a := retsu.MakeArray[int](retsu.WithGrowth(func(int, int) int { return 0 }))
		_, err := a.Insert(0, 10, 3)
		require.NoError(t, err)
		assert.Equal(t, 10, a.Cap())
	})
}

// go test -run ^TestSetGetRoundTrip$ . -count 1
func TestSetGetRoundTrip(t *testing.T) {
	a, err := retsu.NewArray4[int, string, Position, []byte](16)
	require.NoError(t, err)
	for i := range a.Len() {
		a.Set(i, i*3, string(rune('a'+i)), Position{float32(i), -1}, []byte{byte(i)})
	}
	for i := range a.Len() {
		assert.Equal(t, i*3, *a.Get1(i))
		assert.Equal(t, string(rune('a'+i)), *a.Get2(i))
		assert.Equal(t, Position{float32(i), -1}, *a.Get3(i))
		assert.Equal(t, []byte{byte(i)}, *a.Get4(i))
	}
	a.Set2(3, "changed")
	*a.Get1(4) = -4
	assert.Equal(t, "changed", *a.Get2(3))
	assert.Equal(t, -4, a.Data1()[4])
}

// go test -run ^TestInsert$ . -count 1
func TestInsert(t *testing.T) {
	for _, st := range strategies {
		t.Run(st.name, func(t *testing.T) {
			a, err := retsu.NewArray2Filled(10, 1, "ok!", st.opt)
			require.NoError(t, err)

			pos, err := a.Insert(5, 5, 9, "unacceptable!")
			require.NoError(t, err)
			assert.Equal(t, 5, pos)
			require.Equal(t, 15, a.Len())
			for i := range 15 {
				n, s := a.Get(i)
				if i >= 5 && i < 10 {
					assert.Equal(t, 9, *n, "index %d", i)
					assert.Equal(t, "unacceptable!", *s, "index %d", i)
				} else {
					assert.Equal(t, 1, *n, "index %d", i)
					assert.Equal(t, "ok!", *s, "index %d", i)
				}
			}
		})
	}

	t.Run("ZeroCount", func(t *testing.T) {
		a, err := retsu.NewArray2Filled(3, 1, "a")
		require.NoError(t, err)
		capBefore := a.Cap()
		pos, err := a.Insert(2, 0, 5, "b")
		require.NoError(t, err)
		assert.Equal(t, 2, pos)
		assert.Equal(t, 3, a.Len())
		assert.Equal(t, capBefore, a.Cap())
	})

	t.Run("WithinCapacity", func(t *testing.T) {
		a := retsu.MakeArray2[int, string]()
		require.NoError(t, a.Reserve(10))
		for i := range 4 {
			require.NoError(t, a.PushBack(i, "v"))
		}
		_, err := a.Insert(1, 3, 100, "new")
		require.NoError(t, err)
		assert.Equal(t, 10, a.Cap())
		assert.Equal(t, []int{0, 100, 100, 100, 1, 2, 3}, a.Data1())
		assert.Equal(t, []string{"v", "new", "new", "new", "v", "v", "v"}, a.Data2())
	})

	t.Run("AtEnd", func(t *testing.T) {
		a := retsu.MakeArray[string]()
		_, err := a.Insert(0, 2, "x")
		require.NoError(t, err)
		_, err = a.Insert(a.Len(), 1, "y")
		require.NoError(t, err)
		assert.Equal(t, []string{"x", "x", "y"}, a.Data())
	})

	t.Run("IteratorPosition", func(t *testing.T) {
		a, err := retsu.NewArray2Filled(4, 0, "")
		require.NoError(t, err)
		it := a.Begin().Add(2)
		pos, err := a.Insert(it.Index(), 1, 5, "five")
		require.NoError(t, err)
		assert.Equal(t, 5, *a.Begin().Add(pos).Deref().F1)
	})
}

// go test -run ^TestEraseInverseOfInsert$ . -count 1
func TestEraseInverseOfInsert(t *testing.T) {
	a := retsu.MakeArray2[int, string]()
	for i := range 8 {
		require.NoError(t, a.PushBack(i, string(rune('a'+i))))
	}
	before1 := append([]int(nil), a.Data1()...)
	before2 := append([]string(nil), a.Data2()...)

	pos, err := a.Insert(3, 4, -1, "inserted")
	require.NoError(t, err)
	next := a.EraseRange(pos, pos+4)

	assert.Equal(t, 3, next)
	assert.Equal(t, before1, a.Data1())
	assert.Equal(t, before2, a.Data2())
}

// go test -run ^TestErase$ . -count 1
func TestErase(t *testing.T) {
	a := retsu.MakeArray2[int, *Position]()
	for i := range 5 {
		require.NoError(t, a.PushBack(i, &Position{X: float32(i)}))
	}

	next := a.Erase(1)
	assert.Equal(t, 1, next)
	assert.Equal(t, []int{0, 2, 3, 4}, a.Data1())
	assert.Equal(t, float32(2), (*a.Get2(1)).X)

	// Erasing the last element returns the end position.
	next = a.Erase(a.Len() - 1)
	assert.Equal(t, a.Len(), next)
	assert.Equal(t, []int{0, 2, 3}, a.Data1())

	// Vacated slots no longer reference their old values.
	p := a.View()
	assert.Equal(t, 3, p.Len())
	tail := unsafe.Slice(a.Get2(0), a.Cap())
	for i := a.Len(); i < a.Cap(); i++ {
		assert.Nil(t, tail[i], "slot %d", i)
	}

	assert.Equal(t, 0, a.EraseRange(0, a.Len()))
	assert.True(t, a.Empty())
}

// go test -run ^TestPopBack$ . -count 1
func TestPopBack(t *testing.T) {
	a := retsu.MakeArray2[int, string]()
	require.NoError(t, a.PushBack(1, "a"))
	require.NoError(t, a.PushBack(2, "b"))
	a.PopBack()
	assert.Equal(t, 1, a.Len())
	n, s := a.Back()
	assert.Equal(t, 1, *n)
	assert.Equal(t, "a", *s)
	a.PopBack()
	assert.True(t, a.Empty())
	assert.Equal(t, 2, a.Cap())
}

// go test -run ^TestReserve$ . -count 1
func TestReserve(t *testing.T) {
	for _, st := range strategies {
		t.Run(st.name, func(t *testing.T) {
			a, err := retsu.NewArray2Filled(4, 3, "three", st.opt)
			require.NoError(t, err)
			addr := a.Get1(0)

			require.NoError(t, a.Reserve(2))
			require.NoError(t, a.Reserve(4))
			assert.Equal(t, 4, a.Cap())
			assert.Same(t, addr, a.Get1(0))

			require.NoError(t, a.Reserve(9))
			assert.Equal(t, 9, a.Cap())
			assert.Equal(t, 4, a.Len())
			assert.NotSame(t, addr, a.Get1(0))
			for i := range 4 {
				assert.Equal(t, 3, *a.Get1(i))
				assert.Equal(t, "three", *a.Get2(i))
			}
		})
	}
}

// go test -run ^TestResize$ . -count 1
func TestResize(t *testing.T) {
	a := retsu.MakeArray2[int, string]()
	for i := range 5 {
		require.NoError(t, a.PushBack(i, "keep"))
	}
	capBefore := a.Cap()

	require.NoError(t, a.ResizeFill(9, 42, "fill"))
	assert.Equal(t, 9, a.Len())
	assert.Equal(t, 9, a.Cap(), "growing past capacity allocates exactly")
	assert.Equal(t, []int{0, 1, 2, 3, 4, 42, 42, 42, 42}, a.Data1())

	require.NoError(t, a.Resize(5))
	assert.Equal(t, 5, a.Len())
	assert.Equal(t, 9, a.Cap())
	assert.Equal(t, []int{0, 1, 2, 3, 4}, a.Data1())
	assert.Equal(t, []string{"keep", "keep", "keep", "keep", "keep"}, a.Data2())

	require.NoError(t, a.Resize(7))
	assert.Equal(t, []int{0, 1, 2, 3, 4, 0, 0}, a.Data1())
	assert.Equal(t, "", *a.Get2(6))

	require.NoError(t, a.Resize(7))
	assert.Equal(t, 7, a.Len())
	assert.NotEqual(t, capBefore, a.Cap())
}

// go test -run ^TestClearRelease$ . -count 1
func TestClearRelease(t *testing.T) {
	a, err := retsu.NewArray2Filled(6, 1, "x")
	require.NoError(t, err)

	a.Clear()
	assert.Equal(t, 0, a.Len())
	assert.Equal(t, 6, a.Cap())

	a.Release()
	assert.Equal(t, 0, a.Len())
	assert.Equal(t, 0, a.Cap())
	assert.Nil(t, a.Data1())

	// Still usable after release.
	require.NoError(t, a.PushBack(2, "y"))
	assert.Equal(t, 1, a.Len())
	assert.Equal(t, 2, a.Cap())
}

// go test -run ^TestAt$ . -count 1
func TestAt(t *testing.T) {
	a, err := retsu.NewArray2Filled(10, 1, "ok!")
	require.NoError(t, err)

	n, s, err := a.At(40)
	require.Error(t, err)
	assert.Nil(t, n)
	assert.Nil(t, s)
	assert.ErrorIs(t, err, retsu.ErrOutOfRange)
	var re *retsu.RangeError
	require.True(t, errors.As(err, &re))
	assert.Equal(t, 40, re.Index)
	assert.Equal(t, 10, re.Len)

	_, _, err = a.At(-1)
	assert.ErrorIs(t, err, retsu.ErrOutOfRange)

	n, s, err = a.At(4)
	require.NoError(t, err)
	assert.Equal(t, 1, *n)
	assert.Equal(t, "ok!", *s)
}

// go test -run ^TestCopy$ . -count 1
func TestCopy(t *testing.T) {
	src := retsu.MakeArray2[int, []int]()
	require.NoError(t, src.Reserve(12))
	for i := range 5 {
		require.NoError(t, src.PushBack(i, []int{i}))
	}

	t.Run("Clone", func(t *testing.T) {
		c, err := src.Clone()
		require.NoError(t, err)
		assert.Equal(t, src.Len(), c.Len())
		assert.Equal(t, src.Cap(), c.Cap())
		assert.Equal(t, src.Data1(), c.Data1())
		assert.Equal(t, src.Data2(), c.Data2())

		c.Set1(0, 100)
		assert.Equal(t, 0, *src.Get1(0), "clone must be independent")
	})

	t.Run("CopyFrom", func(t *testing.T) {
		dst, err := retsu.NewArray2Filled(20, -1, []int{-1})
		require.NoError(t, err)
		require.NoError(t, dst.CopyFrom(src))
		assert.Equal(t, 5, dst.Len())
		assert.Equal(t, 20, dst.Cap())
		assert.Equal(t, src.Data1(), dst.Data1())

		dst.Set1(1, 50)
		assert.Equal(t, 1, *src.Get1(1))
		require.NoError(t, dst.CopyFrom(dst))
		assert.Equal(t, 5, dst.Len())
	})

	t.Run("CloneEmpty", func(t *testing.T) {
		c, err := retsu.MakeArray2[int, int]().Clone()
		require.NoError(t, err)
		assert.Equal(t, 0, c.Cap())
	})
}

// go test -run ^TestMove$ . -count 1
func TestMove(t *testing.T) {
	src, err := retsu.NewArray2Filled(5, 7, "seven")
	require.NoError(t, err)
	addr := src.Get1(0)

	dst, err := retsu.NewArray2Filled(3, 0, "zero")
	require.NoError(t, err)
	dst.MoveFrom(src)

	assert.Equal(t, 0, src.Len())
	assert.Equal(t, 0, src.Cap())
	assert.Equal(t, 5, dst.Len())
	assert.Same(t, addr, dst.Get1(0))
	assert.Equal(t, "seven", *dst.Get2(4))

	// The moved-from array stays usable and independent.
	require.NoError(t, src.PushBack(1, "one"))
	assert.Equal(t, 1, src.Len())
	assert.Equal(t, 5, dst.Len())

	dst.MoveFrom(dst)
	assert.Equal(t, 5, dst.Len())
}

// go test -run ^TestSwap$ . -count 1
func TestSwap(t *testing.T) {
	a, err := retsu.NewArray2Filled(2, 1, "a")
	require.NoError(t, err)
	b, err := retsu.NewArray2Filled(5, 2, "b")
	require.NoError(t, err)

	a.Swap(b)
	assert.Equal(t, 5, a.Len())
	assert.Equal(t, 2, b.Len())
	assert.Equal(t, "b", *a.Get2(0))
	assert.Equal(t, "a", *b.Get2(0))
}

// go test -run ^TestFrontBackTuple$ . -count 1
func TestFrontBackTuple(t *testing.T) {
	a := retsu.MakeArray3[int, string, bool]()
	require.NoError(t, a.PushTuple(retsu.Tuple3[int, string, bool]{V1: 1, V2: "first", V3: true}))
	require.NoError(t, a.PushBack(2, "last", false))

	n, s, b := a.Front()
	assert.Equal(t, 1, *n)
	assert.Equal(t, "first", *s)
	assert.True(t, *b)

	_, s, _ = a.Back()
	assert.Equal(t, "last", *s)

	r := a.Ref(1)
	tup := r.Load()
	assert.Equal(t, retsu.Tuple3[int, string, bool]{V1: 2, V2: "last"}, tup)
	r.Store(retsu.Tuple3[int, string, bool]{V1: 3, V2: "stored", V3: true})
	assert.Equal(t, "stored", *a.Get2(1))
}

// go test -run ^TestPushBackZero$ . -count 1
func TestPushBackZero(t *testing.T) {
	a := retsu.MakeArray2[Position, Velocity]()
	require.NoError(t, a.PushBackZero())
	require.NoError(t, a.PushBackZero())
	assert.Equal(t, 2, a.Len())
	assert.Equal(t, Position{}, *a.Get1(1))
}

// go test -run ^TestSingleFieldArray$ . -count 1
func TestSingleFieldArray(t *testing.T) {
	a, err := retsu.NewArrayFilled(3, Name{"n"})
	require.NoError(t, err)
	require.NoError(t, a.PushBack(Name{"last"}))
	require.NoError(t, a.Emplace(func(n *Name) { n.Value = "emplaced" }))
	_, err = a.Insert(0, 1, Name{"first"})
	require.NoError(t, err)

	assert.Equal(t, 6, a.Len())
	assert.Equal(t, "first", a.Front().Value)
	assert.Equal(t, "emplaced", a.Back().Value)

	got, err := a.At(4)
	require.NoError(t, err)
	assert.Equal(t, "last", got.Value)
	_, err = a.At(6)
	assert.ErrorIs(t, err, retsu.ErrOutOfRange)

	a.Erase(0)
	a.PopBack()
	assert.Equal(t, []Name{{"n"}, {"n"}, {"n"}, {"last"}}, a.Data())

	var seen []string
	for i, n := range a.Backward() {
		seen = append(seen, n.Value)
		assert.Same(t, a.Get(i), n)
	}
	assert.Equal(t, []string{"last", "n", "n", "n"}, seen)

	c, err := a.Clone()
	require.NoError(t, err)
	b := retsu.MakeArray[Name]()
	b.MoveFrom(c)
	assert.Equal(t, a.Data(), b.Data())
	assert.Zero(t, c.Cap())
}

// go test -run ^TestSixFields$ . -count 1
func TestSixFields(t *testing.T) {
	a := retsu.MakeArray6[int8, int64, string, Position, Velocity, bool]()
	for i := range 10 {
		require.NoError(t, a.PushBack(int8(i), int64(i)<<40, "s", Position{X: 1}, Velocity{VY: 2}, i%2 == 0))
	}
	_, err := a.Insert(5, 2, -1, -1, "i", Position{}, Velocity{}, true)
	require.NoError(t, err)
	assert.Equal(t, 12, a.Len())
	assert.Equal(t, int64(9)<<40, *a.Get2(11))
	assert.Equal(t, int8(-1), *a.Get1(6))
	assert.True(t, *a.Get6(0))
	assert.False(t, *a.Get6(3))
}
