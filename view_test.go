package retsu_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edwinsyarief/retsu"
)

func newBodies(t *testing.T, n int) *retsu.Array3[Position, Velocity, string] {
	t.Helper()
	a := retsu.MakeArray3[Position, Velocity, string]()
	for i := range n {
		f := float32(i)
		require.NoError(t, a.PushBack(Position{f, f}, Velocity{1, -1}, string(rune('a'+i))))
	}
	return a
}

// go test -run ^TestViewAllFields$ . -count 1
func TestViewAllFields(t *testing.T) {
	a := newBodies(t, 5)
	v := a.View()
	assert.Equal(t, 5, v.Len())
	assert.False(t, v.Empty())

	for i, r := range v.All() {
		r.F1.X += r.F2.VX
		r.F1.Y += r.F2.VY
		assert.Equal(t, string(rune('a'+i)), *r.F3)
	}
	for i := range a.Len() {
		assert.Equal(t, Position{float32(i) + 1, float32(i) - 1}, *a.Get1(i))
	}

	p, vel, name := v.Get(2)
	assert.Same(t, a.Get1(2), p)
	assert.Same(t, a.Get2(2), vel)
	assert.Equal(t, "c", *name)

	_, _, _, err := v.At(5)
	assert.ErrorIs(t, err, retsu.ErrOutOfRange)
	_, _, name, err = v.At(4)
	require.NoError(t, err)
	assert.Equal(t, "e", *name)
}

// go test -run ^TestSelectSubset$ . -count 1
func TestSelectSubset(t *testing.T) {
	a := newBodies(t, 4)

	t.Run("ByType", func(t *testing.T) {
		v := retsu.Select2[string, Position](a)
		require.Equal(t, 4, v.Len())
		name, pos := v.Get(1)
		assert.Equal(t, "b", *name)
		assert.Equal(t, Position{1, 1}, *pos)
	})

	t.Run("ByIndex", func(t *testing.T) {
		v := retsu.Project2[Velocity, Position](a, 1, 0)
		vel, pos := v.Get(3)
		assert.Same(t, a.Get2(3), vel)
		assert.Same(t, a.Get1(3), pos)
	})

	t.Run("Single", func(t *testing.T) {
		names := retsu.Select[string](a)
		assert.Equal(t, []string{"a", "b", "c", "d"}, names.Slice())
		assert.Same(t, a.Get3(0), retsu.Project[string](a, 2).Get(0))
		assert.Equal(t, a.Data2(), retsu.Column[Velocity](a, 1))
		assert.Equal(t, a.Data3(), retsu.DataOf[string](a))
	})

	t.Run("Mismatch", func(t *testing.T) {
		assert.Panics(t, func() { retsu.Select2[string, int](a) })
		assert.Panics(t, func() { retsu.Project2[string, Position](a, 0, 0) })
		assert.Panics(t, func() { retsu.Project[string](a, 3) })
	})
}

// go test -run ^TestDuplicateSelection$ . -count 1
func TestDuplicateSelection(t *testing.T) {
	a := newBodies(t, 3)

	v := retsu.Select3[string, Position, string](a)
	first, _, second := v.Get(1)
	assert.Same(t, first, second)
	*first = "changed"
	assert.Equal(t, "changed", *second)
	assert.Equal(t, "changed", *a.Get3(1))

	p := retsu.Project2[Position, Position](a, 0, 0)
	for _, r := range p.All() {
		assert.Same(t, r.F1, r.F2)
	}

	// A field selected twice is swapped once.
	p.Swap(0, 2)
	assert.Equal(t, Position{2, 2}, *a.Get1(0))
	assert.Equal(t, Position{0, 0}, *a.Get1(2))
}

// go test -run ^TestIterator$ . -count 1
func TestIterator(t *testing.T) {
	a := newBodies(t, 6)
	begin, end := a.Begin(), a.End()

	assert.Equal(t, 6, end.Distance(begin))
	assert.True(t, begin.Less(end))
	assert.False(t, end.Less(begin))
	assert.True(t, begin.Add(6).Equal(end))
	assert.True(t, end.Prev().Equal(begin.Add(5)))

	var names []string
	for it := begin; !it.Equal(end); it = it.Next() {
		r := it.Deref()
		names = append(names, *r.F3)
		p, _, _ := it.Get()
		assert.Same(t, r.F1, p)
		assert.Equal(t, it.Index(), len(names)-1)
	}
	assert.Equal(t, []string{"a", "b", "c", "d", "e", "f"}, names)

	// Iterators from different views of the same buffers compare equal.
	assert.True(t, a.View().IterAt(3).Equal(begin.Add(3)))
}

// go test -run ^TestReverseIterator$ . -count 1
func TestReverseIterator(t *testing.T) {
	a := newBodies(t, 4)
	v := a.View()

	var names []string
	for it := v.RBegin(); !it.Equal(v.REnd()); it = it.Next() {
		names = append(names, *it.Deref().F3)
	}
	assert.Equal(t, []string{"d", "c", "b", "a"}, names)

	rb := v.RBegin()
	assert.Equal(t, 3, rb.Index())
	assert.Equal(t, 4, v.REnd().Distance(rb))
	assert.True(t, rb.Less(v.REnd()))
	assert.Equal(t, "b", *rb.Add(2).Deref().F3)
	assert.True(t, rb.Add(2).Prev().Equal(rb.Next()))
	assert.True(t, rb.Base().Equal(v.End()))

	names = names[:0]
	for i, r := range a.Backward() {
		assert.Equal(t, a.Len()-1-len(names), i)
		names = append(names, *r.F3)
	}
	assert.Equal(t, []string{"d", "c", "b", "a"}, names)

	single := retsu.Select[string](a)
	names = names[:0]
	for it := single.RBegin(); !it.Equal(single.REnd()); it = it.Next() {
		names = append(names, *it.Deref())
	}
	assert.Equal(t, []string{"d", "c", "b", "a"}, names)
}

// go test -run ^TestRangeEarlyExit$ . -count 1
func TestRangeEarlyExit(t *testing.T) {
	a := newBodies(t, 10)
	count := 0
	for i := range a.All() {
		if i == 3 {
			break
		}
		count++
	}
	assert.Equal(t, 3, count)
}

// go test -run ^TestViewSort$ . -count 1
func TestViewSort(t *testing.T) {
	a := retsu.MakeArray2[int, string]()
	for _, n := range []int{5, 3, 9, 1, 7} {
		require.NoError(t, a.PushBack(n, string(rune('0'+n))))
	}

	a.View().Sort(func(x, y retsu.Ref2[int, string]) bool { return *x.F1 < *y.F1 })
	assert.Equal(t, []int{1, 3, 5, 7, 9}, a.Data1())
	assert.Equal(t, []string{"1", "3", "5", "7", "9"}, a.Data2())

	// Sorting a subset view leaves the other fields in place.
	retsu.Select[int](a).Sort(func(x, y *int) bool { return *x > *y })
	assert.Equal(t, []int{9, 7, 5, 3, 1}, a.Data1())
	assert.Equal(t, []string{"1", "3", "5", "7", "9"}, a.Data2())
}

// go test -run ^TestEmptyView$ . -count 1
func TestEmptyView(t *testing.T) {
	a := retsu.MakeArray2[int, string]()
	v := a.View()
	assert.True(t, v.Empty())
	assert.True(t, v.Begin().Equal(v.End()))
	for range v.All() {
		t.Fatal("empty view yielded an element")
	}
	_, _, err := v.At(0)
	assert.ErrorIs(t, err, retsu.ErrOutOfRange)
	assert.Nil(t, retsu.Select[int](a).Slice())
}
