package retsu

import (
	"iter"
	"sort"
	"unsafe"
)

// View is a non-owning window over one field of a container. It is
// invalidated by any operation that reallocates the container.
type View[T any] struct {
	p unsafe.Pointer
	n int
}

// Len returns the number of elements in the view.
func (v View[T]) Len() int { return v.n }

// Empty reports whether the view has no elements.
func (v View[T]) Empty() bool { return v.n == 0 }

// Get returns a pointer to element i. i is not bounds checked.
func (v View[T]) Get(i int) *T {
	if debug {
		assertf(i >= 0 && i < v.n, "View.Get index out of range")
	}
	return at[T](v.p, i)
}

// At returns a pointer to element i, or an error wrapping ErrOutOfRange.
func (v View[T]) At(i int) (*T, error) {
	if err := checkIndex(i, v.n); err != nil {
		return nil, err
	}
	return at[T](v.p, i), nil
}

// Slice returns the elements as a slice aliasing the field buffer.
func (v View[T]) Slice() []T { return live[T](v.p, v.n) }

func (v View[T]) Begin() Iter[T] { return Iter[T]{p: v.p} }

func (v View[T]) End() Iter[T] { return Iter[T]{p: v.p, i: v.n} }

// IterAt returns an iterator to element i.
func (v View[T]) IterAt(i int) Iter[T] { return Iter[T]{p: v.p, i: i} }

func (v View[T]) RBegin() Reverse[Iter[T], *T] { return MakeReverse[Iter[T], *T](v.End()) }

func (v View[T]) REnd() Reverse[Iter[T], *T] { return MakeReverse[Iter[T], *T](v.Begin()) }

// All iterates the elements with their indices.
func (v View[T]) All() iter.Seq2[int, *T] {
	return func(yield func(int, *T) bool) {
		for i := range v.n {
			if !yield(i, at[T](v.p, i)) {
				return
			}
		}
	}
}

// Backward iterates the elements from the back.
func (v View[T]) Backward() iter.Seq2[int, *T] {
	return func(yield func(int, *T) bool) {
		for i := v.n - 1; i >= 0; i-- {
			if !yield(i, at[T](v.p, i)) {
				return
			}
		}
	}
}

// Swap exchanges elements i and j.
func (v View[T]) Swap(i, j int) {
	swapAt[T](v.p, i, j)
}

// Sort sorts the elements by less. It is not stable.
func (v View[T]) Sort(less func(a, b *T) bool) {
	sort.Sort(viewSorter[T]{v, less})
}

type viewSorter[T any] struct {
	v    View[T]
	less func(a, b *T) bool
}

func (s viewSorter[T]) Len() int           { return s.v.n }
func (s viewSorter[T]) Less(i, j int) bool { return s.less(at[T](s.v.p, i), at[T](s.v.p, j)) }
func (s viewSorter[T]) Swap(i, j int)      { s.v.Swap(i, j) }

// Iter is a random-access iterator over one field. Iterators are values:
// moving one returns the moved copy.
type Iter[T any] struct {
	p unsafe.Pointer
	i int
}

func (it Iter[T]) Next() Iter[T] { return Iter[T]{it.p, it.i + 1} }

func (it Iter[T]) Prev() Iter[T] { return Iter[T]{it.p, it.i - 1} }

func (it Iter[T]) Add(n int) Iter[T] { return Iter[T]{it.p, it.i + n} }

// Index returns the position of the iterator in its container.
func (it Iter[T]) Index() int { return it.i }

// Deref returns a pointer to the element. The iterator must refer to a live
// element.
func (it Iter[T]) Deref() *T { return at[T](it.p, it.i) }

func (it Iter[T]) Equal(o Iter[T]) bool { return it.p == o.p && it.i == o.i }

func (it Iter[T]) Less(o Iter[T]) bool {
	if debug {
		assertf(it.p == o.p, "comparing iterators of different buffers")
	}
	return it.i < o.i
}

// Distance returns it minus o.
func (it Iter[T]) Distance(o Iter[T]) int { return it.i - o.i }

// swapAt exchanges elements i and j of a buffer of T.
func swapAt[T any](p unsafe.Pointer, i, j int) {
	a, b := at[T](p, i), at[T](p, j)
	*a, *b = *b, *a
}

// distinct reports whether p[k] differs from every pointer before it.
func distinct(p []unsafe.Pointer, k int) bool {
	for _, q := range p[:k] {
		if q == p[k] {
			return false
		}
	}
	return true
}
