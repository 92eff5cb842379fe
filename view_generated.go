package retsu

import (
	"iter"
	"sort"
	"unsafe"
)

// Tuple2 holds the values of one element of 2 fields.
type Tuple2[T1, T2 any] struct {
	V1 T1
	V2 T2
}

// Ref2 holds references to the fields of one element. A new Ref2 is built
// on every dereference; fields selected twice alias the same memory.
type Ref2[T1, T2 any] struct {
	F1 *T1
	F2 *T2
}

// Load copies the referenced values.
func (r Ref2[T1, T2]) Load() Tuple2[T1, T2] {
	return Tuple2[T1, T2]{*r.F1, *r.F2}
}

// Store assigns the values of t to the referenced fields.
func (r Ref2[T1, T2]) Store(t Tuple2[T1, T2]) {
	*r.F1 = t.V1
	*r.F2 = t.V2
}

// View2 is a non-owning window over 2 fields of a container, possibly
// repeated or reordered. It is invalidated by any operation that reallocates
// the container.
type View2[T1, T2 any] struct {
	p [2]unsafe.Pointer
	n int
}

// Len returns the number of elements in the view.
func (v View2[T1, T2]) Len() int { return v.n }

// Empty reports whether the view has no elements.
func (v View2[T1, T2]) Empty() bool { return v.n == 0 }

// Get returns pointers to the fields of element i. i is not bounds checked.
func (v View2[T1, T2]) Get(i int) (*T1, *T2) {
	if debug {
		assertf(i >= 0 && i < v.n, "View.Get index out of range")
	}
	return at[T1](v.p[0], i), at[T2](v.p[1], i)
}

// At returns pointers to the fields of element i, or an error wrapping
// ErrOutOfRange.
func (v View2[T1, T2]) At(i int) (*T1, *T2, error) {
	if err := checkIndex(i, v.n); err != nil {
		return nil, nil, err
	}
	return at[T1](v.p[0], i), at[T2](v.p[1], i), nil
}

// Ref returns the references to element i. i is not bounds checked.
func (v View2[T1, T2]) Ref(i int) Ref2[T1, T2] {
	return Ref2[T1, T2]{at[T1](v.p[0], i), at[T2](v.p[1], i)}
}

// Begin returns an iterator to the first element.
func (v View2[T1, T2]) Begin() Iter2[T1, T2] {
	return Iter2[T1, T2]{p: v.p}
}

// End returns an iterator one past the last element.
func (v View2[T1, T2]) End() Iter2[T1, T2] {
	return Iter2[T1, T2]{p: v.p, i: v.n}
}

// IterAt returns an iterator to element i.
func (v View2[T1, T2]) IterAt(i int) Iter2[T1, T2] {
	return Iter2[T1, T2]{p: v.p, i: i}
}

// RBegin returns a reverse iterator to the last element.
func (v View2[T1, T2]) RBegin() Reverse[Iter2[T1, T2], Ref2[T1, T2]] {
	return MakeReverse[Iter2[T1, T2], Ref2[T1, T2]](v.End())
}

// REnd returns a reverse iterator one before the first element.
func (v View2[T1, T2]) REnd() Reverse[Iter2[T1, T2], Ref2[T1, T2]] {
	return MakeReverse[Iter2[T1, T2], Ref2[T1, T2]](v.Begin())
}

// All iterates the elements with their indices.
func (v View2[T1, T2]) All() iter.Seq2[int, Ref2[T1, T2]] {
	return func(yield func(int, Ref2[T1, T2]) bool) {
		for i := range v.n {
			if !yield(i, v.Ref(i)) {
				return
			}
		}
	}
}

// Backward iterates the elements from the back.
func (v View2[T1, T2]) Backward() iter.Seq2[int, Ref2[T1, T2]] {
	return func(yield func(int, Ref2[T1, T2]) bool) {
		for i := v.n - 1; i >= 0; i-- {
			if !yield(i, v.Ref(i)) {
				return
			}
		}
	}
}

// Swap exchanges elements i and j in every selected field. A field selected
// more than once is swapped once.
func (v View2[T1, T2]) Swap(i, j int) {
	if distinct(v.p[:], 0) {
		swapAt[T1](v.p[0], i, j)
	}
	if distinct(v.p[:], 1) {
		swapAt[T2](v.p[1], i, j)
	}
}

// Sort reorders the elements of the selected fields by less. Fields outside
// the view are not moved. It is not stable.
func (v View2[T1, T2]) Sort(less func(a, b Ref2[T1, T2]) bool) {
	sort.Sort(sorter2[T1, T2]{v: v, less: less})
}

type sorter2[T1, T2 any] struct {
	v    View2[T1, T2]
	less func(a, b Ref2[T1, T2]) bool
}

func (s sorter2[T1, T2]) Len() int { return s.v.n }

func (s sorter2[T1, T2]) Less(i, j int) bool { return s.less(s.v.Ref(i), s.v.Ref(j)) }

func (s sorter2[T1, T2]) Swap(i, j int) { s.v.Swap(i, j) }

// Iter2 is a zipped random-access iterator advancing 2 field pointers in
// lockstep. Iterators are values: moving one returns the moved copy.
type Iter2[T1, T2 any] struct {
	p [2]unsafe.Pointer
	i int
}

func (it Iter2[T1, T2]) Next() Iter2[T1, T2] {
	return Iter2[T1, T2]{it.p, it.i + 1}
}

func (it Iter2[T1, T2]) Prev() Iter2[T1, T2] {
	return Iter2[T1, T2]{it.p, it.i - 1}
}

func (it Iter2[T1, T2]) Add(n int) Iter2[T1, T2] {
	return Iter2[T1, T2]{it.p, it.i + n}
}

// Index returns the position of the iterator in its container.
func (it Iter2[T1, T2]) Index() int { return it.i }

// Deref returns the references to the element. The iterator must refer to a
// live element.
func (it Iter2[T1, T2]) Deref() Ref2[T1, T2] {
	return Ref2[T1, T2]{at[T1](it.p[0], it.i), at[T2](it.p[1], it.i)}
}

// Get returns pointers to the fields of the element.
func (it Iter2[T1, T2]) Get() (*T1, *T2) {
	return at[T1](it.p[0], it.i), at[T2](it.p[1], it.i)
}

// Equal compares the first field pointer and position only; all pointers
// move together.
func (it Iter2[T1, T2]) Equal(o Iter2[T1, T2]) bool {
	return it.p[0] == o.p[0] && it.i == o.i
}

func (it Iter2[T1, T2]) Less(o Iter2[T1, T2]) bool {
	if debug {
		assertf(it.p[0] == o.p[0], "comparing iterators of different buffers")
	}
	return it.i < o.i
}

// Distance returns it minus o.
func (it Iter2[T1, T2]) Distance(o Iter2[T1, T2]) int { return it.i - o.i }

// Tuple3 holds the values of one element of 3 fields.
type Tuple3[T1, T2, T3 any] struct {
	V1 T1
	V2 T2
	V3 T3
}

// Ref3 holds references to the fields of one element. A new Ref3 is built
// on every dereference; fields selected twice alias the same memory.
type Ref3[T1, T2, T3 any] struct {
	F1 *T1
	F2 *T2
	F3 *T3
}

// Load copies the referenced values.
func (r Ref3[T1, T2, T3]) Load() Tuple3[T1, T2, T3] {
	return Tuple3[T1, T2, T3]{*r.F1, *r.F2, *r.F3}
}

// Store assigns the values of t to the referenced fields.
func (r Ref3[T1, T2, T3]) Store(t Tuple3[T1, T2, T3]) {
	*r.F1 = t.V1
	*r.F2 = t.V2
	*r.F3 = t.V3
}

// View3 is a non-owning window over 3 fields of a container, possibly
// repeated or reordered. It is invalidated by any operation that reallocates
// the container.
type View3[T1, T2, T3 any] struct {
	p [3]unsafe.Pointer
	n int
}

// Len returns the number of elements in the view.
func (v View3[T1, T2, T3]) Len() int { return v.n }

// Empty reports whether the view has no elements.
func (v View3[T1, T2, T3]) Empty() bool { return v.n == 0 }

// Get returns pointers to the fields of element i. i is not bounds checked.
func (v View3[T1, T2, T3]) Get(i int) (*T1, *T2, *T3) {
	if debug {
		assertf(i >= 0 && i < v.n, "View.Get index out of range")
	}
	return at[T1](v.p[0], i), at[T2](v.p[1], i), at[T3](v.p[2], i)
}

// At returns pointers to the fields of element i, or an error wrapping
// ErrOutOfRange.
func (v View3[T1, T2, T3]) At(i int) (*T1, *T2, *T3, error) {
	if err := checkIndex(i, v.n); err != nil {
		return nil, nil, nil, err
	}
	return at[T1](v.p[0], i), at[T2](v.p[1], i), at[T3](v.p[2], i), nil
}

// Ref returns the references to element i. i is not bounds checked.
func (v View3[T1, T2, T3]) Ref(i int) Ref3[T1, T2, T3] {
	return Ref3[T1, T2, T3]{at[T1](v.p[0], i), at[T2](v.p[1], i), at[T3](v.p[2], i)}
}

// Begin returns an iterator to the first element.
func (v View3[T1, T2, T3]) Begin() Iter3[T1, T2, T3] {
	return Iter3[T1, T2, T3]{p: v.p}
}

// End returns an iterator one past the last element.
func (v View3[T1, T2, T3]) End() Iter3[T1, T2, T3] {
	return Iter3[T1, T2, T3]{p: v.p, i: v.n}
}

// IterAt returns an iterator to element i.
func (v View3[T1, T2, T3]) IterAt(i int) Iter3[T1, T2, T3] {
	return Iter3[T1, T2, T3]{p: v.p, i: i}
}

// RBegin returns a reverse iterator to the last element.
func (v View3[T1, T2, T3]) RBegin() Reverse[Iter3[T1, T2, T3], Ref3[T1, T2, T3]] {
	return MakeReverse[Iter3[T1, T2, T3], Ref3[T1, T2, T3]](v.End())
}

// REnd returns a reverse iterator one before the first element.
func (v View3[T1, T2, T3]) REnd() Reverse[Iter3[T1, T2, T3], Ref3[T1, T2, T3]] {
	return MakeReverse[Iter3[T1, T2, T3], Ref3[T1, T2, T3]](v.Begin())
}

// All iterates the elements with their indices.
func (v View3[T1, T2, T3]) All() iter.Seq2[int, Ref3[T1, T2, T3]] {
	return func(yield func(int, Ref3[T1, T2, T3]) bool) {
		for i := range v.n {
			if !yield(i, v.Ref(i)) {
				return
			}
		}
	}
}

// Backward iterates the elements from the back.
func (v View3[T1, T2, T3]) Backward() iter.Seq2[int, Ref3[T1, T2, T3]] {
	return func(yield func(int, Ref3[T1, T2, T3]) bool) {
		for i := v.n - 1; i >= 0; i-- {
			if !yield(i, v.Ref(i)) {
				return
			}
		}
	}
}

// Swap exchanges elements i and j in every selected field. A field selected
// more than once is swapped once.
func (v View3[T1, T2, T3]) Swap(i, j int) {
	if distinct(v.p[:], 0) {
		swapAt[T1](v.p[0], i, j)
	}
	if distinct(v.p[:], 1) {
		swapAt[T2](v.p[1], i, j)
	}
	if distinct(v.p[:], 2) {
		swapAt[T3](v.p[2], i, j)
	}
}

// Sort reorders the elements of the selected fields by less. Fields outside
// the view are not moved. It is not stable.
func (v View3[T1, T2, T3]) Sort(less func(a, b Ref3[T1, T2, T3]) bool) {
	sort.Sort(sorter3[T1, T2, T3]{v: v, less: less})
}

type sorter3[T1, T2, T3 any] struct {
	v    View3[T1, T2, T3]
	less func(a, b Ref3[T1, T2, T3]) bool
}

func (s sorter3[T1, T2, T3]) Len() int { return s.v.n }

func (s sorter3[T1, T2, T3]) Less(i, j int) bool { return s.less(s.v.Ref(i), s.v.Ref(j)) }

func (s sorter3[T1, T2, T3]) Swap(i, j int) { s.v.Swap(i, j) }

// Iter3 is a zipped random-access iterator advancing 3 field pointers in
// lockstep. Iterators are values: moving one returns the moved copy.
type Iter3[T1, T2, T3 any] struct {
	p [3]unsafe.Pointer
	i int
}

func (it Iter3[T1, T2, T3]) Next() Iter3[T1, T2, T3] {
	return Iter3[T1, T2, T3]{it.p, it.i + 1}
}

func (it Iter3[T1, T2, T3]) Prev() Iter3[T1, T2, T3] {
	return Iter3[T1, T2, T3]{it.p, it.i - 1}
}

func (it Iter3[T1, T2, T3]) Add(n int) Iter3[T1, T2, T3] {
	return Iter3[T1, T2, T3]{it.p, it.i + n}
}

// Index returns the position of the iterator in its container.
func (it Iter3[T1, T2, T3]) Index() int { return it.i }

// Deref returns the references to the element. The iterator must refer to a
// live element.
func (it Iter3[T1, T2, T3]) Deref() Ref3[T1, T2, T3] {
	return Ref3[T1, T2, T3]{at[T1](it.p[0], it.i), at[T2](it.p[1], it.i), at[T3](it.p[2], it.i)}
}

// Get returns pointers to the fields of the element.
func (it Iter3[T1, T2, T3]) Get() (*T1, *T2, *T3) {
	return at[T1](it.p[0], it.i), at[T2](it.p[1], it.i), at[T3](it.p[2], it.i)
}

// Equal compares the first field pointer and position only; all pointers
// move together.
func (it Iter3[T1, T2, T3]) Equal(o Iter3[T1, T2, T3]) bool {
	return it.p[0] == o.p[0] && it.i == o.i
}

func (it Iter3[T1, T2, T3]) Less(o Iter3[T1, T2, T3]) bool {
	if debug {
		assertf(it.p[0] == o.p[0], "comparing iterators of different buffers")
	}
	return it.i < o.i
}

// Distance returns it minus o.
func (it Iter3[T1, T2, T3]) Distance(o Iter3[T1, T2, T3]) int { return it.i - o.i }

// Tuple4 holds the values of one element of 4 fields.
type Tuple4[T1, T2, T3, T4 any] struct {
	V1 T1
	V2 T2
	V3 T3
	V4 T4
}

// Ref4 holds references to the fields of one element. A new Ref4 is built
// on every dereference; fields selected twice alias the same memory.
type Ref4[T1, T2, T3, T4 any] struct {
	F1 *T1
	F2 *T2
	F3 *T3
	F4 *T4
}

// Load copies the referenced values.
func (r Ref4[T1, T2, T3, T4]) Load() Tuple4[T1, T2, T3, T4] {
	return Tuple4[T1, T2, T3, T4]{*r.F1, *r.F2, *r.F3, *r.F4}
}

// Store assigns the values of t to the referenced fields.
func (r Ref4[T1, T2, T3, T4]) Store(t Tuple4[T1, T2, T3, T4]) {
	*r.F1 = t.V1
	*r.F2 = t.V2
	*r.F3 = t.V3
	*r.F4 = t.V4
}

// View4 is a non-owning window over 4 fields of a container, possibly
// repeated or reordered. It is invalidated by any operation that reallocates
// the container.
type View4[T1, T2, T3, T4 any] struct {
	p [4]unsafe.Pointer
	n int
}

// Len returns the number of elements in the view.
func (v View4[T1, T2, T3, T4]) Len() int { return v.n }

// Empty reports whether the view has no elements.
func (v View4[T1, T2, T3, T4]) Empty() bool { return v.n == 0 }

// Get returns pointers to the fields of element i. i is not bounds checked.
func (v View4[T1, T2, T3, T4]) Get(i int) (*T1, *T2, *T3, *T4) {
	if debug {
		assertf(i >= 0 && i < v.n, "View.Get index out of range")
	}
	return at[T1](v.p[0], i), at[T2](v.p[1], i), at[T3](v.p[2], i), at[T4](v.p[3], i)
}

// At returns pointers to the fields of element i, or an error wrapping
// ErrOutOfRange.
func (v View4[T1, T2, T3, T4]) At(i int) (*T1, *T2, *T3, *T4, error) {
	if err := checkIndex(i, v.n); err != nil {
		return nil, nil, nil, nil, err
	}
	return at[T1](v.p[0], i), at[T2](v.p[1], i), at[T3](v.p[2], i), at[T4](v.p[3], i), nil
}

// Ref returns the references to element i. i is not bounds checked.
func (v View4[T1, T2, T3, T4]) Ref(i int) Ref4[T1, T2, T3, T4] {
	return Ref4[T1, T2, T3, T4]{at[T1](v.p[0], i), at[T2](v.p[1], i), at[T3](v.p[2], i), at[T4](v.p[3], i)}
}

// Begin returns an iterator to the first element.
func (v View4[T1, T2, T3, T4]) Begin() Iter4[T1, T2, T3, T4] {
	return Iter4[T1, T2, T3, T4]{p: v.p}
}

// End returns an iterator one past the last element.
func (v View4[T1, T2, T3, T4]) End() Iter4[T1, T2, T3, T4] {
	return Iter4[T1, T2, T3, T4]{p: v.p, i: v.n}
}

// IterAt returns an iterator to element i.
func (v View4[T1, T2, T3, T4]) IterAt(i int) Iter4[T1, T2, T3, T4] {
	return Iter4[T1, T2, T3, T4]{p: v.p, i: i}
}

// RBegin returns a reverse iterator to the last element.
func (v View4[T1, T2, T3, T4]) RBegin() Reverse[Iter4[T1, T2, T3, T4], Ref4[T1, T2, T3, T4]] {
	return MakeReverse[Iter4[T1, T2, T3, T4], Ref4[T1, T2, T3, T4]](v.End())
}

// REnd returns a reverse iterator one before the first element.
func (v View4[T1, T2, T3, T4]) REnd() Reverse[Iter4[T1, T2, T3, T4], Ref4[T1, T2, T3, T4]] {
	return MakeReverse[Iter4[T1, T2, T3, T4], Ref4[T1, T2, T3, T4]](v.Begin())
}

// All iterates the elements with their indices.
func (v View4[T1, T2, T3, T4]) All() iter.Seq2[int, Ref4[T1, T2, T3, T4]] {
	return func(yield func(int, Ref4[T1, T2, T3, T4]) bool) {
		for i := range v.n {
			if !yield(i, v.Ref(i)) {
				return
			}
		}
	}
}

// Backward iterates the elements from the back.
func (v View4[T1, T2, T3, T4]) Backward() iter.Seq2[int, Ref4[T1, T2, T3, T4]] {
	return func(yield func(int, Ref4[T1, T2, T3, T4]) bool) {
		for i := v.n - 1; i >= 0; i-- {
			if !yield(i, v.Ref(i)) {
				return
			}
		}
	}
}

// Swap exchanges elements i and j in every selected field. A field selected
// more than once is swapped once.
func (v View4[T1, T2, T3, T4]) Swap(i, j int) {
	if distinct(v.p[:], 0) {
		swapAt[T1](v.p[0], i, j)
	}
	if distinct(v.p[:], 1) {
		swapAt[T2](v.p[1], i, j)
	}
	if distinct(v.p[:], 2) {
		swapAt[T3](v.p[2], i, j)
	}
	if distinct(v.p[:], 3) {
		swapAt[T4](v.p[3], i, j)
	}
}

// Sort reorders the elements of the selected fields by less. Fields outside
// the view are not moved. It is not stable.
func (v View4[T1, T2, T3, T4]) Sort(less func(a, b Ref4[T1, T2, T3, T4]) bool) {
	sort.Sort(sorter4[T1, T2, T3, T4]{v: v, less: less})
}

type sorter4[T1, T2, T3, T4 any] struct {
	v    View4[T1, T2, T3, T4]
	less func(a, b Ref4[T1, T2, T3, T4]) bool
}

func (s sorter4[T1, T2, T3, T4]) Len() int { return s.v.n }

func (s sorter4[T1, T2, T3, T4]) Less(i, j int) bool { return s.less(s.v.Ref(i), s.v.Ref(j)) }

func (s sorter4[T1, T2, T3, T4]) Swap(i, j int) { s.v.Swap(i, j) }

// Iter4 is a zipped random-access iterator advancing 4 field pointers in
// lockstep. Iterators are values: moving one returns the moved copy.
type Iter4[T1, T2, T3, T4 any] struct {
	p [4]unsafe.Pointer
	i int
}

func (it Iter4[T1, T2, T3, T4]) Next() Iter4[T1, T2, T3, T4] {
	return Iter4[T1, T2, T3, T4]{it.p, it.i + 1}
}

func (it Iter4[T1, T2, T3, T4]) Prev() Iter4[T1, T2, T3, T4] {
	return Iter4[T1, T2, T3, T4]{it.p, it.i - 1}
}

func (it Iter4[T1, T2, T3, T4]) Add(n int) Iter4[T1, T2, T3, T4] {
	return Iter4[T1, T2, T3, T4]{it.p, it.i + n}
}

// Index returns the position of the iterator in its container.
func (it Iter4[T1, T2, T3, T4]) Index() int { return it.i }

// Deref returns the references to the element. The iterator must refer to a
// live element.
func (it Iter4[T1, T2, T3, T4]) Deref() Ref4[T1, T2, T3, T4] {
	return Ref4[T1, T2, T3, T4]{at[T1](it.p[0], it.i), at[T2](it.p[1], it.i), at[T3](it.p[2], it.i), at[T4](it.p[3], it.i)}
}

// Get returns pointers to the fields of the element.
func (it Iter4[T1, T2, T3, T4]) Get() (*T1, *T2, *T3, *T4) {
	return at[T1](it.p[0], it.i), at[T2](it.p[1], it.i), at[T3](it.p[2], it.i), at[T4](it.p[3], it.i)
}

// Equal compares the first field pointer and position only; all pointers
// move together.
func (it Iter4[T1, T2, T3, T4]) Equal(o Iter4[T1, T2, T3, T4]) bool {
	return it.p[0] == o.p[0] && it.i == o.i
}

func (it Iter4[T1, T2, T3, T4]) Less(o Iter4[T1, T2, T3, T4]) bool {
	if debug {
		assertf(it.p[0] == o.p[0], "comparing iterators of different buffers")
	}
	return it.i < o.i
}

// Distance returns it minus o.
func (it Iter4[T1, T2, T3, T4]) Distance(o Iter4[T1, T2, T3, T4]) int { return it.i - o.i }

// Tuple5 holds the values of one element of 5 fields.
type Tuple5[T1, T2, T3, T4, T5 any] struct {
	V1 T1
	V2 T2
	V3 T3
	V4 T4
	V5 T5
}

// Ref5 holds references to the fields of one element. A new Ref5 is built
// on every dereference; fields selected twice alias the same memory.
type Ref5[T1, T2, T3, T4, T5 any] struct {
	F1 *T1
	F2 *T2
	F3 *T3
	F4 *T4
	F5 *T5
}

// Load copies the referenced values.
func (r Ref5[T1, T2, T3, T4, T5]) Load() Tuple5[T1, T2, T3, T4, T5] {
	return Tuple5[T1, T2, T3, T4, T5]{*r.F1, *r.F2, *r.F3, *r.F4, *r.F5}
}

// Store assigns the values of t to the referenced fields.
func (r Ref5[T1, T2, T3, T4, T5]) Store(t Tuple5[T1, T2, T3, T4, T5]) {
	*r.F1 = t.V1
	*r.F2 = t.V2
	*r.F3 = t.V3
	*r.F4 = t.V4
	*r.F5 = t.V5
}

// View5 is a non-owning window over 5 fields of a container, possibly
// repeated or reordered. It is invalidated by any operation that reallocates
// the container.
type View5[T1, T2, T3, T4, T5 any] struct {
	p [5]unsafe.Pointer
	n int
}

// Len returns the number of elements in the view.
func (v View5[T1, T2, T3, T4, T5]) Len() int { return v.n }

// Empty reports whether the view has no elements.
func (v View5[T1, T2, T3, T4, T5]) Empty() bool { return v.n == 0 }

// Get returns pointers to the fields of element i. i is not bounds checked.
func (v View5[T1, T2, T3, T4, T5]) Get(i int) (*T1, *T2, *T3, *T4, *T5) {
	if debug {
		assertf(i >= 0 && i < v.n, "View.Get index out of range")
	}
	return at[T1](v.p[0], i), at[T2](v.p[1], i), at[T3](v.p[2], i), at[T4](v.p[3], i), at[T5](v.p[4], i)
}

// At returns pointers to the fields of element i, or an error wrapping
// ErrOutOfRange.
func (v View5[T1, T2, T3, T4, T5]) At(i int) (*T1, *T2, *T3, *T4, *T5, error) {
	if err := checkIndex(i, v.n); err != nil {
		return nil, nil, nil, nil, nil, err
	}
	return at[T1](v.p[0], i), at[T2](v.p[1], i), at[T3](v.p[2], i), at[T4](v.p[3], i), at[T5](v.p[4], i), nil
}

// Ref returns the references to element i. i is not bounds checked.
func (v View5[T1, T2, T3, T4, T5]) Ref(i int) Ref5[T1, T2, T3, T4, T5] {
	return Ref5[T1, T2, T3, T4, T5]{at[T1](v.p[0], i), at[T2](v.p[1], i), at[T3](v.p[2], i), at[T4](v.p[3], i), at[T5](v.p[4], i)}
}

// Begin returns an iterator to the first element.
func (v View5[T1, T2, T3, T4, T5]) Begin() Iter5[T1, T2, T3, T4, T5] {
	return Iter5[T1, T2, T3, T4, T5]{p: v.p}
}

// End returns an iterator one past the last element.
func (v View5[T1, T2, T3, T4, T5]) End() Iter5[T1, T2, T3, T4, T5] {
	return Iter5[T1, T2, T3, T4, T5]{p: v.p, i: v.n}
}

// IterAt returns an iterator to element i.
func (v View5[T1, T2, T3, T4, T5]) IterAt(i int) Iter5[T1, T2, T3, T4, T5] {
	return Iter5[T1, T2, T3, T4, T5]{p: v.p, i: i}
}

// RBegin returns a reverse iterator to the last element.
func (v View5[T1, T2, T3, T4, T5]) RBegin() Reverse[Iter5[T1, T2, T3, T4, T5], Ref5[T1, T2, T3, T4, T5]] {
	return MakeReverse[Iter5[T1, T2, T3, T4, T5], Ref5[T1, T2, T3, T4, T5]](v.End())
}

// REnd returns a reverse iterator one before the first element.
func (v View5[T1, T2, T3, T4, T5]) REnd() Reverse[Iter5[T1, T2, T3, T4, T5], Ref5[T1, T2, T3, T4, T5]] {
	return MakeReverse[Iter5[T1, T2, T3, T4, T5], Ref5[T1, T2, T3, T4, T5]](v.Begin())
}

// All iterates the elements with their indices.
func (v View5[T1, T2, T3, T4, T5]) All() iter.Seq2[int, Ref5[T1, T2, T3, T4, T5]] {
	return func(yield func(int, Ref5[T1, T2, T3, T4, T5]) bool) {
		for i := range v.n {
			if !yield(i, v.Ref(i)) {
				return
			}
		}
	}
}

// Backward iterates the elements from the back.
func (v View5[T1, T2, T3, T4, T5]) Backward() iter.Seq2[int, Ref5[T1, T2, T3, T4, T5]] {
	return func(yield func(int, Ref5[T1, T2, T3, T4, T5]) bool) {
		for i := v.n - 1; i >= 0; i-- {
			if !yield(i, v.Ref(i)) {
				return
			}
		}
	}
}

// Swap exchanges elements i and j in every selected field. A field selected
// more than once is swapped once.
func (v View5[T1, T2, T3, T4, T5]) Swap(i, j int) {
	if distinct(v.p[:], 0) {
		swapAt[T1](v.p[0], i, j)
	}
	if distinct(v.p[:], 1) {
		swapAt[T2](v.p[1], i, j)
	}
	if distinct(v.p[:], 2) {
		swapAt[T3](v.p[2], i, j)
	}
	if distinct(v.p[:], 3) {
		swapAt[T4](v.p[3], i, j)
	}
	if distinct(v.p[:], 4) {
		swapAt[T5](v.p[4], i, j)
	}
}

// Sort reorders the elements of the selected fields by less. Fields outside
// the view are not moved. It is not stable.
func (v View5[T1, T2, T3, T4, T5]) Sort(less func(a, b Ref5[T1, T2, T3, T4, T5]) bool) {
	sort.Sort(sorter5[T1, T2, T3, T4, T5]{v: v, less: less})
}

type sorter5[T1, T2, T3, T4, T5 any] struct {
	v    View5[T1, T2, T3, T4, T5]
	less func(a, b Ref5[T1, T2, T3, T4, T5]) bool
}

func (s sorter5[T1, T2, T3, T4, T5]) Len() int { return s.v.n }

func (s sorter5[T1, T2, T3, T4, T5]) Less(i, j int) bool { return s.less(s.v.Ref(i), s.v.Ref(j)) }

func (s sorter5[T1, T2, T3, T4, T5]) Swap(i, j int) { s.v.Swap(i, j) }

// Iter5 is a zipped random-access iterator advancing 5 field pointers in
// lockstep. Iterators are values: moving one returns the moved copy.
type Iter5[T1, T2, T3, T4, T5 any] struct {
	p [5]unsafe.Pointer
	i int
}

func (it Iter5[T1, T2, T3, T4, T5]) Next() Iter5[T1, T2, T3, T4, T5] {
	return Iter5[T1, T2, T3, T4, T5]{it.p, it.i + 1}
}

func (it Iter5[T1, T2, T3, T4, T5]) Prev() Iter5[T1, T2, T3, T4, T5] {
	return Iter5[T1, T2, T3, T4, T5]{it.p, it.i - 1}
}

func (it Iter5[T1, T2, T3, T4, T5]) Add(n int) Iter5[T1, T2, T3, T4, T5] {
	return Iter5[T1, T2, T3, T4, T5]{it.p, it.i + n}
}

// Index returns the position of the iterator in its container.
func (it Iter5[T1, T2, T3, T4, T5]) Index() int { return it.i }

// Deref returns the references to the element. The iterator must refer to a
// live element.
func (it Iter5[T1, T2, T3, T4, T5]) Deref() Ref5[T1, T2, T3, T4, T5] {
	return Ref5[T1, T2, T3, T4, T5]{at[T1](it.p[0], it.i), at[T2](it.p[1], it.i), at[T3](it.p[2], it.i), at[T4](it.p[3], it.i), at[T5](it.p[4], it.i)}
}

// Get returns pointers to the fields of the element.
func (it Iter5[T1, T2, T3, T4, T5]) Get() (*T1, *T2, *T3, *T4, *T5) {
	return at[T1](it.p[0], it.i), at[T2](it.p[1], it.i), at[T3](it.p[2], it.i), at[T4](it.p[3], it.i), at[T5](it.p[4], it.i)
}

// Equal compares the first field pointer and position only; all pointers
// move together.
func (it Iter5[T1, T2, T3, T4, T5]) Equal(o Iter5[T1, T2, T3, T4, T5]) bool {
	return it.p[0] == o.p[0] && it.i == o.i
}

func (it Iter5[T1, T2, T3, T4, T5]) Less(o Iter5[T1, T2, T3, T4, T5]) bool {
	if debug {
		assertf(it.p[0] == o.p[0], "comparing iterators of different buffers")
	}
	return it.i < o.i
}

// Distance returns it minus o.
func (it Iter5[T1, T2, T3, T4, T5]) Distance(o Iter5[T1, T2, T3, T4, T5]) int { return it.i - o.i }

// Tuple6 holds the values of one element of 6 fields.
type Tuple6[T1, T2, T3, T4, T5, T6 any] struct {
	V1 T1
	V2 T2
	V3 T3
	V4 T4
	V5 T5
	V6 T6
}

// Ref6 holds references to the fields of one element. A new Ref6 is built
// on every dereference; fields selected twice alias the same memory.
type Ref6[T1, T2, T3, T4, T5, T6 any] struct {
	F1 *T1
	F2 *T2
	F3 *T3
	F4 *T4
	F5 *T5
	F6 *T6
}

// Load copies the referenced values.
func (r Ref6[T1, T2, T3, T4, T5, T6]) Load() Tuple6[T1, T2, T3, T4, T5, T6] {
	return Tuple6[T1, T2, T3, T4, T5, T6]{*r.F1, *r.F2, *r.F3, *r.F4, *r.F5, *r.F6}
}

// Store assigns the values of t to the referenced fields.
func (r Ref6[T1, T2, T3, T4, T5, T6]) Store(t Tuple6[T1, T2, T3, T4, T5, T6]) {
	*r.F1 = t.V1
	*r.F2 = t.V2
	*r.F3 = t.V3
	*r.F4 = t.V4
	*r.F5 = t.V5
	*r.F6 = t.V6
}

// View6 is a non-owning window over 6 fields of a container, possibly
// repeated or reordered. It is invalidated by any operation that reallocates
// the container.
type View6[T1, T2, T3, T4, T5, T6 any] struct {
	p [6]unsafe.Pointer
	n int
}

// Len returns the number of elements in the view.
func (v View6[T1, T2, T3, T4, T5, T6]) Len() int { return v.n }

// Empty reports whether the view has no elements.
func (v View6[T1, T2, T3, T4, T5, T6]) Empty() bool { return v.n == 0 }

// Get returns pointers to the fields of element i. i is not bounds checked.
func (v View6[T1, T2, T3, T4, T5, T6]) Get(i int) (*T1, *T2, *T3, *T4, *T5, *T6) {
	if debug {
		assertf(i >= 0 && i < v.n, "View.Get index out of range")
	}
	return at[T1](v.p[0], i), at[T2](v.p[1], i), at[T3](v.p[2], i), at[T4](v.p[3], i), at[T5](v.p[4], i), at[T6](v.p[5], i)
}

// At returns pointers to the fields of element i, or an error wrapping
// ErrOutOfRange.
func (v View6[T1, T2, T3, T4, T5, T6]) At(i int) (*T1, *T2, *T3, *T4, *T5, *T6, error) {
	if err := checkIndex(i, v.n); err != nil {
		return nil, nil, nil, nil, nil, nil, err
	}
	return at[T1](v.p[0], i), at[T2](v.p[1], i), at[T3](v.p[2], i), at[T4](v.p[3], i), at[T5](v.p[4], i), at[T6](v.p[5], i), nil
}

// Ref returns the references to element i. i is not bounds checked.
func (v View6[T1, T2, T3, T4, T5, T6]) Ref(i int) Ref6[T1, T2, T3, T4, T5, T6] {
	return Ref6[T1, T2, T3, T4, T5, T6]{at[T1](v.p[0], i), at[T2](v.p[1], i), at[T3](v.p[2], i), at[T4](v.p[3], i), at[T5](v.p[4], i), at[T6](v.p[5], i)}
}

// Begin returns an iterator to the first element.
func (v View6[T1, T2, T3, T4, T5, T6]) Begin() Iter6[T1, T2, T3, T4, T5, T6] {
	return Iter6[T1, T2, T3, T4, T5, T6]{p: v.p}
}

// End returns an iterator one past the last element.
func (v View6[T1, T2, T3, T4, T5, T6]) End() Iter6[T1, T2, T3, T4, T5, T6] {
	return Iter6[T1, T2, T3, T4, T5, T6]{p: v.p, i: v.n}
}

// IterAt returns an iterator to element i.
func (v View6[T1, T2, T3, T4, T5, T6]) IterAt(i int) Iter6[T1, T2, T3, T4, T5, T6] {
	return Iter6[T1, T2, T3, T4, T5, T6]{p: v.p, i: i}
}

// RBegin returns a reverse iterator to the last element.
func (v View6[T1, T2, T3, T4, T5, T6]) RBegin() Reverse[Iter6[T1, T2, T3, T4, T5, T6], Ref6[T1, T2, T3, T4, T5, T6]] {
	return MakeReverse[Iter6[T1, T2, T3, T4, T5, T6], Ref6[T1, T2, T3, T4, T5, T6]](v.End())
}

// REnd returns a reverse iterator one before the first element.
func (v View6[T1, T2, T3, T4, T5, T6]) REnd() Reverse[Iter6[T1, T2, T3, T4, T5, T6], Ref6[T1, T2, T3, T4, T5, T6]] {
	return MakeReverse[Iter6[T1, T2, T3, T4, T5, T6], Ref6[T1, T2, T3, T4, T5, T6]](v.Begin())
}

// All iterates the elements with their indices.
func (v View6[T1, T2, T3, T4, T5, T6]) All() iter.Seq2[int, Ref6[T1, T2, T3, T4, T5, T6]] {
	return func(yield func(int, Ref6[T1, T2, T3, T4, T5, T6]) bool) {
		for i := range v.n {
			if !yield(i, v.Ref(i)) {
				return
			}
		}
	}
}

// Backward iterates the elements from the back.
func (v View6[T1, T2, T3, T4, T5, T6]) Backward() iter.Seq2[int, Ref6[T1, T2, T3, T4, T5, T6]] {
	return func(yield func(int, Ref6[T1, T2, T3, T4, T5, T6]) bool) {
		for i := v.n - 1; i >= 0; i-- {
			if !yield(i, v.Ref(i)) {
				return
			}
		}
	}
}

// Swap exchanges elements i and j in every selected field. A field selected
// more than once is swapped once.
func (v View6[T1, T2, T3, T4, T5, T6]) Swap(i, j int) {
	if distinct(v.p[:], 0) {
		swapAt[T1](v.p[0], i, j)
	}
	if distinct(v.p[:], 1) {
		swapAt[T2](v.p[1], i, j)
	}
	if distinct(v.p[:], 2) {
		swapAt[T3](v.p[2], i, j)
	}
	if distinct(v.p[:], 3) {
		swapAt[T4](v.p[3], i, j)
	}
	if distinct(v.p[:], 4) {
		swapAt[T5](v.p[4], i, j)
	}
	if distinct(v.p[:], 5) {
		swapAt[T6](v.p[5], i, j)
	}
}

// Sort reorders the elements of the selected fields by less. Fields outside
// the view are not moved. It is not stable.
func (v View6[T1, T2, T3, T4, T5, T6]) Sort(less func(a, b Ref6[T1, T2, T3, T4, T5, T6]) bool) {
	sort.Sort(sorter6[T1, T2, T3, T4, T5, T6]{v: v, less: less})
}

type sorter6[T1, T2, T3, T4, T5, T6 any] struct {
	v    View6[T1, T2, T3, T4, T5, T6]
	less func(a, b Ref6[T1, T2, T3, T4, T5, T6]) bool
}

func (s sorter6[T1, T2, T3, T4, T5, T6]) Len() int { return s.v.n }

func (s sorter6[T1, T2, T3, T4, T5, T6]) Less(i, j int) bool { return s.less(s.v.Ref(i), s.v.Ref(j)) }

func (s sorter6[T1, T2, T3, T4, T5, T6]) Swap(i, j int) { s.v.Swap(i, j) }

// Iter6 is a zipped random-access iterator advancing 6 field pointers in
// lockstep. Iterators are values: moving one returns the moved copy.
type Iter6[T1, T2, T3, T4, T5, T6 any] struct {
	p [6]unsafe.Pointer
	i int
}

func (it Iter6[T1, T2, T3, T4, T5, T6]) Next() Iter6[T1, T2, T3, T4, T5, T6] {
	return Iter6[T1, T2, T3, T4, T5, T6]{it.p, it.i + 1}
}

func (it Iter6[T1, T2, T3, T4, T5, T6]) Prev() Iter6[T1, T2, T3, T4, T5, T6] {
	return Iter6[T1, T2, T3, T4, T5, T6]{it.p, it.i - 1}
}

func (it Iter6[T1, T2, T3, T4, T5, T6]) Add(n int) Iter6[T1, T2, T3, T4, T5, T6] {
	return Iter6[T1, T2, T3, T4, T5, T6]{it.p, it.i + n}
}

// Index returns the position of the iterator in its container.
func (it Iter6[T1, T2, T3, T4, T5, T6]) Index() int { return it.i }

// Deref returns the references to the element. The iterator must refer to a
// live element.
func (it Iter6[T1, T2, T3, T4, T5, T6]) Deref() Ref6[T1, T2, T3, T4, T5, T6] {
	return Ref6[T1, T2, T3, T4, T5, T6]{at[T1](it.p[0], it.i), at[T2](it.p[1], it.i), at[T3](it.p[2], it.i), at[T4](it.p[3], it.i), at[T5](it.p[4], it.i), at[T6](it.p[5], it.i)}
}

// Get returns pointers to the fields of the element.
func (it Iter6[T1, T2, T3, T4, T5, T6]) Get() (*T1, *T2, *T3, *T4, *T5, *T6) {
	return at[T1](it.p[0], it.i), at[T2](it.p[1], it.i), at[T3](it.p[2], it.i), at[T4](it.p[3], it.i), at[T5](it.p[4], it.i), at[T6](it.p[5], it.i)
}

// Equal compares the first field pointer and position only; all pointers
// move together.
func (it Iter6[T1, T2, T3, T4, T5, T6]) Equal(o Iter6[T1, T2, T3, T4, T5, T6]) bool {
	return it.p[0] == o.p[0] && it.i == o.i
}

func (it Iter6[T1, T2, T3, T4, T5, T6]) Less(o Iter6[T1, T2, T3, T4, T5, T6]) bool {
	if debug {
		assertf(it.p[0] == o.p[0], "comparing iterators of different buffers")
	}
	return it.i < o.i
}

// Distance returns it minus o.
func (it Iter6[T1, T2, T3, T4, T5, T6]) Distance(o Iter6[T1, T2, T3, T4, T5, T6]) int { return it.i - o.i }
