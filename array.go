package retsu

import "iter"

// Array is the single-field container. It shares the engine, allocators and
// growth policy of the multi-field ArrayN types.
type Array[T any] struct {
	store
}

// MakeArray returns an empty Array. Nothing is allocated until the first
// element is added or Reserve is called.
func MakeArray[T any](opts ...Option) *Array[T] {
	a := &Array[T]{}
	a.init(opts, newColumn[T]())
	return a
}

// NewArray returns an Array holding n default-constructed elements with
// capacity exactly n.
func NewArray[T any](n int, opts ...Option) (*Array[T], error) {
	a := MakeArray[T](opts...)
	if err := a.Resize(n); err != nil {
		return nil, err
	}
	return a, nil
}

// NewArrayFilled returns an Array holding n copies of v with capacity
// exactly n.
func NewArrayFilled[T any](n int, v T, opts ...Option) (*Array[T], error) {
	a := MakeArray[T](opts...)
	if err := a.ResizeFill(n, v); err != nil {
		return nil, err
	}
	return a, nil
}

// Get returns a pointer to element i. i is not bounds checked.
func (a *Array[T]) Get(i int) *T {
	if debug {
		assertf(i >= 0 && i < a.size, "Get index out of range")
	}
	return at[T](a.base(0), i)
}

// Set assigns v to element i. i is not bounds checked.
func (a *Array[T]) Set(i int, v T) {
	*a.Get(i) = v
}

// At returns a pointer to element i, or an error wrapping ErrOutOfRange.
func (a *Array[T]) At(i int) (*T, error) {
	if err := checkIndex(i, a.size); err != nil {
		return nil, err
	}
	return at[T](a.base(0), i), nil
}

// Front returns the first element. The array must not be empty.
func (a *Array[T]) Front() *T {
	return a.Get(0)
}

// Back returns the last element. The array must not be empty.
func (a *Array[T]) Back() *T {
	return a.Get(a.size - 1)
}

// Emplace appends one element built in place by init, which receives the
// zeroed slot. A nil init default-constructs it. If init panics the array
// is unchanged.
func (a *Array[T]) Emplace(init func(*T)) error {
	if err := a.growFor(1); err != nil {
		return err
	}
	i, built := a.size, 0
	defer func() {
		if built != 1 {
			a.abandon(i, built)
		}
	}()
	placeWith(at[T](a.base(0), i), init)
	built++
	a.size++
	return nil
}

// PushBack appends v.
func (a *Array[T]) PushBack(v T) error {
	if err := a.growFor(1); err != nil {
		return err
	}
	*at[T](a.base(0), a.size) = v
	a.size++
	return nil
}

// PushBackZero appends one default-constructed element.
func (a *Array[T]) PushBackZero() error {
	return a.pushZero()
}

// Insert inserts count copies of v before pos and returns pos.
// Elements from pos on shift right by count.
func (a *Array[T]) Insert(pos, count int, v T) (int, error) {
	if count == 0 {
		return pos, nil
	}
	if err := a.openGap(pos, count); err != nil {
		return pos, err
	}
	fill(a.base(0), pos, pos+count, v)
	a.size += count
	return pos, nil
}

// ResizeFill is Resize with new elements set to v.
func (a *Array[T]) ResizeFill(n int, v T) error {
	return a.resizeWith(n, func(from, to int) {
		fill(a.base(0), from, to, v)
	})
}

// Data returns the live elements. The slice aliases the buffer and is
// invalidated by any reallocation.
func (a *Array[T]) Data() []T {
	return live[T](a.base(0), a.size)
}

// View returns a view over the live elements.
func (a *Array[T]) View() View[T] {
	return View[T]{p: a.base(0), n: a.size}
}

// All iterates the live elements with their indices.
func (a *Array[T]) All() iter.Seq2[int, *T] {
	return a.View().All()
}

// Backward iterates the live elements from the back.
func (a *Array[T]) Backward() iter.Seq2[int, *T] {
	return a.View().Backward()
}

// Begin returns an iterator to the first element.
func (a *Array[T]) Begin() Iter[T] { return a.View().Begin() }

// End returns an iterator one past the last element.
func (a *Array[T]) End() Iter[T] { return a.View().End() }

// Clone returns a copy of a with the same capacity and options.
func (a *Array[T]) Clone() (*Array[T], error) {
	c := &Array[T]{}
	if err := a.cloneInto(&c.store); err != nil {
		return nil, err
	}
	return c, nil
}

// CopyFrom replaces the elements of a with copies of those of src.
// On error a is unchanged.
func (a *Array[T]) CopyFrom(src *Array[T]) error {
	return a.assign(&src.store)
}

// MoveFrom releases a and takes over the buffers of src. src is left empty
// with capacity 0 and remains usable.
func (a *Array[T]) MoveFrom(src *Array[T]) {
	a.moveFrom(&src.store)
}

// Swap exchanges the contents and options of a and o.
func (a *Array[T]) Swap(o *Array[T]) {
	a.swap(&o.store)
}
