package retsu

import (
	"iter"
	"unsafe"
)

// Array2 is a structure-of-arrays container of 2 fields. Each field
// lives in its own buffer; all buffers share one length and capacity.
type Array2[T1, T2 any] struct {
	store
}

// MakeArray2 returns an empty Array2. Nothing is allocated until the first
// element is added or Reserve is called.
func MakeArray2[T1, T2 any](opts ...Option) *Array2[T1, T2] {
	a := &Array2[T1, T2]{}
	a.init(opts, newColumn[T1](), newColumn[T2]())
	return a
}

// NewArray2 returns an Array2 holding n default-constructed elements with
// capacity exactly n.
func NewArray2[T1, T2 any](n int, opts ...Option) (*Array2[T1, T2], error) {
	a := MakeArray2[T1, T2](opts...)
	if err := a.Resize(n); err != nil {
		return nil, err
	}
	return a, nil
}

// NewArray2Filled returns an Array2 holding n copies of the given field
// values with capacity exactly n.
func NewArray2Filled[T1, T2 any](n int, v1 T1, v2 T2, opts ...Option) (*Array2[T1, T2], error) {
	a := MakeArray2[T1, T2](opts...)
	if err := a.ResizeFill(n, v1, v2); err != nil {
		return nil, err
	}
	return a, nil
}

// Get returns pointers to every field of element i. i is not bounds checked.
func (a *Array2[T1, T2]) Get(i int) (*T1, *T2) {
	if debug {
		assertf(i >= 0 && i < a.size, "Get index out of range")
	}
	return at[T1](a.base(0), i), at[T2](a.base(1), i)
}

// Get1 returns a pointer to field 1 of element i. i is not bounds checked.
func (a *Array2[T1, T2]) Get1(i int) *T1 {
	if debug {
		assertf(i >= 0 && i < a.size, "Get1 index out of range")
	}
	return at[T1](a.base(0), i)
}

// Set1 assigns v to field 1 of element i. i is not bounds checked.
func (a *Array2[T1, T2]) Set1(i int, v T1) {
	*a.Get1(i) = v
}

// Get2 returns a pointer to field 2 of element i. i is not bounds checked.
func (a *Array2[T1, T2]) Get2(i int) *T2 {
	if debug {
		assertf(i >= 0 && i < a.size, "Get2 index out of range")
	}
	return at[T2](a.base(1), i)
}

// Set2 assigns v to field 2 of element i. i is not bounds checked.
func (a *Array2[T1, T2]) Set2(i int, v T2) {
	*a.Get2(i) = v
}

// Set assigns the given values to element i. i is not bounds checked.
func (a *Array2[T1, T2]) Set(i int, v1 T1, v2 T2) {
	if debug {
		assertf(i >= 0 && i < a.size, "Set index out of range")
	}
	*at[T1](a.base(0), i) = v1
	*at[T2](a.base(1), i) = v2
}

// At returns pointers to every field of element i, or an error wrapping
// ErrOutOfRange.
func (a *Array2[T1, T2]) At(i int) (*T1, *T2, error) {
	if err := checkIndex(i, a.size); err != nil {
		return nil, nil, err
	}
	return at[T1](a.base(0), i), at[T2](a.base(1), i), nil
}

// Ref returns the references to element i. i is not bounds checked.
func (a *Array2[T1, T2]) Ref(i int) Ref2[T1, T2] {
	if debug {
		assertf(i >= 0 && i < a.size, "Ref index out of range")
	}
	return Ref2[T1, T2]{at[T1](a.base(0), i), at[T2](a.base(1), i)}
}

// Front returns the first element. The array must not be empty.
func (a *Array2[T1, T2]) Front() (*T1, *T2) {
	return a.Get(0)
}

// Back returns the last element. The array must not be empty.
func (a *Array2[T1, T2]) Back() (*T1, *T2) {
	return a.Get(a.size - 1)
}

// Emplace appends one element whose fields are built in place, each by its
// initializer receiving the zeroed slot. A nil initializer default-constructs
// its field. If an initializer panics, the fields already built are destroyed
// and the array is unchanged.
func (a *Array2[T1, T2]) Emplace(init1 func(*T1), init2 func(*T2)) error {
	if err := a.growFor(1); err != nil {
		return err
	}
	i, built := a.size, 0
	defer func() {
		if built != 2 {
			a.abandon(i, built)
		}
	}()
	placeWith(at[T1](a.base(0), i), init1)
	built++
	placeWith(at[T2](a.base(1), i), init2)
	built++
	a.size++
	return nil
}

// PushBack appends one element holding the given values.
func (a *Array2[T1, T2]) PushBack(v1 T1, v2 T2) error {
	if err := a.growFor(1); err != nil {
		return err
	}
	*at[T1](a.base(0), a.size) = v1
	*at[T2](a.base(1), a.size) = v2
	a.size++
	return nil
}

// PushTuple appends one element holding the values of t.
func (a *Array2[T1, T2]) PushTuple(t Tuple2[T1, T2]) error {
	return a.PushBack(t.V1, t.V2)
}

// PushBackZero appends one default-constructed element.
func (a *Array2[T1, T2]) PushBackZero() error {
	return a.pushZero()
}

// Insert inserts count copies of the given values before pos and returns pos.
// Elements from pos on shift right by count.
func (a *Array2[T1, T2]) Insert(pos, count int, v1 T1, v2 T2) (int, error) {
	if count == 0 {
		return pos, nil
	}
	if err := a.openGap(pos, count); err != nil {
		return pos, err
	}
	fill(a.base(0), pos, pos+count, v1)
	fill(a.base(1), pos, pos+count, v2)
	a.size += count
	return pos, nil
}

// ResizeFill is Resize with new elements set to the given values.
func (a *Array2[T1, T2]) ResizeFill(n int, v1 T1, v2 T2) error {
	return a.resizeWith(n, func(from, to int) {
		fill(a.base(0), from, to, v1)
		fill(a.base(1), from, to, v2)
	})
}

// Data1 returns the live elements of field 1. The slice aliases the buffer
// and is invalidated by any reallocation.
func (a *Array2[T1, T2]) Data1() []T1 {
	return live[T1](a.base(0), a.size)
}

// Data2 returns the live elements of field 2. The slice aliases the buffer
// and is invalidated by any reallocation.
func (a *Array2[T1, T2]) Data2() []T2 {
	return live[T2](a.base(1), a.size)
}

// View returns a view over every field.
func (a *Array2[T1, T2]) View() View2[T1, T2] {
	return View2[T1, T2]{p: [2]unsafe.Pointer{a.base(0), a.base(1)}, n: a.size}
}

// All iterates the elements with their indices.
func (a *Array2[T1, T2]) All() iter.Seq2[int, Ref2[T1, T2]] {
	return a.View().All()
}

// Backward iterates the elements from the back.
func (a *Array2[T1, T2]) Backward() iter.Seq2[int, Ref2[T1, T2]] {
	return a.View().Backward()
}

// Begin returns an iterator to the first element.
func (a *Array2[T1, T2]) Begin() Iter2[T1, T2] {
	return a.View().Begin()
}

// End returns an iterator one past the last element.
func (a *Array2[T1, T2]) End() Iter2[T1, T2] {
	return a.View().End()
}

// Clone returns a copy of a with the same capacity and options.
func (a *Array2[T1, T2]) Clone() (*Array2[T1, T2], error) {
	c := &Array2[T1, T2]{}
	if err := a.cloneInto(&c.store); err != nil {
		return nil, err
	}
	return c, nil
}

// CopyFrom replaces the elements of a with copies of those of src.
// On error a is unchanged.
func (a *Array2[T1, T2]) CopyFrom(src *Array2[T1, T2]) error {
	return a.assign(&src.store)
}

// MoveFrom releases a and takes over the buffers of src. src is left empty
// with capacity 0 and remains usable.
func (a *Array2[T1, T2]) MoveFrom(src *Array2[T1, T2]) {
	a.moveFrom(&src.store)
}

// Swap exchanges the contents and options of a and o.
func (a *Array2[T1, T2]) Swap(o *Array2[T1, T2]) {
	a.swap(&o.store)
}

// Array3 is a structure-of-arrays container of 3 fields. Each field
// lives in its own buffer; all buffers share one length and capacity.
type Array3[T1, T2, T3 any] struct {
	store
}

// MakeArray3 returns an empty Array3. Nothing is allocated until the first
// element is added or Reserve is called.
func MakeArray3[T1, T2, T3 any](opts ...Option) *Array3[T1, T2, T3] {
	a := &Array3[T1, T2, T3]{}
	a.init(opts, newColumn[T1](), newColumn[T2](), newColumn[T3]())
	return a
}

// NewArray3 returns an Array3 holding n default-constructed elements with
// capacity exactly n.
func NewArray3[T1, T2, T3 any](n int, opts ...Option) (*Array3[T1, T2, T3], error) {
	a := MakeArray3[T1, T2, T3](opts...)
	if err := a.Resize(n); err != nil {
		return nil, err
	}
	return a, nil
}

// NewArray3Filled returns an Array3 holding n copies of the given field
// values with capacity exactly n.
func NewArray3Filled[T1, T2, T3 any](n int, v1 T1, v2 T2, v3 T3, opts ...Option) (*Array3[T1, T2, T3], error) {
	a := MakeArray3[T1, T2, T3](opts...)
	if err := a.ResizeFill(n, v1, v2, v3); err != nil {
		return nil, err
	}
	return a, nil
}

// Get returns pointers to every field of element i. i is not bounds checked.
func (a *Array3[T1, T2, T3]) Get(i int) (*T1, *T2, *T3) {
	if debug {
		assertf(i >= 0 && i < a.size, "Get index out of range")
	}
	return at[T1](a.base(0), i), at[T2](a.base(1), i), at[T3](a.base(2), i)
}

// Get1 returns a pointer to field 1 of element i. i is not bounds checked.
func (a *Array3[T1, T2, T3]) Get1(i int) *T1 {
	if debug {
		assertf(i >= 0 && i < a.size, "Get1 index out of range")
	}
	return at[T1](a.base(0), i)
}

// Set1 assigns v to field 1 of element i. i is not bounds checked.
func (a *Array3[T1, T2, T3]) Set1(i int, v T1) {
	*a.Get1(i) = v
}

// Get2 returns a pointer to field 2 of element i. i is not bounds checked.
func (a *Array3[T1, T2, T3]) Get2(i int) *T2 {
	if debug {
		assertf(i >= 0 && i < a.size, "Get2 index out of range")
	}
	return at[T2](a.base(1), i)
}

// Set2 assigns v to field 2 of element i. i is not bounds checked.
func (a *Array3[T1, T2, T3]) Set2(i int, v T2) {
	*a.Get2(i) = v
}

// Get3 returns a pointer to field 3 of element i. i is not bounds checked.
func (a *Array3[T1, T2, T3]) Get3(i int) *T3 {
	if debug {
		assertf(i >= 0 && i < a.size, "Get3 index out of range")
	}
	return at[T3](a.base(2), i)
}

// Set3 assigns v to field 3 of element i. i is not bounds checked.
func (a *Array3[T1, T2, T3]) Set3(i int, v T3) {
	*a.Get3(i) = v
}

// Set assigns the given values to element i. i is not bounds checked.
func (a *Array3[T1, T2, T3]) Set(i int, v1 T1, v2 T2, v3 T3) {
	if debug {
		assertf(i >= 0 && i < a.size, "Set index out of range")
	}
	*at[T1](a.base(0), i) = v1
	*at[T2](a.base(1), i) = v2
	*at[T3](a.base(2), i) = v3
}

// At returns pointers to every field of element i, or an error wrapping
// ErrOutOfRange.
func (a *Array3[T1, T2, T3]) At(i int) (*T1, *T2, *T3, error) {
	if err := checkIndex(i, a.size); err != nil {
		return nil, nil, nil, err
	}
	return at[T1](a.base(0), i), at[T2](a.base(1), i), at[T3](a.base(2), i), nil
}

// Ref returns the references to element i. i is not bounds checked.
func (a *Array3[T1, T2, T3]) Ref(i int) Ref3[T1, T2, T3] {
	if debug {
		assertf(i >= 0 && i < a.size, "Ref index out of range")
	}
	return Ref3[T1, T2, T3]{at[T1](a.base(0), i), at[T2](a.base(1), i), at[T3](a.base(2), i)}
}

// Front returns the first element. The array must not be empty.
func (a *Array3[T1, T2, T3]) Front() (*T1, *T2, *T3) {
	return a.Get(0)
}

// Back returns the last element. The array must not be empty.
func (a *Array3[T1, T2, T3]) Back() (*T1, *T2, *T3) {
	return a.Get(a.size - 1)
}

// Emplace appends one element whose fields are built in place, each by its
// initializer receiving the zeroed slot. A nil initializer default-constructs
// its field. If an initializer panics, the fields already built are destroyed
// and the array is unchanged.
func (a *Array3[T1, T2, T3]) Emplace(init1 func(*T1), init2 func(*T2), init3 func(*T3)) error {
	if err := a.growFor(1); err != nil {
		return err
	}
	i, built := a.size, 0
	defer func() {
		if built != 3 {
			a.abandon(i, built)
		}
	}()
	placeWith(at[T1](a.base(0), i), init1)
	built++
	placeWith(at[T2](a.base(1), i), init2)
	built++
	placeWith(at[T3](a.base(2), i), init3)
	built++
	a.size++
	return nil
}

// PushBack appends one element holding the given values.
func (a *Array3[T1, T2, T3]) PushBack(v1 T1, v2 T2, v3 T3) error {
	if err := a.growFor(1); err != nil {
		return err
	}
	*at[T1](a.base(0), a.size) = v1
	*at[T2](a.base(1), a.size) = v2
	*at[T3](a.base(2), a.size) = v3
	a.size++
	return nil
}

// PushTuple appends one element holding the values of t.
func (a *Array3[T1, T2, T3]) PushTuple(t Tuple3[T1, T2, T3]) error {
	return a.PushBack(t.V1, t.V2, t.V3)
}

// PushBackZero appends one default-constructed element.
func (a *Array3[T1, T2, T3]) PushBackZero() error {
	return a.pushZero()
}

// Insert inserts count copies of the given values before pos and returns pos.
// Elements from pos on shift right by count.
func (a *Array3[T1, T2, T3]) Insert(pos, count int, v1 T1, v2 T2, v3 T3) (int, error) {
	if count == 0 {
		return pos, nil
	}
	if err := a.openGap(pos, count); err != nil {
		return pos, err
	}
	fill(a.base(0), pos, pos+count, v1)
	fill(a.base(1), pos, pos+count, v2)
	fill(a.base(2), pos, pos+count, v3)
	a.size += count
	return pos, nil
}

// ResizeFill is Resize with new elements set to the given values.
func (a *Array3[T1, T2, T3]) ResizeFill(n int, v1 T1, v2 T2, v3 T3) error {
	return a.resizeWith(n, func(from, to int) {
		fill(a.base(0), from, to, v1)
		fill(a.base(1), from, to, v2)
		fill(a.base(2), from, to, v3)
	})
}

// Data1 returns the live elements of field 1. The slice aliases the buffer
// and is invalidated by any reallocation.
func (a *Array3[T1, T2, T3]) Data1() []T1 {
	return live[T1](a.base(0), a.size)
}

// Data2 returns the live elements of field 2. The slice aliases the buffer
// and is invalidated by any reallocation.
func (a *Array3[T1, T2, T3]) Data2() []T2 {
	return live[T2](a.base(1), a.size)
}

// Data3 returns the live elements of field 3. The slice aliases the buffer
// and is invalidated by any reallocation.
func (a *Array3[T1, T2, T3]) Data3() []T3 {
	return live[T3](a.base(2), a.size)
}

// View returns a view over every field.
func (a *Array3[T1, T2, T3]) View() View3[T1, T2, T3] {
	return View3[T1, T2, T3]{p: [3]unsafe.Pointer{a.base(0), a.base(1), a.base(2)}, n: a.size}
}

// All iterates the elements with their indices.
func (a *Array3[T1, T2, T3]) All() iter.Seq2[int, Ref3[T1, T2, T3]] {
	return a.View().All()
}

// Backward iterates the elements from the back.
func (a *Array3[T1, T2, T3]) Backward() iter.Seq2[int, Ref3[T1, T2, T3]] {
	return a.View().Backward()
}

// Begin returns an iterator to the first element.
func (a *Array3[T1, T2, T3]) Begin() Iter3[T1, T2, T3] {
	return a.View().Begin()
}

// End returns an iterator one past the last element.
func (a *Array3[T1, T2, T3]) End() Iter3[T1, T2, T3] {
	return a.View().End()
}

// Clone returns a copy of a with the same capacity and options.
func (a *Array3[T1, T2, T3]) Clone() (*Array3[T1, T2, T3], error) {
	c := &Array3[T1, T2, T3]{}
	if err := a.cloneInto(&c.store); err != nil {
		return nil, err
	}
	return c, nil
}

// CopyFrom replaces the elements of a with copies of those of src.
// On error a is unchanged.
func (a *Array3[T1, T2, T3]) CopyFrom(src *Array3[T1, T2, T3]) error {
	return a.assign(&src.store)
}

// MoveFrom releases a and takes over the buffers of src. src is left empty
// with capacity 0 and remains usable.
func (a *Array3[T1, T2, T3]) MoveFrom(src *Array3[T1, T2, T3]) {
	a.moveFrom(&src.store)
}

// Swap exchanges the contents and options of a and o.
func (a *Array3[T1, T2, T3]) Swap(o *Array3[T1, T2, T3]) {
	a.swap(&o.store)
}

// Array4 is a structure-of-arrays container of 4 fields. Each field
// lives in its own buffer; all buffers share one length and capacity.
type Array4[T1, T2, T3, T4 any] struct {
	store
}

// MakeArray4 returns an empty Array4. Nothing is allocated until the first
// element is added or Reserve is called.
func MakeArray4[T1, T2, T3, T4 any](opts ...Option) *Array4[T1, T2, T3, T4] {
	a := &Array4[T1, T2, T3, T4]{}
	a.init(opts, newColumn[T1](), newColumn[T2](), newColumn[T3](), newColumn[T4]())
	return a
}

// NewArray4 returns an Array4 holding n default-constructed elements with
// capacity exactly n.
func NewArray4[T1, T2, T3, T4 any](n int, opts ...Option) (*Array4[T1, T2, T3, T4], error) {
	a := MakeArray4[T1, T2, T3, T4](opts...)
	if err := a.Resize(n); err != nil {
		return nil, err
	}
	return a, nil
}

// NewArray4Filled returns an Array4 holding n copies of the given field
// values with capacity exactly n.
func NewArray4Filled[T1, T2, T3, T4 any](n int, v1 T1, v2 T2, v3 T3, v4 T4, opts ...Option) (*Array4[T1, T2, T3, T4], error) {
	a := MakeArray4[T1, T2, T3, T4](opts...)
	if err := a.ResizeFill(n, v1, v2, v3, v4); err != nil {
		return nil, err
	}
	return a, nil
}

// Get returns pointers to every field of element i. i is not bounds checked.
func (a *Array4[T1, T2, T3, T4]) Get(i int) (*T1, *T2, *T3, *T4) {
	if debug {
		assertf(i >= 0 && i < a.size, "Get index out of range")
	}
	return at[T1](a.base(0), i), at[T2](a.base(1), i), at[T3](a.base(2), i), at[T4](a.base(3), i)
}

// Get1 returns a pointer to field 1 of element i. i is not bounds checked.
func (a *Array4[T1, T2, T3, T4]) Get1(i int) *T1 {
	if debug {
		assertf(i >= 0 && i < a.size, "Get1 index out of range")
	}
	return at[T1](a.base(0), i)
}

// Set1 assigns v to field 1 of element i. i is not bounds checked.
func (a *Array4[T1, T2, T3, T4]) Set1(i int, v T1) {
	*a.Get1(i) = v
}

// Get2 returns a pointer to field 2 of element i. i is not bounds checked.
func (a *Array4[T1, T2, T3, T4]) Get2(i int) *T2 {
	if debug {
		assertf(i >= 0 && i < a.size, "Get2 index out of range")
	}
	return at[T2](a.base(1), i)
}

// Set2 assigns v to field 2 of element i. i is not bounds checked.
func (a *Array4[T1, T2, T3, T4]) Set2(i int, v T2) {
	*a.Get2(i) = v
}

// Get3 returns a pointer to field 3 of element i. i is not bounds checked.
func (a *Array4[T1, T2, T3, T4]) Get3(i int) *T3 {
	if debug {
		assertf(i >= 0 && i < a.size, "Get3 index out of range")
	}
	return at[T3](a.base(2), i)
}

// Set3 assigns v to field 3 of element i. i is not bounds checked.
func (a *Array4[T1, T2, T3, T4]) Set3(i int, v T3) {
	*a.Get3(i) = v
}

// Get4 returns a pointer to field 4 of element i. i is not bounds checked.
func (a *Array4[T1, T2, T3, T4]) Get4(i int) *T4 {
	if debug {
		assertf(i >= 0 && i < a.size, "Get4 index out of range")
	}
	return at[T4](a.base(3), i)
}

// Set4 assigns v to field 4 of element i. i is not bounds checked.
func (a *Array4[T1, T2, T3, T4]) Set4(i int, v T4) {
	*a.Get4(i) = v
}

// Set assigns the given values to element i. i is not bounds checked.
func (a *Array4[T1, T2, T3, T4]) Set(i int, v1 T1, v2 T2, v3 T3, v4 T4) {
	if debug {
		assertf(i >= 0 && i < a.size, "Set index out of range")
	}
	*at[T1](a.base(0), i) = v1
	*at[T2](a.base(1), i) = v2
	*at[T3](a.base(2), i) = v3
	*at[T4](a.base(3), i) = v4
}

// At returns pointers to every field of element i, or an error wrapping
// ErrOutOfRange.
func (a *Array4[T1, T2, T3, T4]) At(i int) (*T1, *T2, *T3, *T4, error) {
	if err := checkIndex(i, a.size); err != nil {
		return nil, nil, nil, nil, err
	}
	return at[T1](a.base(0), i), at[T2](a.base(1), i), at[T3](a.base(2), i), at[T4](a.base(3), i), nil
}

// Ref returns the references to element i. i is not bounds checked.
func (a *Array4[T1, T2, T3, T4]) Ref(i int) Ref4[T1, T2, T3, T4] {
	if debug {
		assertf(i >= 0 && i < a.size, "Ref index out of range")
	}
	return Ref4[T1, T2, T3, T4]{at[T1](a.base(0), i), at[T2](a.base(1), i), at[T3](a.base(2), i), at[T4](a.base(3), i)}
}

// Front returns the first element. The array must not be empty.
func (a *Array4[T1, T2, T3, T4]) Front() (*T1, *T2, *T3, *T4) {
	return a.Get(0)
}

// Back returns the last element. The array must not be empty.
func (a *Array4[T1, T2, T3, T4]) Back() (*T1, *T2, *T3, *T4) {
	return a.Get(a.size - 1)
}

// Emplace appends one element whose fields are built in place, each by its
// initializer receiving the zeroed slot. A nil initializer default-constructs
// its field. If an initializer panics, the fields already built are destroyed
// and the array is unchanged.
func (a *Array4[T1, T2, T3, T4]) Emplace(init1 func(*T1), init2 func(*T2), init3 func(*T3), init4 func(*T4)) error {
	if err := a.growFor(1); err != nil {
		return err
	}
	i, built := a.size, 0
	defer func() {
		if built != 4 {
			a.abandon(i, built)
		}
	}()
	placeWith(at[T1](a.base(0), i), init1)
	built++
	placeWith(at[T2](a.base(1), i), init2)
	built++
	placeWith(at[T3](a.base(2), i), init3)
	built++
	placeWith(at[T4](a.base(3), i), init4)
	built++
	a.size++
	return nil
}

// PushBack appends one element holding the given values.
func (a *Array4[T1, T2, T3, T4]) PushBack(v1 T1, v2 T2, v3 T3, v4 T4) error {
	if err := a.growFor(1); err != nil {
		return err
	}
	*at[T1](a.base(0), a.size) = v1
	*at[T2](a.base(1), a.size) = v2
	*at[T3](a.base(2), a.size) = v3
	*at[T4](a.base(3), a.size) = v4
	a.size++
	return nil
}

// PushTuple appends one element holding the values of t.
func (a *Array4[T1, T2, T3, T4]) PushTuple(t Tuple4[T1, T2, T3, T4]) error {
	return a.PushBack(t.V1, t.V2, t.V3, t.V4)
}

// PushBackZero appends one default-constructed element.
func (a *Array4[T1, T2, T3, T4]) PushBackZero() error {
	return a.pushZero()
}

// Insert inserts count copies of the given values before pos and returns pos.
// Elements from pos on shift right by count.
func (a *Array4[T1, T2, T3, T4]) Insert(pos, count int, v1 T1, v2 T2, v3 T3, v4 T4) (int, error) {
	if count == 0 {
		return pos, nil
	}
	if err := a.openGap(pos, count); err != nil {
		return pos, err
	}
	fill(a.base(0), pos, pos+count, v1)
	fill(a.base(1), pos, pos+count, v2)
	fill(a.base(2), pos, pos+count, v3)
	fill(a.base(3), pos, pos+count, v4)
	a.size += count
	return pos, nil
}

// ResizeFill is Resize with new elements set to the given values.
func (a *Array4[T1, T2, T3, T4]) ResizeFill(n int, v1 T1, v2 T2, v3 T3, v4 T4) error {
	return a.resizeWith(n, func(from, to int) {
		fill(a.base(0), from, to, v1)
		fill(a.base(1), from, to, v2)
		fill(a.base(2), from, to, v3)
		fill(a.base(3), from, to, v4)
	})
}

// Data1 returns the live elements of field 1. The slice aliases the buffer
// and is invalidated by any reallocation.
func (a *Array4[T1, T2, T3, T4]) Data1() []T1 {
	return live[T1](a.base(0), a.size)
}

// Data2 returns the live elements of field 2. The slice aliases the buffer
// and is invalidated by any reallocation.
func (a *Array4[T1, T2, T3, T4]) Data2() []T2 {
	return live[T2](a.base(1), a.size)
}

// Data3 returns the live elements of field 3. The slice aliases the buffer
// and is invalidated by any reallocation.
func (a *Array4[T1, T2, T3, T4]) Data3() []T3 {
	return live[T3](a.base(2), a.size)
}

// Data4 returns the live elements of field 4. The slice aliases the buffer
// and is invalidated by any reallocation.
func (a *Array4[T1, T2, T3, T4]) Data4() []T4 {
	return live[T4](a.base(3), a.size)
}

// View returns a view over every field.
func (a *Array4[T1, T2, T3, T4]) View() View4[T1, T2, T3, T4] {
	return View4[T1, T2, T3, T4]{p: [4]unsafe.Pointer{a.base(0), a.base(1), a.base(2), a.base(3)}, n: a.size}
}

// All iterates the elements with their indices.
func (a *Array4[T1, T2, T3, T4]) All() iter.Seq2[int, Ref4[T1, T2, T3, T4]] {
	return a.View().All()
}

// Backward iterates the elements from the back.
func (a *Array4[T1, T2, T3, T4]) Backward() iter.Seq2[int, Ref4[T1, T2, T3, T4]] {
	return a.View().Backward()
}

// Begin returns an iterator to the first element.
func (a *Array4[T1, T2, T3, T4]) Begin() Iter4[T1, T2, T3, T4] {
	return a.View().Begin()
}

// End returns an iterator one past the last element.
func (a *Array4[T1, T2, T3, T4]) End() Iter4[T1, T2, T3, T4] {
	return a.View().End()
}

// Clone returns a copy of a with the same capacity and options.
func (a *Array4[T1, T2, T3, T4]) Clone() (*Array4[T1, T2, T3, T4], error) {
	c := &Array4[T1, T2, T3, T4]{}
	if err := a.cloneInto(&c.store); err != nil {
		return nil, err
	}
	return c, nil
}

// CopyFrom replaces the elements of a with copies of those of src.
// On error a is unchanged.
func (a *Array4[T1, T2, T3, T4]) CopyFrom(src *Array4[T1, T2, T3, T4]) error {
	return a.assign(&src.store)
}

// MoveFrom releases a and takes over the buffers of src. src is left empty
// with capacity 0 and remains usable.
func (a *Array4[T1, T2, T3, T4]) MoveFrom(src *Array4[T1, T2, T3, T4]) {
	a.moveFrom(&src.store)
}

// Swap exchanges the contents and options of a and o.
func (a *Array4[T1, T2, T3, T4]) Swap(o *Array4[T1, T2, T3, T4]) {
	a.swap(&o.store)
}

// Array5 is a structure-of-arrays container of 5 fields. Each field
// lives in its own buffer; all buffers share one length and capacity.
type Array5[T1, T2, T3, T4, T5 any] struct {
	store
}

// MakeArray5 returns an empty Array5. Nothing is allocated until the first
// element is added or Reserve is called.
func MakeArray5[T1, T2, T3, T4, T5 any](opts ...Option) *Array5[T1, T2, T3, T4, T5] {
	a := &Array5[T1, T2, T3, T4, T5]{}
	a.init(opts, newColumn[T1](), newColumn[T2](), newColumn[T3](), newColumn[T4](), newColumn[T5]())
	return a
}

// NewArray5 returns an Array5 holding n default-constructed elements with
// capacity exactly n.
func NewArray5[T1, T2, T3, T4, T5 any](n int, opts ...Option) (*Array5[T1, T2, T3, T4, T5], error) {
	a := MakeArray5[T1, T2, T3, T4, T5](opts...)
	if err := a.Resize(n); err != nil {
		return nil, err
	}
	return a, nil
}

// NewArray5Filled returns an Array5 holding n copies of the given field
// values with capacity exactly n.
func NewArray5Filled[T1, T2, T3, T4, T5 any](n int, v1 T1, v2 T2, v3 T3, v4 T4, v5 T5, opts ...Option) (*Array5[T1, T2, T3, T4, T5], error) {
	a := MakeArray5[T1, T2, T3, T4, T5](opts...)
	if err := a.ResizeFill(n, v1, v2, v3, v4, v5); err != nil {
		return nil, err
	}
	return a, nil
}

// Get returns pointers to every field of element i. i is not bounds checked.
func (a *Array5[T1, T2, T3, T4, T5]) Get(i int) (*T1, *T2, *T3, *T4, *T5) {
	if debug {
		assertf(i >= 0 && i < a.size, "Get index out of range")
	}
	return at[T1](a.base(0), i), at[T2](a.base(1), i), at[T3](a.base(2), i), at[T4](a.base(3), i), at[T5](a.base(4), i)
}

// Get1 returns a pointer to field 1 of element i. i is not bounds checked.
func (a *Array5[T1, T2, T3, T4, T5]) Get1(i int) *T1 {
	if debug {
		assertf(i >= 0 && i < a.size, "Get1 index out of range")
	}
	return at[T1](a.base(0), i)
}

// Set1 assigns v to field 1 of element i. i is not bounds checked.
func (a *Array5[T1, T2, T3, T4, T5]) Set1(i int, v T1) {
	*a.Get1(i) = v
}

// Get2 returns a pointer to field 2 of element i. i is not bounds checked.
func (a *Array5[T1, T2, T3, T4, T5]) Get2(i int) *T2 {
	if debug {
		assertf(i >= 0 && i < a.size, "Get2 index out of range")
	}
	return at[T2](a.base(1), i)
}

// Set2 assigns v to field 2 of element i. i is not bounds checked.
func (a *Array5[T1, T2, T3, T4, T5]) Set2(i int, v T2) {
	*a.Get2(i) = v
}

// Get3 returns a pointer to field 3 of element i. i is not bounds checked.
func (a *Array5[T1, T2, T3, T4, T5]) Get3(i int) *T3 {
	if debug {
		assertf(i >= 0 && i < a.size, "Get3 index out of range")
	}
	return at[T3](a.base(2), i)
}

// Set3 assigns v to field 3 of element i. i is not bounds checked.
func (a *Array5[T1, T2, T3, T4, T5]) Set3(i int, v T3) {
	*a.Get3(i) = v
}

// Get4 returns a pointer to field 4 of element i. i is not bounds checked.
func (a *Array5[T1, T2, T3, T4, T5]) Get4(i int) *T4 {
	if debug {
		assertf(i >= 0 && i < a.size, "Get4 index out of range")
	}
	return at[T4](a.base(3), i)
}

// Set4 assigns v to field 4 of element i. i is not bounds checked.
func (a *Array5[T1, T2, T3, T4, T5]) Set4(i int, v T4) {
	*a.Get4(i) = v
}

// Get5 returns a pointer to field 5 of element i. i is not bounds checked.
func (a *Array5[T1, T2, T3, T4, T5]) Get5(i int) *T5 {
	if debug {
		assertf(i >= 0 && i < a.size, "Get5 index out of range")
	}
	return at[T5](a.base(4), i)
}

// Set5 assigns v to field 5 of element i. i is not bounds checked.
func (a *Array5[T1, T2, T3, T4, T5]) Set5(i int, v T5) {
	*a.Get5(i) = v
}

// Set assigns the given values to element i. i is not bounds checked.
func (a *Array5[T1, T2, T3, T4, T5]) Set(i int, v1 T1, v2 T2, v3 T3, v4 T4, v5 T5) {
	if debug {
		assertf(i >= 0 && i < a.size, "Set index out of range")
	}
	*at[T1](a.base(0), i) = v1
	*at[T2](a.base(1), i) = v2
	*at[T3](a.base(2), i) = v3
	*at[T4](a.base(3), i) = v4
	*at[T5](a.base(4), i) = v5
}

// At returns pointers to every field of element i, or an error wrapping
// ErrOutOfRange.
func (a *Array5[T1, T2, T3, T4, T5]) At(i int) (*T1, *T2, *T3, *T4, *T5, error) {
	if err := checkIndex(i, a.size); err != nil {
		return nil, nil, nil, nil, nil, err
	}
	return at[T1](a.base(0), i), at[T2](a.base(1), i), at[T3](a.base(2), i), at[T4](a.base(3), i), at[T5](a.base(4), i), nil
}

// Ref returns the references to element i. i is not bounds checked.
func (a *Array5[T1, T2, T3, T4, T5]) Ref(i int) Ref5[T1, T2, T3, T4, T5] {
	if debug {
		assertf(i >= 0 && i < a.size, "Ref index out of range")
	}
	return Ref5[T1, T2, T3, T4, T5]{at[T1](a.base(0), i), at[T2](a.base(1), i), at[T3](a.base(2), i), at[T4](a.base(3), i), at[T5](a.base(4), i)}
}

// Front returns the first element. The array must not be empty.
func (a *Array5[T1, T2, T3, T4, T5]) Front() (*T1, *T2, *T3, *T4, *T5) {
	return a.Get(0)
}

// Back returns the last element. The array must not be empty.
func (a *Array5[T1, T2, T3, T4, T5]) Back() (*T1, *T2, *T3, *T4, *T5) {
	return a.Get(a.size - 1)
}

// Emplace appends one element whose fields are built in place, each by its
// initializer receiving the zeroed slot. A nil initializer default-constructs
// its field. If an initializer panics, the fields already built are destroyed
// and the array is unchanged.
func (a *Array5[T1, T2, T3, T4, T5]) Emplace(init1 func(*T1), init2 func(*T2), init3 func(*T3), init4 func(*T4), init5 func(*T5)) error {
	if err := a.growFor(1); err != nil {
		return err
	}
	i, built := a.size, 0
	defer func() {
		if built != 5 {
			a.abandon(i, built)
		}
	}()
	placeWith(at[T1](a.base(0), i), init1)
	built++
	placeWith(at[T2](a.base(1), i), init2)
	built++
	placeWith(at[T3](a.base(2), i), init3)
	built++
	placeWith(at[T4](a.base(3), i), init4)
	built++
	placeWith(at[T5](a.base(4), i), init5)
	built++
	a.size++
	return nil
}

// PushBack appends one element holding the given values.
func (a *Array5[T1, T2, T3, T4, T5]) PushBack(v1 T1, v2 T2, v3 T3, v4 T4, v5 T5) error {
	if err := a.growFor(1); err != nil {
		return err
	}
	*at[T1](a.base(0), a.size) = v1
	*at[T2](a.base(1), a.size) = v2
	*at[T3](a.base(2), a.size) = v3
	*at[T4](a.base(3), a.size) = v4
	*at[T5](a.base(4), a.size) = v5
	a.size++
	return nil
}

// PushTuple appends one element holding the values of t.
func (a *Array5[T1, T2, T3, T4, T5]) PushTuple(t Tuple5[T1, T2, T3, T4, T5]) error {
	return a.PushBack(t.V1, t.V2, t.V3, t.V4, t.V5)
}

// PushBackZero appends one default-constructed element.
func (a *Array5[T1, T2, T3, T4, T5]) PushBackZero() error {
	return a.pushZero()
}

// Insert inserts count copies of the given values before pos and returns pos.
// Elements from pos on shift right by count.
func (a *Array5[T1, T2, T3, T4, T5]) Insert(pos, count int, v1 T1, v2 T2, v3 T3, v4 T4, v5 T5) (int, error) {
	if count == 0 {
		return pos, nil
	}
	if err := a.openGap(pos, count); err != nil {
		return pos, err
	}
	fill(a.base(0), pos, pos+count, v1)
	fill(a.base(1), pos, pos+count, v2)
	fill(a.base(2), pos, pos+count, v3)
	fill(a.base(3), pos, pos+count, v4)
	fill(a.base(4), pos, pos+count, v5)
	a.size += count
	return pos, nil
}

// ResizeFill is Resize with new elements set to the given values.
func (a *Array5[T1, T2, T3, T4, T5]) ResizeFill(n int, v1 T1, v2 T2, v3 T3, v4 T4, v5 T5) error {
	return a.resizeWith(n, func(from, to int) {
		fill(a.base(0), from, to, v1)
		fill(a.base(1), from, to, v2)
		fill(a.base(2), from, to, v3)
		fill(a.base(3), from, to, v4)
		fill(a.base(4), from, to, v5)
	})
}

// Data1 returns the live elements of field 1. The slice aliases the buffer
// and is invalidated by any reallocation.
func (a *Array5[T1, T2, T3, T4, T5]) Data1() []T1 {
	return live[T1](a.base(0), a.size)
}

// Data2 returns the live elements of field 2. The slice aliases the buffer
// and is invalidated by any reallocation.
func (a *Array5[T1, T2, T3, T4, T5]) Data2() []T2 {
	return live[T2](a.base(1), a.size)
}

// Data3 returns the live elements of field 3. The slice aliases the buffer
// and is invalidated by any reallocation.
func (a *Array5[T1, T2, T3, T4, T5]) Data3() []T3 {
	return live[T3](a.base(2), a.size)
}

// Data4 returns the live elements of field 4. The slice aliases the buffer
// and is invalidated by any reallocation.
func (a *Array5[T1, T2, T3, T4, T5]) Data4() []T4 {
	return live[T4](a.base(3), a.size)
}

// Data5 returns the live elements of field 5. The slice aliases the buffer
// and is invalidated by any reallocation.
func (a *Array5[T1, T2, T3, T4, T5]) Data5() []T5 {
	return live[T5](a.base(4), a.size)
}

// View returns a view over every field.
func (a *Array5[T1, T2, T3, T4, T5]) View() View5[T1, T2, T3, T4, T5] {
	return View5[T1, T2, T3, T4, T5]{p: [5]unsafe.Pointer{a.base(0), a.base(1), a.base(2), a.base(3), a.base(4)}, n: a.size}
}

// All iterates the elements with their indices.
func (a *Array5[T1, T2, T3, T4, T5]) All() iter.Seq2[int, Ref5[T1, T2, T3, T4, T5]] {
	return a.View().All()
}

// Backward iterates the elements from the back.
func (a *Array5[T1, T2, T3, T4, T5]) Backward() iter.Seq2[int, Ref5[T1, T2, T3, T4, T5]] {
	return a.View().Backward()
}

// Begin returns an iterator to the first element.
func (a *Array5[T1, T2, T3, T4, T5]) Begin() Iter5[T1, T2, T3, T4, T5] {
	return a.View().Begin()
}

// End returns an iterator one past the last element.
func (a *Array5[T1, T2, T3, T4, T5]) End() Iter5[T1, T2, T3, T4, T5] {
	return a.View().End()
}

// Clone returns a copy of a with the same capacity and options.
func (a *Array5[T1, T2, T3, T4, T5]) Clone() (*Array5[T1, T2, T3, T4, T5], error) {
	c := &Array5[T1, T2, T3, T4, T5]{}
	if err := a.cloneInto(&c.store); err != nil {
		return nil, err
	}
	return c, nil
}

// CopyFrom replaces the elements of a with copies of those of src.
// On error a is unchanged.
func (a *Array5[T1, T2, T3, T4, T5]) CopyFrom(src *Array5[T1, T2, T3, T4, T5]) error {
	return a.assign(&src.store)
}

// MoveFrom releases a and takes over the buffers of src. src is left empty
// with capacity 0 and remains usable.
func (a *Array5[T1, T2, T3, T4, T5]) MoveFrom(src *Array5[T1, T2, T3, T4, T5]) {
	a.moveFrom(&src.store)
}

// Swap exchanges the contents and options of a and o.
func (a *Array5[T1, T2, T3, T4, T5]) Swap(o *Array5[T1, T2, T3, T4, T5]) {
	a.swap(&o.store)
}

// Array6 is a structure-of-arrays container of 6 fields. Each field
// lives in its own buffer; all buffers share one length and capacity.
type Array6[T1, T2, T3, T4, T5, T6 any] struct {
	store
}

// MakeArray6 returns an empty Array6. Nothing is allocated until the first
// element is added or Reserve is called.
func MakeArray6[T1, T2, T3, T4, T5, T6 any](opts ...Option) *Array6[T1, T2, T3, T4, T5, T6] {
	a := &Array6[T1, T2, T3, T4, T5, T6]{}
	a.init(opts, newColumn[T1](), newColumn[T2](), newColumn[T3](), newColumn[T4](), newColumn[T5](), newColumn[T6]())
	return a
}

// NewArray6 returns an Array6 holding n default-constructed elements with
// capacity exactly n.
func NewArray6[T1, T2, T3, T4, T5, T6 any](n int, opts ...Option) (*Array6[T1, T2, T3, T4, T5, T6], error) {
	a := MakeArray6[T1, T2, T3, T4, T5, T6](opts...)
	if err := a.Resize(n); err != nil {
		return nil, err
	}
	return a, nil
}

// NewArray6Filled returns an Array6 holding n copies of the given field
// values with capacity exactly n.
func NewArray6Filled[T1, T2, T3, T4, T5, T6 any](n int, v1 T1, v2 T2, v3 T3, v4 T4, v5 T5, v6 T6, opts ...Option) (*Array6[T1, T2, T3, T4, T5, T6], error) {
	a := MakeArray6[T1, T2, T3, T4, T5, T6](opts...)
	if err := a.ResizeFill(n, v1, v2, v3, v4, v5, v6); err != nil {
		return nil, err
	}
	return a, nil
}

// Get returns pointers to every field of element i. i is not bounds checked.
func (a *Array6[T1, T2, T3, T4, T5, T6]) Get(i int) (*T1, *T2, *T3, *T4, *T5, *T6) {
	if debug {
		assertf(i >= 0 && i < a.size, "Get index out of range")
	}
	return at[T1](a.base(0), i), at[T2](a.base(1), i), at[T3](a.base(2), i), at[T4](a.base(3), i), at[T5](a.base(4), i), at[T6](a.base(5), i)
}

// Get1 returns a pointer to field 1 of element i. i is not bounds checked.
func (a *Array6[T1, T2, T3, T4, T5, T6]) Get1(i int) *T1 {
	if debug {
		assertf(i >= 0 && i < a.size, "Get1 index out of range")
	}
	return at[T1](a.base(0), i)
}

// Set1 assigns v to field 1 of element i. i is not bounds checked.
func (a *Array6[T1, T2, T3, T4, T5, T6]) Set1(i int, v T1) {
	*a.Get1(i) = v
}

// Get2 returns a pointer to field 2 of element i. i is not bounds checked.
func (a *Array6[T1, T2, T3, T4, T5, T6]) Get2(i int) *T2 {
	if debug {
		assertf(i >= 0 && i < a.size, "Get2 index out of range")
	}
	return at[T2](a.base(1), i)
}

// Set2 assigns v to field 2 of element i. i is not bounds checked.
func (a *Array6[T1, T2, T3, T4, T5, T6]) Set2(i int, v T2) {
	*a.Get2(i) = v
}

// Get3 returns a pointer to field 3 of element i. i is not bounds checked.
func (a *Array6[T1, T2, T3, T4, T5, T6]) Get3(i int) *T3 {
	if debug {
		assertf(i >= 0 && i < a.size, "Get3 index out of range")
	}
	return at[T3](a.base(2), i)
}

// Set3 assigns v to field 3 of element i. i is not bounds checked.
func (a *Array6[T1, T2, T3, T4, T5, T6]) Set3(i int, v T3) {
	*a.Get3(i) = v
}

// Get4 returns a pointer to field 4 of element i. i is not bounds checked.
func (a *Array6[T1, T2, T3, T4, T5, T6]) Get4(i int) *T4 {
	if debug {
		assertf(i >= 0 && i < a.size, "Get4 index out of range")
	}
	return at[T4](a.base(3), i)
}

// Set4 assigns v to field 4 of element i. i is not bounds checked.
func (a *Array6[T1, T2, T3, T4, T5, T6]) Set4(i int, v T4) {
	*a.Get4(i) = v
}

// Get5 returns a pointer to field 5 of element i. i is not bounds checked.
func (a *Array6[T1, T2, T3, T4, T5, T6]) Get5(i int) *T5 {
	if debug {
		assertf(i >= 0 && i < a.size, "Get5 index out of range")
	}
	return at[T5](a.base(4), i)
}

// Set5 assigns v to field 5 of element i. i is not bounds checked.
func (a *Array6[T1, T2, T3, T4, T5, T6]) Set5(i int, v T5) {
	*a.Get5(i) = v
}

// Get6 returns a pointer to field 6 of element i. i is not bounds checked.
func (a *Array6[T1, T2, T3, T4, T5, T6]) Get6(i int) *T6 {
	if debug {
		assertf(i >= 0 && i < a.size, "Get6 index out of range")
	}
	return at[T6](a.base(5), i)
}

// Set6 assigns v to field 6 of element i. i is not bounds checked.
func (a *Array6[T1, T2, T3, T4, T5, T6]) Set6(i int, v T6) {
	*a.Get6(i) = v
}

// Set assigns the given values to element i. i is not bounds checked.
func (a *Array6[T1, T2, T3, T4, T5, T6]) Set(i int, v1 T1, v2 T2, v3 T3, v4 T4, v5 T5, v6 T6) {
	if debug {
		assertf(i >= 0 && i < a.size, "Set index out of range")
	}
	*at[T1](a.base(0), i) = v1
	*at[T2](a.base(1), i) = v2
	*at[T3](a.base(2), i) = v3
	*at[T4](a.base(3), i) = v4
	*at[T5](a.base(4), i) = v5
	*at[T6](a.base(5), i) = v6
}

// At returns pointers to every field of element i, or an error wrapping
// ErrOutOfRange.
func (a *Array6[T1, T2, T3, T4, T5, T6]) At(i int) (*T1, *T2, *T3, *T4, *T5, *T6, error) {
	if err := checkIndex(i, a.size); err != nil {
		return nil, nil, nil, nil, nil, nil, err
	}
	return at[T1](a.base(0), i), at[T2](a.base(1), i), at[T3](a.base(2), i), at[T4](a.base(3), i), at[T5](a.base(4), i), at[T6](a.base(5), i), nil
}

// Ref returns the references to element i. i is not bounds checked.
func (a *Array6[T1, T2, T3, T4, T5, T6]) Ref(i int) Ref6[T1, T2, T3, T4, T5, T6] {
	if debug {
		assertf(i >= 0 && i < a.size, "Ref index out of range")
	}
	return Ref6[T1, T2, T3, T4, T5, T6]{at[T1](a.base(0), i), at[T2](a.base(1), i), at[T3](a.base(2), i), at[T4](a.base(3), i), at[T5](a.base(4), i), at[T6](a.base(5), i)}
}

// Front returns the first element. The array must not be empty.
func (a *Array6[T1, T2, T3, T4, T5, T6]) Front() (*T1, *T2, *T3, *T4, *T5, *T6) {
	return a.Get(0)
}

// Back returns the last element. The array must not be empty.
func (a *Array6[T1, T2, T3, T4, T5, T6]) Back() (*T1, *T2, *T3, *T4, *T5, *T6) {
	return a.Get(a.size - 1)
}

// Emplace appends one element whose fields are built in place, each by its
// initializer receiving the zeroed slot. A nil initializer default-constructs
// its field. If an initializer panics, the fields already built are destroyed
// and the array is unchanged.
func (a *Array6[T1, T2, T3, T4, T5, T6]) Emplace(init1 func(*T1), init2 func(*T2), init3 func(*T3), init4 func(*T4), init5 func(*T5), init6 func(*T6)) error {
	if err := a.growFor(1); err != nil {
		return err
	}
	i, built := a.size, 0
	defer func() {
		if built != 6 {
			a.abandon(i, built)
		}
	}()
	placeWith(at[T1](a.base(0), i), init1)
	built++
	placeWith(at[T2](a.base(1), i), init2)
	built++
	placeWith(at[T3](a.base(2), i), init3)
	built++
	placeWith(at[T4](a.base(3), i), init4)
	built++
	placeWith(at[T5](a.base(4), i), init5)
	built++
	placeWith(at[T6](a.base(5), i), init6)
	built++
	a.size++
	return nil
}

// PushBack appends one element holding the given values.
func (a *Array6[T1, T2, T3, T4, T5, T6]) PushBack(v1 T1, v2 T2, v3 T3, v4 T4, v5 T5, v6 T6) error {
	if err := a.growFor(1); err != nil {
		return err
	}
	*at[T1](a.base(0), a.size) = v1
	*at[T2](a.base(1), a.size) = v2
	*at[T3](a.base(2), a.size) = v3
	*at[T4](a.base(3), a.size) = v4
	*at[T5](a.base(4), a.size) = v5
	*at[T6](a.base(5), a.size) = v6
	a.size++
	return nil
}

// PushTuple appends one element holding the values of t.
func (a *Array6[T1, T2, T3, T4, T5, T6]) PushTuple(t Tuple6[T1, T2, T3, T4, T5, T6]) error {
	return a.PushBack(t.V1, t.V2, t.V3, t.V4, t.V5, t.V6)
}

// PushBackZero appends one default-constructed element.
func (a *Array6[T1, T2, T3, T4, T5, T6]) PushBackZero() error {
	return a.pushZero()
}

// Insert inserts count copies of the given values before pos and returns pos.
// Elements from pos on shift right by count.
func (a *Array6[T1, T2, T3, T4, T5, T6]) Insert(pos, count int, v1 T1, v2 T2, v3 T3, v4 T4, v5 T5, v6 T6) (int, error) {
	if count == 0 {
		return pos, nil
	}
	if err := a.openGap(pos, count); err != nil {
		return pos, err
	}
	fill(a.base(0), pos, pos+count, v1)
	fill(a.base(1), pos, pos+count, v2)
	fill(a.base(2), pos, pos+count, v3)
	fill(a.base(3), pos, pos+count, v4)
	fill(a.base(4), pos, pos+count, v5)
	fill(a.base(5), pos, pos+count, v6)
	a.size += count
	return pos, nil
}

// ResizeFill is Resize with new elements set to the given values.
func (a *Array6[T1, T2, T3, T4, T5, T6]) ResizeFill(n int, v1 T1, v2 T2, v3 T3, v4 T4, v5 T5, v6 T6) error {
	return a.resizeWith(n, func(from, to int) {
		fill(a.base(0), from, to, v1)
		fill(a.base(1), from, to, v2)
		fill(a.base(2), from, to, v3)
		fill(a.base(3), from, to, v4)
		fill(a.base(4), from, to, v5)
		fill(a.base(5), from, to, v6)
	})
}

// Data1 returns the live elements of field 1. The slice aliases the buffer
// and is invalidated by any reallocation.
func (a *Array6[T1, T2, T3, T4, T5, T6]) Data1() []T1 {
	return live[T1](a.base(0), a.size)
}

// Data2 returns the live elements of field 2. The slice aliases the buffer
// and is invalidated by any reallocation.
func (a *Array6[T1, T2, T3, T4, T5, T6]) Data2() []T2 {
	return live[T2](a.base(1), a.size)
}

// Data3 returns the live elements of field 3. The slice aliases the buffer
// and is invalidated by any reallocation.
func (a *Array6[T1, T2, T3, T4, T5, T6]) Data3() []T3 {
	return live[T3](a.base(2), a.size)
}

// Data4 returns the live elements of field 4. The slice aliases the buffer
// and is invalidated by any reallocation.
func (a *Array6[T1, T2, T3, T4, T5, T6]) Data4() []T4 {
	return live[T4](a.base(3), a.size)
}

// Data5 returns the live elements of field 5. The slice aliases the buffer
// and is invalidated by any reallocation.
func (a *Array6[T1, T2, T3, T4, T5, T6]) Data5() []T5 {
	return live[T5](a.base(4), a.size)
}

// Data6 returns the live elements of field 6. The slice aliases the buffer
// and is invalidated by any reallocation.
func (a *Array6[T1, T2, T3, T4, T5, T6]) Data6() []T6 {
	return live[T6](a.base(5), a.size)
}

// View returns a view over every field.
func (a *Array6[T1, T2, T3, T4, T5, T6]) View() View6[T1, T2, T3, T4, T5, T6] {
	return View6[T1, T2, T3, T4, T5, T6]{p: [6]unsafe.Pointer{a.base(0), a.base(1), a.base(2), a.base(3), a.base(4), a.base(5)}, n: a.size}
}

// All iterates the elements with their indices.
func (a *Array6[T1, T2, T3, T4, T5, T6]) All() iter.Seq2[int, Ref6[T1, T2, T3, T4, T5, T6]] {
	return a.View().All()
}

// Backward iterates the elements from the back.
func (a *Array6[T1, T2, T3, T4, T5, T6]) Backward() iter.Seq2[int, Ref6[T1, T2, T3, T4, T5, T6]] {
	return a.View().Backward()
}

// Begin returns an iterator to the first element.
func (a *Array6[T1, T2, T3, T4, T5, T6]) Begin() Iter6[T1, T2, T3, T4, T5, T6] {
	return a.View().Begin()
}

// End returns an iterator one past the last element.
func (a *Array6[T1, T2, T3, T4, T5, T6]) End() Iter6[T1, T2, T3, T4, T5, T6] {
	return a.View().End()
}

// Clone returns a copy of a with the same capacity and options.
func (a *Array6[T1, T2, T3, T4, T5, T6]) Clone() (*Array6[T1, T2, T3, T4, T5, T6], error) {
	c := &Array6[T1, T2, T3, T4, T5, T6]{}
	if err := a.cloneInto(&c.store); err != nil {
		return nil, err
	}
	return c, nil
}

// CopyFrom replaces the elements of a with copies of those of src.
// On error a is unchanged.
func (a *Array6[T1, T2, T3, T4, T5, T6]) CopyFrom(src *Array6[T1, T2, T3, T4, T5, T6]) error {
	return a.assign(&src.store)
}

// MoveFrom releases a and takes over the buffers of src. src is left empty
// with capacity 0 and remains usable.
func (a *Array6[T1, T2, T3, T4, T5, T6]) MoveFrom(src *Array6[T1, T2, T3, T4, T5, T6]) {
	a.moveFrom(&src.store)
}

// Swap exchanges the contents and options of a and o.
func (a *Array6[T1, T2, T3, T4, T5, T6]) Swap(o *Array6[T1, T2, T3, T4, T5, T6]) {
	a.swap(&o.store)
}
