package retsu

// Forward is the random-access iterator contract shared by Iter and
// Iter2..Iter6. I is the iterator type itself and R what Deref yields.
type Forward[I any, R any] interface {
	Add(n int) I
	Deref() R
	Index() int
	Equal(o I) bool
	Less(o I) bool
	Distance(o I) int
}

// Reverse walks a forward iterator backwards. It holds the forward position
// one past the element it refers to, so the reverse begin is built from the
// forward end.
type Reverse[I Forward[I, R], R any] struct {
	base I
}

// MakeReverse returns the reverse iterator referring to the element just
// before it.
func MakeReverse[I Forward[I, R], R any](it I) Reverse[I, R] {
	return Reverse[I, R]{base: it}
}

// Base returns the underlying forward iterator.
func (r Reverse[I, R]) Base() I { return r.base }

// Next moves towards the front.
func (r Reverse[I, R]) Next() Reverse[I, R] { return Reverse[I, R]{r.base.Add(-1)} }

// Prev moves towards the back.
func (r Reverse[I, R]) Prev() Reverse[I, R] { return Reverse[I, R]{r.base.Add(1)} }

// Add moves n steps towards the front.
func (r Reverse[I, R]) Add(n int) Reverse[I, R] { return Reverse[I, R]{r.base.Add(-n)} }

// Deref returns the element referred to.
func (r Reverse[I, R]) Deref() R { return r.base.Add(-1).Deref() }

// Index returns the forward index of the element referred to.
func (r Reverse[I, R]) Index() int { return r.base.Index() - 1 }

func (r Reverse[I, R]) Equal(o Reverse[I, R]) bool { return r.base.Equal(o.base) }

// Less reports whether r comes before o in reverse order.
func (r Reverse[I, R]) Less(o Reverse[I, R]) bool { return o.base.Less(r.base) }

// Distance returns the number of Next steps from o to r.
func (r Reverse[I, R]) Distance(o Reverse[I, R]) int { return o.base.Distance(r.base) }
