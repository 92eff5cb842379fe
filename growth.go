package retsu

import "math"

// GrowthPolicy returns the capacity to reallocate to when capacity elements
// are allocated and required are needed. Containers never allocate less
// than required, whatever the policy returns.
type GrowthPolicy func(capacity, required int) int

// DefaultGrowth doubles the capacity plus two, so growth from an empty
// container makes progress.
func DefaultGrowth(capacity, required int) int {
	if capacity > (math.MaxInt-2)/2 {
		return required
	}
	return 2*capacity + 2
}

// ExactGrowth allocates exactly what is required.
func ExactGrowth(_, required int) int {
	return required
}

// FactorGrowth returns a policy multiplying the capacity by f, at least by
// one element. It panics if f <= 1.
func FactorGrowth(f float64) GrowthPolicy {
	if !(f > 1) {
		panic("retsu: growth factor must be greater than 1")
	}
	return func(capacity, required int) int {
		next := float64(capacity) * f
		if next >= math.MaxInt/2 {
			return required
		}
		return max(int(next), capacity+1)
	}
}

// nextCapacity applies p and clamps the result to at least required.
func nextCapacity(p GrowthPolicy, capacity, required int) int {
	if p == nil {
		p = DefaultGrowth
	}
	return max(p(capacity, required), required)
}
