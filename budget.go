package retsu

import (
	"errors"
	"fmt"
	"math"
	"sync/atomic"

	"golang.org/x/sync/semaphore"
)

// ErrBudgetExceeded is the cause reported by Budget when a request would
// exceed its byte limit. It is always wrapped in an error matching
// ErrAllocation.
var ErrBudgetExceeded = errors.New("memory budget exceeded")

// Budget wraps an Allocator and caps the payload bytes it may hold at once.
// A Budget may be shared between containers; acquisition never blocks.
type Budget struct {
	next  Allocator
	limit int64
	sem   *semaphore.Weighted // nil if unlimited
	used  atomic.Int64
}

// NewBudget returns a Budget over next. A limit <= 0 only tracks usage.
// A nil next uses SinglePass.
func NewBudget(next Allocator, limit int64) *Budget {
	if next == nil {
		next = SinglePass{}
	}
	b := &Budget{next: next, limit: limit}
	if limit > 0 {
		b.sem = semaphore.NewWeighted(limit)
	}
	return b
}

// Allocate reserves the payload size of n elements, then delegates.
func (b *Budget) Allocate(l *Layout, n int) (Block, error) {
	bytes, ok := l.Bytes(n)
	if !ok || bytes > math.MaxInt64 {
		return Block{}, newAllocError(l, n, errTooLarge)
	}
	if err := b.acquire(int64(bytes)); err != nil {
		return Block{}, newAllocError(l, n, fmt.Errorf("%w (%d of %d bytes in use)", err, b.Used(), b.limit))
	}
	blk, err := b.next.Allocate(l, n)
	if err != nil {
		b.release(int64(bytes))
		return Block{}, err
	}
	return blk, nil
}

// Deallocate delegates and returns the block's bytes to the budget.
func (b *Budget) Deallocate(l *Layout, blk Block, n int) {
	b.next.Deallocate(l, blk, n)
	bytes, _ := l.Bytes(n)
	b.release(int64(bytes))
}

func (b *Budget) acquire(bytes int64) error {
	if bytes <= 0 {
		return nil
	}
	if b.sem != nil && !b.sem.TryAcquire(bytes) {
		return ErrBudgetExceeded
	}
	b.used.Add(bytes)
	return nil
}

func (b *Budget) release(bytes int64) {
	if bytes <= 0 {
		return
	}
	if b.sem != nil {
		b.sem.Release(bytes)
	}
	b.used.Add(-bytes)
}

// Used returns the payload bytes currently held.
func (b *Budget) Used() int64 {
	return b.used.Load()
}

// Limit returns the configured limit in bytes, 0 if unlimited.
func (b *Budget) Limit() int64 {
	if b.sem == nil {
		return 0
	}
	return b.limit
}
