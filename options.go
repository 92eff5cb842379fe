package retsu

import "log/slog"

// Option configures a container at construction.
type Option func(*options)

type options struct {
	alloc    Allocator
	strategy Strategy
	growth   GrowthPolicy
	logger   *slog.Logger
	limit    int64
}

// WithStrategy selects the allocator adapter by strategy.
// Ignored when WithAllocator is also given.
func WithStrategy(s Strategy) Option {
	return func(o *options) {
		o.strategy = s
	}
}

// WithAllocator sets the allocator adapter. Containers built from the same
// Budget share its limit.
func WithAllocator(a Allocator) Option {
	return func(o *options) {
		o.alloc = a
	}
}

// WithGrowth sets the capacity growth policy.
func WithGrowth(p GrowthPolicy) Option {
	return func(o *options) {
		o.growth = p
	}
}

// WithLogger sets the logger for reallocation and allocation failure events.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

// WithMemoryLimit caps the payload bytes held by the container's buffers.
// The limit wraps the allocator chosen by the other options in a Budget.
func WithMemoryLimit(bytes int64) Option {
	return func(o *options) {
		o.limit = bytes
	}
}

func buildOptions(opts []Option) options {
	var o options
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	if o.alloc == nil {
		o.alloc = o.strategy.Allocator()
	}
	if o.limit > 0 {
		o.alloc = NewBudget(o.alloc, o.limit)
	}
	if o.growth == nil {
		o.growth = DefaultGrowth
	}
	if o.logger == nil {
		o.logger = slog.New(slog.DiscardHandler)
	}
	return o
}
