package queue

import "go.uber.org/zap"

type options struct {
	logger   *zap.Logger
	capacity int
}

// Option configures a container at construction.
type Option func(o *options)

// WithLogger routes lifecycle debug events (construct, copy, move,
// realloc, release) to l.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithCapacity sets the initial block size. Negative values are ignored.
func WithCapacity(n int) Option {
	return func(o *options) {
		if n >= 0 {
			o.capacity = n
		}
	}
}

func buildOptions(capacity int, opts []Option) options {
	o := options{
		logger:   zap.NewNop(),
		capacity: capacity,
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
