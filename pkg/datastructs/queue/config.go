package queue

import (
	"go.uber.org/zap"

	blockpool "github.com/huynhanx03/go-queue/pkg/pool/block"
	"github.com/huynhanx03/go-queue/pkg/settings"
)

// NewFromConfig builds the container described by cfg.
// Kind "ring" yields a RingQueue, anything else an ArrayQueue. With Pooled
// set, blocks come from a blockpool.Pool dedicated to the returned container.
func NewFromConfig[T any](cfg settings.Queue, logger *zap.Logger) Queue[T] {
	opts := []Option{WithLogger(logger)}
	if cfg.InitialCapacity > 0 {
		opts = append(opts, WithCapacity(cfg.InitialCapacity))
	}

	switch cfg.Kind {
	case settings.KindRing:
		rq := NewRing[T](opts...)
		if cfg.Pooled {
			rq.WithAllocator(blockpool.New[T]())
		}
		return rq
	default:
		q := New[T](opts...)
		if cfg.Pooled {
			q.WithAllocator(blockpool.New[T]())
		}
		return q
	}
}
