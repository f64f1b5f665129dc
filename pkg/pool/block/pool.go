// Package block provides pooled, size-classed element blocks for the
// growable containers in pkg/datastructs/queue.
package block

import (
	"github.com/huynhanx03/go-queue/pkg/pool/internal/calibrated"
)

// Stats mirrors the pool traffic counters.
type Stats = calibrated.Stats

// Pool hands out []T blocks from power-of-two buckets.
// It is safe for concurrent use; the blocks it returns are not.
type Pool[T any] struct {
	p *calibrated.Pool[[]T]
}

// New creates an empty block pool for element type T.
func New[T any]() *Pool[T] {
	return &Pool[T]{
		p: calibrated.New(
			// newFunc: create a zeroed block of given size
			func(size int) []T {
				return make([]T, size)
			},
			// sizeFunc: full capacity of the block
			func(b []T) int {
				return cap(b)
			},
			// resetFunc: zero every slot so pooled blocks hold no references
			func(b []T) {
				clear(b)
			},
		),
	}
}

// Alloc returns a zeroed block of exactly n slots.
// The backing array may be larger; it is recovered by Free.
func (p *Pool[T]) Alloc(n int) []T {
	if n == 0 {
		return nil
	}
	b := p.p.Get(n)
	return b[:n]
}

// Free returns a block obtained from Alloc to the pool.
func (p *Pool[T]) Free(b []T) {
	if cap(b) == 0 {
		return
	}
	p.p.Put(b[:cap(b)])
}

// Stats returns the pool traffic counters.
func (p *Pool[T]) Stats() Stats {
	return p.p.Stats()
}

// BucketSize returns the size of bucket at index i.
func BucketSize(i int) int {
	return calibrated.BucketSize(i)
}
