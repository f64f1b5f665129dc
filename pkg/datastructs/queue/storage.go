package queue

import "go.uber.org/zap"

// block is the storage and growth manager behind ArrayQueue.
//
// base is the whole allocation, capacity is len(base). The live range is
// base[head:head+size]; base[:head] is the prefix left behind by Pop and
// base[head+size:] is spare capacity. Every slot outside the live range
// holds the zero value.
type block[T any] struct {
	base  []T
	head  int
	size  int
	grows int

	alloc Allocator[T]
	log   *zap.Logger
}

func newBlock[T any](alloc Allocator[T], log *zap.Logger) block[T] {
	return block[T]{alloc: alloc, log: log}
}

func (b *block[T]) capacity() int { return len(b.base) }

// live returns the constructed elements.
func (b *block[T]) live() []T { return b.base[b.head : b.head+b.size] }

// needsGrowth reports whether k more elements do not fit at the tail.
// The wasted prefix is not taken into account.
func (b *block[T]) needsGrowth(k int) bool {
	return b.head+b.size+k > len(b.base)
}

// growFor makes room for k more elements at the tail.
func (b *block[T]) growFor(k int) {
	// An exact fit does not reallocate, unlike a >= trigger would.
	if !b.needsGrowth(k) {
		return
	}
	b.reserve(2*b.size + k)
}

// reserve reallocates to exactly n slots and counts the event.
// Elements past n are dropped.
func (b *block[T]) reserve(n int) {
	b.realloc(n)
	b.grows++
}

// realloc moves min(size, n) live elements into a fresh block of n slots
// and releases the old one. head is reset to the start of the new block.
func (b *block[T]) realloc(n int) {
	if n < 0 {
		panic("queue: negative capacity")
	}
	b.log.Debug("queue realloc",
		zap.Int("from", len(b.base)),
		zap.Int("to", n),
		zap.Int("size", b.size),
		zap.Int("wasted", b.head),
	)

	next := b.alloc.Alloc(n)
	keep := min(b.size, n)
	copy(next, b.base[b.head:b.head+keep])

	b.destroy()
	b.base = next
	b.size = keep
}

// tail returns the first spare slot. The caller must have grown first.
func (b *block[T]) tail() *T {
	return &b.base[b.head+b.size]
}

// popFront zeroes the head slot and advances past it.
func (b *block[T]) popFront() {
	var zero T
	b.live()[0] = zero
	b.head++
	b.size--
}

// reset zeroes the live range and rewinds head. Capacity is kept.
func (b *block[T]) reset() {
	clear(b.live())
	b.head = 0
	b.size = 0
}

// destroy zeroes the live range and hands the block back to its allocator.
func (b *block[T]) destroy() {
	b.reset()
	if b.base != nil {
		b.alloc.Free(b.base)
	}
	b.base = nil
}

// adoptCopy replaces the storage with a fresh block of factor*len(src)
// slots holding copies of src.
func (b *block[T]) adoptCopy(src []T) {
	b.destroy()
	b.base = b.alloc.Alloc(fromFactor * len(src))
	b.size = copy(b.base, src)
}

// detach hands the storage to the caller and leaves b empty and
// non-owning, with its allocator and logger intact.
func (b *block[T]) detach() block[T] {
	out := *b
	*b = newBlock(b.alloc, b.log)
	return out
}
