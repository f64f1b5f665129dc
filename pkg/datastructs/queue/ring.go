package queue

import (
	"io"
	"iter"
	"os"

	"go.uber.org/zap"

	"github.com/huynhanx03/go-queue/pkg/utils"
)

var _ Queue[int] = (*RingQueue[int])(nil)

// RingQueue is a growable circular FIFO. Pop reclaims the front slot, so a
// steady push/pop workload runs in a fixed block.
// Capacity is always a power of two. Create one with NewRing or RingFrom.
// It is NOT thread-safe.
type RingQueue[T any] struct {
	buf   []T
	head  int // index of the front element
	size  int
	grows int

	alloc Allocator[T]
	log   *zap.Logger
}

// NewRing creates an empty RingQueue. The initial capacity is rounded up
// to the nearest power of two.
func NewRing[T any](opts ...Option) *RingQueue[T] {
	o := buildOptions(defaultRingCapacity, opts)
	capacity := utils.CeilToPowerOfTwo(max(o.capacity, defaultRingCapacity))
	rq := &RingQueue[T]{
		buf:   make([]T, capacity),
		alloc: heapAllocator[T]{},
		log:   o.logger,
	}
	rq.log.Debug("ring constructed", zap.Int("capacity", capacity))
	return rq
}

// RingFrom creates a RingQueue holding items in order.
func RingFrom[T any](items ...T) *RingQueue[T] {
	rq := NewRing[T](WithCapacity(fromFactor * len(items)))
	rq.PushMany(items...)
	return rq
}

// WithAllocator moves the storage onto blocks supplied by a.
func (rq *RingQueue[T]) WithAllocator(a Allocator[T]) *RingQueue[T] {
	if a == nil {
		return rq
	}
	old := rq.alloc
	rq.alloc = a
	rq.relocate(len(rq.buf), old)
	return rq
}

// Push appends item at the tail, doubling the block when it is full.
func (rq *RingQueue[T]) Push(item T) {
	if rq.size == len(rq.buf) {
		rq.grow(rq.size + 1)
	}
	rq.buf[rq.wrapIndex(rq.head+rq.size)] = item
	rq.size++
}

// PushMany appends items in order after a single growth check.
func (rq *RingQueue[T]) PushMany(items ...T) {
	if rq.size+len(items) > len(rq.buf) {
		rq.grow(rq.size + len(items))
	}
	for _, item := range items {
		rq.buf[rq.wrapIndex(rq.head+rq.size)] = item
		rq.size++
	}
}

// Pop removes the front element and frees its slot for reuse.
// Pop on an empty queue panics.
func (rq *RingQueue[T]) Pop() {
	if rq.size == 0 {
		panic("queue: pop from empty ring")
	}
	var zero T
	rq.buf[rq.head] = zero
	rq.head = rq.wrapIndex(rq.head + 1)
	rq.size--
	if rq.size == 0 {
		rq.head = 0
	}
}

// Dequeue removes and returns the front element.
// Returns (zero, false) if the queue is empty.
func (rq *RingQueue[T]) Dequeue() (T, bool) {
	if rq.size == 0 {
		var zero T
		return zero, false
	}
	item := rq.buf[rq.head]
	rq.Pop()
	return item, true
}

// Front returns a reference to the first element.
func (rq *RingQueue[T]) Front() *T {
	return rq.At(0)
}

// Back returns a reference to the last element.
func (rq *RingQueue[T]) Back() *T {
	return rq.At(rq.size - 1)
}

// At returns a reference to the i-th element counted from the front.
func (rq *RingQueue[T]) At(i int) *T {
	if i < 0 || i >= rq.size {
		panic("queue: ring index out of range")
	}
	return &rq.buf[rq.wrapIndex(rq.head+i)]
}

// Set assigns value to every element.
func (rq *RingQueue[T]) Set(value T) {
	head, tail := rq.segments()
	for i := range head {
		head[i] = value
	}
	for i := range tail {
		tail[i] = value
	}
}

// Clear removes every element. Capacity is unchanged.
func (rq *RingQueue[T]) Clear() {
	head, tail := rq.segments()
	clear(head)
	clear(tail)
	rq.head = 0
	rq.size = 0
}

// Reserve grows the block to hold at least n elements. It never shrinks.
func (rq *RingQueue[T]) Reserve(n int) {
	if n > len(rq.buf) {
		rq.grow(n)
	}
}

// Size returns the number of elements.
func (rq *RingQueue[T]) Size() int { return rq.size }

// Empty reports whether the queue holds no elements.
func (rq *RingQueue[T]) Empty() bool { return rq.size == 0 }

// Capacity returns the number of slots in the current block.
func (rq *RingQueue[T]) Capacity() int { return len(rq.buf) }

// Grows returns how many times the block has been reallocated.
func (rq *RingQueue[T]) Grows() int { return rq.grows }

// All yields (index, element) pairs from front to back.
func (rq *RingQueue[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		head, tail := rq.segments()
		for i, v := range head {
			if !yield(i, v) {
				return
			}
		}
		for i, v := range tail {
			if !yield(len(head)+i, v) {
				return
			}
		}
	}
}

// Values returns a copy of the elements from front to back.
func (rq *RingQueue[T]) Values() []T {
	head, tail := rq.segments()
	out := make([]T, 0, rq.size)
	out = append(out, head...)
	return append(out, tail...)
}

// Clone returns an independent copy.
func (rq *RingQueue[T]) Clone() *RingQueue[T] {
	rq.log.Debug("ring copied", zap.Int("size", rq.size))
	c := &RingQueue[T]{alloc: rq.alloc, log: rq.log}
	c.adoptCopy(rq)
	return c
}

// CopyFrom replaces the contents with copies of src's elements.
func (rq *RingQueue[T]) CopyFrom(src *RingQueue[T]) {
	if src == rq {
		return
	}
	rq.log.Debug("ring copy-assigned", zap.Int("size", src.size))
	rq.destroy()
	rq.adoptCopy(src)
}

// Move returns a new queue that takes over rq's block.
// rq is left empty with zero capacity and owns nothing.
func (rq *RingQueue[T]) Move() *RingQueue[T] {
	rq.log.Debug("ring moved", zap.Int("size", rq.size))
	m := *rq
	*rq = RingQueue[T]{alloc: rq.alloc, log: rq.log}
	return &m
}

// MoveFrom releases rq's storage and takes over src's block.
func (rq *RingQueue[T]) MoveFrom(src *RingQueue[T]) {
	if src == rq {
		return
	}
	rq.log.Debug("ring move-assigned", zap.Int("size", src.size))
	rq.destroy()
	*rq = *src
	*src = RingQueue[T]{alloc: rq.alloc, log: rq.log}
}

// Release zeroes every element and frees the block.
func (rq *RingQueue[T]) Release() {
	if rq.buf == nil {
		return
	}
	rq.log.Debug("ring released", zap.Int("capacity", len(rq.buf)))
	rq.destroy()
}

// WriteTo writes each element followed by a newline.
func (rq *RingQueue[T]) WriteTo(w io.Writer) (int64, error) {
	return writeLines(w, rq.values())
}

// Print writes the elements to stdout, one per line.
func (rq *RingQueue[T]) Print() error {
	_, err := rq.WriteTo(os.Stdout)
	return err
}

// String renders the elements on one line separated by spaces.
func (rq *RingQueue[T]) String() string {
	return joinValues(rq.values())
}

func (rq *RingQueue[T]) values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, v := range rq.All() {
			if !yield(v) {
				return
			}
		}
	}
}

// segments returns the live elements as up to two slices to handle the
// wrap-around case.
func (rq *RingQueue[T]) segments() (head, tail []T) {
	if rq.size == 0 {
		return nil, nil
	}
	end := rq.head + rq.size
	if end <= len(rq.buf) {
		return rq.buf[rq.head:end], nil
	}
	return rq.buf[rq.head:], rq.buf[:end-len(rq.buf)]
}

// wrapIndex returns the index wrapped within buffer capacity.
func (rq *RingQueue[T]) wrapIndex(idx int) int {
	return idx & (len(rq.buf) - 1)
}

// grow expands the block to at least minCap slots.
func (rq *RingQueue[T]) grow(minCap int) {
	rq.relocate(rq.calculateGrowth(minCap), rq.alloc)
	rq.grows++
}

// calculateGrowth doubles the capacity until it holds minCap.
func (rq *RingQueue[T]) calculateGrowth(minCap int) int {
	newCap := max(len(rq.buf), defaultRingCapacity)
	for newCap < minCap {
		newCap *= 2
	}
	return newCap
}

// relocate unwraps the elements into a fresh block of n slots from rq.alloc
// and returns the old block to from.
func (rq *RingQueue[T]) relocate(n int, from Allocator[T]) {
	rq.log.Debug("ring realloc",
		zap.Int("from", len(rq.buf)),
		zap.Int("to", n),
		zap.Int("size", rq.size),
	)

	next := rq.alloc.Alloc(n)
	head, tail := rq.segments()
	copied := copy(next, head)
	copy(next[copied:], tail)

	clear(head)
	clear(tail)
	if rq.buf != nil {
		from.Free(rq.buf)
	}
	rq.buf = next
	rq.head = 0
}

// adoptCopy fills a fresh block with copies of src's elements. The block
// holds twice src's size, rounded up to a power of two.
func (rq *RingQueue[T]) adoptCopy(src *RingQueue[T]) {
	n := utils.CeilToPowerOfTwo(max(fromFactor*src.size, defaultRingCapacity))
	rq.buf = rq.alloc.Alloc(n)
	head, tail := src.segments()
	copied := copy(rq.buf, head)
	copy(rq.buf[copied:], tail)
	rq.head = 0
	rq.size = src.size
}

func (rq *RingQueue[T]) destroy() {
	head, tail := rq.segments()
	clear(head)
	clear(tail)
	if rq.buf != nil {
		rq.alloc.Free(rq.buf)
	}
	rq.buf = nil
	rq.head = 0
	rq.size = 0
}
