package queue

import (
	"io"
	"iter"
	"os"
	"slices"

	"go.uber.org/zap"
)

var _ Queue[int] = (*ArrayQueue[int])(nil)

// ArrayQueue is a growable sequence over one contiguous block.
//
// Pop advances the start of the live range without moving elements, so the
// slots it vacates stay unused until the next growth, Reserve or Clear.
// Growth allocates a fresh block of 2*Size()+k slots for k incoming elements.
// Create one with New or From; the zero value is not usable.
// It is NOT thread-safe.
type ArrayQueue[T any] struct {
	blk block[T]
}

// New creates an empty ArrayQueue with a small initial block.
func New[T any](opts ...Option) *ArrayQueue[T] {
	o := buildOptions(defaultCapacity, opts)
	q := &ArrayQueue[T]{blk: newBlock[T](heapAllocator[T]{}, o.logger)}
	q.blk.realloc(o.capacity)
	q.blk.log.Debug("queue constructed", zap.Int("capacity", o.capacity))
	return q
}

// From creates an ArrayQueue holding items in order, with a block of
// twice len(items) slots.
func From[T any](items ...T) *ArrayQueue[T] {
	q := New[T](WithCapacity(fromFactor * len(items)))
	for _, item := range items {
		q.Push(item)
	}
	return q
}

// WithAllocator moves the storage onto blocks supplied by a.
// Later growth and Release go through a as well.
func (q *ArrayQueue[T]) WithAllocator(a Allocator[T]) *ArrayQueue[T] {
	if a == nil {
		return q
	}
	n := q.blk.capacity()
	old := q.blk.detach()
	q.blk = newBlock(a, old.log)
	q.blk.grows = old.grows
	q.blk.base = a.Alloc(n)
	q.blk.size = copy(q.blk.base, old.live())
	old.destroy()
	return q
}

// Push appends item at the tail. Amortized O(1).
func (q *ArrayQueue[T]) Push(item T) {
	q.blk.growFor(1)
	*q.blk.tail() = item
	q.blk.size++
}

// Emplace constructs a new tail element in place: init receives a pointer to
// the zeroed slot. Amortized O(1).
func (q *ArrayQueue[T]) Emplace(init func(slot *T)) {
	q.blk.growFor(1)
	init(q.blk.tail())
	q.blk.size++
}

// PushMany appends items in order after a single growth check.
func (q *ArrayQueue[T]) PushMany(items ...T) {
	if len(items) == 0 {
		return
	}
	q.blk.growFor(len(items))
	end := q.blk.head + q.blk.size
	q.blk.size += copy(q.blk.base[end:], items)
}

// Pop removes the front element in O(1). The vacated slot is not reclaimed.
// Pop on an empty queue panics.
func (q *ArrayQueue[T]) Pop() {
	q.blk.popFront()
}

// Dequeue removes and returns the front element.
// Returns (zero, false) if the queue is empty.
func (q *ArrayQueue[T]) Dequeue() (T, bool) {
	if q.blk.size == 0 {
		var zero T
		return zero, false
	}
	item := q.blk.live()[0]
	q.blk.popFront()
	return item, true
}

// Front returns a reference to the first element.
func (q *ArrayQueue[T]) Front() *T {
	return &q.blk.live()[0]
}

// Back returns a reference to the last element.
func (q *ArrayQueue[T]) Back() *T {
	return &q.blk.live()[q.blk.size-1]
}

// At returns a reference to the i-th live element.
func (q *ArrayQueue[T]) At(i int) *T {
	return &q.blk.live()[i]
}

// Set assigns value to every live element.
func (q *ArrayQueue[T]) Set(value T) {
	live := q.blk.live()
	for i := range live {
		live[i] = value
	}
}

// SetFunc builds one value with init and assigns it to every live element.
func (q *ArrayQueue[T]) SetFunc(init func(v *T)) {
	var value T
	init(&value)
	q.Set(value)
}

// Clear removes every element and rewinds to the start of the block.
// Capacity is unchanged.
func (q *ArrayQueue[T]) Clear() {
	q.blk.reset()
}

// Reserve reallocates to exactly n slots. If n < Size() the trailing
// elements are dropped. Panics if n is negative.
func (q *ArrayQueue[T]) Reserve(n int) {
	q.blk.reserve(n)
}

// Size returns the number of live elements.
func (q *ArrayQueue[T]) Size() int {
	return q.blk.size
}

// Empty reports whether the queue holds no elements.
func (q *ArrayQueue[T]) Empty() bool {
	return q.blk.size == 0
}

// Capacity returns the number of slots in the current block, including the
// prefix vacated by Pop.
func (q *ArrayQueue[T]) Capacity() int {
	return q.blk.capacity()
}

// Grows returns how many times the block has been reallocated by growth or
// Reserve.
func (q *ArrayQueue[T]) Grows() int {
	return q.blk.grows
}

// Begin returns an iterator at the first live element.
func (q *ArrayQueue[T]) Begin() Iterator[T] {
	return Iterator[T]{block: q.blk.base, pos: q.blk.head}
}

// End returns an iterator one past the last live element.
func (q *ArrayQueue[T]) End() Iterator[T] {
	return Iterator[T]{block: q.blk.base, pos: q.blk.head + q.blk.size}
}

// All yields (index, element) pairs in order.
func (q *ArrayQueue[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i, v := range q.blk.live() {
			if !yield(i, v) {
				return
			}
		}
	}
}

// Values returns a copy of the live elements.
func (q *ArrayQueue[T]) Values() []T {
	return append(make([]T, 0, q.blk.size), q.blk.live()...)
}

// Clone returns an independent copy on a fresh block of 2*Size() slots.
// The copy shares the allocator and logger but no storage.
func (q *ArrayQueue[T]) Clone() *ArrayQueue[T] {
	q.blk.log.Debug("queue copied", zap.Int("size", q.blk.size))
	c := &ArrayQueue[T]{blk: newBlock(q.blk.alloc, q.blk.log)}
	c.blk.adoptCopy(q.blk.live())
	return c
}

// CopyFrom replaces the contents with copies of src's elements on a fresh
// block of 2*src.Size() slots.
func (q *ArrayQueue[T]) CopyFrom(src *ArrayQueue[T]) {
	if src == q {
		return
	}
	q.blk.log.Debug("queue copy-assigned", zap.Int("size", src.blk.size))
	q.blk.adoptCopy(src.blk.live())
}

// Move returns a new queue that takes over q's block.
// q is left empty with zero capacity and owns nothing.
func (q *ArrayQueue[T]) Move() *ArrayQueue[T] {
	q.blk.log.Debug("queue moved", zap.Int("size", q.blk.size))
	return &ArrayQueue[T]{blk: q.blk.detach()}
}

// MoveFrom releases q's storage and takes over src's block. src is left
// empty with no storage.
func (q *ArrayQueue[T]) MoveFrom(src *ArrayQueue[T]) {
	if src == q {
		return
	}
	q.blk.log.Debug("queue move-assigned", zap.Int("size", src.blk.size))
	q.blk.destroy()
	q.blk = src.blk.detach()
}

// Release zeroes every element and frees the block. The queue is left
// empty with zero capacity. Calling Release again is a no-op.
func (q *ArrayQueue[T]) Release() {
	if q.blk.base == nil {
		return
	}
	q.blk.log.Debug("queue released", zap.Int("capacity", q.blk.capacity()))
	q.blk.destroy()
}

// WriteTo writes each element followed by a newline.
func (q *ArrayQueue[T]) WriteTo(w io.Writer) (int64, error) {
	return writeLines(w, slices.Values(q.blk.live()))
}

// Print writes the elements to stdout, one per line.
func (q *ArrayQueue[T]) Print() error {
	_, err := q.WriteTo(os.Stdout)
	return err
}

// String renders the elements on one line separated by spaces.
func (q *ArrayQueue[T]) String() string {
	return joinValues(slices.Values(q.blk.live()))
}
