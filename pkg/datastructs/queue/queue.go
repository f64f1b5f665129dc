// Package queue provides single-owner growable sequence containers.
//
// ArrayQueue keeps its live elements in one contiguous block and removes
// from the front by advancing a head offset; the vacated prefix is only
// reclaimed by the next reallocation or Clear. RingQueue offers the same
// surface as a wrap-around FIFO that reuses vacated slots.
//
// None of the containers are safe for concurrent use. Accessing a position
// outside the live range is a caller error and panics.
package queue

// Queue is the common surface of the containers in this package.
type Queue[T any] interface {
	// Push appends item at the tail, growing the storage if needed.
	Push(item T)

	// Pop removes the front element. The queue must not be empty.
	Pop()

	// Dequeue removes and returns the front element.
	// Returns (zero, false) if the queue is empty.
	Dequeue() (T, bool)

	// Front, Back and At return references into the live range.
	Front() *T
	Back() *T
	At(i int) *T

	Size() int
	Empty() bool
	Clear()

	// Capacity returns the number of slots in the current block.
	Capacity() int
}
