package queue

import "unsafe"

// Iterator is a random-access cursor into an ArrayQueue's block.
//
// It holds no storage of its own. Any reallocation, Pop, Clear, Move or
// Release on the owning queue invalidates it. Positions are not validated
// against the live range.
type Iterator[T any] struct {
	block []T
	pos   int
}

// Inc advances the cursor and returns it.
func (it *Iterator[T]) Inc() *Iterator[T] {
	it.pos++
	return it
}

// PostInc advances the cursor and returns its previous value.
func (it *Iterator[T]) PostInc() Iterator[T] {
	prev := *it
	it.pos++
	return prev
}

// Dec moves the cursor back and returns it.
func (it *Iterator[T]) Dec() *Iterator[T] {
	it.pos--
	return it
}

// PostDec moves the cursor back and returns its previous value.
func (it *Iterator[T]) PostDec() Iterator[T] {
	prev := *it
	it.pos--
	return prev
}

// Offset returns a cursor n positions away. n may be negative.
func (it Iterator[T]) Offset(n int) Iterator[T] {
	return Iterator[T]{block: it.block, pos: it.pos + n}
}

// At returns the element offset positions from the cursor.
func (it Iterator[T]) At(offset int) *T {
	return &it.block[it.pos+offset]
}

// Value returns the element under the cursor.
func (it Iterator[T]) Value() *T {
	return &it.block[it.pos]
}

// Equal reports whether both cursors point at the same slot of the same block.
// Blocks are compared by address, so cursors from two queues that both hold
// no block (zero capacity) compare equal.
func (it Iterator[T]) Equal(other Iterator[T]) bool {
	return unsafe.SliceData(it.block) == unsafe.SliceData(other.block) && it.pos == other.pos
}
