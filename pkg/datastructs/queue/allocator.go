package queue

// Allocator supplies and reclaims element blocks.
// Alloc must return a zeroed block with len exactly n. Free receives a block
// previously returned by Alloc whose slots have already been zeroed.
type Allocator[T any] interface {
	Alloc(n int) []T
	Free(b []T)
}

// heapAllocator allocates from the Go heap and leaves reclamation to the GC.
type heapAllocator[T any] struct{}

func (heapAllocator[T]) Alloc(n int) []T {
	if n == 0 {
		return nil
	}
	return make([]T, n)
}

func (heapAllocator[T]) Free([]T) {}
