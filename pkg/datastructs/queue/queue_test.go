package queue

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// queueFactory creates an empty Queue[int].
type queueFactory func() Queue[int]

// queueImplementations holds every container that satisfies Queue.
var queueImplementations = map[string]queueFactory{
	"ArrayQueue": func() Queue[int] { return New[int]() },
	"RingQueue":  func() Queue[int] { return NewRing[int]() },
}

// =============================================================================
// Shared contract
// =============================================================================

func TestQueue_FIFOOrder(t *testing.T) {
	for name, factory := range queueImplementations {
		t.Run(name, func(t *testing.T) {
			q := factory()
			for i := 0; i < 50; i++ {
				q.Push(i)
			}
			require.Equal(t, 50, q.Size())
			for i := 0; i < 50; i++ {
				require.Equal(t, i, *q.At(i))
			}
			for i := 0; i < 50; i++ {
				v, ok := q.Dequeue()
				require.True(t, ok)
				require.Equal(t, i, v)
			}
			assert.True(t, q.Empty())
		})
	}
}

func TestQueue_InterleavedPushPop(t *testing.T) {
	for name, factory := range queueImplementations {
		t.Run(name, func(t *testing.T) {
			q := factory()
			next, want := 0, 0
			for round := 0; round < 20; round++ {
				for i := 0; i < 3; i++ {
					q.Push(next)
					next++
				}
				for i := 0; i < 2; i++ {
					require.Equal(t, want, *q.Front())
					q.Pop()
					want++
				}
			}
			assert.Equal(t, next-want, q.Size())
			assert.Equal(t, next-1, *q.Back())
			assert.LessOrEqual(t, q.Size(), q.Capacity())
		})
	}
}

func TestQueue_ClearIdempotent(t *testing.T) {
	for name, factory := range queueImplementations {
		t.Run(name, func(t *testing.T) {
			q := factory()
			q.Clear()
			assert.True(t, q.Empty())

			q.Push(1)
			q.Push(2)
			capacity := q.Capacity()
			q.Clear()
			q.Clear()
			assert.Equal(t, 0, q.Size())
			assert.Equal(t, capacity, q.Capacity())

			q.Push(3)
			assert.Equal(t, 3, *q.Front())
		})
	}
}

func TestQueue_DequeueEmpty(t *testing.T) {
	for name, factory := range queueImplementations {
		t.Run(name, func(t *testing.T) {
			v, ok := factory().Dequeue()
			assert.False(t, ok)
			assert.Zero(t, v)
		})
	}
}
