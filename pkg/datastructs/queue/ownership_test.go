package queue

import (
	"fmt"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

// Clones handed to separate goroutines must not share storage; run with
// -race to catch any aliasing.
func TestClone_NoSharedStorage(t *testing.T) {
	src := New[int]()
	for i := 0; i < 100; i++ {
		src.Push(i)
	}
	src.Pop()
	want := src.Values()

	const workers = 8
	var g errgroup.Group
	for w := 0; w < workers; w++ {
		c := src.Clone()
		rc := RingFrom(want...)
		g.Go(func() error {
			c.Set(w)
			for i := 0; i < 500; i++ {
				c.Push(w)
				c.Pop()
			}
			for _, v := range c.All() {
				if v != w {
					return fmt.Errorf("worker %d: saw %d", w, v)
				}
			}

			rc.Set(-w)
			rc.Push(w)
			if *rc.Back() != w || rc.Size() != len(want)+1 {
				return fmt.Errorf("worker %d: ring clone corrupted", w)
			}
			return nil
		})
	}
	require.NoError(t, g.Wait())
	assert.True(t, slices.Equal(want, src.Values()), "source changed by its clones")
}

func TestMove_SingleOwner(t *testing.T) {
	src := From(1, 2, 3)
	dst := src.Move()

	src.Push(9)
	assert.Equal(t, []int{1, 2, 3}, dst.Values(), "moved-from queue must not alias the block")
	assert.Equal(t, []int{9}, src.Values())
}
