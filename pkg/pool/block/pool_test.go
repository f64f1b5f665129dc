package block

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/huynhanx03/go-queue/pkg/pool/internal/calibrated"
)

func TestPool_Alloc(t *testing.T) {
	tests := []struct {
		name    string
		n       int
		wantCap int
	}{
		{"zero", 0, 0},
		{"min_bucket", 1, 2},
		{"exact_bucket", 8, 8},
		{"round_up", 5, 8},
		{"large", 3000, 4096},
	}

	p := New[int]()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := p.Alloc(tt.n)
			assert.Len(t, b, tt.n)
			assert.Equal(t, tt.wantCap, cap(b))
			for i, v := range b {
				assert.Zerof(t, v, "slot %d", i)
			}
		})
	}
}

func TestPool_FreeZeroesBlock(t *testing.T) {
	p := New[*int]()
	b := p.Alloc(4)
	for i := range b {
		b[i] = new(int)
	}
	p.Free(b)

	// Either the recycled block or a fresh one; both must be zeroed.
	again := p.Alloc(4)
	for i, v := range again {
		assert.Nilf(t, v, "slot %d", i)
	}
	assert.Equal(t, uint64(1), p.Stats().Puts)
}

func TestPool_FreeForeignBlock(t *testing.T) {
	p := New[int]()
	p.Free(nil)
	p.Free(make([]int, 0))
	assert.Equal(t, Stats{}, p.Stats())

	p.Free(make([]int, 5))
	assert.Equal(t, uint64(1), p.Stats().Drops, "non-bucket sizes are dropped")
	assert.Equal(t, uint64(0), p.Stats().Puts)

	p.Free(make([]int, 3, 16))
	assert.Equal(t, uint64(1), p.Stats().Puts, "capacity decides the bucket")
}

func TestPool_Oversize(t *testing.T) {
	p := New[struct{}]()
	b := p.Alloc(calibrated.MaxSize + 1)
	assert.Len(t, b, calibrated.MaxSize+1)
	assert.Equal(t, uint64(1), p.Stats().Oversize)
	assert.Equal(t, uint64(0), p.Stats().Gets)
}

func TestBucketSize(t *testing.T) {
	assert.Equal(t, 2, BucketSize(0))
	assert.Equal(t, 1024, BucketSize(9))
	assert.Equal(t, 0, BucketSize(-1))
	assert.Equal(t, 0, BucketSize(calibrated.Steps))
}
