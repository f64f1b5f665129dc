package calibrated

import (
	"sort"
	"sync"
	"sync/atomic"
)

const (
	minBitSize = 1  // 2 slots, the smallest block a container asks for
	Steps      = 24 // 2 to 16M slots

	minSize = 1 << minBitSize
	MaxSize = 1 << (minBitSize + Steps - 1)

	calibrateThreshold = 42000
	percentile95       = 0.95
)

// Stats is a point-in-time view of pool traffic.
type Stats struct {
	Gets     uint64 // blocks handed out from a bucket
	Puts     uint64 // blocks accepted back into a bucket
	Drops    uint64 // blocks rejected on Put (odd size or above the calibrated max)
	Oversize uint64 // requests larger than MaxSize served by newFunc directly
}

// Pool is a generic calibrated pool of size-classed items.
// Bucket i holds items of exactly minSize<<i slots.
type Pool[T any] struct {
	calls       [Steps]uint64
	calibrating uint64
	defaultSize uint64
	maxSize     uint64

	gets     atomic.Uint64
	puts     atomic.Uint64
	drops    atomic.Uint64
	oversize atomic.Uint64

	buckets   [Steps]sync.Pool
	newFunc   func(size int) T
	sizeFunc  func(T) int
	resetFunc func(T)
}

// New creates a new calibrated pool.
// newFunc builds an item of the given size, sizeFunc reports an item's size
// and resetFunc (optional) scrubs an item before it goes back to a bucket.
func New[T any](newFunc func(size int) T, sizeFunc func(T) int, resetFunc func(T)) *Pool[T] {
	p := &Pool[T]{
		newFunc:   newFunc,
		sizeFunc:  sizeFunc,
		resetFunc: resetFunc,
	}
	for i := range p.buckets {
		size := minSize << i
		p.buckets[i].New = func() any {
			return newFunc(size)
		}
	}
	return p
}

// Get returns an item of at least the given size.
func (p *Pool[T]) Get(size int) T {
	if size <= 0 {
		size = minSize
	}

	idx := SizeToIndex(size)
	if idx >= Steps {
		p.oversize.Add(1)
		return p.newFunc(size)
	}

	p.gets.Add(1)
	return p.buckets[idx].Get().(T)
}

// Put returns an item to the pool. Items whose size is not an exact bucket
// size are dropped so a later Get never sees a short item.
func (p *Pool[T]) Put(item T) {
	size := p.sizeFunc(item)
	if size == 0 {
		return
	}

	idx := SizeToIndex(size)
	if idx >= Steps || BucketSize(idx) != size {
		p.drops.Add(1)
		return
	}

	if atomic.AddUint64(&p.calls[idx], 1) > calibrateThreshold {
		p.calibrate()
	}

	max := int(atomic.LoadUint64(&p.maxSize))
	if max > 0 && size > max {
		p.drops.Add(1)
		return
	}

	if p.resetFunc != nil {
		p.resetFunc(item)
	}
	p.puts.Add(1)
	p.buckets[idx].Put(item)
}

// calibrate picks the most requested bucket as the default size and caps
// retained items at the size covering 95% of recent Puts.
func (p *Pool[T]) calibrate() {
	if !atomic.CompareAndSwapUint64(&p.calibrating, 0, 1) {
		return
	}
	defer atomic.StoreUint64(&p.calibrating, 0)

	stats := make(bucketStats, 0, Steps)
	for i := uint64(0); i < Steps; i++ {
		calls := atomic.SwapUint64(&p.calls[i], 0)
		stats = append(stats, bucket{calls: calls, size: minSize << i})
	}
	sort.Sort(stats)

	defaultSize := stats[0].size
	maxSize := defaultSize

	var total, sum uint64
	for _, s := range stats {
		total += s.calls
	}
	threshold := uint64(float64(total) * percentile95)

	for _, s := range stats {
		if sum > threshold {
			break
		}
		sum += s.calls
		if s.size > maxSize {
			maxSize = s.size
		}
	}

	atomic.StoreUint64(&p.defaultSize, defaultSize)
	atomic.StoreUint64(&p.maxSize, maxSize)
}

// DefaultSize returns the calibrated default size, 0 before the first calibration.
func (p *Pool[T]) DefaultSize() uint64 {
	return atomic.LoadUint64(&p.defaultSize)
}

// MaxSize returns the calibrated max size, 0 before the first calibration.
func (p *Pool[T]) MaxSize() uint64 {
	return atomic.LoadUint64(&p.maxSize)
}

// Stats returns traffic counters.
func (p *Pool[T]) Stats() Stats {
	return Stats{
		Gets:     p.gets.Load(),
		Puts:     p.puts.Load(),
		Drops:    p.drops.Load(),
		Oversize: p.oversize.Load(),
	}
}

type bucket struct {
	calls uint64
	size  uint64
}

type bucketStats []bucket

func (b bucketStats) Len() int           { return len(b) }
func (b bucketStats) Less(i, j int) bool { return b[i].calls > b[j].calls }
func (b bucketStats) Swap(i, j int)      { b[i], b[j] = b[j], b[i] }

// SizeToIndex returns the bucket index for a given size.
func SizeToIndex(n int) int {
	n--
	n >>= minBitSize
	idx := 0
	for n > 0 {
		n >>= 1
		idx++
	}
	return idx
}

// BucketSize returns the size of bucket at index i.
func BucketSize(i int) int {
	if i < 0 || i >= Steps {
		return 0
	}
	return minSize << i
}
