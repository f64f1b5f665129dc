package queue

const (
	// defaultCapacity is the block size of a freshly constructed ArrayQueue.
	defaultCapacity = 2

	// defaultRingCapacity is the minimum block size of a RingQueue.
	defaultRingCapacity = 2

	// fromFactor sizes the block built by From and by copies: factor * live size.
	fromFactor = 2
)
