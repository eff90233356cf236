package core

// DeltaBuffer is a bounded FIFO of recent per-tick pose deltas used as a
// short-horizon velocity estimator. Pushing beyond capacity evicts the
// oldest sample.
type DeltaBuffer struct {
	deltas   []Delta
	capacity int
}

// NewDeltaBuffer creates an empty buffer holding at most capacity samples.
func NewDeltaBuffer(capacity int) *DeltaBuffer {
	if capacity < 1 {
		capacity = 1
	}
	return &DeltaBuffer{
		deltas:   make([]Delta, 0, capacity),
		capacity: capacity,
	}
}

// Push appends a sample, evicting the oldest once capacity is exceeded.
func (b *DeltaBuffer) Push(d Delta) {
	if len(b.deltas) == b.capacity {
		copy(b.deltas, b.deltas[1:])
		b.deltas = b.deltas[:len(b.deltas)-1]
	}
	b.deltas = append(b.deltas, d)
}

// Len returns the number of buffered samples.
func (b *DeltaBuffer) Len() int {
	return len(b.deltas)
}

// Deltas returns the buffered samples, oldest first. The slice is owned by
// the buffer and valid until the next Push or Clear.
func (b *DeltaBuffer) Deltas() []Delta {
	return b.deltas
}

// Clear discards all buffered samples.
func (b *DeltaBuffer) Clear() {
	b.deltas = b.deltas[:0]
}
