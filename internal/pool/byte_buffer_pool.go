// Package pool provides the reusable staging buffers used by the codec.
//
// Every serialize or deserialize call stages element bytes through one
// fixed-size buffer. The buffers come from a sync.Pool so repeated calls,
// and the many inner calls of a nested stream, do not allocate a fresh
// 64 KiB slice each time.
package pool

import (
	"sync"
)

const (
	StagingBufferSize         = 64 * 1024   // 64KiB default staging chunk
	StagingBufferMaxThreshold = 1024 * 1024 // 1MiB, larger buffers are not retained
)

// ByteBuffer is a reusable byte slice.
type ByteBuffer struct {
	// B is the underlying byte slice.
	B []byte
}

// NewByteBuffer creates a new empty ByteBuffer with the given capacity.
func NewByteBuffer(capacity int) *ByteBuffer {
	return &ByteBuffer{
		B: make([]byte, 0, capacity),
	}
}

// Bytes returns the underlying byte slice.
func (bb *ByteBuffer) Bytes() []byte {
	return bb.B
}

// Reset empties the buffer but retains the allocated memory for reuse.
func (bb *ByteBuffer) Reset() {
	bb.B = bb.B[:0]
}

// Len returns the length of the buffer.
func (bb *ByteBuffer) Len() int {
	return len(bb.B)
}

// Cap returns the capacity of the buffer.
func (bb *ByteBuffer) Cap() int {
	return cap(bb.B)
}

// Slice returns a slice of the buffer from start to end.
// Panics if the indices are out of bounds.
func (bb *ByteBuffer) Slice(start, end int) []byte {
	if start < 0 || end < start || end > cap(bb.B) {
		panic("Slice: invalid indices")
	}

	return bb.B[start:end]
}

// Resize sets the buffer length to n, reallocating when the capacity is
// too small. Existing content is not preserved across a reallocation.
// Panics if n is negative.
func (bb *ByteBuffer) Resize(n int) {
	if n < 0 {
		panic("Resize: negative length")
	}

	if cap(bb.B) < n {
		bb.B = make([]byte, n)
		return
	}

	bb.B = bb.B[:n]
}

// ByteBufferPool is a pool of ByteBuffers to minimize allocations.
//
// It uses sync.Pool internally. Buffers whose capacity exceeds maxThreshold
// are dropped on Put instead of being retained.
type ByteBufferPool struct {
	pool         sync.Pool
	maxThreshold int
}

// NewByteBufferPool creates a new ByteBufferPool with buffers of the specified default size.
func NewByteBufferPool(defaultSize int, maxThreshold int) *ByteBufferPool {
	return &ByteBufferPool{
		pool: sync.Pool{
			New: func() any {
				return NewByteBuffer(defaultSize)
			},
		},
		maxThreshold: maxThreshold,
	}
}

// Get retrieves a ByteBuffer from the pool.
func (bbp *ByteBufferPool) Get() *ByteBuffer {
	bb, _ := bbp.pool.Get().(*ByteBuffer)
	return bb
}

// Put returns a ByteBuffer to the pool for reuse.
func (bbp *ByteBufferPool) Put(bb *ByteBuffer) {
	if bb == nil {
		return
	}

	if bbp.maxThreshold > 0 && cap(bb.B) > bbp.maxThreshold {
		return
	}

	bb.Reset()
	bbp.pool.Put(bb)
}

var stagingPool = NewByteBufferPool(StagingBufferSize, StagingBufferMaxThreshold)

// GetStagingBuffer retrieves a staging buffer whose length is exactly size.
//
// The caller must return it with PutStagingBuffer, typically via defer:
//
//	buf := pool.GetStagingBuffer(pool.StagingBufferSize)
//	defer pool.PutStagingBuffer(buf)
func GetStagingBuffer(size int) *ByteBuffer {
	bb := stagingPool.Get()
	bb.Resize(size)

	return bb
}

// PutStagingBuffer returns a staging buffer to the pool.
func PutStagingBuffer(bb *ByteBuffer) {
	stagingPool.Put(bb)
}
