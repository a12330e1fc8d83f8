package pool

import (
	"io"
	"sync"
)

const (
	// BlockBufferDefaultSize is the initial capacity of a compressed block buffer.
	BlockBufferDefaultSize = 1024 * 4 // 4KiB
	// ChunkDefaultSize is the default read chunk used when streaming files through a compressor.
	ChunkDefaultSize = 1024 * 64 // 64KiB
	// ChunkMaxThreshold caps the chunk size retained by the pool.
	ChunkMaxThreshold = 1024 * 1024 * 4 // 4MiB
)

// ByteBuffer is an append-only byte buffer that also serves as an io.Writer
// sink for compression streams.
type ByteBuffer struct {
	// B is the underlying byte slice.
	B []byte
}

var _ io.Writer = (*ByteBuffer)(nil)

// NewByteBuffer creates a new ByteBuffer with the specified initial capacity.
func NewByteBuffer(defaultSize int) *ByteBuffer {
	return &ByteBuffer{
		B: make([]byte, 0, defaultSize),
	}
}

// Bytes returns the underlying byte slice.
func (bb *ByteBuffer) Bytes() []byte {
	return bb.B
}

// Reset empties the buffer but keeps the allocated memory for reuse.
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

// Grow ensures the buffer can hold requiredBytes more bytes without reallocating.
//
// Small buffers grow by BlockBufferDefaultSize; larger ones by 25% of their
// capacity, and always by at least requiredBytes.
func (bb *ByteBuffer) Grow(requiredBytes int) {
	available := cap(bb.B) - len(bb.B)
	if available >= requiredBytes {
		return
	}

	growBy := BlockBufferDefaultSize
	if cap(bb.B) > 4*BlockBufferDefaultSize {
		growBy = cap(bb.B) / 4
	}

	if growBy < requiredBytes {
		growBy = requiredBytes
	}

	newBuf := make([]byte, len(bb.B), len(bb.B)+growBy)
	copy(newBuf, bb.B)
	bb.B = newBuf
}

// Write appends data to the buffer, growing it as needed. It never fails.
func (bb *ByteBuffer) Write(data []byte) (int, error) {
	bb.Grow(len(data))
	bb.B = append(bb.B, data...)

	return len(data), nil
}

// Resize returns s with length n, reusing its backing array when the capacity
// suffices. Contents are not cleared; callers overwrite every element they read.
func Resize[T any](s []T, n int) []T {
	if cap(s) < n {
		return make([]T, n)
	}

	return s[:n]
}

var chunkPool = sync.Pool{
	New: func() any {
		buf := make([]byte, ChunkDefaultSize)
		return &buf
	},
}

// GetChunk retrieves a read buffer of exactly size bytes from the chunk pool.
// The caller must call the returned cleanup function when done with the buffer.
//
// Example:
//
//	chunk, release := pool.GetChunk(64 * 1024)
//	defer release()
func GetChunk(size int) ([]byte, func()) {
	if size <= 0 {
		size = ChunkDefaultSize
	}

	ptr, _ := chunkPool.Get().(*[]byte)
	*ptr = Resize(*ptr, size)
	chunk := *ptr

	return chunk, func() {
		if cap(*ptr) > ChunkMaxThreshold {
			return
		}
		chunkPool.Put(ptr)
	}
}
