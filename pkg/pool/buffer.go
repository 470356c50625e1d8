package pool

import "sync"

// BufferPool hands out fixed-size read chunks for streaming checksums.
type BufferPool struct {
	size int       // Length of every chunk.
	pool sync.Pool // Thread-safe pool of *[]byte.
}

// Creates a new pool whose chunks are size bytes long.
func NewBufferPool(size int) *BufferPool {
	return &BufferPool{
		size: size,
		pool: sync.Pool{
			New: func() any {
				buf := make([]byte, size)
				return &buf
			},
		},
	}
}

// Size returns the chunk length.
func (bp *BufferPool) Size() int {
	return bp.size
}

// Retrieves a chunk from the pool.
func (bp *BufferPool) Get() *[]byte {
	return bp.pool.Get().(*[]byte)
}

// Returns a chunk to the pool.
func (bp *BufferPool) Put(buf *[]byte) {
	// Chunks of a foreign size would break the fixed-size contract.
	if buf == nil || cap(*buf) != bp.size {
		return
	}

	*buf = (*buf)[:bp.size]
	bp.pool.Put(buf)
}
