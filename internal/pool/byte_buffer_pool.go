package pool

import "sync"

// ChunkBufferSize is the read granularity used for every copy out of a container.
// ChunkBufferCap leaves one spare byte in front of a chunk, which the payload
// extractor uses to hold back the byte that may turn out to be the terminator.
const (
	ChunkBufferSize = 2048
	ChunkBufferCap  = ChunkBufferSize + 1
)

type ByteBuffer struct {
	// B is the underlying byte slice. Its length equals the pool's buffer size.
	B []byte
}

// NewByteBuffer creates a new ByteBuffer of the given size, ready to be read into.
func NewByteBuffer(size int) *ByteBuffer {
	return &ByteBuffer{
		B: make([]byte, size),
	}
}

// Bytes returns the underlying byte slice.
func (bb *ByteBuffer) Bytes() []byte {
	return bb.B
}

// Len returns the length of the buffer.
func (bb *ByteBuffer) Len() int {
	return len(bb.B)
}

// Reset restores the buffer to its full capacity, keeping the allocated memory.
func (bb *ByteBuffer) Reset() {
	bb.B = bb.B[:cap(bb.B)]
}

// ByteBufferPool is a pool of fixed-size ByteBuffers.
//
// It uses sync.Pool internally. Buffers whose capacity differs from the pool's
// size are discarded on Put so a caller that reallocated B cannot leak an odd
// sized buffer into the pool.
type ByteBufferPool struct {
	pool sync.Pool
	size int
}

// NewByteBufferPool creates a new ByteBufferPool with buffers of the specified size.
func NewByteBufferPool(size int) *ByteBufferPool {
	return &ByteBufferPool{
		pool: sync.Pool{
			New: func() any {
				return NewByteBuffer(size)
			},
		},
		size: size,
	}
}

// Size returns the length of the buffers handed out by the pool.
func (bbp *ByteBufferPool) Size() int {
	return bbp.size
}

// Get retrieves a ByteBuffer from the pool.
func (bbp *ByteBufferPool) Get() *ByteBuffer {
	bb, _ := bbp.pool.Get().(*ByteBuffer)
	return bb
}

// Put returns a ByteBuffer to the pool for reuse.
func (bbp *ByteBufferPool) Put(bb *ByteBuffer) {
	if bb == nil || cap(bb.B) != bbp.size {
		return
	}

	bb.Reset()
	bbp.pool.Put(bb)
}

var chunkDefaultPool = NewByteBufferPool(ChunkBufferCap)

// GetChunkBuffer retrieves a ByteBuffer of ChunkBufferCap bytes from the default chunk pool.
func GetChunkBuffer() *ByteBuffer {
	return chunkDefaultPool.Get()
}

// PutChunkBuffer returns a ByteBuffer to the default chunk pool.
func PutChunkBuffer(bb *ByteBuffer) {
	chunkDefaultPool.Put(bb)
}
