// Package pool provides pooled byte buffers for decompression scratch
// space, so repeated decode sessions over compressed inputs do not
// reallocate their inflate buffers.
package pool

import "sync"

const (
	// BufferDefaultSize fits a typical single-activity FIT file.
	BufferDefaultSize = 64 * 1024
	// BufferMaxThreshold caps retained buffers; anything larger is dropped
	// instead of being returned to the pool.
	BufferMaxThreshold = 4 * 1024 * 1024
)

// ByteBuffer is a reusable growable byte slice.
type ByteBuffer struct {
	B []byte
}

// Reset empties the buffer but keeps its capacity for reuse.
func (bb *ByteBuffer) Reset() { bb.B = bb.B[:0] }

// Write appends data, growing the buffer as needed. It never fails; the
// error return satisfies io.Writer.
func (bb *ByteBuffer) Write(data []byte) (int, error) {
	bb.B = append(bb.B, data...)
	return len(data), nil
}

var bufferPool = sync.Pool{
	New: func() any {
		return &ByteBuffer{B: make([]byte, 0, BufferDefaultSize)}
	},
}

// GetBuffer retrieves an empty ByteBuffer from the pool.
func GetBuffer() *ByteBuffer {
	bb, _ := bufferPool.Get().(*ByteBuffer)
	return bb
}

// PutBuffer returns a ByteBuffer to the pool. Oversized buffers are
// discarded to keep the pool from pinning large allocations.
func PutBuffer(bb *ByteBuffer) {
	if bb == nil || cap(bb.B) > BufferMaxThreshold {
		return
	}
	bb.Reset()
	bufferPool.Put(bb)
}
