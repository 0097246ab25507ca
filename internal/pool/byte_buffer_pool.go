// Package pool provides pooled byte buffers for the write-engine buffer sink
// and the blocking feed loop.
package pool

import "sync"

// DocBufferDefaultSize is the initial capacity of a pooled document buffer.
// DocBufferMaxThreshold caps what is returned to the pool; oversized buffers
// are dropped so a single huge document does not pin memory.
const (
	DocBufferDefaultSize  = 1024 * 4
	DocBufferMaxThreshold = 1024 * 64
)

// ByteBuffer is a growable byte buffer backed by a plain slice.
type ByteBuffer struct {
	// B is the underlying byte slice.
	B []byte
}

// Bytes returns the underlying byte slice.
func (bb *ByteBuffer) Bytes() []byte {
	return bb.B
}

// Reset resets the buffer to be empty, retaining the allocation for reuse.
func (bb *ByteBuffer) Reset() {
	bb.B = bb.B[:0]
}

// Len returns the length of the buffer.
func (bb *ByteBuffer) Len() int {
	return len(bb.B)
}

// Write appends data to the buffer, growing it as needed. It never fails;
// the error return satisfies io.Writer.
func (bb *ByteBuffer) Write(data []byte) (int, error) {
	bb.B = append(bb.B, data...)
	return len(data), nil
}

// WriteByte appends a single byte to the buffer.
func (bb *ByteBuffer) WriteByte(c byte) error {
	bb.B = append(bb.B, c)
	return nil
}

var docBufferPool = sync.Pool{
	New: func() any {
		return &ByteBuffer{B: make([]byte, 0, DocBufferDefaultSize)}
	},
}

// GetDocBuffer obtains an empty ByteBuffer from the pool.
func GetDocBuffer() *ByteBuffer {
	buf, _ := docBufferPool.Get().(*ByteBuffer)
	buf.Reset()

	return buf
}

// PutDocBuffer returns a ByteBuffer to the pool. Buffers grown past
// DocBufferMaxThreshold are dropped.
func PutDocBuffer(buf *ByteBuffer) {
	if buf == nil || cap(buf.B) > DocBufferMaxThreshold {
		return
	}
	docBufferPool.Put(buf)
}
