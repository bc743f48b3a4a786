// Package pool provides a pooled, growable byte buffer used by codec.Encoder
// and transport.Receiver to avoid an allocation per encoded or reassembled
// message.
//
// Same ByteBuffer shape and amortized-growth strategy as a columnar
// time-series blob encoder's buffer pool, retuned for UMB's much smaller
// buffers: a single packet is at most wire.PacketSize == 255 bytes, and a
// logical multipart message is rarely more than a few KiB, versus the
// 16KiB/1MiB default tiers a large blob buffer would use.
package pool

import "sync"

// Default and max-retained sizes for the two buffer tiers.
const (
	// PacketBufferDefaultSize covers a single framed packet.
	PacketBufferDefaultSize = 256
	// PacketBufferMaxThreshold is the largest buffer the packet pool retains.
	PacketBufferMaxThreshold = 4 * 1024

	// MessageBufferDefaultSize covers a whole logical (pre-framing) message.
	MessageBufferDefaultSize = 1024
	// MessageBufferMaxThreshold is the largest buffer the message pool retains.
	MessageBufferMaxThreshold = 64 * 1024
)

// ByteBuffer is a growable byte slice wrapper with an amortized growth
// strategy, meant to be obtained from and returned to a ByteBufferPool.
type ByteBuffer struct {
	B []byte
}

func newByteBuffer(defaultSize int) *ByteBuffer {
	return &ByteBuffer{B: make([]byte, 0, defaultSize)}
}

// Bytes returns the underlying byte slice.
func (bb *ByteBuffer) Bytes() []byte { return bb.B }

// Len returns the length of the buffer.
func (bb *ByteBuffer) Len() int { return len(bb.B) }

// Reset empties the buffer while retaining its capacity.
func (bb *ByteBuffer) Reset() { bb.B = bb.B[:0] }

// MustWrite appends data to the buffer, growing it if necessary.
func (bb *ByteBuffer) MustWrite(data []byte) {
	bb.B = append(bb.B, data...)
}

// Grow ensures the buffer can hold n more bytes without reallocating.
func (bb *ByteBuffer) Grow(n int) {
	available := cap(bb.B) - len(bb.B)
	if available >= n {
		return
	}

	growBy := MessageBufferDefaultSize
	if cap(bb.B) > 4*MessageBufferDefaultSize {
		growBy = cap(bb.B) / 4
	}
	if growBy < n {
		growBy = n
	}

	newBuf := make([]byte, len(bb.B), len(bb.B)+growBy)
	copy(newBuf, bb.B)
	bb.B = newBuf
}

// byteBufferPool is a sync.Pool of ByteBuffers bounded by maxThreshold, so
// a buffer that grew unusually large (e.g. from one outsized bytes field) is
// discarded instead of retained forever.
type byteBufferPool struct {
	pool         sync.Pool
	maxThreshold int
}

func newByteBufferPool(defaultSize, maxThreshold int) *byteBufferPool {
	return &byteBufferPool{
		pool: sync.Pool{
			New: func() any { return newByteBuffer(defaultSize) },
		},
		maxThreshold: maxThreshold,
	}
}

func (p *byteBufferPool) Get() *ByteBuffer {
	bb, _ := p.pool.Get().(*ByteBuffer)
	return bb
}

func (p *byteBufferPool) Put(bb *ByteBuffer) {
	if bb == nil {
		return
	}
	if p.maxThreshold > 0 && cap(bb.B) > p.maxThreshold {
		return
	}
	bb.Reset()
	p.pool.Put(bb)
}

var (
	packetPool  = newByteBufferPool(PacketBufferDefaultSize, PacketBufferMaxThreshold)
	messagePool = newByteBufferPool(MessageBufferDefaultSize, MessageBufferMaxThreshold)
)

// Get retrieves a ByteBuffer from the default (logical message) pool.
func Get() *ByteBuffer { return messagePool.Get() }

// Put returns a ByteBuffer to the default (logical message) pool.
func Put(bb *ByteBuffer) { messagePool.Put(bb) }

// GetPacket retrieves a ByteBuffer from the single-packet pool.
func GetPacket() *ByteBuffer { return packetPool.Get() }

// PutPacket returns a ByteBuffer to the single-packet pool.
func PutPacket(bb *ByteBuffer) { packetPool.Put(bb) }
