package codec

import (
	"github.com/wireumb/umb/endian"
	"github.com/wireumb/umb/internal/pool"
	"github.com/wireumb/umb/wire"
)

// Encoder accumulates the wire bytes of a single logical message into a
// pooled buffer: a *pool.ByteBuffer-backed writer with an endian.EndianEngine
// for multi-byte fields.
//
// An Encoder must be finished with Finish (or released with Release) exactly
// once; reusing it afterwards is undefined.
type Encoder struct {
	buf    *pool.ByteBuffer
	engine endian.EndianEngine
}

// NewEncoder creates an Encoder backed by a pooled buffer.
func NewEncoder() *Encoder {
	return &Encoder{
		buf:    pool.Get(),
		engine: endian.GetLittleEndianEngine(),
	}
}

// Byte appends a single octet.
func (e *Encoder) Byte(b byte) {
	e.buf.MustWrite([]byte{b})
}

// Bool appends a standalone (unpacked) boolean as a full octet.
func (e *Encoder) Bool(v bool) {
	if v {
		e.Byte(1)
	} else {
		e.Byte(0)
	}
}

// Uint16 appends a little-endian 16-bit unsigned integer.
func (e *Encoder) Uint16(v uint16) {
	var tmp [2]byte
	e.engine.PutUint16(tmp[:], v)
	e.buf.MustWrite(tmp[:])
}

// Int32 appends a little-endian, two's-complement 32-bit signed integer.
func (e *Encoder) Int32(v int32) {
	var tmp [4]byte
	e.engine.PutUint32(tmp[:], uint32(v)) //nolint:gosec
	e.buf.MustWrite(tmp[:])
}

// Bytes appends a 1-byte-length-prefixed opaque byte sequence.
// Returns wire.ErrOversizeDynamic if len(data) > wire.MaxDynamicSize.
func (e *Encoder) Bytes(data []byte) error {
	if len(data) > wire.MaxDynamicSize {
		return wire.ErrOversizeDynamic
	}
	e.Byte(byte(len(data)))
	if len(data) > 0 {
		e.buf.MustWrite(data)
	}
	return nil
}

// PackedBools appends the given booleans packed into ceil(len(bits)/8)
// bytes, lowest index occupying the lowest bit of the first byte. It is the
// encode-side counterpart of Decoder.PackedBools.
func (e *Encoder) PackedBools(bits []bool) {
	if len(bits) == 0 {
		return
	}
	nbytes := (len(bits) + wire.BoolsPerByte - 1) / wire.BoolsPerByte
	out := make([]byte, nbytes)
	for i, bit := range bits {
		if bit {
			out[i/wire.BoolsPerByte] |= 1 << uint(i%wire.BoolsPerByte)
		}
	}
	e.buf.MustWrite(out)
}

// Len returns the number of bytes written so far.
func (e *Encoder) Len() int { return e.buf.Len() }

// Finish returns the encoded bytes as a new, independently-owned slice and
// releases the encoder's pooled buffer. The Encoder must not be used again.
func (e *Encoder) Finish() []byte {
	out := make([]byte, e.buf.Len())
	copy(out, e.buf.Bytes())
	pool.Put(e.buf)
	e.buf = nil
	return out
}

// Release returns the encoder's pooled buffer without producing output.
// Use when an encode is abandoned partway (e.g. an oversize error).
func (e *Encoder) Release() {
	if e.buf != nil {
		pool.Put(e.buf)
		e.buf = nil
	}
}
