// Package codec implements the UMB primitive wire codec (spec.md C1): the
// bounds-checked decode cursor and pooled-buffer encoder for the closed set
// of field types byte/int/bool/float/string/bytes, plus standalone and
// packed boolean coding.
//
// Every decode step first performs a bounds check before reading, mirroring
// the original implementation's check_bounds (see umb/coding.hpp in the
// retrieval pack's original_source); a failed check returns wire.ErrShortBuffer
// rather than panicking, so Decoder callers can convert it into
// runtime.Instance.FromBytes's boolean result.
package codec

import (
	"github.com/wireumb/umb/endian"
	"github.com/wireumb/umb/wire"
)

// Decoder is a bounds-checked cursor over a byte span being decoded.
// It is not safe for concurrent use.
type Decoder struct {
	src    []byte
	off    int
	engine endian.EndianEngine
}

// NewDecoder creates a Decoder reading from src using the little-endian
// engine, the only byte order the UMB wire format specifies (spec.md §3).
func NewDecoder(src []byte) *Decoder {
	return &Decoder{src: src, engine: endian.GetLittleEndianEngine()}
}

// Offset returns the current read offset into the source span.
func (d *Decoder) Offset() int { return d.off }

// Remaining returns the number of unread bytes.
func (d *Decoder) Remaining() int { return len(d.src) - d.off }

// Done reports whether the cursor has consumed the entire source span.
func (d *Decoder) Done() bool { return d.off >= len(d.src) }

func (d *Decoder) checkBounds(n int) error {
	if d.off < 0 || n < 0 || d.off+n > len(d.src) {
		return wire.ErrShortBuffer
	}
	return nil
}

// Byte decodes a single octet.
func (d *Decoder) Byte() (byte, error) {
	if err := d.checkBounds(wire.SizeofByte); err != nil {
		return 0, err
	}
	b := d.src[d.off]
	d.off++
	return b, nil
}

// Bool decodes a standalone (unpacked) boolean: one octet, nonzero is true.
func (d *Decoder) Bool() (bool, error) {
	b, err := d.Byte()
	if err != nil {
		return false, err
	}
	return b != 0, nil
}

// Uint16 decodes a little-endian 16-bit unsigned integer.
func (d *Decoder) Uint16() (uint16, error) {
	if err := d.checkBounds(2); err != nil {
		return 0, err
	}
	v := d.engine.Uint16(d.src[d.off : d.off+2])
	d.off += 2
	return v, nil
}

// Int32 decodes a little-endian, two's-complement 32-bit signed integer.
func (d *Decoder) Int32() (int32, error) {
	if err := d.checkBounds(wire.SizeofInt); err != nil {
		return 0, err
	}
	v := int32(d.engine.Uint32(d.src[d.off : d.off+4])) //nolint:gosec
	d.off += wire.SizeofInt
	return v, nil
}

// Bytes decodes a 1-byte-length-prefixed opaque byte sequence. The returned
// slice is a copy; it does not alias the decoder's source.
func (d *Decoder) Bytes() ([]byte, error) {
	n, err := d.Byte()
	if err != nil {
		return nil, err
	}
	if n == 0 {
		return nil, nil
	}
	if err := d.checkBounds(int(n)); err != nil {
		return nil, err
	}
	out := make([]byte, n)
	copy(out, d.src[d.off:d.off+int(n)])
	d.off += int(n)
	return out, nil
}

// PackedBools decodes count consecutive packed boolean bits starting at the
// decoder's current offset, consuming ceil(count/8) bytes. It is the
// decode-side counterpart of Encoder.PackedBools and expects the caller
// (driven by schema.Analysis.BoolPacks) to know how many bits belong to
// this pack.
func (d *Decoder) PackedBools(count int) ([]bool, error) {
	if count <= 0 {
		return nil, nil
	}
	nbytes := (count + wire.BoolsPerByte - 1) / wire.BoolsPerByte
	if err := d.checkBounds(nbytes); err != nil {
		return nil, err
	}

	out := make([]bool, count)
	bitIdx := 0
	b := d.src[d.off]
	d.off++
	for i := 0; i < count; i++ {
		out[i] = (b & (1 << uint(bitIdx))) != 0
		bitIdx++
		if bitIdx == wire.BoolsPerByte && i != count-1 {
			b = d.src[d.off]
			d.off++
			bitIdx = 0
		}
	}
	return out, nil
}
