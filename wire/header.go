package wire

import "fmt"

// PacketHeader is the fixed 4-byte header present at the start of every
// packet:
//
//	offset 0:   size  (total bytes in this packet, including this header)
//	offset 1:   part  (0..253 intermediate, 254 final, 255 sole)
//	offset 2-3: type  (little-endian 16-bit message type tag)
type PacketHeader struct {
	Size uint8
	Part uint8
	Type uint16
}

// Kind classifies h.Part.
func (h PacketHeader) Kind() PartKind {
	return ClassifyPart(h.Part)
}

// Bytes serializes the header into a new 4-byte slice.
func (h PacketHeader) Bytes() []byte {
	b := make([]byte, HeaderSize)
	h.Put(b)
	return b
}

// Put writes the header into dst, which must be at least HeaderSize long.
func (h PacketHeader) Put(dst []byte) {
	_ = dst[HeaderSize-1] // bounds check hint
	dst[0] = h.Size
	dst[1] = h.Part
	dst[2] = byte(h.Type)
	dst[3] = byte(h.Type >> 8)
}

// ParsePacketHeader reads a PacketHeader from the first HeaderSize bytes of
// src. src must be at least HeaderSize bytes long.
func ParsePacketHeader(src []byte) (PacketHeader, error) {
	if len(src) < HeaderSize {
		return PacketHeader{}, fmt.Errorf("wire: short header: need %d bytes, got %d", HeaderSize, len(src))
	}

	return PacketHeader{
		Size: src[0],
		Part: src[1],
		Type: uint16(src[2]) | uint16(src[3])<<8,
	}, nil
}

// PayloadLen returns the number of payload bytes this header declares,
// i.e. Size minus the header itself. It does not validate Size.
func (h PacketHeader) PayloadLen() int {
	return int(h.Size) - HeaderSize
}
