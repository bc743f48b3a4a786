// Package wire defines the constants, enums, and fixed-size packet header
// shared by every other UMB package: the codec, the schema compiler, and
// the packet transport.
package wire

// Packet and header sizing, as fixed by the UMB wire format.
const (
	// PacketSize is the maximum number of bytes in a single packet,
	// header included.
	PacketSize = 255

	// HeaderSize is the size in bytes of the packet header (size, part, type).
	HeaderSize = 4

	// PayloadSize is the maximum payload bytes a single packet can carry.
	PayloadSize = PacketSize - HeaderSize

	// MaxDynamicSize is the largest length a dynamic field (string, bytes,
	// or a float's decimal text) may declare in its one-byte length prefix.
	MaxDynamicSize = 255

	// BoolsPerByte is how many packed boolean fields share one byte.
	BoolsPerByte = 8

	// DynamicFieldHeaderSize is the size in bytes of a dynamic field's
	// length prefix.
	DynamicFieldHeaderSize = 1
)

// Part sentinel values for PacketHeader.Part.
const (
	// PartSolePart marks a packet as the only packet of a single-part message.
	PartSolePart = 255

	// PartFinal marks a packet as the final part of a multipart message.
	PartFinal = 254

	// PartFirst is the part index of the first packet of a multipart message.
	PartFirst = 0
)

// MaxMessageTypes is the largest number of distinct message types a schema
// may assign, reserving 0 for "no message".
const MaxMessageTypes = 1<<16 - 1

// Fixed wire sizes of the statically-sized field types.
const (
	SizeofByte = 1
	SizeofBool = 1 // standalone (unpacked) bool
	SizeofInt  = 4
	SizeofChar = 2 // one UTF-16 code unit on the wire
)
