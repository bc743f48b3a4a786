package wire

import "errors"

// Sentinel errors shared across codec, schema, and transport. Named after
// the original C++ implementation's error conditions (umb::coding's
// check_bounds throw sites, umb::Message::from_bytes failure modes).
var (
	// ErrShortBuffer is returned when a decode step would read past the
	// end of the supplied byte span.
	ErrShortBuffer = errors.New("wire: short buffer")

	// ErrOversizeDynamic is returned when an encode step is given a
	// dynamic field value longer than MaxDynamicSize.
	ErrOversizeDynamic = errors.New("wire: dynamic field exceeds max size")

	// ErrFloatText is returned when a float's decimal text cannot be
	// parsed back into a float32.
	ErrFloatText = errors.New("wire: unparseable float text")

	// ErrNonBMPRune is returned when a string field contains a code point
	// outside the Basic Multilingual Plane.
	ErrNonBMPRune = errors.New("wire: non-BMP rune in string field")

	// ErrTrailingBytes names the case of a fully static message's
	// from_bytes being given more bytes than its static size accounts for.
	// runtime.Instance.FromBytes reports that case as false and does not
	// return this value.
	ErrTrailingBytes = errors.New("wire: trailing bytes after static message")

	// ErrInvalidPacketSize is a protocol violation: a packet header
	// declared a size smaller than HeaderSize (including 0).
	ErrInvalidPacketSize = errors.New("wire: invalid packet size")

	// ErrUnexpectedPart is a protocol violation: a packet header's Part
	// byte did not match the framing state machine's expectation.
	ErrUnexpectedPart = errors.New("wire: unexpected part value")

	// ErrTypeMismatch is a protocol violation: a mid-multipart packet's
	// Type did not match the type recorded from the first packet.
	ErrTypeMismatch = errors.New("wire: message type changed mid-multipart")
)
