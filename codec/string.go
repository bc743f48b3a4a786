package codec

import (
	"unicode/utf16"
	"unicode/utf8"

	"github.com/wireumb/umb/wire"
)

// String decodes a UMB wire-format string: a one-byte length n (code
// units, not bytes) followed by 2n little-endian-paired octets, each pair a
// UTF-16 code unit (spec.md §4.1). The code units are decoded with
// utf16.Decode: a valid surrogate pair on the wire becomes one non-BMP rune
// and a lone surrogate half becomes U+FFFD, although this module never
// emits surrogates itself (see String encode below).
func (d *Decoder) String() (string, error) {
	n, err := d.Byte()
	if err != nil {
		return "", err
	}
	if n == 0 {
		return "", nil
	}

	payloadLen := int(n) * wire.SizeofChar
	if err := d.checkBounds(payloadLen); err != nil {
		return "", err
	}

	units := make([]uint16, n)
	for i := 0; i < int(n); i++ {
		off := d.off + i*wire.SizeofChar
		units[i] = uint16(d.src[off]) | uint16(d.src[off+1])<<8
	}
	d.off += payloadLen

	return string(utf16.Decode(units)), nil
}

// String encodes s as UMB wire-format string text: BMP-only, little-endian
// 16-bit code units with a one-byte length prefix counting code units.
//
// Returns wire.ErrNonBMPRune if s contains a rune outside the Basic
// Multilingual Plane (spec.md Non-goals: "supporting characters outside the
// BMP" is explicitly out of scope), and wire.ErrOversizeDynamic if s has
// more than wire.MaxDynamicSize code units.
func (e *Encoder) String(s string) error {
	for _, r := range s {
		if r > 0xFFFF {
			return wire.ErrNonBMPRune
		}
	}

	units := utf16.Encode([]rune(s))
	if len(units) > wire.MaxDynamicSize {
		return wire.ErrOversizeDynamic
	}

	e.Byte(byte(len(units)))
	for _, u := range units {
		e.Byte(byte(u))
		e.Byte(byte(u >> 8))
	}
	return nil
}

// ValidBMPString reports whether s encodes entirely within the Basic
// Multilingual Plane and round-trips through UTF-16 without error. It is
// stricter than Encoder.String, which also accepts invalid UTF-8 (encoding
// each bad byte as U+FFFD); this rejects it.
func ValidBMPString(s string) bool {
	if !utf8.ValidString(s) {
		return false
	}
	for _, r := range s {
		if r > 0xFFFF {
			return false
		}
	}
	return true
}
