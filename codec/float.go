package codec

import (
	"strconv"

	"github.com/wireumb/umb/wire"
)

// maxFloat32Digits10 mirrors std::numeric_limits<float>::max_digits10 (9),
// the precision the original implementation uses when formatting a float32
// as scientific-notation decimal text to guarantee round-trip fidelity
// (see umb/fmt.hpp in the retrieval pack's original_source).
const maxFloat32Digits10 = 9

// FormatFloat renders v as the ASCII scientific-notation decimal text UMB
// puts on the wire for float fields. strconv's 'e' format with -1 precision
// already produces the shortest string that round-trips exactly for a
// float32 (Go's shortest-round-trip formatter), which is at least as tight
// as the original's fixed max_digits10 precision and never loses fidelity.
func FormatFloat(v float32) string {
	return strconv.FormatFloat(float64(v), 'e', -1, 32)
}

// ParseFloat parses UMB wire-format float text back into a float32.
// Returns wire.ErrFloatText if text does not parse.
func ParseFloat(text string) (float32, error) {
	f, err := strconv.ParseFloat(text, 32)
	if err != nil {
		return 0, wire.ErrFloatText
	}
	return float32(f), nil
}

// Float decodes a float field: a one-byte length n followed by n ASCII
// bytes of decimal text (spec.md §4.1). Returns the decoded value and the
// exact text that was on the wire, so the caller can cache it for
// byte-for-byte re-encode fidelity (a float's text form is not unique).
func (d *Decoder) Float() (float32, string, error) {
	n, err := d.Byte()
	if err != nil {
		return 0, "", err
	}
	if n == 0 {
		return 0, "", nil
	}
	if err := d.checkBounds(int(n)); err != nil {
		return 0, "", err
	}
	text := string(d.src[d.off : d.off+int(n)])
	d.off += int(n)

	f, err := ParseFloat(text)
	if err != nil {
		return 0, "", err
	}
	return f, text, nil
}

// Float encodes a float field. If cachedText is non-empty it is written
// verbatim (reproducing the exact bytes the value was decoded from);
// otherwise text is regenerated deterministically via FormatFloat.
// Returns wire.ErrOversizeDynamic if the text exceeds wire.MaxDynamicSize.
func (e *Encoder) Float(v float32, cachedText string) error {
	text := cachedText
	if text == "" {
		text = FormatFloat(v)
	}
	if len(text) > wire.MaxDynamicSize {
		return wire.ErrOversizeDynamic
	}
	e.Byte(byte(len(text)))
	if len(text) > 0 {
		e.buf.MustWrite([]byte(text))
	}
	return nil
}
