package codec

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/wireumb/umb/wire"
)

func TestByteRoundTrip(t *testing.T) {
	enc := NewEncoder()
	enc.Byte(0x42)
	out := enc.Finish()
	require.Equal(t, []byte{0x42}, out)

	dec := NewDecoder(out)
	v, err := dec.Byte()
	require.NoError(t, err)
	require.Equal(t, byte(0x42), v)
	require.True(t, dec.Done())
}

func TestBoolStandaloneRoundTrip(t *testing.T) {
	for _, v := range []bool{true, false} {
		enc := NewEncoder()
		enc.Bool(v)
		out := enc.Finish()
		require.Len(t, out, 1)

		dec := NewDecoder(out)
		got, err := dec.Bool()
		require.NoError(t, err)
		require.Equal(t, v, got)
	}
}

func TestUint16RoundTrip(t *testing.T) {
	enc := NewEncoder()
	enc.Uint16(0xBEEF)
	out := enc.Finish()
	require.Equal(t, []byte{0xEF, 0xBE}, out)

	dec := NewDecoder(out)
	v, err := dec.Uint16()
	require.NoError(t, err)
	require.Equal(t, uint16(0xBEEF), v)
}

func TestInt32RoundTripNegative(t *testing.T) {
	enc := NewEncoder()
	enc.Int32(-1)
	out := enc.Finish()
	require.Equal(t, []byte{0xFF, 0xFF, 0xFF, 0xFF}, out)

	dec := NewDecoder(out)
	v, err := dec.Int32()
	require.NoError(t, err)
	require.Equal(t, int32(-1), v)
}

func TestBytesRoundTrip(t *testing.T) {
	payload := []byte{0x00, 0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08, 0x08, 0x0A, 0x00, 0x00, 0x00, 0x05, 0x37, 0xFF}
	enc := NewEncoder()
	require.NoError(t, enc.Bytes(payload))
	out := enc.Finish()
	require.Equal(t, byte(len(payload)), out[0])
	require.Len(t, out, 1+len(payload))

	dec := NewDecoder(out)
	got, err := dec.Bytes()
	require.NoError(t, err)
	require.Equal(t, payload, got)
}

func TestBytesOversize(t *testing.T) {
	enc := NewEncoder()
	err := enc.Bytes(make([]byte, 256))
	require.ErrorIs(t, err, wire.ErrOversizeDynamic)
	enc.Release()
}

// scenario 2 of spec.md §8: string field "(asd)".
func TestStringRoundTripSpecScenario(t *testing.T) {
	enc := NewEncoder()
	require.NoError(t, enc.String("(asd)"))
	out := enc.Finish()

	want := []byte{0x05, 0x28, 0x00, 0x61, 0x00, 0x73, 0x00, 0x64, 0x00, 0x29, 0x00}
	require.Equal(t, want, out)

	dec := NewDecoder(out)
	got, err := dec.String()
	require.NoError(t, err)
	require.Equal(t, "(asd)", got)
}

func TestStringEmpty(t *testing.T) {
	enc := NewEncoder()
	require.NoError(t, enc.String(""))
	out := enc.Finish()
	require.Equal(t, []byte{0x00}, out)

	dec := NewDecoder(out)
	got, err := dec.String()
	require.NoError(t, err)
	require.Equal(t, "", got)
}

func TestStringRejectsNonBMP(t *testing.T) {
	enc := NewEncoder()
	err := enc.String("\U0001F600") // outside BMP
	require.ErrorIs(t, err, wire.ErrNonBMPRune)
	enc.Release()
}

func TestFloatRoundTrip(t *testing.T) {
	values := []float32{0.300000011920928955078125, 0, -1, 3.1415927, float32(math.Inf(1)), float32(math.Inf(-1))}
	for _, v := range values {
		enc := NewEncoder()
		require.NoError(t, enc.Float(v, ""))
		out := enc.Finish()

		dec := NewDecoder(out)
		got, text, err := dec.Float()
		require.NoError(t, err)
		require.Equal(t, v, got)
		require.NotEmpty(t, text)
	}
}

func TestFloatNaNRoundTrip(t *testing.T) {
	enc := NewEncoder()
	require.NoError(t, enc.Float(float32(math.NaN()), ""))
	out := enc.Finish()

	dec := NewDecoder(out)
	got, _, err := dec.Float()
	require.NoError(t, err)
	require.True(t, math.IsNaN(float64(got)))
}

// Re-encoding a decoded float from its cached text must produce byte-identical output.
func TestFloatCacheFidelity(t *testing.T) {
	enc := NewEncoder()
	require.NoError(t, enc.Float(0.3, ""))
	first := enc.Finish()

	dec := NewDecoder(first)
	v, text, err := dec.Float()
	require.NoError(t, err)

	enc2 := NewEncoder()
	require.NoError(t, enc2.Float(v, text))
	second := enc2.Finish()

	require.Equal(t, first, second)
}

func TestPackedBoolsRoundTrip(t *testing.T) {
	bits := []bool{true, false, true, true, false, false, true, false, true}
	enc := NewEncoder()
	enc.PackedBools(bits)
	out := enc.Finish()
	require.Len(t, out, 2) // ceil(9/8)

	dec := NewDecoder(out)
	got, err := dec.PackedBools(len(bits))
	require.NoError(t, err)
	require.Equal(t, bits, got)
}

func TestShortBufferSafety(t *testing.T) {
	enc := NewEncoder()
	require.NoError(t, enc.String("hi"))
	full := enc.Finish()

	for k := 0; k < len(full); k++ {
		dec := NewDecoder(full[:k])
		_, err := dec.String()
		require.Error(t, err)
	}
}
