package runtime

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/wireumb/umb/schema"
	"github.com/wireumb/umb/wire"
)

func compile(t *testing.T, yamlSrc string) *schema.Schema {
	t.Helper()
	doc, err := schema.LoadDocument(strings.NewReader(yamlSrc))
	require.NoError(t, err)
	s, err := schema.Compile(doc)
	require.NoError(t, err)
	return s
}

func TestEmptyMessageRoundTrip(t *testing.T) {
	s := compile(t, `
messages:
  - name: Empty
    fields: []
`)
	a, _ := s.ByName("Empty")
	inst := New(a)

	b, err := inst.Bytes()
	require.NoError(t, err)
	require.Len(t, b, wire.HeaderSize)

	inst2 := New(a)
	require.True(t, inst2.FromBytes(b))
	require.True(t, inst.Equal(inst2))
}

func TestScalarFieldsRoundTrip(t *testing.T) {
	s := compile(t, `
messages:
  - name: Ping
    fields:
      - name: seq
        type: int
      - name: kind
        type: byte
      - name: ready
        type: bool
`)
	a, _ := s.ByName("Ping")
	inst := New(a)
	require.NoError(t, inst.SetInt("seq", 42))
	require.NoError(t, inst.SetByte("kind", 7))
	require.NoError(t, inst.SetBool("ready", true))

	b, err := inst.Bytes()
	require.NoError(t, err)
	require.Equal(t, inst.Size(), len(b))

	out := New(a)
	require.True(t, out.FromBytes(b))

	seq, err := out.Int("seq")
	require.NoError(t, err)
	require.Equal(t, int32(42), seq)

	kind, err := out.Byte("kind")
	require.NoError(t, err)
	require.Equal(t, byte(7), kind)

	ready, err := out.Bool("ready")
	require.NoError(t, err)
	require.True(t, ready)

	require.True(t, inst.Equal(out))
}

func TestStringAndBytesFieldsRoundTrip(t *testing.T) {
	s := compile(t, `
messages:
  - name: Greeting
    fields:
      - name: text
        type: string
      - name: payload
        type: bytes
`)
	a, _ := s.ByName("Greeting")
	inst := New(a)
	require.NoError(t, inst.SetString("text", "(asd)"))
	require.NoError(t, inst.SetBytes("payload", []byte{1, 2, 3}))

	b, err := inst.Bytes()
	require.NoError(t, err)

	out := New(a)
	require.True(t, out.FromBytes(b))

	text, err := out.String("text")
	require.NoError(t, err)
	require.Equal(t, "(asd)", text)

	payload, err := out.BytesField("payload")
	require.NoError(t, err)
	require.Equal(t, []byte{1, 2, 3}, payload)
}

func TestFloatFieldNaNEquality(t *testing.T) {
	s := compile(t, `
messages:
  - name: Reading
    fields:
      - name: value
        type: float
`)
	a, _ := s.ByName("Reading")
	inst := New(a)
	require.NoError(t, inst.SetFloat("value", float32(math.NaN())))

	b, err := inst.Bytes()
	require.NoError(t, err)

	out := New(a)
	require.True(t, out.FromBytes(b))

	v, err := out.Float("value")
	require.NoError(t, err)
	require.True(t, math.IsNaN(float64(v)))
	require.True(t, inst.Equal(out))
}

// a,b,c:bool, d:int, e,f:bool - worked scenario from the boolpack table.
func TestBoolPackRoundTripAcrossRuns(t *testing.T) {
	s := compile(t, `
messages:
  - name: M
    fields:
      - name: a
        type: bool
      - name: b
        type: bool
      - name: c
        type: bool
      - name: d
        type: int
      - name: e
        type: bool
      - name: f
        type: bool
`)
	a, _ := s.ByName("M")
	inst := New(a)
	vals := map[string]bool{"a": true, "b": false, "c": true, "e": false, "f": true}
	for name, v := range vals {
		require.NoError(t, inst.SetBool(name, v))
	}
	require.NoError(t, inst.SetInt("d", -7))

	b, err := inst.Bytes()
	require.NoError(t, err)
	require.Equal(t, a.StaticSize, len(b))

	out := New(a)
	require.True(t, out.FromBytes(b))
	for name, v := range vals {
		got, err := out.Bool(name)
		require.NoError(t, err)
		require.Equal(t, v, got)
	}
	dv, err := out.Int("d")
	require.NoError(t, err)
	require.Equal(t, int32(-7), dv)
}

func TestGetUnknownFieldErrors(t *testing.T) {
	s := compile(t, `
messages:
  - name: M
    fields:
      - name: a
        type: int
`)
	a, _ := s.ByName("M")
	inst := New(a)
	_, err := inst.Int("nope")
	require.ErrorIs(t, err, ErrUnknownField)

	_, err = inst.String("a")
	require.ErrorIs(t, err, ErrFieldTypeMismatch)
}

func TestRegistryLookup(t *testing.T) {
	s := compile(t, `
messages:
  - name: First
    fields: []
  - name: Second
    fields: []
`)
	reg := NewRegistry(s)

	inst, ok := reg.New("First")
	require.True(t, ok)
	require.Equal(t, uint16(1), inst.TypeID())

	inst2, ok := reg.NewByTypeID(2)
	require.True(t, ok)
	require.Equal(t, "Second", inst2.Name())

	_, ok = reg.New("Missing")
	require.False(t, ok)

	require.ElementsMatch(t, []string{"First", "Second"}, reg.Names())
	require.ElementsMatch(t, []uint16{1, 2}, reg.TypeIDs())
}
