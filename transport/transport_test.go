package transport

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/wireumb/umb/wire"
)

// logicalMessage builds the header+fields byte sequence runtime.Instance.Bytes
// would produce for the given field payload and type: a sole-part header
// whose size is the whole message, followed by the payload.
func logicalMessage(payload []byte, msgType uint16) []byte {
	msg := make([]byte, wire.HeaderSize+len(payload))
	h := wire.PacketHeader{Size: byte(wire.HeaderSize + len(payload)), Part: wire.PartSolePart, Type: msgType}
	h.Put(msg)
	copy(msg[wire.HeaderSize:], payload)
	return msg
}

func TestFrameSinglePacket(t *testing.T) {
	payload := []byte{1, 2, 3, 4}
	msg := logicalMessage(payload, 7)
	pkts := Frame(msg)
	require.Len(t, pkts, 1)

	hdr, err := wire.ParsePacketHeader(pkts[0])
	require.NoError(t, err)
	require.Equal(t, uint8(wire.HeaderSize+len(payload)), hdr.Size)
	require.Equal(t, uint8(wire.PartSolePart), hdr.Part)
	require.Equal(t, uint16(7), hdr.Type)
	require.Equal(t, msg, pkts[0])
}

func TestFrameMultipart(t *testing.T) {
	payload := make([]byte, 600)
	for i := range payload {
		payload[i] = byte(i)
	}
	msg := logicalMessage(payload, 3)
	pkts := Frame(msg)
	require.Len(t, pkts, 3) // 251 + 251 + 98

	for i, pkt := range pkts {
		hdr, err := wire.ParsePacketHeader(pkt)
		require.NoError(t, err)
		require.Equal(t, uint16(3), hdr.Type)
		if i < len(pkts)-1 {
			require.Equal(t, uint8(wire.PacketSize), hdr.Size)
			require.Equal(t, uint8(i), hdr.Part)
		} else {
			require.Equal(t, uint8(wire.PartFinal), hdr.Part)
		}
	}
}

func TestReceiverRoundTripSinglePart(t *testing.T) {
	payload := []byte("hello")
	msg := logicalMessage(payload, 42)
	pkts := Frame(msg)

	r := NewReceiver()
	for _, p := range pkts {
		state, err := r.Feed(p)
		require.NoError(t, err)
		_ = state
	}
	require.Equal(t, StateDone, r.State())

	got, typ, ok := r.Message()
	require.True(t, ok)
	require.Equal(t, msg, got)
	require.Equal(t, uint16(42), typ)
}

func TestReceiverRoundTripMultipart(t *testing.T) {
	payload := make([]byte, 700)
	for i := range payload {
		payload[i] = byte(i % 251)
	}
	msg := logicalMessage(payload, 9)
	pkts := Frame(msg)
	require.Greater(t, len(pkts), 1)

	r := NewReceiver()
	for _, p := range pkts {
		_, err := r.Feed(p)
		require.NoError(t, err)
	}
	require.Equal(t, StateDone, r.State())

	got, typ, ok := r.Message()
	require.True(t, ok)
	require.Equal(t, payload, got[wire.HeaderSize:])
	require.Equal(t, uint16(9), typ)
}

func TestReceiverRejectsZeroSize(t *testing.T) {
	r := NewReceiver()
	_, err := r.Feed([]byte{0, 255, 1, 0})
	require.ErrorIs(t, err, wire.ErrInvalidPacketSize)
	require.Equal(t, StateError, r.State())
}

func TestReceiverRejectsUndersizeHeader(t *testing.T) {
	for _, size := range []byte{1, 2, 3} {
		r := NewReceiver()
		_, err := r.Feed([]byte{size, 255, 1, 0})
		require.ErrorIs(t, err, wire.ErrInvalidPacketSize)
		require.Equal(t, StateError, r.State())
	}
}

func TestReceiverRejectsUnexpectedInitialPart(t *testing.T) {
	r := NewReceiver()
	_, err := r.Feed([]byte{4, 5, 1, 0}) // part==5, not 0 or 255
	require.ErrorIs(t, err, wire.ErrUnexpectedPart)
}

func TestReceiverRejectsPartGap(t *testing.T) {
	payload := make([]byte, 600)
	msg := logicalMessage(payload, 1)
	pkts := Frame(msg)
	require.GreaterOrEqual(t, len(pkts), 3)

	r := NewReceiver()
	_, err := r.Feed(pkts[0])
	require.NoError(t, err)

	// forge a packet claiming part==5 when part==1 is expected next; since
	// it is neither the expected next part nor the 254 final sentinel this
	// must be rejected.
	forged := append([]byte(nil), pkts[1]...)
	forged[1] = 5
	_, err = r.Feed(forged)
	require.ErrorIs(t, err, wire.ErrUnexpectedPart)
}

// Receiving the 254 final sentinel early - skipping intermediate parts - is
// accepted by the receiving rules as written: acceptance only checks
// part == next_expected OR part == 254 and a matching type, with no
// separate check that every intermediate part was actually seen.
func TestReceiverAcceptsEarlyFinalSentinel(t *testing.T) {
	payload := make([]byte, 600)
	msg := logicalMessage(payload, 1)
	pkts := Frame(msg)
	require.GreaterOrEqual(t, len(pkts), 3)

	r := NewReceiver()
	_, err := r.Feed(pkts[0])
	require.NoError(t, err)
	_, err = r.Feed(pkts[len(pkts)-1])
	require.NoError(t, err)
	require.Equal(t, StateDone, r.State())
}

func TestReceiverRejectsTypeChangeMidMultipart(t *testing.T) {
	payload := make([]byte, 600)
	msg := logicalMessage(payload, 1)
	pkts := Frame(msg)
	require.GreaterOrEqual(t, len(pkts), 2)

	// tamper with the second packet's type field.
	tampered := append([]byte(nil), pkts[1]...)
	tampered[2] = 0xAB
	tampered[3] = 0xCD

	r := NewReceiver()
	_, err := r.Feed(pkts[0])
	require.NoError(t, err)
	_, err = r.Feed(tampered)
	require.ErrorIs(t, err, wire.ErrTypeMismatch)
}

func TestReceiverResetAllowsReuse(t *testing.T) {
	r := NewReceiver()
	msg := logicalMessage([]byte("a"), 1)
	pkts := Frame(msg)
	_, err := r.Feed(pkts[0])
	require.NoError(t, err)
	require.Equal(t, StateDone, r.State())

	r.Reset()
	require.Equal(t, StateWaitHeader, r.State())

	msg2 := logicalMessage([]byte("bb"), 2)
	pkts2 := Frame(msg2)
	_, err = r.Feed(pkts2[0])
	require.NoError(t, err)
	got, typ, ok := r.Message()
	require.True(t, ok)
	require.Equal(t, msg2, got)
	require.Equal(t, uint16(2), typ)
}

func TestReceiverMustResetAfterDone(t *testing.T) {
	r := NewReceiver()
	msg := logicalMessage([]byte("a"), 1)
	pkts := Frame(msg)
	_, err := r.Feed(pkts[0])
	require.NoError(t, err)

	_, err = r.Feed(pkts[0])
	require.ErrorIs(t, err, ErrReceiverNotReady)
}
