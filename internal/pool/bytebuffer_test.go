package pool

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestByteBufferMustWriteAndReset(t *testing.T) {
	bb := newByteBuffer(4)
	bb.MustWrite([]byte{1, 2, 3})
	require.Equal(t, []byte{1, 2, 3}, bb.Bytes())
	require.Equal(t, 3, bb.Len())

	bb.Reset()
	require.Equal(t, 0, bb.Len())
}

func TestByteBufferGrow(t *testing.T) {
	bb := newByteBuffer(0)
	bb.Grow(10)
	require.GreaterOrEqual(t, cap(bb.B), 10)
}

func TestPacketPoolRoundTrip(t *testing.T) {
	bb := GetPacket()
	require.NotNil(t, bb)
	bb.MustWrite([]byte{0xFF})
	PutPacket(bb)

	bb2 := GetPacket()
	require.Equal(t, 0, bb2.Len())
	PutPacket(bb2)
}

func TestMessagePoolDiscardsOversizeBuffers(t *testing.T) {
	bb := Get()
	bb.Grow(MessageBufferMaxThreshold + 1)
	bb.MustWrite(make([]byte, MessageBufferMaxThreshold+1))
	Put(bb) // should be discarded, not pooled, since it exceeds the threshold
}
