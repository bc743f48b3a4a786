package transport

import (
	"github.com/wireumb/umb/internal/pool"
	"github.com/wireumb/umb/wire"
)

// Receiver reassembles packets produced by Frame back into a logical
// message, driving the state machine described in the framer's receiving
// rules. A single Receiver handles one logical message at a time: call
// Reset before feeding packets for the next one.
type Receiver struct {
	state State
	err   error

	header   wire.PacketHeader // the first packet's header, reconstructed into the logical header
	payload  *pool.ByteBuffer
	nextPart uint8
}

// NewReceiver returns a Receiver ready to accept the first packet of a new
// logical message.
func NewReceiver() *Receiver {
	return &Receiver{state: StateWaitHeader, payload: pool.Get()}
}

// State returns the receiver's current state.
func (r *Receiver) State() State { return r.state }

// Err returns the error that moved the receiver into StateError, or nil.
func (r *Receiver) Err() error { return r.err }

func (r *Receiver) fail(err error) error {
	r.state = StateError
	r.err = err
	return err
}

// Feed processes one complete packet (header and payload together).
// Packets of a single logical message must be fed strictly in arrival
// order; Feed does not buffer out-of-order packets. Returns the resulting
// state, which is StateError if pkt violated the protocol.
func (r *Receiver) Feed(pkt []byte) (State, error) {
	if r.state == StateDone || r.state == StateError {
		return r.state, ErrReceiverNotReady
	}

	hdr, err := wire.ParsePacketHeader(pkt)
	if err != nil {
		return r.state, r.fail(err)
	}
	if hdr.Size < wire.HeaderSize {
		return r.state, r.fail(wire.ErrInvalidPacketSize)
	}
	if len(pkt) < int(hdr.Size) {
		return r.state, r.fail(wire.ErrShortBuffer)
	}
	payload := pkt[wire.HeaderSize:hdr.Size]

	switch r.state {
	case StateWaitHeader:
		switch hdr.Part {
		case wire.PartSolePart:
			r.header = hdr
			r.payload.MustWrite(payload)
			r.state = StateDone
		case wire.PartFirst:
			r.header = hdr
			r.nextPart = wire.PartFirst + 1
			r.payload.MustWrite(payload)
			r.state = StateWaitPartHeader
		default:
			return r.state, r.fail(wire.ErrUnexpectedPart)
		}

	case StateWaitPartHeader:
		if hdr.Type != r.header.Type {
			return r.state, r.fail(wire.ErrTypeMismatch)
		}
		switch hdr.Part {
		case r.nextPart:
			r.payload.MustWrite(payload)
			r.nextPart++
			// remains StateWaitPartHeader, expecting the next part.
		case wire.PartFinal:
			r.payload.MustWrite(payload)
			r.state = StateDone
		default:
			return r.state, r.fail(wire.ErrUnexpectedPart)
		}

	default:
		return r.state, r.fail(wire.ErrUnexpectedPart)
	}

	return r.state, nil
}

// Message returns the reassembled logical message - the 4-byte header
// (reconstructed from the first packet, per §4.4) followed by every
// payload byte in arrival order - and its type, once State is StateDone.
// The returned slice is newly allocated and independent of the receiver's
// internal buffers. The second return is false otherwise.
func (r *Receiver) Message() ([]byte, uint16, bool) {
	if r.state != StateDone {
		return nil, 0, false
	}

	msg := make([]byte, wire.HeaderSize+r.payload.Len())
	r.header.Put(msg)
	copy(msg[wire.HeaderSize:], r.payload.Bytes())
	return msg, r.header.Type, true
}

// Reset returns the receiver to StateWaitHeader, ready for the next
// logical message, discarding any partially assembled state and returning
// the accumulation buffer to the pool.
func (r *Receiver) Reset() {
	pool.Put(r.payload)
	r.state = StateWaitHeader
	r.err = nil
	r.header = wire.PacketHeader{}
	r.payload = pool.Get()
	r.nextPart = 0
}
