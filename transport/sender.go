package transport

import "github.com/wireumb/umb/wire"

// Frame splits a logical message (runtime.Instance.Bytes's output - the
// 4-byte message header followed by field bytes) into the packets that
// carry it across the wire: the message as-is if it already fits in
// wire.PacketSize, else a run of full 255-byte packets followed by one
// final packet carrying the remainder. Every packet's type field is
// copied from msg's own header, per the §4.4 model where the framer never
// reconstructs a header the message didn't already carry.
func Frame(msg []byte) [][]byte {
	hdr, err := wire.ParsePacketHeader(msg)
	if err != nil {
		return nil
	}
	msgType := hdr.Type

	if len(msg) <= wire.PacketSize {
		pkt := make([]byte, len(msg))
		copy(pkt, msg)
		return [][]byte{pkt}
	}

	body := msg[wire.HeaderSize:]

	var packets [][]byte
	part := uint8(wire.PartFirst)

	for len(body) > wire.PayloadSize {
		chunk := body[:wire.PayloadSize]
		body = body[wire.PayloadSize:]

		pkt := make([]byte, wire.PacketSize)
		h := wire.PacketHeader{Size: wire.PacketSize, Part: part, Type: msgType}
		h.Put(pkt)
		copy(pkt[wire.HeaderSize:], chunk)
		packets = append(packets, pkt)
		part++
	}

	finalSize := wire.HeaderSize + len(body)
	pkt := make([]byte, finalSize)
	h := wire.PacketHeader{Size: uint8(finalSize), Part: wire.PartFinal, Type: msgType}
	h.Put(pkt)
	copy(pkt[wire.HeaderSize:], body)
	packets = append(packets, pkt)

	return packets
}
