// Package trace captures a sequence of byte records - typically the packets
// a harness run fed to or received from a transport.Receiver - to a file for
// later replay, optionally compressed.
//
// A Writer appends length-prefixed, optionally compressed records to an
// io.Writer; a Reader walks them back off in order. The codec is pluggable
// the same way compression is pluggable for an encoded payload elsewhere in
// this lineage: pick the algorithm that fits the corpus.
//
//	w := trace.NewWriter(f, trace.NewZstdCodec())
//	for _, pkt := range captured {
//	    if err := w.WriteRecord(pkt); err != nil { ... }
//	}
//
//	r := trace.NewReader(f, trace.NewZstdCodec())
//	for {
//	    pkt, err := r.ReadRecord()
//	    if errors.Is(err, io.EOF) { break }
//	    ...
//	}
//
// The wire format itself (package wire/codec/transport) never uses this
// package: UMB packets must stay byte-exact for the peer that produced or
// consumes them, which has no decompression capability of its own. trace
// exists purely for test-fixture corpora living on this host's disk.
package trace
