package trace

import (
	"encoding/binary"
	"fmt"
	"io"
)

// recordHeaderSize is the length prefix written before every compressed
// record: a little-endian uint32 byte count.
const recordHeaderSize = 4

// Writer appends length-prefixed, codec-compressed records to an
// underlying io.Writer. It is not safe for concurrent use.
type Writer struct {
	w     io.Writer
	codec Codec
}

// NewWriter returns a Writer that compresses each record with codec before
// writing it to w.
func NewWriter(w io.Writer, codec Codec) *Writer {
	return &Writer{w: w, codec: codec}
}

// WriteRecord compresses data and appends it as one length-prefixed record.
func (wr *Writer) WriteRecord(data []byte) error {
	compressed, err := wr.codec.Compress(data)
	if err != nil {
		return fmt.Errorf("trace: compress record: %w", err)
	}

	var lenBuf [recordHeaderSize]byte
	binary.LittleEndian.PutUint32(lenBuf[:], uint32(len(compressed)))

	if _, err := wr.w.Write(lenBuf[:]); err != nil {
		return fmt.Errorf("trace: write record header: %w", err)
	}
	if len(compressed) > 0 {
		if _, err := wr.w.Write(compressed); err != nil {
			return fmt.Errorf("trace: write record body: %w", err)
		}
	}

	return nil
}
