package trace

// NoOpCodec stores records uncompressed. Useful for debugging a trace file
// by hand, or when the corpus is already small enough that compression
// overhead isn't worth paying.
type NoOpCodec struct{}

var _ Codec = NoOpCodec{}

// NewNoOpCodec returns a codec that passes records through unchanged.
func NewNoOpCodec() NoOpCodec { return NoOpCodec{} }

func (NoOpCodec) Kind() Kind { return KindNone }

func (NoOpCodec) Compress(data []byte) ([]byte, error) { return data, nil }

func (NoOpCodec) Decompress(data []byte) ([]byte, error) { return data, nil }
