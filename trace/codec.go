package trace

import "fmt"

// Kind identifies a trace compression algorithm.
type Kind uint8

const (
	// KindNone applies no compression.
	KindNone Kind = iota
	// KindZstd applies Zstandard compression.
	KindZstd
	// KindLZ4 applies LZ4 block compression.
	KindLZ4
)

func (k Kind) String() string {
	switch k {
	case KindNone:
		return "none"
	case KindZstd:
		return "zstd"
	case KindLZ4:
		return "lz4"
	default:
		return "unknown"
	}
}

// Compressor compresses one record's raw bytes for storage.
type Compressor interface {
	Compress(data []byte) ([]byte, error)
}

// Decompressor restores one record's raw bytes from its stored form.
type Decompressor interface {
	Decompress(data []byte) ([]byte, error)
}

// Codec combines Compressor and Decompressor. A Writer and the Reader that
// will later read its output must use codecs of the same Kind.
type Codec interface {
	Compressor
	Decompressor
	Kind() Kind
}

// NewCodec returns the built-in Codec for kind.
func NewCodec(kind Kind) (Codec, error) {
	switch kind {
	case KindNone:
		return NewNoOpCodec(), nil
	case KindZstd:
		return NewZstdCodec(), nil
	case KindLZ4:
		return NewLZ4Codec(), nil
	default:
		return nil, fmt.Errorf("trace: unknown codec kind %d", kind)
	}
}
