//go:build cgo

package trace

import "github.com/valyala/gozstd"

// Compress uses gozstd's cgo binding, which edges out the pure-Go decoder on
// throughput when cgo is available. Only trace opts into this build-tag
// split; codec/transport never import this package, so the core module
// stays buildable without cgo.
func (ZstdCodec) Compress(data []byte) ([]byte, error) {
	return gozstd.CompressLevel(nil, data, 3), nil
}

func (ZstdCodec) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	return gozstd.Decompress(nil, data)
}
