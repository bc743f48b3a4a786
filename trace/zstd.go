package trace

// ZstdCodec compresses trace records with Zstandard: the best ratio of the
// three, at higher CPU cost than LZ4. Prefer this for a corpus that will sit
// in cold storage (committed fixtures, CI artifact caches) rather than one
// replayed in a tight loop.
type ZstdCodec struct{}

var _ Codec = ZstdCodec{}

// NewZstdCodec returns a Zstd trace codec. Compress/Decompress are defined
// in zstd_cgo.go or zstd_pure.go depending on build tags, mirroring the
// cgo/pure split used for the wire-adjacent compression codecs.
func NewZstdCodec() ZstdCodec { return ZstdCodec{} }

func (ZstdCodec) Kind() Kind { return KindZstd }
