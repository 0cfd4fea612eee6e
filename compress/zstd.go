package compress

// ZstdCodec is one of the codecs registryio can pick for a registry file;
// it gives the best compression ratio of the four at the cost of speed.
// Its Compress/Decompress bodies live in zstd_cgo.go and zstd_pure.go,
// split the same way the teacher splits a cgo-backed implementation from
// a pure-Go fallback.
type ZstdCodec struct{}

var _ Codec = ZstdCodec{}

// NewZstdCodec creates a new Zstd codec with default settings.
func NewZstdCodec() ZstdCodec {
	return ZstdCodec{}
}
