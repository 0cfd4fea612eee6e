package format

// CompressionType identifies the algorithm a compressed payload was written
// with. The deserializer's decompression stage (spec.md §4.B) only ever
// produces CompressionZlib, matching WITH_COMPRESSION's zlib prelude;
// CompressionS2, CompressionLZ4 and CompressionZstd exist so registryio can
// load type registry files shipped pre-compressed with a faster algorithm.
type CompressionType uint8

const (
	CompressionNone CompressionType = 0x1
	CompressionZlib CompressionType = 0x2
	CompressionZstd CompressionType = 0x3
	CompressionS2   CompressionType = 0x4
	CompressionLZ4  CompressionType = 0x5
)

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionZlib:
		return "Zlib"
	case CompressionZstd:
		return "Zstd"
	case CompressionS2:
		return "S2"
	case CompressionLZ4:
		return "LZ4"
	default:
		return "Unknown"
	}
}
