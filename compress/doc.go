// Package compress provides the compression codecs objprop uses at its two
// compression boundaries.
//
// The deserializer's decompression stage (spec.md §4.B) decodes exactly one
// format: a WITH_COMPRESSION payload is always a zlib stream, so
// ZlibCodec is the only codec the core deserializer ever calls.
//
// registryio, the harness that loads a JSON type registry file, accepts
// any of five codecs — None, Zlib, Zstd, S2, LZ4 — since registry files
// are produced offline and may be shipped pre-compressed with whichever
// algorithm suits the distributor. CreateCodec and GetCodec select among
// them by format.CompressionType.
package compress
