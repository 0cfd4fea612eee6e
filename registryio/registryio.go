// Package registryio loads a type registry (registry.Map) from disk,
// transparently inflating whichever of the four compress codecs the file
// was shipped with before handing the JSON payload to
// registry.Map.UnmarshalJSON.
//
// Registries are not part of the wire format objprop decodes; they are an
// external input the caller assembles once and reuses across many
// Deserialize calls (spec.md §1, §6).
package registryio

import (
	"bytes"
	"fmt"
	"os"

	"github.com/finchtower/objprop/compress"
	"github.com/finchtower/objprop/errs"
	"github.com/finchtower/objprop/format"
	"github.com/finchtower/objprop/registry"
)

var magicPrefixes = []struct {
	compression format.CompressionType
	prefix      []byte
}{
	{format.CompressionZstd, []byte{0x28, 0xb5, 0x2f, 0xfd}},
	{format.CompressionLZ4, []byte{0x04, 0x22, 0x4d, 0x18}},
	{format.CompressionZlib, []byte{0x78, 0x9c}},
	{format.CompressionZlib, []byte{0x78, 0x01}},
	{format.CompressionZlib, []byte{0x78, 0xda}},
}

// Sniff reports which compress.Codec a registry file's leading bytes
// indicate. Zstd, LZ4, and zlib each have a self-describing magic prefix;
// S2's block format does not, so it is the fallback for any payload that
// doesn't match those three and also doesn't start like JSON ('{' or '[').
func Sniff(data []byte) format.CompressionType {
	for _, m := range magicPrefixes {
		if bytes.HasPrefix(data, m.prefix) {
			return m.compression
		}
	}

	if len(data) > 0 && (data[0] == '{' || data[0] == '[') {
		return format.CompressionNone
	}

	return format.CompressionS2
}

// Load reads path, auto-detects compression from a magic-byte sniff, and
// unmarshals the inflated JSON into a registry.Map.
func Load(path string) (registry.Map, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading registry file: %w", err)
	}

	return Decode(raw)
}

// Decode is Load's in-memory counterpart, for registries already read into
// memory (embedded assets, network fetches, tests).
func Decode(raw []byte) (registry.Map, error) {
	ct := Sniff(raw)

	codec, err := compress.GetCodec(ct)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errs.ErrUnsupportedCompression, err)
	}

	payload := raw
	if ct != format.CompressionNone {
		payload, err = codec.Decompress(raw)
		if err != nil {
			return nil, fmt.Errorf("decompressing registry (%s): %w", ct, err)
		}
	}

	var m registry.Map
	if err := m.UnmarshalJSON(payload); err != nil {
		return nil, fmt.Errorf("parsing registry json: %w", err)
	}

	return m, nil
}
