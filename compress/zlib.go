package compress

import (
	"bytes"
	"fmt"
	"io"

	"github.com/klauspost/compress/zlib"

	"github.com/finchtower/objprop/errs"
)

// ZlibCodec is the codec the deserializer's decompression stage (spec.md
// §4.B) invokes: WITH_COMPRESSION payloads are a zlib stream, nothing else.
// Built on klauspost/compress/zlib, an API-compatible superset of the
// standard library's compress/zlib that the rest of this package's codecs
// are already drawn from.
type ZlibCodec struct{}

var _ Codec = ZlibCodec{}

// NewZlibCodec creates a new zlib codec.
func NewZlibCodec() ZlibCodec {
	return ZlibCodec{}
}

// Compress writes data as a zlib stream at the default compression level.
// Empty input yields nil, matching Decompress.
func (c ZlibCodec) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	var buf bytes.Buffer

	w := zlib.NewWriter(&buf)
	if _, err := w.Write(data); err != nil {
		return nil, fmt.Errorf("zlib compression: %w: %v", errs.ErrCodecFailure, err)
	}
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("zlib compression: %w: %v", errs.ErrCodecFailure, err)
	}

	return buf.Bytes(), nil
}

// Decompress inflates a zlib stream in full. Callers that know the
// expected decompressed size (as the deserializer's §4.B prelude does)
// should compare it against len(result) themselves and raise
// errs.ErrCompressionSize on mismatch; this codec has no opinion on sizing.
func (c ZlibCodec) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	r, err := zlib.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("zlib decompression: %w: %v", errs.ErrCodecFailure, err)
	}
	defer r.Close()

	out, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("zlib decompression: %w: %v", errs.ErrCodecFailure, err)
	}

	return out, nil
}
