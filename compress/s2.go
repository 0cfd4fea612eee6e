package compress

import (
	"fmt"

	"github.com/klauspost/compress/s2"

	"github.com/finchtower/objprop/errs"
)

// S2Codec is one of the codecs registryio can pick for a registry file
// that favors decode speed over compression ratio.
type S2Codec struct{}

var _ Codec = S2Codec{}

// NewS2Codec creates a new S2 codec.
func NewS2Codec() S2Codec {
	return S2Codec{}
}

// Compress compresses data using S2.
func (c S2Codec) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	return s2.Encode(nil, data), nil
}

// Decompress decompresses S2-compressed data.
func (c S2Codec) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	out, err := s2.Decode(nil, data)
	if err != nil {
		return nil, fmt.Errorf("s2 decompression: %w: %v", errs.ErrCodecFailure, err)
	}

	return out, nil
}
