//go:build nobuild

package compress

import (
	"fmt"

	"github.com/valyala/gozstd"

	"github.com/finchtower/objprop/errs"
)

// Compress compresses data using cgo-backed Zstandard.
func (c ZstdCodec) Compress(data []byte) ([]byte, error) {
	return gozstd.CompressLevel(nil, data, 3), nil
}

// Decompress decompresses cgo-backed Zstandard data.
func (c ZstdCodec) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	out, err := gozstd.Decompress(nil, data)
	if err != nil {
		return nil, fmt.Errorf("zstd decompression: %w: %v", errs.ErrCodecFailure, err)
	}

	return out, nil
}
