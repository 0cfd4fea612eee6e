package compress

import (
	"errors"
	"fmt"
	"sync"

	"github.com/pierrec/lz4/v4"

	"github.com/finchtower/objprop/errs"
)

// lz4CompressorPool pools lz4.Compressor instances; they carry an internal
// match-finding table that's worth reusing across registry loads.
var lz4CompressorPool = sync.Pool{
	New: func() any {
		return &lz4.Compressor{}
	},
}

// LZ4Codec is one of the codecs registryio can pick for a registry file;
// it favors very fast decompression over compression ratio.
type LZ4Codec struct{}

var _ Codec = LZ4Codec{}

// NewLZ4Codec creates a new LZ4 codec.
func NewLZ4Codec() LZ4Codec {
	return LZ4Codec{}
}

// Compress compresses data using an LZ4 block.
func (c LZ4Codec) Compress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	dstSize := lz4.CompressBlockBound(len(data))
	dst := make([]byte, dstSize)

	lc, _ := lz4CompressorPool.Get().(*lz4.Compressor)
	defer lz4CompressorPool.Put(lc)

	n, err := lc.CompressBlock(data, dst)
	if err != nil {
		return nil, fmt.Errorf("lz4 compression: %w: %v", errs.ErrCodecFailure, err)
	}

	return dst[:n], nil
}

// Decompress decompresses an LZ4 block. Since an LZ4 block carries no
// size header, this grows its destination buffer adaptively: start at 4x
// the compressed size and double on a short-buffer error, up to a 128MB
// safety limit (a registry file has no legitimate reason to exceed that).
func (c LZ4Codec) Decompress(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, nil
	}

	bufSize := len(data) * 4
	const maxSize = 128 * 1024 * 1024

	for bufSize <= maxSize {
		buf := make([]byte, bufSize)
		n, err := lz4.UncompressBlock(data, buf)
		if err != nil {
			if errors.Is(err, lz4.ErrInvalidSourceShortBuffer) && bufSize < maxSize {
				bufSize *= 2
				continue
			}

			return nil, fmt.Errorf("lz4 decompression: %w: %v", errs.ErrCodecFailure, err)
		}

		return buf[:n], nil
	}

	return nil, fmt.Errorf("lz4 decompression: %w: %v", errs.ErrCodecFailure, lz4.ErrInvalidSourceShortBuffer)
}
