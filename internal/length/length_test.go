package length

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/finchtower/objprop/bitio"
)

func TestReadCompactPrefixSmall(t *testing.T) {
	// is_large=0, then 7 bits of value 127 (0b1111111).
	r := bitio.New([]byte{0b1111_1110})

	v, err := ReadCompactPrefix(r)
	require.NoError(t, err)
	require.Equal(t, uint64(127), v)
}

func TestReadCompactPrefixLarge(t *testing.T) {
	// is_large=1, then 31 bits of value 128.
	r := bitio.New([]byte{0b0000_0001, 0b0000_0001, 0, 0, 0})

	v, err := ReadCompactPrefix(r)
	require.NoError(t, err)
	require.Equal(t, uint64(128), v)
}

func TestReadStringLenNonCompactReadsU16AfterRealign(t *testing.T) {
	r := bitio.New([]byte{0xFF, 0x05, 0x00})

	_, err := r.ReadValueBits(3)
	require.NoError(t, err)

	n, err := ReadStringLen(r, false)
	require.NoError(t, err)
	require.Equal(t, 5, n)
}

func TestReadSequenceLenCompact(t *testing.T) {
	// is_large=0, then 7 bits of value 0.
	r := bitio.New([]byte{0x00})

	n, err := ReadSequenceLen(r, true)
	require.NoError(t, err)
	require.Equal(t, 0, n)
}
