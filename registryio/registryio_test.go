package registryio

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/finchtower/objprop/compress"
	"github.com/finchtower/objprop/format"
)

const sampleJSON = `[
	{
		"hash": 1,
		"name": "mobTemplate",
		"properties": [
			{"name": "health", "hash": 42, "type": "int", "flags": 3}
		]
	}
]`

func TestSniffPlainJSON(t *testing.T) {
	require.Equal(t, format.CompressionNone, Sniff([]byte(sampleJSON)))
}

func TestSniffZlib(t *testing.T) {
	compressed, err := compress.NewZlibCodec().Compress([]byte(sampleJSON))
	require.NoError(t, err)
	require.Equal(t, format.CompressionZlib, Sniff(compressed))
}

func TestSniffLZ4(t *testing.T) {
	compressed, err := compress.NewLZ4Codec().Compress([]byte(sampleJSON))
	require.NoError(t, err)
	require.Equal(t, format.CompressionLZ4, Sniff(compressed))
}

func TestDecodeRoundTripsThroughEachCodec(t *testing.T) {
	codecs := []compress.Codec{
		compress.NewNoOpCodec(),
		compress.NewZlibCodec(),
		compress.NewLZ4Codec(),
		compress.NewS2Codec(),
	}

	for _, c := range codecs {
		compressed, err := c.Compress([]byte(sampleJSON))
		require.NoError(t, err)

		m, err := Decode(compressed)
		require.NoError(t, err)

		td, ok := m.Lookup(1)
		require.True(t, ok)
		require.Equal(t, "mobTemplate", td.Name)
		require.Len(t, td.Properties, 1)
		require.Equal(t, "health", td.Properties[0].Name)
	}
}

func TestDecodeInvalidJSONErrors(t *testing.T) {
	_, err := Decode([]byte(`{not json`))
	require.Error(t, err)
}

func TestDecodeRejectsUnmarshalableButSniffableNone(t *testing.T) {
	raw, err := json.Marshal([]int{1, 2, 3})
	require.NoError(t, err)

	_, err = Decode(raw)
	require.Error(t, err)
}
