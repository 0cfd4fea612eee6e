package deserializer

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/finchtower/objprop/compress"
	"github.com/finchtower/objprop/errs"
	"github.com/finchtower/objprop/format"
	"github.com/finchtower/objprop/internal/pool"
	"github.com/finchtower/objprop/registry"
)

// zlibFramed wraps plain in the [u32 expected_size][zlib stream] prelude
// decompressData expects (spec.md §4.B).
func zlibFramed(t *testing.T, plain []byte) []byte {
	t.Helper()

	compressed, err := compress.NewZlibCodec().Compress(plain)
	require.NoError(t, err)

	buf := make([]byte, 4+len(compressed))
	binary.LittleEndian.PutUint32(buf[:4], uint32(len(plain)))
	copy(buf[4:], compressed)

	return buf
}

func mustTypes(t *testing.T, defs map[uint32]registry.TypeDef) registry.Map {
	t.Helper()
	m, err := registry.NewMap(defs)
	require.NoError(t, err)

	return m
}

func TestEmptyObjectConsumesFourBytes(t *testing.T) {
	types := mustTypes(t, nil)
	opts, err := NewOptions()
	require.NoError(t, err)

	d := New(opts, types)
	require.NoError(t, d.Feed([]byte{0, 0, 0, 0}, pool.NewScratchBuffer(0)))

	v, err := d.Deserialize()
	require.NoError(t, err)
	require.Equal(t, 0, int(v.Kind()))
	require.Equal(t, 0, d.reader.Len())
}

func TestExhaustiveWalkOnePropertySucceeds(t *testing.T) {
	// Property hash 1, type "int" (4 bytes payload), property_size = 4(size)+4(hash)+4(payload) = 12.
	types := mustTypes(t, map[uint32]registry.TypeDef{
		1: {
			Name: "mobTemplate",
			Properties: []registry.Property{
				{Name: "health", Hash: 42, Type: "int", Flags: format.TRANSMIT},
			},
		},
	})
	opts, err := NewOptions()
	require.NoError(t, err)

	d := New(opts, types)

	data := []byte{
		1, 0, 0, 0, // identity hash
		12, 0, 0, 0, // object_size
		12, 0, 0, 0, // property_size
		42, 0, 0, 0, // property hash
		100, 0, 0, 0, // int payload 100
	}
	require.NoError(t, d.Feed(data, pool.NewScratchBuffer(0)))

	v, err := d.Deserialize()
	require.NoError(t, err)
	require.Equal(t, "mobTemplate", v.ObjectName())

	health, ok := v.Get("health")
	require.True(t, ok)
	hv, ok := health.AsSigned()
	require.True(t, ok)
	require.Equal(t, int64(100), hv)
}

func TestExhaustiveWalkWrongPropertySizeFails(t *testing.T) {
	types := mustTypes(t, map[uint32]registry.TypeDef{
		1: {
			Name: "mobTemplate",
			Properties: []registry.Property{
				{Name: "health", Hash: 42, Type: "int", Flags: format.TRANSMIT},
			},
		},
	})
	opts, err := NewOptions()
	require.NoError(t, err)

	d := New(opts, types)

	data := []byte{
		1, 0, 0, 0,
		12, 0, 0, 0,
		11, 0, 0, 0, // wrong property_size
		42, 0, 0, 0,
		100, 0, 0, 0,
	}
	require.NoError(t, d.Feed(data, pool.NewScratchBuffer(0)))

	_, err = d.Deserialize()
	require.ErrorIs(t, err, errs.ErrPropertySize)
}

func TestDeltaEncodedAbsentPropertyYieldsEmpty(t *testing.T) {
	types := mustTypes(t, map[uint32]registry.TypeDef{
		1: {
			Name: "mobTemplate",
			Properties: []registry.Property{
				{Name: "buff", Hash: 7, Type: "int", Flags: format.TRANSMIT | format.DELTA_ENCODE},
			},
		},
	})
	opts, err := NewOptions()
	require.NoError(t, err)

	d := New(opts, types)

	// property_size = 4(size)+4(hash)+1 bit (rounds up to 1 byte) = 9.
	data := []byte{
		1, 0, 0, 0,
		9, 0, 0, 0,
		9, 0, 0, 0,
		7, 0, 0, 0,
		0, // presence bit clear
	}
	require.NoError(t, d.Feed(data, pool.NewScratchBuffer(0)))

	v, err := d.Deserialize()
	require.NoError(t, err)

	buff, ok := v.Get("buff")
	require.True(t, ok)
	require.Equal(t, 0, int(buff.Kind()))
}

func TestDeltaEncodedAbsentPropertyForbiddenFails(t *testing.T) {
	types := mustTypes(t, map[uint32]registry.TypeDef{
		1: {
			Name: "mobTemplate",
			Properties: []registry.Property{
				{Name: "buff", Hash: 7, Type: "int", Flags: format.TRANSMIT | format.DELTA_ENCODE},
			},
		},
	})
	opts, err := NewOptions(WithFlags(format.FORBID_DELTA_ENCODE))
	require.NoError(t, err)

	d := New(opts, types)

	data := []byte{
		1, 0, 0, 0,
		9, 0, 0, 0,
		9, 0, 0, 0,
		7, 0, 0, 0,
		0,
	}
	require.NoError(t, d.Feed(data, pool.NewScratchBuffer(0)))

	_, err = d.Deserialize()
	require.ErrorIs(t, err, errs.ErrMissingDelta)
}

func TestShallowModeSkipsDeprecatedAndUnmaskedProperties(t *testing.T) {
	fullMask := format.TRANSMIT | format.PRIVILEGED_TRANSMIT
	types := mustTypes(t, map[uint32]registry.TypeDef{
		1: {
			Name: "mobTemplate",
			Properties: []registry.Property{
				{Name: "health", Hash: 1, Type: "int", Flags: fullMask},
				{Name: "oldHealth", Hash: 2, Type: "int", Flags: fullMask | format.DEPRECATED},
				{Name: "secret", Hash: 3, Type: "int", Flags: format.TRANSMIT},
			},
		},
	})
	opts, err := NewOptions(WithShallow(true))
	require.NoError(t, err)

	d := New(opts, types)

	data := []byte{
		1, 0, 0, 0,
		100, 0, 0, 0, // only "health" is walked in shallow mode
	}
	require.NoError(t, d.Feed(data, pool.NewScratchBuffer(0)))

	v, err := d.Deserialize()
	require.NoError(t, err)
	require.Equal(t, 1, v.Len())

	_, ok := v.Get("oldHealth")
	require.False(t, ok)
	_, ok = v.Get("secret")
	require.False(t, ok)
}

func TestFeedManualCompressionInflatesZlibPayload(t *testing.T) {
	types := mustTypes(t, nil)
	opts, err := NewOptions(WithManualCompression(true))
	require.NoError(t, err)

	d := New(opts, types)

	data := zlibFramed(t, []byte{0, 0, 0, 0})
	require.NoError(t, d.Feed(data, pool.NewScratchBuffer(0)))

	v, err := d.Deserialize()
	require.NoError(t, err)
	require.Equal(t, 0, int(v.Kind()))
}

func TestFeedManualCompressionSizeMismatchErrors(t *testing.T) {
	types := mustTypes(t, nil)
	opts, err := NewOptions(WithManualCompression(true))
	require.NoError(t, err)

	d := New(opts, types)

	data := zlibFramed(t, []byte{0, 0, 0, 0})
	// Lie about the decompressed size so decompressData's length check fails.
	binary.LittleEndian.PutUint32(data[:4], 5)

	err = d.Feed(data, pool.NewScratchBuffer(0))
	require.ErrorIs(t, err, errs.ErrCompressionSize)
}

func TestFeedStatefulFlagsConsumesLeadingWord(t *testing.T) {
	types := mustTypes(t, map[uint32]registry.TypeDef{
		1: {Name: "mobTemplate"},
	})
	opts, err := NewOptions(WithFlags(format.STATEFUL_FLAGS), WithShallow(true))
	require.NoError(t, err)

	d := New(opts, types)

	// Leading u32 flags word (0: no flags in effect once parsed), then the
	// identity hash for the shallow, property-less walk that follows.
	data := []byte{
		0, 0, 0, 0, // stateful flags word
		1, 0, 0, 0, // identity hash
	}
	require.NoError(t, d.Feed(data, pool.NewScratchBuffer(0)))

	v, err := d.Deserialize()
	require.NoError(t, err)
	require.Equal(t, "mobTemplate", v.ObjectName())
	require.Equal(t, format.SerializerFlags(0), d.opts.Flags)
}

func TestFeedWithCompressionZeroMarkerSkipsDecompression(t *testing.T) {
	types := mustTypes(t, nil)
	opts, err := NewOptions(WithFlags(format.WITH_COMPRESSION))
	require.NoError(t, err)

	d := New(opts, types)

	data := []byte{
		0,          // marker byte: uncompressed
		0, 0, 0, 0, // identity hash, read straight from the raw buffer
	}
	require.NoError(t, d.Feed(data, pool.NewScratchBuffer(0)))

	v, err := d.Deserialize()
	require.NoError(t, err)
	require.Equal(t, 0, int(v.Kind()))
}

func TestFeedWithCompressionNonzeroMarkerInflatesPayload(t *testing.T) {
	types := mustTypes(t, nil)
	opts, err := NewOptions(WithFlags(format.WITH_COMPRESSION))
	require.NoError(t, err)

	d := New(opts, types)

	data := append([]byte{1}, zlibFramed(t, []byte{0, 0, 0, 0})...)
	require.NoError(t, d.Feed(data, pool.NewScratchBuffer(0)))

	v, err := d.Deserialize()
	require.NoError(t, err)
	require.Equal(t, 0, int(v.Kind()))
}

func TestRecursionLimitExhausted(t *testing.T) {
	fullMask := format.TRANSMIT | format.PRIVILEGED_TRANSMIT
	types := mustTypes(t, map[uint32]registry.TypeDef{
		1: {
			Name: "node",
			Properties: []registry.Property{
				{Name: "child", Hash: 1, Type: "class node", Flags: fullMask},
			},
		},
	})
	opts, err := NewOptions(WithRecursionLimit(2), WithShallow(true))
	require.NoError(t, err)

	d := New(opts, types)

	// Each nested object is an identity hash of 1 with no size framing
	// (shallow mode); repeat enough to blow a recursion limit of 2.
	data := make([]byte, 0, 4*8)
	for range 8 {
		data = append(data, 1, 0, 0, 0)
	}
	require.NoError(t, d.Feed(data, pool.NewScratchBuffer(0)))

	_, err = d.Deserialize()
	require.ErrorIs(t, err, errs.ErrRecursionLimit)
}
