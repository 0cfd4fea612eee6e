package enumdecode

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/finchtower/objprop/bitio"
	"github.com/finchtower/objprop/errs"
	"github.com/finchtower/objprop/format"
	"github.com/finchtower/objprop/registry"
)

func TestDecodeIntegerEnumVariant(t *testing.T) {
	prop := registry.Property{
		Type:  "mobFaction",
		Flags: format.ENUM,
		EnumOptions: []format.EnumOption{
			{Name: "Neutral", Value: format.Int(0)},
			{Name: "Hostile", Value: format.Int(1)},
		},
	}
	r := bitio.New([]byte{1, 0, 0, 0})

	v, err := Decode(r, 0, prop, false)
	require.NoError(t, err)
	s, ok := v.AsEnum()
	require.True(t, ok)
	require.Equal(t, "mobFaction::Hostile", s)
}

func TestDecodeIntegerEnumUnknownVariant(t *testing.T) {
	prop := registry.Property{
		Type:  "mobFaction",
		Flags: format.ENUM,
		EnumOptions: []format.EnumOption{
			{Name: "Neutral", Value: format.Int(0)},
		},
	}
	r := bitio.New([]byte{7, 0, 0, 0})

	_, err := Decode(r, 0, prop, false)
	require.ErrorIs(t, err, errs.ErrUnknownEnumVariant)
}

func TestDecodeIntegerBitflagUsesPerBitLookup(t *testing.T) {
	// Redesigned behavior: each set bit b is looked up against 1<<b, not
	// against the whole integer value.
	prop := registry.Property{
		Type:  "mobAbilities",
		Flags: format.BITS,
		EnumOptions: []format.EnumOption{
			{Name: "Fly", Value: format.Int(1 << 0)},
			{Name: "Swim", Value: format.Int(1 << 1)},
			{Name: "Burrow", Value: format.Int(1 << 2)},
		},
	}
	// value = 0b101 = Fly | Burrow
	r := bitio.New([]byte{0b0000_0101, 0, 0, 0})

	v, err := Decode(r, 0, prop, false)
	require.NoError(t, err)
	s, ok := v.AsEnum()
	require.True(t, ok)
	require.Equal(t, "Fly | Burrow", s)
}

func TestDecodeHumanReadableEnumPrefixesType(t *testing.T) {
	prop := registry.Property{Type: "mobFaction", Flags: format.ENUM}
	// compact length prefix: is_large=0, 7 bits = 7 (byte 0x0E); then "Hostile".
	data := append([]byte{0x0E}, []byte("Hostile")...)
	r := bitio.New(data)

	v, err := Decode(r, format.HUMAN_READABLE_ENUMS, prop, true)
	require.NoError(t, err)
	s, ok := v.AsEnum()
	require.True(t, ok)
	require.Equal(t, "mobFaction::Hostile", s)
}

func TestDecodeHumanReadableBitflagLeavesAsIs(t *testing.T) {
	prop := registry.Property{Type: "mobAbilities", Flags: format.BITS}
	data := append([]byte{0x0E}, []byte("Fly | Swim")[:7]...)
	r := bitio.New(data)

	v, err := Decode(r, format.HUMAN_READABLE_ENUMS, prop, true)
	require.NoError(t, err)
	s, ok := v.AsEnum()
	require.True(t, ok)
	require.Equal(t, "Fly | S", s)
}
