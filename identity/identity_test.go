package identity

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/finchtower/objprop/bitio"
	"github.com/finchtower/objprop/errs"
	"github.com/finchtower/objprop/registry"
)

func TestDefaultIdentifyNoObject(t *testing.T) {
	r := bitio.New([]byte{0, 0, 0, 0})

	def, ok, err := Default{}.Identify(r, registry.Map{})
	require.NoError(t, err)
	require.False(t, ok)
	require.Equal(t, registry.TypeDef{}, def)
}

func TestDefaultIdentifyUnknownHash(t *testing.T) {
	r := bitio.New([]byte{1, 0, 0, 0})

	_, _, err := Default{}.Identify(r, registry.Map{})
	require.ErrorIs(t, err, errs.ErrUnknownType)
}

func TestDefaultIdentifyKnownHash(t *testing.T) {
	types := registry.Map{
		1: {Name: "mobTemplate"},
	}
	r := bitio.New([]byte{1, 0, 0, 0})

	def, ok, err := Default{}.Identify(r, types)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "mobTemplate", def.Name)
}
