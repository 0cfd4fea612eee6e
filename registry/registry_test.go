package registry

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/finchtower/objprop/errs"
	"github.com/finchtower/objprop/format"
)

func TestNewMapRejectsDuplicateProperties(t *testing.T) {
	_, err := NewMap(map[uint32]TypeDef{
		1: {
			Name: "Dup",
			Properties: []Property{
				{Name: "x", Hash: 10},
				{Name: "x", Hash: 11},
			},
		},
	})
	require.ErrorIs(t, err, errs.ErrDuplicateProperty)
}

func TestHashNameIsDeterministic(t *testing.T) {
	require.Equal(t, HashName("Velocity"), HashName("Velocity"))
	require.NotEqual(t, HashName("Velocity"), HashName("Position"))
}

func TestMapUnmarshalJSON(t *testing.T) {
	raw := []byte(`[
		{
			"hash": 100,
			"name": "mobTemplate",
			"properties": [
				{"name": "name", "hash": 1, "type": "std::string"},
				{"name": "faction", "hash": 2, "type": "EFaction", "flags": 8, "enum_options": [
					{"name": "EFaction::Neutral", "int": 0},
					{"name": "EFaction::Hostile", "int": 1}
				]}
			]
		}
	]`)

	var m Map
	require.NoError(t, json.Unmarshal(raw, &m))

	td, ok := m.Lookup(100)
	require.True(t, ok)
	require.Equal(t, "mobTemplate", td.Name)

	faction, ok := td.ByHash(2)
	require.True(t, ok)
	require.True(t, faction.Flags.Has(format.ENUM))
	require.Len(t, faction.EnumOptions, 2)
}
