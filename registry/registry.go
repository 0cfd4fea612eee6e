// Package registry defines the type-registry surface the deserializer
// consumes but does not own (spec.md §1, §6), plus a minimal in-memory
// implementation for tests, CLI tooling, and the registryio loader.
package registry

import (
	"github.com/finchtower/objprop/errs"
	"github.com/finchtower/objprop/format"
)

// Property describes one schema member of a TypeDef, as spec.md §3
// defines it.
type Property struct {
	Name        string
	Hash        uint32
	Type        string
	Flags       format.PropertyFlags
	Dynamic     bool
	EnumOptions []format.EnumOption
}

// TypeDef is one type's schema: a name and its ordered properties.
type TypeDef struct {
	Name       string
	Properties []Property
}

// ByHash returns the property with the given hash, if any.
func (t TypeDef) ByHash(hash uint32) (Property, bool) {
	for _, p := range t.Properties {
		if p.Hash == hash {
			return p, true
		}
	}

	return Property{}, false
}

// TypeList is the registry surface the deserializer consumes: hash lookup
// only. Construction and storage are an external collaborator's concern
// (spec.md §1); Map below is one concrete implementation, not the only
// one a caller may supply.
type TypeList interface {
	Lookup(hash uint32) (TypeDef, bool)
}

// Map is a simple in-memory TypeList backed by a hash-keyed map.
type Map map[uint32]TypeDef

var _ TypeList = Map(nil)

// Lookup implements TypeList.
func (m Map) Lookup(hash uint32) (TypeDef, bool) {
	td, ok := m[hash]

	return td, ok
}

// NewMap validates and builds a Map from a hash-keyed map of TypeDefs,
// rejecting any TypeDef whose properties repeat a name — spec.md §3's
// "property names within an object are unique" invariant, checked once at
// registry-construction time rather than on every walk.
func NewMap(defs map[uint32]TypeDef) (Map, error) {
	m := make(Map, len(defs))
	for hash, td := range defs {
		seen := make(map[string]struct{}, len(td.Properties))
		for _, p := range td.Properties {
			if _, dup := seen[p.Name]; dup {
				return nil, errs.ErrDuplicateProperty
			}
			seen[p.Name] = struct{}{}
		}
		m[hash] = td
	}

	return m, nil
}
