// Package objprop decodes the "ObjectProperty" reflective binary format:
// a schema-driven property tree read against an external type registry,
// with optional zlib compression and two walk strategies (shallow,
// ordered by schema; exhaustive, framed by per-property sizes).
//
// # Basic usage
//
//	types, err := registryio.Load("mob_registry.json")
//	d, err := objprop.NewDeserializer(types)
//	err = d.Feed(blobBytes, pool.NewScratchBuffer(0))
//	v, err := d.Deserialize()
//
// This package provides convenient top-level wrappers around deserializer,
// registryio, and view. For fine-grained control over walk strategy,
// recursion limits, and identity strategy, use the deserializer package
// directly via NewDeserializerWithOptions.
package objprop

import (
	"github.com/finchtower/objprop/deserializer"
	"github.com/finchtower/objprop/registry"
	"github.com/finchtower/objprop/registryio"
	"github.com/finchtower/objprop/value"
	"github.com/finchtower/objprop/view"
)

// NewDeserializer creates a Deserializer against types with the default
// options (spec.md §6's configuration defaults: exhaustive walk, recursion
// limit 127, TRANSMIT|PRIVILEGED_TRANSMIT property mask, zlib codec).
func NewDeserializer(types registry.TypeList) (*deserializer.Deserializer, error) {
	opts, err := deserializer.NewOptions()
	if err != nil {
		return nil, err
	}

	return deserializer.New(opts, types), nil
}

// NewDeserializerWithOptions creates a Deserializer with caller-supplied
// functional options (deserializer.WithShallow, WithFlags, and so on).
func NewDeserializerWithOptions(types registry.TypeList, opts ...deserializer.Option) (*deserializer.Deserializer, error) {
	o, err := deserializer.NewOptions(opts...)
	if err != nil {
		return nil, err
	}

	return deserializer.New(o, types), nil
}

// LoadRegistry reads and decompresses a registry file, auto-detecting
// compression from a magic-byte sniff.
func LoadRegistry(path string) (registry.Map, error) {
	return registryio.Load(path)
}

// ViewObject wraps a decoded Object value.Value in a read-only view for
// language-binding callers. v must be a value.Object; callers that don't
// control that invariant should check v.Kind() first.
func ViewObject(v *value.Value) view.Object {
	return view.NewObject(v)
}
