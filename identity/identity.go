// Package identity implements the pluggable object-identity strategy
// spec.md §4.G and §9 describe: a single-method interface the walker
// consults before every object, grounded on type_tag.rs's TypeTag trait.
package identity

import (
	"github.com/finchtower/objprop/bitio"
	"github.com/finchtower/objprop/errs"
	"github.com/finchtower/objprop/registry"
)

// Strategy identifies the type of the object about to be read, or
// reports that there is none. A false ok with a nil error means "no
// object" (the PropertyClass hash-0 convention); a non-nil error means
// the identity could not be read or named a type the registry doesn't
// recognize.
type Strategy interface {
	Identify(r *bitio.Reader, types registry.TypeList) (registry.TypeDef, bool, error)
}

// Default is the u32-hash strategy every PropertyClass in the wire format
// uses: a 4-byte little-endian hash, where 0 means "no object" and any
// other value must resolve against the registry.
type Default struct{}

var _ Strategy = Default{}

// Identify reads a u32 hash and resolves it against types.
func (Default) Identify(r *bitio.Reader, types registry.TypeList) (registry.TypeDef, bool, error) {
	hash, err := r.LoadU32()
	if err != nil {
		return registry.TypeDef{}, false, err
	}

	if hash == 0 {
		return registry.TypeDef{}, false, nil
	}

	def, ok := types.Lookup(hash)
	if !ok {
		return registry.TypeDef{}, false, errs.ErrUnknownType
	}

	return def, true, nil
}
