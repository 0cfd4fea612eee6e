package registry

import "github.com/cespare/xxhash/v2"

// HashName derives a deterministic 32-bit hash from a property or type
// name, for building test/fixture registries that don't have real
// engine-assigned hashes available. It reuses the teacher's hash-based
// metric-identification idiom (xxHash64, there used for 64-bit metric
// IDs) truncated to 32 bits; it is never consulted on the wire, where the
// hash always comes from the registry itself (spec.md §3).
func HashName(name string) uint32 {
	return uint32(xxhash.Sum64String(name))
}
